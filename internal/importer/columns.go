// Package importer reads project spreadsheets, submits their rows, and
// writes project workbooks.
package importer

import (
	"strings"

	"github.com/rpggio/stageboard/internal/domain/project"
)

// Spreadsheet headers.
const (
	HeaderProjectNo       = "Project No"
	HeaderProjectName     = "Project Name"
	HeaderCustomerName    = "Customer Name"
	HeaderOwner           = "Owner"
	HeaderProjectDate     = "Project Date"
	HeaderTargetDate      = "Target Date"
	HeaderDispatchMonth   = "Dispatch Month"
	HeaderProductionStage = "Production Stage"
	HeaderRemarks         = "Remarks"
	HeaderSerial          = "Sr. No"
)

// Headers lists the import template columns in order.
var Headers = []string{
	HeaderProjectNo,
	HeaderProjectName,
	HeaderCustomerName,
	HeaderOwner,
	HeaderProjectDate,
	HeaderTargetDate,
	HeaderDispatchMonth,
	HeaderProductionStage,
	HeaderRemarks,
}

// assign copies a trimmed cell value into the request field named by header.
// Unknown headers are ignored.
func assign(req *project.CreateRequest, header, value string) {
	value = strings.TrimSpace(value)
	switch strings.TrimSpace(header) {
	case HeaderProjectNo:
		req.ProjectNo = value
	case HeaderProjectName:
		req.ProjectName = value
	case HeaderCustomerName:
		req.CustomerName = value
	case HeaderOwner:
		req.Owner = value
	case HeaderProjectDate:
		req.ProjectDate = value
	case HeaderTargetDate:
		req.TargetDate = value
	case HeaderDispatchMonth:
		req.DispatchMonth = value
	case HeaderProductionStage:
		req.ProductionStage = value
	case HeaderRemarks:
		req.Remarks = value
	}
}

func rowValues(p project.Project) []any {
	return []any{
		p.ProjectNo,
		p.ProjectName,
		p.CustomerName,
		p.Owner,
		p.ProjectDate,
		p.TargetDate,
		p.DispatchMonth,
		p.ProductionStage,
		p.Remarks,
	}
}
