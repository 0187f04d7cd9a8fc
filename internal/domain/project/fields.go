package project

import "github.com/rpggio/stageboard/internal/patch"

// Storage columns for projects.
const (
	ColumnID              = "id"
	ColumnProjectNo       = "project_no"
	ColumnProjectName     = "project_name"
	ColumnCustomerName    = "customer_name"
	ColumnOwner           = "owner"
	ColumnProjectDate     = "project_date"
	ColumnTargetDate      = "target_date"
	ColumnDispatchMonth   = "dispatch_month"
	ColumnProductionStage = "production_stage"
	ColumnRemarks         = "remarks"
)

// Fields is the update whitelist for projects. The lowercase aliases are the
// names rows carry when they are echoed back from older clients.
var Fields = patch.NewWhitelist(
	patch.Field{Name: "projectNo", Column: ColumnProjectNo, Aliases: []string{"projectno"}},
	patch.Field{Name: "projectName", Column: ColumnProjectName, Aliases: []string{"projectname"}},
	patch.Field{Name: "customerName", Column: ColumnCustomerName, Aliases: []string{"customername"}},
	patch.Field{Name: "owner", Column: ColumnOwner},
	patch.Field{Name: "projectDate", Column: ColumnProjectDate, Aliases: []string{"projectdate"}},
	patch.Field{Name: "targetDate", Column: ColumnTargetDate, Aliases: []string{"targetdate"}},
	patch.Field{Name: "dispatchMonth", Column: ColumnDispatchMonth, Aliases: []string{"dispatchmonth"}},
	patch.Field{Name: "productionStage", Column: ColumnProductionStage, Aliases: []string{"productionstage"}},
	patch.Field{Name: "remarks", Column: ColumnRemarks},
)

// Columns lists every persisted project column, id first.
func Columns() []string {
	return append([]string{ColumnID}, Fields.Columns()...)
}

// Values returns the persisted values of proj in Columns order.
func (p *Project) Values() []any {
	return []any{
		p.ID,
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

// ScanTargets returns pointers to proj's fields in Columns order.
func (p *Project) ScanTargets() []any {
	return []any{
		&p.ID,
		&p.ProjectNo,
		&p.ProjectName,
		&p.CustomerName,
		&p.Owner,
		&p.ProjectDate,
		&p.TargetDate,
		&p.DispatchMonth,
		&p.ProductionStage,
		&p.Remarks,
	}
}
