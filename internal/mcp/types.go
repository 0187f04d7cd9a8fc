package mcp

import (
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/importer"
	"github.com/rpggio/stageboard/internal/listing"
)

type ListProjectsParams struct {
	Stage         string `json:"stage,omitempty" jsonschema:"Production stage to match exactly; All or empty matches every stage"`
	ProjectNo     string `json:"projectNo,omitempty" jsonschema:"Case-insensitive substring of the project number"`
	Customer      string `json:"customer,omitempty" jsonschema:"Case-insensitive substring of the customer name"`
	Owner         string `json:"owner,omitempty" jsonschema:"Case-insensitive substring of the owner"`
	DispatchMonth string `json:"dispatchMonth,omitempty" jsonschema:"Case-insensitive substring of the dispatch month"`
	Page          int    `json:"page,omitempty" jsonschema:"1-based page number; out of range pages return page 1"`
}

func (p ListProjectsParams) criteria() listing.Criteria {
	return listing.Criteria{
		Stage:         p.Stage,
		ProjectNo:     p.ProjectNo,
		Customer:      p.Customer,
		Owner:         p.Owner,
		DispatchMonth: p.DispatchMonth,
	}
}

type IDParams struct {
	ID string `json:"id" jsonschema:"Record id"`
}

type UpdateParams struct {
	ID     string         `json:"id" jsonschema:"Record id"`
	Fields map[string]any `json:"fields" jsonschema:"Fields to change; unknown names are ignored"`
}

type CheckNumberParams struct {
	ProjectNo string `json:"projectNo" jsonschema:"Candidate project number"`
	ExcludeID string `json:"excludeId,omitempty" jsonschema:"Id of the project being edited, if any"`
}

type ImportParams struct {
	Content string `json:"content" jsonschema:"Base64-encoded spreadsheet file"`
	Format  string `json:"format" jsonschema:"File format: xlsx or csv"`
}

type DashboardParams struct {
	Selected string `json:"selected,omitempty" jsonschema:"Stage card to open, or All"`
}

type DeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

type StageListResult struct {
	Stages []stage.Stage `json:"stages"`
}

type ImportResult struct {
	Submitted int                  `json:"submitted"`
	Committed int                  `json:"committed"`
	Failed    *importer.RowFailure `json:"failed,omitempty"`
	Refresh   bool                 `json:"refresh"`
	Error     string               `json:"error,omitempty"`
}

func importResult(report importer.Report) ImportResult {
	return ImportResult{
		Submitted: report.Submitted,
		Committed: report.Committed,
		Failed:    report.Failed,
		Refresh:   report.Refresh,
	}
}

type DashboardResult struct {
	Total    int                  `json:"total"`
	Counts   []listing.StageCount `json:"counts"`
	Selected string               `json:"selected,omitempty"`
	Projects []project.Project    `json:"projects,omitempty"`
}

type CreateProjectParams struct {
	ProjectNo       string `json:"projectNo" jsonschema:"Unique project number"`
	ProjectName     string `json:"projectName" jsonschema:"Project name"`
	CustomerName    string `json:"customerName" jsonschema:"Customer name"`
	Owner           string `json:"owner,omitempty"`
	ProjectDate     string `json:"projectDate,omitempty"`
	TargetDate      string `json:"targetDate,omitempty"`
	DispatchMonth   string `json:"dispatchMonth,omitempty"`
	ProductionStage string `json:"productionStage,omitempty" jsonschema:"Name of the current production stage"`
	Remarks         string `json:"remarks,omitempty"`
}

func (p CreateProjectParams) request() project.CreateRequest {
	return project.CreateRequest(p)
}

type CreateStageParams struct {
	Name    string `json:"name" jsonschema:"Stage name"`
	Remarks string `json:"remarks,omitempty"`
}
