package mcp

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/importer"
	"github.com/rpggio/stageboard/internal/listing"
)

func textResult(format string, args ...any) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: fmt.Sprintf(format, args...)}},
	}
}

func registerTools(server *sdkmcp.Server, svc Services, pageSize int) {
	registerProjectTools(server, svc.Projects, pageSize)
	registerStageTools(server, svc.Stages)
	registerImportTools(server, svc.Importer)
	registerDashboardTools(server, svc.Projects, svc.Stages)
}

func registerProjectTools(server *sdkmcp.Server, projects ProjectService, pageSize int) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List projects matching all given filters, one page at a time",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args ListProjectsParams) (*sdkmcp.CallToolResult, listing.Page, error) {
		all, err := projects.List(ctx)
		if err != nil {
			return nil, listing.Page{}, toolError(err)
		}
		page := listing.Query(all, args.criteria(), args.Page, pageSize)
		return textResult("Page %d of %d, %d matching projects", page.Page, page.PageCount, page.Total), page, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_project",
		Description: "Get a project by id",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args IDParams) (*sdkmcp.CallToolResult, project.Project, error) {
		proj, err := projects.Get(ctx, args.ID)
		if err != nil {
			return nil, project.Project{}, toolError(err)
		}
		return textResult("Project %s: %s", proj.ProjectNo, proj.ProjectName), *proj, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a project. projectNo must not already be in use",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args CreateProjectParams) (*sdkmcp.CallToolResult, project.Project, error) {
		proj, err := projects.Create(ctx, args.request())
		if err != nil {
			return nil, project.Project{}, toolError(err)
		}
		return textResult("Created project %s (%s)", proj.ProjectNo, proj.ID), *proj, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Change some fields of a project. Only the fields given are written; unknown fields are ignored",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args UpdateParams) (*sdkmcp.CallToolResult, project.Project, error) {
		proj, err := projects.Update(ctx, args.ID, args.Fields)
		if err != nil {
			return nil, project.Project{}, toolError(err)
		}
		return textResult("Updated project %s", proj.ProjectNo), *proj, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project by id",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args IDParams) (*sdkmcp.CallToolResult, DeleteResult, error) {
		if err := projects.Delete(ctx, args.ID); err != nil {
			return nil, DeleteResult{}, toolError(err)
		}
		return textResult("Deleted project %s", args.ID), DeleteResult{ID: args.ID, Deleted: true}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "check_project_number",
		Description: "Check whether a project number is already used by another project",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args CheckNumberParams) (*sdkmcp.CallToolResult, project.NumberCheck, error) {
		check, err := projects.CheckNumber(ctx, args.ProjectNo, args.ExcludeID)
		if err != nil {
			return nil, project.NumberCheck{}, toolError(err)
		}
		if check.Duplicate {
			return textResult("%s", check.Message), check, nil
		}
		return textResult("Project number %s is available", check.ProjectNo), check, nil
	})
}

func registerStageTools(server *sdkmcp.Server, stages StageService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_stages",
		Description: "List production stages in creation order",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, StageListResult, error) {
		list, err := stages.List(ctx)
		if err != nil {
			return nil, StageListResult{}, toolError(err)
		}
		return textResult("Found %d stages", len(list)), StageListResult{Stages: list}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_stage",
		Description: "Create a production stage",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args CreateStageParams) (*sdkmcp.CallToolResult, stage.Stage, error) {
		st, err := stages.Create(ctx, stage.CreateRequest{Name: args.Name, Remarks: args.Remarks})
		if err != nil {
			return nil, stage.Stage{}, toolError(err)
		}
		return textResult("Created stage %s (%s)", st.Name, st.ID), *st, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_stage",
		Description: "Change the name or remarks of a stage. Projects keep their stage text",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args UpdateParams) (*sdkmcp.CallToolResult, stage.Stage, error) {
		st, err := stages.Update(ctx, args.ID, args.Fields)
		if err != nil {
			return nil, stage.Stage{}, toolError(err)
		}
		return textResult("Updated stage %s", st.Name), *st, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_stage",
		Description: "Delete a stage by id. Projects in that stage are not changed",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args IDParams) (*sdkmcp.CallToolResult, DeleteResult, error) {
		if err := stages.Delete(ctx, args.ID); err != nil {
			return nil, DeleteResult{}, toolError(err)
		}
		return textResult("Deleted stage %s", args.ID), DeleteResult{ID: args.ID, Deleted: true}, nil
	})
}

func registerImportTools(server *sdkmcp.Server, imports ImportService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "import_projects",
		Description: "Import projects from a spreadsheet. Rows are created in order and the import stops at the first failing row; earlier rows stay imported",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args ImportParams) (*sdkmcp.CallToolResult, ImportResult, error) {
		format, err := importer.ParseFormat(args.Format)
		if err != nil {
			return nil, ImportResult{}, toolError(err)
		}
		data, err := base64.StdEncoding.DecodeString(args.Content)
		if err != nil {
			return nil, ImportResult{}, fmt.Errorf("decoding content: %w", err)
		}

		report, err := imports.Import(ctx, bytes.NewReader(data), format)
		if err != nil {
			var rowErr *importer.RowError
			if !errors.As(err, &rowErr) {
				return nil, ImportResult{}, toolError(err)
			}
			out := importResult(report)
			out.Error = rowErr.Error()
			res := textResult("%s. %d rows were imported before the failure", rowErr.Error(), report.Committed)
			res.IsError = true
			return res, out, nil
		}
		return textResult("Imported %d projects", report.Committed), importResult(report), nil
	})
}

func registerDashboardTools(server *sdkmcp.Server, projects ProjectService, stages StageService) {
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "stage_dashboard",
		Description: "Count projects per stage and optionally list the projects of one stage (or All)",
	}, func(ctx context.Context, _ *sdkmcp.CallToolRequest, args DashboardParams) (*sdkmcp.CallToolResult, DashboardResult, error) {
		all, err := projects.List(ctx)
		if err != nil {
			return nil, DashboardResult{}, toolError(err)
		}
		stageList, err := stages.List(ctx)
		if err != nil {
			return nil, DashboardResult{}, toolError(err)
		}

		var sel listing.Selection
		sel.Toggle(args.Selected)
		out := DashboardResult{
			Total:    len(all),
			Counts:   listing.StageCounts(all, stageList),
			Selected: sel.Selected(),
			Projects: sel.Projects(all),
		}
		return textResult("%d projects across %d stages", out.Total, len(out.Counts)), out, nil
	})
}
