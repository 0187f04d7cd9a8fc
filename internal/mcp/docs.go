package mcp

import (
	"context"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/stageboard/internal/importer"
)

const serverInstructions = `stageboard tracks production projects through named stages.

Concepts:
- Project: one job, identified by a unique projectNo. Other fields are free text.
- Stage: a named production step. A project's productionStage is plain text and is not checked against the stage list.

Workflow:
1) Browse: list_projects with filters (all filters must match) or stage_dashboard for per-stage counts.
2) Before creating or renumbering, call check_project_number. create_project and update_project reject numbers already in use.
3) update_project only writes the fields you send.
4) import_projects creates rows in file order and stops at the first failing row. Rows before it stay imported, so fix the failing row and re-import only the rest.

Docs:
- stageboard://docs/import-format
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "stageboard://docs/import-format",
		Name:        "import_format",
		Title:       "Project import format",
		Description: "Column headers and row rules for import_projects.",
		Content: `# Project import format

The first sheet of an xlsx workbook, or a csv file, is read. The first non-empty row holds the headers:

` + "- " + strings.Join(importer.Headers, "\n- ") + `

- Unknown headers are ignored and missing cells are read as empty.
- Every value is trimmed. Blank rows are skipped.
- Project No, Project Name and Customer Name are required.
- A file with no data rows is rejected before anything is written.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
