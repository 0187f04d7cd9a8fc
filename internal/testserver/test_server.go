// Package testserver runs the full HTTP stack against an in-memory SQLite
// database for end-to-end tests.
package testserver

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/importer"
	"github.com/rpggio/stageboard/internal/mcp"
	"github.com/rpggio/stageboard/internal/sqlite"
	"github.com/rpggio/stageboard/internal/transport"
	"github.com/stretchr/testify/require"
)

type TestServer struct {
	Server   *httptest.Server
	DB       *sqlite.DB
	Projects *project.Service
	Stages   *stage.Service
}

// New starts a server with the given page size. A size of 0 uses the
// listing default.
func New(t *testing.T, pageSize int) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	activityRepo := sqlite.NewActivityRepository(db)

	projectSvc := project.NewService(sqlite.NewProjectRepository(db), activityRepo, nil)
	stageSvc := stage.NewService(sqlite.NewStageRepository(db), activityRepo, nil)
	activitySvc := activity.NewService(activityRepo, nil)
	pipeline := importer.NewPipeline(projectSvc, activityRepo, nil)

	mcpServer := mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Projects: projectSvc,
			Stages:   stageSvc,
			Importer: pipeline,
		},
		PageSize: pageSize,
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{Stateless: true},
	)

	server := httptest.NewServer(transport.NewServer(transport.Config{
		Services: transport.Services{
			Projects: projectSvc,
			Stages:   stageSvc,
			Activity: activitySvc,
			Importer: pipeline,
		},
		MCP:      mcpHandler,
		PageSize: pageSize,
	}))

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return &TestServer{
		Server:   server,
		DB:       db,
		Projects: projectSvc,
		Stages:   stageSvc,
	}
}

// URL joins path onto the server base URL.
func (ts *TestServer) URL(path string) string {
	return ts.Server.URL + path
}
