package mcp

import (
	"context"
	"io"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/importer"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
	Get(ctx context.Context, id string) (*project.Project, error)
	List(ctx context.Context) ([]project.Project, error)
	Update(ctx context.Context, id string, fields map[string]any) (*project.Project, error)
	Delete(ctx context.Context, id string) error
	CheckNumber(ctx context.Context, candidate, excludeID string) (project.NumberCheck, error)
}

// StageService defines stage operations needed by MCP.
type StageService interface {
	Create(ctx context.Context, req stage.CreateRequest) (*stage.Stage, error)
	List(ctx context.Context) ([]stage.Stage, error)
	Update(ctx context.Context, id string, fields map[string]any) (*stage.Stage, error)
	Delete(ctx context.Context, id string) error
}

// ImportService defines the bulk import operation needed by MCP.
type ImportService interface {
	Import(ctx context.Context, r io.Reader, format importer.Format) (importer.Report, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects ProjectService
	Stages   StageService
	Importer ImportService
}

// Config contains server configuration.
type Config struct {
	Services Services
	PageSize int
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "stageboard",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services, cfg.PageSize)

	return server
}
