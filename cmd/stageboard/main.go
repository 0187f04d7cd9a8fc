// Package main runs the stageboard server and its spreadsheet commands.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rpggio/stageboard/internal/config"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// app carries what every command needs after configuration is loaded.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	logOut io.Closer
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var dbPath string

	root := &cobra.Command{
		Use:   "stageboard",
		Short: "Production stage board for manufacturing projects",
		Long: `stageboard tracks manufacturing projects through their production stages.

Run without a subcommand to start the server. The transport (http or stdio)
and database come from STAGEBOARD_* environment variables or the YAML file
named by STAGEBOARD_CONFIG_PATH.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if cmd.Flags().Changed("db") {
				cfg.DB.Path = dbPath
			}
			a.cfg = cfg

			// Only the HTTP server may write logs to stdout. Stdio mode owns
			// stdout for JSON-RPC and the file commands print results there.
			out := io.Writer(os.Stderr)
			if servesHTTP(cmd, cfg) {
				out = os.Stdout
			}
			if cfg.Log.Path != "" {
				w, err := newLogFileWriter(cfg.Log.Path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
				} else {
					out = w
					a.logOut = w
				}
			}
			a.logger = slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
				Level: parseLogLevel(cfg.Log.Level),
			}))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logOut != nil {
				_ = a.logOut.Close()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), a)
		},
	}

	root.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides STAGEBOARD_DB_PATH)")

	root.AddCommand(newServeCmd(a))
	root.AddCommand(newImportCmd(a))
	root.AddCommand(newExportCmd(a))
	root.AddCommand(newTemplateCmd(a))
	return root
}

func servesHTTP(cmd *cobra.Command, cfg config.Config) bool {
	if cfg.Transport.Mode != config.TransportHTTP {
		return false
	}
	return !cmd.HasParent() || cmd.Name() == "serve"
}
