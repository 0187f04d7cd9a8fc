package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpggio/stageboard/internal/importer"
	"github.com/rpggio/stageboard/internal/listing"
	"github.com/rpggio/stageboard/internal/store"
	"github.com/spf13/cobra"
)

func newImportCmd(a *app) *cobra.Command {
	var formatName string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import projects from an .xlsx or .csv file",
		Long: `Import projects from a spreadsheet laid out like the template.

Rows are created in order. The import stops at the first row that fails;
rows before it stay imported.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path := args[0]

			format, err := resolveFormat(formatName, path)
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer f.Close()

			rows, err := importer.Parse(f, format)
			if err != nil {
				return err
			}

			st, err := store.Open(ctx, a.cfg.DB)
			if err != nil {
				return err
			}
			defer st.Close()

			report, err := newServices(st, a.logger).importer.Run(ctx, rows)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "submitted %d, imported %d\n", report.Submitted, report.Committed)
			if err != nil {
				var rowErr *importer.RowError
				if errors.As(err, &rowErr) {
					fmt.Fprintf(out, "stopped at line %d: %s\n", rowErr.Line, rowErr.Error())
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&formatName, "format", "", "File format: xlsx or csv (default: from the file extension)")
	return cmd
}

func resolveFormat(name, path string) (importer.Format, error) {
	if name != "" {
		return importer.ParseFormat(name)
	}
	return importer.DetectFormat(path, "")
}

func newExportCmd(a *app) *cobra.Command {
	var c listing.Criteria

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write the filtered project list to an .xlsx file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			st, err := store.Open(ctx, a.cfg.DB)
			if err != nil {
				return err
			}
			defer st.Close()

			projects, err := newServices(st, a.logger).projects.List(ctx)
			if err != nil {
				return err
			}
			filtered := listing.Apply(projects, c)

			if err := writeFile(args[0], func(f *os.File) error {
				return importer.WriteProjects(f, filtered)
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d projects to %s\n", len(filtered), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&c.Stage, "stage", "", "Exact production stage (All for every stage)")
	cmd.Flags().StringVar(&c.ProjectNo, "project-no", "", "Project number contains")
	cmd.Flags().StringVar(&c.Customer, "customer", "", "Customer name contains")
	cmd.Flags().StringVar(&c.Owner, "owner", "", "Owner contains")
	cmd.Flags().StringVar(&c.DispatchMonth, "dispatch-month", "", "Dispatch month contains")
	return cmd
}

func newTemplateCmd(*app) *cobra.Command {
	return &cobra.Command{
		Use:   "template FILE",
		Short: "Write an empty import template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := writeFile(args[0], func(f *os.File) error {
				return importer.WriteTemplate(f)
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote template to %s\n", args[0])
			return nil
		},
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
