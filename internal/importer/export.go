package importer

import (
	"fmt"
	"io"

	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by the generated workbooks.
const (
	TemplateSheet = "Projects"
	ListSheet     = "ProjectList"
)

// WriteTemplate writes a header-only import workbook to w.
func WriteTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TemplateSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err := f.SetSheetRow(TemplateSheet, "A1", &Headers); err != nil {
		return fmt.Errorf("writing headers: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WriteProjects writes projects to w as a numbered list, in the given order.
func WriteProjects(w io.Writer, projects []project.Project) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ListSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	header := append([]string{HeaderSerial}, Headers...)
	if err := f.SetSheetRow(ListSheet, "A1", &header); err != nil {
		return fmt.Errorf("writing headers: %w", err)
	}
	for i, p := range projects {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("locating row %d: %w", i+1, err)
		}
		values := append([]any{i + 1}, rowValues(p)...)
		if err := f.SetSheetRow(ListSheet, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
