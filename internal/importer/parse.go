package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/xuri/excelize/v2"
)

// ErrEmptyImport indicates a file with no data rows.
var ErrEmptyImport = errors.New("the file is empty or has no data")

// ErrUnsupportedFormat indicates a file type the importer cannot read.
var ErrUnsupportedFormat = errors.New("unsupported import format")

// Format is a spreadsheet encoding.
type Format string

const (
	FormatXLSX Format = "xlsx"
	FormatCSV  Format = "csv"
)

// ParseFormat resolves a format name such as "xlsx" or ".csv".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")) {
	case "xlsx", "xlsm", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return FormatXLSX, nil
	case "csv", "text/csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// DetectFormat picks a format from a file name, falling back to a content type.
func DetectFormat(filename, contentType string) (Format, error) {
	if ext := filepath.Ext(filename); ext != "" {
		if f, err := ParseFormat(ext); err == nil {
			return f, nil
		}
	}
	if mediaType, _, _ := strings.Cut(contentType, ";"); mediaType != "" {
		return ParseFormat(mediaType)
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
}

// Row is one normalized data row with its 1-based spreadsheet line.
type Row struct {
	Line    int
	Request project.CreateRequest
}

// Parse reads the first sheet (xlsx) or the body (csv) of r. The first
// non-empty row is the header. Blank rows are skipped.
func Parse(r io.Reader, format Format) ([]Row, error) {
	var (
		records [][]string
		err     error
	)
	switch format {
	case FormatXLSX:
		records, err = readXLSX(r)
	case FormatCSV:
		records, err = readCSV(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}

	rows := toRows(records)
	if len(rows) == 0 {
		return nil, ErrEmptyImport
	}
	return rows, nil
}

func readXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyImport
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return records, nil
}

// utf8BOM is written by spreadsheet tools at the start of "CSV UTF-8" files.
const utf8BOM = "\ufeff"

func readCSV(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(utf8BOM)); err == nil && string(lead) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}
	return records, nil
}

func toRows(records [][]string) []Row {
	header := -1
	for i, rec := range records {
		if !blank(rec) {
			header = i
			break
		}
	}
	if header < 0 {
		return nil
	}

	headers := records[header]
	var rows []Row
	for i := header + 1; i < len(records); i++ {
		rec := records[i]
		if blank(rec) {
			continue
		}
		var req project.CreateRequest
		for col, name := range headers {
			value := ""
			if col < len(rec) {
				value = rec[col]
			}
			assign(&req, name, value)
		}
		rows = append(rows, Row{Line: i + 1, Request: req})
	}
	return rows
}

func blank(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
