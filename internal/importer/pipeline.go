package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/metrics"
)

// Creator submits one project.
type Creator interface {
	Create(ctx context.Context, req project.CreateRequest) (*project.Project, error)
}

// ActivityRepository logs import outcomes.
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
}

// RowError reports the row that stopped an import.
type RowError struct {
	Index     int
	Line      int
	ProjectNo string
	Err       error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("Error importing project %s: %v", e.ProjectNo, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// RowFailure describes the failed row in a Report.
type RowFailure struct {
	Index     int    `json:"index"`
	Line      int    `json:"line"`
	ProjectNo string `json:"projectNo"`
	Message   string `json:"message"`
}

// Report summarizes an import run. Rows before the failed one stay committed.
type Report struct {
	Submitted int         `json:"submitted"`
	Committed int         `json:"committed"`
	Failed    *RowFailure `json:"failed,omitempty"`
	Refresh   bool        `json:"refresh"`
}

// Pipeline submits parsed rows one at a time through a Creator.
type Pipeline struct {
	creator    Creator
	activities ActivityRepository
	logger     *slog.Logger
}

// NewPipeline creates an import pipeline. activities and logger may be nil.
func NewPipeline(creator Creator, activities ActivityRepository, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{creator: creator, activities: activities, logger: logger}
}

// Import parses r and runs the resulting rows.
func (p *Pipeline) Import(ctx context.Context, r io.Reader, format Format) (Report, error) {
	rows, err := Parse(r, format)
	if err != nil {
		return Report{}, err
	}
	return p.Run(ctx, rows)
}

// Run submits rows in order and stops at the first failure. The returned
// error is a *RowError naming the failed row.
func (p *Pipeline) Run(ctx context.Context, rows []Row) (Report, error) {
	if len(rows) == 0 {
		return Report{}, ErrEmptyImport
	}

	var report Report
	for i, row := range rows {
		report.Submitted++

		err := ctx.Err()
		if err == nil {
			_, err = p.creator.Create(ctx, row.Request)
		}
		if err != nil {
			rowErr := &RowError{Index: i, Line: row.Line, ProjectNo: row.Request.ProjectNo, Err: err}
			report.Failed = &RowFailure{
				Index:     i,
				Line:      row.Line,
				ProjectNo: row.Request.ProjectNo,
				Message:   rowErr.Error(),
			}
			metrics.ImportRows.WithLabelValues(metrics.ResultFailed).Inc()
			metrics.ImportRows.WithLabelValues(metrics.ResultSkipped).Add(float64(len(rows) - i - 1))
			metrics.ImportRuns.WithLabelValues(metrics.ResultError).Inc()
			p.logger.Warn("import stopped", "line", row.Line, "project_no", row.Request.ProjectNo,
				"committed", report.Committed, "error", err)
			p.logActivity(ctx, activity.TypeImportFailed,
				fmt.Sprintf("import stopped at line %d after %d rows", row.Line, report.Committed), rowErr.Error())
			return report, rowErr
		}

		report.Committed++
		metrics.ImportRows.WithLabelValues(metrics.ResultCommitted).Inc()
	}

	report.Refresh = true
	metrics.ImportRuns.WithLabelValues(metrics.ResultSuccess).Inc()
	p.logger.Info("import finished", "rows", report.Committed)
	p.logActivity(ctx, activity.TypeImportSucceeded, fmt.Sprintf("imported %d projects", report.Committed), "")
	return report, nil
}

func (p *Pipeline) logActivity(ctx context.Context, typ activity.ActivityType, summary, details string) {
	if p.activities == nil {
		return
	}
	// The run may have been stopped by ctx; the audit entry is still written.
	if err := p.activities.Log(context.WithoutCancel(ctx), &activity.ActivityEntry{
		EntityType:   activity.EntityImport,
		ActivityType: typ,
		Summary:      summary,
		Details:      details,
	}); err != nil {
		p.logger.Warn("failed to log import activity", "type", typ, "error", err)
	}
}
