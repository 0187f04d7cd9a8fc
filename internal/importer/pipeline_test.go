package importer_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/importer"
	"github.com/rpggio/stageboard/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingCreator stores every accepted request and rejects duplicate numbers.
type recordingCreator struct {
	calls    []string
	accepted []project.Project
}

func (c *recordingCreator) Create(_ context.Context, req project.CreateRequest) (*project.Project, error) {
	c.calls = append(c.calls, req.ProjectNo)
	if project.HasDuplicateNumber(c.accepted, req.ProjectNo, "") {
		return nil, project.ErrDuplicateNumber
	}
	p := project.Project{ID: req.ProjectNo, ProjectNo: req.ProjectNo}
	c.accepted = append(c.accepted, p)
	return &p, nil
}

func rowsFor(numbers ...string) []importer.Row {
	rows := make([]importer.Row, len(numbers))
	for i, no := range numbers {
		rows[i] = importer.Row{Line: i + 2, Request: project.CreateRequest{ProjectNo: no}}
	}
	return rows
}

func TestPipeline_StopsAtFirstFailure(t *testing.T) {
	creator := &recordingCreator{}
	pipeline := importer.NewPipeline(creator, nil, nil)

	report, err := pipeline.Run(context.Background(), rowsFor("A", "B", "A", "C", "D"))
	require.Error(t, err)
	require.ErrorIs(t, err, project.ErrDuplicateNumber)
	require.Contains(t, err.Error(), "A")

	var rowErr *importer.RowError
	require.ErrorAs(t, err, &rowErr)
	require.Equal(t, 2, rowErr.Index)
	require.Equal(t, 4, rowErr.Line)
	require.Equal(t, "A", rowErr.ProjectNo)

	require.Equal(t, []string{"A", "B", "A"}, creator.calls)
	require.Len(t, creator.accepted, 2)
	require.Equal(t, 2, report.Committed)
	require.Equal(t, 3, report.Submitted)
	require.False(t, report.Refresh)
	require.NotNil(t, report.Failed)
	require.Equal(t, "A", report.Failed.ProjectNo)
}

func TestPipeline_AllRowsCommitted(t *testing.T) {
	creator := &recordingCreator{}

	activities := &mocks.ActivityRepository{}
	activities.On("Log", mock.Anything, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeImportSucceeded
	})).Return(nil)

	pipeline := importer.NewPipeline(creator, activities, nil)
	report, err := pipeline.Run(context.Background(), rowsFor("A", "B", "C"))
	require.NoError(t, err)
	require.Equal(t, importer.Report{Submitted: 3, Committed: 3, Refresh: true}, report)
	activities.AssertExpectations(t)
}

func TestPipeline_CancelledContextFailsNextRow(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	creator := &recordingCreator{}
	report, err := importer.NewPipeline(creator, nil, nil).Run(ctx, rowsFor("A", "B"))
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, creator.calls)
	require.Equal(t, 0, report.Committed)
	require.Equal(t, 0, report.Failed.Index)
}

func TestPipeline_EmptyRows(t *testing.T) {
	_, err := importer.NewPipeline(&recordingCreator{}, nil, nil).Run(context.Background(), nil)
	require.ErrorIs(t, err, importer.ErrEmptyImport)
}

func TestPipeline_ImportCSV(t *testing.T) {
	creator := &recordingCreator{}
	body := "Project No,Project Name,Customer Name\nP-1,Alpha,Acme\nP-2,Beta,Globex\n"

	report, err := importer.NewPipeline(creator, nil, nil).Import(context.Background(), strings.NewReader(body), importer.FormatCSV)
	require.NoError(t, err)
	require.Equal(t, 2, report.Committed)
	require.Equal(t, []string{"P-1", "P-2"}, creator.calls)
}

func TestPipeline_ImportEmptyFileSubmitsNothing(t *testing.T) {
	creator := &recordingCreator{}
	_, err := importer.NewPipeline(creator, nil, nil).Import(context.Background(), strings.NewReader(""), importer.FormatCSV)
	require.True(t, errors.Is(err, importer.ErrEmptyImport))
	require.Empty(t, creator.calls)
}

func TestPipeline_ActivityFailureIsLogged(t *testing.T) {
	activities := &mocks.ActivityRepository{}
	activities.On("Log", mock.Anything, mock.MatchedBy(func(e *activity.ActivityEntry) bool {
		return e.ActivityType == activity.TypeImportSucceeded
	})).Return(errors.New("audit table locked"))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	pipeline := importer.NewPipeline(&recordingCreator{}, activities, logger)
	report, err := pipeline.Run(context.Background(), rowsFor("A", "B"))
	require.NoError(t, err)
	require.Equal(t, 2, report.Committed)
	require.Contains(t, logs.String(), "failed to log import activity")
	activities.AssertExpectations(t)
}
