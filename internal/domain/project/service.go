package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/rpggio/stageboard/internal/domain/activity"
	"github.com/rpggio/stageboard/internal/patch"
	"github.com/rpggio/stageboard/internal/repository"
)

// Service handles project operations.
type Service struct {
	repo       Repository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new project service. activities and logger may be nil.
func NewService(repo Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, activities: activities, logger: logger}
}

// CreateRequest defines project creation inputs.
type CreateRequest struct {
	ProjectNo       string `json:"projectNo"`
	ProjectName     string `json:"projectName"`
	CustomerName    string `json:"customerName"`
	Owner           string `json:"owner"`
	ProjectDate     string `json:"projectDate"`
	TargetDate      string `json:"targetDate"`
	DispatchMonth   string `json:"dispatchMonth"`
	ProductionStage string `json:"productionStage"`
	Remarks         string `json:"remarks"`
}

// Create validates, guards, and persists a new project.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Project, error) {
	req = req.Normalize()
	if err := ValidateCreateInput(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, repository.Wrap("loading projects", err)
	}
	if HasDuplicateNumber(existing, req.ProjectNo, "") {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateNumber, req.ProjectNo)
	}

	proj := &Project{
		ID:              uuid.NewString(),
		ProjectNo:       req.ProjectNo,
		ProjectName:     req.ProjectName,
		CustomerName:    req.CustomerName,
		Owner:           req.Owner,
		ProjectDate:     req.ProjectDate,
		TargetDate:      req.TargetDate,
		DispatchMonth:   req.DispatchMonth,
		ProductionStage: req.ProductionStage,
		Remarks:         req.Remarks,
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNumber, req.ProjectNo)
		}
		return nil, repository.Wrap("creating project", err)
	}

	s.logActivity(ctx, proj.ID, activity.TypeProjectCreated, fmt.Sprintf("created project %s", proj.ProjectNo))
	return proj, nil
}

// Update applies a sparse field map to a project and returns the persisted row.
// Keys outside Fields are ignored.
func (s *Service) Update(ctx context.Context, id string, fields map[string]any) (*Project, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	p, err := Fields.Compile(fields)
	if err != nil {
		if errors.Is(err, patch.ErrInvalidValue) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return nil, err
	}
	if err := ValidatePatch(p); err != nil {
		return nil, err
	}

	if no, ok := p.Lookup(ColumnProjectNo); ok {
		existing, err := s.repo.List(ctx)
		if err != nil {
			return nil, repository.Wrap("loading projects", err)
		}
		if HasDuplicateNumber(existing, no, id) {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNumber, no)
		}
	}

	updated, err := s.repo.Update(ctx, id, p)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, ErrProjectNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return nil, ErrDuplicateNumber
		}
		return nil, repository.Wrap("updating project", err)
	}

	s.logger.Debug("project updated", "id", id, "columns", p.Columns())
	s.logActivity(ctx, id, activity.TypeProjectUpdated,
		fmt.Sprintf("updated %s on project %s", strings.Join(p.Columns(), ", "), updated.ProjectNo))
	return updated, nil
}

// Get fetches a project by ID.
func (s *Service) Get(ctx context.Context, id string) (*Project, error) {
	proj, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, repository.Wrap("getting project", err)
	}
	return proj, nil
}

// List returns every project in collection order.
func (s *Service) List(ctx context.Context) ([]Project, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, repository.Wrap("listing projects", err)
	}
	return projects, nil
}

// Delete removes a project by ID.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return repository.Wrap("deleting project", err)
	}
	s.logActivity(ctx, id, activity.TypeProjectDeleted, fmt.Sprintf("deleted project %s", id))
	return nil
}

// CheckNumber is the advisory duplicate lookup used while a number is being
// typed. It shares HasDuplicateNumber with the pre-write guard.
func (s *Service) CheckNumber(ctx context.Context, candidate, excludeID string) (NumberCheck, error) {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return NumberCheck{}, repository.Wrap("loading projects", err)
	}
	check := NumberCheck{ProjectNo: strings.TrimSpace(candidate)}
	if HasDuplicateNumber(existing, candidate, excludeID) {
		check.Duplicate = true
		check.Message = DuplicateMessage
	}
	return check, nil
}

func (s *Service) logActivity(ctx context.Context, id string, typ activity.ActivityType, summary string) {
	if s.activities == nil {
		return
	}
	entityID := id
	if err := s.activities.Log(ctx, &activity.ActivityEntry{
		EntityType:   activity.EntityProject,
		EntityID:     &entityID,
		ActivityType: typ,
		Summary:      summary,
	}); err != nil {
		s.logger.Warn("failed to log project activity", "id", id, "type", typ, "error", err)
	}
}
