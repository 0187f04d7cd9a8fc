package stage

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

// Service handles stage operations.
type Service struct {
	repo       Repository
	activities ActivityRepository
	logger     *slog.Logger
}

// NewService creates a new stage service.
func NewService(repo Repository, activities ActivityRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, activities: activities, logger: logger}
}

// CreateRequest defines stage creation inputs.
type CreateRequest struct {
	Name    string `json:"name"`
	Remarks string `json:"remarks"`
}

// Create creates a stage.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Stage, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	st := &Stage{
		ID:      uuid.NewString(),
		Name:    name,
		Remarks: strings.TrimSpace(req.Remarks),
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, repository.Wrap("creating stage", err)
	}

	s.logActivity(ctx, st.ID, activity.TypeStageCreated, fmt.Sprintf("created stage %s", st.Name))
	return st, nil
}

// Get fetches a stage by ID.
func (s *Service) Get(ctx context.Context, id string) (*Stage, error) {
	st, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStageNotFound
		}
		return nil, repository.Wrap("getting stage", err)
	}
	return st, nil
}

// List returns all stages in creation order.
func (s *Service) List(ctx context.Context) ([]Stage, error) {
	stages, err := s.repo.List(ctx)
	if err != nil {
		return nil, repository.Wrap("listing stages", err)
	}
	return stages, nil
}

// Update applies a sparse field map to a stage.
func (s *Service) Update(ctx context.Context, id string, fields map[string]any) (*Stage, error) {
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
	if name, ok := p.Lookup(ColumnName); ok {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		p.Set(ColumnName, name)
	}

	st, err := s.repo.Update(ctx, id, p)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrStageNotFound
		}
		return nil, repository.Wrap("updating stage", err)
	}

	s.logActivity(ctx, id, activity.TypeStageUpdated, fmt.Sprintf("updated stage %s", st.Name))
	return st, nil
}

// Delete removes a stage. Projects that reference its name are left untouched.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrStageNotFound
		}
		return repository.Wrap("deleting stage", err)
	}
	s.logActivity(ctx, id, activity.TypeStageDeleted, fmt.Sprintf("deleted stage %s", id))
	return nil
}

func (s *Service) logActivity(ctx context.Context, id string, typ activity.ActivityType, summary string) {
	if s.activities == nil {
		return
	}
	entityID := id
	if err := s.activities.Log(ctx, &activity.ActivityEntry{
		EntityType:   activity.EntityStage,
		EntityID:     &entityID,
		ActivityType: typ,
		Summary:      summary,
	}); err != nil {
		s.logger.Warn("failed to log stage activity", "id", id, "type", typ, "error", err)
	}
}
