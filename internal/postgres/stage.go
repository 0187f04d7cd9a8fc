package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpggio/stageboard/internal/domain/stage"
	"github.com/rpggio/stageboard/internal/patch"
	"github.com/rpggio/stageboard/internal/repository"
)

// StageRepository implements stage.Repository for PostgreSQL
type StageRepository struct {
	db      *DB
	columns string
}

// NewStageRepository creates a new StageRepository
func NewStageRepository(db *DB) *StageRepository {
	return &StageRepository{db: db, columns: strings.Join(stage.Columns(), ", ")}
}

// Create inserts a new stage
func (r *StageRepository) Create(ctx context.Context, st *stage.Stage) error {
	values := st.Values()
	query := fmt.Sprintf(`INSERT INTO stages (%s) VALUES (%s)`, r.columns, placeholders(len(values)))
	if _, err := r.db.Exec(ctx, query, values...); err != nil {
		return fmt.Errorf("failed to create stage: %w", err)
	}
	return nil
}

// Get retrieves a stage by ID
func (r *StageRepository) Get(ctx context.Context, id string) (*stage.Stage, error) {
	query := fmt.Sprintf(`SELECT %s FROM stages WHERE id = $1`, r.columns)

	var st stage.Stage
	if err := r.db.QueryRow(ctx, query, id).Scan(st.ScanTargets()...); err != nil {
		if mapError(err) == repository.ErrNotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get stage: %w", err)
	}
	return &st, nil
}

// List returns all stages in creation order
func (r *StageRepository) List(ctx context.Context) ([]stage.Stage, error) {
	query := fmt.Sprintf(`SELECT %s FROM stages ORDER BY seq`, r.columns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stages: %w", err)
	}
	defer rows.Close()

	stages := []stage.Stage{}
	for rows.Next() {
		var st stage.Stage
		if err := rows.Scan(st.ScanTargets()...); err != nil {
			return nil, fmt.Errorf("failed to scan stage: %w", err)
		}
		stages = append(stages, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stage rows: %w", err)
	}
	return stages, nil
}

// Update applies p in a single statement and returns the stored row
func (r *StageRepository) Update(ctx context.Context, id string, p patch.Patch) (*stage.Stage, error) {
	if len(p) == 0 {
		return nil, patch.ErrNoValidFields
	}
	set, args := p.SetClause(placeholder)
	query := fmt.Sprintf(`UPDATE stages SET %s WHERE id = %s RETURNING %s`,
		set, placeholder(len(args)+1), r.columns)
	args = append(args, id)

	var st stage.Stage
	if err := r.db.QueryRow(ctx, query, args...).Scan(st.ScanTargets()...); err != nil {
		if mapError(err) == repository.ErrNotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update stage: %w", err)
	}
	return &st, nil
}

// Delete removes a stage by ID
func (r *StageRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM stages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete stage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
