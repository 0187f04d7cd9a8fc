package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/rpggio/stageboard/internal/domain/project"
	"github.com/rpggio/stageboard/internal/patch"
	"github.com/rpggio/stageboard/internal/repository"
)

// ProjectRepository implements project.Repository for PostgreSQL
type ProjectRepository struct {
	db      *DB
	columns string
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db, columns: strings.Join(project.Columns(), ", ")}
}

// Create inserts a new project
func (r *ProjectRepository) Create(ctx context.Context, proj *project.Project) error {
	values := proj.Values()
	query := fmt.Sprintf(`INSERT INTO projects (%s) VALUES (%s)`, r.columns, placeholders(len(values)))

	if _, err := r.db.Exec(ctx, query, values...); err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// Get retrieves a project by ID
func (r *ProjectRepository) Get(ctx context.Context, id string) (*project.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, r.columns)

	var proj project.Project
	if err := r.db.QueryRow(ctx, query, id).Scan(proj.ScanTargets()...); err != nil {
		if mapError(err) == repository.ErrNotFound {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &proj, nil
}

// List returns all projects in insertion order
func (r *ProjectRepository) List(ctx context.Context) ([]project.Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects ORDER BY seq`, r.columns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []project.Project{}
	for rows.Next() {
		var proj project.Project
		if err := rows.Scan(proj.ScanTargets()...); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, proj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

// Update applies p in a single statement and returns the stored row
func (r *ProjectRepository) Update(ctx context.Context, id string, p patch.Patch) (*project.Project, error) {
	if len(p) == 0 {
		return nil, patch.ErrNoValidFields
	}
	set, args := p.SetClause(placeholder)
	query := fmt.Sprintf(`UPDATE projects SET %s WHERE id = %s RETURNING %s`,
		set, placeholder(len(args)+1), r.columns)
	args = append(args, id)

	var proj project.Project
	if err := r.db.QueryRow(ctx, query, args...).Scan(proj.ScanTargets()...); err != nil {
		mapped := mapError(err)
		if mapped == repository.ErrNotFound || mapped == repository.ErrDuplicate {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return &proj, nil
}

// Delete removes a project by ID
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
