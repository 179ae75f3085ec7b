package postgres

import (
	"context"
	"fmt"
	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type projectRepo struct {
	db *pgxpool.Pool
	orderedTable
}

// NewProjectRepository creates a project repository
func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepo{
		db:           db,
		orderedTable: orderedTable{pool: db, table: "projects"},
	}
}

const projectColumns = `id, profile_id, title, description, start_date, end_date,
	live_url, repo_url, technologies, order_index, created_at, updated_at`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(
		&p.ID, &p.ProfileID, &p.Title, &p.Description, &p.StartDate, &p.EndDate,
		&p.LiveURL, &p.RepoURL, pq.Array(&p.Technologies),
		&p.OrderIndex, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *projectRepo) Add(ctx context.Context, p *domain.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.ProfileID, p.Title, p.Description, p.StartDate, p.EndDate,
		p.LiveURL, p.RepoURL, pq.Array(p.Technologies),
		p.OrderIndex, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *projectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `
		UPDATE projects SET
			title = $2, description = $3, start_date = $4, end_date = $5,
			live_url = $6, repo_url = $7, technologies = $8,
			order_index = $9, updated_at = $10
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.Description, p.StartDate, p.EndDate,
		p.LiveURL, p.RepoURL, pq.Array(p.Technologies),
		p.OrderIndex, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *projectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(r.db.QueryRow(ctx, query, id))
}

func (r *projectRepo) GetByOrderIndex(ctx context.Context, profileID string, index int) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
		WHERE profile_id = $1 AND order_index = $2`
	return scanProject(r.db.QueryRow(ctx, query, profileID, index))
}

func (r *projectRepo) GetAllOrdered(ctx context.Context, profileID string, ascending bool) ([]*domain.Project, error) {
	query := fmt.Sprintf(`SELECT `+projectColumns+` FROM projects
		WHERE profile_id = $1 ORDER BY order_index %s`, orderDirection(ascending))

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
