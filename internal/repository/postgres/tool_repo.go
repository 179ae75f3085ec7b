package postgres

import (
	"context"
	"fmt"
	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type toolRepo struct {
	db *pgxpool.Pool
	orderedTable
}

// NewToolRepository creates a tool repository
func NewToolRepository(db *pgxpool.Pool) domain.ToolRepository {
	return &toolRepo{
		db:           db,
		orderedTable: orderedTable{pool: db, table: "tools"},
	}
}

const toolColumns = `id, profile_id, name, category, icon_url, order_index, created_at, updated_at`

func scanTool(row pgx.Row) (*domain.Tool, error) {
	var t domain.Tool
	err := row.Scan(
		&t.ID, &t.ProfileID, &t.Name, &t.Category, &t.IconURL,
		&t.OrderIndex, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *toolRepo) Add(ctx context.Context, t *domain.Tool) error {
	query := `
		INSERT INTO tools (` + toolColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		t.ID, t.ProfileID, t.Name, t.Category, t.IconURL,
		t.OrderIndex, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *toolRepo) Update(ctx context.Context, t *domain.Tool) error {
	query := `
		UPDATE tools SET
			name = $2, category = $3, icon_url = $4, order_index = $5, updated_at = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		t.ID, t.Name, t.Category, t.IconURL, t.OrderIndex, t.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *toolRepo) GetByID(ctx context.Context, id string) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools WHERE id = $1`
	return scanTool(r.db.QueryRow(ctx, query, id))
}

func (r *toolRepo) GetByOrderIndex(ctx context.Context, profileID string, index int) (*domain.Tool, error) {
	query := `SELECT ` + toolColumns + ` FROM tools
		WHERE profile_id = $1 AND order_index = $2`
	return scanTool(r.db.QueryRow(ctx, query, profileID, index))
}

func (r *toolRepo) GetAllOrdered(ctx context.Context, profileID string, ascending bool) ([]*domain.Tool, error) {
	query := fmt.Sprintf(`SELECT `+toolColumns+` FROM tools
		WHERE profile_id = $1 ORDER BY order_index %s`, orderDirection(ascending))

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tools := []*domain.Tool{}
	for rows.Next() {
		t, err := scanTool(rows)
		if err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}
	return tools, rows.Err()
}

// ExistsByName checks name uniqueness within a profile.
func (r *toolRepo) ExistsByName(ctx context.Context, profileID, name, excludeID string) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM tools
		WHERE profile_id = $1 AND name = $2 AND id <> $3`
	if err := r.db.QueryRow(ctx, query, profileID, name, excludeID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
