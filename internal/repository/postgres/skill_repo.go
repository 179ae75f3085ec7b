package postgres

import (
	"context"
	"fmt"
	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepo struct {
	db *pgxpool.Pool
	orderedTable
}

// NewSkillRepository creates a skill repository
func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepo{
		db:           db,
		orderedTable: orderedTable{pool: db, table: "skills"},
	}
}

const skillColumns = `id, profile_id, name, category, level, order_index, created_at, updated_at`

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	var s domain.Skill
	err := row.Scan(
		&s.ID, &s.ProfileID, &s.Name, &s.Category, &s.Level,
		&s.OrderIndex, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *skillRepo) Add(ctx context.Context, s *domain.Skill) error {
	query := `
		INSERT INTO skills (` + skillColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.ProfileID, s.Name, s.Category, s.Level,
		s.OrderIndex, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *skillRepo) Update(ctx context.Context, s *domain.Skill) error {
	query := `
		UPDATE skills SET
			name = $2, category = $3, level = $4, order_index = $5, updated_at = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		s.ID, s.Name, s.Category, s.Level, s.OrderIndex, s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *skillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1`
	return scanSkill(r.db.QueryRow(ctx, query, id))
}

func (r *skillRepo) GetByOrderIndex(ctx context.Context, profileID string, index int) (*domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills
		WHERE profile_id = $1 AND order_index = $2`
	return scanSkill(r.db.QueryRow(ctx, query, profileID, index))
}

func (r *skillRepo) GetAllOrdered(ctx context.Context, profileID string, ascending bool) ([]*domain.Skill, error) {
	query := fmt.Sprintf(`SELECT `+skillColumns+` FROM skills
		WHERE profile_id = $1 ORDER BY order_index %s`, orderDirection(ascending))

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []*domain.Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// ExistsByName checks name uniqueness within a profile, excluding
// excludeID so updates do not collide with the entity itself.
func (r *skillRepo) ExistsByName(ctx context.Context, profileID, name, excludeID string) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM skills
		WHERE profile_id = $1 AND name = $2 AND id <> $3`
	if err := r.db.QueryRow(ctx, query, profileID, name, excludeID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
