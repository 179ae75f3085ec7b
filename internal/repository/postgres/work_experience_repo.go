package postgres

import (
	"context"
	"fmt"
	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type workExperienceRepo struct {
	db *pgxpool.Pool
	orderedTable
}

// NewWorkExperienceRepository creates a work experience repository
func NewWorkExperienceRepository(db *pgxpool.Pool) domain.WorkExperienceRepository {
	return &workExperienceRepo{
		db:           db,
		orderedTable: orderedTable{pool: db, table: "work_experiences"},
	}
}

const workExperienceColumns = `id, profile_id, role, company, description,
	start_date, end_date, responsibilities, order_index, created_at, updated_at`

func scanWorkExperience(row pgx.Row) (*domain.WorkExperience, error) {
	var e domain.WorkExperience
	err := row.Scan(
		&e.ID, &e.ProfileID, &e.Role, &e.Company, &e.Description,
		&e.StartDate, &e.EndDate, pq.Array(&e.Responsibilities),
		&e.OrderIndex, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *workExperienceRepo) Add(ctx context.Context, e *domain.WorkExperience) error {
	query := `
		INSERT INTO work_experiences (` + workExperienceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		e.ID, e.ProfileID, e.Role, e.Company, e.Description,
		e.StartDate, e.EndDate, pq.Array(e.Responsibilities),
		e.OrderIndex, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *workExperienceRepo) Update(ctx context.Context, e *domain.WorkExperience) error {
	query := `
		UPDATE work_experiences SET
			role = $2, company = $3, description = $4, start_date = $5,
			end_date = $6, responsibilities = $7, order_index = $8, updated_at = $9
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		e.ID, e.Role, e.Company, e.Description, e.StartDate,
		e.EndDate, pq.Array(e.Responsibilities), e.OrderIndex, e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *workExperienceRepo) GetByID(ctx context.Context, id string) (*domain.WorkExperience, error) {
	query := `SELECT ` + workExperienceColumns + ` FROM work_experiences WHERE id = $1`
	return scanWorkExperience(r.db.QueryRow(ctx, query, id))
}

func (r *workExperienceRepo) GetByOrderIndex(ctx context.Context, profileID string, index int) (*domain.WorkExperience, error) {
	query := `SELECT ` + workExperienceColumns + ` FROM work_experiences
		WHERE profile_id = $1 AND order_index = $2`
	return scanWorkExperience(r.db.QueryRow(ctx, query, profileID, index))
}

func (r *workExperienceRepo) GetAllOrdered(ctx context.Context, profileID string, ascending bool) ([]*domain.WorkExperience, error) {
	query := fmt.Sprintf(`SELECT `+workExperienceColumns+` FROM work_experiences
		WHERE profile_id = $1 ORDER BY order_index %s`, orderDirection(ascending))

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	experiences := []*domain.WorkExperience{}
	for rows.Next() {
		e, err := scanWorkExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}
