package postgres

import (
	"context"
	"fmt"
	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type educationRepo struct {
	db *pgxpool.Pool
	orderedTable
}

// NewEducationRepository creates an education repository
func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepo{
		db:           db,
		orderedTable: orderedTable{pool: db, table: "education"},
	}
}

const educationColumns = `id, profile_id, institution, degree, field, description,
	start_date, end_date, order_index, created_at, updated_at`

func scanEducation(row pgx.Row) (*domain.Education, error) {
	var e domain.Education
	err := row.Scan(
		&e.ID, &e.ProfileID, &e.Institution, &e.Degree, &e.FieldOfStudy,
		&e.Description, &e.StartDate, &e.EndDate,
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

func (r *educationRepo) Add(ctx context.Context, e *domain.Education) error {
	query := `
		INSERT INTO education (` + educationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		e.ID, e.ProfileID, e.Institution, e.Degree, e.FieldOfStudy,
		e.Description, e.StartDate, e.EndDate,
		e.OrderIndex, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *educationRepo) Update(ctx context.Context, e *domain.Education) error {
	query := `
		UPDATE education SET
			institution = $2, degree = $3, field = $4, description = $5,
			start_date = $6, end_date = $7, order_index = $8, updated_at = $9
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		e.ID, e.Institution, e.Degree, e.FieldOfStudy, e.Description,
		e.StartDate, e.EndDate, e.OrderIndex, e.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *educationRepo) GetByID(ctx context.Context, id string) (*domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM education WHERE id = $1`
	return scanEducation(r.db.QueryRow(ctx, query, id))
}

func (r *educationRepo) GetByOrderIndex(ctx context.Context, profileID string, index int) (*domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM education
		WHERE profile_id = $1 AND order_index = $2`
	return scanEducation(r.db.QueryRow(ctx, query, profileID, index))
}

func (r *educationRepo) GetAllOrdered(ctx context.Context, profileID string, ascending bool) ([]*domain.Education, error) {
	query := fmt.Sprintf(`SELECT `+educationColumns+` FROM education
		WHERE profile_id = $1 ORDER BY order_index %s`, orderDirection(ascending))

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []*domain.Education{}
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
