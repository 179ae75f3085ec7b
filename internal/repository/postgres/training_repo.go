package postgres

import (
	"context"
	"fmt"
	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type trainingRepo struct {
	db *pgxpool.Pool
	orderedTable
}

// NewTrainingRepository creates an additional training repository
func NewTrainingRepository(db *pgxpool.Pool) domain.AdditionalTrainingRepository {
	return &trainingRepo{
		db:           db,
		orderedTable: orderedTable{pool: db, table: "additional_training"},
	}
}

const trainingColumns = `id, profile_id, title, provider, completion_date,
	duration, certificate_url, description, order_index, created_at, updated_at`

func scanTraining(row pgx.Row) (*domain.AdditionalTraining, error) {
	var t domain.AdditionalTraining
	err := row.Scan(
		&t.ID, &t.ProfileID, &t.Title, &t.Provider, &t.CompletionDate,
		&t.Duration, &t.CertificateURL, &t.Description,
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

func (r *trainingRepo) Add(ctx context.Context, t *domain.AdditionalTraining) error {
	query := `
		INSERT INTO additional_training (` + trainingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		t.ID, t.ProfileID, t.Title, t.Provider, t.CompletionDate,
		t.Duration, t.CertificateURL, t.Description,
		t.OrderIndex, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *trainingRepo) Update(ctx context.Context, t *domain.AdditionalTraining) error {
	query := `
		UPDATE additional_training SET
			title = $2, provider = $3, completion_date = $4, duration = $5,
			certificate_url = $6, description = $7, order_index = $8, updated_at = $9
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		t.ID, t.Title, t.Provider, t.CompletionDate, t.Duration,
		t.CertificateURL, t.Description, t.OrderIndex, t.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *trainingRepo) GetByID(ctx context.Context, id string) (*domain.AdditionalTraining, error) {
	query := `SELECT ` + trainingColumns + ` FROM additional_training WHERE id = $1`
	return scanTraining(r.db.QueryRow(ctx, query, id))
}

func (r *trainingRepo) GetByOrderIndex(ctx context.Context, profileID string, index int) (*domain.AdditionalTraining, error) {
	query := `SELECT ` + trainingColumns + ` FROM additional_training
		WHERE profile_id = $1 AND order_index = $2`
	return scanTraining(r.db.QueryRow(ctx, query, profileID, index))
}

func (r *trainingRepo) GetAllOrdered(ctx context.Context, profileID string, ascending bool) ([]*domain.AdditionalTraining, error) {
	query := fmt.Sprintf(`SELECT `+trainingColumns+` FROM additional_training
		WHERE profile_id = $1 ORDER BY order_index %s`, orderDirection(ascending))

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trainings := []*domain.AdditionalTraining{}
	for rows.Next() {
		t, err := scanTraining(rows)
		if err != nil {
			return nil, err
		}
		trainings = append(trainings, t)
	}
	return trainings, rows.Err()
}
