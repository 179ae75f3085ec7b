package postgres

import (
	"context"
	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contactInfoRepo struct {
	db *pgxpool.Pool
}

// NewContactInfoRepository creates a contact information repository
func NewContactInfoRepository(db *pgxpool.Pool) domain.ContactInformationRepository {
	return &contactInfoRepo{db: db}
}

const contactInfoColumns = `id, profile_id, email, phone, linkedin, github, website, created_at, updated_at`

func scanContactInfo(row pgx.Row) (*domain.ContactInformation, error) {
	var c domain.ContactInformation
	err := row.Scan(
		&c.ID, &c.ProfileID, &c.Email, &c.Phone, &c.LinkedIn, &c.GitHub,
		&c.Website, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *contactInfoRepo) Create(ctx context.Context, c *domain.ContactInformation) error {
	query := `
		INSERT INTO contact_information (` + contactInfoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		c.ID, c.ProfileID, c.Email, c.Phone, c.LinkedIn, c.GitHub,
		c.Website, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *contactInfoRepo) Update(ctx context.Context, c *domain.ContactInformation) error {
	query := `
		UPDATE contact_information SET
			email = $2, phone = $3, linkedin = $4, github = $5,
			website = $6, updated_at = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		c.ID, c.Email, c.Phone, c.LinkedIn, c.GitHub, c.Website, c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactInfoRepo) Get(ctx context.Context) (*domain.ContactInformation, error) {
	query := `SELECT ` + contactInfoColumns + ` FROM contact_information ORDER BY created_at LIMIT 1`
	return scanContactInfo(r.db.QueryRow(ctx, query))
}

func (r *contactInfoRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM contact_information`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
