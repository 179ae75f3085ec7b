package postgres

import (
	"context"
	"fmt"
	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type certificationRepo struct {
	db *pgxpool.Pool
	orderedTable
}

// NewCertificationRepository creates a certification repository
func NewCertificationRepository(db *pgxpool.Pool) domain.CertificationRepository {
	return &certificationRepo{
		db:           db,
		orderedTable: orderedTable{pool: db, table: "certifications"},
	}
}

const certificationColumns = `id, profile_id, title, issuer, issue_date, expiry_date,
	credential_id, credential_url, order_index, created_at, updated_at`

func scanCertification(row pgx.Row) (*domain.Certification, error) {
	var c domain.Certification
	err := row.Scan(
		&c.ID, &c.ProfileID, &c.Title, &c.Issuer, &c.IssueDate, &c.ExpiryDate,
		&c.CredentialID, &c.CredentialURL,
		&c.OrderIndex, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *certificationRepo) Add(ctx context.Context, c *domain.Certification) error {
	query := `
		INSERT INTO certifications (` + certificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, query,
		c.ID, c.ProfileID, c.Title, c.Issuer, c.IssueDate, c.ExpiryDate,
		c.CredentialID, c.CredentialURL,
		c.OrderIndex, c.CreatedAt, c.UpdatedAt,
	)
	return err
}

func (r *certificationRepo) Update(ctx context.Context, c *domain.Certification) error {
	query := `
		UPDATE certifications SET
			title = $2, issuer = $3, issue_date = $4, expiry_date = $5,
			credential_id = $6, credential_url = $7, order_index = $8, updated_at = $9
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		c.ID, c.Title, c.Issuer, c.IssueDate, c.ExpiryDate,
		c.CredentialID, c.CredentialURL, c.OrderIndex, c.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *certificationRepo) GetByID(ctx context.Context, id string) (*domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE id = $1`
	return scanCertification(r.db.QueryRow(ctx, query, id))
}

func (r *certificationRepo) GetByOrderIndex(ctx context.Context, profileID string, index int) (*domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications
		WHERE profile_id = $1 AND order_index = $2`
	return scanCertification(r.db.QueryRow(ctx, query, profileID, index))
}

func (r *certificationRepo) GetAllOrdered(ctx context.Context, profileID string, ascending bool) ([]*domain.Certification, error) {
	query := fmt.Sprintf(`SELECT `+certificationColumns+` FROM certifications
		WHERE profile_id = $1 ORDER BY order_index %s`, orderDirection(ascending))

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	certs := []*domain.Certification{}
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}
