package postgres

import (
	"context"
	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contactMessageRepo struct {
	db *pgxpool.Pool
}

// NewContactMessageRepository creates a contact message repository
func NewContactMessageRepository(db *pgxpool.Pool) domain.ContactMessageRepository {
	return &contactMessageRepo{db: db}
}

const contactMessageColumns = `id, name, email, message, status, read_at, replied_at, created_at`

func scanContactMessage(row pgx.Row) (*domain.ContactMessage, error) {
	var m domain.ContactMessage
	err := row.Scan(
		&m.ID, &m.Name, &m.Email, &m.Message, &m.Status,
		&m.ReadAt, &m.RepliedAt, &m.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *contactMessageRepo) Add(ctx context.Context, m *domain.ContactMessage) error {
	query := `
		INSERT INTO contact_messages (` + contactMessageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		m.ID, m.Name, m.Email, m.Message, m.Status,
		m.ReadAt, m.RepliedAt, m.CreatedAt,
	)
	return err
}

func (r *contactMessageRepo) Update(ctx context.Context, m *domain.ContactMessage) error {
	query := `
		UPDATE contact_messages SET
			status = $2, read_at = $3, replied_at = $4
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, m.ID, m.Status, m.ReadAt, m.RepliedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contactMessageRepo) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *contactMessageRepo) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	query := `SELECT ` + contactMessageColumns + ` FROM contact_messages WHERE id = $1`
	return scanContactMessage(r.db.QueryRow(ctx, query, id))
}

func (r *contactMessageRepo) List(ctx context.Context, status string) ([]*domain.ContactMessage, error) {
	query := `SELECT ` + contactMessageColumns + ` FROM contact_messages`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []*domain.ContactMessage{}
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}
