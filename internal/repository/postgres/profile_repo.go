package postgres

import (
	"context"
	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepo struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a profile repository
func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepo{db: db}
}

const profileColumns = `id, name, headline, bio, location, avatar_url, created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.Name, &p.Headline, &p.Bio, &p.Location, &p.AvatarURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) Create(ctx context.Context, p *domain.Profile) error {
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Headline, p.Bio, p.Location, p.AvatarURL,
		p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *profileRepo) Update(ctx context.Context, p *domain.Profile) error {
	query := `
		UPDATE profiles SET
			name = $2, headline = $3, bio = $4, location = $5,
			avatar_url = $6, updated_at = $7
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Headline, p.Bio, p.Location, p.AvatarURL, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Get returns the singleton profile. The system stores at most one
// row; LIMIT 1 keeps the query honest if that ever breaks.
func (r *profileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at LIMIT 1`
	return scanProfile(r.db.QueryRow(ctx, query))
}

func (r *profileRepo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM profiles`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
