package postgres

import (
	"context"
	"fmt"
	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type socialNetworkRepo struct {
	db *pgxpool.Pool
	orderedTable
}

// NewSocialNetworkRepository creates a social network repository
func NewSocialNetworkRepository(db *pgxpool.Pool) domain.SocialNetworkRepository {
	return &socialNetworkRepo{
		db:           db,
		orderedTable: orderedTable{pool: db, table: "social_networks"},
	}
}

const socialNetworkColumns = `id, profile_id, platform, url, username, order_index, created_at, updated_at`

func scanSocialNetwork(row pgx.Row) (*domain.SocialNetwork, error) {
	var s domain.SocialNetwork
	err := row.Scan(
		&s.ID, &s.ProfileID, &s.Platform, &s.URL, &s.Username,
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

func (r *socialNetworkRepo) Add(ctx context.Context, s *domain.SocialNetwork) error {
	query := `
		INSERT INTO social_networks (` + socialNetworkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(ctx, query,
		s.ID, s.ProfileID, s.Platform, s.URL, s.Username,
		s.OrderIndex, s.CreatedAt, s.UpdatedAt,
	)
	return err
}

func (r *socialNetworkRepo) Update(ctx context.Context, s *domain.SocialNetwork) error {
	query := `
		UPDATE social_networks SET
			platform = $2, url = $3, username = $4, order_index = $5, updated_at = $6
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		s.ID, s.Platform, s.URL, s.Username, s.OrderIndex, s.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *socialNetworkRepo) GetByID(ctx context.Context, id string) (*domain.SocialNetwork, error) {
	query := `SELECT ` + socialNetworkColumns + ` FROM social_networks WHERE id = $1`
	return scanSocialNetwork(r.db.QueryRow(ctx, query, id))
}

func (r *socialNetworkRepo) GetByOrderIndex(ctx context.Context, profileID string, index int) (*domain.SocialNetwork, error) {
	query := `SELECT ` + socialNetworkColumns + ` FROM social_networks
		WHERE profile_id = $1 AND order_index = $2`
	return scanSocialNetwork(r.db.QueryRow(ctx, query, profileID, index))
}

func (r *socialNetworkRepo) GetAllOrdered(ctx context.Context, profileID string, ascending bool) ([]*domain.SocialNetwork, error) {
	query := fmt.Sprintf(`SELECT `+socialNetworkColumns+` FROM social_networks
		WHERE profile_id = $1 ORDER BY order_index %s`, orderDirection(ascending))

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	networks := []*domain.SocialNetwork{}
	for rows.Next() {
		s, err := scanSocialNetwork(rows)
		if err != nil {
			return nil, err
		}
		networks = append(networks, s)
	}
	return networks, rows.Err()
}

// ExistsByPlatform checks platform uniqueness within a profile.
func (r *socialNetworkRepo) ExistsByPlatform(ctx context.Context, profileID, platform, excludeID string) (bool, error) {
	var count int
	query := `SELECT COUNT(1) FROM social_networks
		WHERE profile_id = $1 AND platform = $2 AND id <> $3`
	if err := r.db.QueryRow(ctx, query, profileID, platform, excludeID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}
