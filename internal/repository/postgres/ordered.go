package postgres

import (
	"context"
	"fmt"
	"time"

	"go-portfolio-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// orderedTable centralizes what every ordered repository shares. The
// shared operations only touch id/profile_id/order_index, so the table
// name is the single degree of freedom. Names come from compile-time
// constants, never from user input.
type orderedTable struct {
	pool  *pgxpool.Pool
	table string
}

// Delete removes by id. Idempotent: an absent id reports (false, nil).
func (t orderedTable) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := t.pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.table), id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MaxOrderIndex returns the highest index in the owner's list, or -1
// when the list is empty.
func (t orderedTable) MaxOrderIndex(ctx context.Context, profileID string) (int, error) {
	var max int
	err := t.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT COALESCE(MAX(order_index), -1) FROM %s WHERE profile_id = $1`, t.table),
		profileID).Scan(&max)
	if err != nil {
		return 0, err
	}
	return max, nil
}

// Reorder moves entityID to newIndex, sliding the siblings in between
// by one position. Both writes run inside one transaction: the bulk
// shift commits before the mover lands, and the deferred unique
// constraint on (profile_id, order_index) absorbs the transient
// duplicate between the two statements.
func (t orderedTable) Reorder(ctx context.Context, profileID, entityID string, newIndex int) error {
	tx, err := t.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var oldIndex int
	err = tx.QueryRow(ctx,
		fmt.Sprintf(`SELECT order_index FROM %s WHERE id = $1 AND profile_id = $2 FOR UPDATE`, t.table),
		entityID, profileID).Scan(&oldIndex)
	if err != nil {
		if err == pgx.ErrNoRows {
			return domain.ErrNotFound
		}
		return err
	}

	shift, ok := domain.PlanShift(oldIndex, newIndex)
	if !ok {
		return nil
	}

	_, err = tx.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET order_index = order_index + $1
			WHERE profile_id = $2 AND order_index BETWEEN $3 AND $4`, t.table),
		shift.Delta, profileID, shift.Low, shift.High)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		fmt.Sprintf(`UPDATE %s SET order_index = $1, updated_at = $2 WHERE id = $3`, t.table),
		newIndex, time.Now().UTC(), entityID)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// Compact renumbers the owner's list to 0..n-1 preserving the current
// order. Deletes leave gaps on purpose; this is the explicit cleanup.
func (t orderedTable) Compact(ctx context.Context, profileID string) error {
	query := fmt.Sprintf(`
		UPDATE %s AS o SET order_index = ranked.rn - 1, updated_at = $2
		FROM (
			SELECT id, ROW_NUMBER() OVER (ORDER BY order_index) AS rn
			FROM %s WHERE profile_id = $1
		) ranked
		WHERE o.id = ranked.id AND o.order_index <> ranked.rn - 1`,
		t.table, t.table)
	_, err := t.pool.Exec(ctx, query, profileID, time.Now().UTC())
	return err
}

// orderDirection maps the ascending flag to a SQL keyword so callers
// never interpolate raw input into ORDER BY.
func orderDirection(ascending bool) string {
	if ascending {
		return "ASC"
	}
	return "DESC"
}
