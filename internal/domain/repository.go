package domain

import "context"

// Ordered is implemented by every entity that participates in a
// per-profile ordered list.
type Ordered interface {
	EntityID() string
	Owner() string
	Position() int
}

// OrderedRepository stores one family of ordered entities. Uniqueness
// of (owner, order_index) is a storage invariant; contiguity is not —
// deletes leave gaps and GetAllOrdered tolerates them.
type OrderedRepository[T Ordered] interface {
	Add(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	// Delete is idempotent: deleting an absent id reports false, nil.
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (T, error)
	GetByOrderIndex(ctx context.Context, profileID string, index int) (T, error)
	GetAllOrdered(ctx context.Context, profileID string, ascending bool) ([]T, error)
	// MaxOrderIndex returns -1 when the owner's list is empty.
	MaxOrderIndex(ctx context.Context, profileID string) (int, error)
	// Reorder moves one entity to newIndex, shifting the siblings in
	// between by one so no two entities ever share an index.
	Reorder(ctx context.Context, profileID, entityID string, newIndex int) error
	// Compact renumbers the owner's list to 0..n-1 preserving order.
	Compact(ctx context.Context, profileID string) error
}

// ShiftRange is the sibling index range a reorder displaces, bounds
// inclusive, and the delta applied to it.
type ShiftRange struct {
	Low   int
	High  int
	Delta int
}

// PlanShift computes the range update that absorbs a move from
// oldIndex to newIndex. The second return is false for a no-op move.
//
// Moving forward, siblings in (old, new] slide back to fill the gap;
// moving backward, siblings in [new, old) slide forward to make room.
func PlanShift(oldIndex, newIndex int) (ShiftRange, bool) {
	switch {
	case oldIndex == newIndex:
		return ShiftRange{}, false
	case oldIndex < newIndex:
		return ShiftRange{Low: oldIndex + 1, High: newIndex, Delta: -1}, true
	default:
		return ShiftRange{Low: newIndex, High: oldIndex - 1, Delta: 1}, true
	}
}
