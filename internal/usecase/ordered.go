package usecase

import (
	"context"
	"errors"
	"fmt"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

// asAppError maps domain rule violations onto transport-facing errors.
// Anything unrecognized passes through and surfaces as a 500.
func asAppError(err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return apperror.BadRequest(vErr.Error()).WithDetails(vErr)
	}
	var cErr *domain.ConflictError
	if errors.As(err, &cErr) {
		return apperror.Conflict(cErr.Error())
	}
	var nfErr *domain.NotFoundError
	if errors.As(err, &nfErr) {
		return apperror.NotFound(nfErr.Error())
	}
	return err
}

// ordered bundles the behavior every ranked collection shares: owner
// resolution, index uniqueness on create, range-checked reorders, and
// idempotent deletes reported as 404s.
type ordered[T domain.Ordered] struct {
	repo        domain.OrderedRepository[T]
	profileRepo domain.ProfileRepository
	entity      string
}

// profileID resolves the owning profile. Every collection hangs off
// the single profile, so a missing profile makes all of them 404.
func (o *ordered[T]) profileID(ctx context.Context) (string, error) {
	profile, err := o.profileRepo.Get(ctx)
	if err != nil {
		if err == domain.ErrNotFound {
			return "", apperror.NotFound("Profile has not been created yet")
		}
		return "", err
	}
	return profile.ID, nil
}

// add inserts after verifying the requested index is not taken.
func (o *ordered[T]) add(ctx context.Context, profileID string, entity T) error {
	_, err := o.repo.GetByOrderIndex(ctx, profileID, entity.Position())
	if err == nil {
		return apperror.Conflict(fmt.Sprintf("order_index %d is already taken", entity.Position()))
	}
	if err != domain.ErrNotFound {
		return err
	}
	return o.repo.Add(ctx, entity)
}

func (o *ordered[T]) get(ctx context.Context, id string) (T, error) {
	entity, err := o.repo.GetByID(ctx, id)
	if err != nil {
		var zero T
		if err == domain.ErrNotFound {
			return zero, asAppError(&domain.NotFoundError{Entity: o.entity, ID: id})
		}
		return zero, err
	}
	return entity, nil
}

func (o *ordered[T]) delete(ctx context.Context, id string) error {
	deleted, err := o.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return asAppError(&domain.NotFoundError{Entity: o.entity, ID: id})
	}
	return nil
}

func (o *ordered[T]) list(ctx context.Context, ascending bool) ([]T, error) {
	profileID, err := o.profileID(ctx)
	if err != nil {
		return nil, err
	}
	return o.repo.GetAllOrdered(ctx, profileID, ascending)
}

// reorder rejects targets outside [0, max] rather than clamping them;
// a caller asking for a nonexistent slot is making a mistake worth
// reporting.
func (o *ordered[T]) reorder(ctx context.Context, id string, newIndex int) error {
	profileID, err := o.profileID(ctx)
	if err != nil {
		return err
	}
	if newIndex < 0 {
		return apperror.BadRequest("new_index must not be negative")
	}
	max, err := o.repo.MaxOrderIndex(ctx, profileID)
	if err != nil {
		return err
	}
	if newIndex > max {
		return apperror.BadRequest(fmt.Sprintf("new_index %d is out of range, highest is %d", newIndex, max))
	}
	if err := o.repo.Reorder(ctx, profileID, id, newIndex); err != nil {
		if err == domain.ErrNotFound {
			return asAppError(&domain.NotFoundError{Entity: o.entity, ID: id})
		}
		return err
	}
	return nil
}

func (o *ordered[T]) compact(ctx context.Context) error {
	profileID, err := o.profileID(ctx)
	if err != nil {
		return err
	}
	return o.repo.Compact(ctx, profileID)
}
