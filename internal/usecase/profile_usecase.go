package usecase

import (
	"context"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

// NewProfileUsecase creates a new profile usecase
func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

// Create sets up the site owner's profile. The profile is a singleton;
// a second create is a conflict, not an upsert.
func (u *profileUsecase) Create(ctx context.Context, input domain.ProfileInput) (*domain.Profile, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	count, err := u.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperror.Conflict("Profile already exists")
	}

	profile, err := domain.NewProfile(input.Name, input.Headline, input.Bio, input.Location, input.AvatarURL)
	if err != nil {
		return nil, asAppError(err)
	}
	if err := u.repo.Create(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) Get(ctx context.Context) (*domain.Profile, error) {
	profile, err := u.repo.Get(ctx)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Profile has not been created yet")
		}
		return nil, err
	}
	return profile, nil
}

func (u *profileUsecase) Update(ctx context.Context, patch domain.ProfilePatch) (*domain.Profile, error) {
	profile, err := u.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := profile.Apply(patch); err != nil {
		return nil, asAppError(err)
	}
	if err := u.repo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
