package usecase

import (
	"context"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type contactInfoUsecase struct {
	repo        domain.ContactInformationRepository
	profileRepo domain.ProfileRepository
	validate    *validator.Validate
}

// NewContactInfoUsecase creates a new contact information usecase
func NewContactInfoUsecase(repo domain.ContactInformationRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ContactInformationUsecase {
	return &contactInfoUsecase{
		repo:        repo,
		profileRepo: profileRepo,
		validate:    validate,
	}
}

// Create sets up the contact card. Like the profile it is a singleton.
func (u *contactInfoUsecase) Create(ctx context.Context, input domain.ContactInformationInput) (*domain.ContactInformation, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	profile, err := u.profileRepo.Get(ctx)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Profile has not been created yet")
		}
		return nil, err
	}

	count, err := u.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperror.Conflict("Contact information already exists")
	}

	info, err := domain.NewContactInformation(profile.ID, input.Email, input.Phone, input.LinkedIn, input.GitHub, input.Website)
	if err != nil {
		return nil, asAppError(err)
	}
	if err := u.repo.Create(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}

func (u *contactInfoUsecase) Get(ctx context.Context) (*domain.ContactInformation, error) {
	info, err := u.repo.Get(ctx)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Contact information has not been created yet")
		}
		return nil, err
	}
	return info, nil
}

func (u *contactInfoUsecase) Update(ctx context.Context, patch domain.ContactInformationPatch) (*domain.ContactInformation, error) {
	info, err := u.Get(ctx)
	if err != nil {
		return nil, err
	}
	if err := info.Apply(patch); err != nil {
		return nil, asAppError(err)
	}
	if err := u.repo.Update(ctx, info); err != nil {
		return nil, err
	}
	return info, nil
}
