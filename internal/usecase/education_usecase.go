package usecase

import (
	"context"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type educationUsecase struct {
	ordered[*domain.Education]
	repo     domain.EducationRepository
	validate *validator.Validate
}

// NewEducationUsecase creates a new education usecase
func NewEducationUsecase(repo domain.EducationRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.EducationUsecase {
	return &educationUsecase{
		ordered:  ordered[*domain.Education]{repo: repo, profileRepo: profileRepo, entity: "education entry"},
		repo:     repo,
		validate: validate,
	}
}

func (u *educationUsecase) Create(ctx context.Context, input domain.EducationInput) (*domain.Education, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	profileID, err := u.profileID(ctx)
	if err != nil {
		return nil, err
	}

	education, err := domain.NewEducation(
		profileID, input.Institution, input.Degree, input.FieldOfStudy,
		input.StartDate, input.OrderIndex, input.Description, input.EndDate,
	)
	if err != nil {
		return nil, asAppError(err)
	}
	if err := u.add(ctx, profileID, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (u *educationUsecase) Update(ctx context.Context, id string, patch domain.EducationPatch) (*domain.Education, error) {
	education, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := education.Apply(patch); err != nil {
		return nil, asAppError(err)
	}
	if err := u.repo.Update(ctx, education); err != nil {
		return nil, err
	}
	return education, nil
}

func (u *educationUsecase) Delete(ctx context.Context, id string) error {
	return u.delete(ctx, id)
}

func (u *educationUsecase) List(ctx context.Context, ascending bool) ([]*domain.Education, error) {
	return u.list(ctx, ascending)
}

func (u *educationUsecase) Reorder(ctx context.Context, id string, newIndex int) error {
	return u.reorder(ctx, id, newIndex)
}

func (u *educationUsecase) Compact(ctx context.Context) error {
	return u.compact(ctx)
}
