package usecase

import (
	"context"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type workExperienceUsecase struct {
	ordered[*domain.WorkExperience]
	repo     domain.WorkExperienceRepository
	validate *validator.Validate
}

// NewWorkExperienceUsecase creates a new work experience usecase
func NewWorkExperienceUsecase(repo domain.WorkExperienceRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.WorkExperienceUsecase {
	return &workExperienceUsecase{
		ordered:  ordered[*domain.WorkExperience]{repo: repo, profileRepo: profileRepo, entity: "work experience"},
		repo:     repo,
		validate: validate,
	}
}

func (u *workExperienceUsecase) Create(ctx context.Context, input domain.WorkExperienceInput) (*domain.WorkExperience, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	profileID, err := u.profileID(ctx)
	if err != nil {
		return nil, err
	}

	experience, err := domain.NewWorkExperience(
		profileID, input.Role, input.Company, input.StartDate, input.OrderIndex,
		input.Description, input.EndDate, input.Responsibilities,
	)
	if err != nil {
		return nil, asAppError(err)
	}
	if err := u.add(ctx, profileID, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (u *workExperienceUsecase) Update(ctx context.Context, id string, patch domain.WorkExperiencePatch) (*domain.WorkExperience, error) {
	experience, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := experience.Apply(patch); err != nil {
		return nil, asAppError(err)
	}
	if err := u.repo.Update(ctx, experience); err != nil {
		return nil, err
	}
	return experience, nil
}

func (u *workExperienceUsecase) Delete(ctx context.Context, id string) error {
	return u.delete(ctx, id)
}

func (u *workExperienceUsecase) List(ctx context.Context, ascending bool) ([]*domain.WorkExperience, error) {
	return u.list(ctx, ascending)
}

func (u *workExperienceUsecase) Reorder(ctx context.Context, id string, newIndex int) error {
	return u.reorder(ctx, id, newIndex)
}

func (u *workExperienceUsecase) Compact(ctx context.Context) error {
	return u.compact(ctx)
}
