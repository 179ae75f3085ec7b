package usecase

import (
	"context"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type trainingUsecase struct {
	ordered[*domain.AdditionalTraining]
	repo     domain.AdditionalTrainingRepository
	validate *validator.Validate
}

// NewTrainingUsecase creates a new additional training usecase
func NewTrainingUsecase(repo domain.AdditionalTrainingRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.AdditionalTrainingUsecase {
	return &trainingUsecase{
		ordered:  ordered[*domain.AdditionalTraining]{repo: repo, profileRepo: profileRepo, entity: "training"},
		repo:     repo,
		validate: validate,
	}
}

func (u *trainingUsecase) Create(ctx context.Context, input domain.AdditionalTrainingInput) (*domain.AdditionalTraining, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	profileID, err := u.profileID(ctx)
	if err != nil {
		return nil, err
	}

	training, err := domain.NewAdditionalTraining(
		profileID, input.Title, input.Provider, input.CompletionDate, input.OrderIndex,
		input.Duration, input.CertificateURL, input.Description,
	)
	if err != nil {
		return nil, asAppError(err)
	}
	if err := u.add(ctx, profileID, training); err != nil {
		return nil, err
	}
	return training, nil
}

func (u *trainingUsecase) Update(ctx context.Context, id string, patch domain.AdditionalTrainingPatch) (*domain.AdditionalTraining, error) {
	training, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := training.Apply(patch); err != nil {
		return nil, asAppError(err)
	}
	if err := u.repo.Update(ctx, training); err != nil {
		return nil, err
	}
	return training, nil
}

func (u *trainingUsecase) Delete(ctx context.Context, id string) error {
	return u.delete(ctx, id)
}

func (u *trainingUsecase) List(ctx context.Context, ascending bool) ([]*domain.AdditionalTraining, error) {
	return u.list(ctx, ascending)
}

func (u *trainingUsecase) Reorder(ctx context.Context, id string, newIndex int) error {
	return u.reorder(ctx, id, newIndex)
}

func (u *trainingUsecase) Compact(ctx context.Context) error {
	return u.compact(ctx)
}
