package usecase

import (
	"context"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type projectUsecase struct {
	ordered[*domain.Project]
	repo     domain.ProjectRepository
	validate *validator.Validate
}

// NewProjectUsecase creates a new project usecase
func NewProjectUsecase(repo domain.ProjectRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ProjectUsecase {
	return &projectUsecase{
		ordered:  ordered[*domain.Project]{repo: repo, profileRepo: profileRepo, entity: "project"},
		repo:     repo,
		validate: validate,
	}
}

func (u *projectUsecase) Create(ctx context.Context, input domain.ProjectInput) (*domain.Project, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	profileID, err := u.profileID(ctx)
	if err != nil {
		return nil, err
	}

	project, err := domain.NewProject(
		profileID, input.Title, input.Description, input.StartDate, input.OrderIndex,
		input.EndDate, input.LiveURL, input.RepoURL, input.Technologies,
	)
	if err != nil {
		return nil, asAppError(err)
	}
	if err := u.add(ctx, profileID, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	project, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := project.Apply(patch); err != nil {
		return nil, asAppError(err)
	}
	if err := u.repo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *projectUsecase) Delete(ctx context.Context, id string) error {
	return u.delete(ctx, id)
}

func (u *projectUsecase) List(ctx context.Context, ascending bool) ([]*domain.Project, error) {
	return u.list(ctx, ascending)
}

func (u *projectUsecase) Reorder(ctx context.Context, id string, newIndex int) error {
	return u.reorder(ctx, id, newIndex)
}

func (u *projectUsecase) Compact(ctx context.Context) error {
	return u.compact(ctx)
}
