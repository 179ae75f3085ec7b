package usecase

import (
	"context"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type toolUsecase struct {
	ordered[*domain.Tool]
	repo     domain.ToolRepository
	validate *validator.Validate
}

// NewToolUsecase creates a new tool usecase
func NewToolUsecase(repo domain.ToolRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.ToolUsecase {
	return &toolUsecase{
		ordered:  ordered[*domain.Tool]{repo: repo, profileRepo: profileRepo, entity: "tool"},
		repo:     repo,
		validate: validate,
	}
}

func (u *toolUsecase) Create(ctx context.Context, input domain.ToolInput) (*domain.Tool, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	profileID, err := u.profileID(ctx)
	if err != nil {
		return nil, err
	}

	tool, err := domain.NewTool(profileID, input.Name, input.Category, input.OrderIndex, input.IconURL)
	if err != nil {
		return nil, asAppError(err)
	}
	taken, err := u.repo.ExistsByName(ctx, profileID, tool.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, asAppError(&domain.ConflictError{Field: "name", Value: tool.Name})
	}
	if err := u.add(ctx, profileID, tool); err != nil {
		return nil, err
	}
	return tool, nil
}

func (u *toolUsecase) Update(ctx context.Context, id string, patch domain.ToolPatch) (*domain.Tool, error) {
	tool, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := tool.Apply(patch); err != nil {
		return nil, asAppError(err)
	}
	taken, err := u.repo.ExistsByName(ctx, tool.ProfileID, tool.Name, tool.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, asAppError(&domain.ConflictError{Field: "name", Value: tool.Name})
	}
	if err := u.repo.Update(ctx, tool); err != nil {
		return nil, err
	}
	return tool, nil
}

func (u *toolUsecase) Delete(ctx context.Context, id string) error {
	return u.delete(ctx, id)
}

func (u *toolUsecase) List(ctx context.Context, ascending bool) ([]*domain.Tool, error) {
	return u.list(ctx, ascending)
}

func (u *toolUsecase) Reorder(ctx context.Context, id string, newIndex int) error {
	return u.reorder(ctx, id, newIndex)
}

func (u *toolUsecase) Compact(ctx context.Context) error {
	return u.compact(ctx)
}
