package usecase

import (
	"context"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type skillUsecase struct {
	ordered[*domain.Skill]
	repo     domain.SkillRepository
	validate *validator.Validate
}

// NewSkillUsecase creates a new skill usecase
func NewSkillUsecase(repo domain.SkillRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{
		ordered:  ordered[*domain.Skill]{repo: repo, profileRepo: profileRepo, entity: "skill"},
		repo:     repo,
		validate: validate,
	}
}

func (u *skillUsecase) Create(ctx context.Context, input domain.SkillInput) (*domain.Skill, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	profileID, err := u.profileID(ctx)
	if err != nil {
		return nil, err
	}

	skill, err := domain.NewSkill(profileID, input.Name, input.Category, input.Level, input.OrderIndex)
	if err != nil {
		return nil, asAppError(err)
	}
	// Skill names are unique per profile; comparison is exact.
	taken, err := u.repo.ExistsByName(ctx, profileID, skill.Name, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, asAppError(&domain.ConflictError{Field: "name", Value: skill.Name})
	}
	if err := u.add(ctx, profileID, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) Update(ctx context.Context, id string, patch domain.SkillPatch) (*domain.Skill, error) {
	skill, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := skill.Apply(patch); err != nil {
		return nil, asAppError(err)
	}
	taken, err := u.repo.ExistsByName(ctx, skill.ProfileID, skill.Name, skill.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, asAppError(&domain.ConflictError{Field: "name", Value: skill.Name})
	}
	if err := u.repo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (u *skillUsecase) Delete(ctx context.Context, id string) error {
	return u.delete(ctx, id)
}

func (u *skillUsecase) List(ctx context.Context, ascending bool) ([]*domain.Skill, error) {
	return u.list(ctx, ascending)
}

func (u *skillUsecase) Reorder(ctx context.Context, id string, newIndex int) error {
	return u.reorder(ctx, id, newIndex)
}

func (u *skillUsecase) Compact(ctx context.Context) error {
	return u.compact(ctx)
}
