package usecase

import (
	"context"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type socialNetworkUsecase struct {
	ordered[*domain.SocialNetwork]
	repo     domain.SocialNetworkRepository
	validate *validator.Validate
}

// NewSocialNetworkUsecase creates a new social network usecase
func NewSocialNetworkUsecase(repo domain.SocialNetworkRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.SocialNetworkUsecase {
	return &socialNetworkUsecase{
		ordered:  ordered[*domain.SocialNetwork]{repo: repo, profileRepo: profileRepo, entity: "social network"},
		repo:     repo,
		validate: validate,
	}
}

func (u *socialNetworkUsecase) Create(ctx context.Context, input domain.SocialNetworkInput) (*domain.SocialNetwork, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	profileID, err := u.profileID(ctx)
	if err != nil {
		return nil, err
	}

	network, err := domain.NewSocialNetwork(profileID, input.Platform, input.URL, input.OrderIndex, input.Username)
	if err != nil {
		return nil, asAppError(err)
	}
	// One link per platform.
	taken, err := u.repo.ExistsByPlatform(ctx, profileID, network.Platform, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, asAppError(&domain.ConflictError{Field: "platform", Value: network.Platform})
	}
	if err := u.add(ctx, profileID, network); err != nil {
		return nil, err
	}
	return network, nil
}

func (u *socialNetworkUsecase) Update(ctx context.Context, id string, patch domain.SocialNetworkPatch) (*domain.SocialNetwork, error) {
	network, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := network.Apply(patch); err != nil {
		return nil, asAppError(err)
	}
	taken, err := u.repo.ExistsByPlatform(ctx, network.ProfileID, network.Platform, network.ID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, asAppError(&domain.ConflictError{Field: "platform", Value: network.Platform})
	}
	if err := u.repo.Update(ctx, network); err != nil {
		return nil, err
	}
	return network, nil
}

func (u *socialNetworkUsecase) Delete(ctx context.Context, id string) error {
	return u.delete(ctx, id)
}

func (u *socialNetworkUsecase) List(ctx context.Context, ascending bool) ([]*domain.SocialNetwork, error) {
	return u.list(ctx, ascending)
}

func (u *socialNetworkUsecase) Reorder(ctx context.Context, id string, newIndex int) error {
	return u.reorder(ctx, id, newIndex)
}

func (u *socialNetworkUsecase) Compact(ctx context.Context) error {
	return u.compact(ctx)
}
