package usecase

import (
	"context"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type certificationUsecase struct {
	ordered[*domain.Certification]
	repo     domain.CertificationRepository
	validate *validator.Validate
}

// NewCertificationUsecase creates a new certification usecase
func NewCertificationUsecase(repo domain.CertificationRepository, profileRepo domain.ProfileRepository, validate *validator.Validate) domain.CertificationUsecase {
	return &certificationUsecase{
		ordered:  ordered[*domain.Certification]{repo: repo, profileRepo: profileRepo, entity: "certification"},
		repo:     repo,
		validate: validate,
	}
}

func (u *certificationUsecase) Create(ctx context.Context, input domain.CertificationInput) (*domain.Certification, error) {
	if err := u.validate.Struct(input); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	profileID, err := u.profileID(ctx)
	if err != nil {
		return nil, err
	}

	certification, err := domain.NewCertification(
		profileID, input.Title, input.Issuer, input.IssueDate, input.OrderIndex,
		input.ExpiryDate, input.CredentialID, input.CredentialURL,
	)
	if err != nil {
		return nil, asAppError(err)
	}
	if err := u.add(ctx, profileID, certification); err != nil {
		return nil, err
	}
	return certification, nil
}

func (u *certificationUsecase) Update(ctx context.Context, id string, patch domain.CertificationPatch) (*domain.Certification, error) {
	certification, err := u.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := certification.Apply(patch); err != nil {
		return nil, asAppError(err)
	}
	if err := u.repo.Update(ctx, certification); err != nil {
		return nil, err
	}
	return certification, nil
}

func (u *certificationUsecase) Delete(ctx context.Context, id string) error {
	return u.delete(ctx, id)
}

func (u *certificationUsecase) List(ctx context.Context, ascending bool) ([]*domain.Certification, error) {
	return u.list(ctx, ascending)
}

func (u *certificationUsecase) Reorder(ctx context.Context, id string, newIndex int) error {
	return u.reorder(ctx, id, newIndex)
}

func (u *certificationUsecase) Compact(ctx context.Context) error {
	return u.compact(ctx)
}
