package usecase

import (
	"context"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type cvUsecase struct {
	profileRepo       domain.ProfileRepository
	experienceRepo    domain.WorkExperienceRepository
	skillRepo         domain.SkillRepository
	educationRepo     domain.EducationRepository
	projectRepo       domain.ProjectRepository
	certificationRepo domain.CertificationRepository
	trainingRepo      domain.AdditionalTrainingRepository
	socialRepo        domain.SocialNetworkRepository
	toolRepo          domain.ToolRepository
	contactInfoRepo   domain.ContactInformationRepository
}

// NewCVUsecase creates a new CV aggregation usecase
func NewCVUsecase(
	profileRepo domain.ProfileRepository,
	experienceRepo domain.WorkExperienceRepository,
	skillRepo domain.SkillRepository,
	educationRepo domain.EducationRepository,
	projectRepo domain.ProjectRepository,
	certificationRepo domain.CertificationRepository,
	trainingRepo domain.AdditionalTrainingRepository,
	socialRepo domain.SocialNetworkRepository,
	toolRepo domain.ToolRepository,
	contactInfoRepo domain.ContactInformationRepository,
) domain.CVUsecase {
	return &cvUsecase{
		profileRepo:       profileRepo,
		experienceRepo:    experienceRepo,
		skillRepo:         skillRepo,
		educationRepo:     educationRepo,
		projectRepo:       projectRepo,
		certificationRepo: certificationRepo,
		trainingRepo:      trainingRepo,
		socialRepo:        socialRepo,
		toolRepo:          toolRepo,
		contactInfoRepo:   contactInfoRepo,
	}
}

// GetComplete assembles the whole portfolio in one read, every
// collection in its curated order. Contact information is the only
// optional section.
func (u *cvUsecase) GetComplete(ctx context.Context) (*domain.CompleteCV, error) {
	profile, err := u.profileRepo.Get(ctx)
	if err != nil {
		if err == domain.ErrNotFound {
			return nil, apperror.NotFound("Profile has not been created yet")
		}
		return nil, err
	}

	cv := &domain.CompleteCV{Profile: profile}

	if cv.Experiences, err = u.experienceRepo.GetAllOrdered(ctx, profile.ID, true); err != nil {
		return nil, err
	}
	if cv.Skills, err = u.skillRepo.GetAllOrdered(ctx, profile.ID, true); err != nil {
		return nil, err
	}
	if cv.Education, err = u.educationRepo.GetAllOrdered(ctx, profile.ID, true); err != nil {
		return nil, err
	}
	if cv.Projects, err = u.projectRepo.GetAllOrdered(ctx, profile.ID, true); err != nil {
		return nil, err
	}
	if cv.Certifications, err = u.certificationRepo.GetAllOrdered(ctx, profile.ID, true); err != nil {
		return nil, err
	}
	if cv.Training, err = u.trainingRepo.GetAllOrdered(ctx, profile.ID, true); err != nil {
		return nil, err
	}
	if cv.SocialNetworks, err = u.socialRepo.GetAllOrdered(ctx, profile.ID, true); err != nil {
		return nil, err
	}
	if cv.Tools, err = u.toolRepo.GetAllOrdered(ctx, profile.ID, true); err != nil {
		return nil, err
	}

	if info, err := u.contactInfoRepo.Get(ctx); err == nil {
		cv.ContactInfo = info
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	return cv, nil
}
