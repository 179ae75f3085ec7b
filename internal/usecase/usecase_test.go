package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/email"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) Update(ctx context.Context, profile *domain.Profile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockProfileRepo) Get(ctx context.Context) (*domain.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}
func (m *MockProfileRepo) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockSkillRepo struct {
	mock.Mock
}

func (m *MockSkillRepo) Add(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}
func (m *MockSkillRepo) Update(ctx context.Context, skill *domain.Skill) error {
	return m.Called(ctx, skill).Error(0)
}
func (m *MockSkillRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockSkillRepo) GetByID(ctx context.Context, id string) (*domain.Skill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) GetByOrderIndex(ctx context.Context, profileID string, index int) (*domain.Skill, error) {
	args := m.Called(ctx, profileID, index)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) GetAllOrdered(ctx context.Context, profileID string, ascending bool) ([]*domain.Skill, error) {
	args := m.Called(ctx, profileID, ascending)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Skill), args.Error(1)
}
func (m *MockSkillRepo) MaxOrderIndex(ctx context.Context, profileID string) (int, error) {
	args := m.Called(ctx, profileID)
	return args.Int(0), args.Error(1)
}
func (m *MockSkillRepo) Reorder(ctx context.Context, profileID, entityID string, newIndex int) error {
	return m.Called(ctx, profileID, entityID, newIndex).Error(0)
}
func (m *MockSkillRepo) Compact(ctx context.Context, profileID string) error {
	return m.Called(ctx, profileID).Error(0)
}
func (m *MockSkillRepo) ExistsByName(ctx context.Context, profileID, name, excludeID string) (bool, error) {
	args := m.Called(ctx, profileID, name, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) Add(ctx context.Context, message *domain.ContactMessage) error {
	return m.Called(ctx, message).Error(0)
}
func (m *MockMessageRepo) Update(ctx context.Context, message *domain.ContactMessage) error {
	return m.Called(ctx, message).Error(0)
}
func (m *MockMessageRepo) Delete(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockMessageRepo) GetByID(ctx context.Context, id string) (*domain.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}
func (m *MockMessageRepo) List(ctx context.Context, status string) ([]*domain.ContactMessage, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ContactMessage), args.Error(1)
}

func appCode(t *testing.T, err error) int {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr.Code
}

func testProfile() *domain.Profile {
	p, _ := domain.NewProfile("Jane Doe", "Backend Engineer", nil, nil, nil)
	return p
}

func TestProfileSingleton(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("second create is a conflict", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("Count", mock.Anything).Return(1, nil)
		uc := usecase.NewProfileUsecase(repo, validate)

		_, err := uc.Create(ctx, domain.ProfileInput{Name: "Jane", Headline: "Engineer"})
		assert.Equal(t, http.StatusConflict, appCode(t, err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("first create succeeds", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("Count", mock.Anything).Return(0, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewProfileUsecase(repo, validate)

		profile, err := uc.Create(ctx, domain.ProfileInput{Name: "Jane", Headline: "Engineer"})
		require.NoError(t, err)
		assert.NotEmpty(t, profile.ID)
		repo.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid patch never reaches the repository", func(t *testing.T) {
		repo := new(MockProfileRepo)
		repo.On("Get", mock.Anything).Return(testProfile(), nil)
		uc := usecase.NewProfileUsecase(repo, validate)

		blank := ""
		_, err := uc.Update(ctx, domain.ProfilePatch{Name: &blank})
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestSkillCreateUniqueness(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()
	input := domain.SkillInput{Name: "Go", Category: "backend", Level: "expert", OrderIndex: 0}

	t.Run("duplicate name is a conflict", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("Get", mock.Anything).Return(testProfile(), nil)
		repo := new(MockSkillRepo)
		repo.On("ExistsByName", mock.Anything, mock.Anything, "Go", "").Return(true, nil)
		uc := usecase.NewSkillUsecase(repo, profileRepo, validate)

		_, err := uc.Create(ctx, input)
		assert.Equal(t, http.StatusConflict, appCode(t, err))
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("occupied order index is a conflict", func(t *testing.T) {
		profile := testProfile()
		profileRepo := new(MockProfileRepo)
		profileRepo.On("Get", mock.Anything).Return(profile, nil)
		existing, _ := domain.NewSkill(profile.ID, "Rust", "backend", "advanced", 0)
		repo := new(MockSkillRepo)
		repo.On("ExistsByName", mock.Anything, mock.Anything, "Go", "").Return(false, nil)
		repo.On("GetByOrderIndex", mock.Anything, profile.ID, 0).Return(existing, nil)
		uc := usecase.NewSkillUsecase(repo, profileRepo, validate)

		_, err := uc.Create(ctx, input)
		assert.Equal(t, http.StatusConflict, appCode(t, err))
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("free name and index succeed", func(t *testing.T) {
		profile := testProfile()
		profileRepo := new(MockProfileRepo)
		profileRepo.On("Get", mock.Anything).Return(profile, nil)
		repo := new(MockSkillRepo)
		repo.On("ExistsByName", mock.Anything, profile.ID, "Go", "").Return(false, nil)
		repo.On("GetByOrderIndex", mock.Anything, profile.ID, 0).Return(nil, domain.ErrNotFound)
		repo.On("Add", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewSkillUsecase(repo, profileRepo, validate)

		skill, err := uc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, profile.ID, skill.ProfileID)
	})

	t.Run("missing profile is not found", func(t *testing.T) {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("Get", mock.Anything).Return(nil, domain.ErrNotFound)
		repo := new(MockSkillRepo)
		uc := usecase.NewSkillUsecase(repo, profileRepo, validate)

		_, err := uc.Create(ctx, input)
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})
}

func TestSkillReorder(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()
	profile := testProfile()

	newUC := func(repo *MockSkillRepo) domain.SkillUsecase {
		profileRepo := new(MockProfileRepo)
		profileRepo.On("Get", mock.Anything).Return(profile, nil)
		return usecase.NewSkillUsecase(repo, profileRepo, validate)
	}

	t.Run("target beyond the last index is rejected", func(t *testing.T) {
		repo := new(MockSkillRepo)
		repo.On("MaxOrderIndex", mock.Anything, profile.ID).Return(2, nil)
		uc := newUC(repo)

		err := uc.Reorder(ctx, "skill-1", 5)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		repo.AssertNotCalled(t, "Reorder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("negative target is rejected", func(t *testing.T) {
		repo := new(MockSkillRepo)
		uc := newUC(repo)

		err := uc.Reorder(ctx, "skill-1", -1)
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
	})

	t.Run("valid target reaches the repository", func(t *testing.T) {
		repo := new(MockSkillRepo)
		repo.On("MaxOrderIndex", mock.Anything, profile.ID).Return(3, nil)
		repo.On("Reorder", mock.Anything, profile.ID, "skill-1", 2).Return(nil)
		uc := newUC(repo)

		err := uc.Reorder(ctx, "skill-1", 2)
		assert.NoError(t, err)
	})

	t.Run("unknown entity is not found", func(t *testing.T) {
		repo := new(MockSkillRepo)
		repo.On("MaxOrderIndex", mock.Anything, profile.ID).Return(3, nil)
		repo.On("Reorder", mock.Anything, profile.ID, "ghost", 1).Return(domain.ErrNotFound)
		uc := newUC(repo)

		err := uc.Reorder(ctx, "ghost", 1)
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})
}

func TestSkillDelete(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()

	t.Run("deleting an absent skill reports not found", func(t *testing.T) {
		repo := new(MockSkillRepo)
		repo.On("Delete", mock.Anything, "ghost").Return(false, nil)
		uc := usecase.NewSkillUsecase(repo, new(MockProfileRepo), validate)

		err := uc.Delete(ctx, "ghost")
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})

	t.Run("storage errors pass through", func(t *testing.T) {
		repo := new(MockSkillRepo)
		boom := errors.New("connection reset")
		repo.On("Delete", mock.Anything, "skill-1").Return(false, boom)
		uc := usecase.NewSkillUsecase(repo, new(MockProfileRepo), validate)

		err := uc.Delete(ctx, "skill-1")
		assert.ErrorIs(t, err, boom)
	})
}

func TestContactMessages(t *testing.T) {
	validate := validator.New()
	ctx := context.Background()
	emailService := email.NewEmailService(&config.Config{})

	t.Run("submit persists a pending message", func(t *testing.T) {
		repo := new(MockMessageRepo)
		repo.On("Add", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewContactMessageUsecase(repo, emailService, validate)

		message, err := uc.Submit(ctx, domain.ContactMessageInput{
			Name: "Jane", Email: "jane@example.com", Message: "I would like to discuss a project.",
		})
		require.NoError(t, err)
		assert.True(t, message.IsPending())
	})

	t.Run("submit rejects a too-short message", func(t *testing.T) {
		repo := new(MockMessageRepo)
		uc := usecase.NewContactMessageUsecase(repo, emailService, validate)

		_, err := uc.Submit(ctx, domain.ContactMessageInput{
			Name: "Jane", Email: "jane@example.com", Message: "hi",
		})
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("mark as read persists the transition", func(t *testing.T) {
		stored, _ := domain.NewContactMessage("Jane", "jane@example.com", "I would like to discuss a project.")
		repo := new(MockMessageRepo)
		repo.On("GetByID", mock.Anything, stored.ID).Return(stored, nil)
		repo.On("Update", mock.Anything, mock.Anything).Return(nil)
		uc := usecase.NewContactMessageUsecase(repo, emailService, validate)

		message, err := uc.MarkAsRead(ctx, stored.ID)
		require.NoError(t, err)
		assert.True(t, message.IsRead())
	})

	t.Run("unknown message is not found", func(t *testing.T) {
		repo := new(MockMessageRepo)
		repo.On("GetByID", mock.Anything, "ghost").Return(nil, domain.ErrNotFound)
		uc := usecase.NewContactMessageUsecase(repo, emailService, validate)

		_, err := uc.MarkAsReplied(ctx, "ghost")
		assert.Equal(t, http.StatusNotFound, appCode(t, err))
	})

	t.Run("list rejects unknown status filters", func(t *testing.T) {
		repo := new(MockMessageRepo)
		uc := usecase.NewContactMessageUsecase(repo, emailService, validate)

		_, err := uc.List(ctx, "archived")
		assert.Equal(t, http.StatusBadRequest, appCode(t, err))
		repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}
