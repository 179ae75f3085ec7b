package domain_test

import (
	"strings"
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func TestNewWorkExperience(t *testing.T) {
	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("valid experience", func(t *testing.T) {
		e, err := domain.NewWorkExperience("profile-1", "Backend Engineer", "Acme", start, 0, nil, nil, []string{"Built the API"})
		require.NoError(t, err)
		assert.NotEmpty(t, e.ID)
		assert.True(t, e.IsCurrent())
	})

	t.Run("role at max length passes", func(t *testing.T) {
		role := strings.Repeat("r", domain.MaxRoleLength)
		_, err := domain.NewWorkExperience("profile-1", role, "Acme", start, 0, nil, nil, nil)
		assert.NoError(t, err)
	})

	t.Run("role one over max fails", func(t *testing.T) {
		role := strings.Repeat("r", domain.MaxRoleLength+1)
		_, err := domain.NewWorkExperience("profile-1", role, "Acme", start, 0, nil, nil, nil)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "role", vErr.Field)
		assert.Equal(t, domain.MaxRoleLength, vErr.Max)
	})

	t.Run("blank role fails before length checks", func(t *testing.T) {
		_, err := domain.NewWorkExperience("profile-1", "   ", "Acme", start, 0, nil, nil, nil)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "role", vErr.Field)
		assert.Equal(t, "is required", vErr.Message)
	})

	t.Run("end date equal to start date fails", func(t *testing.T) {
		_, err := domain.NewWorkExperience("profile-1", "Engineer", "Acme", start, 0, nil, timePtr(start), nil)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "end_date", vErr.Field)
	})

	t.Run("end date one day after start date passes", func(t *testing.T) {
		end := start.AddDate(0, 0, 1)
		_, err := domain.NewWorkExperience("profile-1", "Engineer", "Acme", start, 0, nil, timePtr(end), nil)
		assert.NoError(t, err)
	})

	t.Run("whitespace-only description becomes absent", func(t *testing.T) {
		e, err := domain.NewWorkExperience("profile-1", "Engineer", "Acme", start, 0, strPtr("   "), nil, nil)
		require.NoError(t, err)
		assert.Nil(t, e.Description)
	})

	t.Run("too many responsibilities fail", func(t *testing.T) {
		items := make([]string, domain.MaxResponsibilities+1)
		for i := range items {
			items[i] = "did a thing"
		}
		_, err := domain.NewWorkExperience("profile-1", "Engineer", "Acme", start, 0, nil, nil, items)
		assert.Error(t, err)
	})

	t.Run("negative order index fails", func(t *testing.T) {
		_, err := domain.NewWorkExperience("profile-1", "Engineer", "Acme", start, -1, nil, nil, nil)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "order_index", vErr.Field)
	})
}

func TestWorkExperienceApply(t *testing.T) {
	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("patches only the provided fields", func(t *testing.T) {
		e, err := domain.NewWorkExperience("profile-1", "Engineer", "Acme", start, 2, nil, nil, nil)
		require.NoError(t, err)

		err = e.Apply(domain.WorkExperiencePatch{Role: strPtr("Staff Engineer")})
		require.NoError(t, err)
		assert.Equal(t, "Staff Engineer", e.Role)
		assert.Equal(t, "Acme", e.Company)
		assert.Equal(t, 2, e.OrderIndex)
	})

	t.Run("failed patch leaves the entity unchanged", func(t *testing.T) {
		e, err := domain.NewWorkExperience("profile-1", "Engineer", "Acme", start, 0, nil, nil, nil)
		require.NoError(t, err)
		before := *e

		err = e.Apply(domain.WorkExperiencePatch{
			Role:    strPtr("Lead Engineer"),
			Company: strPtr(""),
		})
		require.Error(t, err)
		assert.Equal(t, before, *e)
	})

	t.Run("patching an end date before the start fails", func(t *testing.T) {
		e, err := domain.NewWorkExperience("profile-1", "Engineer", "Acme", start, 0, nil, nil, nil)
		require.NoError(t, err)

		bad := start.AddDate(-1, 0, 0)
		err = e.Apply(domain.WorkExperiencePatch{EndDate: timePtr(bad)})
		assert.Error(t, err)
		assert.True(t, e.IsCurrent())
	})
}
