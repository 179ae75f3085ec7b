package domain_test

import (
	"strings"
	"testing"

	"go-portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSkill(t *testing.T) {
	t.Run("valid skill", func(t *testing.T) {
		s, err := domain.NewSkill("profile-1", "Go", "backend", "expert", 0)
		require.NoError(t, err)
		assert.Equal(t, "Go", s.Name)
	})

	t.Run("every vocabulary level is accepted", func(t *testing.T) {
		for _, level := range domain.SkillLevels {
			_, err := domain.NewSkill("profile-1", "Go", "backend", level, 0)
			assert.NoError(t, err, "level %q", level)
		}
	})

	t.Run("unknown level fails", func(t *testing.T) {
		_, err := domain.NewSkill("profile-1", "Go", "backend", "wizard", 0)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "level", vErr.Field)
	})

	t.Run("unknown category fails", func(t *testing.T) {
		_, err := domain.NewSkill("profile-1", "Go", "gardening", "expert", 0)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "category", vErr.Field)
	})

	t.Run("vocabulary is case sensitive", func(t *testing.T) {
		_, err := domain.NewSkill("profile-1", "Go", "Backend", "expert", 0)
		assert.Error(t, err)
	})

	t.Run("multibyte name at maximum length passes", func(t *testing.T) {
		_, err := domain.NewSkill("profile-1", strings.Repeat("я", domain.MaxSkillNameLength), "backend", "expert", 0)
		assert.NoError(t, err)

		_, err = domain.NewSkill("profile-1", strings.Repeat("я", domain.MaxSkillNameLength+1), "backend", "expert", 0)
		assert.Error(t, err)
	})
}

func TestSkillApply(t *testing.T) {
	s, err := domain.NewSkill("profile-1", "Go", "backend", "advanced", 1)
	require.NoError(t, err)

	t.Run("level upgrade", func(t *testing.T) {
		err := s.Apply(domain.SkillPatch{Level: strPtr("expert")})
		require.NoError(t, err)
		assert.Equal(t, "expert", s.Level)
		assert.Equal(t, "backend", s.Category)
	})

	t.Run("invalid patch is rejected atomically", func(t *testing.T) {
		err := s.Apply(domain.SkillPatch{Name: strPtr("Rust"), Category: strPtr("nope")})
		require.Error(t, err)
		assert.Equal(t, "Go", s.Name)
	})
}
