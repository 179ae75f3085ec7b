package domain_test

import (
	"testing"

	"go-portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContactInformation(t *testing.T) {
	t.Run("minimal contact card", func(t *testing.T) {
		c, err := domain.NewContactInformation("profile-1", "owner@example.com", nil, nil, nil, nil)
		require.NoError(t, err)
		assert.Nil(t, c.Phone)
	})

	t.Run("phone formatting is stripped before validation", func(t *testing.T) {
		c, err := domain.NewContactInformation("profile-1", "owner@example.com",
			strPtr("+44 20 7123 4567"), nil, nil, nil)
		require.NoError(t, err)
		require.NotNil(t, c.Phone)
		assert.Equal(t, "+442071234567", *c.Phone)
	})

	t.Run("phone without country code fails", func(t *testing.T) {
		_, err := domain.NewContactInformation("profile-1", "owner@example.com",
			strPtr("020 7123 4567"), nil, nil, nil)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "phone", vErr.Field)
	})

	t.Run("linkedin must be a http(s) URL", func(t *testing.T) {
		_, err := domain.NewContactInformation("profile-1", "owner@example.com",
			nil, strPtr("linkedin.com/in/owner"), nil, nil)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "linkedin", vErr.Field)
	})

	t.Run("whitespace-only website becomes absent", func(t *testing.T) {
		c, err := domain.NewContactInformation("profile-1", "owner@example.com",
			nil, nil, nil, strPtr("  "))
		require.NoError(t, err)
		assert.Nil(t, c.Website)
	})
}

func TestContactInformationApply(t *testing.T) {
	c, err := domain.NewContactInformation("profile-1", "owner@example.com", nil, nil, nil, nil)
	require.NoError(t, err)

	t.Run("email swap", func(t *testing.T) {
		err := c.Apply(domain.ContactInformationPatch{Email: strPtr("new@example.com")})
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", c.Email)
	})

	t.Run("invalid email patch leaves the card unchanged", func(t *testing.T) {
		err := c.Apply(domain.ContactInformationPatch{Email: strPtr("nope")})
		require.Error(t, err)
		assert.Equal(t, "new@example.com", c.Email)
	})
}
