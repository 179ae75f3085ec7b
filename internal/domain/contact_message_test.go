package domain_test

import (
	"strings"
	"testing"

	"go-portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContactMessage(t *testing.T) {
	t.Run("valid message starts pending", func(t *testing.T) {
		m, err := domain.NewContactMessage("Jane Doe", "jane@example.com", "I would like to discuss a project.")
		require.NoError(t, err)
		assert.True(t, m.IsPending())
		assert.Nil(t, m.ReadAt)
		assert.Nil(t, m.RepliedAt)
	})

	t.Run("message below minimum length fails", func(t *testing.T) {
		_, err := domain.NewContactMessage("Jane Doe", "jane@example.com", "hi there")
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "message", vErr.Field)
		assert.Equal(t, domain.MinMessageLength, vErr.Min)
	})

	t.Run("message at maximum length passes", func(t *testing.T) {
		_, err := domain.NewContactMessage("Jane Doe", "jane@example.com", strings.Repeat("m", domain.MaxMessageLength))
		assert.NoError(t, err)
	})

	t.Run("message one over maximum fails", func(t *testing.T) {
		_, err := domain.NewContactMessage("Jane Doe", "jane@example.com", strings.Repeat("m", domain.MaxMessageLength+1))
		assert.Error(t, err)
	})

	t.Run("length bounds count characters, not bytes", func(t *testing.T) {
		// 6 characters but 12 bytes; still below the minimum of 10.
		_, err := domain.NewContactMessage("Jane Doe", "jane@example.com", "Привет")
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "message", vErr.Field)

		_, err = domain.NewContactMessage("Jane Doe", "jane@example.com", strings.Repeat("ы", domain.MaxMessageLength))
		assert.NoError(t, err)

		_, err = domain.NewContactMessage("Jane Doe", "jane@example.com", strings.Repeat("ы", domain.MaxMessageLength+1))
		assert.Error(t, err)
	})

	t.Run("invalid email fails", func(t *testing.T) {
		_, err := domain.NewContactMessage("Jane Doe", "not-an-email", "I would like to discuss a project.")
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "email", vErr.Field)
	})
}

func TestContactMessageLifecycle(t *testing.T) {
	newMessage := func(t *testing.T) *domain.ContactMessage {
		m, err := domain.NewContactMessage("Jane Doe", "jane@example.com", "I would like to discuss a project.")
		require.NoError(t, err)
		return m
	}

	t.Run("pending to read", func(t *testing.T) {
		m := newMessage(t)
		m.MarkAsRead()
		assert.True(t, m.IsRead())
		assert.NotNil(t, m.ReadAt)
		assert.Nil(t, m.RepliedAt)
	})

	t.Run("marking read twice keeps the original timestamp", func(t *testing.T) {
		m := newMessage(t)
		m.MarkAsRead()
		first := *m.ReadAt
		m.MarkAsRead()
		assert.Equal(t, first, *m.ReadAt)
	})

	t.Run("replying to an unread message backfills read_at", func(t *testing.T) {
		m := newMessage(t)
		m.MarkAsReplied()
		assert.True(t, m.IsReplied())
		require.NotNil(t, m.ReadAt)
		require.NotNil(t, m.RepliedAt)
		assert.Equal(t, *m.RepliedAt, *m.ReadAt)
	})

	t.Run("replying after reading keeps distinct timestamps", func(t *testing.T) {
		m := newMessage(t)
		m.MarkAsRead()
		readAt := *m.ReadAt
		m.MarkAsReplied()
		assert.Equal(t, readAt, *m.ReadAt)
		assert.NotNil(t, m.RepliedAt)
	})

	t.Run("replied is terminal", func(t *testing.T) {
		m := newMessage(t)
		m.MarkAsReplied()
		repliedAt := *m.RepliedAt
		m.MarkAsReplied()
		m.MarkAsRead()
		assert.True(t, m.IsReplied())
		assert.Equal(t, repliedAt, *m.RepliedAt)
	})
}
