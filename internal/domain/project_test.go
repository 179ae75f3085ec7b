package domain_test

import (
	"strings"
	"testing"
	"time"

	"go-portfolio-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	start := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	shortDesc := strings.Repeat("d", domain.MinProjectDescLength)
	longDesc := strings.Repeat("d", domain.MinProjectDescWithoutURLs)

	t.Run("short description with a repo link passes", func(t *testing.T) {
		p, err := domain.NewProject("profile-1", "CLI Tool", shortDesc, start, 0,
			nil, nil, strPtr("https://github.com/user/cli"), nil)
		require.NoError(t, err)
		assert.True(t, p.HasURLs())
		assert.True(t, p.IsOngoing())
	})

	// A project with no links has to stand on its description alone,
	// so the minimum jumps from 10 to 100 characters.
	t.Run("short description without links fails", func(t *testing.T) {
		_, err := domain.NewProject("profile-1", "CLI Tool", shortDesc, start, 0,
			nil, nil, nil, nil)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "description", vErr.Field)
		assert.Equal(t, domain.MinProjectDescWithoutURLs, vErr.Min)
	})

	t.Run("long description without links passes", func(t *testing.T) {
		_, err := domain.NewProject("profile-1", "CLI Tool", longDesc, start, 0,
			nil, nil, nil, nil)
		assert.NoError(t, err)
	})

	t.Run("sufficiency counts characters, not bytes", func(t *testing.T) {
		// 100 Cyrillic characters are 200 bytes; still exactly the bound.
		_, err := domain.NewProject("profile-1", "CLI Tool",
			strings.Repeat("я", domain.MinProjectDescWithoutURLs), start, 0,
			nil, nil, nil, nil)
		assert.NoError(t, err)

		_, err = domain.NewProject("profile-1", "CLI Tool",
			strings.Repeat("я", domain.MinProjectDescWithoutURLs-1), start, 0,
			nil, nil, nil, nil)
		assert.Error(t, err)
	})

	t.Run("description below absolute minimum fails regardless of links", func(t *testing.T) {
		_, err := domain.NewProject("profile-1", "CLI Tool", "too short", start, 0,
			nil, strPtr("https://cli.example.com"), nil, nil)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, domain.MinProjectDescLength, vErr.Min)
	})

	t.Run("non-http repo url fails", func(t *testing.T) {
		_, err := domain.NewProject("profile-1", "CLI Tool", longDesc, start, 0,
			nil, nil, strPtr("git@github.com:user/cli.git"), nil)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "repo_url", vErr.Field)
	})

	t.Run("blank technology entry fails", func(t *testing.T) {
		_, err := domain.NewProject("profile-1", "CLI Tool", longDesc, start, 0,
			nil, nil, nil, []string{"Go", "  "})
		assert.Error(t, err)
	})
}

func TestProjectApplyRemovingURLs(t *testing.T) {
	start := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	shortDesc := strings.Repeat("d", domain.MinProjectDescLength)

	p, err := domain.NewProject("profile-1", "CLI Tool", shortDesc, start, 0,
		nil, strPtr("https://cli.example.com"), nil, nil)
	require.NoError(t, err)

	// Clearing the only link would leave a 10 character description
	// carrying the whole project, which the sufficiency rule rejects.
	err = p.Apply(domain.ProjectPatch{LiveURL: strPtr("  ")})
	require.Error(t, err)
	assert.True(t, p.HasURLs())
}
