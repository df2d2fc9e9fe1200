package content_test

import (
	"testing"

	"portfolio-backend/internal/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjects(t *testing.T) {
	projects, err := content.Projects()
	require.NoError(t, err)
	require.Len(t, projects, 5)

	assert.Equal(t, "Williamstown SC", projects[0].Title)
	assert.Nil(t, projects[0].Testimonial)
	assert.Equal(t, "Karl from SES Melbourne", projects[1].Testimonial.Author)
	assert.Contains(t, projects[3].Tags, "SvelteKit")

	last := projects[4]
	assert.Nil(t, last.Images.Desktop)
	assert.Empty(t, last.BusinessMetrics)
	assert.NotNil(t, last.BusinessMetrics)
}

func TestParseProjects(t *testing.T) {
	t.Run("Should reject malformed YAML", func(t *testing.T) {
		_, err := content.ParseProjects([]byte("- title: [unterminated"))
		assert.Error(t, err)
	})

	t.Run("Should reject untitled projects", func(t *testing.T) {
		_, err := content.ParseProjects([]byte("- title: A\n- description: no title\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "project #2")
	})

	t.Run("Should default empty lists", func(t *testing.T) {
		projects, err := content.ParseProjects([]byte("- title: A\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{}, projects[0].Tags)
		assert.Equal(t, []string{}, projects[0].BusinessMetrics)
	})
}
