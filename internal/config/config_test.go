package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequiresAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	require.ErrorIs(t, cfg.Validate(), ErrMissingAPIKey)

	cfg.Catalog.APIKey = "abc123"
	assert.NoError(t, cfg.Validate())
}

func TestValidateRequiresBaseURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Catalog.APIKey = "abc123"
	cfg.Catalog.BaseURL = ""
	assert.Error(t, cfg.Validate())
}

func TestIsConfigured(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.IsConfigured())

	cfg.Catalog.APIKey = "abc123"
	assert.True(t, cfg.IsConfigured())
}

func TestPosterURL(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t,
		"https://image.tmdb.org/t/p/w500/poster.jpg",
		cfg.PosterURL("/poster.jpg"))
	assert.Empty(t, cfg.PosterURL(""))
}

func TestDefaultsPointAtTMDB(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "https://api.themoviedb.org/3", cfg.Catalog.BaseURL)
	assert.Equal(t, "en-US", cfg.Catalog.Language)
	assert.Equal(t, "w500", cfg.UI.PosterSize)
}
