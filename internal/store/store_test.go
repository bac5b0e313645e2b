package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmenard/marquee/internal/domain"
)

func TestGenreRoundTrip(t *testing.T) {
	s, err := NewCatalogStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	genres := []domain.Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comedy"}}
	require.NoError(t, s.SaveGenres(genres))

	got, found, fresh := s.GetGenres()
	assert.True(t, found)
	assert.True(t, fresh)
	assert.Equal(t, genres, got)
}

func TestGenreMiss(t *testing.T) {
	s, err := NewCatalogStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, found, _ := s.GetGenres()
	assert.False(t, found)
}

func TestDetailsRoundTrip(t *testing.T) {
	s, err := NewCatalogStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	details := domain.MovieDetails{
		Movie:   domain.Movie{ID: 550, Title: "Fight Club", Rating: 8.4},
		Tagline: "Mischief. Mayhem. Soap.",
		Genres:  []domain.Genre{{ID: 18, Name: "Drama"}},
		Cast:    []domain.CastMember{{Name: "Edward Norton", Character: "The Narrator", Order: 0}},
	}
	require.NoError(t, s.SaveDetails(details))

	got, found, fresh := s.GetDetails(550)
	assert.True(t, found)
	assert.True(t, fresh)
	assert.Equal(t, details, got)

	_, found, _ = s.GetDetails(551)
	assert.False(t, found)
}

func TestMemoryOnlyMode(t *testing.T) {
	s, err := NewCatalogStore("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.SaveGenres([]domain.Genre{{ID: 1, Name: "X"}}))
	got, found, fresh := s.GetGenres()
	assert.True(t, found)
	assert.True(t, fresh)
	assert.Len(t, got, 1)
}

func TestPersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewCatalogStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.SaveGenres([]domain.Genre{{ID: 28, Name: "Action"}}))
	require.NoError(t, s.Close())

	s2, err := NewCatalogStore(dir)
	require.NoError(t, err)
	defer s2.Close()

	got, found, _ := s2.GetGenres()
	assert.True(t, found)
	assert.Equal(t, "Action", got[0].Name)
}
