package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmenard/marquee/internal/domain"
)

func testGenres() []domain.Genre {
	return []domain.Genre{
		{ID: 28, Name: "Action"},
		{ID: 35, Name: "Comedy"},
		{ID: 18, Name: "Drama"},
		{ID: 27, Name: "Horror"},
	}
}

func TestApplyReturnsStagedFilters(t *testing.T) {
	m := NewFilterModal()
	m.SetGenres(testGenres())
	m.Show(domain.DefaultFilters())

	// Move to sort row and cycle once
	m.HandleKey("j")
	m.HandleKey("j")
	m.HandleKey("j")
	m.HandleKey("l")

	handled, applied := m.HandleKey("enter")
	assert.True(t, handled)
	require.NotNil(t, applied)
	assert.Equal(t, domain.SortPopularityAsc, applied.Sort)
	assert.False(t, m.IsVisible())
}

func TestEscapeDiscardsChanges(t *testing.T) {
	m := NewFilterModal()
	m.SetGenres(testGenres())
	m.Show(domain.DefaultFilters())

	m.HandleKey("l") // stage a genre change

	handled, applied := m.HandleKey("esc")
	assert.True(t, handled)
	assert.Nil(t, applied)
	assert.False(t, m.IsVisible())
}

func TestGenrePickerNarrowsByQuery(t *testing.T) {
	m := NewFilterModal()
	m.SetGenres(testGenres())
	m.Show(domain.DefaultFilters())

	m.HandleKey("enter") // open picker on the genre row
	m.HandleKey("d")
	m.HandleKey("r")
	m.HandleKey("enter") // select top match

	handled, applied := m.HandleKey("enter")
	assert.True(t, handled)
	require.NotNil(t, applied)
	assert.Equal(t, 18, applied.Genre) // Drama
}

func TestResetRestoresDefaults(t *testing.T) {
	m := NewFilterModal()
	m.SetGenres(testGenres())
	m.Show(domain.FilterSet{Genre: 28, Year: 2020, MinRating: 7, Sort: domain.SortRatingDesc})

	m.HandleKey("r")

	_, applied := m.HandleKey("enter")
	require.NotNil(t, applied)
	assert.True(t, applied.IsDefault())
}

func TestRatingClampsAtZero(t *testing.T) {
	m := NewFilterModal()
	m.Show(domain.DefaultFilters())

	m.HandleKey("j")
	m.HandleKey("j") // rating row
	m.HandleKey("h")
	m.HandleKey("h")

	_, applied := m.HandleKey("enter")
	require.NotNil(t, applied)
	assert.Equal(t, 0.0, applied.MinRating)
}

func TestHiddenModalIgnoresKeys(t *testing.T) {
	m := NewFilterModal()
	handled, applied := m.HandleKey("j")
	assert.False(t, handled)
	assert.Nil(t, applied)
}
