package components

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmenard/marquee/internal/domain"
)

func testMovies(n int) []domain.Movie {
	movies := make([]domain.Movie, n)
	for i := range movies {
		movies[i] = domain.Movie{ID: i + 1, Title: fmt.Sprintf("Movie %d", i+1)}
	}
	return movies
}

func TestSetItemsResetsCursor(t *testing.T) {
	l := NewMovieList()
	l.SetSize(80, 20)
	l.SetItems(testMovies(10))
	l.CursorDown()
	l.CursorDown()

	l.SetItems(testMovies(3))

	sel, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, sel.ID)
}

func TestAppendKeepsCursor(t *testing.T) {
	l := NewMovieList()
	l.SetSize(80, 20)
	l.SetItems(testMovies(20))
	l.CursorEnd()

	sel, _ := l.Selected()
	assert.Equal(t, 20, sel.ID)

	l.AppendItems(testMovies(40))
	sel, _ = l.Selected()
	assert.Equal(t, 20, sel.ID)
}

func TestCursorClampsAtBounds(t *testing.T) {
	l := NewMovieList()
	l.SetSize(80, 20)
	l.SetItems(testMovies(2))

	l.CursorUp()
	sel, ok := l.Selected()
	require.True(t, ok)
	assert.Equal(t, 1, sel.ID)

	l.CursorDown()
	l.CursorDown()
	l.CursorDown()
	sel, _ = l.Selected()
	assert.Equal(t, 2, sel.ID)
}

func TestNearEndTriggersCloseToBottom(t *testing.T) {
	l := NewMovieList()
	l.SetSize(80, 20)
	l.SetItems(testMovies(20))

	assert.False(t, l.NearEnd())

	l.CursorEnd()
	assert.True(t, l.NearEnd())
}

func TestEmptyListHasNoSelection(t *testing.T) {
	l := NewMovieList()
	_, ok := l.Selected()
	assert.False(t, ok)
	assert.False(t, l.NearEnd())
}
