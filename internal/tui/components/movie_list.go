package components

import (
	"fmt"
	"strings"

	"github.com/lmenard/marquee/internal/domain"
	"github.com/lmenard/marquee/internal/tui/styles"
)

// loadMoreThreshold is how close to the bottom the cursor must be
// before the next page is requested
const loadMoreThreshold = 5

// MovieList is the scrollable result list. It renders whatever the
// loader made visible, in order; it never reorders or deduplicates.
type MovieList struct {
	items  []domain.Movie
	cursor int
	offset int

	width  int
	height int

	genreNames  map[int]string
	loadingMore bool
	exhausted   bool
}

// NewMovieList creates an empty list
func NewMovieList() MovieList {
	return MovieList{genreNames: make(map[int]string)}
}

// SetSize updates the rendering dimensions
func (l *MovieList) SetSize(width, height int) {
	l.width = width
	l.height = height
	l.clampScroll()
}

// SetGenreNames installs the genre ID to name mapping used for row
// annotations
func (l *MovieList) SetGenreNames(names map[int]string) {
	l.genreNames = names
}

// SetItems replaces the list contents and resets the cursor
func (l *MovieList) SetItems(items []domain.Movie) {
	l.items = items
	l.cursor = 0
	l.offset = 0
}

// AppendItems extends the list, keeping cursor and scroll position
func (l *MovieList) AppendItems(items []domain.Movie) {
	l.items = items
	l.clampScroll()
}

// SetLoadingMore toggles the footer spinner row
func (l *MovieList) SetLoadingMore(loading bool) {
	l.loadingMore = loading
}

// SetExhausted marks that no further pages exist
func (l *MovieList) SetExhausted(exhausted bool) {
	l.exhausted = exhausted
}

// Len returns the number of items
func (l MovieList) Len() int {
	return len(l.items)
}

// Selected returns the movie under the cursor
func (l MovieList) Selected() (domain.Movie, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return domain.Movie{}, false
	}
	return l.items[l.cursor], true
}

// NearEnd reports whether the cursor is close enough to the bottom
// that the next page should be requested
func (l MovieList) NearEnd() bool {
	return len(l.items) > 0 && l.cursor >= len(l.items)-loadMoreThreshold
}

// CursorUp moves the cursor up one row
func (l *MovieList) CursorUp() {
	l.moveCursor(-1)
}

// CursorDown moves the cursor down one row
func (l *MovieList) CursorDown() {
	l.moveCursor(1)
}

// HalfPageUp moves the cursor up half a screen
func (l *MovieList) HalfPageUp() {
	l.moveCursor(-l.visibleRows() / 2)
}

// HalfPageDown moves the cursor down half a screen
func (l *MovieList) HalfPageDown() {
	l.moveCursor(l.visibleRows() / 2)
}

// CursorHome moves the cursor to the first item
func (l *MovieList) CursorHome() {
	l.cursor = 0
	l.offset = 0
}

// CursorEnd moves the cursor to the last item
func (l *MovieList) CursorEnd() {
	l.cursor = len(l.items) - 1
	l.clampScroll()
}

func (l *MovieList) moveCursor(delta int) {
	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
	l.clampScroll()
}

func (l *MovieList) visibleRows() int {
	rows := l.height - 1 // footer row
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (l *MovieList) clampScroll() {
	if l.cursor < 0 {
		l.cursor = 0
	}
	rows := l.visibleRows()
	if l.cursor < l.offset {
		l.offset = l.cursor
	}
	if l.cursor >= l.offset+rows {
		l.offset = l.cursor - rows + 1
	}
	if l.offset < 0 {
		l.offset = 0
	}
}

// View renders the list
func (l MovieList) View() string {
	if len(l.items) == 0 {
		return styles.DimStyle.Render("  No movies to show")
	}

	rows := l.visibleRows()
	end := l.offset + rows
	if end > len(l.items) {
		end = len(l.items)
	}

	var b strings.Builder
	for i := l.offset; i < end; i++ {
		b.WriteString(l.renderRow(i, i == l.cursor))
		b.WriteString("\n")
	}

	b.WriteString(l.footer())
	return b.String()
}

func (l MovieList) renderRow(i int, selected bool) string {
	m := l.items[i]

	year := "    "
	if y := m.Year(); y > 0 {
		year = fmt.Sprintf("%d", y)
	}
	rating := " -- "
	if m.Rating > 0 {
		rating = fmt.Sprintf("%4.1f", m.Rating)
	}

	titleWidth := l.width - 24
	if titleWidth < 10 {
		titleWidth = 10
	}
	title := styles.Pad(styles.Truncate(m.Title, titleWidth), titleWidth)

	genres := styles.Truncate(l.genreLabel(m.GenreIDs), 14)

	if selected {
		row := fmt.Sprintf("%s %s %s %s", title, year, rating, genres)
		return styles.SelectedItemStyle.Render(styles.Pad(row, l.width-2))
	}

	return styles.NormalItemStyle.Render(title) +
		" " + styles.DimStyle.Render(year) +
		" " + styles.RenderRating(m.Rating, rating) +
		" " + styles.DimStyle.Render(genres)
}

// genreLabel joins the first two genre names for a compact annotation
func (l MovieList) genreLabel(ids []int) string {
	var names []string
	for _, id := range ids {
		if name, ok := l.genreNames[id]; ok {
			names = append(names, name)
			if len(names) == 2 {
				break
			}
		}
	}
	return strings.Join(names, ", ")
}

func (l MovieList) footer() string {
	switch {
	case l.loadingMore:
		return styles.DimStyle.Render("  Loading more...")
	case l.exhausted:
		return styles.DimStyle.Render(fmt.Sprintf("  %d movies (end of results)", len(l.items)))
	default:
		return styles.DimStyle.Render(fmt.Sprintf("  %d movies", len(l.items)))
	}
}
