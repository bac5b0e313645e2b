package components

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/lmenard/marquee/internal/domain"
	"github.com/lmenard/marquee/internal/tui/styles"
)

// Filter modal rows
const (
	rowGenre = iota
	rowYear
	rowRating
	rowSort
	rowCount
)

const (
	minFilterYear  = 1900
	ratingStep     = 0.5
	maxRatingFloor = 9.5
	pickerHeight   = 8
)

// FilterModal is the popup for editing the discover filters. Changes
// are staged on a working copy and applied only on confirm.
type FilterModal struct {
	visible bool
	row     int
	working domain.FilterSet

	genres     []domain.Genre
	genreNames map[int]string

	// Genre picker sub-mode with type-to-narrow
	pickerOpen   bool
	pickerQuery  string
	pickerCursor int
}

// NewFilterModal creates a hidden filter modal
func NewFilterModal() FilterModal {
	return FilterModal{genreNames: make(map[int]string)}
}

// SetGenres installs the selectable genre list
func (m *FilterModal) SetGenres(genres []domain.Genre) {
	m.genres = genres
	m.genreNames = make(map[int]string, len(genres))
	for _, g := range genres {
		m.genreNames[g.ID] = g.Name
	}
}

// Show displays the modal seeded with the currently active filters
func (m *FilterModal) Show(active domain.FilterSet) {
	m.visible = true
	m.row = rowGenre
	m.working = active
	m.pickerOpen = false
}

// Hide dismisses the modal without applying
func (m *FilterModal) Hide() {
	m.visible = false
	m.pickerOpen = false
}

// IsVisible returns whether the modal is shown
func (m FilterModal) IsVisible() bool {
	return m.visible
}

// HandleKey processes a key press, returns (handled, applied). A
// non-nil applied means the user confirmed the staged filters.
func (m *FilterModal) HandleKey(key string) (handled bool, applied *domain.FilterSet) {
	if !m.visible {
		return false, nil
	}
	if m.pickerOpen {
		m.handlePickerKey(key)
		return true, nil
	}

	switch key {
	case "j", "down":
		if m.row < rowCount-1 {
			m.row++
		}
	case "k", "up":
		if m.row > 0 {
			m.row--
		}
	case "h", "left":
		m.adjust(-1)
	case "l", "right":
		m.adjust(1)
	case "r":
		m.working = domain.DefaultFilters()
	case "enter":
		if m.row == rowGenre {
			m.openPicker()
			return true, nil
		}
		chosen := m.working
		m.visible = false
		return true, &chosen
	case "esc", "f":
		m.visible = false
	}

	return true, nil // consume all keys when visible
}

// adjust steps the value on the current row
func (m *FilterModal) adjust(delta int) {
	switch m.row {
	case rowGenre:
		m.cycleGenre(delta)
	case rowYear:
		m.adjustYear(delta)
	case rowRating:
		m.working.MinRating += ratingStep * float64(delta)
		if m.working.MinRating < 0 {
			m.working.MinRating = 0
		}
		if m.working.MinRating > maxRatingFloor {
			m.working.MinRating = maxRatingFloor
		}
	case rowSort:
		keys := domain.SortKeys()
		idx := 0
		for i, k := range keys {
			if k == m.working.Sort {
				idx = i
				break
			}
		}
		idx = (idx + delta + len(keys)) % len(keys)
		m.working.Sort = keys[idx]
	}
}

func (m *FilterModal) cycleGenre(delta int) {
	if len(m.genres) == 0 {
		return
	}
	// Position -1 is "Any"
	idx := -1
	for i, g := range m.genres {
		if g.ID == m.working.Genre {
			idx = i
			break
		}
	}
	idx += delta
	if idx < -1 {
		idx = len(m.genres) - 1
	}
	if idx >= len(m.genres) {
		idx = -1
	}
	if idx == -1 {
		m.working.Genre = 0
	} else {
		m.working.Genre = m.genres[idx].ID
	}
}

func (m *FilterModal) adjustYear(delta int) {
	maxYear := time.Now().Year() + 1
	switch {
	case m.working.Year == 0 && delta < 0:
		m.working.Year = maxYear
	case m.working.Year == 0 && delta > 0:
		m.working.Year = minFilterYear
	default:
		m.working.Year += delta
		if m.working.Year < minFilterYear || m.working.Year > maxYear {
			m.working.Year = 0
		}
	}
}

// === Genre picker ===

func (m *FilterModal) openPicker() {
	m.pickerOpen = true
	m.pickerQuery = ""
	m.pickerCursor = 0
}

func (m *FilterModal) handlePickerKey(key string) {
	switch key {
	case "esc":
		m.pickerOpen = false
	case "enter":
		narrowed := m.narrowedGenres()
		if m.pickerCursor >= 0 && m.pickerCursor < len(narrowed) {
			m.working.Genre = narrowed[m.pickerCursor].ID
		}
		m.pickerOpen = false
	case "down", "ctrl+n":
		if m.pickerCursor < len(m.narrowedGenres())-1 {
			m.pickerCursor++
		}
	case "up", "ctrl+p":
		if m.pickerCursor > 0 {
			m.pickerCursor--
		}
	case "backspace":
		if len(m.pickerQuery) > 0 {
			m.pickerQuery = m.pickerQuery[:len(m.pickerQuery)-1]
			m.pickerCursor = 0
		}
	default:
		if len(key) == 1 {
			m.pickerQuery += key
			m.pickerCursor = 0
		}
	}
}

// narrowedGenres returns the genres matching the picker query, ranked
func (m *FilterModal) narrowedGenres() []domain.Genre {
	if m.pickerQuery == "" {
		return m.genres
	}

	names := make([]string, len(m.genres))
	byName := make(map[string]domain.Genre, len(m.genres))
	for i, g := range m.genres {
		names[i] = g.Name
		byName[g.Name] = g
	}

	ranks := fuzzy.RankFindFold(m.pickerQuery, names)

	// Sort by score (lower is better)
	sort.Slice(ranks, func(i, j int) bool {
		return ranks[i].Distance < ranks[j].Distance
	})

	narrowed := make([]domain.Genre, 0, len(ranks))
	for _, r := range ranks {
		narrowed = append(narrowed, byName[r.Target])
	}
	return narrowed
}

// === Rendering ===

// View renders the filter modal
func (m FilterModal) View() string {
	if !m.visible {
		return ""
	}
	if m.pickerOpen {
		return m.pickerView()
	}

	rows := []struct {
		label string
		value string
	}{
		{"Genre", m.genreValue()},
		{"Year", m.yearValue()},
		{"Min Rating", m.ratingValue()},
		{"Sort", m.working.Sort.String()},
	}

	var lines []string
	for i, r := range rows {
		text := styles.Pad(r.label, 12) + r.value
		if i == m.row {
			lines = append(lines, styles.SelectedItemStyle.Render(styles.Pad("› "+text, 34)))
		} else {
			lines = append(lines, styles.NormalItemStyle.Render(styles.Pad("  "+text, 34)))
		}
	}

	lines = append(lines, "")
	lines = append(lines, styles.HelpKeyStyle.Render("h/l")+styles.HelpDescStyle.Render(" adjust  ")+
		styles.HelpKeyStyle.Render("r")+styles.HelpDescStyle.Render(" reset  ")+
		styles.HelpKeyStyle.Render("enter")+styles.HelpDescStyle.Render(" apply"))

	return styles.ModalStyle.Render(
		styles.ModalTitleStyle.Render("Filters") + "\n" + strings.Join(lines, "\n"))
}

func (m FilterModal) pickerView() string {
	narrowed := m.narrowedGenres()
	end := len(narrowed)
	if end > pickerHeight {
		end = pickerHeight
	}

	var lines []string
	lines = append(lines, styles.AccentStyle.Render("> ")+m.pickerQuery+styles.AccentStyle.Render("▏"))
	for i := 0; i < end; i++ {
		if i == m.pickerCursor {
			lines = append(lines, styles.SelectedItemStyle.Render(styles.Pad(narrowed[i].Name, 24)))
		} else {
			lines = append(lines, styles.NormalItemStyle.Render(styles.Pad(narrowed[i].Name, 24)))
		}
	}
	if len(narrowed) == 0 {
		lines = append(lines, styles.DimStyle.Render("  no matching genre"))
	}

	return styles.ModalStyle.Render(
		styles.ModalTitleStyle.Render("Pick a genre") + "\n" + strings.Join(lines, "\n"))
}

func (m FilterModal) genreValue() string {
	if m.working.Genre == 0 {
		return "Any"
	}
	if name, ok := m.genreNames[m.working.Genre]; ok {
		return name
	}
	return fmt.Sprintf("#%d", m.working.Genre)
}

func (m FilterModal) yearValue() string {
	if m.working.Year == 0 {
		return "Any"
	}
	return fmt.Sprintf("%d", m.working.Year)
}

func (m FilterModal) ratingValue() string {
	if m.working.MinRating == 0 {
		return "Any"
	}
	return fmt.Sprintf("≥ %.1f", m.working.MinRating)
}
