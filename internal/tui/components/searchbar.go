package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/lmenard/marquee/internal/domain"
	"github.com/lmenard/marquee/internal/tui/styles"
)

// SearchBar is the query input plus its suggestion dropdown. The
// dropdown is advisory; submitting always searches the typed text (or
// the highlighted suggestion's title when one is selected).
type SearchBar struct {
	input       textinput.Model
	suggestions []domain.Suggestion
	cursor      int // -1 = nothing highlighted
	width       int
}

// NewSearchBar creates an unfocused search bar
func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.Prompt = "/ "
	ti.PromptStyle = styles.AccentStyle
	ti.CharLimit = 100
	return SearchBar{input: ti, cursor: -1}
}

// SetWidth updates the rendering width
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	s.input.Width = width - 4
}

// Focus gives the input keyboard focus
func (s *SearchBar) Focus() tea.Cmd {
	return s.input.Focus()
}

// Blur removes keyboard focus and closes the dropdown
func (s *SearchBar) Blur() {
	s.input.Blur()
	s.ClearSuggestions()
}

// Focused reports whether the input has keyboard focus
func (s SearchBar) Focused() bool {
	return s.input.Focused()
}

// Value returns the current query text
func (s SearchBar) Value() string {
	return s.input.Value()
}

// Reset clears the query text and dropdown
func (s *SearchBar) Reset() {
	s.input.SetValue("")
	s.ClearSuggestions()
}

// Update forwards a message to the underlying input and reports
// whether the text changed
func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd, bool) {
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, s.input.Value() != before
}

// SetSuggestions replaces the dropdown contents
func (s *SearchBar) SetSuggestions(suggestions []domain.Suggestion) {
	s.suggestions = suggestions
	s.cursor = -1
}

// ClearSuggestions empties the dropdown
func (s *SearchBar) ClearSuggestions() {
	s.suggestions = nil
	s.cursor = -1
}

// HasSuggestions reports whether the dropdown is showing
func (s SearchBar) HasSuggestions() bool {
	return len(s.suggestions) > 0
}

// MoveUp moves the dropdown highlight up, stopping at the input row
func (s *SearchBar) MoveUp() {
	if s.cursor >= 0 {
		s.cursor--
	}
}

// MoveDown moves the dropdown highlight down
func (s *SearchBar) MoveDown() {
	if s.cursor < len(s.suggestions)-1 {
		s.cursor++
	}
}

// SelectedSuggestion returns the highlighted suggestion, if any
func (s SearchBar) SelectedSuggestion() (domain.Suggestion, bool) {
	if s.cursor < 0 || s.cursor >= len(s.suggestions) {
		return domain.Suggestion{}, false
	}
	return s.suggestions[s.cursor], true
}

// View renders the input row and, when present, the dropdown
func (s SearchBar) View() string {
	var b strings.Builder
	b.WriteString(s.input.View())

	for i, sug := range s.suggestions {
		b.WriteString("\n")
		b.WriteString(s.renderSuggestion(sug, i == s.cursor))
	}
	return b.String()
}

func (s SearchBar) renderSuggestion(sug domain.Suggestion, selected bool) string {
	badge := styles.DimBadgeStyle.Render(sug.Kind.String())
	if sug.Kind == domain.MediaKindMovie {
		badge = styles.BadgeStyle.Render(sug.Kind.String())
	}

	title := highlightMatches(sug.Title, s.input.Value(), selected)
	row := "  " + badge + " " + title
	if selected {
		return styles.SelectedItemStyle.Render("  "+sug.Kind.String()) + " " + title
	}
	return row
}

// highlightMatches bolds the characters of title that fuzzy-match the
// query, the same way the result filter does
func highlightMatches(title, query string, selected bool) string {
	if query == "" {
		return styles.SubtitleStyle.Render(title)
	}

	matches := fuzzy.Find(strings.ToLower(query), []string{strings.ToLower(title)})
	if len(matches) == 0 {
		return styles.SubtitleStyle.Render(title)
	}

	matched := make(map[int]bool, len(matches[0].MatchedIndexes))
	for _, idx := range matches[0].MatchedIndexes {
		matched[idx] = true
	}

	highlight := styles.MatchHighlightStyle
	if selected {
		highlight = styles.MatchHighlightSelectedStyle
	}

	var b strings.Builder
	for i, r := range []rune(title) {
		if matched[i] {
			b.WriteString(highlight.Render(string(r)))
		} else {
			b.WriteString(styles.SubtitleStyle.Render(string(r)))
		}
	}
	return b.String()
}
