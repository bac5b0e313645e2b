package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lmenard/marquee/internal/domain"
	"github.com/lmenard/marquee/internal/tui/styles"
)

// chromeHeight is the vertical space taken by header, search bar and
// status bar around the list
const chromeHeight = 5

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.searchBar.View())
	b.WriteString("\n")
	b.WriteString(m.list.View())

	body := b.String()

	if m.filters.IsVisible() {
		return m.overlay(m.filters.View())
	}
	if m.showDetails {
		return m.overlay(m.detailsView())
	}

	return body + "\n" + m.statusBarView()
}

// headerView renders the title row and the category tabs, or the
// active query while searching
func (m Model) headerView() string {
	title := styles.TitleStyle.Render(" Marquee ")

	if m.controller.Mode() == domain.ModeSearch {
		query := styles.AccentStyle.Render("Search: ") + styles.TitleStyle.Render(m.controller.Query())
		hint := styles.DimStyle.Render("  esc to go back")
		return title + "  " + query + hint
	}

	var tabs []string
	for i, c := range domain.Categories() {
		label := fmt.Sprintf("%d %s", i+1, c)
		if c == m.controller.Category() {
			tabs = append(tabs, styles.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, styles.InactiveTabStyle.Render(label))
		}
	}

	filterNote := ""
	if !m.controller.Filters().IsDefault() {
		filterNote = "  " + styles.AccentStyle.Render("● filtered")
	}

	return title + "  " + strings.Join(tabs, " ") + filterNote
}

// statusBarView renders the bottom status/help line
func (m Model) statusBarView() string {
	if m.StatusMsg != "" {
		if m.StatusIsErr {
			return styles.ErrorStyle.Render(" " + m.StatusMsg)
		}
		return styles.SuccessStyle.Render(" " + m.StatusMsg)
	}

	state := m.loader.State()
	if state.LoadingInitial {
		return styles.DimStyle.Render(" Loading...")
	}

	help := []string{
		styles.HelpKeyStyle.Render("/") + styles.HelpDescStyle.Render(" search"),
		styles.HelpKeyStyle.Render("f") + styles.HelpDescStyle.Render(" filters"),
		styles.HelpKeyStyle.Render("t") + styles.HelpDescStyle.Render(" trailer"),
		styles.HelpKeyStyle.Render("enter") + styles.HelpDescStyle.Render(" details"),
		styles.HelpKeyStyle.Render("q") + styles.HelpDescStyle.Render(" quit"),
	}
	page := ""
	if state.HasTarget && state.TotalPages > 0 {
		page = styles.DimStyle.Render(fmt.Sprintf("  page %d/%d", state.CurrentPage, state.TotalPages))
	}
	return " " + strings.Join(help, "  ") + page
}

// detailsView renders the details overlay for the selected movie
func (m Model) detailsView() string {
	if m.detailsLoading {
		return styles.ModalStyle.Render(styles.DimStyle.Render("Loading details..."))
	}

	d := m.details
	var lines []string
	lines = append(lines, styles.ModalTitleStyle.Render(d.DisplayTitle()))

	if d.Tagline != "" {
		lines = append(lines, styles.AccentStyle.Render(d.Tagline))
	}

	var facts []string
	if d.Runtime > 0 {
		facts = append(facts, fmt.Sprintf("%d min", int(d.Runtime.Minutes())))
	}
	if d.Rating > 0 {
		facts = append(facts, styles.RenderRating(d.Rating, fmt.Sprintf("★ %.1f", d.Rating)))
	}
	if len(d.Genres) > 0 {
		names := make([]string, len(d.Genres))
		for i, g := range d.Genres {
			names[i] = g.Name
		}
		facts = append(facts, strings.Join(names, ", "))
	}
	if len(facts) > 0 {
		lines = append(lines, styles.SubtitleStyle.Render(strings.Join(facts, "  ·  ")))
	}

	if d.Overview != "" {
		lines = append(lines, "")
		lines = append(lines, wrapText(d.Overview, 60))
	}

	if len(d.Cast) > 0 {
		lines = append(lines, "")
		lines = append(lines, styles.TitleStyle.Render("Cast"))
		limit := len(d.Cast)
		if limit > 6 {
			limit = 6
		}
		for _, c := range d.Cast[:limit] {
			entry := c.Name
			if c.Character != "" {
				entry += styles.DimStyle.Render(" as "+c.Character)
			}
			lines = append(lines, "  "+styles.SubtitleStyle.Render(entry))
		}
	}

	lines = append(lines, "")
	lines = append(lines, styles.HelpKeyStyle.Render("t")+styles.HelpDescStyle.Render(" trailer  ")+
		styles.HelpKeyStyle.Render("esc")+styles.HelpDescStyle.Render(" close"))

	return styles.ModalStyle.Render(strings.Join(lines, "\n"))
}

// overlay centers a modal over the full screen
func (m Model) overlay(content string) string {
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, content)
}

// wrapText wraps text at the given width for the details overlay
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
