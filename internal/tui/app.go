package tui

import (
	"errors"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmenard/marquee/internal/config"
	"github.com/lmenard/marquee/internal/discover"
	"github.com/lmenard/marquee/internal/domain"
	"github.com/lmenard/marquee/internal/store"
	"github.com/lmenard/marquee/internal/tmdb"
	"github.com/lmenard/marquee/internal/tui/components"
)

const statusLinger = 4 * time.Second

// Model is the main Bubble Tea model for the application
type Model struct {
	// Services
	Client   *tmdb.Client
	Cache    *store.CatalogStore
	Resolver *discover.TrailerResolver
	Cfg      *config.Config
	Logger   *slog.Logger

	// Browsing core. The controller decides what is being browsed, the
	// loader owns pagination for it, the debouncer feeds the dropdown.
	controller *discover.Controller
	loader     *discover.Loader
	debouncer  *discover.Debouncer

	// UI components
	list      components.MovieList
	searchBar components.SearchBar
	filters   components.FilterModal

	genreNames map[int]string

	// Details overlay
	showDetails    bool
	detailsFor     int
	details        domain.MovieDetails
	detailsLoading bool

	// Dimensions
	Width  int
	Height int
	Ready  bool

	// UI state
	StatusMsg   string
	StatusIsErr bool
}

// NewModel creates a new application model
func NewModel(
	client *tmdb.Client,
	cache *store.CatalogStore,
	resolver *discover.TrailerResolver,
	cfg *config.Config,
	logger *slog.Logger,
) Model {
	return Model{
		Client:     client,
		Cache:      cache,
		Resolver:   resolver,
		Cfg:        cfg,
		Logger:     logger,
		controller: discover.NewController(domain.CategoryPopular),
		loader:     discover.NewLoader(),
		debouncer:  discover.NewDebouncer(),
		list:       components.NewMovieList(),
		searchBar:  components.NewSearchBar(),
		filters:    components.NewFilterModal(),
		genreNames: make(map[int]string),
	}
}

// Init kicks off the genre load and the first page of the default
// category
func (m Model) Init() tea.Cmd {
	req := m.loader.SetTarget(m.controller.Slot())
	return tea.Batch(
		LoadGenresCmd(m.Client, m.Cache),
		FetchPageCmd(m.Client, req),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.list.SetSize(msg.Width, msg.Height-chromeHeight)
		m.searchBar.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case PageLoadedMsg:
		return m.handlePageLoaded(msg)

	case DebounceElapsedMsg:
		if fetch := m.debouncer.TimerElapsed(msg.Timer); fetch != nil {
			return m, FetchSuggestionsCmd(m.Client, *fetch)
		}
		return m, nil

	case SuggestionsMsg:
		if !m.debouncer.ShouldApply(msg.Fetch) {
			return m, nil
		}
		if msg.Err != nil {
			// Suggestions are best-effort; the dropdown just stays empty
			m.Logger.Warn("suggestion fetch failed", "query", msg.Fetch.Query, "error", msg.Err)
			return m, nil
		}
		m.searchBar.SetSuggestions(msg.Suggestions)
		return m, nil

	case GenresLoadedMsg:
		if msg.Err != nil {
			m.Logger.Warn("genre load failed", "error", msg.Err)
			return m, nil
		}
		m.genreNames = make(map[int]string, len(msg.Genres))
		for _, g := range msg.Genres {
			m.genreNames[g.ID] = g.Name
		}
		m.list.SetGenreNames(m.genreNames)
		m.filters.SetGenres(msg.Genres)
		return m, nil

	case DetailsLoadedMsg:
		if !m.showDetails || msg.MovieID != m.detailsFor {
			return m, nil
		}
		m.detailsLoading = false
		if msg.Err != nil {
			m.showDetails = false
			return m.setStatus(errorText(msg.Err), true)
		}
		m.details = msg.Details
		return m, nil

	case TrailerResolvedMsg:
		if msg.Err != nil {
			return m.setStatus("Could not load trailer: "+errorText(msg.Err), true)
		}
		if msg.Trailer.Unavailable {
			return m.setStatus("No trailer available", false)
		}
		return m.setStatus("Trailer: "+msg.Trailer.EmbedURL, false)

	case StatusMsg:
		return m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	return m, nil
}

// handlePageLoaded feeds a fetch outcome through the loader and syncs
// the list component with whatever survived the staleness check
func (m Model) handlePageLoaded(msg PageLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.loader.Apply(msg.Req, msg.Result, msg.Err) {
		return m, nil
	}

	state := m.loader.State()
	if msg.Req.Replace {
		m.list.SetItems(state.Visible)
	} else {
		m.list.AppendItems(state.Visible)
	}
	m.list.SetLoadingMore(state.LoadingMore)
	m.list.SetExhausted(state.Exhausted())

	if state.LastError != nil {
		return m.setStatus(errorText(state.LastError), true)
	}
	return m, nil
}

// handleKeyMsg routes keys by what currently owns the keyboard:
// modal, details overlay, search input, then the list
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if handled, applied := m.filters.HandleKey(msg.String()); handled {
		if applied != nil {
			if slot, changed := m.controller.SetFilters(*applied); changed {
				return m, m.retarget(slot)
			}
		}
		return m, nil
	}

	if m.showDetails {
		return m.handleDetailsKey(msg)
	}

	if m.searchBar.Focused() {
		return m.handleSearchKey(msg)
	}

	return m.handleBrowseKey(msg)
}

func (m Model) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Escape), key.Matches(msg, Keys.Enter), key.Matches(msg, Keys.Quit):
		m.showDetails = false
		return m, nil
	case key.Matches(msg, Keys.Trailer):
		return m.resolveTrailer(m.detailsFor)
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searchBar.Blur()
		m.searchBar.Reset()
		m.debouncer.OnQueryChanged("")
		if slot, changed := m.controller.ClearQuery(); changed {
			return m, m.retarget(slot)
		}
		return m, nil

	case "up":
		m.searchBar.MoveUp()
		return m, nil

	case "down":
		m.searchBar.MoveDown()
		return m, nil

	case "enter":
		query := m.searchBar.Value()
		if sug, ok := m.searchBar.SelectedSuggestion(); ok {
			query = sug.Title
		}
		m.searchBar.Blur()
		m.debouncer.OnQueryChanged("")
		if slot, changed := m.controller.SubmitQuery(query); changed {
			return m, m.retarget(slot)
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var inputCmd tea.Cmd
	var changed bool
	m.searchBar, inputCmd, changed = m.searchBar.Update(msg)
	cmds = append(cmds, inputCmd)

	if changed {
		timer, clear := m.debouncer.OnQueryChanged(m.searchBar.Value())
		if clear {
			m.searchBar.ClearSuggestions()
		} else {
			cmds = append(cmds, DebounceTimerCmd(*timer))
		}
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Search):
		return m, m.searchBar.Focus()

	case key.Matches(msg, Keys.Filter):
		m.filters.Show(m.controller.Filters())
		return m, nil

	case key.Matches(msg, Keys.Trailer):
		if sel, ok := m.list.Selected(); ok {
			return m.resolveTrailer(sel.ID)
		}
		return m, nil

	case key.Matches(msg, Keys.Enter):
		if sel, ok := m.list.Selected(); ok {
			m.showDetails = true
			m.detailsFor = sel.ID
			m.detailsLoading = true
			m.details = domain.MovieDetails{}
			return m, LoadDetailsCmd(m.Client, m.Cache, sel.ID)
		}
		return m, nil

	case key.Matches(msg, Keys.NextTab):
		return m.switchCategory(1)

	case key.Matches(msg, Keys.PrevTab):
		return m.switchCategory(-1)

	case key.Matches(msg, Keys.Refresh):
		return m, m.retarget(m.controller.Slot())

	case key.Matches(msg, Keys.Escape):
		if slot, changed := m.controller.ClearQuery(); changed {
			m.searchBar.Reset()
			return m, m.retarget(slot)
		}
		return m, nil

	case key.Matches(msg, Keys.Up):
		m.list.CursorUp()
		return m, nil

	case key.Matches(msg, Keys.Down):
		m.list.CursorDown()
		return m, m.maybeLoadMore()

	case key.Matches(msg, Keys.HalfUp):
		m.list.HalfPageUp()
		return m, nil

	case key.Matches(msg, Keys.HalfDown):
		m.list.HalfPageDown()
		return m, m.maybeLoadMore()

	case key.Matches(msg, Keys.Home):
		m.list.CursorHome()
		return m, nil

	case key.Matches(msg, Keys.End):
		m.list.CursorEnd()
		return m, m.maybeLoadMore()
	}

	// Direct category selection
	switch msg.String() {
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		cats := domain.Categories()
		if idx < len(cats) {
			if slot, changed := m.controller.SetCategory(cats[idx]); changed {
				m.searchBar.Reset()
				return m, m.retarget(slot)
			}
		}
	}

	return m, nil
}

// switchCategory cycles the browse category by delta tabs. While
// searching this re-enters Browse mode on the current category.
func (m Model) switchCategory(delta int) (tea.Model, tea.Cmd) {
	cats := domain.Categories()
	idx := 0
	for i, c := range cats {
		if c == m.controller.Category() {
			idx = i
			break
		}
	}
	next := cats[(idx+delta+len(cats))%len(cats)]
	if m.controller.Mode() == domain.ModeSearch {
		next = m.controller.Category()
	}

	if slot, changed := m.controller.SetCategory(next); changed {
		m.searchBar.Reset()
		return m, m.retarget(slot)
	}
	return m, nil
}

// retarget points the loader at a new slot and fetches its first page
func (m *Model) retarget(slot domain.FetchKey) tea.Cmd {
	req := m.loader.SetTarget(slot)
	m.list.SetItems(nil)
	m.list.SetLoadingMore(false)
	m.list.SetExhausted(false)
	return FetchPageCmd(m.Client, req)
}

// maybeLoadMore requests the next page when the cursor nears the
// bottom; the loader refuses while a page is already in flight or the
// listing is exhausted
func (m *Model) maybeLoadMore() tea.Cmd {
	if !m.list.NearEnd() {
		return nil
	}
	req, ok := m.loader.LoadMore()
	if !ok {
		return nil
	}
	m.list.SetLoadingMore(true)
	return FetchPageCmd(m.Client, req)
}

func (m Model) resolveTrailer(movieID int) (tea.Model, tea.Cmd) {
	m.StatusMsg = "Resolving trailer..."
	m.StatusIsErr = false
	return m, ResolveTrailerCmd(m.Resolver, movieID)
}

func (m Model) setStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	return m, ClearStatusCmd(statusLinger)
}

// errorText prefers the provider's display-ready message
func errorText(err error) string {
	var pe *domain.ProviderError
	if errors.As(err, &pe) {
		return pe.UserMessage()
	}
	return err.Error()
}
