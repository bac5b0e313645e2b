package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lmenard/marquee/internal/discover"
	"github.com/lmenard/marquee/internal/domain"
	"github.com/lmenard/marquee/internal/store"
	"github.com/lmenard/marquee/internal/tmdb"
)

// Command factories for async operations

const fetchTimeout = 30 * time.Second

// maxSuggestions caps the dropdown size
const maxSuggestions = 5

// FetchPageCmd performs the gateway call a stamped request resolves to.
// The outcome always returns as a PageLoadedMsg carrying the request,
// never as a bare error; the loader decides what is still relevant.
func FetchPageCmd(client *tmdb.Client, req discover.Request) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		var res domain.PageResult
		var err error
		switch req.Key.Operation() {
		case domain.OpSearch:
			res, err = client.SearchMovies(ctx, req.Key.Query, req.Key.Page)
		case domain.OpDiscover:
			res, err = client.DiscoverMovies(ctx, req.Key.Filters, req.Key.Page)
		default:
			res, err = client.MoviesByCategory(ctx, req.Key.Category, req.Key.Page)
		}

		return PageLoadedMsg{Req: req, Result: res, Err: err}
	}
}

// DebounceTimerCmd schedules a settle timer for the suggestion debouncer
func DebounceTimerCmd(t discover.Timer) tea.Cmd {
	return tea.Tick(t.Delay, func(time.Time) tea.Msg {
		return DebounceElapsedMsg{Timer: t}
	})
}

// FetchSuggestionsCmd performs the multi-search behind the dropdown
func FetchSuggestionsCmd(client *tmdb.Client, fetch discover.SuggestionFetch) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		suggestions, err := client.SearchMulti(ctx, fetch.Query)
		if len(suggestions) > maxSuggestions {
			suggestions = suggestions[:maxSuggestions]
		}
		return SuggestionsMsg{Fetch: fetch, Suggestions: suggestions, Err: err}
	}
}

// LoadGenresCmd loads the genre list, serving from the cache when fresh
// and falling back to a stale copy when the refetch fails
func LoadGenresCmd(client *tmdb.Client, cache *store.CatalogStore) tea.Cmd {
	return func() tea.Msg {
		cached, found, fresh := cache.GetGenres()
		if found && fresh {
			return GenresLoadedMsg{Genres: cached}
		}

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		genres, err := client.Genres(ctx)
		if err != nil {
			if found {
				return GenresLoadedMsg{Genres: cached}
			}
			return GenresLoadedMsg{Err: err}
		}

		cache.SaveGenres(genres)
		return GenresLoadedMsg{Genres: genres}
	}
}

// LoadDetailsCmd loads full details for one movie, cache first
func LoadDetailsCmd(client *tmdb.Client, cache *store.CatalogStore, movieID int) tea.Cmd {
	return func() tea.Msg {
		cached, found, fresh := cache.GetDetails(movieID)
		if found && fresh {
			return DetailsLoadedMsg{MovieID: movieID, Details: cached}
		}

		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		details, err := client.MovieDetails(ctx, movieID)
		if err != nil {
			if found {
				return DetailsLoadedMsg{MovieID: movieID, Details: cached}
			}
			return DetailsLoadedMsg{MovieID: movieID, Err: err}
		}

		cache.SaveDetails(details)
		return DetailsLoadedMsg{MovieID: movieID, Details: details}
	}
}

// ResolveTrailerCmd resolves a playable trailer for one movie
func ResolveTrailerCmd(resolver *discover.TrailerResolver, movieID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		trailer, err := resolver.Resolve(ctx, movieID)
		return TrailerResolvedMsg{MovieID: movieID, Trailer: trailer, Err: err}
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
