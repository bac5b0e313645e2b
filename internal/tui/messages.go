package tui

import (
	"github.com/lmenard/marquee/internal/discover"
	"github.com/lmenard/marquee/internal/domain"
)

// Message types for the TUI

// ErrMsg represents an error
type ErrMsg struct {
	Err     error
	Context string
}

// Error implements the error interface
func (e ErrMsg) Error() string {
	if e.Context != "" {
		return e.Context + ": " + e.Err.Error()
	}
	return e.Err.Error()
}

// PageLoadedMsg carries the outcome of a page fetch, stamped with the
// request that issued it so the loader can drop stale responses
type PageLoadedMsg struct {
	Req    discover.Request
	Result domain.PageResult
	Err    error
}

// DebounceElapsedMsg signals that a suggestion settle timer fired
type DebounceElapsedMsg struct {
	Timer discover.Timer
}

// SuggestionsMsg carries the outcome of a suggestion fetch, stamped
// with the fetch that issued it
type SuggestionsMsg struct {
	Fetch       discover.SuggestionFetch
	Suggestions []domain.Suggestion
	Err         error
}

// GenresLoadedMsg signals that the genre list is available
type GenresLoadedMsg struct {
	Genres []domain.Genre
	Err    error
}

// DetailsLoadedMsg signals that full details for one movie are ready
type DetailsLoadedMsg struct {
	MovieID int
	Details domain.MovieDetails
	Err     error
}

// TrailerResolvedMsg carries the trailer resolution outcome. An
// unavailable trailer arrives with a nil Err.
type TrailerResolvedMsg struct {
	MovieID int
	Trailer domain.TrailerRef
	Err     error
}

// StatusMsg sets a temporary status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status bar message
type ClearStatusMsg struct{}
