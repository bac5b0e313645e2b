package discover

import (
	"github.com/lmenard/marquee/internal/domain"
)

// Request is one stamped page fetch. The caller performs the gateway
// call for Key and reports the outcome through Loader.Apply with the
// same request.
type Request struct {
	Key     domain.FetchKey
	Seq     uint64
	Replace bool
}

// State is a snapshot of the loader for rendering. The loader is the
// single writer; callers must not mutate the Visible slice.
type State struct {
	Visible        []domain.Movie
	CurrentPage    int
	TotalPages     int
	LoadingInitial bool
	LoadingMore    bool
	LastError      error
	Key            domain.FetchKey
	HasTarget      bool
}

// Exhausted reports whether every page has been loaded
func (s State) Exhausted() bool {
	return s.HasTarget && s.CurrentPage >= s.TotalPages
}

// Loader owns the mapping from (slot, page) to the ordered visible
// list. SetTarget replaces, LoadMore appends; responses are applied in
// request order via sequence gating, so a slow response for an
// abandoned slot or page can never clobber a newer one.
type Loader struct {
	guard Guard
	state State
}

// NewLoader returns an empty loader with no target
func NewLoader() *Loader {
	return &Loader{}
}

// State returns the current snapshot
func (l *Loader) State() State {
	return l.state
}

// SetTarget begins loading page 1 of a new slot, clearing the visible
// list. The page part of the key is ignored.
func (l *Loader) SetTarget(slot domain.FetchKey) Request {
	key := slot.Slot()
	key.Page = 1

	l.state = State{
		Key:            key,
		HasTarget:      true,
		LoadingInitial: true,
	}

	return Request{Key: key, Seq: l.guard.Issue(), Replace: true}
}

// LoadMore requests the next page of the current slot. It is a no-op
// while a load-more is already in flight, when no target is set, or
// once every page has been loaded.
func (l *Loader) LoadMore() (Request, bool) {
	if !l.state.HasTarget || l.state.LoadingMore || l.state.LoadingInitial {
		return Request{}, false
	}
	if l.state.CurrentPage >= l.state.TotalPages {
		return Request{}, false
	}

	l.state.LoadingMore = true
	key := l.state.Key
	key.Page = l.state.CurrentPage + 1

	return Request{Key: key, Seq: l.guard.Issue()}, true
}

// Apply merges a completed fetch into the state. It returns false when
// the response is stale (a newer request was issued since dispatch),
// in which case the state is untouched.
//
// On failure a replace leaves the list empty and an append preserves
// it; either way the page is retryable by repeating the call that
// issued it.
func (l *Loader) Apply(req Request, res domain.PageResult, err error) bool {
	if !l.guard.Current(req.Seq) {
		return false
	}

	if req.Replace {
		l.state.LoadingInitial = false
	} else {
		l.state.LoadingMore = false
	}

	if err != nil {
		l.state.LastError = err
		return true
	}
	l.state.LastError = nil

	if req.Replace {
		l.state.Visible = res.Items
		l.state.CurrentPage = 1
		l.state.TotalPages = res.TotalPages
		return true
	}

	// Provider order is preserved and duplicates across pages are kept
	// as delivered; position, not identity, drives the list.
	l.state.Visible = append(l.state.Visible, res.Items...)
	l.state.CurrentPage = res.Page
	l.state.TotalPages = res.TotalPages
	return true
}

// Close rejects all in-flight responses; used at teardown
func (l *Loader) Close() {
	l.guard.Close()
}
