package discover

import (
	"strings"

	"github.com/lmenard/marquee/internal/domain"
)

// Controller is the two-state machine deciding whether the loader's
// source is category+filters or a free-text query. Every returned slot
// restarts pagination; a false return means no refetch is needed.
type Controller struct {
	mode     domain.Mode
	category domain.Category
	filters  domain.FilterSet
	query    string
}

// NewController starts in Browse mode on the given category with
// default filters
func NewController(category domain.Category) *Controller {
	return &Controller{
		category: category,
		filters:  domain.DefaultFilters(),
	}
}

// Mode returns the current mode
func (c *Controller) Mode() domain.Mode { return c.mode }

// Category returns the active browse category
func (c *Controller) Category() domain.Category { return c.category }

// Filters returns the active browse filters
func (c *Controller) Filters() domain.FilterSet { return c.filters }

// Query returns the active search query, empty in Browse mode
func (c *Controller) Query() string {
	if c.mode != domain.ModeSearch {
		return ""
	}
	return c.query
}

// Slot returns the loader target for the current state
func (c *Controller) Slot() domain.FetchKey {
	if c.mode == domain.ModeSearch {
		return domain.FetchKey{Mode: domain.ModeSearch, Query: c.query}
	}
	return domain.FetchKey{
		Mode:     domain.ModeBrowse,
		Category: c.category,
		Filters:  c.filters,
	}
}

// SetCategory switches the browse category. Selecting the category
// already active while browsing is a no-op; selecting any category
// while searching leaves Search mode.
func (c *Controller) SetCategory(category domain.Category) (domain.FetchKey, bool) {
	if c.mode == domain.ModeBrowse && c.category == category {
		return domain.FetchKey{}, false
	}
	c.mode = domain.ModeBrowse
	c.category = category
	return c.Slot(), true
}

// SetFilters replaces the browse filters. An identical value is a
// no-op, guarding against filter controls that report their current
// value without an actual change. While searching, the filters are
// stored for the return to Browse but trigger nothing.
func (c *Controller) SetFilters(filters domain.FilterSet) (domain.FetchKey, bool) {
	if c.filters == filters {
		return domain.FetchKey{}, false
	}
	c.filters = filters
	if c.mode == domain.ModeSearch {
		return domain.FetchKey{}, false
	}
	return c.Slot(), true
}

// SubmitQuery enters (or re-enters) Search mode. Submitting the same
// query again still refetches; an empty submission clears instead.
func (c *Controller) SubmitQuery(query string) (domain.FetchKey, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.ClearQuery()
	}
	c.mode = domain.ModeSearch
	c.query = query
	return c.Slot(), true
}

// ClearQuery leaves Search mode, restoring the last active category
// and filters. A no-op when already browsing.
func (c *Controller) ClearQuery() (domain.FetchKey, bool) {
	if c.mode == domain.ModeBrowse {
		return domain.FetchKey{}, false
	}
	c.mode = domain.ModeBrowse
	c.query = ""
	return c.Slot(), true
}
