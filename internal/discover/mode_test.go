package discover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmenard/marquee/internal/domain"
)

func TestCategoryChangeRetargets(t *testing.T) {
	c := NewController(domain.CategoryPopular)

	slot, ok := c.SetCategory(domain.CategoryTopRated)
	require.True(t, ok)
	assert.Equal(t, domain.ModeBrowse, slot.Mode)
	assert.Equal(t, domain.CategoryTopRated, slot.Category)
}

func TestIdenticalCategoryIsNoOp(t *testing.T) {
	c := NewController(domain.CategoryPopular)

	_, ok := c.SetCategory(domain.CategoryPopular)
	assert.False(t, ok)
}

func TestIdenticalFiltersAreNoOp(t *testing.T) {
	c := NewController(domain.CategoryPopular)

	filters := domain.DefaultFilters()
	filters.Genre = 28
	_, ok := c.SetFilters(filters)
	require.True(t, ok)

	// The control reports its current value without an actual change
	_, ok = c.SetFilters(filters)
	assert.False(t, ok)
}

func TestFilterChangeSwitchesOperation(t *testing.T) {
	c := NewController(domain.CategoryPopular)
	assert.Equal(t, domain.OpCategory, c.Slot().Operation())

	filters := domain.DefaultFilters()
	filters.Genre = 28
	slot, ok := c.SetFilters(filters)
	require.True(t, ok)
	assert.Equal(t, domain.OpDiscover, slot.Operation())

	slot, ok = c.SetFilters(domain.DefaultFilters())
	require.True(t, ok)
	assert.Equal(t, domain.OpCategory, slot.Operation())
}

func TestQuerySubmissionEntersSearch(t *testing.T) {
	c := NewController(domain.CategoryPopular)

	slot, ok := c.SubmitQuery("inception")
	require.True(t, ok)
	assert.Equal(t, domain.ModeSearch, slot.Mode)
	assert.Equal(t, "inception", slot.Query)
	assert.Equal(t, domain.OpSearch, slot.Operation())
}

func TestResubmitSameQueryStillRefetches(t *testing.T) {
	c := NewController(domain.CategoryPopular)

	_, ok := c.SubmitQuery("dune")
	require.True(t, ok)

	slot, ok := c.SubmitQuery("dune")
	assert.True(t, ok)
	assert.Equal(t, "dune", slot.Query)
}

func TestClearQueryRestoresBrowseState(t *testing.T) {
	c := NewController(domain.CategoryPopular)

	filters := domain.DefaultFilters()
	filters.Year = 2020
	_, ok := c.SetFilters(filters)
	require.True(t, ok)
	_, ok = c.SetCategory(domain.CategoryUpcoming)
	require.True(t, ok)

	_, ok = c.SubmitQuery("dune")
	require.True(t, ok)

	slot, ok := c.ClearQuery()
	require.True(t, ok)
	assert.Equal(t, domain.ModeBrowse, slot.Mode)
	assert.Equal(t, domain.CategoryUpcoming, slot.Category)
	assert.Equal(t, filters, slot.Filters)
}

func TestClearQueryWhileBrowsingIsNoOp(t *testing.T) {
	c := NewController(domain.CategoryPopular)

	_, ok := c.ClearQuery()
	assert.False(t, ok)
}

func TestEmptySubmissionClears(t *testing.T) {
	c := NewController(domain.CategoryPopular)

	_, ok := c.SubmitQuery("dune")
	require.True(t, ok)

	slot, ok := c.SubmitQuery("   ")
	require.True(t, ok)
	assert.Equal(t, domain.ModeBrowse, slot.Mode)
}

func TestFilterChangeWhileSearchingIsDeferred(t *testing.T) {
	c := NewController(domain.CategoryPopular)

	_, ok := c.SubmitQuery("dune")
	require.True(t, ok)

	filters := domain.DefaultFilters()
	filters.Genre = 12
	_, ok = c.SetFilters(filters)
	assert.False(t, ok)

	// The stored filters surface when search is cleared
	slot, ok := c.ClearQuery()
	require.True(t, ok)
	assert.Equal(t, filters, slot.Filters)
}
