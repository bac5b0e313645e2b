package domain

// SortKey is a discover-endpoint sort order
type SortKey int

const (
	SortPopularityDesc SortKey = iota
	SortPopularityAsc
	SortRatingDesc
	SortRatingAsc
	SortDateDesc
	SortDateAsc
	SortTitleAsc
	SortTitleDesc
)

// String returns the display name for the sort key
func (s SortKey) String() string {
	switch s {
	case SortPopularityDesc:
		return "Popularity ↓"
	case SortPopularityAsc:
		return "Popularity ↑"
	case SortRatingDesc:
		return "Rating ↓"
	case SortRatingAsc:
		return "Rating ↑"
	case SortDateDesc:
		return "Release Date ↓"
	case SortDateAsc:
		return "Release Date ↑"
	case SortTitleAsc:
		return "Title A-Z"
	case SortTitleDesc:
		return "Title Z-A"
	default:
		return "Unknown"
	}
}

// Param returns the provider's sort_by parameter value
func (s SortKey) Param() string {
	switch s {
	case SortPopularityDesc:
		return "popularity.desc"
	case SortPopularityAsc:
		return "popularity.asc"
	case SortRatingDesc:
		return "vote_average.desc"
	case SortRatingAsc:
		return "vote_average.asc"
	case SortDateDesc:
		return "primary_release_date.desc"
	case SortDateAsc:
		return "primary_release_date.asc"
	case SortTitleAsc:
		return "title.asc"
	case SortTitleDesc:
		return "title.desc"
	default:
		return "popularity.desc"
	}
}

// SortKeys returns the selectable sort orders in menu order
func SortKeys() []SortKey {
	return []SortKey{
		SortPopularityDesc, SortPopularityAsc,
		SortRatingDesc, SortRatingAsc,
		SortDateDesc, SortDateAsc,
		SortTitleAsc, SortTitleDesc,
	}
}

// FilterSet is the active discover filters. The zero values (no genre,
// no year, no rating floor, popularity.desc) form the default set,
// which maps to the plain category listing rather than a discover call.
type FilterSet struct {
	Genre     int // genre ID, 0 = any
	Year      int // primary release year, 0 = any
	MinRating float64
	Sort      SortKey
}

// DefaultFilters returns the default filter set
func DefaultFilters() FilterSet {
	return FilterSet{Sort: SortPopularityDesc}
}

// IsDefault reports whether no filter deviates from the defaults
func (f FilterSet) IsDefault() bool {
	return f == DefaultFilters()
}

// Mode selects the loader's source: curated/filtered browse, or
// free-text search.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeSearch
)

// FetchKey identifies one page request. Category and Filters are
// meaningful only in Browse mode, Query only in Search mode. Two keys
// with equal non-page parts address the same slot.
type FetchKey struct {
	Mode     Mode
	Category Category
	Filters  FilterSet
	Query    string
	Page     int
}

// Slot returns the key with the page stripped, i.e. the logical
// identity of what is being browsed.
func (k FetchKey) Slot() FetchKey {
	k.Page = 0
	return k
}

// SameSlot reports whether two keys differ only by page
func (k FetchKey) SameSlot(other FetchKey) bool {
	return k.Slot() == other.Slot()
}

// Operation is the gateway call a FetchKey resolves to
type Operation int

const (
	// OpCategory lists a curated category (default filters only)
	OpCategory Operation = iota
	// OpDiscover is the filtered discovery endpoint
	OpDiscover
	// OpSearch is free-text movie search
	OpSearch
)

// Operation returns which gateway operation serves this key. An
// unfiltered browse uses the lighter category endpoint; any active
// filter switches to discover; search ignores category and filters.
func (k FetchKey) Operation() Operation {
	if k.Mode == ModeSearch {
		return OpSearch
	}
	if k.Filters.IsDefault() {
		return OpCategory
	}
	return OpDiscover
}
