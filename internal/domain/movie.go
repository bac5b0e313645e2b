package domain

import (
	"fmt"
	"time"
)

// Category is one of the provider's curated movie lists.
type Category int

const (
	CategoryPopular Category = iota
	CategoryTopRated
	CategoryUpcoming
	CategoryNowPlaying
)

// String returns the display name for the category
func (c Category) String() string {
	switch c {
	case CategoryPopular:
		return "Popular"
	case CategoryTopRated:
		return "Top Rated"
	case CategoryUpcoming:
		return "Upcoming"
	case CategoryNowPlaying:
		return "Now Playing"
	default:
		return "Unknown"
	}
}

// Categories returns all curated categories in tab order
func Categories() []Category {
	return []Category{CategoryPopular, CategoryTopRated, CategoryUpcoming, CategoryNowPlaying}
}

// Movie is a single catalog entry as returned by listing endpoints.
// Immutable once returned; identity is the provider ID.
type Movie struct {
	ID          int
	Title       string
	Overview    string
	ReleaseDate time.Time // zero when the provider omits it
	PosterPath  string    // provider-relative path, empty when absent
	Rating      float64   // vote average, 0-10
	GenreIDs    []int
}

// Year returns the release year, or 0 when the release date is unknown
func (m Movie) Year() int {
	if m.ReleaseDate.IsZero() {
		return 0
	}
	return m.ReleaseDate.Year()
}

// DisplayTitle returns "Title (Year)" when the year is known
func (m Movie) DisplayTitle() string {
	if y := m.Year(); y > 0 {
		return fmt.Sprintf("%s (%d)", m.Title, y)
	}
	return m.Title
}

// PageResult is one page of a listing operation
type PageResult struct {
	Items      []Movie
	Page       int
	TotalPages int
}

// Genre is a provider genre with its stable numeric ID
type Genre struct {
	ID   int
	Name string
}

// CastMember is one credited actor on a movie
type CastMember struct {
	Name      string
	Character string
	Order     int
}

// MovieDetails is the full record for a single movie, including the
// top-billed cast when credits were requested alongside.
type MovieDetails struct {
	Movie
	Runtime time.Duration
	Tagline string
	Genres  []Genre
	Cast    []CastMember
}

// MediaKind distinguishes multi-search result types
type MediaKind int

const (
	MediaKindMovie MediaKind = iota
	MediaKindTV
	MediaKindPerson
)

// String returns the badge label for the media kind
func (k MediaKind) String() string {
	switch k {
	case MediaKindMovie:
		return "Movie"
	case MediaKindTV:
		return "TV"
	case MediaKindPerson:
		return "Person"
	default:
		return ""
	}
}

// Suggestion is a lightweight multi-search hit shown in the search
// dropdown. Never merged into the main result list.
type Suggestion struct {
	ID    int
	Title string
	Kind  MediaKind
}

// Video is one entry from a movie's videos endpoint
type Video struct {
	Key  string // platform-specific video key
	Name string
	Site string // "YouTube", "Vimeo", ...
	Type string // "Trailer", "Teaser", "Clip", ...
}

// TrailerRef is the outcome of trailer resolution. Unavailable means
// the provider returned no videos at all; that is not an error.
type TrailerRef struct {
	EmbedURL    string
	Unavailable bool
}
