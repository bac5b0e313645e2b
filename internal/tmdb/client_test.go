package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmenard/marquee/internal/domain"
	applog "github.com/lmenard/marquee/internal/log"
)

// newTestClient spins up a fake provider and a client pointed at it
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "test-key", "en-US", applog.NullLogger()), srv
}

func TestMoviesByCategoryParsesListing(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{
			"page": 2,
			"total_pages": 10,
			"results": [
				{"id": 550, "title": "Fight Club", "overview": "...", "release_date": "1999-10-15",
				 "poster_path": "/fc.jpg", "vote_average": 8.4, "genre_ids": [18, 53]},
				{"id": 551, "title": "Undated", "release_date": ""}
			]
		}`))
	})

	res, err := client.MoviesByCategory(context.Background(), domain.CategoryTopRated, 2)
	require.NoError(t, err)

	assert.Equal(t, "/movie/top_rated", gotPath)
	assert.Equal(t, "test-key", gotQuery.Get("api_key"))
	assert.Equal(t, "en-US", gotQuery.Get("language"))
	assert.Equal(t, "2", gotQuery.Get("page"))

	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 10, res.TotalPages)
	require.Len(t, res.Items, 2)
	assert.Equal(t, 550, res.Items[0].ID)
	assert.Equal(t, 1999, res.Items[0].Year())
	assert.Equal(t, []int{18, 53}, res.Items[0].GenreIDs)
	assert.True(t, res.Items[1].ReleaseDate.IsZero())
}

func TestDiscoverMoviesSendsFilterParams(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/discover/movie", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"page": 1, "total_pages": 1, "results": []}`))
	})

	filters := domain.FilterSet{
		Genre:     28,
		Year:      2020,
		MinRating: 7.5,
		Sort:      domain.SortRatingDesc,
	}
	_, err := client.DiscoverMovies(context.Background(), filters, 1)
	require.NoError(t, err)

	assert.Equal(t, "28", gotQuery.Get("with_genres"))
	assert.Equal(t, "2020", gotQuery.Get("primary_release_year"))
	assert.Equal(t, "7.5", gotQuery.Get("vote_average.gte"))
	assert.Equal(t, "vote_average.desc", gotQuery.Get("sort_by"))
}

func TestDiscoverMoviesOmitsZeroFilters(t *testing.T) {
	var gotQuery url.Values
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"page": 1, "total_pages": 1, "results": []}`))
	})

	_, err := client.DiscoverMovies(context.Background(), domain.DefaultFilters(), 1)
	require.NoError(t, err)

	assert.False(t, gotQuery.Has("with_genres"))
	assert.False(t, gotQuery.Has("primary_release_year"))
	assert.False(t, gotQuery.Has("vote_average.gte"))
	assert.Equal(t, "popularity.desc", gotQuery.Get("sort_by"))
}

func TestSearchMoviesEncodesQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/movie", r.URL.Path)
		assert.Equal(t, "blade runner", r.URL.Query().Get("query"))
		w.Write([]byte(`{"page": 1, "total_pages": 1, "results": [{"id": 78, "title": "Blade Runner"}]}`))
	})

	res, err := client.SearchMovies(context.Background(), "blade runner", 1)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Blade Runner", res.Items[0].Title)
}

func TestSearchMultiMapsKindsAndSkipsUnknown(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/multi", r.URL.Path)
		assert.Equal(t, "false", r.URL.Query().Get("include_adult"))
		w.Write([]byte(`{"page": 1, "results": [
			{"id": 1, "media_type": "movie", "title": "Inception"},
			{"id": 2, "media_type": "tv", "name": "Inception: The Series"},
			{"id": 3, "media_type": "person", "name": "Leonardo DiCaprio"},
			{"id": 4, "media_type": "collection", "name": "dropped"}
		]}`))
	})

	got, err := client.SearchMulti(context.Background(), "inception")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, domain.MediaKindMovie, got[0].Kind)
	assert.Equal(t, "Inception", got[0].Title)
	assert.Equal(t, domain.MediaKindTV, got[1].Kind)
	assert.Equal(t, domain.MediaKindPerson, got[2].Kind)
}

func TestMovieDetailsAppendsCredits(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550", r.URL.Path)
		assert.Equal(t, "credits", r.URL.Query().Get("append_to_response"))
		w.Write([]byte(`{
			"id": 550, "title": "Fight Club", "runtime": 139,
			"genres": [{"id": 18, "name": "Drama"}],
			"credits": {"cast": [{"name": "Brad Pitt", "character": "Tyler Durden", "order": 1}]}
		}`))
	})

	details, err := client.MovieDetails(context.Background(), 550)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", details.Title)
	assert.Equal(t, 139, int(details.Runtime.Minutes()))
	require.Len(t, details.Genres, 1)
	assert.Equal(t, []int{18}, details.GenreIDs)
	require.Len(t, details.Cast, 1)
	assert.Equal(t, "Tyler Durden", details.Cast[0].Character)
}

func TestGenresParsesList(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/genre/movie/list", r.URL.Path)
		w.Write([]byte(`{"genres": [{"id": 28, "name": "Action"}, {"id": 35, "name": "Comedy"}]}`))
	})

	genres, err := client.Genres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Genre{{ID: 28, Name: "Action"}, {ID: 35, Name: "Comedy"}}, genres)
}

func TestMovieVideosSkipsKeylessEntries(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/550/videos", r.URL.Path)
		w.Write([]byte(`{"id": 550, "results": [
			{"key": "abc", "site": "YouTube", "type": "Trailer", "name": "Official"},
			{"key": "", "site": "YouTube", "type": "Trailer", "name": "Broken"}
		]}`))
	})

	videos, err := client.MovieVideos(context.Background(), 550)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, "abc", videos[0].Key)
}

func TestStatusCodeClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		kind   domain.ErrorKind
	}{
		{"unauthorized", http.StatusUnauthorized, domain.ErrUnauthorized},
		{"not found", http.StatusNotFound, domain.ErrNotFound},
		{"rate limited", http.StatusTooManyRequests, domain.ErrRateLimited},
		{"server error", http.StatusInternalServerError, domain.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(`{"status_code": 7, "status_message": "Invalid API key"}`))
			})

			_, err := client.MoviesByCategory(context.Background(), domain.CategoryPopular, 1)
			require.Error(t, err)

			var pe *domain.ProviderError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tt.kind, pe.Kind)
			assert.Equal(t, "Invalid API key", pe.Message)
		})
	}
}

func TestConnectionFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Nothing listening anymore

	client := NewClient(srv.URL, "test-key", "", applog.NullLogger())
	_, err := client.MoviesByCategory(context.Background(), domain.CategoryPopular, 1)
	require.Error(t, err)

	var pe *domain.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, domain.ErrNetwork, pe.Kind)
}

func TestZeroTotalPagesClampedToOne(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"page": 1, "total_pages": 0, "results": []}`))
	})

	res, err := client.SearchMovies(context.Background(), "zzzz", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalPages)
}
