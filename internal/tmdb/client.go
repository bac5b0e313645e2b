package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/lmenard/marquee/internal/domain"
)

const defaultTimeout = 15 * time.Second

// Client talks to a TMDB-compatible catalog provider. It performs one
// HTTP call per operation and classifies failures; retry policy
// belongs to the caller.
type Client struct {
	baseURL  string
	apiKey   string
	language string
	httpc    *http.Client
	logger   *slog.Logger
}

// NewClient creates a catalog client. The API key is attached to every
// request; language defaults to en-US when empty.
func NewClient(baseURL, apiKey, language string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if language == "" {
		language = "en-US"
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		language: language,
		httpc:    &http.Client{Timeout: defaultTimeout},
		logger:   logger,
	}
}

// categoryPath maps a curated category to its listing endpoint
func categoryPath(c domain.Category) string {
	switch c {
	case domain.CategoryTopRated:
		return "/movie/top_rated"
	case domain.CategoryUpcoming:
		return "/movie/upcoming"
	case domain.CategoryNowPlaying:
		return "/movie/now_playing"
	default:
		return "/movie/popular"
	}
}

// doGet performs an authenticated GET and decodes the JSON body into v
func (c *Client) doGet(ctx context.Context, path string, query url.Values, v any) error {
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("catalog request", "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Error("catalog request failed", "path", path, "error", err)
		return &domain.ProviderError{Kind: domain.ErrNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.classifyStatus(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		c.logger.Error("catalog response parse error", "path", path, "error", err)
		return &domain.ProviderError{Kind: domain.ErrUnknown, Message: "malformed response: " + err.Error()}
	}
	return nil
}

// classifyStatus maps a non-success status to a ProviderError,
// preferring the provider's own status_message when present
func (c *Client) classifyStatus(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	message := resp.Status
	var status statusResponse
	if json.Unmarshal(body, &status) == nil && status.StatusMessage != "" {
		message = status.StatusMessage
	}

	kind := domain.ErrUnknown
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		kind = domain.ErrUnauthorized
	case http.StatusNotFound:
		kind = domain.ErrNotFound
	case http.StatusTooManyRequests:
		kind = domain.ErrRateLimited
	}

	c.logger.Error("catalog request error", "status", resp.StatusCode, "kind", kind.String())
	return &domain.ProviderError{Kind: kind, Message: message}
}

// MoviesByCategory lists one page of a curated category
func (c *Client) MoviesByCategory(ctx context.Context, category domain.Category, page int) (domain.PageResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))

	var resp listResponse
	if err := c.doGet(ctx, categoryPath(category), query, &resp); err != nil {
		return domain.PageResult{}, err
	}
	return mapPage(resp), nil
}

// DiscoverMovies lists one page of filtered discovery. Zero-valued
// filter fields are omitted from the request.
func (c *Client) DiscoverMovies(ctx context.Context, filters domain.FilterSet, page int) (domain.PageResult, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("sort_by", filters.Sort.Param())
	if filters.Genre != 0 {
		query.Set("with_genres", strconv.Itoa(filters.Genre))
	}
	if filters.Year != 0 {
		query.Set("primary_release_year", strconv.Itoa(filters.Year))
	}
	if filters.MinRating != 0 {
		query.Set("vote_average.gte", strconv.FormatFloat(filters.MinRating, 'f', -1, 64))
	}

	var resp listResponse
	if err := c.doGet(ctx, "/discover/movie", query, &resp); err != nil {
		return domain.PageResult{}, err
	}
	return mapPage(resp), nil
}

// SearchMovies lists one page of free-text movie search results
func (c *Client) SearchMovies(ctx context.Context, text string, page int) (domain.PageResult, error) {
	query := url.Values{}
	query.Set("query", text)
	query.Set("page", strconv.Itoa(page))

	var resp listResponse
	if err := c.doGet(ctx, "/search/movie", query, &resp); err != nil {
		return domain.PageResult{}, err
	}
	return mapPage(resp), nil
}

// SearchMulti returns the first page of cross-type search hits used
// for suggestions
func (c *Client) SearchMulti(ctx context.Context, text string) ([]domain.Suggestion, error) {
	query := url.Values{}
	query.Set("query", text)
	query.Set("page", "1")
	query.Set("include_adult", "false")

	var resp multiResponse
	if err := c.doGet(ctx, "/search/multi", query, &resp); err != nil {
		return nil, err
	}
	return mapSuggestions(resp), nil
}

// MovieDetails fetches the full record for one movie, with credits
// appended in the same call
func (c *Client) MovieDetails(ctx context.Context, id int) (domain.MovieDetails, error) {
	query := url.Values{}
	query.Set("append_to_response", "credits")

	var resp detailsResponse
	if err := c.doGet(ctx, fmt.Sprintf("/movie/%d", id), query, &resp); err != nil {
		return domain.MovieDetails{}, err
	}
	return mapDetails(resp), nil
}

// MovieCredits fetches the credited cast for one movie
func (c *Client) MovieCredits(ctx context.Context, id int) ([]domain.CastMember, error) {
	var resp creditsBody
	if err := c.doGet(ctx, fmt.Sprintf("/movie/%d/credits", id), nil, &resp); err != nil {
		return nil, err
	}
	return mapCast(&resp), nil
}

// MovieVideos fetches the videos attached to one movie
func (c *Client) MovieVideos(ctx context.Context, id int) ([]domain.Video, error) {
	var resp videosResponse
	if err := c.doGet(ctx, fmt.Sprintf("/movie/%d/videos", id), nil, &resp); err != nil {
		return nil, err
	}
	return mapVideos(resp), nil
}

// Genres fetches the provider's movie genre list
func (c *Client) Genres(ctx context.Context) ([]domain.Genre, error) {
	var resp genreListResponse
	if err := c.doGet(ctx, "/genre/movie/list", nil, &resp); err != nil {
		return nil, err
	}
	return mapGenres(resp), nil
}
