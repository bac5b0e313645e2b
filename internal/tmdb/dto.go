package tmdb

// listResponse is the envelope shared by every listing endpoint
type listResponse struct {
	Page         int           `json:"page"`
	TotalPages   int           `json:"total_pages"`
	TotalResults int           `json:"total_results"`
	Results      []movieResult `json:"results"`
}

// movieResult is one entry in a listing response
type movieResult struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date,omitempty"`
	PosterPath  string  `json:"poster_path,omitempty"`
	VoteAverage float64 `json:"vote_average,omitempty"`
	GenreIDs    []int   `json:"genre_ids,omitempty"`
}

// multiResponse is the /search/multi envelope
type multiResponse struct {
	Page    int           `json:"page"`
	Results []multiResult `json:"results"`
}

// multiResult is one multi-search hit; Title is set for movies,
// Name for TV shows and people
type multiResult struct {
	ID        int    `json:"id"`
	MediaType string `json:"media_type"`
	Title     string `json:"title,omitempty"`
	Name      string `json:"name,omitempty"`
}

// genreListResponse is the /genre/movie/list envelope
type genreListResponse struct {
	Genres []genreResult `json:"genres"`
}

type genreResult struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// videosResponse is the /movie/{id}/videos envelope
type videosResponse struct {
	ID      int           `json:"id"`
	Results []videoResult `json:"results"`
}

type videoResult struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Site     string `json:"site"`
	Type     string `json:"type"`
	Official bool   `json:"official,omitempty"`
}

// detailsResponse is the /movie/{id} record, optionally carrying
// credits when append_to_response=credits was requested
type detailsResponse struct {
	ID          int           `json:"id"`
	Title       string        `json:"title"`
	Overview    string        `json:"overview"`
	Tagline     string        `json:"tagline,omitempty"`
	ReleaseDate string        `json:"release_date,omitempty"`
	PosterPath  string        `json:"poster_path,omitempty"`
	VoteAverage float64       `json:"vote_average,omitempty"`
	Runtime     int           `json:"runtime,omitempty"` // minutes
	Genres      []genreResult `json:"genres,omitempty"`
	Credits     *creditsBody  `json:"credits,omitempty"`
}

// creditsBody is the /movie/{id}/credits payload (also embedded in
// detailsResponse via append_to_response)
type creditsBody struct {
	Cast []castResult `json:"cast"`
}

type castResult struct {
	Name      string `json:"name"`
	Character string `json:"character,omitempty"`
	Order     int    `json:"order"`
}

// statusResponse is TMDB's error body, returned alongside non-2xx
// statuses
type statusResponse struct {
	StatusCode    int    `json:"status_code"`
	StatusMessage string `json:"status_message"`
}
