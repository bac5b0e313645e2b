package tmdb

import (
	"time"

	"github.com/lmenard/marquee/internal/domain"
)

// mapPage converts a listing response to a domain page
func mapPage(resp listResponse) domain.PageResult {
	items := make([]domain.Movie, 0, len(resp.Results))
	for _, r := range resp.Results {
		items = append(items, mapMovie(r))
	}
	totalPages := resp.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	return domain.PageResult{
		Items:      items,
		Page:       resp.Page,
		TotalPages: totalPages,
	}
}

// mapMovie converts a single listing entry
func mapMovie(r movieResult) domain.Movie {
	return domain.Movie{
		ID:          r.ID,
		Title:       r.Title,
		Overview:    r.Overview,
		ReleaseDate: parseReleaseDate(r.ReleaseDate),
		PosterPath:  r.PosterPath,
		Rating:      r.VoteAverage,
		GenreIDs:    r.GenreIDs,
	}
}

// parseReleaseDate parses the provider's date format, returning the
// zero time for empty or malformed values
func parseReleaseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// mapSuggestions converts multi-search hits, dropping unrecognized
// media types
func mapSuggestions(resp multiResponse) []domain.Suggestion {
	out := make([]domain.Suggestion, 0, len(resp.Results))
	for _, r := range resp.Results {
		s := domain.Suggestion{ID: r.ID}
		switch r.MediaType {
		case "movie":
			s.Kind = domain.MediaKindMovie
			s.Title = r.Title
		case "tv":
			s.Kind = domain.MediaKindTV
			s.Title = r.Name
		case "person":
			s.Kind = domain.MediaKindPerson
			s.Title = r.Name
		default:
			continue
		}
		if s.Title == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// mapGenres converts the genre list
func mapGenres(resp genreListResponse) []domain.Genre {
	out := make([]domain.Genre, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		out = append(out, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return out
}

// mapVideos converts the videos payload, skipping entries without a key
func mapVideos(resp videosResponse) []domain.Video {
	out := make([]domain.Video, 0, len(resp.Results))
	for _, v := range resp.Results {
		if v.Key == "" {
			continue
		}
		out = append(out, domain.Video{
			Key:  v.Key,
			Name: v.Name,
			Site: v.Site,
			Type: v.Type,
		})
	}
	return out
}

// mapCast converts credited cast members
func mapCast(body *creditsBody) []domain.CastMember {
	if body == nil {
		return nil
	}
	out := make([]domain.CastMember, 0, len(body.Cast))
	for _, c := range body.Cast {
		out = append(out, domain.CastMember{
			Name:      c.Name,
			Character: c.Character,
			Order:     c.Order,
		})
	}
	return out
}

// mapDetails converts the full movie record
func mapDetails(resp detailsResponse) domain.MovieDetails {
	genres := make([]domain.Genre, 0, len(resp.Genres))
	genreIDs := make([]int, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		genres = append(genres, domain.Genre{ID: g.ID, Name: g.Name})
		genreIDs = append(genreIDs, g.ID)
	}
	return domain.MovieDetails{
		Movie: domain.Movie{
			ID:          resp.ID,
			Title:       resp.Title,
			Overview:    resp.Overview,
			ReleaseDate: parseReleaseDate(resp.ReleaseDate),
			PosterPath:  resp.PosterPath,
			Rating:      resp.VoteAverage,
			GenreIDs:    genreIDs,
		},
		Runtime: time.Duration(resp.Runtime) * time.Minute,
		Tagline: resp.Tagline,
		Genres:  genres,
		Cast:    mapCast(resp.Credits),
	}
}
