package discover

import (
	"context"
	"fmt"

	"github.com/lmenard/marquee/internal/domain"
)

// primaryVideoSite is the platform preferred when selecting a trailer
const primaryVideoSite = "YouTube"

// VideosFetcher is the slice of the catalog gateway the resolver needs
type VideosFetcher interface {
	MovieVideos(ctx context.Context, id int) ([]domain.Video, error)
}

// TrailerResolver picks a single playable trailer for a movie. "No
// trailer exists" and "could not check" are distinct outcomes: the
// former is an Unavailable ref, the latter an error.
type TrailerResolver struct {
	gateway VideosFetcher
}

// NewTrailerResolver creates a resolver backed by the given gateway
func NewTrailerResolver(gateway VideosFetcher) *TrailerResolver {
	return &TrailerResolver{gateway: gateway}
}

// Resolve fetches the movie's videos and selects a trailer
func (r *TrailerResolver) Resolve(ctx context.Context, movieID int) (domain.TrailerRef, error) {
	videos, err := r.gateway.MovieVideos(ctx, movieID)
	if err != nil {
		return domain.TrailerRef{}, fmt.Errorf("trailer resolution for movie %d: %w", movieID, err)
	}
	return SelectTrailer(videos), nil
}

// SelectTrailer applies the tie-break: the first entry typed "Trailer"
// on the primary platform wins; failing that, the first entry of any
// kind; an empty list means no trailer exists.
func SelectTrailer(videos []domain.Video) domain.TrailerRef {
	if len(videos) == 0 {
		return domain.TrailerRef{Unavailable: true}
	}
	for _, v := range videos {
		if v.Type == "Trailer" && v.Site == primaryVideoSite {
			return domain.TrailerRef{EmbedURL: embedURL(v)}
		}
	}
	return domain.TrailerRef{EmbedURL: embedURL(videos[0])}
}

// embedURL builds a playable embed URL for a video key
func embedURL(v domain.Video) string {
	switch v.Site {
	case "YouTube":
		return fmt.Sprintf("https://www.youtube.com/embed/%s", v.Key)
	case "Vimeo":
		return fmt.Sprintf("https://player.vimeo.com/video/%s", v.Key)
	default:
		return v.Key
	}
}
