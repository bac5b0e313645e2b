package discover

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmenard/marquee/internal/domain"
)

type fakeVideosFetcher struct {
	videos []domain.Video
	err    error
	lastID int
}

func (f *fakeVideosFetcher) MovieVideos(_ context.Context, id int) ([]domain.Video, error) {
	f.lastID = id
	return f.videos, f.err
}

func TestResolvePrefersYouTubeTrailer(t *testing.T) {
	fetcher := &fakeVideosFetcher{videos: []domain.Video{
		{Key: "clip1", Site: "YouTube", Type: "Clip"},
		{Key: "vimeo1", Site: "Vimeo", Type: "Trailer"},
		{Key: "yt1", Site: "YouTube", Type: "Trailer"},
		{Key: "yt2", Site: "YouTube", Type: "Trailer"},
	}}
	r := NewTrailerResolver(fetcher)

	ref, err := r.Resolve(context.Background(), 550)
	require.NoError(t, err)
	assert.Equal(t, 550, fetcher.lastID)
	assert.False(t, ref.Unavailable)
	assert.Equal(t, "https://www.youtube.com/embed/yt1", ref.EmbedURL)
}

func TestResolveFallsBackToFirstVideo(t *testing.T) {
	fetcher := &fakeVideosFetcher{videos: []domain.Video{
		{Key: "teaser1", Site: "YouTube", Type: "Teaser"},
		{Key: "clip1", Site: "YouTube", Type: "Clip"},
	}}
	r := NewTrailerResolver(fetcher)

	ref, err := r.Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/teaser1", ref.EmbedURL)
}

func TestResolveEmptyListIsUnavailableNotError(t *testing.T) {
	r := NewTrailerResolver(&fakeVideosFetcher{})

	ref, err := r.Resolve(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ref.Unavailable)
	assert.Empty(t, ref.EmbedURL)
}

func TestResolveGatewayFailureIsDistinctFromUnavailable(t *testing.T) {
	fetcher := &fakeVideosFetcher{err: &domain.ProviderError{Kind: domain.ErrNetwork}}
	r := NewTrailerResolver(fetcher)

	ref, err := r.Resolve(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, ref.Unavailable)

	var pe *domain.ProviderError
	assert.ErrorAs(t, err, &pe)
}

func TestSelectTrailerVimeoEmbed(t *testing.T) {
	ref := SelectTrailer([]domain.Video{{Key: "12345", Site: "Vimeo", Type: "Trailer"}})
	assert.Equal(t, "https://player.vimeo.com/video/12345", ref.EmbedURL)
}
