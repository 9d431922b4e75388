package youtube

import (
	"context"
	"strings"
)

// Print templates. Each field is joined with FieldSeparator.
var (
	publicVideoTemplate   = printTemplate("id", "title", "upload_date", "timestamp", "release_date", "release_timestamp")
	playlistVideoTemplate = printTemplate("id", "title", "availability", "upload_date", "timestamp", "release_date", "release_timestamp")
	playlistTemplate      = printTemplate("id", "title")
)

func printTemplate(fields ...string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = "%(" + f + ")s"
	}
	return strings.Join(parts, FieldSeparator)
}

// Fetcher issues the listing queries of a channel scan through a Runner.
//
// Every method returns an error only when the runner does: a missing
// yt-dlp binary or a canceled context. An unusable listing is an empty
// result.
type Fetcher struct {
	runner Runner
}

// NewFetcher creates a fetcher backed by runner.
func NewFetcher(runner Runner) *Fetcher {
	return &Fetcher{runner: runner}
}

// ChannelVideos lists the public "Videos" tab of a channel.
func (f *Fetcher) ChannelVideos(ctx context.Context, channelURL string) ([]*VideoRecord, error) {
	out, err := f.runner.Run(ctx,
		"--flat-playlist",
		"--extractor-args", "youtube:approximate_date",
		"--print", publicVideoTemplate,
		channelTab(channelURL, "videos"),
	)
	if err != nil {
		return nil, err
	}
	return parseVideoOutput(out, LayoutPublicListing), nil
}

// ChannelPlaylists lists the playlists of a channel.
func (f *Fetcher) ChannelPlaylists(ctx context.Context, channelURL string) ([]PlaylistRecord, error) {
	out, err := f.runner.Run(ctx,
		"--flat-playlist",
		"--print", playlistTemplate,
		channelTab(channelURL, "playlists"),
	)
	if err != nil {
		return nil, err
	}
	return parsePlaylistOutput(out), nil
}

// PlaylistVideos lists the videos of one playlist, including availability.
func (f *Fetcher) PlaylistVideos(ctx context.Context, playlistURL string) ([]*VideoRecord, error) {
	out, err := f.runner.Run(ctx,
		"--flat-playlist",
		"--extractor-args", "youtube:approximate_date",
		"--print", playlistVideoTemplate,
		playlistURL,
	)
	if err != nil {
		return nil, err
	}
	return parseVideoOutput(out, LayoutWithAvailability), nil
}
