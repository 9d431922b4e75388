// Package scan reconciles a channel's playlists against its public listing
// to find videos that are reachable only through playlists.
package scan

import (
	"context"

	"ytscan/internal/youtube"
)

// PlaylistSource lists the videos of one playlist.
type PlaylistSource interface {
	PlaylistVideos(ctx context.Context, playlistURL string) ([]*youtube.VideoRecord, error)
}

// DetailSource looks up the details of one video. The boolean is false
// when the lookup produced nothing.
type DetailSource interface {
	VideoDetails(ctx context.Context, videoID string) (youtube.VideoDetails, bool, error)
}

// Source is everything a channel scan queries. *youtube.Fetcher implements it.
//
// Errors returned by a Source abort the scan. Listings that could not be
// read are reported as empty results, not errors.
type Source interface {
	PlaylistSource
	DetailSource
	ChannelVideos(ctx context.Context, channelURL string) ([]*youtube.VideoRecord, error)
	ChannelPlaylists(ctx context.Context, channelURL string) ([]youtube.PlaylistRecord, error)
}

var _ Source = (*youtube.Fetcher)(nil)
