package scan

import (
	"time"

	"ytscan/internal/youtube"
)

// Result is the outcome of one channel scan.
//
// PotentiallyUnlisted is a subset of PlaylistVideos and shares its records.
type Result struct {
	ScanID        string    `json:"scan_id"`
	ChannelURL    string    `json:"channel_url"`
	ScanDate      time.Time `json:"scan_date"`
	IncludePublic bool      `json:"include_public"`
	Detailed      bool      `json:"detailed"`

	PublicVideos        []*youtube.VideoRecord   `json:"public_videos"`
	PlaylistVideos      []*youtube.VideoRecord   `json:"playlist_videos"`
	Playlists           []youtube.PlaylistRecord `json:"playlists"`
	PotentiallyUnlisted []*youtube.VideoRecord   `json:"potentially_unlisted"`
}

func newResult(id, channelURL string, started time.Time, opts Options) *Result {
	return &Result{
		ScanID:              id,
		ChannelURL:          channelURL,
		ScanDate:            started,
		IncludePublic:       opts.IncludePublic,
		Detailed:            opts.Detailed,
		PublicVideos:        []*youtube.VideoRecord{},
		PlaylistVideos:      []*youtube.VideoRecord{},
		Playlists:           []youtube.PlaylistRecord{},
		PotentiallyUnlisted: []*youtube.VideoRecord{},
	}
}
