package scan

import (
	"time"

	"ytscan/internal/youtube"
)

// Phase names a step of a channel scan.
type Phase string

const (
	PhasePublicVideos   Phase = "public_videos"
	PhasePlaylists      Phase = "playlists"
	PhasePlaylistVideos Phase = "playlist_videos"
	PhaseUnlisted       Phase = "potentially_unlisted"
	PhaseEnrich         Phase = "enrich"
)

// Observer receives progress events from a scan. The scan itself prints
// nothing; the CLI renders these events.
//
// Events arrive from the scanning goroutine, one at a time.
type Observer interface {
	// OnPhaseStart is called before a phase issues its first query.
	OnPhaseStart(phase Phase, total int)
	// OnPhaseDone is called with the number of records the phase produced.
	OnPhaseDone(phase Phase, count int, dur time.Duration)
	// OnPlaylist is called before playlist idx (1-based) of total is listed.
	OnPlaylist(idx, total int, pl youtube.PlaylistRecord)
	// OnEnrich is called before video idx (1-based) of total is looked up.
	OnEnrich(idx, total int, v *youtube.VideoRecord)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) OnPhaseStart(Phase, int) {}
func (NopObserver) OnPhaseDone(Phase, int, time.Duration) {}
func (NopObserver) OnPlaylist(int, int, youtube.PlaylistRecord) {}
func (NopObserver) OnEnrich(int, int, *youtube.VideoRecord) {}
