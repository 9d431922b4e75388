package ytscan

import (
	"context"
	"fmt"

	"ytscan/internal/config"
	"ytscan/internal/scan"
	"ytscan/internal/storage"
	"ytscan/internal/youtube"
)

type (
	// Options selects the scan mode.
	Options = scan.Options
	// Result is the outcome of one channel scan.
	Result = scan.Result
	// VideoRecord describes one video.
	VideoRecord = youtube.VideoRecord
	// PlaylistRecord describes one playlist.
	PlaylistRecord = youtube.PlaylistRecord
)

// ScanChannel scans one channel with yt-dlp configured from the environment.
// channel may be a URL, an @handle or a channel ID.
func ScanChannel(ctx context.Context, channel string, opts Options) (*Result, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return scanWith(ctx, newRunner(cfg), channel, opts)
}

func newRunner(cfg *config.Config) *youtube.Ytdlp {
	y := youtube.NewYtdlp()
	y.Path = cfg.YtdlpPath
	y.Timeout = cfg.YtdlpTimeout
	y.ExtraArgs = cfg.ExtraArgs
	y.Limiter = cfg.Limiter()
	return y
}

func scanWith(ctx context.Context, runner youtube.Runner, channel string, opts Options) (*Result, error) {
	channelURL, err := youtube.NormalizeChannelURL(channel)
	if err != nil {
		return nil, fmt.Errorf("channel %q: %w", channel, err)
	}
	return scan.NewScanner(youtube.NewFetcher(runner)).Scan(ctx, channelURL, opts)
}

// SaveResult writes res to path as JSON and its links file next to it.
func SaveResult(path string, res *Result) error {
	if err := storage.SaveJSON(path, res); err != nil {
		return err
	}
	return storage.SaveLinks(storage.LinksPath(path), []storage.LinkSection{
		{Header: storage.HeaderPotentiallyUnlisted, Videos: res.PotentiallyUnlisted},
		{Header: storage.HeaderPlaylistVideos, Videos: res.PlaylistVideos},
	})
}
