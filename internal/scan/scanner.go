package scan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Options selects the scan mode.
type Options struct {
	// IncludePublic fetches the public listing and reconciles against it.
	// Without it no video is flagged.
	IncludePublic bool

	// Detailed looks up each flagged video for fresher availability and
	// upload date. Ignored unless IncludePublic is set.
	Detailed bool
}

// Scanner runs channel scans against a Source.
type Scanner struct {
	// Source answers the listing queries.
	Source Source

	// Observer receives progress events. Defaults to NopObserver.
	Observer Observer

	// Logger receives phase summaries. Defaults to slog.Default().
	Logger *slog.Logger

	// Now returns the scan start time. Defaults to time.Now.
	Now func() time.Time
}

// NewScanner creates a scanner with default observer, logger and clock.
func NewScanner(src Source) *Scanner {
	return &Scanner{Source: src}
}

// Scan lists the channel's public videos (when requested) and playlists,
// merges the playlist videos, and flags those missing from the public
// listing. Only errors from the Source, such as a missing yt-dlp binary,
// or context cancellation are returned.
func (s *Scanner) Scan(ctx context.Context, channelURL string, opts Options) (*Result, error) {
	obs := s.observer()
	log := s.logger().With(slog.String("channel", channelURL))

	res := newResult(uuid.NewString(), channelURL, s.now(), opts)
	log.Info("scan started",
		slog.String("scan_id", res.ScanID),
		slog.Bool("include_public", opts.IncludePublic),
		slog.Bool("detailed", opts.Detailed),
	)

	var public IDSet
	if opts.IncludePublic {
		start := time.Now()
		obs.OnPhaseStart(PhasePublicVideos, 0)
		videos, err := s.Source.ChannelVideos(ctx, channelURL)
		if err != nil {
			return nil, fmt.Errorf("list public videos: %w", err)
		}
		if videos != nil {
			res.PublicVideos = videos
		}
		public = PublicIDs(res.PublicVideos)
		obs.OnPhaseDone(PhasePublicVideos, len(res.PublicVideos), time.Since(start))
		log.Info("public videos listed", slog.Int("count", len(res.PublicVideos)))
	}

	start := time.Now()
	obs.OnPhaseStart(PhasePlaylists, 0)
	playlists, err := s.Source.ChannelPlaylists(ctx, channelURL)
	if err != nil {
		return nil, fmt.Errorf("list playlists: %w", err)
	}
	if playlists != nil {
		res.Playlists = playlists
	}
	obs.OnPhaseDone(PhasePlaylists, len(res.Playlists), time.Since(start))
	log.Info("playlists listed", slog.Int("count", len(res.Playlists)))

	start = time.Now()
	obs.OnPhaseStart(PhasePlaylistVideos, len(res.Playlists))
	index, err := Aggregate(ctx, s.Source, res.Playlists, obs)
	if err != nil {
		return nil, err
	}
	res.PlaylistVideos = index.Videos()
	obs.OnPhaseDone(PhasePlaylistVideos, index.Len(), time.Since(start))
	log.Info("playlist videos merged", slog.Int("unique", index.Len()))

	if !opts.IncludePublic {
		return res, nil
	}

	start = time.Now()
	res.PotentiallyUnlisted = Reconcile(index, public)
	obs.OnPhaseDone(PhaseUnlisted, len(res.PotentiallyUnlisted), time.Since(start))
	log.Info("potentially unlisted videos", slog.Int("count", len(res.PotentiallyUnlisted)))

	if opts.Detailed && len(res.PotentiallyUnlisted) > 0 {
		start = time.Now()
		obs.OnPhaseStart(PhaseEnrich, len(res.PotentiallyUnlisted))
		updated, err := Enrich(ctx, s.Source, res.PotentiallyUnlisted, obs)
		if err != nil {
			return nil, err
		}
		obs.OnPhaseDone(PhaseEnrich, updated, time.Since(start))
		log.Info("flagged videos enriched",
			slog.Int("updated", updated),
			slog.Int("flagged", len(res.PotentiallyUnlisted)),
		)
	}

	return res, nil
}

func (s *Scanner) observer() Observer {
	if s.Observer != nil {
		return s.Observer
	}
	return NopObserver{}
}

func (s *Scanner) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func (s *Scanner) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
