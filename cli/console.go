package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"ytscan/internal/scan"
	"ytscan/internal/youtube"
)

const (
	rule          = "============================================================"
	thinRule      = "------------------------------------------------------------"
	maxTitleRunes = 60
)

// consoleObserver prints scan progress lines.
type consoleObserver struct {
	w io.Writer
}

func newConsoleObserver(w io.Writer) *consoleObserver {
	return &consoleObserver{w: w}
}

func (o *consoleObserver) OnPhaseStart(phase scan.Phase, total int) {
	switch phase {
	case scan.PhasePublicVideos:
		fmt.Fprintf(o.w, "Retrieving public videos from channel...\n")
	case scan.PhasePlaylists:
		fmt.Fprintf(o.w, "Searching for channel playlists...\n")
	case scan.PhaseEnrich:
		fmt.Fprintf(o.w, "Fetching detailed metadata for %d videos...\n", total)
	}
}

func (o *consoleObserver) OnPhaseDone(phase scan.Phase, count int, dur time.Duration) {
	switch phase {
	case scan.PhasePublicVideos:
		fmt.Fprintf(o.w, "%d public videos found\n", count)
	case scan.PhasePlaylists:
		fmt.Fprintf(o.w, "%d playlists found\n", count)
	case scan.PhasePlaylistVideos:
		fmt.Fprintf(o.w, "%d unique videos found in playlists (%s)\n", count, dur.Round(time.Second))
	case scan.PhaseUnlisted:
		fmt.Fprintf(o.w, "%d potentially unlisted videos\n", count)
	case scan.PhaseEnrich:
		fmt.Fprintf(o.w, "%d videos updated from metadata\n", count)
	}
}

func (o *consoleObserver) OnPlaylist(idx, total int, pl youtube.PlaylistRecord) {
	fmt.Fprintf(o.w, "Scanning playlist %d/%d: %s...\n", idx, total, pl.Title)
}

func (o *consoleObserver) OnEnrich(idx, total int, v *youtube.VideoRecord) {
	fmt.Fprintf(o.w, "   [%d/%d] %s...\n", idx, total, truncate(v.Title, maxTitleRunes))
}

func printBanner(w io.Writer, channelURL string, started time.Time, opts scan.Options) {
	speed := "Fast"
	if opts.Detailed {
		speed = "Detailed"
	}
	scope := "Full scan"
	if !opts.IncludePublic {
		scope = "Playlists only"
	}

	fmt.Fprintf(w, "YouTube Channel Scanner\n%s\n", rule)
	fmt.Fprintf(w, "Channel: %s\n", channelURL)
	fmt.Fprintf(w, "Date: %s\n", started.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Mode: %s | %s\n", speed, scope)
	fmt.Fprintf(w, "%s\n\n", rule)
}

func printResults(w io.Writer, res *scan.Result) {
	fmt.Fprintf(w, "\n%s\nSCAN RESULTS\n%s\n\n", rule, rule)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Public videos:\t%d\n", len(res.PublicVideos))
	fmt.Fprintf(tw, "Playlists scanned:\t%d\n", len(res.Playlists))
	fmt.Fprintf(tw, "Videos in playlists:\t%d\n", len(res.PlaylistVideos))
	fmt.Fprintf(tw, "Potentially unlisted:\t%d\n", len(res.PotentiallyUnlisted))
	tw.Flush()

	if len(res.PotentiallyUnlisted) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\nPOTENTIALLY UNLISTED VIDEOS:\n%s\n", thinRule, thinRule)
	for _, v := range res.PotentiallyUnlisted {
		fmt.Fprintf(w, "\n  %s\n", truncate(v.Title, maxTitleRunes))
		fmt.Fprintf(w, "     URL: %s\n", v.URL)
		fmt.Fprintf(w, "     Date: %s\n", v.UploadDate)
		fmt.Fprintf(w, "     Found in: %s\n", v.FoundInPlaylist)
	}
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
