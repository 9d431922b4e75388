// Package ytscan finds videos of a YouTube channel that appear in its
// playlists but not in its public "Videos" tab, which usually means they are
// unlisted.
//
// Overview
//
// A scan runs a fixed sequence of yt-dlp queries:
//
//   - the channel's public videos (skipped in playlists-only mode)
//   - the channel's playlists
//   - the videos of each playlist, merged by video ID, first seen wins
//
// Playlist videos missing from the public listing are flagged as
// potentially unlisted. In detailed mode each flagged video is looked up
// once more for its availability and upload date.
//
// Quick Start
//
//	ctx := context.Background()
//	res, err := ytscan.ScanChannel(ctx, "@someone", ytscan.Options{IncludePublic: true})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, v := range res.PotentiallyUnlisted {
//		fmt.Println(v.UploadDate, v.URL, v.Title)
//	}
//
// Configuration
//
// ScanChannel reads its settings like the ytscan command does:
//
//  1. Environment variables (highest priority)
//  2. Config file (ytscan.json or ~/.config/ytscan/ytscan.json)
//  3. A .env file in the working directory
//  4. Default values (lowest priority)
//
// Environment variables:
//
//   - YTSCAN_YTDLP_PATH: Path to yt-dlp executable
//   - YTSCAN_YTDLP_TIMEOUT: Timeout for each yt-dlp invocation (default 300s)
//   - YTSCAN_YTDLP_EXTRA_ARGS: Comma-separated arguments added to every invocation
//   - YTSCAN_INVOCATION_RATE: Maximum yt-dlp starts per second (0 = unlimited)
//   - YTSCAN_LOG_LEVEL: debug, info, warn or error
//   - YTSCAN_OUTPUT_DIR: Directory for result files of the ytscan command
//
// Error Handling
//
// A scan fails only when yt-dlp cannot be run or the context is canceled.
// Timeouts, non-zero exits and unparseable output yield empty listings.
//
//	if errors.Is(err, ytscan.ErrYtdlpNotInstalled) {
//		fmt.Println("install yt-dlp first")
//	}
//
// Dependencies
//
// ytscan requires yt-dlp to be installed and available in PATH or specified via
// YTSCAN_YTDLP_PATH environment variable.
//
// Install yt-dlp: https://github.com/yt-dlp/yt-dlp
package ytscan
