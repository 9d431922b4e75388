// Package youtube lists channel videos, playlists and per-video details
// through yt-dlp and turns its delimited text output into records.
package youtube

import (
	"errors"
	"regexp"
	"strings"
)

// Sentinel errors for yt-dlp operations.
var (
	ErrYtdlpNotInstalled = errors.New("youtube: yt-dlp not installed")
	ErrInvalidURL        = errors.New("youtube: invalid URL")
)

// ToolError wraps errors with context about the yt-dlp invocation.
type ToolError struct {
	Tool string // Executable that was invoked
	Err  error  // Underlying error
}

func (e *ToolError) Error() string {
	return "youtube: " + e.Tool + ": " + e.Err.Error()
}

func (e *ToolError) Unwrap() error { return e.Err }

const (
	watchURLPrefix    = "https://www.youtube.com/watch?v="
	playlistURLPrefix = "https://www.youtube.com/playlist?list="
	channelURLPrefix  = "https://www.youtube.com/channel/"
	siteURL           = "https://www.youtube.com/"
)

var channelIDRegex = regexp.MustCompile(`^UC[a-zA-Z0-9_-]{22}$`)

// VideoURL returns the watch URL for a video ID.
func VideoURL(id string) string {
	return watchURLPrefix + id
}

// PlaylistURL returns the URL for a playlist ID.
func PlaylistURL(id string) string {
	return playlistURLPrefix + id
}

// NormalizeChannelURL accepts a channel URL, an @handle, or a bare channel
// ID and returns a channel URL without trailing slashes.
func NormalizeChannelURL(input string) (string, error) {
	s := strings.TrimSpace(input)
	switch {
	case s == "":
		return "", ErrInvalidURL
	case channelIDRegex.MatchString(s):
		return channelURLPrefix + s, nil
	case strings.HasPrefix(s, "@"):
		s = siteURL + s
	case strings.HasPrefix(s, "youtube.com/"), strings.HasPrefix(s, "www.youtube.com/"):
		s = "https://" + s
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return "", ErrInvalidURL
	}
	return strings.TrimRight(s, "/"), nil
}

// channelTab returns the URL of a channel tab such as "videos" or "playlists".
func channelTab(channelURL, tab string) string {
	return strings.TrimRight(channelURL, "/") + "/" + tab
}
