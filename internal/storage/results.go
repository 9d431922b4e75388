package storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"ytscan/internal/youtube"
)

// Section headers of the links file.
const (
	HeaderPotentiallyUnlisted = "Potentially unlisted videos"
	HeaderPlaylistVideos      = "All playlist videos"
)

// LinkSection is one titled block of the links file.
type LinkSection struct {
	Header string
	Videos []*youtube.VideoRecord
}

// DefaultResultPath returns the result file name used when none is given.
func DefaultResultPath(now time.Time) string {
	return "youtube_scan_" + now.Format("2006-01-02_150405") + ".json"
}

// LinksPath derives the links file path from a result path.
func LinksPath(resultPath string) string {
	return strings.TrimSuffix(resultPath, ".json") + "_links.txt"
}

// SaveJSON writes v to path as indented JSON, atomically.
func SaveJSON(path string, v any) error {
	return writeLocked(path, "result", func(w io.Writer) error {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(v)
	})
}

// SaveLinks writes the sections to path, one "[date] url - title" line per
// video, atomically.
func SaveLinks(path string, sections []LinkSection) error {
	return writeLocked(path, "links", func(w io.Writer) error {
		return WriteLinks(w, sections)
	})
}

// WriteLinks renders the links file format to w.
func WriteLinks(w io.Writer, sections []LinkSection) error {
	bw := bufio.NewWriter(w)
	for i, s := range sections {
		if i > 0 {
			bw.WriteString("\n\n")
		}
		fmt.Fprintf(bw, "# %s\n\n", s.Header)
		for _, v := range s.Videos {
			bw.WriteString(FormatVideoLine(v))
		}
	}
	return bw.Flush()
}

// FormatVideoLine formats one video as "[<date>] <url> - <title>\n".
func FormatVideoLine(v *youtube.VideoRecord) string {
	return fmt.Sprintf("[%s] %s - %s\n", v.UploadDate, v.URL, v.Title)
}
