package youtube

import "strings"

// FieldSeparator joins the fields of one record in yt-dlp's --print output.
const FieldSeparator = "|||"

// Availability values reported by yt-dlp. Other strings are kept verbatim.
const (
	AvailabilityPublic   = "public"
	AvailabilityUnlisted = "unlisted"
	AvailabilityPrivate  = "private"
	AvailabilityUnknown  = "unknown"
)

// VideoRecord is one video discovered in a listing.
type VideoRecord struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	URL          string `json:"url"`
	Availability string `json:"availability"`
	UploadDate   string `json:"upload_date"`

	// FoundInPlaylist is the title of the first playlist that produced the
	// video. Set only by playlist aggregation.
	FoundInPlaylist string `json:"found_in_playlist,omitempty"`

	// Reason explains why the video was flagged. Set only on flagged videos.
	Reason string `json:"reason,omitempty"`
}

// PlaylistRecord is one playlist of a channel.
type PlaylistRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
}

// VideoLayout describes which columns a print template emits after the
// leading id and title.
type VideoLayout struct {
	// Availability is true when column 2 carries the availability.
	Availability bool
}

// Layouts for the two listing templates.
var (
	LayoutWithAvailability = VideoLayout{Availability: true}
	LayoutPublicListing    = VideoLayout{Availability: false}
)

// dateOffset is the index of the first date column.
func (l VideoLayout) dateOffset() int {
	if l.Availability {
		return 3
	}
	return 2
}

// ParseVideoFields builds a VideoRecord from the split fields of one line.
// Missing trailing fields take their documented defaults: empty id and
// title, "unknown" availability, "NA" dates. Callers reject lines with
// fewer than two fields and records with an empty id.
func ParseVideoFields(fields []string, layout VideoLayout) VideoRecord {
	v := VideoRecord{
		ID:           field(fields, 0, ""),
		Title:        field(fields, 1, ""),
		Availability: AvailabilityPublic,
	}
	if layout.Availability {
		v.Availability = field(fields, 2, AvailabilityUnknown)
	}

	off := layout.dateOffset()
	v.UploadDate = NormalizeDate(DateFields{
		UploadDate:       field(fields, off, DateUnknown),
		UploadTimestamp:  field(fields, off+1, DateUnknown),
		ReleaseDate:      field(fields, off+2, DateUnknown),
		ReleaseTimestamp: field(fields, off+3, DateUnknown),
	})
	v.URL = VideoURL(v.ID)
	return v
}

func field(fields []string, i int, def string) string {
	if i < len(fields) {
		return fields[i]
	}
	return def
}

// splitRecordLine splits a line on FieldSeparator. It reports false for
// lines without a separator or with fewer than two fields.
func splitRecordLine(line string) ([]string, bool) {
	if !strings.Contains(line, FieldSeparator) {
		return nil, false
	}
	parts := strings.Split(line, FieldSeparator)
	if len(parts) < 2 {
		return nil, false
	}
	return parts, true
}

// outputLines splits tool output into lines, dropping a trailing \r.
func outputLines(out string) []string {
	out = strings.TrimSpace(out)
	if out == "" {
		return nil
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// parseVideoOutput parses every well-formed line of a video listing.
func parseVideoOutput(out string, layout VideoLayout) []*VideoRecord {
	var videos []*VideoRecord
	for _, line := range outputLines(out) {
		parts, ok := splitRecordLine(line)
		if !ok {
			continue
		}
		v := ParseVideoFields(parts, layout)
		if v.ID == "" {
			continue
		}
		videos = append(videos, &v)
	}
	return videos
}

// parsePlaylistOutput parses "<id>|||<title>" lines. Titles may contain the
// separator; only the first occurrence splits.
func parsePlaylistOutput(out string) []PlaylistRecord {
	var playlists []PlaylistRecord
	for _, line := range outputLines(out) {
		id, title, ok := strings.Cut(line, FieldSeparator)
		if !ok || id == "" {
			continue
		}
		playlists = append(playlists, PlaylistRecord{
			ID:    id,
			Title: title,
			URL:   PlaylistURL(id),
		})
	}
	return playlists
}
