package youtube

import "context"

var detailTemplate = printTemplate("id", "title", "availability", "upload_date", "timestamp", "release_date", "release_timestamp")

// VideoDetails holds the fields refreshed by a per-video lookup.
type VideoDetails struct {
	Availability string `json:"availability"`
	UploadDate   string `json:"upload_date"`
}

// Apply overwrites the detail fields of v.
func (d VideoDetails) Apply(v *VideoRecord) {
	v.Availability = d.Availability
	v.UploadDate = d.UploadDate
}

// VideoDetails fetches availability and upload date for one video without
// downloading it. The boolean is false when yt-dlp printed no record.
func (f *Fetcher) VideoDetails(ctx context.Context, videoID string) (VideoDetails, bool, error) {
	out, err := f.runner.Run(ctx,
		"--skip-download",
		"--print", detailTemplate,
		VideoURL(videoID),
	)
	if err != nil {
		return VideoDetails{}, false, err
	}
	d, ok := parseDetailOutput(out)
	return d, ok, nil
}

// parseDetailOutput reads the first record line of a detail lookup.
func parseDetailOutput(out string) (VideoDetails, bool) {
	for _, line := range outputLines(out) {
		parts, ok := splitRecordLine(line)
		if !ok {
			continue
		}
		v := ParseVideoFields(parts, LayoutWithAvailability)
		return VideoDetails{Availability: v.Availability, UploadDate: v.UploadDate}, true
	}
	return VideoDetails{}, false
}
