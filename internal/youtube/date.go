package youtube

import (
	"strconv"
	"strings"
	"time"
)

// DateUnknown is the marker emitted when no usable date is available.
const DateUnknown = "NA"

// DateFields holds the raw date columns printed by yt-dlp. Empty strings,
// "NA" and "None" all mean the column had no value.
type DateFields struct {
	UploadDate       string
	UploadTimestamp  string
	ReleaseDate      string
	ReleaseTimestamp string
}

// NormalizeDate reduces the raw date columns to a YYYY-MM-DD string using
// the local time zone for timestamps, or DateUnknown.
func NormalizeDate(f DateFields) string {
	return NormalizeDateIn(f, time.Local)
}

// NormalizeDateIn is NormalizeDate with timestamps converted in loc.
//
// Precedence: compact upload date, upload timestamp, compact release date,
// release timestamp, the upload date verbatim, DateUnknown. Compact dates
// are sliced, not validated, so "20231399" becomes "2023-13-99".
func NormalizeDateIn(f DateFields, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	steps := []func() (string, bool){
		func() (string, bool) { return compactDate(f.UploadDate) },
		func() (string, bool) { return timestampDate(f.UploadTimestamp, loc) },
		func() (string, bool) { return compactDate(f.ReleaseDate) },
		func() (string, bool) { return timestampDate(f.ReleaseTimestamp, loc) },
		func() (string, bool) { return present(f.UploadDate) },
	}
	for _, step := range steps {
		if d, ok := step(); ok {
			return d
		}
	}
	return DateUnknown
}

// present returns raw when it carries a value.
func present(raw string) (string, bool) {
	switch raw {
	case "", "NA", "None":
		return "", false
	}
	return raw, true
}

// compactDate formats an 8-character YYYYMMDD value as YYYY-MM-DD.
func compactDate(raw string) (string, bool) {
	raw, ok := present(raw)
	if !ok {
		return "", false
	}
	r := []rune(raw)
	if len(r) != 8 {
		return "", false
	}
	return string(r[0:4]) + "-" + string(r[4:6]) + "-" + string(r[6:8]), true
}

// timestampDate converts positive epoch seconds to a calendar date in loc.
func timestampDate(raw string, loc *time.Location) (string, bool) {
	raw, ok := present(strings.TrimSpace(raw))
	if !ok {
		return "", false
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || sec <= 0 {
		return "", false
	}
	t := time.Unix(sec, 0).In(loc)
	if y := t.Year(); y < 1 || y > 9999 {
		return "", false
	}
	return t.Format("2006-01-02"), true
}
