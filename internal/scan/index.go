package scan

import "ytscan/internal/youtube"

// VideoIndex is an insertion-ordered set of video records keyed by ID.
//
// The index owns its records. Slices returned by Videos and Reconcile hold
// pointers into it, so an update through any of them is visible in all.
type VideoIndex struct {
	order []string
	byID  map[string]*youtube.VideoRecord
}

// NewVideoIndex returns an empty index.
func NewVideoIndex() *VideoIndex {
	return &VideoIndex{byID: make(map[string]*youtube.VideoRecord)}
}

// Add inserts v unless its ID is empty or already present. It reports
// whether v was inserted; the first record for an ID always wins.
func (x *VideoIndex) Add(v *youtube.VideoRecord) bool {
	if v == nil || v.ID == "" {
		return false
	}
	if _, exists := x.byID[v.ID]; exists {
		return false
	}
	x.byID[v.ID] = v
	x.order = append(x.order, v.ID)
	return true
}

// Get returns the record stored for id.
func (x *VideoIndex) Get(id string) (*youtube.VideoRecord, bool) {
	v, ok := x.byID[id]
	return v, ok
}

// Contains reports whether id is present.
func (x *VideoIndex) Contains(id string) bool {
	_, ok := x.byID[id]
	return ok
}

// Len returns the number of records.
func (x *VideoIndex) Len() int {
	return len(x.order)
}

// Videos returns the records in insertion order. The slice is never nil.
func (x *VideoIndex) Videos() []*youtube.VideoRecord {
	videos := make([]*youtube.VideoRecord, 0, len(x.order))
	for _, id := range x.order {
		videos = append(videos, x.byID[id])
	}
	return videos
}
