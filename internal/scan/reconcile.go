package scan

import (
	"context"
	"fmt"

	"ytscan/internal/youtube"
)

// ReasonNotInPublicListing is the Reason set on flagged videos.
const ReasonNotInPublicListing = "In playlist but not in public videos"

// IDSet is a set of video IDs.
type IDSet map[string]struct{}

// PublicIDs collects the IDs of a public listing.
func PublicIDs(videos []*youtube.VideoRecord) IDSet {
	ids := make(IDSet, len(videos))
	for _, v := range videos {
		if v != nil {
			ids[v.ID] = struct{}{}
		}
	}
	return ids
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Reconcile returns the indexed videos whose ID is not in public, in index
// order, each annotated with ReasonNotInPublicListing. The returned records
// are the index's own.
func Reconcile(index *VideoIndex, public IDSet) []*youtube.VideoRecord {
	flagged := make([]*youtube.VideoRecord, 0)
	for _, v := range index.Videos() {
		if public.Has(v.ID) {
			continue
		}
		v.Reason = ReasonNotInPublicListing
		flagged = append(flagged, v)
	}
	return flagged
}

// Enrich looks up details for each video in order and applies them in
// place. A lookup that yields nothing leaves the record unchanged and does
// not stop the remaining lookups. It returns how many records were updated.
func Enrich(ctx context.Context, src DetailSource, videos []*youtube.VideoRecord, obs Observer) (int, error) {
	if obs == nil {
		obs = NopObserver{}
	}

	updated := 0
	for i, v := range videos {
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		obs.OnEnrich(i+1, len(videos), v)
		if v.ID == "" {
			continue
		}

		details, ok, err := src.VideoDetails(ctx, v.ID)
		if err != nil {
			return updated, fmt.Errorf("video details %s: %w", v.ID, err)
		}
		if !ok {
			continue
		}
		details.Apply(v)
		updated++
	}
	return updated, nil
}
