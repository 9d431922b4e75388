package scan

import (
	"context"
	"fmt"

	"ytscan/internal/youtube"
)

// Aggregate lists every playlist in order and merges their videos into one
// index. A video is attributed to the first playlist that produced it; later
// copies are dropped without merging fields. A playlist that yields nothing
// contributes nothing.
//
// Playlists are listed one at a time: attribution depends on a single
// processing order.
func Aggregate(ctx context.Context, src PlaylistSource, playlists []youtube.PlaylistRecord, obs Observer) (*VideoIndex, error) {
	if obs == nil {
		obs = NopObserver{}
	}

	index := NewVideoIndex()
	for i, pl := range playlists {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		obs.OnPlaylist(i+1, len(playlists), pl)

		videos, err := src.PlaylistVideos(ctx, pl.URL)
		if err != nil {
			return nil, fmt.Errorf("list playlist %s: %w", pl.ID, err)
		}
		for _, v := range videos {
			if v == nil || v.ID == "" || index.Contains(v.ID) {
				continue
			}
			v.FoundInPlaylist = pl.Title
			index.Add(v)
		}
	}
	return index, nil
}
