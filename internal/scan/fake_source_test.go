package scan

import (
	"context"

	"ytscan/internal/youtube"
)

// fakeSource serves canned listings and records the queries it receives.
type fakeSource struct {
	public    []*youtube.VideoRecord
	playlists []youtube.PlaylistRecord
	videos    map[string][]*youtube.VideoRecord // playlist URL -> videos
	details   map[string]youtube.VideoDetails   // video ID -> details

	publicErr   error
	playlistErr map[string]error
	detailErr   map[string]error

	publicCalls   int
	playlistCalls []string
	detailCalls   []string
}

func (f *fakeSource) ChannelVideos(ctx context.Context, channelURL string) ([]*youtube.VideoRecord, error) {
	f.publicCalls++
	return f.public, f.publicErr
}

func (f *fakeSource) ChannelPlaylists(ctx context.Context, channelURL string) ([]youtube.PlaylistRecord, error) {
	return f.playlists, nil
}

func (f *fakeSource) PlaylistVideos(ctx context.Context, playlistURL string) ([]*youtube.VideoRecord, error) {
	f.playlistCalls = append(f.playlistCalls, playlistURL)
	if err := f.playlistErr[playlistURL]; err != nil {
		return nil, err
	}
	// Hand out fresh copies, as a real fetch would.
	var out []*youtube.VideoRecord
	for _, v := range f.videos[playlistURL] {
		c := *v
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeSource) VideoDetails(ctx context.Context, videoID string) (youtube.VideoDetails, bool, error) {
	f.detailCalls = append(f.detailCalls, videoID)
	if err := f.detailErr[videoID]; err != nil {
		return youtube.VideoDetails{}, false, err
	}
	d, ok := f.details[videoID]
	return d, ok, nil
}

func playlist(id, title string) youtube.PlaylistRecord {
	return youtube.PlaylistRecord{ID: id, Title: title, URL: youtube.PlaylistURL(id)}
}

func video(id, title, availability string) *youtube.VideoRecord {
	return &youtube.VideoRecord{
		ID:           id,
		Title:        title,
		URL:          youtube.VideoURL(id),
		Availability: availability,
		UploadDate:   youtube.DateUnknown,
	}
}

func ids(videos []*youtube.VideoRecord) []string {
	out := make([]string, 0, len(videos))
	for _, v := range videos {
		out = append(out, v.ID)
	}
	return out
}

// fakeRunner answers yt-dlp invocations by target URL.
type fakeRunner map[string]string

func (r fakeRunner) Run(ctx context.Context, args ...string) (string, error) {
	return r[args[len(args)-1]], nil
}
