package youtube

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner returns canned output keyed by the target URL (the last argument).
type fakeRunner struct {
	outputs map[string]string
	err     error
	calls   [][]string
}

func (f *fakeRunner) Run(ctx context.Context, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	if f.err != nil {
		return "", f.err
	}
	return f.outputs[args[len(args)-1]], nil
}

func TestFetcher_ChannelVideos(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"https://www.youtube.com/@test/videos": "v1|||T1|||20230101|||NA\nbroken\nv3|||T3\n",
	}}
	f := NewFetcher(runner)

	videos, err := f.ChannelVideos(context.Background(), "https://www.youtube.com/@test/")
	if err != nil {
		t.Fatalf("ChannelVideos() error = %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("ChannelVideos() len = %d, want 2", len(videos))
	}
	if videos[0].ID != "v1" || videos[0].UploadDate != "2023-01-01" || videos[0].Availability != "public" {
		t.Errorf("videos[0] = %+v", videos[0])
	}
	if videos[1].Availability != "public" || videos[1].UploadDate != "NA" {
		t.Errorf("videos[1] = %+v", videos[1])
	}

	args := strings.Join(runner.calls[0], " ")
	for _, want := range []string{"--flat-playlist", "youtube:approximate_date", "%(id)s|||%(title)s|||%(upload_date)s|||%(timestamp)s"} {
		if !strings.Contains(args, want) {
			t.Errorf("args %q missing %q", args, want)
		}
	}
	if strings.Contains(args, "%(availability)s") {
		t.Errorf("public listing template should not print availability: %q", args)
	}
}

func TestFetcher_ChannelPlaylists(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"https://www.youtube.com/@testuser/playlists": "PLabc123|||Playlist 1\nPLxyz789|||Playlist 2\n",
	}}
	f := NewFetcher(runner)

	playlists, err := f.ChannelPlaylists(context.Background(), "https://www.youtube.com/@testuser")
	if err != nil {
		t.Fatalf("ChannelPlaylists() error = %v", err)
	}
	if len(playlists) != 2 {
		t.Fatalf("ChannelPlaylists() len = %d, want 2", len(playlists))
	}
	if playlists[0].ID != "PLabc123" || playlists[0].Title != "Playlist 1" {
		t.Errorf("playlists[0] = %+v", playlists[0])
	}
	if playlists[0].URL != "https://www.youtube.com/playlist?list=PLabc123" {
		t.Errorf("playlists[0].URL = %q", playlists[0].URL)
	}
}

func TestFetcher_ChannelPlaylists_MalformedOutput(t *testing.T) {
	runner := &fakeRunner{outputs: map[string]string{
		"https://www.youtube.com/@testuser/playlists": "invalid line\nno separator here",
	}}

	playlists, err := NewFetcher(runner).ChannelPlaylists(context.Background(), "https://www.youtube.com/@testuser")
	if err != nil {
		t.Fatalf("ChannelPlaylists() error = %v", err)
	}
	if len(playlists) != 0 {
		t.Errorf("ChannelPlaylists() len = %d, want 0", len(playlists))
	}
}

func TestFetcher_PlaylistVideos(t *testing.T) {
	const url = "https://www.youtube.com/playlist?list=PLabc123"
	runner := &fakeRunner{outputs: map[string]string{
		url: "vid1|||Video 1|||public|||20231225|||1703548800\n" +
			"vid2|||Video 2|||unlisted|||20231226|||1703635200\n",
	}}

	videos, err := NewFetcher(runner).PlaylistVideos(context.Background(), url)
	if err != nil {
		t.Fatalf("PlaylistVideos() error = %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("PlaylistVideos() len = %d, want 2", len(videos))
	}
	if videos[0].Availability != "public" || videos[1].Availability != "unlisted" {
		t.Errorf("availability = %q, %q", videos[0].Availability, videos[1].Availability)
	}
	if videos[0].FoundInPlaylist != "" {
		t.Errorf("FoundInPlaylist = %q, want empty before aggregation", videos[0].FoundInPlaylist)
	}
}

func TestFetcher_PlaylistVideos_Empty(t *testing.T) {
	videos, err := NewFetcher(&fakeRunner{}).PlaylistVideos(context.Background(), "https://www.youtube.com/playlist?list=PLempty")
	if err != nil {
		t.Fatalf("PlaylistVideos() error = %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("PlaylistVideos() len = %d, want 0", len(videos))
	}
}

func TestFetcher_PropagatesRunnerError(t *testing.T) {
	fatal := &ToolError{Tool: "yt-dlp", Err: ErrYtdlpNotInstalled}
	f := NewFetcher(&fakeRunner{err: fatal})
	ctx := context.Background()

	if _, err := f.ChannelVideos(ctx, "https://www.youtube.com/@x"); !errors.Is(err, ErrYtdlpNotInstalled) {
		t.Errorf("ChannelVideos() error = %v", err)
	}
	if _, err := f.ChannelPlaylists(ctx, "https://www.youtube.com/@x"); !errors.Is(err, ErrYtdlpNotInstalled) {
		t.Errorf("ChannelPlaylists() error = %v", err)
	}
	if _, err := f.PlaylistVideos(ctx, "https://www.youtube.com/playlist?list=PL"); !errors.Is(err, ErrYtdlpNotInstalled) {
		t.Errorf("PlaylistVideos() error = %v", err)
	}
	if _, _, err := f.VideoDetails(ctx, "v1"); !errors.Is(err, ErrYtdlpNotInstalled) {
		t.Errorf("VideoDetails() error = %v", err)
	}
}
