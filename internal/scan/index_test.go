package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVideoIndex_FirstSeenWins(t *testing.T) {
	index := NewVideoIndex()

	first := video("v1", "first", "public")
	assert.True(t, index.Add(first))
	assert.True(t, index.Add(video("v2", "second", "public")))
	assert.False(t, index.Add(video("v1", "duplicate", "private")))
	assert.False(t, index.Add(video("", "no id", "public")))
	assert.False(t, index.Add(nil))

	require.Equal(t, 2, index.Len())
	got, ok := index.Get("v1")
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, "first", got.Title)
	assert.Equal(t, []string{"v1", "v2"}, ids(index.Videos()))
}

func TestVideoIndex_InsertionOrder(t *testing.T) {
	index := NewVideoIndex()
	order := []string{"zz", "aa", "mm", "bb", "yy", "cc"}
	for _, id := range order {
		index.Add(video(id, id, "public"))
	}

	for i := 0; i < 5; i++ {
		assert.Equal(t, order, ids(index.Videos()))
	}
}

func TestVideoIndex_EmptyVideosNotNil(t *testing.T) {
	videos := NewVideoIndex().Videos()
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestVideoIndex_VideosShareRecords(t *testing.T) {
	index := NewVideoIndex()
	index.Add(video("v1", "T1", "public"))

	index.Videos()[0].Availability = "unlisted"

	got, _ := index.Get("v1")
	assert.Equal(t, "unlisted", got.Availability)
}
