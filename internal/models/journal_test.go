package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMediaVariant(t *testing.T) {
	none := NoMedia()
	assert.Equal(t, MediaNone, none.Kind())
	_, ok := none.Image()
	assert.False(t, ok)

	var zero Media
	assert.Equal(t, MediaNone, zero.Kind())

	src := []byte{0xff, 0xd8, 0xff}
	img := ImageMedia(src)
	src[0] = 0
	data, ok := img.Image()
	require.True(t, ok)
	assert.Equal(t, byte(0xff), data[0], "image bytes must be copied")
	_, ok = img.VideoRef()
	assert.False(t, ok)

	vid := VideoMedia("/tmp/clip.mov")
	ref, ok := vid.VideoRef()
	require.True(t, ok)
	assert.Equal(t, "/tmp/clip.mov", ref)
	_, ok = vid.Image()
	assert.False(t, ok)

	assert.Equal(t, MediaNone, ImageMedia(nil).Kind())
	assert.Equal(t, MediaNone, VideoMedia("").Kind())
}

func TestMediaMarshalJSON(t *testing.T) {
	out, err := json.Marshal(ImageMedia([]byte("abcd")))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"image","image_size":4}`, string(out))

	out, err = json.Marshal(VideoMedia("https://cdn/v.mp4"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"video","video_ref":"https://cdn/v.mp4"}`, string(out))

	out, err = json.Marshal(Media{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"none"}`, string(out))
}

func TestParseMediaKind(t *testing.T) {
	k, err := ParseMediaKind("video")
	require.NoError(t, err)
	assert.Equal(t, MediaVideo, k)

	k, err = ParseMediaKind("")
	require.NoError(t, err)
	assert.Equal(t, MediaNone, k)

	_, err = ParseMediaKind("audio")
	assert.Error(t, err)
}

func TestEntryLabel(t *testing.T) {
	at := time.Date(2024, time.July, 18, 15, 4, 0, 0, time.UTC)

	titled := JournalEntry{Title: "Surf day", Content: "ignored", CreatedAt: at}
	assert.Equal(t, "Jul 18, 2024, 3:04 PM: Surf day", titled.Label())

	long := strings.Repeat("é", 60)
	untitled := JournalEntry{Content: long, CreatedAt: at}
	assert.Equal(t, "Jul 18, 2024, 3:04 PM: "+strings.Repeat("é", 50)+"...", untitled.Label())

	short := JournalEntry{Content: "hi", CreatedAt: at}
	assert.Equal(t, "Jul 18, 2024, 3:04 PM: hi...", short.Label())
}
