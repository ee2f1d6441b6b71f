package track_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voigtjr/rkbeets/core/track"
)

func TestRecord_FieldOrder(t *testing.T) {
	r, err := track.New(track.OriginTag, "/music/a.mp3")
	require.NoError(t, err)

	r.Set("title", "A")
	r.Set("artist", "B")
	r.Set("year", 2001)
	r.Set("title", "A2") // replace keeps position

	assert.Equal(t, []string{"title", "artist", "year"}, r.Names())

	v, ok := r.Get("title")
	require.True(t, ok)
	assert.Equal(t, "A2", v)

	_, ok = r.Get("album")
	assert.False(t, ok)
}

func TestRecord_KeyDerivedOnConstruction(t *testing.T) {
	r, err := track.New(track.OriginExport, "Users/dj/Music/A.mp3")
	require.NoError(t, err)
	assert.Equal(t, "/users/dj/music/a.mp3", r.Key())
	assert.Equal(t, "Users/dj/Music/A.mp3", r.Path())

	_, err = track.New(track.OriginTag, "")
	require.Error(t, err)
}

func TestRecord_CloneIsIndependent(t *testing.T) {
	r, err := track.New(track.OriginTag, "/music/a.mp3")
	require.NoError(t, err)
	r.Set("rating", 3)

	c := r.Clone()
	c.Set("rating", 5)
	c.Set("comments", "new")

	v, _ := r.Get("rating")
	assert.Equal(t, 3, v)
	_, ok := r.Get("comments")
	assert.False(t, ok)
	assert.Equal(t, r.Key(), c.Key())
}
