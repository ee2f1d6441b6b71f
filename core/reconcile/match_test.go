package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voigtjr/rkbeets/core/reconcile"
	"github.com/voigtjr/rkbeets/core/track"
)

// tagRec builds a tag-origin record with the given fields.
func tagRec(t *testing.T, path string, fields map[string]any) *track.Record {
	t.Helper()
	rec, err := track.New(track.OriginTag, path)
	require.NoError(t, err)
	for name, v := range fields {
		rec.Set(name, v)
	}
	return rec
}

// exportRec builds an export-origin record with the given fields.
func exportRec(t *testing.T, location string, fields map[string]any) *track.Record {
	t.Helper()
	rec, err := track.New(track.OriginExport, location)
	require.NoError(t, err)
	for name, v := range fields {
		rec.Set(name, v)
	}
	return rec
}

func TestMatch_Partition(t *testing.T) {
	tags := []*track.Record{
		tagRec(t, "/a/1.mp3", nil),
		tagRec(t, "/a/2.mp3", nil),
	}
	exports := []*track.Record{
		exportRec(t, "a/2.mp3", nil),
		exportRec(t, "a/3.mp3", nil),
	}

	m := reconcile.Match(tags, exports)

	require.Len(t, m.Matched, 1)
	assert.Equal(t, "/a/2.mp3", m.Matched[0].Tag.Key())
	assert.Equal(t, "/a/2.mp3", m.Matched[0].Export.Key())

	require.Len(t, m.TagOnly, 1)
	assert.Equal(t, "/a/1.mp3", m.TagOnly[0].Key())

	require.Len(t, m.ExportOnly, 1)
	assert.Equal(t, "/a/3.mp3", m.ExportOnly[0].Key())

	assert.Zero(t, m.DuplicateTag)
	assert.Zero(t, m.DuplicateExport)
}

// Matching is keyed on the normalized path: case and Unicode form differ,
// rekordbox strips the leading slash, and the records still pair up.
func TestMatch_NormalizedKeys(t *testing.T) {
	tags := []*track.Record{
		tagRec(t, "/Music/Café/Track.MP3", nil),
	}
	exports := []*track.Record{
		exportRec(t, "music/café/track.mp3", nil),
	}

	m := reconcile.Match(tags, exports)
	require.Len(t, m.Matched, 1)
	assert.Empty(t, m.TagOnly)
	assert.Empty(t, m.ExportOnly)
}

// Every input record lands in exactly one partition; sizes add up.
func TestMatch_PartitionCompleteness(t *testing.T) {
	tags := []*track.Record{
		tagRec(t, "/m/1.mp3", nil),
		tagRec(t, "/m/2.mp3", nil),
		tagRec(t, "/m/3.mp3", nil),
		tagRec(t, "/m/4.mp3", nil),
	}
	exports := []*track.Record{
		exportRec(t, "m/3.mp3", nil),
		exportRec(t, "m/4.mp3", nil),
		exportRec(t, "m/5.mp3", nil),
	}

	m := reconcile.Match(tags, exports)

	assert.Equal(t, len(tags), len(m.Matched)+len(m.TagOnly)+m.DuplicateTag)
	assert.Equal(t, len(exports), len(m.Matched)+len(m.ExportOnly)+m.DuplicateExport)
}

func TestMatch_OrderPreserved(t *testing.T) {
	tags := []*track.Record{
		tagRec(t, "/m/z.mp3", nil),
		tagRec(t, "/m/a.mp3", nil),
		tagRec(t, "/m/q.mp3", nil),
	}
	exports := []*track.Record{
		exportRec(t, "m/q.mp3", nil),
		exportRec(t, "m/y.mp3", nil),
		exportRec(t, "m/b.mp3", nil),
	}

	m := reconcile.Match(tags, exports)

	// TagOnly keeps tag iteration order, not sorted order.
	require.Len(t, m.TagOnly, 2)
	assert.Equal(t, "/m/z.mp3", m.TagOnly[0].Key())
	assert.Equal(t, "/m/a.mp3", m.TagOnly[1].Key())

	// ExportOnly keeps export-side relative order.
	require.Len(t, m.ExportOnly, 2)
	assert.Equal(t, "/m/y.mp3", m.ExportOnly[0].Key())
	assert.Equal(t, "/m/b.mp3", m.ExportOnly[1].Key())
}

// Records whose key collides after normalization are withheld and
// counted, never merged or arbitrarily picked.
func TestMatch_DuplicateKeysExcluded(t *testing.T) {
	tags := []*track.Record{
		tagRec(t, "/m/dup.mp3", nil),
		tagRec(t, "/M/DUP.mp3", nil), // same key after normalization
		tagRec(t, "/m/ok.mp3", nil),
	}
	exports := []*track.Record{
		exportRec(t, "m/dup.mp3", nil),
		exportRec(t, "m/ok.mp3", nil),
	}

	m := reconcile.Match(tags, exports)

	assert.Equal(t, 2, m.DuplicateTag)
	assert.Zero(t, m.DuplicateExport)

	// The duplicate key is absent from every partition; /m/dup.mp3 on the
	// export side becomes export-only because its tag counterparts were
	// withheld.
	require.Len(t, m.Matched, 1)
	assert.Equal(t, "/m/ok.mp3", m.Matched[0].Tag.Key())
	assert.Empty(t, m.TagOnly)
	require.Len(t, m.ExportOnly, 1)
	assert.Equal(t, "/m/dup.mp3", m.ExportOnly[0].Key())
}
