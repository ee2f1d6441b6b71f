package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voigtjr/rkbeets/core/track"
)

func queryRecord(t *testing.T, path string, fields map[string]any) *track.Record {
	t.Helper()
	rec, err := track.New(track.OriginTag, path)
	require.NoError(t, err)
	for k, v := range fields {
		rec.Set(k, v)
	}
	return rec
}

func TestCompileQuery(t *testing.T) {
	house := queryRecord(t, "/music/a.mp3", map[string]any{"genre": "Deep House", "artist": "A"})
	techno := queryRecord(t, "/music/b.mp3", map[string]any{"genre": "Techno", "artist": "B"})

	tests := []struct {
		name       string
		args       []string
		wantHouse  bool
		wantTechno bool
	}{
		{"no terms means nil filter", nil, true, true},
		{"field term", []string{"genre:house"}, true, false},
		{"bare term matches any field", []string{"techno"}, false, true},
		{"bare term matches the path", []string{"a.mp3"}, true, false},
		{"all terms must match", []string{"genre:house", "artist:b"}, false, false},
		{"unknown field matches nothing", []string{"label:none"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := compileQuery(tt.args)
			if len(tt.args) == 0 {
				assert.Nil(t, filter)
				return
			}
			assert.Equal(t, tt.wantHouse, filter(house))
			assert.Equal(t, tt.wantTechno, filter(techno))
		})
	}
}

func TestFilterRecords(t *testing.T) {
	a := queryRecord(t, "/music/a.mp3", map[string]any{"genre": "House"})
	b := queryRecord(t, "/music/b.mp3", map[string]any{"genre": "Techno"})

	all := filterRecords([]*track.Record{a, b}, nil)
	assert.Len(t, all, 2)

	only := filterRecords([]*track.Record{a, b}, compileQuery([]string{"genre:techno"}))
	require.Len(t, only, 1)
	assert.Equal(t, b.Key(), only[0].Key())
}
