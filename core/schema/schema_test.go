package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voigtjr/rkbeets/core/schema"
)

func mustDesc(t *testing.T, tagName string) schema.Descriptor {
	t.Helper()
	d, ok := schema.Default().ByTagName(tagName)
	require.True(t, ok, "descriptor %q not registered", tagName)
	return d
}

func TestConvert_StringPassThrough(t *testing.T) {
	d := mustDesc(t, "title")

	out, present, err := schema.Convert(d, "Plastic Love", true, schema.ToExport)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "Plastic Love", out)

	out, present, err = schema.Convert(d, "Plastic Love", true, schema.ToTag)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, "Plastic Love", out)
}

func TestConvert_SampleRateUnits(t *testing.T) {
	d := mustDesc(t, "samplerate")

	out, _, err := schema.Convert(d, 44100, true, schema.ToExport)
	require.NoError(t, err)
	assert.Equal(t, 44.1, out)

	back, _, err := schema.Convert(d, out, true, schema.ToTag)
	require.NoError(t, err)
	assert.Equal(t, 44100, back)
}

func TestConvert_LengthRounding(t *testing.T) {
	d := mustDesc(t, "length")

	// Fractional seconds round to the nearest whole second going out.
	out, _, err := schema.Convert(d, 241.68, true, schema.ToExport)
	require.NoError(t, err)
	assert.Equal(t, 242, out)

	// Coming back widens losslessly.
	back, _, err := schema.Convert(d, 242, true, schema.ToTag)
	require.NoError(t, err)
	assert.Equal(t, 242.0, back)
}

func TestConvert_KindEnum(t *testing.T) {
	d := mustDesc(t, "format")

	tests := []struct {
		format string
		kind   string
	}{
		{"MP3", "MP3 File"},
		{"AAC", "M4A File"},
		{"WAV", "WAV File"},
	}

	for _, tt := range tests {
		out, _, err := schema.Convert(d, tt.format, true, schema.ToExport)
		require.NoError(t, err)
		assert.Equal(t, tt.kind, out)

		back, _, err := schema.Convert(d, tt.kind, true, schema.ToTag)
		require.NoError(t, err)
		assert.Equal(t, tt.format, back)
	}
}

// An unrecognized kind must fail, not pass through as a guessed string.
func TestConvert_KindEnumFailsClosed(t *testing.T) {
	d := mustDesc(t, "format")

	_, _, err := schema.Convert(d, "FLAC", true, schema.ToExport)
	var enumErr *schema.UnmappedEnumError
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "FLAC", enumErr.Value)

	_, _, err = schema.Convert(d, "OGG File", true, schema.ToTag)
	require.ErrorAs(t, err, &enumErr)
	assert.Equal(t, "OGG File", enumErr.Value)
}

func TestConvert_RatingDefault(t *testing.T) {
	d := mustDesc(t, "rating")

	// Absent rating becomes the declared sentinel 0.
	out, present, err := schema.Convert(d, nil, false, schema.ToTag)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, 0, out)

	// Present rating converts verbatim.
	out, present, err = schema.Convert(d, 5, true, schema.ToTag)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, 5, out)
}

func TestConvert_NullableAbsentPropagates(t *testing.T) {
	d := mustDesc(t, "rkb-Mix")

	_, present, err := schema.Convert(d, nil, false, schema.ToTag)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestConvert_NonNullableAbsentFails(t *testing.T) {
	d := mustDesc(t, "length")

	_, _, err := schema.Convert(d, nil, false, schema.ToExport)
	var nullErr *schema.NullabilityError
	require.ErrorAs(t, err, &nullErr)
	assert.Equal(t, "TotalTime", nullErr.Field)
}

// Round-trip property over every field with both directions defined and
// no declared precision loss.
func TestConvert_RoundTrips(t *testing.T) {
	samples := map[string]any{
		"title":         "Midnight",
		"artist":        "Someone",
		"composer":      "Someone Else",
		"album":         "LP",
		"grouping":      "Crate A",
		"genre":         "House",
		"format":        "MP3",
		"filesize":      7340032,
		"disc":          1,
		"track":         7,
		"year":          1998,
		"bitrate":       320,
		"samplerate":    48000,
		"comments":      "promo",
		"remixer":       "DJ R",
		"label":         "Label X",
		"rating":        4,
		"rkb-TrackID":   1203,
		"rkb-DateAdded": "2021-04-01",
		"rkb-PlayCount": 17,
		"rkb-Remixer":   "DJ R",
		"rkb-Mix":       "Extended",
		"rkb-Colour":    "0xFF0000",
	}

	for tagName, v := range samples {
		d := mustDesc(t, tagName)

		out, present, err := schema.Convert(d, v, true, schema.ToExport)
		require.NoError(t, err, tagName)
		require.True(t, present, tagName)

		back, present, err := schema.Convert(d, out, true, schema.ToTag)
		require.NoError(t, err, tagName)
		require.True(t, present, tagName)
		assert.Equal(t, v, back, tagName)
	}
}

// XML attributes arrive as strings; numeric converters must accept them.
func TestConvert_CoercesXMLStrings(t *testing.T) {
	d := mustDesc(t, "rating")
	out, _, err := schema.Convert(d, "5", true, schema.ToTag)
	require.NoError(t, err)
	assert.Equal(t, 5, out)

	_, _, err = schema.Convert(d, "five", true, schema.ToTag)
	var coErr *schema.CoercionError
	require.ErrorAs(t, err, &coErr)
}

func TestRegistry_OneSidedFieldsSkipConversion(t *testing.T) {
	var bpm schema.Descriptor
	found := false
	for _, d := range schema.Default().Descriptors() {
		if d.ExportName == "AverageBpm" {
			bpm, found = d, true
		}
	}
	require.True(t, found)
	assert.Empty(t, bpm.TagName)

	// No tag-side name means nothing to convert toward.
	_, present, err := schema.Convert(bpm, "124.00", true, schema.ToTag)
	require.NoError(t, err)
	assert.False(t, present)
}

func TestRegistry_ByTagName(t *testing.T) {
	_, ok := schema.Default().ByTagName("no-such-field")
	assert.False(t, ok)

	d, ok := schema.Default().ByTagName("rkb-PlayCount")
	require.True(t, ok)
	assert.Equal(t, "PlayCount", d.ExportName)
	assert.Equal(t, schema.ExportAuthoritative, d.Owner)
}
