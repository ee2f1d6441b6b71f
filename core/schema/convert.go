package schema

import "math"

// The conversion pairs below are the whole vocabulary of the field table:
// verbatim copies for same-typed fields, fixed unit scales for numeric
// fields, and a closed enum for the file-kind strings. Every pair
// round-trips exactly at the precision of the narrower type.

func passString(v any) (any, error) {
	return toString(v)
}

func passInt(v any) (any, error) {
	return toInt(v)
}

// Beets stores samplerate in Hz as an integer; rekordbox SampleRate is
// kHz as a float.
func samplerateToExport(v any) (any, error) {
	hz, err := toInt(v)
	if err != nil {
		return nil, err
	}
	return float64(hz) / 1000, nil
}

func samplerateToTag(v any) (any, error) {
	khz, err := toFloat(v)
	if err != nil {
		return nil, err
	}
	return int(math.Round(khz * 1000)), nil
}

// Beets stores length as float seconds; rekordbox TotalTime is whole
// seconds. Rounding here is the declared precision loss: the round-trip
// guarantee holds at integer-second precision.
func lengthToExport(v any) (any, error) {
	secs, err := toFloat(v)
	if err != nil {
		return nil, err
	}
	return int(math.Round(secs)), nil
}

func lengthToTag(v any) (any, error) {
	secs, err := toInt(v)
	if err != nil {
		return nil, err
	}
	return float64(secs), nil
}

// File-kind enum. The set is closed in both directions: an unknown format
// must fail, never be guessed into a placeholder string.
var (
	kindByFormat = map[string]string{
		"MP3": "MP3 File",
		"AAC": "M4A File",
		"WAV": "WAV File",
	}
	formatByKind = map[string]string{
		"MP3 File": "MP3",
		"M4A File": "AAC",
		"WAV File": "WAV",
	}
)

func kindToExport(v any) (any, error) {
	format, err := toString(v)
	if err != nil {
		return nil, err
	}
	kind, ok := kindByFormat[format]
	if !ok {
		return nil, &UnmappedEnumError{Value: format, Allowed: []string{"MP3", "AAC", "WAV"}}
	}
	return kind, nil
}

func kindToTag(v any) (any, error) {
	kind, err := toString(v)
	if err != nil {
		return nil, err
	}
	format, ok := formatByKind[kind]
	if !ok {
		return nil, &UnmappedEnumError{Value: kind, Allowed: []string{"MP3 File", "M4A File", "WAV File"}}
	}
	return format, nil
}
