package rbxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/voigtjr/rkbeets/core/track"
)

// attribute types per the rekordbox document schema. Attributes not
// listed stay strings.
var (
	intAttrs = map[string]struct{}{
		"TrackID":     {},
		"Size":        {},
		"TotalTime":   {},
		"DiscNumber":  {},
		"TrackNumber": {},
		"Year":        {},
		"BitRate":     {},
		"PlayCount":   {},
		"Rating":      {},
	}
	floatAttrs = map[string]struct{}{
		"SampleRate": {},
		"AverageBpm": {},
	}
)

// Read parses a rekordbox collection document into export records.
//
// Tracks outside musicDirectory (case-insensitive prefix match, empty
// means no filter) are ignored, so only the beets-managed part of the
// collection is ever reconciled. Per-track
// problems (unusable Location, malformed numeric attribute) are
// collected; the rest of the document still loads.
func Read(r io.Reader, musicDirectory string) ([]*track.Record, []error, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse rekordbox document: %w", err)
	}

	dirPrefix := strings.ToLower(strings.TrimPrefix(musicDirectory, "/"))

	var records []*track.Record
	var skipped []error

	for i, elem := range doc.Collection.Tracks {
		location := ""
		for _, attr := range elem.Attrs {
			if attr.Name.Local == "Location" {
				location = attr.Value
				break
			}
		}
		if location == "" {
			skipped = append(skipped, fmt.Errorf("track %d: no Location attribute", i))
			continue
		}

		path, err := decodeLocation(location)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("track %d: %w", i, err))
			continue
		}

		if dirPrefix != "" && !strings.HasPrefix(strings.ToLower(path), dirPrefix) {
			continue
		}

		rec, err := track.New(track.OriginExport, path)
		if err != nil {
			skipped = append(skipped, fmt.Errorf("track %d: %w", i, err))
			continue
		}

		for _, attr := range elem.Attrs {
			name := attr.Name.Local
			if name == "Location" {
				continue
			}
			value, err := typedValue(name, attr.Value)
			if err != nil {
				skipped = append(skipped, fmt.Errorf("track %s: %w", rec.Key(), err))
				continue
			}
			rec.Set(name, value)
		}

		records = append(records, rec)
	}

	return records, skipped, nil
}

// typedValue parses an attribute per the schema's declared type.
func typedValue(name, raw string) (any, error) {
	if _, ok := intAttrs[name]; ok {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %q is not an integer", name, raw)
		}
		return n, nil
	}
	if _, ok := floatAttrs[name]; ok {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %q is not a number", name, raw)
		}
		return f, nil
	}
	return raw, nil
}
