package rbxml

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/voigtjr/rkbeets/core/track"
)

// Write serializes export records into a collection document importable
// by rekordbox. Records are written in the order given, attributes in
// record field order. Rekordbox rejects documents without a PRODUCT
// header, so one is always emitted.
func Write(w io.Writer, records []*track.Record) error {
	doc := Document{
		Version: "1.0.0",
		Product: Product{Name: "rekordbox", Version: "5.4.3", Company: "Pioneer DJ"},
		Collection: Collection{
			Entries: len(records),
			Tracks:  make([]TrackElement, 0, len(records)),
		},
	}

	for _, rec := range records {
		elem := TrackElement{Attrs: make([]xml.Attr, 0, rec.Len())}
		for _, name := range rec.Names() {
			value, _ := rec.Get(name)

			text := ""
			if name == "Location" {
				loc, err := toText(value)
				if err != nil {
					return fmt.Errorf("record %s: Location: %w", rec.Key(), err)
				}
				text = encodeLocation(loc)
			} else {
				t, err := toText(value)
				if err != nil {
					return fmt.Errorf("record %s: attribute %q: %w", rec.Key(), name, err)
				}
				text = t
			}

			elem.Attrs = append(elem.Attrs, xml.Attr{
				Name:  xml.Name{Local: name},
				Value: text,
			})
		}
		doc.Collection.Tracks = append(doc.Collection.Tracks, elem)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write rekordbox document: %w", err)
	}
	return enc.Close()
}

// toText renders an attribute value. Floats keep their shortest exact
// form so read-back parses to the same number.
func toText(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("unsupported value %v (%T)", value, value)
	}
}
