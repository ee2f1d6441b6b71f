package rbxml

import (
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"
)

// Product identifies the writing application. Rekordbox refuses imports
// from documents without one.
type Product struct {
	Name    string `xml:"Name,attr"`
	Version string `xml:"Version,attr"`
	Company string `xml:"Company,attr"`
}

// Collection wraps the track list.
type Collection struct {
	Entries int            `xml:"Entries,attr"`
	Tracks  []TrackElement `xml:"TRACK"`
}

// Document is a DJ_PLAYLISTS collection export.
type Document struct {
	XMLName    xml.Name   `xml:"DJ_PLAYLISTS"`
	Version    string     `xml:"Version,attr"`
	Product    Product    `xml:"PRODUCT"`
	Collection Collection `xml:"COLLECTION"`
}

// TrackElement is one TRACK element, kept as its ordered attribute list.
type TrackElement struct {
	Attrs []xml.Attr
}

// UnmarshalXML captures the attributes in document order and skips any
// child elements (TEMPO, POSITION_MARK and friends are analysis data we
// pass over).
func (t *TrackElement) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	t.Attrs = make([]xml.Attr, len(start.Attr))
	copy(t.Attrs, start.Attr)
	return d.Skip()
}

// MarshalXML writes the attributes back in their stored order.
func (t TrackElement) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Name = xml.Name{Local: "TRACK"}
	start.Attr = t.Attrs
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// locationURIPrefix is how rekordbox encodes Location attributes.
const locationURIPrefix = "file://localhost/"

// decodeLocation turns a Location attribute into a plain path without a
// leading separator (rekordbox's stripped-path convention).
func decodeLocation(raw string) (string, error) {
	trimmed := strings.TrimPrefix(raw, locationURIPrefix)
	decoded, err := url.PathUnescape(trimmed)
	if err != nil {
		return "", fmt.Errorf("malformed Location %q: %w", raw, err)
	}
	return decoded, nil
}

// encodeLocation produces the file://localhost URI form from a plain
// stripped path.
func encodeLocation(path string) string {
	u := url.URL{Path: "/" + strings.TrimPrefix(path, "/")}
	return "file://localhost" + u.EscapedPath()
}
