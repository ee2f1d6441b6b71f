package reconcile

import (
	"github.com/voigtjr/rkbeets/core/schema"
	"github.com/voigtjr/rkbeets/core/track"
)

// Export projects tag records into export-schema records: every
// tag-authoritative field with an export-side name is converted and
// placed under that name. A strict one-way projection — no value in the
// output is ever sourced from the export side.
//
// When missingOnly is set, only tag records absent from the export
// collection (per the supplied match result) are projected.
//
// The Location attribute is always present, with the export convention
// re-applied (leading separator stripped).
func Export(tagRecords []*track.Record, m *MatchResult, missingOnly bool, reg *schema.Registry) ([]*track.Record, []error) {
	var missing map[string]struct{}
	if missingOnly && m != nil {
		missing = make(map[string]struct{}, len(m.TagOnly))
		for _, rec := range m.TagOnly {
			missing[rec.Key()] = struct{}{}
		}
	}

	var out []*track.Record
	var errs []error

	for _, rec := range tagRecords {
		if missingOnly {
			if _, ok := missing[rec.Key()]; !ok {
				continue
			}
		}

		// The raw path round-trips through normalization it already
		// passed once, so this cannot fail for records in a collection.
		projected, err := track.New(track.OriginExport, track.ExportLocation(rec.Path()))
		if err != nil {
			errs = append(errs, &FieldError{Key: rec.Key(), Field: "Location", Err: err})
			continue
		}
		projected.Set("Location", track.ExportLocation(rec.Path()))

		for _, desc := range reg.Descriptors() {
			if desc.Owner != schema.TagAuthoritative || desc.ExportName == "" {
				continue
			}

			value, present := rec.Get(desc.TagName)
			converted, ok, err := schema.Convert(desc, value, present, schema.ToExport)
			if err != nil {
				errs = append(errs, &FieldError{Key: rec.Key(), Field: desc.ExportName, Err: err})
				continue
			}
			if !ok {
				continue
			}
			projected.Set(desc.ExportName, converted)
		}

		out = append(out, projected)
	}

	return out, errs
}
