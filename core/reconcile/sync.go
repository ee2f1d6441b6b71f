package reconcile

import (
	"github.com/voigtjr/rkbeets/core/schema"
	"github.com/voigtjr/rkbeets/core/track"
)

// RecordFilter narrows a sync to tag records matching a host-supplied
// predicate. The host's query language is compiled upstream; the engine
// only ever sees the closed-over predicate.
type RecordFilter func(*track.Record) bool

// SyncReport summarizes one sync invocation.
type SyncReport struct {
	// RecordsMatched counts matched pairs passing the record filter.
	RecordsMatched int `json:"records_matched"`

	// RecordsChanged counts records that received at least one new field
	// value. Distinct from RecordsMatched: an already-in-sync record
	// matches but does not change.
	RecordsChanged int `json:"records_changed"`

	// FieldsChanged counts individual field writes staged.
	FieldsChanged int `json:"fields_changed"`
}

// Sync stages export-authoritative field values onto copies of the
// matched tag records. Input records are never mutated; the returned
// records are the staged updates for the caller to persist.
//
// fieldFilter limits the sync to the named fields (either side's name is
// accepted); nil or empty means all. recordFilter may be nil. Fields
// owned by the tag database are never written, whatever the filter says.
//
// Conversion failures are attributed per record and field and collected;
// the sync proceeds over the remaining fields and records.
func Sync(m *MatchResult, reg *schema.Registry, fieldFilter []string, recordFilter RecordFilter) ([]*track.Record, *SyncReport, []error) {
	wanted := make(map[string]struct{}, len(fieldFilter))
	for _, name := range fieldFilter {
		wanted[name] = struct{}{}
	}

	report := &SyncReport{}
	var updated []*track.Record
	var errs []error

	for _, pair := range m.Matched {
		if recordFilter != nil && !recordFilter(pair.Tag) {
			continue
		}
		report.RecordsMatched++

		staged := pair.Tag.Clone()
		changed := 0

		for _, desc := range reg.Descriptors() {
			if desc.Owner != schema.ExportAuthoritative {
				continue
			}
			if desc.TagName == "" || desc.ExportName == "" {
				continue
			}
			if len(wanted) > 0 {
				_, byTag := wanted[desc.TagName]
				_, byExport := wanted[desc.ExportName]
				if !byTag && !byExport {
					continue
				}
			}

			value, present := pair.Export.Get(desc.ExportName)
			converted, ok, err := schema.Convert(desc, value, present, schema.ToTag)
			if err != nil {
				errs = append(errs, &FieldError{Key: pair.Tag.Key(), Field: desc.TagName, Err: err})
				continue
			}
			if !ok {
				continue
			}

			// Identical values are skipped so RecordsChanged reflects
			// actual writes, not filter hits.
			if existing, has := staged.Get(desc.TagName); has && existing == converted {
				continue
			}
			staged.Set(desc.TagName, converted)
			changed++
		}

		if changed > 0 {
			updated = append(updated, staged)
			report.RecordsChanged++
			report.FieldsChanged += changed
		}
	}

	return updated, report, errs
}
