package reconcile

import "github.com/voigtjr/rkbeets/core/track"

// Pair is a tag record and export record sharing a normalized path key.
type Pair struct {
	Tag    *track.Record
	Export *track.Record
}

// MatchResult partitions two collections. Every input record lands in
// exactly one of the three sequences, except records whose normalized key
// collides within their own collection: those are withheld and counted,
// because picking an arbitrary winner would silently merge distinct rows.
type MatchResult struct {
	// Matched holds pairs sharing a key, in tag-record iteration order.
	Matched []Pair

	// TagOnly holds tag records with no export counterpart, in tag-record
	// iteration order.
	TagOnly []*track.Record

	// ExportOnly holds export records with no tag counterpart, in
	// export-record relative order.
	ExportOnly []*track.Record

	// DuplicateTag and DuplicateExport count records excluded because
	// their normalized key collided within their own collection. A
	// data-quality signal, not a fatal fault.
	DuplicateTag    int
	DuplicateExport int
}

// Match joins the two collections on normalized path key: an index over
// the export records, then a single pass over the tag records. Linear in
// the input sizes.
func Match(tagRecords, exportRecords []*track.Record) *MatchResult {
	res := &MatchResult{}

	tagDupes := duplicateKeys(tagRecords)
	exportDupes := duplicateKeys(exportRecords)

	index := make(map[string]*track.Record, len(exportRecords))
	for _, rec := range exportRecords {
		if _, dup := exportDupes[rec.Key()]; dup {
			res.DuplicateExport++
			continue
		}
		index[rec.Key()] = rec
	}

	for _, rec := range tagRecords {
		if _, dup := tagDupes[rec.Key()]; dup {
			res.DuplicateTag++
			continue
		}
		if counterpart, ok := index[rec.Key()]; ok {
			res.Matched = append(res.Matched, Pair{Tag: rec, Export: counterpart})
			delete(index, rec.Key())
			continue
		}
		res.TagOnly = append(res.TagOnly, rec)
	}

	// Whatever was not claimed is export-only; re-walk the input slice to
	// keep the export-side relative order.
	for _, rec := range exportRecords {
		if _, ok := index[rec.Key()]; ok && index[rec.Key()] == rec {
			res.ExportOnly = append(res.ExportOnly, rec)
		}
	}

	return res
}

// duplicateKeys returns the set of keys occurring more than once.
func duplicateKeys(records []*track.Record) map[string]struct{} {
	seen := make(map[string]int, len(records))
	for _, rec := range records {
		seen[rec.Key()]++
	}
	dupes := make(map[string]struct{})
	for key, n := range seen {
		if n > 1 {
			dupes[key] = struct{}{}
		}
	}
	return dupes
}
