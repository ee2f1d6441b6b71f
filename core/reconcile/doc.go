// Package reconcile is the matching, diffing, and sync engine over the
// two library representations.
//
// The engine is deliberately I/O-free: it receives already-materialized
// record sequences (from the beets store and the rekordbox XML codec),
// joins them on normalized path keys, and returns new result objects.
// Persistence of staged sync updates and serialization of export records
// stay with the caller.
//
// # Operations
//
//   - Match partitions the two collections into matched pairs, tag-only,
//     and export-only, reporting duplicate-key collisions per side.
//   - Diff summarizes a match into counts and optional path listings.
//   - Sync stages export-authoritative field values onto copies of the
//     matched tag records.
//   - Export projects tag-authoritative fields into export-schema
//     records.
//
// Conversion failures are attributed to a record and field and collected
// so one malformed track never blocks the rest of the library.
package reconcile
