// Package track defines the record type shared by both library
// representations and the path normalization that joins them.
//
// A Record is an ordered mapping from field name to value plus the raw
// file path it was loaded with. Records carry no behavior beyond field
// access; all interpretation of values (types, ownership, conversion)
// lives in the schema package.
//
// # Path Keys
//
// Both the beets database and a rekordbox XML export identify a track by
// its file path, but the two disagree on encoding (NFC vs NFD), case, and
// whether the leading separator is present (rekordbox strips it). The
// NormalizeKey function is the single source of truth for "same file":
// every comparison between the two collections goes through it.
package track
