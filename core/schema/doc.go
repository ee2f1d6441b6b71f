// Package schema is the single table tying the two library type systems
// together: for every reconciled field it records the beets-side name, the
// rekordbox-side name, which side owns the value, nullability, and the
// conversion functions in both directions.
//
// Keeping ownership and conversion in one descriptor per field (rather
// than separate mapping tables per direction) guarantees they cannot
// drift apart: the sync and export engines both consult the same registry
// and differ only in which ownership they select for.
//
// The registry is built once at init and never mutated, so it is safe for
// concurrent readers.
package schema
