// Package beets reads and writes the beets library database (SQLite).
//
// Fixed item columns (title, artist, length, samplerate, ...) live in the
// items table; per-track flexible attributes (rating and the rkb-*
// fields this tool maintains) live in item_attributes as text key/value
// rows. Loading produces track.Records; persisting writes staged sync
// updates back into item_attributes only — fixed columns are owned by
// beets itself and never written here.
package beets
