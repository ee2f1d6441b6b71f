// Package rbxml reads and writes rekordbox collection XML
// (DJ_PLAYLISTS) documents.
//
// TRACK elements are handled as ordered attribute mappings rather than a
// fixed struct, so the engine never depends on the exact attribute set a
// given rekordbox version emits. Location attributes are translated
// between the file://localhost URI form rekordbox writes and the plain
// path form the rest of the system works with.
package rbxml
