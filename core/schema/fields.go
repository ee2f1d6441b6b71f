package schema

// fields is the fixed descriptor table for the beets/rekordbox schema
// pair. Location is deliberately not a field here: the path is the join
// key, handled by the track package, and the exporter writes it directly.
var fields = []Descriptor{
	// Beets-owned metadata, projected out on export.
	{TagName: "title", ExportName: "Name", Owner: TagAuthoritative, Nullable: true, ToExport: passString, ToTag: passString},
	{TagName: "artist", ExportName: "Artist", Owner: TagAuthoritative, Nullable: true, ToExport: passString, ToTag: passString},
	{TagName: "composer", ExportName: "Composer", Owner: TagAuthoritative, Nullable: true, ToExport: passString, ToTag: passString},
	{TagName: "album", ExportName: "Album", Owner: TagAuthoritative, Nullable: true, ToExport: passString, ToTag: passString},
	{TagName: "grouping", ExportName: "Grouping", Owner: TagAuthoritative, Nullable: true, ToExport: passString, ToTag: passString},
	{TagName: "genre", ExportName: "Genre", Owner: TagAuthoritative, Nullable: true, ToExport: passString, ToTag: passString},
	{TagName: "format", ExportName: "Kind", Owner: TagAuthoritative, ToExport: kindToExport, ToTag: kindToTag},
	{TagName: "filesize", ExportName: "Size", Owner: TagAuthoritative, Nullable: true, ToExport: passInt, ToTag: passInt},
	{TagName: "length", ExportName: "TotalTime", Owner: TagAuthoritative, ToExport: lengthToExport, ToTag: lengthToTag},
	{TagName: "disc", ExportName: "DiscNumber", Owner: TagAuthoritative, Nullable: true, ToExport: passInt, ToTag: passInt},
	{TagName: "track", ExportName: "TrackNumber", Owner: TagAuthoritative, Nullable: true, ToExport: passInt, ToTag: passInt},
	{TagName: "year", ExportName: "Year", Owner: TagAuthoritative, Nullable: true, ToExport: passInt, ToTag: passInt},
	{TagName: "bitrate", ExportName: "BitRate", Owner: TagAuthoritative, Nullable: true, ToExport: passInt, ToTag: passInt},
	{TagName: "samplerate", ExportName: "SampleRate", Owner: TagAuthoritative, Nullable: true, ToExport: samplerateToExport, ToTag: samplerateToTag},
	{TagName: "comments", ExportName: "Comments", Owner: TagAuthoritative, Nullable: true, ToExport: passString, ToTag: passString},
	{TagName: "remixer", ExportName: "Remixer", Owner: TagAuthoritative, Nullable: true, ToExport: passString, ToTag: passString},
	{TagName: "label", ExportName: "Label", Owner: TagAuthoritative, Nullable: true, ToExport: passString, ToTag: passString},

	// Rekordbox-owned fields, written into beets flexible attributes on
	// sync. rkb-Remixer keeps the DJ-side remixer edit without clobbering
	// the tag-side remixer above.
	{TagName: "rating", ExportName: "Rating", Owner: ExportAuthoritative, Nullable: true, Default: 0, ToExport: passInt, ToTag: passInt},
	{TagName: "rkb-TrackID", ExportName: "TrackID", Owner: ExportAuthoritative, Nullable: true, Default: 0, ToExport: passInt, ToTag: passInt},
	{TagName: "rkb-DateAdded", ExportName: "DateAdded", Owner: ExportAuthoritative, Nullable: true, ToExport: passString, ToTag: passString},
	{TagName: "rkb-PlayCount", ExportName: "PlayCount", Owner: ExportAuthoritative, Nullable: true, Default: 0, ToExport: passInt, ToTag: passInt},
	{TagName: "rkb-Remixer", ExportName: "Remixer", Owner: ExportAuthoritative, Nullable: true, ToExport: passString, ToTag: passString},
	{TagName: "rkb-Mix", ExportName: "Mix", Owner: ExportAuthoritative, Nullable: true, ToExport: passString, ToTag: passString},
	{TagName: "rkb-Colour", ExportName: "Colour", Owner: ExportAuthoritative, Nullable: true, ToExport: passString, ToTag: passString},

	// Captured on the export side only. Analysis output is opaque to us;
	// with no beets name these never participate in sync.
	{ExportName: "AverageBpm", Owner: ExportAuthoritative, Nullable: true},
	{ExportName: "Tonality", Owner: ExportAuthoritative, Nullable: true},
	{ExportName: "DateModified", Owner: ExportAuthoritative, Nullable: true},
	{ExportName: "LastPlayed", Owner: ExportAuthoritative, Nullable: true},
}

var defaultRegistry = NewRegistry(fields)

// Default returns the process-wide field registry.
func Default() *Registry {
	return defaultRegistry
}
