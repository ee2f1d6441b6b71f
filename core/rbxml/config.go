package rbxml

// Config holds configuration for the rekordbox collection documents.
type Config struct {
	// File is the path to the collection XML exported from rekordbox.
	File string `mapstructure:"file" default:""`
	// ExportFile is where generated documents for import are written.
	ExportFile string `mapstructure:"export_file" default:""`
}
