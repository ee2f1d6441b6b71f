package beets

// Config holds configuration for the beets library database.
type Config struct {
	// Library is the path to the beets library.db file.
	Library string `mapstructure:"library" default:""`
	// Directory is the beets music directory; export records outside it
	// are ignored when loading a rekordbox document.
	Directory string `mapstructure:"directory" default:""`
	// TimeoutSeconds bounds the initial connection check.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
