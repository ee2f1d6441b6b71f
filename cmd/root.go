package cmd

import (
	"fmt"
	"os"

	"github.com/voigtjr/rkbeets/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rekordboxFile overrides the configured collection XML path.
var rekordboxFile string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "rkbeets",
	Short: "Reconcile a beets library with a rekordbox collection",
	Long: `rkbeets compares and reconciles track metadata between a beets
library database and a rekordbox collection XML export. It can report
differences, copy rekordbox-owned fields back into beets, and generate
a collection document for import into rekordbox.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Log the error with structured logger (Console encoding will make it pretty)
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&rekordboxFile, "rekordbox-file", "r", "",
		"Path to the rekordbox collection XML (overrides configuration)")
}
