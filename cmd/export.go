package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/voigtjr/rkbeets/core/rbxml"
	"github.com/voigtjr/rkbeets/core/reconcile"
	"github.com/voigtjr/rkbeets/core/schema"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for export command
	exportFile  string
	missingOnly bool
)

// exportCmd generates a collection document for import into rekordbox.
var exportCmd = &cobra.Command{
	Use:   "export [query]...",
	Short: "Generate a rekordbox import document from the beets library",
	Long: `Export projects beets items into a collection XML document that
rekordbox can import. Values come from beets only; nothing is read back
from the existing collection except, with --missing, which tracks it
already has.

Positional query terms limit the export to matching items.

Examples:
  # Export the whole library
  rkbeets export -e /tmp/rkbeets.xml

  # Only tracks rekordbox does not have yet
  rkbeets export --missing -e /tmp/rkbeets.xml

  # Only one artist
  rkbeets export artist:daft -e /tmp/rkbeets.xml`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFile, "export-file", "e", "", "Where to write the generated XML (overrides configuration)")
	exportCmd.Flags().BoolVarP(&missingOnly, "missing", "m", false, "Export only tracks absent from the rekordbox collection")

	RootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	env, err := setup()
	if err != nil {
		return err
	}

	_, tagRecords, err := env.loadBeets(ctx)
	if err != nil {
		return err
	}
	tagRecords = filterRecords(tagRecords, compileQuery(args))

	// The match result is only needed to decide what rekordbox is missing.
	var m *reconcile.MatchResult
	if missingOnly {
		exportRecords, err := env.loadRekordbox()
		if err != nil {
			return err
		}
		m = reconcile.Match(tagRecords, exportRecords)
	}

	projected, fieldErrs := reconcile.Export(tagRecords, m, missingOnly, schema.Default())
	for _, ferr := range fieldErrs {
		env.log.Warn("field not exported", zap.Error(ferr))
	}

	path := env.cfg.Rekordbox.ExportFile
	if exportFile != "" {
		path = exportFile
	}
	if path == "" {
		return fmt.Errorf("no export file: set rekordbox.export_file or pass --export-file")
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := rbxml.Write(f, projected); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to finish export file: %w", err)
	}

	env.log.Info("export written",
		zap.String("file", path),
		zap.Int("tracks", len(projected)),
	)
	return nil
}
