package cmd

import (
	"context"
	"fmt"

	"github.com/voigtjr/rkbeets/core/reconcile"

	"github.com/spf13/cobra"
)

// Flag for diff command
var verboseDiff bool

// diffCmd reports how the beets library and rekordbox collection overlap.
var diffCmd = &cobra.Command{
	Use:   "diff",
	Short: "Report tracks shared and unshared between beets and rekordbox",
	Long: `Diff matches the beets library against the rekordbox collection on
normalized track paths and reports the overlap.

Examples:
  # Summary counts
  rkbeets diff

  # Also list the paths only present on one side
  rkbeets diff --verbose

  # Use a specific collection export
  rkbeets diff -r ~/Documents/rekordbox.xml`,
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().BoolVar(&verboseDiff, "verbose", false, "List the paths only present on one side")

	RootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	env, err := setup()
	if err != nil {
		return err
	}

	_, tagRecords, err := env.loadBeets(ctx)
	if err != nil {
		return err
	}

	exportRecords, err := env.loadRekordbox()
	if err != nil {
		return err
	}

	m := reconcile.Match(tagRecords, exportRecords)
	report := reconcile.Diff(m, verboseDiff)

	fmt.Print(report.Render())
	return nil
}
