package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/voigtjr/rkbeets/core/reconcile"
	"github.com/voigtjr/rkbeets/core/schema"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for sync command
	syncFields []string
	yesConfirm bool
)

// syncCmd copies rekordbox-owned metadata back into the beets library.
var syncCmd = &cobra.Command{
	Use:   "sync [query]...",
	Short: "Copy rekordbox-owned fields into the beets library",
	Long: `Sync copies fields the rekordbox collection is authoritative for
(rating, play count, date added, and the rkb-* attributes) onto the
matching beets items. Fields owned by beets are never written.

Positional query terms limit the sync to matching items: "field:text"
matches a field value, a bare term matches anywhere.

Examples:
  # Sync everything (prompts before writing)
  rkbeets sync

  # Only ratings and play counts, without the prompt
  rkbeets sync --fields rating,rkb-PlayCount --yes

  # Only one genre
  rkbeets sync genre:house`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringSliceVar(&syncFields, "fields", nil, "Limit the sync to these fields (either side's name)")
	syncCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Write without the interactive confirmation prompt")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	env, err := setup()
	if err != nil {
		return err
	}

	store, tagRecords, err := env.loadBeets(ctx)
	if err != nil {
		return err
	}

	exportRecords, err := env.loadRekordbox()
	if err != nil {
		return err
	}

	m := reconcile.Match(tagRecords, exportRecords)

	updated, report, fieldErrs := reconcile.Sync(m, schema.Default(), syncFields, compileQuery(args))
	for _, ferr := range fieldErrs {
		env.log.Warn("field not synced", zap.Error(ferr))
	}

	env.log.Info("sync staged",
		zap.Int("records_matched", report.RecordsMatched),
		zap.Int("records_changed", report.RecordsChanged),
		zap.Int("fields_changed", report.FieldsChanged),
	)

	if len(updated) == 0 {
		env.log.Info("Nothing to write; library already in sync.")
		return nil
	}

	if !confirmWrite(len(updated)) {
		env.log.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	written, err := store.SaveAttributes(ctx, updated)
	if err != nil {
		return fmt.Errorf("failed to save attributes: %w", err)
	}

	env.log.Info("sync complete",
		zap.Int("records_written", len(updated)),
		zap.Int("attributes_written", written),
	)
	return nil
}

// confirmWrite prompts the user for confirmation or uses the --yes flag.
func confirmWrite(records int) bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Printf("\n⚠️  Type 'yes' to write %d updated records to the beets library: ", records)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	response = strings.TrimSpace(response)
	return response == "yes"
}
