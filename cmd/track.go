// =============================================================================
// Inventory Sync - Track Command
// =============================================================================
//
// This file defines the 'track' command, which refreshes shipment statuses
// from the carrier's public tracking site and updates shipping.json in
// place. Run 'export' first so shipping.json exists and carries phone
// numbers (the tracking page requires both code and phone).
//
// COMMAND USAGE:
//   invsync track
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mingxia/inventory-sync/internal/config"
	"github.com/mingxia/inventory-sync/internal/scraper"
)

// trackCmd represents the 'track' command.
var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Refresh shipment statuses from the carrier tracking site",
	Long: `The track command looks up every shipment in shipping.json on the carrier's
tracking site and rewrites each status from the newest history row. Requests
are spaced out (configurable delay) to stay polite to the carrier; one failed
lookup never aborts the run.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runTrack(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(trackCmd)
}

// runTrack runs the scraper over shipping.json.
func runTrack(ctx context.Context) error {
	fmt.Println("=== Inventory Sync: Track ===")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	report := func(format string, args ...any) {
		if verbose {
			fmt.Printf(format+"\n", args...)
		}
	}

	path := cfg.DataPath(cfg.Files.ShippingJSON)
	result, err := scraper.New(cfg.Scraper).UpdateFile(ctx, path, report)
	if err != nil {
		return err
	}

	fmt.Printf("\n=== Tracking Update Complete ===\n")
	fmt.Printf("Checked:  %d\n", result.Checked)
	fmt.Printf("Updated:  %d\n", result.Updated)
	fmt.Printf("Skipped:  %d\n", result.Skipped)
	fmt.Printf("Failed:   %d\n", result.Failed)
	return nil
}
