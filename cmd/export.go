// =============================================================================
// Inventory Sync - Export Command
// =============================================================================
//
// This file defines the 'export' command, which reads the document store
// back out into the JSON files served to the web frontend. Shipments are
// joined with their customer profiles so the frontend gets phone, address
// and recipient in one document.
//
// COMMAND USAGE:
//   invsync export [--out DIR]
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mingxia/inventory-sync/internal/config"
	"github.com/mingxia/inventory-sync/internal/export"
	"github.com/mingxia/inventory-sync/internal/store"
)

// exportOut overrides the output directory (default: the data directory).
var exportOut string

// exportCmd represents the 'export' command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the tracking database to JSON files",
	Long: `The export command writes products.json, shipping.json and orders.json from
the document store into the data directory. shipping.json carries each
shipment joined with its customer profile.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runExport(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(
		&exportOut,
		"out",
		"",
		"Output directory (defaults to the configured data directory)",
	)
}

// runExport connects to the store and writes the three JSON files.
func runExport(ctx context.Context) error {
	fmt.Println("=== Inventory Sync: Export ===")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.RequireMongo(); err != nil {
		return err
	}

	outDir := exportOut
	if outDir == "" {
		outDir = cfg.DataDir
	}

	st, err := store.Connect(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	summary, err := export.NewExporter(st).Run(ctx, outDir)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Exported %s\n", summary.Describe())
	return nil
}
