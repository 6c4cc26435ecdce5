// =============================================================================
// Inventory Sync - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands (refresh, export, track, version)
// are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (invsync)
//   ├── refreshCmd (invsync refresh)
//   ├── exportCmd  (invsync export)
//   ├── trackCmd   (invsync track)
//   └── versionCmd (invsync version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables diagnostic output (unresolved manifest tokens, per-record
// progress) when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "invsync",
	Short: "Inventory Sync - Reconcile spreadsheet exports into the tracking database",

	Long: `Inventory Sync ingests the spreadsheet exports of a goods-resale operation
(purchase orders, outgoing shipments, product catalog), decodes the free-form
warehouse manifest strings into structured line items, reconciles everything
into per-product stock statistics, and rebuilds the MongoDB tracking database
that backs the web frontend.

Example Usage:
  invsync refresh                  # Rebuild the database from the spreadsheets
  invsync refresh --dry-run        # Compute and report without touching Mongo
  invsync export                   # Export the database back to JSON files
  invsync track                    # Refresh shipment statuses from the carrier`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output (including unresolved manifest tokens)",
	)
}
