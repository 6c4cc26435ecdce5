// =============================================================================
// Inventory Sync - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Inventory Sync CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   invsync refresh       - Rebuild the document store from spreadsheet exports
//   invsync export        - Export the document store back to JSON files
//   invsync track         - Refresh shipment statuses from the carrier site
//   invsync version       - Display the application version
//
// ARCHITECTURE:
//   This application follows a modular design where:
//   - cmd/           : Contains all CLI command definitions (Cobra)
//   - internal/      : Contains core business logic (not for external import)
//   - pkg/           : Contains shared utilities
//   - data/          : Contains the spreadsheet exports and JSON output
//
// =============================================================================

package main

import (
	"github.com/mingxia/inventory-sync/cmd"
)

// main is the entry point of the application.
// It simply calls the Execute function from the cmd package, which
// initializes and runs the Cobra CLI.
func main() {
	cmd.Execute()
}
