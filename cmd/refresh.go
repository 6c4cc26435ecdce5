// =============================================================================
// Inventory Sync - Refresh Command
// =============================================================================
//
// This file defines the 'refresh' command: the main pipeline that rebuilds
// the tracking database from the spreadsheet exports.
//
// PROCESSING PIPELINE:
//   1. Load configuration
//   2. Load the five spreadsheet exports
//   3. Aggregate purchase orders into the per-product ledger
//   4. Reconcile shipment manifests into the stats report
//   5. Merge the recalculated counters into the product records
//   6. Merge incoming-order tracking info into the purchase orders
//   7. Reset and repopulate the document store
//   8. Print a summary
//
// With --dry-run, steps 1-6 run and the summary is printed, but the document
// store is never touched.
//
// =============================================================================

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mingxia/inventory-sync/internal/alias"
	"github.com/mingxia/inventory-sync/internal/config"
	"github.com/mingxia/inventory-sync/internal/ledger"
	"github.com/mingxia/inventory-sync/internal/manifest"
	"github.com/mingxia/inventory-sync/internal/reconcile"
	"github.com/mingxia/inventory-sync/internal/store"
	"github.com/mingxia/inventory-sync/internal/tracking"
	"github.com/mingxia/inventory-sync/internal/types"
	"github.com/mingxia/inventory-sync/internal/xlsxloader"
)

// dryRun computes everything but skips the document-store writes.
var dryRun bool

// refreshCmd represents the 'refresh' command.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Rebuild the tracking database from the spreadsheet exports",
	Long: `The refresh command loads the spreadsheet exports from the data directory,
recalculates every derived figure (purchase ledger, shipment reconciliation,
tracking merge), then drops and repopulates the MongoDB collections.

A refresh is a full rebuild: no incremental state survives between runs, so
the database always reflects exactly what the spreadsheets say.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runRefresh(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)

	refreshCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Compute and report without writing to the document store",
	)
}

// runRefresh orchestrates the refresh pipeline.
func runRefresh(ctx context.Context) error {
	startTime := time.Now()

	fmt.Println("=== Inventory Sync: Refresh ===")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !dryRun {
		if err := cfg.RequireMongo(); err != nil {
			return err
		}
	}

	// =========================================================================
	// STEP 1: LOAD SPREADSHEET EXPORTS
	// =========================================================================

	fmt.Println("Loading spreadsheet exports...")

	products, err := xlsxloader.LoadProducts(cfg.DataPath(cfg.Files.Products))
	if err != nil {
		return err
	}
	purchaseOrders, warnings, err := xlsxloader.LoadPurchaseOrders(cfg.DataPath(cfg.Files.PurchaseOrders))
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Printf("  ⚠ %s\n", w)
	}
	shipments, err := xlsxloader.LoadShipments(cfg.DataPath(cfg.Files.Shipping))
	if err != nil {
		return err
	}
	statsTemplate, err := xlsxloader.LoadStatsTemplate(cfg.DataPath(cfg.Files.Stats))
	if err != nil {
		return err
	}
	incomingOrders, err := xlsxloader.LoadIncomingOrders(cfg.DataPath(cfg.Files.IncomingOrders))
	if err != nil {
		return err
	}

	fmt.Printf("Loaded %d products, %d purchase orders, %d shipments, %d incoming orders\n",
		len(products), len(purchaseOrders), len(shipments), len(incomingOrders))

	// =========================================================================
	// STEP 2: RECALCULATE STOCK & SHIPPED COUNTS
	// =========================================================================

	fmt.Println("Recalculating stock from purchase orders...")

	purchaseLedger := ledger.Aggregate(purchaseOrders)

	diag := alias.NewDiagnostics()
	resolver := alias.NewDefaultResolver().WithDiagnostics(diag)
	parser := manifest.NewParser(resolver)
	engine := reconcile.NewEngine(parser, reconcile.CatalogFromProducts(products), nil)

	statsRows := engine.Reconcile(shipments, statsTemplate, purchaseLedger)
	shippedCounts := engine.ShippedCounts(shipments)

	// Merge recalculated counters into the product records.
	for i := range products {
		if counts, ok := purchaseLedger[products[i].Name]; ok {
			products[i].TotalStock = counts.Total
			products[i].USSigned = counts.Signed
			products[i].USUnsigned = counts.Unsigned
		}
		if shipped, ok := shippedCounts[products[i].Name]; ok {
			products[i].ShippedCN = shipped
		}
	}

	if verbose {
		for _, token := range diag.Unresolved() {
			fmt.Printf("  ⚠ unresolved manifest token %q (%d occurrence(s))\n", token, diag.Count(token))
		}
	}

	fmt.Printf("Stats report: %d product rows\n", len(statsRows))

	// =========================================================================
	// STEP 3: MERGE TRACKING INFO INTO PURCHASE ORDERS
	// =========================================================================

	fmt.Println("Merging tracking info into purchase orders...")
	purchaseOrders = tracking.MergeIntoOrders(purchaseOrders, incomingOrders)

	if dryRun {
		fmt.Println("\n=== Dry Run Complete (document store untouched) ===")
		printSummaryRows(statsRows)
		fmt.Printf("Time elapsed: %s\n", time.Since(startTime))
		return nil
	}

	// =========================================================================
	// STEP 4: RESET & REPOPULATE THE DOCUMENT STORE
	// =========================================================================

	fmt.Println("Connecting to MongoDB...")
	st, err := store.Connect(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer st.Close(ctx)

	fmt.Println("Resetting collections...")
	if err := st.Reset(ctx); err != nil {
		return err
	}

	fmt.Println("Inserting data...")
	if err := st.InsertProducts(ctx, products); err != nil {
		return err
	}
	if err := st.InsertIncomingOrders(ctx, incomingOrders); err != nil {
		return err
	}
	if err := st.InsertStats(ctx, statsRows); err != nil {
		return err
	}
	if err := st.InsertPurchaseOrders(ctx, purchaseOrders); err != nil {
		return err
	}

	fmt.Println("Processing customers and shipments...")
	shipResult, err := st.InsertShipments(ctx, shipments, cfg.Scraper.BaseURL)
	if err != nil {
		return err
	}
	for _, dup := range shipResult.SkippedDuplicates {
		fmt.Printf("  ⚠ skipping duplicate tracking number: %s\n", dup)
	}

	// =========================================================================
	// STEP 5: SUMMARY
	// =========================================================================

	counts, err := st.Counts(ctx)
	if err != nil {
		return err
	}

	fmt.Println("\n=== Database Refresh Complete ===")
	for _, name := range store.Collections {
		fmt.Printf("  %-20s %d\n", name+":", counts[name])
	}
	fmt.Printf("Time elapsed: %s\n", time.Since(startTime))
	return nil
}

// printSummaryRows renders the stats report for dry runs.
func printSummaryRows(rows []types.StatsRow) {
	for _, row := range rows {
		fmt.Printf("  %-50s shipped=%-4d packaged=%-4d unpackaged=%-4d kind=%s\n",
			row.Name, row.ShippedTotal, row.Packaged, row.Unpackaged, row.Kind)
	}
}
