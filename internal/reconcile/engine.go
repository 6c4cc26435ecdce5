// =============================================================================
// Inventory Sync - Shipment Reconciliation Engine
// =============================================================================
//
// This package folds the parsed shipment manifests across all outgoing
// shipments into per-product shipped totals, packaged/unpackaged splits and
// per-recipient detail strings, and produces the sorted report consumed by
// the frontend.
//
// PIPELINE:
//   1. Seed a working table from the manually curated stats template, so
//      image and kind metadata of known products survive the rebuild.
//   2. Parse every shipment's details; products first seen in a manifest get
//      an image from the live catalog, then the static fallback map, then a
//      default placeholder, and a kind inferred from their name.
//   3. Accumulate quantities into the packaged/unpackaged columns and the
//      recipient tallies. The packaging-only product is always packaged.
//   4. Drop products that netted zero or negative shipments, attach the
//      total stock from the purchase ledger, sort, and render the recipient
//      tallies as display strings.
//
// The engine holds no state across runs; the report is rebuilt from scratch
// every time.
//
// =============================================================================

package reconcile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mingxia/inventory-sync/internal/ledger"
	"github.com/mingxia/inventory-sync/internal/manifest"
	"github.com/mingxia/inventory-sync/internal/types"
)

// NoDataPlaceholder is rendered for an empty recipient tally.
const NoDataPlaceholder = "——"

// defaultImage is the placeholder used when neither the live catalog nor the
// static fallback map knows a product.
const defaultImage = "img/default.png"

// Engine reconciles shipments into report rows. Catalog and fallback images
// are injected so the engine can be tested with substitute tables.
type Engine struct {
	parser   *manifest.Parser
	catalog  map[string]string // live product name -> image lookup
	fallback map[string]string // static per-product image fallback
}

// NewEngine builds an Engine. catalog may be nil (no live products loaded);
// fallback defaults to the built-in image table when nil.
func NewEngine(parser *manifest.Parser, catalog, fallback map[string]string) *Engine {
	if fallback == nil {
		fallback = DefaultImageTable()
	}
	return &Engine{parser: parser, catalog: catalog, fallback: fallback}
}

// CatalogFromProducts builds the live name -> image lookup from the loaded
// product records.
func CatalogFromProducts(products []types.Product) map[string]string {
	catalog := make(map[string]string, len(products))
	for _, p := range products {
		catalog[p.Name] = p.Image
	}
	return catalog
}

// =============================================================================
// WORKING TABLE
// =============================================================================

// entry is the in-flight accumulator for one product.
type entry struct {
	image      string
	kind       string
	shipped    int
	packaged   int
	unpackaged int
	packagedBy *tally
	unpackedBy *tally
}

func newEntry(image, kind string) *entry {
	return &entry{
		image:      image,
		kind:       kind,
		packagedBy: newTally(),
		unpackedBy: newTally(),
	}
}

// tally is a recipient -> quantity accumulator that remembers first-insertion
// order, so detail strings render deterministically run to run.
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(recipient string, qty int) {
	if _, ok := t.counts[recipient]; !ok {
		t.order = append(t.order, recipient)
	}
	t.counts[recipient] += qty
}

// render formats the tally as "name(qty), name(qty)"; empty tallies render
// as the no-data placeholder.
func (t *tally) render() string {
	if len(t.order) == 0 {
		return NoDataPlaceholder
	}
	parts := make([]string, 0, len(t.order))
	for _, name := range t.order {
		parts = append(parts, fmt.Sprintf("%s(%d)", name, t.counts[name]))
	}
	return strings.Join(parts, ", ")
}

// =============================================================================
// RECONCILIATION
// =============================================================================

// Reconcile folds all shipments into report rows. The template seeds image
// and kind metadata; the purchase ledger supplies the total-stock column.
func (e *Engine) Reconcile(shipments []types.Shipment, template []types.StatsRow, purchases ledger.Ledger) []types.StatsRow {
	table := make(map[string]*entry)
	var order []string

	// Seed from the curated template: counters zeroed, metadata preserved.
	for _, row := range template {
		if _, ok := table[row.Name]; ok {
			continue
		}
		image := row.Image
		if image == "" {
			image = defaultImage
		}
		kind := row.Kind
		if kind == "" {
			kind = types.KindProduct
		}
		table[row.Name] = newEntry(image, kind)
		order = append(order, row.Name)
	}

	for _, ship := range shipments {
		for _, item := range e.parser.Parse(ship.Details) {
			ent, ok := table[item.Product]
			if !ok {
				ent = newEntry(e.imageFor(item.Product), inferKind(item.Product))
				table[item.Product] = ent
				order = append(order, item.Product)
			}

			ent.shipped += item.Qty

			// The packaging-only product is packaged no matter what the
			// parser said about the segment it came from.
			packaged := item.Packaged
			if item.Product == manifest.PackagingOnly {
				packaged = true
			}

			if packaged {
				ent.packaged += item.Qty
				ent.packagedBy.add(ship.Recipient, item.Qty)
			} else {
				ent.unpackaged += item.Qty
				ent.unpackedBy.add(ship.Recipient, item.Qty)
			}
		}
	}

	// Report order: packaging rows after everything else, then by shipped
	// total descending. Kept as an explicit two-key comparison so the
	// tie-break stays auditable.
	sort.SliceStable(order, func(i, j int) bool {
		a, b := table[order[i]], table[order[j]]
		aPkg := a.kind == types.KindPackaging
		bPkg := b.kind == types.KindPackaging
		if aPkg != bPkg {
			return !aPkg
		}
		return a.shipped > b.shipped
	})

	rows := make([]types.StatsRow, 0, len(order))
	for _, name := range order {
		ent := table[name]
		if ent.shipped <= 0 {
			continue
		}

		var totalStock any = purchases.Total(name)
		if ent.kind == types.KindPackaging {
			totalStock = "N/A"
		}

		rows = append(rows, types.StatsRow{
			Name:             name,
			Image:            ent.image,
			ShippedTotal:     ent.shipped,
			Packaged:         ent.packaged,
			PackagedDetail:   ent.packagedBy.render(),
			Unpackaged:       ent.unpackaged,
			UnpackagedDetail: ent.unpackedBy.render(),
			TotalStock:       totalStock,
			Kind:             ent.kind,
		})
	}

	return rows
}

// ShippedCounts sums parsed quantities per product across all shipments,
// packaged or not. Used for the shipped_cn column on product records.
func (e *Engine) ShippedCounts(shipments []types.Shipment) map[string]int {
	counts := make(map[string]int)
	for _, ship := range shipments {
		for _, item := range e.parser.Parse(ship.Details) {
			counts[item.Product] += item.Qty
		}
	}
	return counts
}

// imageFor resolves a product image: live catalog first, then the static
// fallback table, then the placeholder.
func (e *Engine) imageFor(product string) string {
	if img, ok := e.catalog[product]; ok && img != "" {
		return img
	}
	if img, ok := e.fallback[product]; ok {
		return img
	}
	return defaultImage
}

// inferKind classifies a product first seen in a manifest by its name: a
// gift-box keyword means accessory, a packaging keyword means packaging,
// anything else is a regular product.
func inferKind(product string) string {
	switch {
	case strings.Contains(product, "礼盒"):
		return types.KindAccessory
	case strings.Contains(product, "包装"):
		return types.KindPackaging
	default:
		return types.KindProduct
	}
}
