// =============================================================================
// Inventory Sync - Purchase Ledger Aggregator
// =============================================================================
//
// This package folds purchase-order line items into per-product
// total/signed/unsigned counters.
//
// SIGN-STATUS RULE:
//   An order counts as signed only when its note mentions BOTH the shipped
//   marker (已发货) AND the signed-for marker (已签收). An order mentioning
//   only one of them is unsigned.
//
// RETURN RULE:
//   A negative quantity is a return. Returns always reduce the signed
//   (on-hand) stock, regardless of the order's sign status, and they reduce
//   the total.
//
// Both rules together give the invariant Total == Signed + Unsigned for
// every product, by construction: each increment touches Total and exactly
// one of Signed/Unsigned.
//
// =============================================================================

package ledger

import (
	"strings"

	"github.com/mingxia/inventory-sync/internal/types"
)

// Note markers that together classify an order as signed.
const (
	markerShipped   = "已发货"
	markerSignedFor = "已签收"
)

// Counts holds the purchase-ledger counters for one product.
type Counts struct {
	Total    int
	Signed   int
	Unsigned int
}

// Ledger maps canonical product names to their counters.
type Ledger map[string]*Counts

// Aggregate folds all purchase orders into a fresh ledger. It never fails:
// orders with no items simply contribute nothing.
func Aggregate(orders []types.PurchaseOrder) Ledger {
	ledger := make(Ledger)

	for _, order := range orders {
		isSigned := strings.Contains(order.Note, markerShipped) &&
			strings.Contains(order.Note, markerSignedFor)

		for _, item := range order.Items {
			name := NormalizeProduct(item.Product)

			counts, ok := ledger[name]
			if !ok {
				counts = &Counts{}
				ledger[name] = counts
			}

			counts.Total += item.Qty
			switch {
			case item.Qty < 0:
				counts.Signed += item.Qty
			case isSigned:
				counts.Signed += item.Qty
			default:
				counts.Unsigned += item.Qty
			}
		}
	}

	return ledger
}

// Total returns the total counter for a product, zero when unknown.
func (l Ledger) Total(product string) int {
	if c, ok := l[product]; ok {
		return c.Total
	}
	return 0
}

// Has reports whether the ledger carries counters for the product.
func (l Ledger) Has(product string) bool {
	_, ok := l[product]
	return ok
}

// NormalizeProduct maps a purchase-order product spelling to the canonical
// catalog name: the " (Gift Box)" suffix is dropped, and one legacy spelling
// that predates the catalog rename is rewritten.
func NormalizeProduct(name string) string {
	name = strings.ReplaceAll(name, " (Gift Box)", "")
	if name == "Flip Straw Tumbler 30 OZ Rose Quartz" {
		name = "The IceFlow™ Flip Straw Tumbler 30 OZ Rose Quartz"
	}
	return name
}
