// =============================================================================
// Inventory Sync - Tracking Metadata Resolver
// =============================================================================
//
// This package derives carrier metadata from a tracking number's shape and
// merges incoming-order tracking records into purchase orders.
//
// CARRIER RULE:
//   Tracking numbers beginning with "1Z" (case-insensitive) are UPS; every
//   other shape defaults to FedEx.
//
// MERGE RULE:
//   Incoming tracking records are grouped by order identifier, deduplicated
//   by tracking number within each order, and attached to the matching
//   purchase orders. Orders with no tracking records get an empty shipments
//   list, never a missing field.
//
// =============================================================================

package tracking

import (
	"fmt"
	"strings"

	"github.com/mingxia/inventory-sync/internal/types"
)

// Carrier labels.
const (
	CarrierUPS   = "UPS"
	CarrierFedEx = "FedEx"
)

// URL templates per carrier.
const (
	upsURLTemplate   = "https://www.ups.com/track?track=yes&trackNums=%s"
	fedexURLTemplate = "https://www.fedex.com/fedextrack/?trknbr=%s"
)

// blank is the spreadsheet's "no value" marker for tracking cells.
const blank = "——"

// Carrier classifies a tracking number by its textual prefix.
func Carrier(trackingNumber string) string {
	if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(trackingNumber)), "1Z") {
		return CarrierUPS
	}
	return CarrierFedEx
}

// URL builds the tracking URL for a tracking number, or "" for a blank one.
func URL(trackingNumber string) string {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" || trackingNumber == blank {
		return ""
	}
	if Carrier(trackingNumber) == CarrierUPS {
		return fmt.Sprintf(upsURLTemplate, trackingNumber)
	}
	return fmt.Sprintf(fedexURLTemplate, trackingNumber)
}

// MergeIntoOrders attaches deduplicated shipment info to each purchase
// order. The orders slice is modified in place and returned for chaining.
func MergeIntoOrders(orders []types.PurchaseOrder, incoming []types.IncomingOrder) []types.PurchaseOrder {
	byOrder := make(map[string][]types.ShipmentInfo)

	for _, rec := range incoming {
		// Records without a usable join key are skipped for this merge only.
		if rec.OrderID == "" || rec.Tracking == "" || rec.Tracking == blank {
			continue
		}

		url := rec.TrackingURL
		if url == "" || url == rec.Tracking {
			url = URL(rec.Tracking)
		}

		status := rec.Status
		if status == "" {
			status = "Unknown"
		}
		signed := rec.Signed
		if signed == "" {
			signed = "No"
		}

		info := types.ShipmentInfo{
			TrackingNumber: rec.Tracking,
			TrackingURL:    url,
			Status:         status,
			Carrier:        Carrier(rec.Tracking),
			Signed:         signed,
		}

		if hasTracking(byOrder[rec.OrderID], rec.Tracking) {
			continue
		}
		byOrder[rec.OrderID] = append(byOrder[rec.OrderID], info)
	}

	for i := range orders {
		if infos, ok := byOrder[orders[i].OrderID]; ok {
			orders[i].Shipments = infos
		} else {
			orders[i].Shipments = []types.ShipmentInfo{}
		}
	}

	return orders
}

// hasTracking reports whether the list already carries the tracking number.
func hasTracking(infos []types.ShipmentInfo, trackingNumber string) bool {
	for _, info := range infos {
		if info.TrackingNumber == trackingNumber {
			return true
		}
	}
	return false
}
