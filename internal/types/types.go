// =============================================================================
// Inventory Sync - Shared Types
// =============================================================================
//
// This package contains the record types shared across the pipeline to avoid
// import cycles. Types defined here are used by:
//   - xlsxloader (populates them from spreadsheet exports)
//   - ledger / reconcile / tracking (aggregate them)
//   - store / export (persist and re-export them)
//
// The bson/json tags mirror the column names of the spreadsheet exports and
// the document-store collections. The Chinese field names on StatsRow are the
// external contract consumed by the web frontend; do not rename them.
//
// =============================================================================

package types

import "github.com/shopspring/decimal"

// =============================================================================
// PURCHASE ORDERS
// =============================================================================

// OrderItem is a single line item of a purchase order.
// Qty may be negative, which represents a return.
type OrderItem struct {
	Product string `bson:"product" json:"product"`
	Qty     int    `bson:"qty" json:"qty"`
}

// PurchaseOrder is one purchase order as loaded from the spreadsheet export.
// The Shipments field is populated by the tracking merge; it is always
// present after a refresh run, possibly as an empty list.
type PurchaseOrder struct {
	OrderID   string         `bson:"order_id" json:"order_id"`
	Date      string         `bson:"date,omitempty" json:"date,omitempty"`
	Note      string         `bson:"note" json:"note"`
	Items     []OrderItem    `bson:"items" json:"items"`
	Shipments []ShipmentInfo `bson:"shipments" json:"shipments"`
}

// =============================================================================
// OUTGOING SHIPMENTS
// =============================================================================

// Shipment is one outgoing-shipment record from the shipping export.
// Details is the free-form manifest string decoded by the manifest parser.
// Weight and Fee are carried through as decimals so spreadsheet values
// survive the round trip without float drift.
type Shipment struct {
	TrackingNumber string          `bson:"tracking_number" json:"tracking_number"`
	Recipient      string          `bson:"recipient" json:"recipient"`
	Phone          string          `bson:"phone" json:"phone"`
	Address        string          `bson:"address" json:"address"`
	Details        string          `bson:"details" json:"details"`
	Weight         decimal.Decimal `bson:"-" json:"-"`
	Fee            decimal.Decimal `bson:"-" json:"-"`
	Status         string          `bson:"status" json:"status"`
	Date           string          `bson:"date" json:"date"`
	Note           string          `bson:"note" json:"note"`
}

// =============================================================================
// PRODUCTS
// =============================================================================

// Product is one row of the products export, annotated during a refresh run
// with the recalculated purchase-ledger counters and the shipped count.
type Product struct {
	Name       string `bson:"name" json:"name"`
	Image      string `bson:"image" json:"image"`
	Price      string `bson:"price,omitempty" json:"price,omitempty"`
	Link       string `bson:"link,omitempty" json:"link,omitempty"`
	TotalStock int    `bson:"total_stock" json:"total_stock"`
	USSigned   int    `bson:"us_signed" json:"us_signed"`
	USUnsigned int    `bson:"us_unsigned" json:"us_unsigned"`
	ShippedCN  int    `bson:"shipped_cn" json:"shipped_cn"`
}

// =============================================================================
// INVENTORY STATS
// =============================================================================

// Kind values for StatsRow. Accessories are gift-box sets; packaging rows
// track the packaging-only synthetic product.
const (
	KindProduct   = "product"
	KindAccessory = "accessory"
	KindPackaging = "packaging"
)

// StatsRow is one row of the per-product shipment report. The reconciliation
// engine rebuilds these from scratch on every run, seeding image and kind
// from the manually curated stats template.
//
// TotalStock holds either an int or the string "N/A" (packaging-kind rows
// have no meaningful stock figure), so it is typed as any.
type StatsRow struct {
	Name             string `bson:"产品名称" json:"产品名称"`
	Image            string `bson:"image" json:"image"`
	ShippedTotal     int    `bson:"已发总数" json:"已发总数"`
	Packaged         int    `bson:"带包装" json:"带包装"`
	PackagedDetail   string `bson:"带包装详情" json:"带包装详情"`
	Unpackaged       int    `bson:"不带包装" json:"不带包装"`
	UnpackagedDetail string `bson:"不带包装详情" json:"不带包装详情"`
	TotalStock       any    `bson:"总库存" json:"总库存"`
	Kind             string `bson:"类型" json:"类型"`
}

// =============================================================================
// INCOMING ORDERS & TRACKING
// =============================================================================

// IncomingOrder is one row of the incoming-orders export: a tracking record
// for a purchase order on its way to the holding location.
type IncomingOrder struct {
	OrderID     string `bson:"order_id" json:"order_id"`
	Tracking    string `bson:"tracking" json:"tracking"`
	TrackingURL string `bson:"tracking_url" json:"tracking_url"`
	Status      string `bson:"status" json:"status"`
	Signed      string `bson:"signed" json:"signed"`
}

// ShipmentInfo is the tracking metadata attached to a purchase order by the
// tracking merge. One entry per distinct tracking number per order.
type ShipmentInfo struct {
	TrackingNumber string `bson:"tracking_number" json:"tracking_number"`
	TrackingURL    string `bson:"tracking_url" json:"tracking_url"`
	Status         string `bson:"status" json:"status"`
	Carrier        string `bson:"carrier" json:"carrier"`
	Signed         string `bson:"signed" json:"signed"`
}

// =============================================================================
// CUSTOMERS
// =============================================================================

// Customer is a recipient profile derived from the shipping export.
// Identity is the (phone, name) pair; Address holds the most recent address
// seen for that pair.
type Customer struct {
	Name    string `bson:"name" json:"name"`
	Phone   string `bson:"phone" json:"phone"`
	Address string `bson:"address" json:"address"`
}
