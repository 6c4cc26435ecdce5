// =============================================================================
// Inventory Sync - JSON Export
// =============================================================================
//
// This module reads the document store back out into the JSON files consumed
// by the web frontend:
//
//   products.json  - product records, _id stripped
//   shipping.json  - outgoing shipments joined with their customer profile
//                    (phone, address, recipient), ObjectIds hex-encoded
//   orders.json    - incoming-order tracking records, _id stripped
//
// Each run is tagged with a batch id so the summary lines of concurrent or
// repeated exports can be told apart in the console history.
//
// =============================================================================

package export

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mingxia/inventory-sync/internal/store"
	"github.com/mingxia/inventory-sync/pkg/utils"
)

// Exporter writes the three frontend JSON files from the document store.
type Exporter struct {
	store *store.Store

	// BatchID tags this export run.
	BatchID string
}

// NewExporter builds an Exporter over an open store.
func NewExporter(s *store.Store) *Exporter {
	return &Exporter{store: s, BatchID: uuid.NewString()}
}

// Summary reports what an export run produced.
type Summary struct {
	BatchID   string
	Products  int
	Shipments int
	Orders    int
}

// Run exports all three files into dataDir.
func (e *Exporter) Run(ctx context.Context, dataDir string) (*Summary, error) {
	if err := utils.EnsureDir(dataDir); err != nil {
		return nil, err
	}

	summary := &Summary{BatchID: e.BatchID}

	products, err := e.store.All(ctx, "products", true)
	if err != nil {
		return nil, err
	}
	if err := utils.WriteJSONFile(utils.JoinPath(dataDir, "products.json"), products); err != nil {
		return nil, err
	}
	summary.Products = len(products)

	shipments, err := e.exportShipments(ctx)
	if err != nil {
		return nil, err
	}
	if err := utils.WriteJSONFile(utils.JoinPath(dataDir, "shipping.json"), shipments); err != nil {
		return nil, err
	}
	summary.Shipments = len(shipments)

	orders, err := e.store.All(ctx, "incoming_orders", true)
	if err != nil {
		return nil, err
	}
	if err := utils.WriteJSONFile(utils.JoinPath(dataDir, "orders.json"), orders); err != nil {
		return nil, err
	}
	summary.Orders = len(orders)

	return summary, nil
}

// exportShipments joins each outgoing shipment with its customer profile so
// the frontend gets phone, address and recipient without a second lookup.
func (e *Exporter) exportShipments(ctx context.Context) ([]bson.M, error) {
	shipments, err := e.store.All(ctx, "outgoing_shipments", false)
	if err != nil {
		return nil, err
	}

	for _, s := range shipments {
		if customerID, ok := s["customer_id"].(primitive.ObjectID); ok {
			customer, err := e.store.CustomerByID(ctx, customerID)
			if err != nil {
				return nil, err
			}
			if customer != nil {
				s["phone"] = customer["phone"]
				s["address"] = customer["address"]
				s["recipient"] = customer["name"]
			}
			s["customer_id"] = customerID.Hex()
		}

		// ObjectIds do not survive JSON; hex-encode them.
		if id, ok := s["_id"].(primitive.ObjectID); ok {
			s["_id"] = id.Hex()
		}
	}

	if shipments == nil {
		shipments = []bson.M{}
	}
	return shipments, nil
}

// Describe renders the summary for the console.
func (s *Summary) Describe() string {
	return fmt.Sprintf("batch %s: %d products, %d shipments, %d orders",
		s.BatchID, s.Products, s.Shipments, s.Orders)
}
