// =============================================================================
// Inventory Sync - Document Store
// =============================================================================
//
// This module owns the MongoDB persistence layer. A refresh run is a full
// reset: the six collections are dropped and repopulated from the freshly
// computed records. There is no incremental state.
//
// COLLECTIONS:
//   products, incoming_orders, customers, outgoing_shipments, product_stats,
//   purchase_orders
//
// CUSTOMER HANDLING:
//   Customers are identified by the (phone, name) pair so family members
//   sharing a phone get separate profiles. The customer profile keeps the
//   most recent address seen; each shipment document keeps its own address
//   snapshot.
//
// =============================================================================

package store

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mingxia/inventory-sync/internal/config"
	"github.com/mingxia/inventory-sync/internal/types"
)

// CarrierJunAn is the carrier recorded on every outgoing shipment.
const CarrierJunAn = "JunAn Express"

// Collections reset and repopulated by a refresh run.
var Collections = []string{
	"products",
	"incoming_orders",
	"customers",
	"outgoing_shipments",
	"product_stats",
	"purchase_orders",
}

// Store wraps the Mongo client and database handle.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens and pings the document store.
func Connect(ctx context.Context, cfg config.Mongo) (*Store, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.InsecureTLS {
		opts.SetTLSConfig(&tls.Config{InsecureSkipVerify: true})
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to reach MongoDB: %w", err)
	}

	return &Store{client: client, db: client.Database(cfg.Database)}, nil
}

// Close disconnects from the document store.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// =============================================================================
// RESET & INSERT
// =============================================================================

// Reset drops every collection a refresh run repopulates.
func (s *Store) Reset(ctx context.Context) error {
	for _, name := range Collections {
		if err := s.db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("failed to drop %s: %w", name, err)
		}
	}
	return nil
}

// InsertProducts stores the annotated product records.
func (s *Store) InsertProducts(ctx context.Context, products []types.Product) error {
	return insertMany(ctx, s.db.Collection("products"), products)
}

// InsertIncomingOrders stores the incoming-order tracking records.
func (s *Store) InsertIncomingOrders(ctx context.Context, orders []types.IncomingOrder) error {
	return insertMany(ctx, s.db.Collection("incoming_orders"), orders)
}

// InsertStats stores the reconciliation report rows.
func (s *Store) InsertStats(ctx context.Context, rows []types.StatsRow) error {
	return insertMany(ctx, s.db.Collection("product_stats"), rows)
}

// InsertPurchaseOrders stores the purchase orders with their attached
// shipment info.
func (s *Store) InsertPurchaseOrders(ctx context.Context, orders []types.PurchaseOrder) error {
	return insertMany(ctx, s.db.Collection("purchase_orders"), orders)
}

// insertMany inserts a slice of records; an empty slice is a no-op.
func insertMany[T any](ctx context.Context, coll *mongo.Collection, records []T) error {
	if len(records) == 0 {
		return nil
	}
	docs := make([]interface{}, len(records))
	for i, r := range records {
		docs[i] = r
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", coll.Name(), err)
	}
	return nil
}

// =============================================================================
// SHIPMENTS & CUSTOMERS
// =============================================================================

// ShipmentResult reports what InsertShipments did.
type ShipmentResult struct {
	Inserted  int
	Customers int
	// SkippedDuplicates lists tracking numbers that appeared more than once
	// in the shipping export; only the first occurrence is stored.
	SkippedDuplicates []string
}

// InsertShipments stores the outgoing shipments, creating or updating the
// customer profile for each (phone, name) pair. trackingBaseURL is the
// carrier site root used to build per-shipment tracking URLs.
func (s *Store) InsertShipments(ctx context.Context, shipments []types.Shipment, trackingBaseURL string) (*ShipmentResult, error) {
	customers := s.db.Collection("customers")
	outgoing := s.db.Collection("outgoing_shipments")

	result := &ShipmentResult{}
	customerIDs := make(map[[2]string]primitive.ObjectID)
	seenTracking := make(map[string]bool)

	for _, ship := range shipments {
		if seenTracking[ship.TrackingNumber] {
			result.SkippedDuplicates = append(result.SkippedDuplicates, ship.TrackingNumber)
			continue
		}
		seenTracking[ship.TrackingNumber] = true

		// Phone and name arrive straight from the spreadsheet; trimming
		// prevents "Alice" and "Alice " becoming two people.
		phone := strings.TrimSpace(ship.Phone)
		name := strings.TrimSpace(ship.Recipient)
		key := [2]string{phone, name}

		customerID, ok := customerIDs[key]
		if !ok {
			var err error
			customerID, err = s.findOrInsertCustomer(ctx, customers, types.Customer{
				Name:    name,
				Phone:   phone,
				Address: ship.Address,
			})
			if err != nil {
				return result, err
			}
			customerIDs[key] = customerID
			result.Customers = len(customerIDs)
		}

		doc := bson.M{
			"tracking_number": ship.TrackingNumber,
			"tracking_url":    fmt.Sprintf("%s/tracking?code=%s&mobile=%s", trackingBaseURL, ship.TrackingNumber, phone),
			"customer_id":     customerID,
			"recipient":       name,
			"details":         ship.Details,
			"weight":          ship.Weight.String(),
			"fee":             ship.Fee.String(),
			"status":          ship.Status,
			"date":            ship.Date,
			"carrier":         CarrierJunAn,
			"address":         ship.Address,
			"note":            ship.Note,
		}
		if _, err := outgoing.InsertOne(ctx, doc); err != nil {
			return result, fmt.Errorf("failed to insert shipment %s: %w", ship.TrackingNumber, err)
		}
		result.Inserted++
	}

	return result, nil
}

// findOrInsertCustomer looks a customer up by (phone, name), updating the
// profile address to the latest one used, or inserts a new profile.
func (s *Store) findOrInsertCustomer(ctx context.Context, coll *mongo.Collection, c types.Customer) (primitive.ObjectID, error) {
	var existing struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	err := coll.FindOne(ctx, bson.M{"phone": c.Phone, "name": c.Name}).Decode(&existing)
	switch {
	case err == nil:
		_, err = coll.UpdateOne(ctx,
			bson.M{"_id": existing.ID},
			bson.M{"$set": bson.M{"address": c.Address}})
		if err != nil {
			return primitive.NilObjectID, fmt.Errorf("failed to update customer %s: %w", c.Name, err)
		}
		return existing.ID, nil
	case err == mongo.ErrNoDocuments:
		res, err := coll.InsertOne(ctx, c)
		if err != nil {
			return primitive.NilObjectID, fmt.Errorf("failed to insert customer %s: %w", c.Name, err)
		}
		return res.InsertedID.(primitive.ObjectID), nil
	default:
		return primitive.NilObjectID, fmt.Errorf("failed to look up customer %s: %w", c.Name, err)
	}
}

// =============================================================================
// READ SIDE (export & summary)
// =============================================================================

// All returns every document of a collection. When excludeID is set, the
// _id field is projected away, matching the shape the JSON export wants.
func (s *Store) All(ctx context.Context, collection string, excludeID bool) ([]bson.M, error) {
	opts := options.Find()
	if excludeID {
		opts.SetProjection(bson.M{"_id": 0})
	}

	cur, err := s.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", collection, err)
	}
	defer cur.Close(ctx)

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", collection, err)
	}
	return docs, nil
}

// CustomerByID fetches one customer profile, or nil when unknown.
func (s *Store) CustomerByID(ctx context.Context, id primitive.ObjectID) (bson.M, error) {
	var doc bson.M
	err := s.db.Collection("customers").FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up customer %s: %w", id.Hex(), err)
	}
	return doc, nil
}

// Counts returns the document count per collection for the run summary.
func (s *Store) Counts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, len(Collections))
	for _, name := range Collections {
		n, err := s.db.Collection(name).CountDocuments(ctx, bson.D{})
		if err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", name, err)
		}
		counts[name] = n
	}
	return counts, nil
}
