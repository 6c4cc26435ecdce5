// =============================================================================
// Inventory Sync - XLSX Loader
// =============================================================================
//
// This module loads the five spreadsheet exports that feed the refresh
// pipeline:
//
//   products_data.xlsx         -> []types.Product
//   purchase_orders_data.xlsx  -> []types.PurchaseOrder (items recovered from
//                                 a list-literal cell, see items.go)
//   shipping_data.xlsx         -> []types.Shipment
//   inventory_stats_data.xlsx  -> []types.StatsRow (curated template)
//   incoming_orders_data.xlsx  -> []types.IncomingOrder
//
// Each loader reads the first sheet, maps columns by header name, trims cell
// values and treats missing cells as empty strings, so sparse spreadsheet
// rows never crash the run. Numeric cells are parsed tolerantly: an
// unparsable number degrades to zero for that cell only.
//
// =============================================================================

package xlsxloader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/mingxia/inventory-sync/internal/types"
)

// =============================================================================
// SHEET READING
// =============================================================================

// sheet is one loaded worksheet: a header index plus the data rows.
type sheet struct {
	headers map[string]int
	rows    [][]string
}

// readSheet opens an XLSX file and reads the first sheet. The first row is
// taken as the header row; empty rows are skipped.
func readSheet(path string) (*sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("%s has no sheets", path)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from %s: %w", path, err)
	}
	if len(rows) == 0 {
		return &sheet{headers: map[string]int{}}, nil
	}

	headers := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		headers[strings.TrimSpace(h)] = i
	}

	s := &sheet{headers: headers}
	for _, row := range rows[1:] {
		if isRowEmpty(row) {
			continue
		}
		s.rows = append(s.rows, row)
	}
	return s, nil
}

// isRowEmpty checks if a row contains only empty cells.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// cell returns the trimmed value of the named column in a row, or "" when
// the column or cell is absent.
func (s *sheet) cell(row []string, column string) string {
	idx, ok := s.headers[column]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// intCell parses the named column as an integer, zero on failure. Spreadsheet
// numerics sometimes render as "3.0", so a float parse is the fallback.
func (s *sheet) intCell(row []string, column string) int {
	v := s.cell(row, column)
	if v == "" {
		return 0
	}
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f)
	}
	return 0
}

// decimalCell parses the named column as a decimal, zero on failure.
func (s *sheet) decimalCell(row []string, column string) decimal.Decimal {
	v := s.cell(row, column)
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// =============================================================================
// DATASET LOADERS
// =============================================================================

// LoadProducts reads the products export.
func LoadProducts(path string) ([]types.Product, error) {
	s, err := readSheet(path)
	if err != nil {
		return nil, err
	}

	products := make([]types.Product, 0, len(s.rows))
	for _, row := range s.rows {
		// Counter columns carry the previous run's values; the refresh
		// overwrites them for every product the ledger knows about.
		products = append(products, types.Product{
			Name:       s.cell(row, "name"),
			Image:      s.cell(row, "image"),
			Price:      s.cell(row, "price"),
			Link:       s.cell(row, "link"),
			TotalStock: s.intCell(row, "total_stock"),
			USSigned:   s.intCell(row, "us_signed"),
			USUnsigned: s.intCell(row, "us_unsigned"),
			ShippedCN:  s.intCell(row, "shipped_cn"),
		})
	}
	return products, nil
}

// LoadPurchaseOrders reads the purchase-orders export. The items column
// holds a list literal; rows whose literal cannot be recovered keep an empty
// items list and produce a warning, so one malformed cell never aborts the
// run.
func LoadPurchaseOrders(path string) ([]types.PurchaseOrder, []string, error) {
	s, err := readSheet(path)
	if err != nil {
		return nil, nil, err
	}

	var warnings []string
	orders := make([]types.PurchaseOrder, 0, len(s.rows))
	for _, row := range s.rows {
		order := types.PurchaseOrder{
			OrderID: s.cell(row, "order_id"),
			Date:    s.cell(row, "date"),
			Note:    s.cell(row, "note"),
		}

		items, err := ParseItemsLiteral(s.cell(row, "items"))
		if err != nil {
			warnings = append(warnings,
				fmt.Sprintf("could not parse items for order %s: %v", order.OrderID, err))
			items = []types.OrderItem{}
		}
		order.Items = items

		orders = append(orders, order)
	}
	return orders, warnings, nil
}

// LoadShipments reads the outgoing-shipments export.
func LoadShipments(path string) ([]types.Shipment, error) {
	s, err := readSheet(path)
	if err != nil {
		return nil, err
	}

	shipments := make([]types.Shipment, 0, len(s.rows))
	for _, row := range s.rows {
		shipments = append(shipments, types.Shipment{
			TrackingNumber: s.cell(row, "tracking_number"),
			Recipient:      s.cell(row, "recipient"),
			Phone:          s.cell(row, "phone"),
			Address:        s.cell(row, "address"),
			Details:        s.cell(row, "details"),
			Weight:         s.decimalCell(row, "weight"),
			Fee:            s.decimalCell(row, "fee"),
			Status:         s.cell(row, "status"),
			Date:           s.cell(row, "date"),
			Note:           s.cell(row, "note"),
		})
	}
	return shipments, nil
}

// LoadStatsTemplate reads the curated inventory-stats template. Only the
// identity and metadata columns matter; the counters are rebuilt from
// scratch by the reconciliation engine.
func LoadStatsTemplate(path string) ([]types.StatsRow, error) {
	s, err := readSheet(path)
	if err != nil {
		return nil, err
	}

	rows := make([]types.StatsRow, 0, len(s.rows))
	for _, row := range s.rows {
		name := s.cell(row, "产品名称")
		if name == "" {
			continue
		}
		rows = append(rows, types.StatsRow{
			Name:  name,
			Image: s.cell(row, "image"),
			Kind:  s.cell(row, "类型"),
		})
	}
	return rows, nil
}

// LoadIncomingOrders reads the incoming-orders export.
func LoadIncomingOrders(path string) ([]types.IncomingOrder, error) {
	s, err := readSheet(path)
	if err != nil {
		return nil, err
	}

	orders := make([]types.IncomingOrder, 0, len(s.rows))
	for _, row := range s.rows {
		orders = append(orders, types.IncomingOrder{
			OrderID:     s.cell(row, "order_id"),
			Tracking:    s.cell(row, "tracking"),
			TrackingURL: s.cell(row, "tracking_url"),
			Status:      s.cell(row, "status"),
			Signed:      s.cell(row, "signed"),
		})
	}
	return orders, nil
}
