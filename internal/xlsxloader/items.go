// =============================================================================
// Inventory Sync - Items Literal Recovery
// =============================================================================
//
// The purchase-orders spreadsheet stores each order's line items as a list
// literal in a single cell, written by the upstream export in either JSON
// form:
//
//   [{"product": "蓝底 40oz", "qty": 2}]
//
// or Python-repr form:
//
//   [{'product': '蓝底 40oz', 'qty': -1}]
//
// ParseItemsLiteral recovers the line items from either spelling. JSON is
// tried first; the repr form is recovered by scanning the brace-delimited
// chunks for their product/qty pairs, which tolerates key order and
// whitespace differences.
//
// =============================================================================

package xlsxloader

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mingxia/inventory-sync/internal/types"
)

var (
	chunkRe   = regexp.MustCompile(`\{[^{}]*\}`)
	productRe = regexp.MustCompile(`'product'\s*:\s*'([^']*)'`)
	qtyRe     = regexp.MustCompile(`'qty'\s*:\s*(-?\d+)`)
)

// ParseItemsLiteral parses an items cell into order items. An empty cell is
// an empty list, not an error.
func ParseItemsLiteral(raw string) ([]types.OrderItem, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "[]" {
		return []types.OrderItem{}, nil
	}

	// JSON spelling.
	var items []types.OrderItem
	if err := json.Unmarshal([]byte(raw), &items); err == nil {
		return items, nil
	}

	// Python-repr spelling.
	if !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return nil, fmt.Errorf("not a list literal: %q", truncate(raw, 60))
	}

	chunks := chunkRe.FindAllString(raw, -1)
	if len(chunks) == 0 {
		return nil, fmt.Errorf("no item entries in %q", truncate(raw, 60))
	}

	items = make([]types.OrderItem, 0, len(chunks))
	for _, chunk := range chunks {
		p := productRe.FindStringSubmatch(chunk)
		q := qtyRe.FindStringSubmatch(chunk)
		if p == nil || q == nil {
			return nil, fmt.Errorf("malformed item entry %q", truncate(chunk, 60))
		}
		qty, err := strconv.Atoi(q[1])
		if err != nil {
			return nil, fmt.Errorf("malformed quantity in %q", truncate(chunk, 60))
		}
		items = append(items, types.OrderItem{Product: p[1], Qty: qty})
	}
	return items, nil
}

// truncate shortens a string for error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
