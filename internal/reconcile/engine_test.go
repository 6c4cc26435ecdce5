package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingxia/inventory-sync/internal/alias"
	"github.com/mingxia/inventory-sync/internal/ledger"
	"github.com/mingxia/inventory-sync/internal/manifest"
	"github.com/mingxia/inventory-sync/internal/types"
)

func newTestEngine(catalog map[string]string) *Engine {
	parser := manifest.NewParser(alias.NewDefaultResolver())
	return NewEngine(parser, catalog, nil)
}

func ship(recipient, details string) types.Shipment {
	return types.Shipment{Recipient: recipient, Details: details}
}

func rowByName(t *testing.T, rows []types.StatsRow, name string) types.StatsRow {
	t.Helper()
	for _, r := range rows {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("no report row for %s", name)
	return types.StatsRow{}
}

func TestReconcile_SplitInvariant(t *testing.T) {
	e := newTestEngine(nil)
	shipments := []types.Shipment{
		ship("张三", "2*蓝20oz+1*白40oz(包装)"),
		ship("李四", "3*蓝20oz带包装"),
		ship("王五", "1*压扁包装+2*礼盒"),
	}

	rows := e.Reconcile(shipments, nil, ledger.Ledger{})
	require.NotEmpty(t, rows)

	for _, row := range rows {
		assert.Equal(t, row.ShippedTotal, row.Packaged+row.Unpackaged, row.Name)
	}
}

func TestReconcile_RecipientTallies(t *testing.T) {
	e := newTestEngine(nil)
	shipments := []types.Shipment{
		ship("张三", "2*蓝20oz"),
		ship("李四", "3*蓝20oz"),
		ship("张三", "1*蓝20oz"),
	}

	rows := e.Reconcile(shipments, nil, ledger.Ledger{})
	row := rowByName(t, rows, "蓝底 20oz")

	assert.Equal(t, 6, row.ShippedTotal)
	assert.Equal(t, 0, row.Packaged)
	assert.Equal(t, 6, row.Unpackaged)
	// First-contribution order, quantities folded per recipient.
	assert.Equal(t, "张三(3), 李四(3)", row.UnpackagedDetail)
	assert.Equal(t, NoDataPlaceholder, row.PackagedDetail)
}

func TestReconcile_PackagingOnlyAlwaysPackaged(t *testing.T) {
	e := newTestEngine(nil)

	rows := e.Reconcile([]types.Shipment{ship("张三", "2*压扁包装")}, nil, ledger.Ledger{})
	row := rowByName(t, rows, manifest.PackagingOnly)

	assert.Equal(t, 2, row.Packaged)
	assert.Equal(t, 0, row.Unpackaged)
	assert.Equal(t, types.KindPackaging, row.Kind)
}

func TestReconcile_TemplateSeedsMetadata(t *testing.T) {
	e := newTestEngine(nil)
	template := []types.StatsRow{
		{Name: "蓝底 20oz", Image: "img/custom.png", Kind: types.KindProduct},
	}

	rows := e.Reconcile([]types.Shipment{ship("张三", "1*蓝20oz")}, template, ledger.Ledger{})
	row := rowByName(t, rows, "蓝底 20oz")

	assert.Equal(t, "img/custom.png", row.Image)
	assert.Equal(t, types.KindProduct, row.Kind)
}

func TestReconcile_ImageFallbackChain(t *testing.T) {
	catalog := map[string]string{"蓝底 20oz": "img/live.png"}
	e := newTestEngine(catalog)

	shipments := []types.Shipment{
		ship("张三", "1*蓝20oz"), // in live catalog
		ship("张三", "1*白40oz"), // only in static fallback table
		ship("张三", "1*礼盒"),    // in static fallback table
	}
	rows := e.Reconcile(shipments, nil, ledger.Ledger{})

	assert.Equal(t, "img/live.png", rowByName(t, rows, "蓝底 20oz").Image)
	assert.Equal(t, DefaultImageTable()["白底 40oz"], rowByName(t, rows, "白底 40oz").Image)
}

func TestReconcile_KindInference(t *testing.T) {
	e := newTestEngine(nil)

	rows := e.Reconcile([]types.Shipment{
		ship("张三", "1*礼盒+1*蓝20oz+1*压扁包装"),
	}, nil, ledger.Ledger{})

	assert.Equal(t, types.KindAccessory, rowByName(t, rows, "礼盒").Kind)
	assert.Equal(t, types.KindProduct, rowByName(t, rows, "蓝底 20oz").Kind)
	assert.Equal(t, types.KindPackaging, rowByName(t, rows, manifest.PackagingOnly).Kind)
}

func TestReconcile_DropsNonPositiveTotals(t *testing.T) {
	e := newTestEngine(nil)
	template := []types.StatsRow{
		{Name: "蓝底 20oz", Kind: types.KindProduct}, // seeded, never shipped
	}

	rows := e.Reconcile([]types.Shipment{ship("张三", "1*白40oz")}, template, ledger.Ledger{})

	assert.Len(t, rows, 1)
	assert.Equal(t, "白底 40oz", rows[0].Name)
}

func TestReconcile_SortOrder(t *testing.T) {
	e := newTestEngine(nil)
	shipments := []types.Shipment{
		ship("张三", "1*蓝20oz"),
		ship("李四", "5*白40oz"),
		ship("王五", "9*压扁包装"),
		ship("王五", "3*礼盒"),
	}

	rows := e.Reconcile(shipments, nil, ledger.Ledger{})
	require.Len(t, rows, 4)

	// Packaging sorts last despite the highest shipped total; the rest are
	// ordered by shipped total descending.
	assert.Equal(t, "白底 40oz", rows[0].Name)
	assert.Equal(t, "礼盒", rows[1].Name)
	assert.Equal(t, "蓝底 20oz", rows[2].Name)
	assert.Equal(t, manifest.PackagingOnly, rows[3].Name)
}

func TestReconcile_TotalStockFromLedger(t *testing.T) {
	e := newTestEngine(nil)
	purchases := ledger.Ledger{
		"蓝底 20oz": &ledger.Counts{Total: 42, Signed: 40, Unsigned: 2},
	}

	rows := e.Reconcile([]types.Shipment{
		ship("张三", "1*蓝20oz+1*压扁包装"),
	}, nil, purchases)

	assert.Equal(t, 42, rowByName(t, rows, "蓝底 20oz").TotalStock)
	// Packaging rows report no stock figure.
	assert.Equal(t, "N/A", rowByName(t, rows, manifest.PackagingOnly).TotalStock)
}

func TestShippedCounts(t *testing.T) {
	e := newTestEngine(nil)
	shipments := []types.Shipment{
		ship("张三", "2*蓝20oz+1*白40oz(包装)"),
		ship("李四", "3*蓝20oz"),
	}

	counts := e.ShippedCounts(shipments)

	assert.Equal(t, 5, counts["蓝底 20oz"])
	assert.Equal(t, 1, counts["白底 40oz"])
}

func TestTallyRender(t *testing.T) {
	ta := newTally()
	assert.Equal(t, NoDataPlaceholder, ta.render())

	ta.add("张三", 2)
	ta.add("李四", 1)
	ta.add("张三", 3)
	assert.Equal(t, "张三(5), 李四(1)", ta.render())
}
