package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingxia/inventory-sync/internal/alias"
)

func newTestParser() *Parser {
	return NewParser(alias.NewDefaultResolver())
}

func TestParse_TwoItemsWithPackagingAnnotation(t *testing.T) {
	items := newTestParser().Parse("2*蓝20oz+1*白40oz(包装)")

	require.Len(t, items, 2)
	assert.Equal(t, LineItem{Product: "蓝底 20oz", Qty: 2, Packaged: false}, items[0])
	assert.Equal(t, LineItem{Product: "白底 40oz", Qty: 1, Packaged: true}, items[1])
}

func TestParse_PackagingOnly(t *testing.T) {
	items := newTestParser().Parse("3*压扁包装")

	require.Len(t, items, 1)
	assert.Equal(t, LineItem{Product: "压扁包装", Qty: 3, Packaged: true}, items[0])
}

func TestParse_PackagingOnlyWithoutMultiplier(t *testing.T) {
	items := newTestParser().Parse("压扁包装")

	require.Len(t, items, 1)
	assert.Equal(t, LineItem{Product: "压扁包装", Qty: 1, Packaged: true}, items[0])
}

func TestParse_GroupAppliesOuterTimesInnerMultiplier(t *testing.T) {
	items := newTestParser().Parse("(2*蓝20oz+1*白20oz)")

	require.Len(t, items, 2)
	assert.Equal(t, LineItem{Product: "蓝底 20oz", Qty: 2, Packaged: false}, items[0])
	assert.Equal(t, LineItem{Product: "白底 20oz", Qty: 1, Packaged: false}, items[1])

	items = newTestParser().Parse("3*(2*蓝20oz+白20oz)")

	require.Len(t, items, 2)
	assert.Equal(t, LineItem{Product: "蓝底 20oz", Qty: 6, Packaged: false}, items[0])
	assert.Equal(t, LineItem{Product: "白底 20oz", Qty: 3, Packaged: false}, items[1])
}

func TestParse_PlusInsideGroupIsProtected(t *testing.T) {
	// The '+' inside the group must not split the segment at the top level:
	// both grouped items carry the outer multiplier 2.
	items := newTestParser().Parse("2*(蓝20oz+白20oz)+1*粉20oz")

	require.Len(t, items, 3)
	assert.Equal(t, LineItem{Product: "蓝底 20oz", Qty: 2, Packaged: false}, items[0])
	assert.Equal(t, LineItem{Product: "白底 20oz", Qty: 2, Packaged: false}, items[1])
	assert.Equal(t, LineItem{Product: "粉底 20oz", Qty: 1, Packaged: false}, items[2])
}

func TestParse_MultiplicationGlyphsAndParensNormalized(t *testing.T) {
	got := newTestParser().Parse("2x蓝20oz+1X白40oz（包装）")
	want := newTestParser().Parse("2*蓝20oz+1*白40oz(包装)")

	assert.Equal(t, want, got)
}

func TestParse_WhitespaceStripped(t *testing.T) {
	items := newTestParser().Parse(" 2 * 蓝 20oz ")

	require.Len(t, items, 1)
	assert.Equal(t, LineItem{Product: "蓝底 20oz", Qty: 2, Packaged: false}, items[0])
}

func TestParse_UnparsableMultiplierDefaultsToOne(t *testing.T) {
	// "abc*" is not an integer; the segment is still resolved from its
	// original text with multiplier 1.
	items := newTestParser().Parse("abc*蓝20oz")

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Qty)
	assert.Equal(t, "蓝底 20oz", items[0].Product)
}

func TestParse_EmptySegmentsSkipped(t *testing.T) {
	items := newTestParser().Parse("2*蓝20oz++1*白20oz")

	require.Len(t, items, 2)
}

func TestParse_UnresolvableTokenDropped(t *testing.T) {
	items := newTestParser().Parse("2*神秘产品+1*蓝20oz")

	require.Len(t, items, 1)
	assert.Equal(t, "蓝底 20oz", items[0].Product)
}

func TestParse_EmptyString(t *testing.T) {
	assert.Empty(t, newTestParser().Parse(""))
}

func TestParse_PackagedKeywordStrippedBeforeLookup(t *testing.T) {
	// "蓝包装20oz" must resolve like "蓝20oz" and carry the packaged flag.
	items := newTestParser().Parse("2*蓝包装20oz")

	require.Len(t, items, 1)
	assert.Equal(t, LineItem{Product: "蓝底 20oz", Qty: 2, Packaged: true}, items[0])
}

func TestParse_WithPackagingVariant(t *testing.T) {
	items := newTestParser().Parse("1*白40oz带包装")

	require.Len(t, items, 1)
	assert.Equal(t, LineItem{Product: "白底 40oz", Qty: 1, Packaged: true}, items[0])
}

func TestParse_AssociativeOverConcatenation(t *testing.T) {
	// Parsing "A+B" must equal parsing A and B separately, for
	// independently parseable segments.
	p := newTestParser()

	cases := [][2]string{
		{"2*蓝20oz", "1*白40oz"},
		{"3*压扁包装", "2*礼盒"},
		{"1*SlimBottle", "4*粉40oz"},
	}
	for _, c := range cases {
		combined := p.Parse(c[0] + "+" + c[1])
		separate := append(p.Parse(c[0]), p.Parse(c[1])...)
		assert.Equal(t, sumByProduct(separate), sumByProduct(combined),
			"segments %q and %q", c[0], c[1])
	}
}

func sumByProduct(items []LineItem) map[string]int {
	sums := make(map[string]int)
	for _, it := range items {
		sums[it.Product] += it.Qty
	}
	return sums
}

func TestParse_DiagnosticsRecordUnresolvedTokens(t *testing.T) {
	diag := alias.NewDiagnostics()
	p := NewParser(alias.NewDefaultResolver().WithDiagnostics(diag))

	p.Parse("2*神秘产品+1*蓝20oz")
	p.Parse("1*神秘产品")

	require.Equal(t, []string{"神秘产品"}, diag.Unresolved())
	assert.Equal(t, 2, diag.Count("神秘产品"))
}

func TestSplitMultiplier(t *testing.T) {
	tests := []struct {
		in      string
		mult    int
		content string
	}{
		{"3*蓝20oz", 3, "蓝20oz"},
		{"蓝20oz", 1, "蓝20oz"},
		{"abc*蓝20oz", 1, "abc*蓝20oz"},
		{"-2*蓝20oz", -2, "蓝20oz"},
	}
	for _, tt := range tests {
		mult, content := splitMultiplier(tt.in)
		assert.Equal(t, tt.mult, mult, tt.in)
		assert.Equal(t, tt.content, content, tt.in)
	}
}

func TestProtectGroups(t *testing.T) {
	assert.Equal(t, "a+(b&c)", protectGroups("a+(b+c)"))
	assert.Equal(t, "a+b", protectGroups("a+b"))
	assert.Equal(t, "(a&b)+(c&d)", protectGroups("(a+b)+(c+d)"))
}
