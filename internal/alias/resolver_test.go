package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_LongestKeyWins(t *testing.T) {
	r := NewResolver(Table{
		"Slim":       "WRONG",
		"SlimBottle": "Slim Bottle",
	})

	got, ok := r.Resolve("SlimBottle")
	require.True(t, ok)
	assert.Equal(t, "Slim Bottle", got)
}

func TestResolve_SubstringMatch(t *testing.T) {
	r := NewDefaultResolver()

	// The token may carry leftover text around the alias.
	got, ok := r.Resolve("蓝20oz带")
	require.True(t, ok)
	assert.Equal(t, "蓝底 20oz", got)
}

func TestResolve_SpellingVariantsShareOneIdentity(t *testing.T) {
	r := NewDefaultResolver()

	for _, token := range []string{"20oz蓝", "蓝20oz", "蓝底20oz"} {
		got, ok := r.Resolve(token)
		require.True(t, ok, token)
		assert.Equal(t, "蓝底 20oz", got, token)
	}
}

func TestResolve_CaseSensitive(t *testing.T) {
	r := NewDefaultResolver()

	_, ok := r.Resolve("slimbottle")
	assert.False(t, ok)
}

func TestResolve_NoMatch(t *testing.T) {
	r := NewDefaultResolver()

	_, ok := r.Resolve("不存在的产品")
	assert.False(t, ok)

	_, ok = r.Resolve("")
	assert.False(t, ok)
}

func TestResolve_DeterministicOrderOnEqualLength(t *testing.T) {
	// Two keys of the same length that both match: the lexicographically
	// smaller one wins, every run.
	r := NewResolver(Table{"ab": "first", "ba": "second"})

	for i := 0; i < 10; i++ {
		got, ok := r.Resolve("abba")
		require.True(t, ok)
		assert.Equal(t, "first", got)
	}
}

func TestDiagnostics(t *testing.T) {
	diag := NewDiagnostics()
	r := NewDefaultResolver().WithDiagnostics(diag)

	r.Resolve("未知A")
	r.Resolve("未知B")
	r.Resolve("未知A")
	r.Resolve("蓝20oz") // resolves, must not be recorded

	assert.Equal(t, []string{"未知A", "未知B"}, diag.Unresolved())
	assert.Equal(t, 2, diag.Count("未知A"))
	assert.Equal(t, 1, diag.Count("未知B"))
	assert.Equal(t, 0, diag.Count("蓝20oz"))
}

func TestDefaultTable_PackagingOnlyNotAnAlias(t *testing.T) {
	// The flattened-packaging product is synthesized by the manifest parser;
	// the alias table must not resolve it, or segments mentioning it would
	// be double counted.
	r := NewDefaultResolver()

	_, ok := r.Resolve("压扁")
	assert.False(t, ok)
}
