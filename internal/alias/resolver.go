// =============================================================================
// Inventory Sync - Alias Resolver
// =============================================================================
//
// This package resolves the many human-typed surface forms found in warehouse
// manifest strings ("蓝20oz", "20oz蓝", "40白", "SlimBottle", ...) to one
// canonical product name per product family.
//
// RESOLUTION STRATEGY:
//   Candidate keys are tried longest-first against the token, so a short key
//   can never pre-empt a longer, more specific key that contains it as a
//   substring ("Slim" must not shadow "SlimBottle"). Matching is
//   case-sensitive substring containment. Callers are expected to strip
//   packaging markers before lookup.
//
//   If no key matches, resolution fails and the token contributes nothing to
//   any aggregate. This lossy behavior is deliberate; a Diagnostics sink can
//   be attached to surface the dropped tokens to the operator.
//
// =============================================================================

package alias

import (
	"sort"
	"strings"
)

// Table maps surface forms to canonical product names. It is injected
// configuration: the resolver never mutates it.
type Table map[string]string

// Resolver performs longest-key-first alias lookups against a fixed table.
type Resolver struct {
	table Table

	// keys holds the table keys sorted by descending length, precomputed so
	// every Resolve call scans them in the same order.
	keys []string

	// diag, when non-nil, records tokens that failed to resolve.
	diag *Diagnostics
}

// NewResolver builds a Resolver over the given table. The table is not
// copied; callers must not modify it afterwards.
func NewResolver(table Table) *Resolver {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	// Longest first; ties broken lexicographically so resolution order is
	// deterministic across runs.
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return &Resolver{table: table, keys: keys}
}

// NewDefaultResolver builds a Resolver over the built-in product table.
func NewDefaultResolver() *Resolver {
	return NewResolver(DefaultTable())
}

// WithDiagnostics attaches a sink that records every token Resolve fails to
// match. Returns the resolver for chaining.
func (r *Resolver) WithDiagnostics(d *Diagnostics) *Resolver {
	r.diag = d
	return r
}

// Resolve maps a cleaned token to its canonical product name.
// The boolean reports whether any alias matched.
func (r *Resolver) Resolve(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	for _, key := range r.keys {
		if strings.Contains(token, key) {
			return r.table[key], true
		}
	}
	if r.diag != nil {
		r.diag.Record(token)
	}
	return "", false
}

// =============================================================================
// DIAGNOSTICS
// =============================================================================

// Diagnostics collects tokens that failed alias resolution during a run.
// The default behavior of the pipeline is to drop such tokens silently;
// attaching a Diagnostics sink lets the caller decide fail-soft vs fail-loud.
type Diagnostics struct {
	seen  map[string]int
	order []string
}

// NewDiagnostics returns an empty sink.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{seen: make(map[string]int)}
}

// Record notes one failed lookup for the given token.
func (d *Diagnostics) Record(token string) {
	if _, ok := d.seen[token]; !ok {
		d.order = append(d.order, token)
	}
	d.seen[token]++
}

// Unresolved returns the distinct unresolved tokens in first-seen order.
func (d *Diagnostics) Unresolved() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Count returns how many times the given token failed to resolve.
func (d *Diagnostics) Count(token string) int {
	return d.seen[token]
}
