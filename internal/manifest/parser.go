// =============================================================================
// Inventory Sync - Manifest Parser
// =============================================================================
//
// This package decodes the free-form, human-typed shipment manifest strings
// from the warehouse into structured line items. The manifests form a small
// mini-language, e.g.:
//
//   "2*蓝20oz+1*白40oz(包装)"        -> 2x blue 20oz, 1x white 40oz packaged
//   "3*压扁包装"                     -> 3x flattened packaging (packaging-only)
//   "2*(蓝20oz+白20oz)"              -> 2x blue 20oz, 2x white 20oz
//   "(2*蓝20oz+1*白20oz)"            -> grouped alternatives, inner multipliers
//
// LANGUAGE RULES:
//   - 'x', 'X' and '*' are interchangeable multiplication glyphs
//   - full-width and half-width parentheses are interchangeable
//   - '+' separates top-level line items, but a '+' inside a (...) group
//     belongs to the group, not to the top level
//   - a leading "<int>*" is a multiplier (default 1); an unparsable
//     multiplier is ignored rather than raised
//   - "包装" / "带包装" mark an item as packaged and are stripped before the
//     alias lookup
//   - "压扁包装" anywhere in the string is the packaging-only synthetic
//     product, always packaged
//   - at most one level of parenthesis nesting occurs in practice, so a
//     depth-tracking scan plus one recursive split is sufficient; a general
//     grammar is deliberately not used
//
// Parsing is a pure function: no shared mutable state beyond the injected
// alias resolver, safe to call per record from concurrent workers. One
// malformed manifest degrades only its own record.
//
// =============================================================================

package manifest

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mingxia/inventory-sync/internal/alias"
)

// PackagingOnly is the canonical name of the synthetic packaging-only
// product ("flattened packaging"). It is emitted by the parser directly and
// never via the alias table.
const PackagingOnly = "压扁包装"

// packagingOnlyRe extracts the optional multiplier of the packaging-only
// marker, e.g. "3*压扁包装" or "3压扁包装".
var packagingOnlyRe = regexp.MustCompile(`(\d+)\*?压扁包装`)

// LineItem is one decoded manifest entry. Ephemeral: consumed immediately by
// the aggregator that invoked the parser, never persisted.
type LineItem struct {
	Product  string
	Qty      int
	Packaged bool
}

// Parser decodes manifest strings using an injected alias resolver.
type Parser struct {
	resolver *alias.Resolver
}

// NewParser builds a Parser around the given alias resolver.
func NewParser(resolver *alias.Resolver) *Parser {
	return &Parser{resolver: resolver}
}

// Parse decodes one manifest string into line items. Unresolvable tokens are
// dropped (the resolver's diagnostics sink sees them, if attached); Parse
// itself never fails.
func (p *Parser) Parse(details string) []LineItem {
	var items []LineItem

	s := normalize(details)

	// The packaging-only marker is detected against the whole string,
	// independent of the '+'-split below.
	if strings.Contains(s, PackagingOnly) {
		qty := 1
		if m := packagingOnlyRe.FindStringSubmatch(s); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				qty = n
			}
		}
		items = append(items, LineItem{Product: PackagingOnly, Qty: qty, Packaged: true})
	}

	// Split top-level segments on '+' at parenthesis depth 0. A '+' inside a
	// group is re-tagged to '&' first so the split cannot tear a group apart;
	// the tag is restored per segment after the multiplier has been peeled.
	for _, part := range strings.Split(protectGroups(s), "+") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		mult, content := splitMultiplier(part)
		content = strings.ReplaceAll(content, "&", "+")

		inner, prefix, grouped := extractGroup(content)
		if !grouped {
			if it, ok := p.resolveItem(content, mult); ok {
				items = append(items, it)
			}
			continue
		}

		// A group whose content is nothing but a packaging marker is an
		// annotation on the text before it ("白40oz(包装)"), not a list of
		// alternatives.
		if prefix != "" && stripPackaging(inner) == "" {
			if it, ok := p.resolveItem(prefix+inner, mult); ok {
				items = append(items, it)
			}
			continue
		}

		for _, sub := range strings.Split(inner, "+") {
			subMult, subContent := splitMultiplier(sub)
			if it, ok := p.resolveItem(subContent, mult*subMult); ok {
				items = append(items, it)
			}
		}
	}

	return items
}

// resolveItem decodes a single item token: packaging flag from the presence
// of a packaging keyword, alias lookup on the cleaned remainder.
func (p *Parser) resolveItem(token string, qty int) (LineItem, bool) {
	packaged := strings.Contains(token, "包装")
	name, ok := p.resolver.Resolve(stripPackaging(token))
	return LineItem{Product: name, Qty: qty, Packaged: packaged}, ok
}

// =============================================================================
// TOKENIZER HELPERS
// =============================================================================

// normalize unifies multiplication glyphs and parentheses and strips
// whitespace, so the rest of the parser sees one canonical spelling.
func normalize(s string) string {
	r := strings.NewReplacer(
		"x", "*", "X", "*",
		"（", "(", "）", ")",
		" ", "",
	)
	return r.Replace(s)
}

// protectGroups re-tags every '+' at parenthesis depth > 0 to '&' in a
// single left-to-right scan, so the top-level split on '+' leaves groups
// intact.
func protectGroups(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	depth := 0
	for _, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		}
		if ch == '+' && depth > 0 {
			b.WriteByte('&')
		} else {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// splitMultiplier peels a leading "<int>*" multiplier off a segment. An
// unparsable multiplier is ignored: the segment is returned unchanged with
// multiplier 1, so alias resolution still sees the original text.
func splitMultiplier(part string) (int, string) {
	idx := strings.Index(part, "*")
	if idx < 0 {
		return 1, part
	}
	n, err := strconv.Atoi(part[:idx])
	if err != nil {
		return 1, part
	}
	return n, part[idx+1:]
}

// extractGroup finds the first parenthesized group in content. It returns
// the group's inner text, the text before the group, and whether a group was
// found at all.
func extractGroup(content string) (inner, prefix string, ok bool) {
	open := strings.Index(content, "(")
	if open < 0 {
		return "", "", false
	}
	end := strings.Index(content[open:], ")")
	if end < 0 {
		// Unbalanced group; treat everything after '(' as the inner text so
		// the record still contributes what it can.
		return content[open+1:], content[:open], true
	}
	return content[open+1 : open+end], content[:open], true
}

// stripPackaging removes the packaging markers so they cannot interfere with
// alias matching ("蓝包装20oz" must match like "蓝20oz").
func stripPackaging(s string) string {
	s = strings.ReplaceAll(s, "带包装", "")
	return strings.ReplaceAll(s, "包装", "")
}
