// Package tables implements the transformation tables a morphological
// dictionary carries besides its affixes: input/output substring conversion,
// break patterns, suggestion replacements, similarity groups, phonetic rules,
// compound rules and compound boundary patterns.
package tables

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// SubstrReplacer rewrites every occurrence of a table key inside a string
// with its replacement, preferring the longest key at each position. It backs
// the ICONV and OCONV conversions.
type SubstrReplacer struct {
	pairs []StringPairTable
}

// StringPairTable is one from/to rewrite pair.
type StringPairTable struct {
	From string
	To   string
}

// NewSubstrReplacer builds a replacer. Pairs with an empty From and
// duplicate keys (first wins) are dropped.
func NewSubstrReplacer(pairs []StringPairTable) *SubstrReplacer {
	kept := make([]StringPairTable, 0, len(pairs))
	seen := make(map[string]bool, len(pairs))
	for _, p := range pairs {
		if p.From == "" || seen[p.From] {
			continue
		}
		seen[p.From] = true
		kept = append(kept, p)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].From < kept[j].From })
	return &SubstrReplacer{pairs: kept}
}

// Replace rewrites s and returns the result. Replaced text is not rescanned.
func (r *SubstrReplacer) Replace(s string) string {
	if len(r.pairs) == 0 {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		match := r.findLongest(s[i:])
		if match == nil {
			_, sz := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+sz])
			i += sz
			continue
		}
		b.WriteString(match.To)
		i += len(match.From)
	}
	return b.String()
}

// findLongest returns the pair with the longest From that prefixes s.
func (r *SubstrReplacer) findLongest(s string) *StringPairTable {
	var best *StringPairTable
	for i := range r.pairs {
		p := &r.pairs[i]
		if len(p.From) > len(s) {
			continue
		}
		if strings.HasPrefix(s, p.From) {
			if best == nil || len(p.From) > len(best.From) {
				best = p
			}
		}
	}
	return best
}
