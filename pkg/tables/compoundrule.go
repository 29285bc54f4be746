package tables

import (
	"github.com/spellhound/spellhound/pkg/flagset"
)

// quantifier codes inside a compound rule; they share the code space with
// real flags and are therefore excluded from the aggregate flag set.
const (
	ruleOptional = flagset.Flag('?')
	ruleZeroPlus = flagset.Flag('*')
)

// CompoundRuleTable holds COMPOUNDRULE patterns: sequences of flags where a
// flag may be followed by '?' or '*'. A decomposition of a word into stems
// matches a rule when the sequence of stem flag sets matches the pattern.
type CompoundRuleTable struct {
	rules    [][]flagset.Flag
	allFlags flagset.Set
}

// NewCompoundRuleTable collects the rules and the union of their flags.
func NewCompoundRuleTable(rules [][]flagset.Flag) *CompoundRuleTable {
	t := &CompoundRuleTable{rules: rules}
	var all []flagset.Flag
	for _, r := range rules {
		for _, f := range r {
			if f == ruleOptional || f == ruleZeroPlus {
				continue
			}
			all = append(all, f)
		}
	}
	t.allFlags = flagset.New(all...)
	return t
}

// Empty reports whether no rules are present.
func (t *CompoundRuleTable) Empty() bool { return t == nil || len(t.rules) == 0 }

// HasAnyOfFlags reports whether fs intersects the union of all rule flags.
func (t *CompoundRuleTable) HasAnyOfFlags(fs flagset.Set) bool {
	return t.allFlags.Intersects(fs)
}

// MatchAnyRule reports whether the stem flag sets in data match any rule.
func (t *CompoundRuleTable) MatchAnyRule(data []flagset.Set) bool {
	for _, r := range t.rules {
		if matchFlagRegex(data, r) {
			return true
		}
	}
	return false
}

// matchFlagRegex runs the ?/* pattern against data with an explicit
// backtracking stack.
func matchFlagRegex(data []flagset.Set, pattern []flagset.Flag) bool {
	type state struct{ di, pi int }
	stack := []state{{0, 0}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		di, pi := top.di, top.pi
		if pi == len(pattern) {
			if di == len(data) {
				return true
			}
			continue
		}
		var quant flagset.Flag
		if pi+1 < len(pattern) {
			quant = pattern[pi+1]
		}
		switch quant {
		case ruleOptional:
			stack = append(stack, state{di, pi + 2})
			if di != len(data) && data[di].Contains(pattern[pi]) {
				stack = append(stack, state{di + 1, pi + 2})
			}
		case ruleZeroPlus:
			stack = append(stack, state{di, pi + 2})
			if di != len(data) && data[di].Contains(pattern[pi]) {
				stack = append(stack, state{di + 1, pi})
			}
		default:
			if di != len(data) && data[di].Contains(pattern[pi]) {
				stack = append(stack, state{di + 1, pi + 1})
			}
		}
	}
	return false
}
