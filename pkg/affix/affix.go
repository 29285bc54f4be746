package affix

import (
	"github.com/spellhound/spellhound/pkg/flagset"
)

// Prefix is one entry of a PFX group: applying it to a root strips
// Stripping from the front and prepends Appending.
type Prefix struct {
	Flag         flagset.Flag
	CrossProduct bool
	Stripping    []rune
	Appending    []rune
	ContFlags    flagset.Set
	Condition    *Condition
}

// ToRoot undoes the prefix on a derived word: the leading Appending is
// replaced by Stripping. The caller guarantees word starts with Appending.
func (p *Prefix) ToRoot(word []rune) []rune {
	root := make([]rune, 0, len(word)-len(p.Appending)+len(p.Stripping))
	root = append(root, p.Stripping...)
	return append(root, word[len(p.Appending):]...)
}

// ToDerived applies the prefix to a root: the leading Stripping is replaced
// by Appending. The caller guarantees root starts with Stripping.
func (p *Prefix) ToDerived(root []rune) []rune {
	w := make([]rune, 0, len(root)-len(p.Stripping)+len(p.Appending))
	w = append(w, p.Appending...)
	return append(w, root[len(p.Stripping):]...)
}

// CheckCondition matches the entry condition against the start of root.
func (p *Prefix) CheckCondition(root []rune) bool {
	if p.Condition == nil {
		return true
	}
	return p.Condition.MatchPrefix(root)
}

// Modifying reports whether the entry changes the surface form at all.
func (p *Prefix) Modifying() bool {
	return len(p.Stripping) != 0 || len(p.Appending) != 0
}

// Suffix is one entry of an SFX group, the mirror image of Prefix acting on
// the end of the word.
type Suffix struct {
	Flag         flagset.Flag
	CrossProduct bool
	Stripping    []rune
	Appending    []rune
	ContFlags    flagset.Set
	Condition    *Condition
}

// ToRoot undoes the suffix on a derived word: the trailing Appending is
// replaced by Stripping. The caller guarantees word ends with Appending.
func (s *Suffix) ToRoot(word []rune) []rune {
	root := make([]rune, 0, len(word)-len(s.Appending)+len(s.Stripping))
	root = append(root, word[:len(word)-len(s.Appending)]...)
	return append(root, s.Stripping...)
}

// ToDerived applies the suffix to a root: the trailing Stripping is replaced
// by Appending. The caller guarantees root ends with Stripping.
func (s *Suffix) ToDerived(root []rune) []rune {
	w := make([]rune, 0, len(root)-len(s.Stripping)+len(s.Appending))
	w = append(w, root[:len(root)-len(s.Stripping)]...)
	return append(w, s.Appending...)
}

// CheckCondition matches the entry condition against the end of root.
func (s *Suffix) CheckCondition(root []rune) bool {
	if s.Condition == nil {
		return true
	}
	return s.Condition.MatchSuffix(root)
}

// Modifying reports whether the entry changes the surface form at all.
func (s *Suffix) Modifying() bool {
	return len(s.Stripping) != 0 || len(s.Appending) != 0
}
