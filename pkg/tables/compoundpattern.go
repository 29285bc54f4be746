package tables

import (
	"github.com/spellhound/spellhound/pkg/flagset"
)

// BoundaryChars is the concatenation of the end of a compound's left half
// and the start of its right half, split at Idx.
type BoundaryChars struct {
	Runes []rune
	Idx   int // boundary position inside Runes
}

// First returns the left-half part.
func (b BoundaryChars) First() []rune { return b.Runes[:b.Idx] }

// Second returns the right-half part.
func (b BoundaryChars) Second() []rune { return b.Runes[b.Idx:] }

// CompoundPattern is one CHECKCOMPOUNDPATTERN entry. Without a Replacement
// it forbids compounds whose boundary matches BoundaryChars (optionally
// restricted by per-half flags). With a Replacement it additionally drives
// the pattern-replacement splitter: an occurrence of Replacement in the
// surface word is virtually substituted by BoundaryChars before splitting.
type CompoundPattern struct {
	BoundaryChars  BoundaryChars
	Replacement    []rune
	FirstWordFlag  flagset.Flag
	SecondWordFlag flagset.Flag
	// MatchFirstOnlyUnaffixedOrZeroAffixed restricts the first-half match
	// to entries found without any form-changing affix.
	MatchFirstOnlyUnaffixedOrZeroAffixed bool
}
