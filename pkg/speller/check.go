package speller

import (
	"github.com/spellhound/spellhound/internal/casing"
	"github.com/spellhound/spellhound/pkg/affix"
	"github.com/spellhound/spellhound/pkg/dictionary"
	"github.com/spellhound/spellhound/pkg/flagset"
)

// Mode says where in a (possible) compound the word being affix-stripped
// sits. It tightens or relaxes which affixes and stems are acceptable.
type Mode int

const (
	// FullWord checks a standalone word.
	FullWord Mode = iota
	// AtCompoundBegin checks the first piece of a compound.
	AtCompoundBegin
	// AtCompoundEnd checks the last piece of a compound.
	AtCompoundEnd
	// AtCompoundMiddle checks an inner piece of a compound.
	AtCompoundMiddle
)

// hidden homonym policy: skipHidden excludes the internally inserted
// case-folded twins from matching.
const (
	acceptHidden = false
	skipHidden   = true
)

// checkWord checks all unaffixed and affixed readings of word and falls back
// to compound recognition. It returns the flag set of the accepted stem.
func (s *Speller) checkWord(word []rune, shape casing.Shape, skipHiddenHomonym bool) *flagset.Set {
	if res := s.checkSimpleWord(word, skipHiddenHomonym); res != nil {
		return res
	}
	if res := s.checkCompound(word, shape); res != nil {
		return &res.entry.Flags
	}
	return nil
}

// checkSimpleWord tries the plain dictionary reading first, then the affix
// stripping primitives in the fixed order the affix direction of the
// language dictates.
func (s *Speller) checkSimpleWord(word []rune, skipHiddenHomonym bool) *flagset.Set {
	d := s.d
	for _, we := range d.Words.EqualRange(string(word)) {
		if hasFlag(we.Flags, d.NeedAffixFlag) {
			continue
		}
		if hasFlag(we.Flags, d.CompoundOnlyInFlag) {
			continue
		}
		if skipHiddenHomonym && we.Flags.Contains(flagset.HiddenHomonym) {
			continue
		}
		return &we.Flags
	}
	if r := s.stripSuffixOnly(word, skipHiddenHomonym, FullWord); r.entry != nil {
		return &r.entry.Flags
	}
	if r := s.stripPrefixOnly(word, skipHiddenHomonym, FullWord); r.entry != nil {
		return &r.entry.Flags
	}
	if r := s.stripPrefixThenSuffix(word, skipHiddenHomonym, FullWord); r.entry != nil {
		return &r.entry.Flags
	}
	if r := s.stripPrefixThenSuffixCommutative(word, skipHiddenHomonym, FullWord); r.entry != nil {
		return &r.entry.Flags
	}
	if !d.ComplexPrefixes {
		if r := s.stripSuffixThenSuffix(word, skipHiddenHomonym); r != nil {
			return &r.Flags
		}
		if r := s.stripPrefixThen2Suffixes(word, skipHiddenHomonym); r != nil {
			return &r.Flags
		}
		if r := s.stripSuffixPrefixSuffix(word, skipHiddenHomonym); r != nil {
			return &r.Flags
		}
		// strip2SuffixesThenPrefix is slow and unused here
	} else {
		if r := s.stripPrefixThenPrefix(word, skipHiddenHomonym); r != nil {
			return &r.Flags
		}
		if r := s.stripSuffixThen2Prefixes(word, skipHiddenHomonym); r != nil {
			return &r.Flags
		}
		if r := s.stripPrefixSuffixPrefix(word, skipHiddenHomonym); r != nil {
			return &r.Flags
		}
		// strip2PrefixesThenSuffix is slow and unused here
	}
	return nil
}

// hasFlag is contains with the unset flag matching nothing.
func hasFlag(fs flagset.Set, f flagset.Flag) bool {
	return f != flagset.Unset && fs.Contains(f)
}

// prefixNotValid rejects a prefix entry for the given mode.
func (s *Speller) prefixNotValid(e *affix.Prefix, m Mode) bool {
	d := s.d
	if m == FullWord && hasFlag(e.ContFlags, d.CompoundOnlyInFlag) {
		return true
	}
	if m == AtCompoundEnd && !hasFlag(e.ContFlags, d.CompoundPermitFlag) {
		return true
	}
	if m != FullWord && hasFlag(e.ContFlags, d.CompoundForbidFlag) {
		return true
	}
	return false
}

// suffixNotValid rejects a suffix entry for the given mode.
func (s *Speller) suffixNotValid(e *affix.Suffix, m Mode) bool {
	d := s.d
	if m == FullWord && hasFlag(e.ContFlags, d.CompoundOnlyInFlag) {
		return true
	}
	if m == AtCompoundBegin && !hasFlag(e.ContFlags, d.CompoundPermitFlag) {
		return true
	}
	if m != FullWord && hasFlag(e.ContFlags, d.CompoundForbidFlag) {
		return true
	}
	return false
}

// outer affixes additionally may not demand a further affix.
func (s *Speller) outerPrefixNotValid(e *affix.Prefix, m Mode) bool {
	return s.prefixNotValid(e, m) || hasFlag(e.ContFlags, s.d.NeedAffixFlag)
}

func (s *Speller) outerSuffixNotValid(e *affix.Suffix, m Mode) bool {
	return s.suffixNotValid(e, m) || hasFlag(e.ContFlags, s.d.NeedAffixFlag)
}

func (s *Speller) prefixIsCircumfix(e *affix.Prefix) bool {
	return hasFlag(e.ContFlags, s.d.CircumfixFlag)
}

func (s *Speller) suffixIsCircumfix(e *affix.Suffix) bool {
	return hasFlag(e.ContFlags, s.d.CircumfixFlag)
}

// validInsideCompound reports whether flags admit this piece at the position
// the mode names.
func (s *Speller) validInsideCompound(flags flagset.Set, m Mode) bool {
	d := s.d
	switch m {
	case AtCompoundBegin:
		return hasFlag(flags, d.CompoundFlag) || hasFlag(flags, d.CompoundBeginFlag)
	case AtCompoundMiddle:
		return hasFlag(flags, d.CompoundFlag) || hasFlag(flags, d.CompoundMiddleFlag)
	case AtCompoundEnd:
		return hasFlag(flags, d.CompoundFlag) || hasFlag(flags, d.CompoundLastFlag)
	}
	return true
}

// wordEntryRejected folds the checks shared by every strip primitive's inner
// stem loop: compound-only stems outside compounds and hidden homonyms.
func (s *Speller) wordEntryRejected(we *dictionary.WordEntry, m Mode, skipHiddenHomonym bool) bool {
	if m == FullWord && hasFlag(we.Flags, s.d.CompoundOnlyInFlag) {
		return true
	}
	if skipHiddenHomonym && we.Flags.Contains(flagset.HiddenHomonym) {
		return true
	}
	return false
}
