package speller

import (
	"github.com/spellhound/spellhound/pkg/affix"
	"github.com/spellhound/spellhound/pkg/dictionary"
)

// Results of the stripping primitives. A nil entry means no reading was
// found. The affix references are kept for the compound checker, which needs
// to know which entries produced the reading.
type stripPfxResult struct {
	entry *dictionary.WordEntry
	pfx   *affix.Prefix
}

type stripSfxResult struct {
	entry *dictionary.WordEntry
	sfx   *affix.Suffix
}

type stripCrossResult struct {
	entry *dictionary.WordEntry
	sfx   *affix.Suffix
	pfx   *affix.Prefix
}

// stripPrefixOnly finds a reading of word as prefix + stem.
func (s *Speller) stripPrefixOnly(word []rune, skipHiddenHomonym bool, m Mode) (res stripPfxResult) {
	s.d.Prefixes.ForEachPrefixOf(word, func(e *affix.Prefix) bool {
		if s.outerPrefixNotValid(e, m) {
			return true
		}
		if s.prefixIsCircumfix(e) {
			return true
		}
		root := e.ToRoot(word)
		if !e.CheckCondition(root) {
			return true
		}
		for _, we := range s.d.Words.EqualRange(string(root)) {
			if !we.Flags.Contains(e.Flag) {
				continue
			}
			if s.wordEntryRejected(we, m, skipHiddenHomonym) {
				continue
			}
			if !s.validInsideCompound(we.Flags, m) && !s.validInsideCompound(e.ContFlags, m) {
				continue
			}
			res = stripPfxResult{we, e}
			return false
		}
		return true
	})
	return res
}

// stripSuffixOnly finds a reading of word as stem + suffix.
func (s *Speller) stripSuffixOnly(word []rune, skipHiddenHomonym bool, m Mode) (res stripSfxResult) {
	s.d.Suffixes.ForEachSuffixOf(word, func(e *affix.Suffix) bool {
		if s.outerSuffixNotValid(e, m) {
			return true
		}
		if len(e.Appending) != 0 && m == AtCompoundEnd && hasFlag(e.ContFlags, s.d.CompoundOnlyInFlag) {
			return true
		}
		if s.suffixIsCircumfix(e) {
			return true
		}
		root := e.ToRoot(word)
		if !e.CheckCondition(root) {
			return true
		}
		for _, we := range s.d.Words.EqualRange(string(root)) {
			if !we.Flags.Contains(e.Flag) {
				continue
			}
			if s.wordEntryRejected(we, m, skipHiddenHomonym) {
				continue
			}
			if !s.validInsideCompound(we.Flags, m) && !s.validInsideCompound(e.ContFlags, m) {
				continue
			}
			res = stripSfxResult{we, e}
			return false
		}
		return true
	})
	return res
}

// stripPrefixThenSuffix accepts a word derived by first suffixing, then
// prefixing the root. Stripping runs in reverse: prefix is the outer affix.
func (s *Speller) stripPrefixThenSuffix(word []rune, skipHiddenHomonym bool, m Mode) (res stripCrossResult) {
	s.d.Prefixes.ForEachPrefixOf(word, func(pe *affix.Prefix) bool {
		if !pe.CrossProduct {
			return true
		}
		if s.outerPrefixNotValid(pe, m) {
			return true
		}
		mid := pe.ToRoot(word)
		if !pe.CheckCondition(mid) {
			return true
		}
		res = s.stripPfxThenSfx2(pe, mid, skipHiddenHomonym, m)
		return res.entry == nil
	})
	return res
}

func (s *Speller) stripPfxThenSfx2(pe *affix.Prefix, word []rune, skipHiddenHomonym bool, m Mode) (res stripCrossResult) {
	s.d.Suffixes.ForEachSuffixOf(word, func(se *affix.Suffix) bool {
		if !se.CrossProduct {
			return true
		}
		if s.suffixNotValid(se, m) {
			return true
		}
		if s.prefixIsCircumfix(pe) != s.suffixIsCircumfix(se) {
			return true
		}
		root := se.ToRoot(word)
		if !se.CheckCondition(root) {
			return true
		}
		for _, we := range s.d.Words.EqualRange(string(root)) {
			if !se.ContFlags.Contains(pe.Flag) && !we.Flags.Contains(pe.Flag) {
				continue
			}
			if !we.Flags.Contains(se.Flag) {
				continue
			}
			if s.wordEntryRejected(we, m, skipHiddenHomonym) {
				continue
			}
			if !s.validInsideCompound(we.Flags, m) &&
				!s.validInsideCompound(se.ContFlags, m) &&
				!s.validInsideCompound(pe.ContFlags, m) {
				continue
			}
			res = stripCrossResult{we, se, pe}
			return false
		}
		return true
	})
	return res
}

// stripSuffixThenPrefix accepts a word derived by first prefixing, then
// suffixing the root. The suffix is the outer affix here.
func (s *Speller) stripSuffixThenPrefix(word []rune, skipHiddenHomonym bool, m Mode) (res stripCrossResult) {
	s.d.Suffixes.ForEachSuffixOf(word, func(se *affix.Suffix) bool {
		if !se.CrossProduct {
			return true
		}
		if s.outerSuffixNotValid(se, m) {
			return true
		}
		mid := se.ToRoot(word)
		if !se.CheckCondition(mid) {
			return true
		}
		res = s.stripSfxThenPfx2(se, mid, skipHiddenHomonym, m)
		return res.entry == nil
	})
	return res
}

func (s *Speller) stripSfxThenPfx2(se *affix.Suffix, word []rune, skipHiddenHomonym bool, m Mode) (res stripCrossResult) {
	s.d.Prefixes.ForEachPrefixOf(word, func(pe *affix.Prefix) bool {
		if !pe.CrossProduct {
			return true
		}
		if s.prefixNotValid(pe, m) {
			return true
		}
		if s.prefixIsCircumfix(pe) != s.suffixIsCircumfix(se) {
			return true
		}
		root := pe.ToRoot(word)
		if !pe.CheckCondition(root) {
			return true
		}
		for _, we := range s.d.Words.EqualRange(string(root)) {
			if !pe.ContFlags.Contains(se.Flag) && !we.Flags.Contains(se.Flag) {
				continue
			}
			if !we.Flags.Contains(pe.Flag) {
				continue
			}
			if s.wordEntryRejected(we, m, skipHiddenHomonym) {
				continue
			}
			if !s.validInsideCompound(we.Flags, m) &&
				!s.validInsideCompound(se.ContFlags, m) &&
				!s.validInsideCompound(pe.ContFlags, m) {
				continue
			}
			res = stripCrossResult{we, se, pe}
			return false
		}
		return true
	})
	return res
}

// stripPrefixThenSuffixCommutative accepts prefix+suffix words where either
// affix may validate the other, so the derivation order does not matter.
// The two halves may not both demand a further affix.
func (s *Speller) stripPrefixThenSuffixCommutative(word []rune, skipHiddenHomonym bool, m Mode) (res stripCrossResult) {
	s.d.Prefixes.ForEachPrefixOf(word, func(pe *affix.Prefix) bool {
		if !pe.CrossProduct {
			return true
		}
		if s.prefixNotValid(pe, m) {
			return true
		}
		mid := pe.ToRoot(word)
		if !pe.CheckCondition(mid) {
			return true
		}
		res = s.stripPfxThenSfxComm2(pe, mid, skipHiddenHomonym, m)
		return res.entry == nil
	})
	return res
}

func (s *Speller) stripPfxThenSfxComm2(pe *affix.Prefix, word []rune, skipHiddenHomonym bool, m Mode) (res stripCrossResult) {
	hasNeedAffixPe := hasFlag(pe.ContFlags, s.d.NeedAffixFlag)
	isCircumfixPe := s.prefixIsCircumfix(pe)

	s.d.Suffixes.ForEachSuffixOf(word, func(se *affix.Suffix) bool {
		if !se.CrossProduct {
			return true
		}
		if s.suffixNotValid(se, m) {
			return true
		}
		hasNeedAffixSe := hasFlag(se.ContFlags, s.d.NeedAffixFlag)
		if hasNeedAffixPe && hasNeedAffixSe {
			return true
		}
		if isCircumfixPe != s.suffixIsCircumfix(se) {
			return true
		}
		root := se.ToRoot(word)
		if !se.CheckCondition(root) {
			return true
		}
		for _, we := range s.d.Words.EqualRange(string(root)) {
			validCrossPeOuter := !hasNeedAffixPe &&
				we.Flags.Contains(se.Flag) &&
				(se.ContFlags.Contains(pe.Flag) || we.Flags.Contains(pe.Flag))

			validCrossSeOuter := !hasNeedAffixSe &&
				we.Flags.Contains(pe.Flag) &&
				(pe.ContFlags.Contains(se.Flag) || we.Flags.Contains(se.Flag))

			if !validCrossPeOuter && !validCrossSeOuter {
				continue
			}
			if s.wordEntryRejected(we, m, skipHiddenHomonym) {
				continue
			}
			if !s.validInsideCompound(we.Flags, m) &&
				!s.validInsideCompound(se.ContFlags, m) &&
				!s.validInsideCompound(pe.ContFlags, m) {
				continue
			}
			res = stripCrossResult{we, se, pe}
			return false
		}
		return true
	})
	return res
}

// stripSuffixThenSuffix strips two suffixes. The outer one must appear in
// some entry's continuation flags or no work is possible.
func (s *Speller) stripSuffixThenSuffix(word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	if !s.d.Suffixes.HasContinuationFlags() {
		return nil
	}
	s.d.Suffixes.ForEachSuffixOf(word, func(se1 *affix.Suffix) bool {
		if !s.d.Suffixes.HasContinuationFlag(se1.Flag) {
			return true
		}
		if s.outerSuffixNotValid(se1, FullWord) {
			return true
		}
		if s.suffixIsCircumfix(se1) {
			return true
		}
		mid := se1.ToRoot(word)
		if !se1.CheckCondition(mid) {
			return true
		}
		res = s.stripSfxThenSfx2(se1, mid, skipHiddenHomonym)
		return res == nil
	})
	return res
}

func (s *Speller) stripSfxThenSfx2(se1 *affix.Suffix, word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	s.d.Suffixes.ForEachSuffixOf(word, func(se2 *affix.Suffix) bool {
		if !se2.ContFlags.Contains(se1.Flag) {
			return true
		}
		if s.suffixNotValid(se2, FullWord) {
			return true
		}
		if s.suffixIsCircumfix(se2) {
			return true
		}
		root := se2.ToRoot(word)
		if !se2.CheckCondition(root) {
			return true
		}
		for _, we := range s.d.Words.EqualRange(string(root)) {
			if !we.Flags.Contains(se2.Flag) {
				continue
			}
			if s.wordEntryRejected(we, FullWord, skipHiddenHomonym) {
				continue
			}
			res = we
			return false
		}
		return true
	})
	return res
}

// stripPrefixThenPrefix strips two prefixes, for complex-prefix languages.
func (s *Speller) stripPrefixThenPrefix(word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	if !s.d.Prefixes.HasContinuationFlags() {
		return nil
	}
	s.d.Prefixes.ForEachPrefixOf(word, func(pe1 *affix.Prefix) bool {
		if !s.d.Prefixes.HasContinuationFlag(pe1.Flag) {
			return true
		}
		if s.outerPrefixNotValid(pe1, FullWord) {
			return true
		}
		if s.prefixIsCircumfix(pe1) {
			return true
		}
		mid := pe1.ToRoot(word)
		if !pe1.CheckCondition(mid) {
			return true
		}
		res = s.stripPfxThenPfx2(pe1, mid, skipHiddenHomonym)
		return res == nil
	})
	return res
}

func (s *Speller) stripPfxThenPfx2(pe1 *affix.Prefix, word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	s.d.Prefixes.ForEachPrefixOf(word, func(pe2 *affix.Prefix) bool {
		if !pe2.ContFlags.Contains(pe1.Flag) {
			return true
		}
		if s.prefixNotValid(pe2, FullWord) {
			return true
		}
		if s.prefixIsCircumfix(pe2) {
			return true
		}
		root := pe2.ToRoot(word)
		if !pe2.CheckCondition(root) {
			return true
		}
		for _, we := range s.d.Words.EqualRange(string(root)) {
			if !we.Flags.Contains(pe2.Flag) {
				continue
			}
			if s.wordEntryRejected(we, FullWord, skipHiddenHomonym) {
				continue
			}
			res = we
			return false
		}
		return true
	})
	return res
}

// stripPrefixThen2Suffixes strips an outer prefix and two suffixes.
func (s *Speller) stripPrefixThen2Suffixes(word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	if !s.d.Suffixes.HasContinuationFlags() {
		return nil
	}
	s.d.Prefixes.ForEachPrefixOf(word, func(pe1 *affix.Prefix) bool {
		if !pe1.CrossProduct {
			return true
		}
		if s.outerPrefixNotValid(pe1, FullWord) {
			return true
		}
		mid1 := pe1.ToRoot(word)
		if !pe1.CheckCondition(mid1) {
			return true
		}
		stopped := s.d.Suffixes.ForEachSuffixOf(mid1, func(se1 *affix.Suffix) bool {
			if !s.d.Suffixes.HasContinuationFlag(se1.Flag) {
				return true
			}
			if !se1.CrossProduct {
				return true
			}
			if s.suffixNotValid(se1, FullWord) {
				return true
			}
			if s.prefixIsCircumfix(pe1) != s.suffixIsCircumfix(se1) {
				return true
			}
			mid2 := se1.ToRoot(mid1)
			if !se1.CheckCondition(mid2) {
				return true
			}
			res = s.stripPfx2Sfx3(pe1, se1, mid2, skipHiddenHomonym)
			return res == nil
		})
		return !stopped
	})
	return res
}

func (s *Speller) stripPfx2Sfx3(pe1 *affix.Prefix, se1 *affix.Suffix, word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	s.d.Suffixes.ForEachSuffixOf(word, func(se2 *affix.Suffix) bool {
		if !se2.ContFlags.Contains(se1.Flag) {
			return true
		}
		if s.suffixNotValid(se2, FullWord) {
			return true
		}
		if s.suffixIsCircumfix(se2) {
			return true
		}
		root := se2.ToRoot(word)
		if !se2.CheckCondition(root) {
			return true
		}
		for _, we := range s.d.Words.EqualRange(string(root)) {
			if !se1.ContFlags.Contains(pe1.Flag) && !we.Flags.Contains(pe1.Flag) {
				continue
			}
			if !we.Flags.Contains(se2.Flag) {
				continue
			}
			if s.wordEntryRejected(we, FullWord, skipHiddenHomonym) {
				continue
			}
			res = we
			return false
		}
		return true
	})
	return res
}

// stripSuffixPrefixSuffix strips suffix + prefix + suffix, the circumfix
// style interleaving.
func (s *Speller) stripSuffixPrefixSuffix(word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	if !s.d.Suffixes.HasContinuationFlags() && !s.d.Prefixes.HasContinuationFlags() {
		return nil
	}
	s.d.Suffixes.ForEachSuffixOf(word, func(se1 *affix.Suffix) bool {
		if !s.d.Suffixes.HasContinuationFlag(se1.Flag) &&
			!s.d.Prefixes.HasContinuationFlag(se1.Flag) {
			return true
		}
		if !se1.CrossProduct {
			return true
		}
		if s.outerSuffixNotValid(se1, FullWord) {
			return true
		}
		mid1 := se1.ToRoot(word)
		if !se1.CheckCondition(mid1) {
			return true
		}
		stopped := s.d.Prefixes.ForEachPrefixOf(mid1, func(pe1 *affix.Prefix) bool {
			if !pe1.CrossProduct {
				return true
			}
			if s.prefixNotValid(pe1, FullWord) {
				return true
			}
			mid2 := pe1.ToRoot(mid1)
			if !pe1.CheckCondition(mid2) {
				return true
			}
			res = s.stripSPS3(se1, pe1, mid2, skipHiddenHomonym)
			return res == nil
		})
		return !stopped
	})
	return res
}

func (s *Speller) stripSPS3(se1 *affix.Suffix, pe1 *affix.Prefix, word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	s.d.Suffixes.ForEachSuffixOf(word, func(se2 *affix.Suffix) bool {
		if !se2.CrossProduct {
			return true
		}
		if !se2.ContFlags.Contains(se1.Flag) && !pe1.ContFlags.Contains(se1.Flag) {
			return true
		}
		if s.suffixNotValid(se2, FullWord) {
			return true
		}
		circ1ok := (s.prefixIsCircumfix(pe1) == s.suffixIsCircumfix(se1)) && !s.suffixIsCircumfix(se2)
		circ2ok := (s.prefixIsCircumfix(pe1) == s.suffixIsCircumfix(se2)) && !s.suffixIsCircumfix(se1)
		if !circ1ok && !circ2ok {
			return true
		}
		root := se2.ToRoot(word)
		if !se2.CheckCondition(root) {
			return true
		}
		for _, we := range s.d.Words.EqualRange(string(root)) {
			if !se2.ContFlags.Contains(pe1.Flag) && !we.Flags.Contains(pe1.Flag) {
				continue
			}
			if !we.Flags.Contains(se2.Flag) {
				continue
			}
			if s.wordEntryRejected(we, FullWord, skipHiddenHomonym) {
				continue
			}
			res = we
			return false
		}
		return true
	})
	return res
}

// strip2SuffixesThenPrefix strips two suffixes and a prefix. It is kept as
// an opt-in primitive; checkSimpleWord does not call it.
func (s *Speller) strip2SuffixesThenPrefix(word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	if !s.d.Suffixes.HasContinuationFlags() && !s.d.Prefixes.HasContinuationFlags() {
		return nil
	}
	s.d.Suffixes.ForEachSuffixOf(word, func(se1 *affix.Suffix) bool {
		if !s.d.Suffixes.HasContinuationFlag(se1.Flag) &&
			!s.d.Prefixes.HasContinuationFlag(se1.Flag) {
			return true
		}
		if s.outerSuffixNotValid(se1, FullWord) {
			return true
		}
		if s.suffixIsCircumfix(se1) {
			return true
		}
		mid1 := se1.ToRoot(word)
		if !se1.CheckCondition(mid1) {
			return true
		}
		stopped := s.d.Suffixes.ForEachSuffixOf(mid1, func(se2 *affix.Suffix) bool {
			if !se2.CrossProduct {
				return true
			}
			if s.suffixNotValid(se2, FullWord) {
				return true
			}
			mid2 := se2.ToRoot(mid1)
			if !se2.CheckCondition(mid2) {
				return true
			}
			res = s.strip2SfxPfx3(se1, se2, mid2, skipHiddenHomonym)
			return res == nil
		})
		return !stopped
	})
	return res
}

func (s *Speller) strip2SfxPfx3(se1, se2 *affix.Suffix, word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	s.d.Prefixes.ForEachPrefixOf(word, func(pe1 *affix.Prefix) bool {
		if !pe1.CrossProduct {
			return true
		}
		if !se2.ContFlags.Contains(se1.Flag) && !pe1.ContFlags.Contains(se1.Flag) {
			return true
		}
		if s.prefixNotValid(pe1, FullWord) {
			return true
		}
		if s.suffixIsCircumfix(se2) != s.prefixIsCircumfix(pe1) {
			return true
		}
		root := pe1.ToRoot(word)
		if !pe1.CheckCondition(root) {
			return true
		}
		for _, we := range s.d.Words.EqualRange(string(root)) {
			if !pe1.ContFlags.Contains(se2.Flag) && !we.Flags.Contains(se2.Flag) {
				continue
			}
			if !we.Flags.Contains(pe1.Flag) {
				continue
			}
			if s.wordEntryRejected(we, FullWord, skipHiddenHomonym) {
				continue
			}
			res = we
			return false
		}
		return true
	})
	return res
}

// stripSuffixThen2Prefixes strips an outer suffix and two prefixes, for
// complex-prefix languages.
func (s *Speller) stripSuffixThen2Prefixes(word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	if !s.d.Prefixes.HasContinuationFlags() {
		return nil
	}
	s.d.Suffixes.ForEachSuffixOf(word, func(se1 *affix.Suffix) bool {
		if !se1.CrossProduct {
			return true
		}
		if s.outerSuffixNotValid(se1, FullWord) {
			return true
		}
		mid1 := se1.ToRoot(word)
		if !se1.CheckCondition(mid1) {
			return true
		}
		stopped := s.d.Prefixes.ForEachPrefixOf(mid1, func(pe1 *affix.Prefix) bool {
			if !s.d.Prefixes.HasContinuationFlag(pe1.Flag) {
				return true
			}
			if !pe1.CrossProduct {
				return true
			}
			if s.prefixNotValid(pe1, FullWord) {
				return true
			}
			if s.suffixIsCircumfix(se1) != s.prefixIsCircumfix(pe1) {
				return true
			}
			mid2 := pe1.ToRoot(mid1)
			if !pe1.CheckCondition(mid2) {
				return true
			}
			res = s.stripSfx2Pfx3(se1, pe1, mid2, skipHiddenHomonym)
			return res == nil
		})
		return !stopped
	})
	return res
}

func (s *Speller) stripSfx2Pfx3(se1 *affix.Suffix, pe1 *affix.Prefix, word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	s.d.Prefixes.ForEachPrefixOf(word, func(pe2 *affix.Prefix) bool {
		if !pe2.ContFlags.Contains(pe1.Flag) {
			return true
		}
		if s.prefixNotValid(pe2, FullWord) {
			return true
		}
		if s.prefixIsCircumfix(pe2) {
			return true
		}
		root := pe2.ToRoot(word)
		if !pe2.CheckCondition(root) {
			return true
		}
		for _, we := range s.d.Words.EqualRange(string(root)) {
			if !pe1.ContFlags.Contains(se1.Flag) && !we.Flags.Contains(se1.Flag) {
				continue
			}
			if !we.Flags.Contains(pe2.Flag) {
				continue
			}
			if s.wordEntryRejected(we, FullWord, skipHiddenHomonym) {
				continue
			}
			res = we
			return false
		}
		return true
	})
	return res
}

// stripPrefixSuffixPrefix strips prefix + suffix + prefix, the complex
// prefix mirror of stripSuffixPrefixSuffix.
func (s *Speller) stripPrefixSuffixPrefix(word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	if !s.d.Prefixes.HasContinuationFlags() && !s.d.Suffixes.HasContinuationFlags() {
		return nil
	}
	s.d.Prefixes.ForEachPrefixOf(word, func(pe1 *affix.Prefix) bool {
		if !s.d.Prefixes.HasContinuationFlag(pe1.Flag) &&
			!s.d.Suffixes.HasContinuationFlag(pe1.Flag) {
			return true
		}
		if !pe1.CrossProduct {
			return true
		}
		if s.outerPrefixNotValid(pe1, FullWord) {
			return true
		}
		mid1 := pe1.ToRoot(word)
		if !pe1.CheckCondition(mid1) {
			return true
		}
		stopped := s.d.Suffixes.ForEachSuffixOf(mid1, func(se1 *affix.Suffix) bool {
			if !se1.CrossProduct {
				return true
			}
			if s.suffixNotValid(se1, FullWord) {
				return true
			}
			mid2 := se1.ToRoot(mid1)
			if !se1.CheckCondition(mid2) {
				return true
			}
			res = s.stripPSP3(pe1, se1, mid2, skipHiddenHomonym)
			return res == nil
		})
		return !stopped
	})
	return res
}

func (s *Speller) stripPSP3(pe1 *affix.Prefix, se1 *affix.Suffix, word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	s.d.Prefixes.ForEachPrefixOf(word, func(pe2 *affix.Prefix) bool {
		if !pe2.CrossProduct {
			return true
		}
		if !pe2.ContFlags.Contains(pe1.Flag) && !se1.ContFlags.Contains(pe1.Flag) {
			return true
		}
		if s.prefixNotValid(pe2, FullWord) {
			return true
		}
		circ1ok := (s.suffixIsCircumfix(se1) == s.prefixIsCircumfix(pe1)) && !s.prefixIsCircumfix(pe2)
		circ2ok := (s.suffixIsCircumfix(se1) == s.prefixIsCircumfix(pe2)) && !s.prefixIsCircumfix(pe1)
		if !circ1ok && !circ2ok {
			return true
		}
		root := pe2.ToRoot(word)
		if !pe2.CheckCondition(root) {
			return true
		}
		for _, we := range s.d.Words.EqualRange(string(root)) {
			if !pe2.ContFlags.Contains(se1.Flag) && !we.Flags.Contains(se1.Flag) {
				continue
			}
			if !we.Flags.Contains(pe2.Flag) {
				continue
			}
			if s.wordEntryRejected(we, FullWord, skipHiddenHomonym) {
				continue
			}
			res = we
			return false
		}
		return true
	})
	return res
}

// strip2PrefixesThenSuffix strips two prefixes and a suffix. Kept as an
// opt-in primitive; checkSimpleWord does not call it.
func (s *Speller) strip2PrefixesThenSuffix(word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	if !s.d.Prefixes.HasContinuationFlags() && !s.d.Suffixes.HasContinuationFlags() {
		return nil
	}
	s.d.Prefixes.ForEachPrefixOf(word, func(pe1 *affix.Prefix) bool {
		if !s.d.Prefixes.HasContinuationFlag(pe1.Flag) &&
			!s.d.Suffixes.HasContinuationFlag(pe1.Flag) {
			return true
		}
		if s.outerPrefixNotValid(pe1, FullWord) {
			return true
		}
		if s.prefixIsCircumfix(pe1) {
			return true
		}
		mid1 := pe1.ToRoot(word)
		if !pe1.CheckCondition(mid1) {
			return true
		}
		stopped := s.d.Prefixes.ForEachPrefixOf(mid1, func(pe2 *affix.Prefix) bool {
			if !pe2.CrossProduct {
				return true
			}
			if s.prefixNotValid(pe2, FullWord) {
				return true
			}
			mid2 := pe2.ToRoot(mid1)
			if !pe2.CheckCondition(mid2) {
				return true
			}
			res = s.strip2PfxSfx3(pe1, pe2, mid2, skipHiddenHomonym)
			return res == nil
		})
		return !stopped
	})
	return res
}

func (s *Speller) strip2PfxSfx3(pe1, pe2 *affix.Prefix, word []rune, skipHiddenHomonym bool) (res *dictionary.WordEntry) {
	s.d.Suffixes.ForEachSuffixOf(word, func(se1 *affix.Suffix) bool {
		if !se1.CrossProduct {
			return true
		}
		if !pe2.ContFlags.Contains(pe1.Flag) && !se1.ContFlags.Contains(pe1.Flag) {
			return true
		}
		if s.suffixNotValid(se1, FullWord) {
			return true
		}
		if s.prefixIsCircumfix(pe2) != s.suffixIsCircumfix(se1) {
			return true
		}
		root := se1.ToRoot(word)
		if !se1.CheckCondition(root) {
			return true
		}
		for _, we := range s.d.Words.EqualRange(string(root)) {
			if !se1.ContFlags.Contains(pe2.Flag) && !we.Flags.Contains(pe2.Flag) {
				continue
			}
			if !we.Flags.Contains(se1.Flag) {
				continue
			}
			if s.wordEntryRejected(we, FullWord, skipHiddenHomonym) {
				continue
			}
			res = we
			return false
		}
		return true
	})
	return res
}
