package speller

import (
	"unicode"

	"github.com/spellhound/spellhound/internal/casing"
	"github.com/spellhound/spellhound/pkg/affix"
	"github.com/spellhound/spellhound/pkg/dictionary"
	"github.com/spellhound/spellhound/pkg/flagset"
	"github.com/spellhound/spellhound/pkg/tables"
)

// compoundResult is one accepted compound piece together with the counters
// the Hungarian syllable rules need.
type compoundResult struct {
	entry              *dictionary.WordEntry
	numWordsMod        int
	numSyllableMod     int
	affixedAndModified bool
}

// checkCompound tries the flag-driven splitter first, then the rule-driven
// one, returning the first hit.
func (s *Speller) checkCompound(word []rune, shape casing.Shape) *compoundResult {
	if s.d.HasCompoundFlags() {
		if ret := s.checkCompoundMode(word, 0, 0, shape, AtCompoundBegin); ret != nil {
			return ret
		}
	}
	if !s.d.CompoundRules.Empty() {
		var wordsData []flagset.Set
		return s.checkCompoundWithRules(word, &wordsData, 0, shape)
	}
	return nil
}

// checkCompoundMode iterates split points, trying the classic splitter and
// the pattern-replacement splitter at each.
func (s *Speller) checkCompoundMode(word []rune, startPos, numPart int, shape casing.Shape, m Mode) *compoundResult {
	minLength := s.d.MinCompoundLength()
	if len(word) < minLength*2 {
		return nil
	}
	maxLength := len(word) - minLength
	for i := startPos + minLength; i <= maxLength; i++ {
		if ret := s.checkCompoundClassic(word, startPos, i, numPart, shape, m); ret != nil {
			return ret
		}
		if ret := s.checkCompoundWithPatternReplacements(word, startPos, i, numPart, shape, m); ret != nil {
			return ret
		}
	}
	return nil
}

func (s *Speller) matchCompoundPattern(p *tables.CompoundPattern, word []rune, i int, first, second *compoundResult) bool {
	bc := p.BoundaryChars
	if i < bc.Idx {
		return false
	}
	if i-bc.Idx+len(bc.Runes) > len(word) {
		return false
	}
	for k, r := range bc.Runes {
		if word[i-bc.Idx+k] != r {
			return false
		}
	}
	if p.FirstWordFlag != flagset.Unset && !first.entry.Flags.Contains(p.FirstWordFlag) {
		return false
	}
	if p.SecondWordFlag != flagset.Unset && !second.entry.Flags.Contains(p.SecondWordFlag) {
		return false
	}
	if p.MatchFirstOnlyUnaffixedOrZeroAffixed && first.affixedAndModified {
		return false
	}
	return true
}

func (s *Speller) compoundForbiddenByPatterns(word []rune, i int, first, second *compoundResult) bool {
	for k := range s.d.CompoundPatterns {
		if s.matchCompoundPattern(&s.d.CompoundPatterns[k], word, i, first, second) {
			return true
		}
	}
	return false
}

func hasUppercaseAtBoundary(word []rune, i int) bool {
	return unicode.IsUpper(word[i-1]) || unicode.IsTitle(word[i-1]) ||
		unicode.IsUpper(word[i]) || unicode.IsTitle(word[i])
}

// forceUppercaseRejected applies FORCEUCASE: a lowercase input may not end
// in a piece that demands an upper-case compound.
func (s *Speller) forceUppercaseRejected(shape casing.Shape, part2 *compoundResult) bool {
	if s.d.CompoundForceUppercase == flagset.Unset {
		return false
	}
	if shape != casing.Small && shape != casing.Camel {
		return false
	}
	return part2.entry.Flags.Contains(s.d.CompoundForceUppercase)
}

// tripleAtBoundary applies CHECKCOMPOUNDTRIPLE: reject the split when the
// same letter repeats across the boundary three times.
func tripleAtBoundary(word []rune, i int) bool {
	if i < 1 || i >= len(word) {
		return false
	}
	if word[i-1] != word[i] {
		return false
	}
	if i+1 < len(word) && word[i] == word[i+1] {
		return true
	}
	return i >= 2 && word[i-2] == word[i]
}

// checkCompoundClassic splits word at i and validates both halves, recursing
// into the right half for longer compounds. The control flow is a chain of
// attempts: terminal right half, recursive right half, then the same two
// with a simplified triple reinserted at the boundary.
func (s *Speller) checkCompoundClassic(word []rune, startPos, i, numPart int, shape casing.Shape, m Mode) *compoundResult {
	d := s.d

	part1 := s.checkWordInCompound(word[startPos:i], m)
	if part1 == nil {
		return nil
	}
	if hasFlag(part1.entry.Flags, d.ForbiddenWordFlag) {
		return nil
	}
	if d.CompoundCheckTriple && tripleAtBoundary(word, i) {
		return nil
	}
	if d.CompoundCheckCase && hasUppercaseAtBoundary(word, i) {
		return nil
	}
	numPart += part1.numWordsMod
	if hasFlag(part1.entry.Flags, d.CompoundRootFlag) {
		numPart++
	}

	// terminal right half
	part2 := s.checkWordInCompound(word[i:], AtCompoundEnd)
	for part2 != nil {
		if hasFlag(part2.entry.Flags, d.ForbiddenWordFlag) {
			break
		}
		if s.compoundForbiddenByPatterns(word, i, part1, part2) {
			break
		}
		if d.CompoundCheckDuplicate && part1.entry == part2.entry {
			break
		}
		if d.CompoundCheckRep && s.isRepSimilar(word[startPos:]) {
			break
		}
		if s.forceUppercaseRejected(shape, part2) {
			break
		}
		oldNumPart := numPart
		numPart += part2.numWordsMod
		if hasFlag(part2.entry.Flags, d.CompoundRootFlag) {
			numPart++
		}
		if d.CompoundMaxWordCount != 0 && numPart+1 >= int(d.CompoundMaxWordCount) {
			if len(d.CompoundSyllableVowels) == 0 {
				// not Hungarian: the part count only grows, so
				// no further attempt at this split point can pass
				return nil
			}
			numSyllable := s.countSyllables(word) + part2.numSyllableMod
			if numSyllable > int(d.CompoundSyllableMax) {
				numPart = oldNumPart
				break
			}
		}
		return part1
	}

	// recursive right half
	if part2r := s.checkCompoundMode(word, i, numPart+1, shape, AtCompoundMiddle); part2r != nil {
		ok := !s.compoundForbiddenByPatterns(word, i, part1, part2r)
		if ok && d.CompoundCheckRep {
			if s.isRepSimilar(word[startPos:]) {
				ok = false
			}
			if ok {
				p2word := []rune(part2r.entry.Stem)
				if runesHavePrefixAt(word, i, p2word) &&
					s.isRepSimilar(word[startPos:i+len(p2word)]) {
					ok = false
				}
			}
		}
		if ok {
			return part1
		}
	}

	// simplified triple: reinsert the elided repeated letter and retry
	if !d.CompoundSimplifiedTriple {
		return nil
	}
	if !(i >= 2 && word[i-1] == word[i-2]) {
		return nil
	}
	tripled := insertRuneAt(word, i, word[i-1])

	part2 = s.checkWordInCompound(tripled[i:], AtCompoundEnd)
	for part2 != nil {
		if hasFlag(part2.entry.Flags, d.ForbiddenWordFlag) {
			break
		}
		if s.compoundForbiddenByPatterns(tripled, i, part1, part2) {
			break
		}
		if d.CompoundCheckDuplicate && part1.entry == part2.entry {
			break
		}
		// the reinserted letter must not take part in the rep check
		if d.CompoundCheckRep && s.isRepSimilar(word[startPos:]) {
			break
		}
		if s.forceUppercaseRejected(shape, part2) {
			break
		}
		if d.CompoundMaxWordCount != 0 && numPart+1 >= int(d.CompoundMaxWordCount) {
			return nil
		}
		return part1
	}

	// simplified triple, recursive right half
	part2r := s.checkCompoundMode(tripled, i, numPart+1, shape, AtCompoundMiddle)
	if part2r == nil {
		return nil
	}
	if s.compoundForbiddenByPatterns(tripled, i, part1, part2r) {
		return nil
	}
	if d.CompoundCheckRep {
		if s.isRepSimilar(word[startPos:]) {
			return nil
		}
		p2word := []rune(part2r.entry.Stem)
		if runesHavePrefixAt(tripled, i, p2word) {
			part := append([]rune(nil), tripled[startPos:i+len(p2word)]...)
			part = deleteRuneAt(part, i-startPos)
			if s.isRepSimilar(part) {
				return nil
			}
		}
	}
	return part1
}

// checkCompoundWithPatternReplacements virtually substitutes a pattern's
// boundary characters for its replacement at the split point and reruns the
// classic logic with the pattern's per-half flag filters.
func (s *Speller) checkCompoundWithPatternReplacements(word []rune, startPos, i, numPart int, shape casing.Shape, m Mode) *compoundResult {
	d := s.d
	for pi := range d.CompoundPatterns {
		p := &d.CompoundPatterns[pi]
		if len(p.Replacement) == 0 {
			continue
		}
		if !runesHavePrefixAt(word, i, p.Replacement) {
			continue
		}

		// substitute replacement -> boundary chars, shift the split
		sub := spliceRunesAt(word, i, len(p.Replacement), p.BoundaryChars.Runes)
		bi := i + p.BoundaryChars.Idx

		part1 := s.checkWordInCompound(sub[startPos:bi], m)
		if part1 == nil {
			continue
		}
		if hasFlag(part1.entry.Flags, d.ForbiddenWordFlag) {
			continue
		}
		if p.FirstWordFlag != flagset.Unset && !part1.entry.Flags.Contains(p.FirstWordFlag) {
			continue
		}
		if d.CompoundCheckTriple && tripleAtBoundary(sub, bi) {
			continue
		}

		// terminal right half
		part2 := s.checkWordInCompound(sub[bi:], AtCompoundEnd)
		for part2 != nil {
			if hasFlag(part2.entry.Flags, d.ForbiddenWordFlag) {
				break
			}
			if p.SecondWordFlag != flagset.Unset && !part2.entry.Flags.Contains(p.SecondWordFlag) {
				break
			}
			if d.CompoundCheckDuplicate && part1.entry == part2.entry {
				break
			}
			if d.CompoundCheckRep && s.isRepSimilar(word[startPos:]) {
				break
			}
			if s.forceUppercaseRejected(shape, part2) {
				break
			}
			if d.CompoundMaxWordCount != 0 && numPart+1 >= int(d.CompoundMaxWordCount) {
				return nil
			}
			return part1
		}

		// recursive right half
		if part2r := s.checkCompoundMode(sub, bi, numPart+1, shape, AtCompoundMiddle); part2r != nil {
			ok := !(p.SecondWordFlag != flagset.Unset && !part2r.entry.Flags.Contains(p.SecondWordFlag))
			if ok && d.CompoundCheckRep {
				if s.isRepSimilar(word[startPos:]) {
					ok = false
				}
				if ok {
					p2word := []rune(part2r.entry.Stem)
					if runesHavePrefixAt(sub, bi, p2word) &&
						s.isRepSimilar(sub[startPos:bi+len(p2word)]) {
						ok = false
					}
				}
			}
			if ok {
				return part1
			}
		}

		// simplified triple inside the substituted word
		if !d.CompoundSimplifiedTriple {
			continue
		}
		if !(bi >= 2 && sub[bi-1] == sub[bi-2]) {
			continue
		}
		tripled := insertRuneAt(sub, bi, sub[bi-1])

		part2 = s.checkWordInCompound(tripled[bi:], AtCompoundEnd)
		for part2 != nil {
			if hasFlag(part2.entry.Flags, d.ForbiddenWordFlag) {
				break
			}
			if p.SecondWordFlag != flagset.Unset && !part2.entry.Flags.Contains(p.SecondWordFlag) {
				break
			}
			if d.CompoundCheckDuplicate && part1.entry == part2.entry {
				break
			}
			if d.CompoundCheckRep && s.isRepSimilar(word[startPos:]) {
				break
			}
			if s.forceUppercaseRejected(shape, part2) {
				break
			}
			if d.CompoundMaxWordCount != 0 && numPart+1 >= int(d.CompoundMaxWordCount) {
				return nil
			}
			return part1
		}

		// simplified triple, recursive right half
		part2r := s.checkCompoundMode(tripled, bi, numPart+1, shape, AtCompoundMiddle)
		if part2r == nil {
			continue
		}
		if p.SecondWordFlag != flagset.Unset && !part2r.entry.Flags.Contains(p.SecondWordFlag) {
			continue
		}
		if d.CompoundCheckRep {
			if s.isRepSimilar(word[startPos:]) {
				continue
			}
			p2word := []rune(part2r.entry.Stem)
			if runesHavePrefixAt(tripled, bi, p2word) {
				part := append([]rune(nil), tripled[startPos:bi+len(p2word)]...)
				part = deleteRuneAt(part, bi-startPos)
				if s.isRepSimilar(part) {
					continue
				}
			}
		}
		return part1
	}
	return nil
}

// checkWordInCompound looks a compound piece up directly, then via single
// affixes and the commutative prefix+suffix strip, all in the piece's
// positional mode.
func (s *Speller) checkWordInCompound(word []rune, m Mode) *compoundResult {
	d := s.d
	var cpdFlag flagset.Flag
	switch m {
	case AtCompoundBegin:
		cpdFlag = d.CompoundBeginFlag
	case AtCompoundMiddle:
		cpdFlag = d.CompoundMiddleFlag
	case AtCompoundEnd:
		cpdFlag = d.CompoundLastFlag
	}

	for _, we := range d.Words.EqualRange(string(word)) {
		if hasFlag(we.Flags, d.NeedAffixFlag) {
			continue
		}
		if !hasFlag(we.Flags, d.CompoundFlag) && !hasFlag(we.Flags, cpdFlag) {
			continue
		}
		if we.Flags.Contains(flagset.HiddenHomonym) {
			continue
		}
		return &compoundResult{
			entry:          we,
			numSyllableMod: s.calcSyllableModifierWord(we, m),
		}
	}
	if r := s.stripSuffixOnly(word, skipHidden, m); r.entry != nil {
		return &compoundResult{
			entry:              r.entry,
			numSyllableMod:     s.calcSyllableModifierSuffix(r.entry, r.sfx, m),
			affixedAndModified: r.sfx.Modifying(),
		}
	}
	if r := s.stripPrefixOnly(word, skipHidden, m); r.entry != nil {
		return &compoundResult{
			entry:              r.entry,
			numWordsMod:        s.calcNumWordsModifier(r.pfx),
			affixedAndModified: r.pfx.Modifying(),
		}
	}
	if r := s.stripPrefixThenSuffixCommutative(word, skipHidden, m); r.entry != nil {
		return &compoundResult{
			entry:              r.entry,
			numWordsMod:        s.calcNumWordsModifier(r.pfx),
			numSyllableMod:     s.calcSyllableModifierSuffix(r.entry, r.sfx, m),
			affixedAndModified: r.pfx.Modifying() || r.sfx.Modifying(),
		}
	}
	return nil
}

// Hungarian syllable accounting. A prefix whose appending has more than one
// syllable counts as an extra word.
func (s *Speller) calcNumWordsModifier(pfx *affix.Prefix) int {
	if len(s.d.CompoundSyllableVowels) == 0 {
		return 0
	}
	if s.countSyllablesIn(pfx.Appending) > 1 {
		return 1
	}
	return 0
}

func (s *Speller) calcSyllableModifierWord(we *dictionary.WordEntry, m Mode) int {
	if m == AtCompoundEnd && len(s.d.CompoundSyllableVowels) != 0 &&
		we.Flags.Contains(flagset.Flag('I')) && !we.Flags.Contains(flagset.Flag('J')) {
		return -1
	}
	return 0
}

func (s *Speller) calcSyllableModifierSuffix(we *dictionary.WordEntry, sfx *affix.Suffix, m Mode) int {
	if m != AtCompoundEnd {
		return 0
	}
	if len(s.d.CompoundSyllableVowels) == 0 {
		return 0
	}
	appnd := sfx.Appending
	mod := -s.countSyllablesIn(appnd)
	sfxExtra := len(appnd) != 0 && appnd[len(appnd)-1] == 'i'
	if sfxExtra && len(appnd) > 1 {
		c := appnd[len(appnd)-2]
		sfxExtra = c != 'y' && c != 't'
	}
	if sfxExtra {
		mod--
	}
	if s.d.CompoundSyllableNum {
		switch sfx.Flag {
		case flagset.Flag('c'):
			mod += 2
		case flagset.Flag('J'):
			mod++
		case flagset.Flag('I'):
			if we.Flags.Contains(flagset.Flag('J')) {
				mod++
			}
		}
	}
	return mod
}

func (s *Speller) countSyllables(word []rune) int {
	return s.countSyllablesIn(word)
}

func (s *Speller) countSyllablesIn(word []rune) int {
	n := 0
	for _, r := range word {
		for _, v := range s.d.CompoundSyllableVowels {
			if r == v {
				n++
				break
			}
		}
	}
	return n
}

// checkCompoundWithRules recursively decomposes word into stems whose flags
// take part in some compound rule, and accepts the decomposition when the
// collected flag sets match a rule.
func (s *Speller) checkCompoundWithRules(word []rune, wordsData *[]flagset.Set, startPos int, shape casing.Shape) *compoundResult {
	d := s.d
	minLength := d.MinCompoundLength()
	if len(word) < minLength*2 {
		return nil
	}
	maxLength := len(word) - minLength
	for i := startPos + minLength; i <= maxLength; i++ {
		var part1 *dictionary.WordEntry
		for _, we := range d.Words.EqualRange(string(word[startPos:i])) {
			if hasFlag(we.Flags, d.NeedAffixFlag) {
				continue
			}
			if !d.CompoundRules.HasAnyOfFlags(we.Flags) {
				continue
			}
			part1 = we
			break
		}
		if part1 == nil {
			continue
		}
		*wordsData = append(*wordsData, part1.Flags)

		var part2 *dictionary.WordEntry
		for _, we := range d.Words.EqualRange(string(word[i:])) {
			if hasFlag(we.Flags, d.NeedAffixFlag) {
				continue
			}
			if !d.CompoundRules.HasAnyOfFlags(we.Flags) {
				continue
			}
			part2 = we
			break
		}
		if part2 != nil {
			*wordsData = append(*wordsData, part2.Flags)
			matched := d.CompoundRules.MatchAnyRule(*wordsData)
			*wordsData = (*wordsData)[:len(*wordsData)-1]
			if matched && !s.forceUppercaseRejectedEntry(shape, part2) {
				*wordsData = (*wordsData)[:len(*wordsData)-1]
				return &compoundResult{entry: part1}
			}
		}

		ret := s.checkCompoundWithRules(word, wordsData, i, shape)
		*wordsData = (*wordsData)[:len(*wordsData)-1]
		if ret != nil {
			return ret
		}
	}
	return nil
}

func (s *Speller) forceUppercaseRejectedEntry(shape casing.Shape, we *dictionary.WordEntry) bool {
	if s.d.CompoundForceUppercase == flagset.Unset {
		return false
	}
	if shape != casing.Small && shape != casing.Camel {
		return false
	}
	return we.Flags.Contains(s.d.CompoundForceUppercase)
}

func runesHavePrefixAt(word []rune, i int, prefix []rune) bool {
	if i+len(prefix) > len(word) {
		return false
	}
	for k, r := range prefix {
		if word[i+k] != r {
			return false
		}
	}
	return true
}

func insertRuneAt(word []rune, i int, r rune) []rune {
	out := make([]rune, 0, len(word)+1)
	out = append(out, word[:i]...)
	out = append(out, r)
	return append(out, word[i:]...)
}

func deleteRuneAt(word []rune, i int) []rune {
	out := make([]rune, 0, len(word)-1)
	out = append(out, word[:i]...)
	return append(out, word[i+1:]...)
}

func spliceRunesAt(word []rune, i, n int, repl []rune) []rune {
	out := make([]rune, 0, len(word)-n+len(repl))
	out = append(out, word[:i]...)
	out = append(out, repl...)
	return append(out, word[i+n:]...)
}
