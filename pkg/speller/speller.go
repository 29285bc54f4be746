/*
Package speller implements the spell checking and suggestion engine over a
loaded dictionary: casing analysis, affix stripping, compound recognition and
the suggestion heuristics.

A Speller is cheap to create and stateless between calls; the heavy state is
the immutable dictionary.Data it wraps, which may be shared by any number of
Spellers running in parallel.
*/
package speller

import (
	"github.com/spellhound/spellhound/internal/casing"
	"github.com/spellhound/spellhound/pkg/dictionary"
	"github.com/spellhound/spellhound/pkg/flagset"
)

// MaxWordLen is the longest word, in runes, the engine will look at.
// Anything longer is rejected up front.
const MaxWordLen = 180

// Speller checks and corrects words against one dictionary.
type Speller struct {
	d *dictionary.Data
}

// New wraps loaded dictionary data in a Speller.
func New(d *dictionary.Data) *Speller {
	return &Speller{d: d}
}

// Data exposes the wrapped dictionary data.
func (s *Speller) Data() *dictionary.Data { return s.d }

// Spell reports whether word is spelled correctly. Empty words and numbers
// are correct; oversize words are not.
func (s *Speller) Spell(word string) bool {
	wide := []rune(word)
	if len(wide) > MaxWordLen {
		return false
	}
	return s.spellPriv(wide)
}

// spellPriv normalizes the word (input conversion, trailing dots, ignored
// characters) and runs the break recursion, retrying once with a single dot
// re-attached for abbreviations.
func (s *Speller) spellPriv(word []rune) bool {
	word = []rune(s.d.InputConversion.Replace(string(word)))

	if len(word) == 0 {
		return true
	}
	abbreviation := word[len(word)-1] == '.'
	if abbreviation {
		for len(word) != 0 && word[len(word)-1] == '.' {
			word = word[:len(word)-1]
		}
		if len(word) == 0 {
			return true
		}
	}
	if isNumber(word) {
		return true
	}
	word = eraseChars(word, s.d.IgnoredChars)

	if s.spellBreak(word, 0) {
		return true
	}
	if abbreviation {
		dotted := make([]rune, 0, len(word)+1)
		dotted = append(dotted, word...)
		dotted = append(dotted, '.')
		return s.spellBreak(dotted, 0)
	}
	return false
}

// spellBreak checks the word as-is and then recursively around the break
// patterns. Middle splits bound the depth at 9 extra levels.
func (s *Speller) spellBreak(word []rune, depth int) bool {
	if res := s.spellCasing(word); res != nil {
		if hasFlag(*res, s.d.ForbiddenWordFlag) {
			return false
		}
		if s.d.ForbidWarn && hasFlag(*res, s.d.WarnFlag) {
			return false
		}
		return true
	}
	if depth == 9 {
		return false
	}

	for _, pat := range s.d.BreakTable.StartPatterns() {
		if runesHavePrefixAt(word, 0, pat) {
			if s.spellBreak(word[len(pat):], 0) {
				return true
			}
		}
	}
	for _, pat := range s.d.BreakTable.EndPatterns() {
		if len(pat) > len(word) {
			continue
		}
		if runesHavePrefixAt(word, len(word)-len(pat), pat) {
			if s.spellBreak(word[:len(word)-len(pat)], 0) {
				return true
			}
		}
	}
	for _, pat := range s.d.BreakTable.MiddlePatterns() {
		i := indexRunes(word, pat, 0)
		if i > 0 && i < len(word)-len(pat) {
			if !s.spellBreak(word[:i], depth+1) {
				continue
			}
			if s.spellBreak(word[i+len(pat):], depth+1) {
				return true
			}
		}
	}
	return false
}

// spellCasing routes the word to a check path according to its case shape.
func (s *Speller) spellCasing(word []rune) *flagset.Set {
	shape := casing.Classify(word)
	switch shape {
	case casing.AllCapital:
		return s.spellCasingUpper(word)
	case casing.InitCapital:
		return s.spellCasingTitle(word)
	default:
		return s.checkWord(word, shape, acceptHidden)
	}
}

// spellCasingUpper checks an all-caps word: as-is, apostrophe re-casings for
// Romance elisions, the sharp s recursion, then title and lower forms.
func (s *Speller) spellCasingUpper(word []rune) *flagset.Set {
	d := s.d
	if res := s.checkWord(word, casing.AllCapital, acceptHidden); res != nil {
		return res
	}

	// handle prefixes separated by apostrophe, e.g. SANT'ELIA -> Sant'Elia
	if apos := indexRune(word, '\''); apos >= 0 && apos != len(word)-1 {
		part1 := casing.Lower(d.Lang, word[:apos+1])
		part2 := casing.Title(d.Lang, word[apos+1:])
		t := append(append([]rune{}, part1...), part2...)
		if res := s.checkWord(t, casing.AllCapital, acceptHidden); res != nil {
			return res
		}
		part1 = casing.Title(d.Lang, part1)
		t = append(append([]rune{}, part1...), part2...)
		if res := s.checkWord(t, casing.AllCapital, acceptHidden); res != nil {
			return res
		}
	}

	// handle sharp s for German
	if d.CheckSharps && indexRunes(word, []rune("SS"), 0) >= 0 {
		t := casing.Lower(d.Lang, word)
		if res := s.spellSharps(t, 0, 0, 0); res != nil {
			return res
		}
		t = casing.Title(d.Lang, word)
		if res := s.spellSharps(t, 0, 0, 0); res != nil {
			return res
		}
	}
	t := casing.Title(d.Lang, word)
	if res := s.checkWord(t, casing.AllCapital, acceptHidden); res != nil && !hasFlag(*res, d.KeepCaseFlag) {
		return res
	}
	t = casing.Lower(d.Lang, word)
	if res := s.checkWord(t, casing.AllCapital, acceptHidden); res != nil && !hasFlag(*res, d.KeepCaseFlag) {
		return res
	}
	return nil
}

// spellCasingTitle checks a title-cased word: as-is skipping hidden
// homonyms, then in lower case unless keep-case forbids it (a sharp s in
// the lower form lifts the keep-case ban when CHECKSHARPS is on).
func (s *Speller) spellCasingTitle(word []rune) *flagset.Set {
	d := s.d
	if res := s.checkWord(word, casing.InitCapital, skipHidden); res != nil {
		return res
	}
	t := casing.Lower(d.Lang, word)
	res := s.checkWord(t, casing.InitCapital, acceptHidden)
	if res != nil && hasFlag(*res, d.KeepCaseFlag) &&
		!(d.CheckSharps && indexRune(t, 'ß') >= 0) {
		res = nil
	}
	return res
}

// maxSharps bounds the sharp s replacement recursion.
const maxSharps = 5

// spellSharps tries every combination of replacing "ss" with 'ß' in base,
// requiring at least one replacement before checking.
func (s *Speller) spellSharps(base []rune, pos, n, rep int) *flagset.Set {
	idx := indexRunes(base, []rune("ss"), pos)
	if idx >= 0 && n < maxSharps {
		with := make([]rune, 0, len(base)-1)
		with = append(with, base[:idx]...)
		with = append(with, 'ß')
		with = append(with, base[idx+2:]...)
		if res := s.spellSharps(with, idx+1, n+1, rep+1); res != nil {
			return res
		}
		return s.spellSharps(base, idx+2, n+1, rep)
	}
	if rep > 0 {
		return s.checkWord(base, casing.AllCapital, acceptHidden)
	}
	return nil
}

// isNumber accepts digits with an optional leading minus and single
// '.' ',' '-' separators between digit groups.
func isNumber(word []rune) bool {
	if len(word) == 0 {
		return false
	}
	i := 0
	if word[0] == '-' {
		i++
	}
	if i == len(word) {
		return false
	}
	prevSep := true
	for ; i < len(word); i++ {
		switch r := word[i]; {
		case r >= '0' && r <= '9':
			prevSep = false
		case r == '.' || r == ',' || r == '-':
			if prevSep {
				return false
			}
			prevSep = true
		default:
			return false
		}
	}
	return !prevSep
}

// eraseChars removes every occurrence of the ignored characters.
func eraseChars(word []rune, ignored []rune) []rune {
	if len(ignored) == 0 {
		return word
	}
	out := make([]rune, 0, len(word))
	for _, r := range word {
		if runeInSet(ignored, r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func runeInSet(set []rune, r rune) bool {
	for _, x := range set {
		if x == r {
			return true
		}
	}
	return false
}

func indexRune(word []rune, r rune) int {
	for i, x := range word {
		if x == r {
			return i
		}
	}
	return -1
}

// indexRunes finds the first occurrence of pat in word at or after from.
func indexRunes(word, pat []rune, from int) int {
	if len(pat) == 0 {
		return -1
	}
	for i := from; i+len(pat) <= len(word); i++ {
		if runesHavePrefixAt(word, i, pat) {
			return i
		}
	}
	return -1
}
