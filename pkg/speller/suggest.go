package speller

import (
	"unicode"

	"github.com/spellhound/spellhound/internal/casing"
)

// Suggest returns correction candidates for word, best heuristics first.
// The list is empty when the word is too long or nothing was found.
func (s *Speller) Suggest(word string) []string {
	wide := []rune(word)
	if len(wide) > MaxWordLen {
		return nil
	}
	var out []string
	s.suggestPriv(wide, &out)
	if oc := s.d.OutputConversion; oc != nil {
		for i, sug := range out {
			out[i] = oc.Replace(sug)
		}
	}
	return out
}

// suggestPriv runs the heuristics in fixed order. Each one mutates a copy of
// the word, retests it with the full check and leaves the input untouched.
func (s *Speller) suggestPriv(word []rune, out *[]string) {
	s.uppercaseSuggest(word, out)
	s.repSuggest(word, out)
	s.mapSuggest(word, out, 0)
	s.adjacentSwapSuggest(word, out)
	s.distantSwapSuggest(word, out)
	s.keyboardSuggest(word, out)
	s.extraCharSuggest(word, out)
	s.forgottenCharSuggest(word, out)
	s.moveCharSuggest(word, out)
	s.badCharSuggest(word, out)
	s.doubledTwoCharsSuggest(word, out)
	if !s.d.NoSplitSuggestions {
		s.twoWordsSuggest(word, out)
	}
	s.phoneticSuggest(word, out)
}

// addSugIfCorrect appends the candidate when it passes the full check and
// is not already present. Forbidden, warned (under FORBIDWARN) and
// no-suggest words never make the list.
func (s *Speller) addSugIfCorrect(word []rune, out *[]string) bool {
	cand := string(word)
	for _, o := range *out {
		if o == cand {
			return true
		}
	}
	res := s.checkWord(word, casing.Small, acceptHidden)
	if res == nil {
		return false
	}
	if hasFlag(*res, s.d.ForbiddenWordFlag) {
		return false
	}
	if s.d.ForbidWarn && hasFlag(*res, s.d.WarnFlag) {
		return false
	}
	if hasFlag(*res, s.d.NoSuggestFlag) {
		return false
	}
	*out = append(*out, cand)
	return true
}

// uppercaseSuggest tries the fully upper-cased word.
func (s *Speller) uppercaseSuggest(word []rune, out *[]string) {
	s.addSugIfCorrect(casing.Upper(s.d.Lang, word), out)
}

// repSuggest applies the replacement table in all four positions.
func (s *Speller) repSuggest(word []rune, out *[]string) {
	reps := s.d.Replacements
	for _, r := range reps.WholeWord() {
		if runesEqual(word, r.From) {
			s.tryRepSuggestion(append([]rune(nil), r.To...), out)
		}
	}
	for _, r := range reps.StartWord() {
		if runesHavePrefixAt(word, 0, r.From) {
			s.tryRepSuggestion(spliceRunesAt(word, 0, len(r.From), r.To), out)
		}
	}
	for _, r := range reps.EndWord() {
		if len(r.From) <= len(word) && runesHavePrefixAt(word, len(word)-len(r.From), r.From) {
			s.tryRepSuggestion(spliceRunesAt(word, len(word)-len(r.From), len(r.From), r.To), out)
		}
	}
	for _, r := range reps.AnyPlace() {
		for i := indexRunes(word, r.From, 0); i >= 0; i = indexRunes(word, r.From, i+1) {
			s.tryRepSuggestion(spliceRunesAt(word, i, len(r.From), r.To), out)
		}
	}
}

// tryRepSuggestion accepts the replaced word outright, or as a phrase when
// every space-separated part checks individually.
func (s *Speller) tryRepSuggestion(word []rune, out *[]string) {
	if s.addSugIfCorrect(word, out) {
		return
	}
	if indexRune(word, ' ') < 0 {
		return
	}
	start := 0
	for i := 0; i <= len(word); i++ {
		if i != len(word) && word[i] != ' ' {
			continue
		}
		if s.checkWord(word[start:i], casing.Small, acceptHidden) == nil {
			return
		}
		start = i + 1
	}
	appendUnique(out, string(word))
}

// isRepSimilar reports whether some replacement applied to word produces a
// simple (non-compound) dictionary word. The compound checker uses it to
// reject compounds that are likely just common typos.
func (s *Speller) isRepSimilar(word []rune) bool {
	reps := s.d.Replacements
	for _, r := range reps.WholeWord() {
		if runesEqual(word, r.From) {
			if s.checkSimpleWord(r.To, acceptHidden) != nil {
				return true
			}
		}
	}
	for _, r := range reps.StartWord() {
		if runesHavePrefixAt(word, 0, r.From) {
			if s.checkSimpleWord(spliceRunesAt(word, 0, len(r.From), r.To), acceptHidden) != nil {
				return true
			}
		}
	}
	for _, r := range reps.EndWord() {
		if len(r.From) <= len(word) && runesHavePrefixAt(word, len(word)-len(r.From), r.From) {
			if s.checkSimpleWord(spliceRunesAt(word, len(word)-len(r.From), len(r.From), r.To), acceptHidden) != nil {
				return true
			}
		}
	}
	for _, r := range reps.AnyPlace() {
		for i := indexRunes(word, r.From, 0); i >= 0; i = indexRunes(word, r.From, i+1) {
			if s.checkSimpleWord(spliceRunesAt(word, i, len(r.From), r.To), acceptHidden) != nil {
				return true
			}
		}
	}
	return false
}

// mapSuggest substitutes similarity-group members for each other, recursing
// over the remaining positions so multiple substitutions combine.
func (s *Speller) mapSuggest(word []rune, out *[]string, i int) {
	for ; i < len(word); i++ {
		for _, e := range s.d.Similarities {
			j := indexRune(e.Chars, word[i])
			if j >= 0 {
				for _, c := range e.Chars {
					if c == e.Chars[j] {
						continue
					}
					cand := append([]rune(nil), word...)
					cand[i] = c
					s.addSugIfCorrect(cand, out)
					s.mapSuggest(cand, out, i+1)
				}
				for _, r := range e.Strings {
					cand := spliceRunesAt(word, i, 1, r)
					s.addSugIfCorrect(cand, out)
					s.mapSuggest(cand, out, i+len(r))
				}
			}
			for _, f := range e.Strings {
				if !runesHavePrefixAt(word, i, f) {
					continue
				}
				for _, c := range e.Chars {
					cand := spliceRunesAt(word, i, len(f), []rune{c})
					s.addSugIfCorrect(cand, out)
					s.mapSuggest(cand, out, i+1)
				}
				for _, r := range e.Strings {
					if runesEqual(f, r) {
						continue
					}
					cand := spliceRunesAt(word, i, len(f), r)
					s.addSugIfCorrect(cand, out)
					s.mapSuggest(cand, out, i+len(r))
				}
			}
		}
	}
}

// adjacentSwapSuggest swaps each adjacent pair, plus the double swaps that
// catch transposed four- and five-letter words.
func (s *Speller) adjacentSwapSuggest(word []rune, out *[]string) {
	if len(word) == 0 {
		return
	}
	cand := append([]rune(nil), word...)
	for i := 0; i+1 < len(cand); i++ {
		cand[i], cand[i+1] = cand[i+1], cand[i]
		s.addSugIfCorrect(cand, out)
		cand[i], cand[i+1] = cand[i+1], cand[i]
	}
	if len(cand) == 4 {
		cand[0], cand[1] = cand[1], cand[0]
		cand[2], cand[3] = cand[3], cand[2]
		s.addSugIfCorrect(cand, out)
		cand[0], cand[1] = cand[1], cand[0]
		cand[2], cand[3] = cand[3], cand[2]
	} else if len(cand) == 5 {
		cand[0], cand[1] = cand[1], cand[0]
		cand[3], cand[4] = cand[4], cand[3]
		s.addSugIfCorrect(cand, out)
		cand[0], cand[1] = cand[1], cand[0] // revert first two
		cand[1], cand[2] = cand[2], cand[1]
		s.addSugIfCorrect(cand, out)
		cand[1], cand[2] = cand[2], cand[1]
		cand[3], cand[4] = cand[4], cand[3]
	}
}

// distantSwapSuggest swaps every non-adjacent pair.
func (s *Speller) distantSwapSuggest(word []rune, out *[]string) {
	if len(word) < 3 {
		return
	}
	cand := append([]rune(nil), word...)
	for i := 0; i+2 < len(cand); i++ {
		for j := i + 2; j < len(cand); j++ {
			cand[i], cand[j] = cand[j], cand[i]
			s.addSugIfCorrect(cand, out)
			cand[i], cand[j] = cand[j], cand[i]
		}
	}
}

// keyboardSuggest replaces each character with its upper-case form and with
// its neighbors on the KEY rows.
func (s *Speller) keyboardSuggest(word []rune, out *[]string) {
	kb := s.d.KeyboardCloseness
	cand := append([]rune(nil), word...)
	for j, c := range cand {
		upp := unicode.ToUpper(c)
		if upp != c {
			cand[j] = upp
			s.addSugIfCorrect(cand, out)
			cand[j] = c
		}
		for i := indexRune(kb, c); i >= 0; {
			if i > 0 && kb[i-1] != '|' {
				cand[j] = kb[i-1]
				s.addSugIfCorrect(cand, out)
				cand[j] = c
			}
			if i+1 < len(kb) && kb[i+1] != '|' {
				cand[j] = kb[i+1]
				s.addSugIfCorrect(cand, out)
				cand[j] = c
			}
			next := indexRune(kb[i+1:], c)
			if next < 0 {
				break
			}
			i += 1 + next
		}
	}
}

// extraCharSuggest deletes each character in turn, last position first.
func (s *Speller) extraCharSuggest(word []rune, out *[]string) {
	for i := len(word) - 1; i >= 0; i-- {
		s.addSugIfCorrect(deleteRuneAt(word, i), out)
	}
}

// forgottenCharSuggest inserts each TRY character at every position.
func (s *Speller) forgottenCharSuggest(word []rune, out *[]string) {
	for _, c := range s.d.TryChars {
		for i := len(word); i >= 0; i-- {
			s.addSugIfCorrect(insertRuneAt(word, i, c), out)
		}
	}
}

// moveCharSuggest moves one character across every span, both directions.
func (s *Speller) moveCharSuggest(word []rune, out *[]string) {
	if len(word) < 3 {
		return
	}
	buf := append([]rune(nil), word...)
	for i := 0; i+2 < len(buf); i++ {
		buf[i], buf[i+1] = buf[i+1], buf[i]
		for j := i + 1; j+1 < len(buf); j++ {
			buf[j], buf[j+1] = buf[j+1], buf[j]
			s.addSugIfCorrect(buf, out)
		}
		copy(buf, word)
	}
	for i := len(buf) - 1; i > 1; i-- {
		buf[i], buf[i-1] = buf[i-1], buf[i]
		for j := i - 1; j > 0; j-- {
			buf[j], buf[j-1] = buf[j-1], buf[j]
			s.addSugIfCorrect(buf, out)
		}
		copy(buf, word)
	}
}

// badCharSuggest replaces each character with each TRY character.
func (s *Speller) badCharSuggest(word []rune, out *[]string) {
	cand := append([]rune(nil), word...)
	for _, newC := range s.d.TryChars {
		for i, c := range cand {
			if c == newC {
				continue
			}
			cand[i] = newC
			s.addSugIfCorrect(cand, out)
			cand[i] = c
		}
	}
}

// doubledTwoCharsSuggest collapses patterns like ABABA to ABA.
func (s *Speller) doubledTwoCharsSuggest(word []rune, out *[]string) {
	if len(word) < 5 {
		return
	}
	for i := 0; i+4 < len(word); i++ {
		if word[i] == word[i+2] && word[i+1] == word[i+3] && word[i] == word[i+4] {
			cand := make([]rune, 0, len(word)-2)
			cand = append(cand, word[:i+3]...)
			cand = append(cand, word[i+5:]...)
			s.addSugIfCorrect(cand, out)
		}
	}
}

// twoWordsSuggest splits the word in two everywhere; both halves must be
// simple dictionary words. A hyphenated variant is proposed when TRY
// indicates a Latin script.
func (s *Speller) twoWordsSuggest(word []rune, out *[]string) {
	if len(word) < 2 {
		return
	}
	tryHyphen := runeInSet(s.d.TryChars, 'a') || runeInSet(s.d.TryChars, '-')
	for i := 0; i+1 < len(word); i++ {
		w1 := word[:i+1]
		if s.checkSimpleWord(w1, acceptHidden) == nil {
			continue
		}
		w2 := word[i+1:]
		if s.checkSimpleWord(w2, acceptHidden) == nil {
			continue
		}
		spaced := make([]rune, 0, len(word)+1)
		spaced = append(spaced, w1...)
		spaced = append(spaced, ' ')
		spaced = append(spaced, w2...)
		appendUnique(out, string(spaced))
		if len(w1) > 1 && len(w2) > 1 && tryHyphen {
			spaced[len(w1)] = '-'
			appendUnique(out, string(spaced))
		}
	}
}

// phoneticSuggest runs the phonetic table over the upper-cased word and
// proposes the lower-cased rewrite.
func (s *Speller) phoneticSuggest(word []rune, out *[]string) {
	upper := make([]rune, len(word))
	for i, c := range word {
		upper[i] = unicode.ToUpper(c)
	}
	replaced, changed := s.d.Phonetic.Replace(upper)
	if !changed {
		return
	}
	for i, c := range replaced {
		replaced[i] = unicode.ToLower(c)
	}
	s.addSugIfCorrect(replaced, out)
}

func appendUnique(out *[]string, cand string) {
	for _, o := range *out {
		if o == cand {
			return
		}
	}
	*out = append(*out, cand)
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i, r := range a {
		if b[i] != r {
			return false
		}
	}
	return true
}
