// Package casing classifies the letter-case shape of words and converts
// between case forms with locale-aware rules, so Turkic dotted/dotless i and
// German sharp s behave the way the dictionary's language expects.
package casing

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Shape is the letter-case classification of a word, ignoring caseless
// characters.
type Shape int

const (
	// Small is all lower or neutral case, e.g. "lowercase" or "123".
	Small Shape = iota
	// InitCapital starts upper case, rest lower, e.g. "Initcap".
	InitCapital
	// AllCapital is all upper case, e.g. "UPPERCASE" or "ALL4ONE".
	AllCapital
	// Camel starts lower case with capitals inside, e.g. "camelCase".
	Camel
	// Pascal starts upper case with more capitals inside, e.g. "PascalCase".
	Pascal
)

func (s Shape) String() string {
	switch s {
	case Small:
		return "small"
	case InitCapital:
		return "init-capital"
	case AllCapital:
		return "all-capital"
	case Camel:
		return "camel"
	case Pascal:
		return "pascal"
	}
	return "unknown"
}

// Classify determines the Shape of word. Title-case characters count as
// upper case.
func Classify(word []rune) Shape {
	upper, lower := 0, 0
	for _, r := range word {
		switch {
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}
	if upper == 0 {
		return Small
	}
	firstUpper := len(word) != 0 && (unicode.IsUpper(word[0]) || unicode.IsTitle(word[0]))
	switch {
	case upper == 1 && firstUpper:
		return InitCapital
	case lower == 0:
		return AllCapital
	case firstUpper:
		return Pascal
	}
	return Camel
}

// Lower converts word to lower case under the rules of tag.
func Lower(tag language.Tag, word []rune) []rune {
	return []rune(cases.Lower(tag).String(string(word)))
}

// Upper converts word to upper case under the rules of tag.
func Upper(tag language.Tag, word []rune) []rune {
	return []rune(cases.Upper(tag).String(string(word)))
}

// Title upper-cases the first character of word and lower-cases the rest.
// Unlike a segmenting title caser this never capitalizes past the first
// character, which matters for words containing apostrophes.
func Title(tag language.Tag, word []rune) []rune {
	if len(word) == 0 {
		return word
	}
	first := []rune(cases.Upper(tag).String(string(word[:1])))
	rest := []rune(cases.Lower(tag).String(string(word[1:])))
	return append(first, rest...)
}
