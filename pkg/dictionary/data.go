package dictionary

import (
	"golang.org/x/text/language"

	"github.com/spellhound/spellhound/pkg/affix"
	"github.com/spellhound/spellhound/pkg/flagset"
	"github.com/spellhound/spellhound/pkg/tables"
)

// Data is everything a loaded dictionary knows: the word list, the affix
// tables, the transformation tables and all option flags. It is built once
// by the parser and immutable afterwards, so it may be shared freely between
// concurrent checkers.
type Data struct {
	Words    *WordList
	Prefixes *affix.PrefixTable
	Suffixes *affix.SuffixTable

	// spell checking options
	ComplexPrefixes bool
	FullStrip       bool
	CheckSharps     bool
	ForbidWarn      bool

	CompoundOnlyInFlag flagset.Flag
	CircumfixFlag      flagset.Flag
	ForbiddenWordFlag  flagset.Flag
	KeepCaseFlag       flagset.Flag
	NeedAffixFlag      flagset.Flag
	WarnFlag           flagset.Flag

	// compounding options
	CompoundFlag       flagset.Flag
	CompoundBeginFlag  flagset.Flag
	CompoundLastFlag   flagset.Flag
	CompoundMiddleFlag flagset.Flag
	CompoundRules      *tables.CompoundRuleTable

	BreakTable        *tables.BreakTable
	InputConversion   *tables.SubstrReplacer
	OutputConversion  *tables.SubstrReplacer
	IgnoredChars      []rune
	Lang              language.Tag

	// suggestion options
	Replacements      *tables.ReplacementTable
	Similarities      []tables.SimilarityGroup
	KeyboardCloseness []rune
	TryChars          []rune
	Phonetic          *tables.PhoneticTable

	NoSuggestFlag  flagset.Flag
	SubstandardFlag flagset.Flag

	MaxCompoundSuggestions uint16
	MaxNgramSuggestions    uint16
	MaxDiffFactor          uint16
	OnlyMaxDiff            bool
	NoSplitSuggestions     bool
	SuggestWithDots        bool

	// compounding options
	CompoundMinLength        uint16
	CompoundMaxWordCount     uint16
	CompoundPermitFlag       flagset.Flag
	CompoundForbidFlag       flagset.Flag
	CompoundRootFlag         flagset.Flag
	CompoundForceUppercase   flagset.Flag
	CompoundMoreSuffixes     bool
	CompoundCheckDuplicate   bool
	CompoundCheckRep         bool
	CompoundCheckCase        bool
	CompoundCheckTriple      bool
	CompoundSimplifiedTriple bool
	CompoundSyllableNum      bool
	CompoundSyllableMax      uint16
	CompoundSyllableVowels   []rune

	CompoundPatterns []tables.CompoundPattern
}

// empty tables keep the engine free of nil checks on rarely-used features.
func newData() *Data {
	return &Data{
		Words:            NewWordList(0),
		Prefixes:         affix.NewPrefixTable(nil),
		Suffixes:         affix.NewSuffixTable(nil),
		CompoundRules:    tables.NewCompoundRuleTable(nil),
		BreakTable:       tables.NewBreakTable([]string{"-", "^-", "-$"}),
		InputConversion:  tables.NewSubstrReplacer(nil),
		OutputConversion: tables.NewSubstrReplacer(nil),
		Replacements:     tables.NewReplacementTable(nil),
		Phonetic:         tables.NewPhoneticTable(nil),
		Lang:             language.Und,
	}
}

// HasCompoundFlags reports whether any of the four positional compound flags
// is configured, enabling the flag-driven compound splitter.
func (d *Data) HasCompoundFlags() bool {
	return d.CompoundFlag != flagset.Unset ||
		d.CompoundBeginFlag != flagset.Unset ||
		d.CompoundMiddleFlag != flagset.Unset ||
		d.CompoundLastFlag != flagset.Unset
}

// MinCompoundLength returns the effective COMPOUNDMIN (default 3).
func (d *Data) MinCompoundLength() int {
	if d.CompoundMinLength != 0 {
		return int(d.CompoundMinLength)
	}
	return 3
}
