package dictionary

import (
	"strings"
	"testing"

	"github.com/spellhound/spellhound/pkg/affix"
	"github.com/spellhound/spellhound/pkg/flagset"
)

func mustLoad(t *testing.T, aff, dic string) *Data {
	t.Helper()
	d, err := LoadStrings(aff, dic)
	if err != nil {
		t.Fatalf("LoadStrings: %v", err)
	}
	return d
}

func TestParseOptions(t *testing.T) {
	aff := `
# test affix file
SET UTF-8
TRY abc
KEY qwe|asd
IGNORE -
FORBIDDENWORD !
KEEPCASE K
NEEDAFFIX n
COMPOUNDFLAG C
COMPOUNDMIN 2
COMPOUNDWORDMAX 4
CHECKCOMPOUNDDUP
CHECKSHARPS
FULLSTRIP
COMPOUNDSYLLABLE 6 aeiou
`
	d := mustLoad(t, aff, "1\nfoo\n")
	if string(d.TryChars) != "abc" {
		t.Errorf("TryChars = %q", string(d.TryChars))
	}
	if string(d.KeyboardCloseness) != "qwe|asd" {
		t.Errorf("KeyboardCloseness = %q", string(d.KeyboardCloseness))
	}
	if string(d.IgnoredChars) != "-" {
		t.Errorf("IgnoredChars = %q", string(d.IgnoredChars))
	}
	if d.ForbiddenWordFlag != '!' || d.KeepCaseFlag != 'K' || d.NeedAffixFlag != 'n' {
		t.Error("policy flags parsed wrong")
	}
	if d.CompoundFlag != 'C' || d.CompoundMinLength != 2 || d.CompoundMaxWordCount != 4 {
		t.Error("compound options parsed wrong")
	}
	if !d.CompoundCheckDuplicate || !d.CheckSharps || !d.FullStrip {
		t.Error("boolean options parsed wrong")
	}
	if d.CompoundSyllableMax != 6 || string(d.CompoundSyllableVowels) != "aeiou" {
		t.Error("COMPOUNDSYLLABLE parsed wrong")
	}
}

func TestParseAffixGroups(t *testing.T) {
	aff := `
PFX A Y 1
PFX A 0 un .

SFX S Y 2
SFX S 0 s .
SFX S y ies [^aeiou]y
`
	d := mustLoad(t, aff, "1\nfoo\n")
	n := 0
	d.Prefixes.ForEachPrefixOf([]rune("unfoo"), func(e *affix.Prefix) bool {
		if e.Flag != 'A' || !e.CrossProduct || string(e.Appending) != "un" {
			t.Errorf("prefix entry parsed wrong: %+v", e)
		}
		n++
		return true
	})
	if n != 1 {
		t.Errorf("expected 1 matching prefix entry, got %d", n)
	}

	var sfxAppends []string
	d.Suffixes.ForEachSuffixOf([]rune("flies"), func(e *affix.Suffix) bool {
		sfxAppends = append(sfxAppends, string(e.Appending))
		return true
	})
	// shortest appending first: "s" then "ies"
	if len(sfxAppends) != 2 || sfxAppends[0] != "s" || sfxAppends[1] != "ies" {
		t.Errorf("suffix iteration = %v, want [s ies]", sfxAppends)
	}
}

func TestParseDicFlags(t *testing.T) {
	aff := "FORBIDDENWORD !\n"
	dic := `5
work/S
bad/!
back\/slash
plain
stem/X po:noun
`
	d := mustLoad(t, aff, dic)
	if es := d.Words.EqualRange("work"); len(es) != 1 || !es[0].Flags.Contains('S') {
		t.Errorf("work entry wrong: %v", es)
	}
	if es := d.Words.EqualRange("bad"); len(es) != 1 || !es[0].Flags.Contains('!') {
		t.Errorf("bad entry wrong: %v", es)
	}
	if es := d.Words.EqualRange("back/slash"); len(es) != 1 {
		t.Errorf("escaped slash entry missing")
	}
	if es := d.Words.EqualRange("plain"); len(es) != 1 || !es[0].Flags.Empty() {
		t.Errorf("plain entry wrong")
	}
	if es := d.Words.EqualRange("stem"); len(es) != 1 || !es[0].Flags.Contains('X') {
		t.Errorf("morph-field entry wrong: %v", es)
	}
}

func TestMorphFieldHeuristic(t *testing.T) {
	dic := "1\nnew york po:noun\n"
	d := mustLoad(t, "", dic)
	if es := d.Words.EqualRange("new york"); len(es) != 1 {
		t.Errorf("stem with inner space not kept: %v", d.Words.EqualRange("new"))
	}
}

func TestHiddenHomonyms(t *testing.T) {
	dic := `3
NASA/K
OpenGL/X
plain
`
	d := mustLoad(t, "KEEPCASE K\n", dic)
	// all-caps stem with flags gets a hidden title-cased twin
	twins := d.Words.EqualRange("Nasa")
	if len(twins) != 1 || !twins[0].Flags.Contains(flagset.HiddenHomonym) {
		t.Errorf("hidden homonym for NASA missing: %v", twins)
	}
	// camel/pascal stems always get one
	twins = d.Words.EqualRange("Opengl")
	if len(twins) != 1 || !twins[0].Flags.Contains(flagset.HiddenHomonym) {
		t.Errorf("hidden homonym for OpenGL missing: %v", twins)
	}
	// plain lowercase stems never do
	if len(d.Words.EqualRange("Plain")) != 0 {
		t.Error("lowercase stem must not produce a hidden twin")
	}
}

func TestHomonymOrderStable(t *testing.T) {
	dic := "2\nfoo/A\nfoo/B\n"
	d := mustLoad(t, "", dic)
	es := d.Words.EqualRange("foo")
	if len(es) != 2 {
		t.Fatalf("expected 2 homonyms, got %d", len(es))
	}
	if !es[0].Flags.Contains('A') || !es[1].Flags.Contains('B') {
		t.Error("homonym insertion order not preserved")
	}
}

func TestFlagAliases(t *testing.T) {
	aff := `
AF 2
AF SX
AF Y
`
	dic := "1\nword/1\n"
	d := mustLoad(t, aff, dic)
	es := d.Words.EqualRange("word")
	if len(es) != 1 || !es[0].Flags.Contains('S') || !es[0].Flags.Contains('X') {
		t.Errorf("alias 1 not applied: %v", es)
	}
}

func TestLongFlags(t *testing.T) {
	aff := "FLAG long\nCOMPOUNDFLAG Cp\n"
	d := mustLoad(t, aff, "1\nfoo/Cp\n")
	want := flagset.Flag('C')<<8 | flagset.Flag('p')
	if d.CompoundFlag != want {
		t.Errorf("long COMPOUNDFLAG = %v, want %v", d.CompoundFlag, want)
	}
	if es := d.Words.EqualRange("foo"); len(es) != 1 || !es[0].Flags.Contains(want) {
		t.Error("long flag on dic entry not decoded")
	}
}

func TestBadConditionAborts(t *testing.T) {
	aff := "PFX A Y 1\nPFX A 0 un [x\n"
	if _, err := LoadStrings(aff, "0\n"); err == nil {
		t.Error("malformed condition must abort loading")
	}
}

func TestDicCountRequired(t *testing.T) {
	if _, err := LoadStrings("", "notanumber\n"); err == nil {
		t.Error("dic without leading count must fail")
	}
}

func TestDefaultBreakTable(t *testing.T) {
	d := mustLoad(t, "", "0\n")
	if len(d.BreakTable.MiddlePatterns()) != 1 || string(d.BreakTable.MiddlePatterns()[0]) != "-" {
		t.Errorf("default middle break = %v", d.BreakTable.MiddlePatterns())
	}
	if len(d.BreakTable.StartPatterns()) != 1 || len(d.BreakTable.EndPatterns()) != 1 {
		t.Error("default break table must contain ^- and -$")
	}

	d = mustLoad(t, "BREAK 1\nBREAK =\n", "0\n")
	if len(d.BreakTable.MiddlePatterns()) != 1 || string(d.BreakTable.MiddlePatterns()[0]) != "=" {
		t.Errorf("explicit BREAK table = %v", d.BreakTable.MiddlePatterns())
	}
}

func TestRepUnderscoreDecodes(t *testing.T) {
	aff := "REP 1\nREP alot a_lot\n"
	d := mustLoad(t, aff, "0\n")
	any := d.Replacements.AnyPlace()
	if len(any) != 1 || string(any[0].To) != "a lot" {
		t.Errorf("REP underscore not decoded: %v", any)
	}
}

func TestLatin1Encoding(t *testing.T) {
	aff := "SET ISO8859-1\n"
	// 0xE9 is é in Latin-1
	dic := "1\ncaf\xe9\n"
	d, err := Load(strings.NewReader(aff), strings.NewReader(dic))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if es := d.Words.EqualRange("café"); len(es) != 1 {
		t.Error("Latin-1 stem not decoded to UTF-8")
	}
}

func TestUnknownEncodingFails(t *testing.T) {
	if _, err := LoadStrings("SET KLINGON-1\n", "0\n"); err == nil {
		t.Error("unsupported SET value must fail")
	}
}
