package speller

import (
	"strings"
	"testing"

	"github.com/spellhound/spellhound/pkg/dictionary"
)

func mustSpeller(t *testing.T, aff, dic string) *Speller {
	t.Helper()
	d, err := dictionary.LoadStrings(aff, dic)
	if err != nil {
		t.Fatalf("LoadStrings: %v", err)
	}
	return New(d)
}

func checkAll(t *testing.T, s *Speller, good, bad []string) {
	t.Helper()
	for _, w := range good {
		if !s.Spell(w) {
			t.Errorf("Spell(%q) = false, want true", w)
		}
	}
	for _, w := range bad {
		if s.Spell(w) {
			t.Errorf("Spell(%q) = true, want false", w)
		}
	}
}

func TestPlainStemAndCasing(t *testing.T) {
	s := mustSpeller(t, "", "1\nwork\n")
	checkAll(t, s,
		[]string{"work", "Work", "WORK"},
		[]string{"works", "worka", "woRk"},
	)
}

func TestSuffixStripping(t *testing.T) {
	aff := `
SFX S Y 1
SFX S 0 s .
`
	s := mustSpeller(t, aff, "1\nwork/S\n")
	checkAll(t, s,
		[]string{"work", "works", "Works", "WORKS"},
		[]string{"worked", "workss"},
	)
}

func TestSuffixCondition(t *testing.T) {
	aff := `
SFX S Y 2
SFX S 0 s [^y]
SFX S y ies y
`
	s := mustSpeller(t, aff, "2\nlady/S\ncat/S\n")
	checkAll(t, s,
		[]string{"ladies", "cats", "lady", "cat"},
		[]string{"ladys", "caties"},
	)
}

func TestPrefixStripping(t *testing.T) {
	aff := `
PFX A Y 1
PFX A 0 un .
`
	s := mustSpeller(t, aff, "1\nable/A\n")
	checkAll(t, s, []string{"able", "unable"}, []string{"reable", "unably"})
}

func TestCommutativePrefixSuffix(t *testing.T) {
	aff := `
PFX A Y 1
PFX A 0 un .

SFX B Y 1
SFX B 0 d .
`
	s := mustSpeller(t, aff, "1\nhouse/AB\n")
	checkAll(t, s,
		[]string{"house", "unhouse", "housed", "unhoused"},
		[]string{"unhousedd", "ununhoused"},
	)
}

func TestCrossProductRequired(t *testing.T) {
	aff := `
PFX A N 1
PFX A 0 un .

SFX B Y 1
SFX B 0 d .
`
	s := mustSpeller(t, aff, "1\nhouse/AB\n")
	// prefix group is not cross-product, so the combined form must fail
	checkAll(t, s, []string{"unhouse", "housed"}, []string{"unhoused"})
}

func TestTwoSuffixes(t *testing.T) {
	aff := `
SFX S Y 1
SFX S 0 s/T .

SFX T Y 1
SFX T 0 ed .
`
	s := mustSpeller(t, aff, "1\nwork/S\n")
	checkAll(t, s,
		[]string{"work", "works", "worksed"},
		[]string{"worked", "worksedx"},
	)
}

func TestNeedAffix(t *testing.T) {
	aff := `
NEEDAFFIX n

SFX S Y 1
SFX S 0 s .
`
	s := mustSpeller(t, aff, "1\npseudo/nS\n")
	checkAll(t, s, []string{"pseudos"}, []string{"pseudo"})
}

func TestCircumfix(t *testing.T) {
	aff := `
CIRCUMFIX X

PFX A Y 1
PFX A 0 pre/X .

SFX B Y 1
SFX B 0 post/X .
`
	s := mustSpeller(t, aff, "1\ncore/AB\n")
	checkAll(t, s,
		[]string{"core", "precorepost"},
		[]string{"precore", "corepost"},
	)
}

func TestForbiddenWordDominates(t *testing.T) {
	s := mustSpeller(t, "FORBIDDENWORD !\nTRY abd\n", "2\nbad/!\nban\n")
	checkAll(t, s, []string{"ban"}, []string{"bad", "Bad", "BAD"})

	for _, sug := range s.Suggest("ba") {
		if sug == "bad" {
			t.Error("suggestions must not contain a forbidden word")
		}
	}
}

func TestKeepCase(t *testing.T) {
	s := mustSpeller(t, "KEEPCASE K\n", "1\nfoo/K\n")
	checkAll(t, s, []string{"foo"}, []string{"Foo", "FOO"})
}

func TestKeepCaseHiddenHomonym(t *testing.T) {
	s := mustSpeller(t, "KEEPCASE K\n", "1\nNASA/K\n")
	checkAll(t, s, []string{"NASA"}, []string{"Nasa", "nasa"})
}

func TestCompoundFlag(t *testing.T) {
	s := mustSpeller(t, "COMPOUNDFLAG C\n", "2\nfoot/C\nball/C\n")
	checkAll(t, s,
		[]string{"foot", "ball", "football", "ballfoot", "footballball"},
		[]string{"footbal", "football x"},
	)
}

func TestCompoundDuplicateCheck(t *testing.T) {
	aff := "COMPOUNDFLAG C\nCOMPOUNDMIN 2\nCHECKCOMPOUNDDUP\n"
	s := mustSpeller(t, aff, "2\nha/C\nho/C\n")
	checkAll(t, s, []string{"haho", "hoha"}, []string{"haha"})

	// without the option the duplicate is a valid compound
	s = mustSpeller(t, "COMPOUNDFLAG C\nCOMPOUNDMIN 2\n", "1\nha/C\n")
	checkAll(t, s, []string{"haha"}, nil)
}

func TestCompoundTripleCheck(t *testing.T) {
	dic := "2\nbell/C\nlike/C\n"
	s := mustSpeller(t, "COMPOUNDFLAG C\nCHECKCOMPOUNDTRIPLE\n", dic)
	checkAll(t, s, []string{"likebell"}, []string{"belllike"})

	s = mustSpeller(t, "COMPOUNDFLAG C\n", dic)
	checkAll(t, s, []string{"belllike"}, nil)
}

func TestCompoundCaseCheck(t *testing.T) {
	dic := "2\nfoo/C\nBar/C\n"
	s := mustSpeller(t, "COMPOUNDFLAG C\nCHECKCOMPOUNDCASE\n", dic)
	checkAll(t, s, nil, []string{"fooBar"})

	s = mustSpeller(t, "COMPOUNDFLAG C\n", dic)
	checkAll(t, s, []string{"fooBar"}, nil)
}

func TestCompoundRepCheck(t *testing.T) {
	aff := "COMPOUNDFLAG C\nCHECKCOMPOUNDREP\nREP 1\nREP ubw w\n"
	dic := "3\nsub/C\nway/C\nsway\n"
	s := mustSpeller(t, aff, dic)
	checkAll(t, s, nil, []string{"subway"})

	s = mustSpeller(t, "COMPOUNDFLAG C\n", dic)
	checkAll(t, s, []string{"subway"}, nil)
}

func TestCompoundPatternForbids(t *testing.T) {
	dic := "2\nfoo/C\nbar/C\n"
	aff := "COMPOUNDFLAG C\nCHECKCOMPOUNDPATTERN 1\nCHECKCOMPOUNDPATTERN o b\n"
	s := mustSpeller(t, aff, dic)
	checkAll(t, s, nil, []string{"foobar"})

	s = mustSpeller(t, "COMPOUNDFLAG C\n", dic)
	checkAll(t, s, []string{"foobar"}, nil)
}

func TestCompoundMaxWordCount(t *testing.T) {
	s := mustSpeller(t, "COMPOUNDFLAG C\nCOMPOUNDWORDMAX 2\n", "1\nfoo/C\n")
	checkAll(t, s, []string{"foofoo"}, []string{"foofoofoo"})

	s = mustSpeller(t, "COMPOUNDFLAG C\nCOMPOUNDWORDMAX 3\n", "1\nfoo/C\n")
	checkAll(t, s, []string{"foofoofoo"}, []string{"foofoofoofoo"})
}

func TestCompoundForceUppercase(t *testing.T) {
	aff := "COMPOUNDFLAG C\nFORCEUCASE U\n"
	s := mustSpeller(t, aff, "2\nfoo/C\nbar/CU\n")
	checkAll(t, s, []string{"Foobar"}, []string{"foobar"})
}

func TestCompoundOnlyIn(t *testing.T) {
	aff := "COMPOUNDFLAG C\nONLYINCOMPOUND o\n"
	s := mustSpeller(t, aff, "2\nfoo/Co\nbar/C\n")
	checkAll(t, s, []string{"bar", "foobar", "barfoo"}, []string{"foo"})
}

func TestCompoundPositionFlags(t *testing.T) {
	aff := "COMPOUNDBEGIN B\nCOMPOUNDMIDDLE M\nCOMPOUNDEND E\n"
	s := mustSpeller(t, aff, "3\nstart/B\nmid/M\nend/E\n")
	checkAll(t, s,
		[]string{"startend", "startmidend"},
		[]string{"endstart", "startmid", "midend", "startendmid"},
	)
}

func TestCompoundRules(t *testing.T) {
	aff := "COMPOUNDRULE 1\nCOMPOUNDRULE AB\n"
	s := mustSpeller(t, aff, "2\nleft/A\nright/B\n")
	checkAll(t, s, []string{"leftright"}, []string{"rightleft", "leftleft"})
}

func TestCompoundRuleQuantifiers(t *testing.T) {
	aff := "COMPOUNDRULE 1\nCOMPOUNDRULE N*F\n"
	s := mustSpeller(t, aff, "2\nnum/N\nfin/F\n")
	checkAll(t, s,
		[]string{"fin", "numfin", "numnumfin", "numnumnumfin"},
		[]string{"finnum", "numnum"},
	)
}

func TestBreakPatterns(t *testing.T) {
	s := mustSpeller(t, "", "2\nfoo\nbar\n")
	checkAll(t, s,
		[]string{"foo-bar", "-foo", "bar-", "foo-bar-foo"},
		[]string{"foo-baz", "baz-bar"},
	)
}

func TestAbbreviationDots(t *testing.T) {
	s := mustSpeller(t, "", "1\netc\n")
	checkAll(t, s, []string{"etc", "etc.", "etc..."}, []string{"xyz."})
}

func TestNumbersAccepted(t *testing.T) {
	s := mustSpeller(t, "", "1\nfoo\n")
	checkAll(t, s,
		[]string{"123", "-12.5", "1,000", "10-12"},
		[]string{"1..2", "-", "12x", "--3"},
	)
}

func TestIgnoredChars(t *testing.T) {
	// soft hyphen is erased before lookup
	s := mustSpeller(t, "IGNORE ­\n", "1\nwork\n")
	checkAll(t, s, []string{"wo­rk", "work"}, nil)
}

func TestInputConversion(t *testing.T) {
	aff := "ICONV 1\nICONV ’ '\n"
	s := mustSpeller(t, aff, "1\ndon't\n")
	checkAll(t, s, []string{"don't", "don’t"}, nil)
}

func TestSharpS(t *testing.T) {
	s := mustSpeller(t, "CHECKSHARPS\n", "1\nstraße\n")
	checkAll(t, s,
		[]string{"straße", "Straße", "STRASSE"},
		[]string{"strasse"},
	)
}

func TestUppercaseApostrophePrefix(t *testing.T) {
	// stem cased the way Romance elision dictionaries carry it
	s := mustSpeller(t, "KEEPCASE K\n", "1\nSant'Elia/K\n")
	checkAll(t, s, []string{"Sant'Elia", "SANT'ELIA"}, []string{"sant'elia"})
}

func TestComplexPrefixes(t *testing.T) {
	aff := `
COMPLEXPREFIXES

PFX A Y 1
PFX A 0 un .

PFX B Y 1
PFX B 0 re/A .
`
	s := mustSpeller(t, aff, "1\ndo/B\n")
	checkAll(t, s, []string{"redo", "unredo"}, []string{"undo", "unun"})

	// without COMPLEXPREFIXES the double-prefix primitive never runs
	noComplex := strings.Replace(aff, "COMPLEXPREFIXES\n", "", 1)
	s = mustSpeller(t, noComplex, "1\ndo/B\n")
	checkAll(t, s, []string{"redo"}, []string{"unredo"})
}

func TestForbidWarn(t *testing.T) {
	s := mustSpeller(t, "WARN W\nFORBIDWARN\n", "1\nfoo/W\n")
	checkAll(t, s, nil, []string{"foo"})

	s = mustSpeller(t, "WARN W\n", "1\nfoo/W\n")
	checkAll(t, s, []string{"foo"}, nil)
}

func TestBreakDepthBounded(t *testing.T) {
	s := mustSpeller(t, "", "1\nx\n")
	if !s.Spell("x-x-x") {
		t.Error("short hyphen chain must pass")
	}
	deep := strings.Repeat("x-", 15) + "x"
	if s.Spell(deep) {
		t.Error("hyphen chains beyond the break depth must be rejected")
	}
}

func TestSharpSDepthBounded(t *testing.T) {
	s := mustSpeller(t, "CHECKSHARPS\n", "2\naßbßcßdßeß\naßbßcßdßeßfß\n")
	// five replacements fit within the recursion bound, six do not
	checkAll(t, s,
		[]string{"ASSBSSCSSDSSESS"},
		[]string{"ASSBSSCSSDSSESSFSS"},
	)
}

func TestOversizeRejected(t *testing.T) {
	s := mustSpeller(t, "", "1\nfoo\n")
	long := strings.Repeat("a", MaxWordLen+1)
	if s.Spell(long) {
		t.Error("oversize word must be rejected")
	}
	if sugs := s.Suggest(long); len(sugs) != 0 {
		t.Error("oversize word must yield no suggestions")
	}
}

func TestSpellIsPure(t *testing.T) {
	aff := "COMPOUNDFLAG C\nTRY ab\n"
	s := mustSpeller(t, aff, "2\nfoo/C\nbar/C\n")
	for _, w := range []string{"foobar", "fooba", "FOO", "foo-bar"} {
		first := s.Spell(w)
		for i := 0; i < 3; i++ {
			if s.Spell(w) != first {
				t.Errorf("Spell(%q) changed between calls", w)
			}
		}
	}
	sugs1 := s.Suggest("fooba")
	sugs2 := s.Suggest("fooba")
	if len(sugs1) != len(sugs2) {
		t.Fatalf("Suggest not deterministic: %v vs %v", sugs1, sugs2)
	}
	for i := range sugs1 {
		if sugs1[i] != sugs2[i] {
			t.Errorf("Suggest order changed: %v vs %v", sugs1, sugs2)
		}
	}
}
