package casing

import (
	"testing"

	"golang.org/x/text/language"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		word string
		want Shape
	}{
		{"lowercase", Small},
		{"123", Small},
		{"", Small},
		{"Initcap", InitCapital},
		{"UPPERCASE", AllCapital},
		{"ALL4ONE", AllCapital},
		{"camelCase", Camel},
		{"PascalCase", Pascal},
		{"ÉCOLE", AllCapital},
		{"école", Small},
		{"École", InitCapital},
		{"A", InitCapital},
		{"aB", Camel},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := Classify([]rune(tt.word)); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}

func TestConversions(t *testing.T) {
	und := language.Und
	if got := string(Lower(und, []rune("HOUSE"))); got != "house" {
		t.Errorf("Lower = %q", got)
	}
	if got := string(Upper(und, []rune("straße"))); got != "STRASSE" {
		t.Errorf("Upper(straße) = %q, want STRASSE", got)
	}
	if got := string(Title(und, []rune("hELLO"))); got != "Hello" {
		t.Errorf("Title(hELLO) = %q, want Hello", got)
	}
	if got := string(Title(und, nil)); got != "" {
		t.Errorf("Title of empty = %q", got)
	}
}

func TestTitleKeepsApostropheParts(t *testing.T) {
	// a segmenting title caser would produce Sant'Elia here; ours must not
	if got := string(Title(language.Italian, []rune("sant'elia"))); got != "Sant'elia" {
		t.Errorf("Title(sant'elia) = %q, want Sant'elia", got)
	}
}

func TestTurkishDotlessI(t *testing.T) {
	tr := language.Turkish
	if got := string(Lower(tr, []rune("I"))); got != "ı" {
		t.Errorf("Turkish Lower(I) = %q, want ı", got)
	}
	if got := string(Upper(tr, []rune("i"))); got != "İ" {
		t.Errorf("Turkish Upper(i) = %q, want İ", got)
	}
}
