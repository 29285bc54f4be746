package tables

import (
	"testing"

	"github.com/spellhound/spellhound/pkg/flagset"
)

func TestSubstrReplacer(t *testing.T) {
	tests := []struct {
		name  string
		pairs []StringPairTable
		input string
		want  string
	}{
		{"empty table", nil, "abc", "abc"},
		{"simple", []StringPairTable{{"a", "b"}}, "banana", "bbnbnb"},
		{"longest match wins", []StringPairTable{{"a", "x"}, {"ab", "y"}}, "aab", "xy"},
		{"no rescan of output", []StringPairTable{{"ab", "a"}}, "aab", "aa"},
		{"empty from dropped", []StringPairTable{{"", "x"}, {"b", "c"}}, "ab", "ac"},
		{"multibyte", []StringPairTable{{"ö", "oe"}}, "schön", "schoen"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewSubstrReplacer(tt.pairs)
			if got := r.Replace(tt.input); got != tt.want {
				t.Errorf("Replace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBreakTablePartitions(t *testing.T) {
	bt := NewBreakTable([]string{"-", "^-", "-$", "", "^", "$", "--"})
	if len(bt.StartPatterns()) != 1 || string(bt.StartPatterns()[0]) != "-" {
		t.Errorf("start patterns = %v", bt.StartPatterns())
	}
	if len(bt.EndPatterns()) != 1 || string(bt.EndPatterns()[0]) != "-" {
		t.Errorf("end patterns = %v", bt.EndPatterns())
	}
	if len(bt.MiddlePatterns()) != 2 {
		t.Errorf("middle patterns = %v, want [- --]", bt.MiddlePatterns())
	}
}

func TestReplacementTablePartitions(t *testing.T) {
	rt := NewReplacementTable([]StringPairTable{
		{"^teh$", "the"},
		{"^qu", "kw"},
		{"ei$", "ie"},
		{"f", "ph"},
		{"", "x"},
		{"^", "y"},
	})
	if n := len(rt.WholeWord()); n != 1 || string(rt.WholeWord()[0].From) != "teh" {
		t.Errorf("whole-word partition wrong: %v", rt.WholeWord())
	}
	if n := len(rt.StartWord()); n != 1 || string(rt.StartWord()[0].From) != "qu" {
		t.Errorf("start partition wrong: %v", rt.StartWord())
	}
	if n := len(rt.EndWord()); n != 1 || string(rt.EndWord()[0].From) != "ei" {
		t.Errorf("end partition wrong: %v", rt.EndWord())
	}
	if n := len(rt.AnyPlace()); n != 1 || string(rt.AnyPlace()[0].From) != "f" {
		t.Errorf("any-place partition wrong: %v", rt.AnyPlace())
	}
	if rt.Empty() {
		t.Error("table should not be empty")
	}
}

func TestParseSimilarityGroup(t *testing.T) {
	g := ParseSimilarityGroup("aà(áâ)e")
	if string(g.Chars) != "aàe" {
		t.Errorf("Chars = %q, want %q", string(g.Chars), "aàe")
	}
	if len(g.Strings) != 1 || string(g.Strings[0]) != "áâ" {
		t.Errorf("Strings = %v", g.Strings)
	}

	g = ParseSimilarityGroup("ab")
	if string(g.Chars) != "ab" || len(g.Strings) != 0 {
		t.Errorf("plain group parsed wrong: %q %v", string(g.Chars), g.Strings)
	}

	// single-char parenthesized members are plain chars
	g = ParseSimilarityGroup("(a)(bc)")
	if string(g.Chars) != "a" || len(g.Strings) != 1 {
		t.Errorf("mixed group parsed wrong: %q %v", string(g.Chars), g.Strings)
	}
}

func TestCompoundRuleMatch(t *testing.T) {
	mk := func(rule string) []flagset.Flag {
		var out []flagset.Flag
		for _, r := range rule {
			out = append(out, flagset.Flag(r))
		}
		return out
	}
	table := NewCompoundRuleTable([][]flagset.Flag{mk("ABC"), mk("A*B?C")})

	tests := []struct {
		name string
		data []string // each element is the flag list of one stem
		want bool
	}{
		{"exact sequence", []string{"A", "B", "C"}, true},
		{"star repeats", []string{"A", "A", "A", "C"}, true},
		{"star empty and optional empty", []string{"C"}, true},
		{"optional present", []string{"B", "C"}, true},
		{"wrong order", []string{"C", "A"}, false},
		{"trailing garbage", []string{"A", "B", "C", "C"}, false},
		{"empty data", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data []flagset.Set
			for _, fl := range tt.data {
				var fs []flagset.Flag
				for _, r := range fl {
					fs = append(fs, flagset.Flag(r))
				}
				data = append(data, flagset.New(fs...))
			}
			if got := table.MatchAnyRule(data); got != tt.want {
				t.Errorf("MatchAnyRule(%v) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestCompoundRuleFlagsAggregate(t *testing.T) {
	table := NewCompoundRuleTable([][]flagset.Flag{
		{'A', '*', 'B'},
	})
	if !table.HasAnyOfFlags(flagset.New('B', 'z')) {
		t.Error("B takes part in a rule")
	}
	if table.HasAnyOfFlags(flagset.New('*', '?')) {
		t.Error("quantifiers are not rule flags")
	}
	if table.Empty() {
		t.Error("table with one rule is not empty")
	}
	if !NewCompoundRuleTable(nil).Empty() {
		t.Error("nil rules mean empty table")
	}
}
