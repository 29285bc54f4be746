package tables

import (
	"testing"
)

func mkRules(pairs [][2]string) []PhoneticRule {
	var out []PhoneticRule
	for _, p := range pairs {
		out = append(out, PhoneticRule{From: []rune(p[0]), To: []rune(p[1])})
	}
	return out
}

func TestPhoneticReplace(t *testing.T) {
	tests := []struct {
		name  string
		rules [][2]string
		input string
		want  string
	}{
		{"no rules", nil, "PHONE", "PHONE"},
		{"literal prefix rule", [][2]string{{"PH", "F"}}, "PHONE", "FONE"},
		{"rule anchored to begin only", [][2]string{{"KN^", "N"}}, "KNOWKN", "NOWKN"},
		{"end anchor", [][2]string{{"GH$", "F"}}, "GHOST", "GHOST"},
		{"end anchor hit", [][2]string{{"GH$", "F"}}, "TOUGH", "TOUF"},
		{"character class", [][2]string{{"C(EI)", "S"}}, "CEL", "SL"},
		{"placeholder deletes", [][2]string{{"H", "_"}}, "AHOY", "AOY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewPhoneticTable(mkRules(tt.rules))
			got, changed := table.Replace([]rune(tt.input))
			if string(got) != tt.want {
				t.Errorf("Replace(%q) = %q, want %q", tt.input, string(got), tt.want)
			}
			wantChanged := tt.input != tt.want
			if changed != wantChanged {
				t.Errorf("Replace(%q) changed = %v, want %v", tt.input, changed, wantChanged)
			}
		})
	}
}

func TestPhoneticClassConsumesChar(t *testing.T) {
	// C(EI) matches C followed by E or I, consuming both
	table := NewPhoneticTable(mkRules([][2]string{{"C(EI)", "S"}}))
	got, changed := table.Replace([]rune("CELL"))
	if !changed || string(got) != "SLL" {
		t.Errorf("Replace(CELL) = %q (changed=%v), want SLL", string(got), changed)
	}
	got, changed = table.Replace([]rune("CALL"))
	if changed || string(got) != "CALL" {
		t.Errorf("Replace(CALL) = %q (changed=%v), want unchanged", string(got), changed)
	}
}

func TestPhoneticGoBackBounded(t *testing.T) {
	// A< rewrites A to B and retries at the same position; B has no rule,
	// so a single word cannot loop forever regardless of '<'
	table := NewPhoneticTable(mkRules([][2]string{{"A<", "B"}}))
	got, changed := table.Replace([]rune("AAAAAAAA"))
	if !changed {
		t.Fatal("expected replacements")
	}
	for _, r := range got {
		if r != 'B' {
			t.Errorf("Replace left %q", string(got))
			break
		}
	}
}
