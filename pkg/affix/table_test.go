package affix

import (
	"testing"

	"github.com/spellhound/spellhound/pkg/flagset"
)

func pfx(flag flagset.Flag, strip, append_ string) *Prefix {
	return &Prefix{
		Flag:      flag,
		Stripping: []rune(strip),
		Appending: []rune(append_),
		Condition: MustCompileCondition("."),
	}
}

func sfx(flag flagset.Flag, strip, append_ string) *Suffix {
	return &Suffix{
		Flag:      flag,
		Stripping: []rune(strip),
		Appending: []rune(append_),
		Condition: MustCompileCondition("."),
	}
}

func TestPrefixRootDerivedRoundTrip(t *testing.T) {
	e := pfx('A', "i", "un")
	root := e.ToRoot([]rune("unable"))
	if string(root) != "iable" {
		t.Fatalf("ToRoot(unable) = %q, want %q", string(root), "iable")
	}
	derived := e.ToDerived(root)
	if string(derived) != "unable" {
		t.Errorf("ToDerived(ToRoot(x)) = %q, want %q", string(derived), "unable")
	}
}

func TestSuffixRootDerivedRoundTrip(t *testing.T) {
	e := sfx('S', "y", "ies")
	root := e.ToRoot([]rune("ladies"))
	if string(root) != "lady" {
		t.Fatalf("ToRoot(ladies) = %q, want %q", string(root), "lady")
	}
	derived := e.ToDerived(root)
	if string(derived) != "ladies" {
		t.Errorf("ToDerived(ToRoot(x)) = %q, want %q", string(derived), "ladies")
	}
}

func TestPrefixTableIteration(t *testing.T) {
	entries := []*Prefix{
		pfx('A', "", "un"),
		pfx('B', "", ""),
		pfx('C', "", "u"),
		pfx('D', "", "under"),
		pfx('E', "", "over"),
	}
	table := NewPrefixTable(entries)

	var seen []flagset.Flag
	table.ForEachPrefixOf([]rune("unable"), func(e *Prefix) bool {
		seen = append(seen, e.Flag)
		return true
	})
	// zero-appending first, then shortest appending first
	want := []flagset.Flag{'B', 'C', 'A'}
	if len(seen) != len(want) {
		t.Fatalf("visited %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("visit order[%d] = %c, want %c", i, seen[i], want[i])
		}
	}
}

func TestPrefixTableEarlyStop(t *testing.T) {
	table := NewPrefixTable([]*Prefix{pfx('A', "", "u"), pfx('B', "", "un")})
	count := 0
	stopped := table.ForEachPrefixOf([]rune("unable"), func(e *Prefix) bool {
		count++
		return false
	})
	if !stopped || count != 1 {
		t.Errorf("early stop visited %d entries (stopped=%v), want 1", count, stopped)
	}
}

func TestSuffixTableIteration(t *testing.T) {
	entries := []*Suffix{
		sfx('S', "", "s"),
		sfx('E', "", "es"),
		sfx('X', "", "ing"),
	}
	table := NewSuffixTable(entries)

	var seen []flagset.Flag
	table.ForEachSuffixOf([]rune("boxes"), func(e *Suffix) bool {
		seen = append(seen, e.Flag)
		return true
	})
	want := []flagset.Flag{'S', 'E'}
	if len(seen) != len(want) {
		t.Fatalf("visited %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("visit order[%d] = %c, want %c", i, seen[i], want[i])
		}
	}
}

func TestContinuationFlagAggregate(t *testing.T) {
	a := pfx('A', "", "un")
	a.ContFlags = flagset.New('X')
	table := NewPrefixTable([]*Prefix{a, pfx('B', "", "in")})
	if !table.HasContinuationFlags() {
		t.Error("table with cont flags should report HasContinuationFlags")
	}
	if !table.HasContinuationFlag('X') {
		t.Error("aggregate should contain X")
	}
	if table.HasContinuationFlag('Y') {
		t.Error("aggregate should not contain Y")
	}
	empty := NewSuffixTable(nil)
	if empty.HasContinuationFlags() {
		t.Error("empty table should have no continuation flags")
	}
}
