package tables

// BreakTable partitions BREAK patterns into the three positions they apply
// at. A leading '^' anchors a pattern to the word start, a trailing '$' to
// the word end; both markers are stripped at construction.
type BreakTable struct {
	start  [][]rune
	end    [][]rune
	middle [][]rune
}

// NewBreakTable classifies the raw patterns. Empty patterns and bare anchors
// are dropped.
func NewBreakTable(patterns []string) *BreakTable {
	t := &BreakTable{}
	for _, p := range patterns {
		rs := []rune(p)
		if len(rs) == 0 || (len(rs) == 1 && (rs[0] == '^' || rs[0] == '$')) {
			continue
		}
		switch {
		case rs[0] == '^':
			t.start = append(t.start, rs[1:])
		case rs[len(rs)-1] == '$':
			t.end = append(t.end, rs[:len(rs)-1])
		default:
			t.middle = append(t.middle, rs)
		}
	}
	return t
}

// StartPatterns returns the patterns anchored at the word start.
func (t *BreakTable) StartPatterns() [][]rune { return t.start }

// EndPatterns returns the patterns anchored at the word end.
func (t *BreakTable) EndPatterns() [][]rune { return t.end }

// MiddlePatterns returns the patterns matched strictly inside the word.
func (t *BreakTable) MiddlePatterns() [][]rune { return t.middle }
