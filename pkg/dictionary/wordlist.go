// Package dictionary loads Hunspell-dialect affix (.aff) and word list
// (.dic) files into the immutable tables and options the spell checking
// engine consumes.
package dictionary

import (
	"github.com/spellhound/spellhound/pkg/flagset"
)

// WordEntry pairs a stem with its flag set. Entries are compared by
// identity: two homonyms with equal text are distinct entries.
type WordEntry struct {
	Stem  string
	Flags flagset.Set
}

// WordList is a multiset of word entries keyed by stem text. Homonyms keep
// their insertion order, which is observable: the first accepted entry wins
// during lookup.
type WordList struct {
	entries map[string][]*WordEntry
	size    int
}

// NewWordList returns an empty word list, optionally sized for n stems.
func NewWordList(n int) *WordList {
	return &WordList{entries: make(map[string][]*WordEntry, n)}
}

// Insert appends a new entry for stem, after any existing homonyms.
func (w *WordList) Insert(stem string, flags flagset.Set) *WordEntry {
	e := &WordEntry{Stem: stem, Flags: flags}
	w.entries[stem] = append(w.entries[stem], e)
	w.size++
	return e
}

// EqualRange returns all entries with exactly this stem text, in insertion
// order. The returned slice must not be modified.
func (w *WordList) EqualRange(stem string) []*WordEntry {
	return w.entries[stem]
}

// Size returns the total number of entries.
func (w *WordList) Size() int { return w.size }
