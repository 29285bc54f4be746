package affix

import (
	"errors"

	"github.com/tchap/go-patricia/v2/patricia"

	"github.com/spellhound/spellhound/pkg/flagset"
)

var errStopVisit = errors.New("stop visiting")

// PrefixTable indexes prefix entries by their appending string so that all
// entries whose appending is a leading substring of a word can be visited
// without scanning the whole table. Entries with an empty appending are
// visited first, then the trie yields the rest shortest-first.
type PrefixTable struct {
	zeroAppending []*Prefix
	trie          *patricia.Trie
	allContFlags  flagset.Set
}

// NewPrefixTable builds the index over entries.
func NewPrefixTable(entries []*Prefix) *PrefixTable {
	t := &PrefixTable{trie: patricia.NewTrie()}
	for _, e := range entries {
		t.allContFlags = t.allContFlags.Union(e.ContFlags)
		if len(e.Appending) == 0 {
			t.zeroAppending = append(t.zeroAppending, e)
			continue
		}
		key := patricia.Prefix(string(e.Appending))
		if item := t.trie.Get(key); item != nil {
			bucket := item.([]*Prefix)
			t.trie.Set(key, append(bucket, e))
		} else {
			t.trie.Set(key, []*Prefix{e})
		}
	}
	return t
}

// ForEachPrefixOf visits every entry whose appending is a prefix of word,
// shortest appendings first. The visitor returns false to stop early;
// ForEachPrefixOf reports whether iteration was stopped.
func (t *PrefixTable) ForEachPrefixOf(word []rune, fn func(*Prefix) bool) bool {
	for _, e := range t.zeroAppending {
		if !fn(e) {
			return true
		}
	}
	if len(word) == 0 {
		return false
	}
	err := t.trie.VisitPrefixes(patricia.Prefix(string(word)), func(_ patricia.Prefix, item patricia.Item) error {
		for _, e := range item.([]*Prefix) {
			if !fn(e) {
				return errStopVisit
			}
		}
		return nil
	})
	return err != nil
}

// HasContinuationFlags reports whether any entry carries continuation flags.
func (t *PrefixTable) HasContinuationFlags() bool { return !t.allContFlags.Empty() }

// HasContinuationFlag reports whether any entry's continuation flags
// contain f.
func (t *PrefixTable) HasContinuationFlag(f flagset.Flag) bool { return t.allContFlags.Contains(f) }

// SuffixTable is the suffix counterpart of PrefixTable. Keys are stored
// reversed so that trailing substrings become trie prefixes.
type SuffixTable struct {
	zeroAppending []*Suffix
	trie          *patricia.Trie
	allContFlags  flagset.Set
}

// NewSuffixTable builds the index over entries.
func NewSuffixTable(entries []*Suffix) *SuffixTable {
	t := &SuffixTable{trie: patricia.NewTrie()}
	for _, e := range entries {
		t.allContFlags = t.allContFlags.Union(e.ContFlags)
		if len(e.Appending) == 0 {
			t.zeroAppending = append(t.zeroAppending, e)
			continue
		}
		key := patricia.Prefix(string(reverseRunes(e.Appending)))
		if item := t.trie.Get(key); item != nil {
			bucket := item.([]*Suffix)
			t.trie.Set(key, append(bucket, e))
		} else {
			t.trie.Set(key, []*Suffix{e})
		}
	}
	return t
}

// ForEachSuffixOf visits every entry whose appending is a trailing substring
// of word, shortest appendings first. The visitor returns false to stop
// early; ForEachSuffixOf reports whether iteration was stopped.
func (t *SuffixTable) ForEachSuffixOf(word []rune, fn func(*Suffix) bool) bool {
	for _, e := range t.zeroAppending {
		if !fn(e) {
			return true
		}
	}
	if len(word) == 0 {
		return false
	}
	err := t.trie.VisitPrefixes(patricia.Prefix(string(reverseRunes(word))), func(_ patricia.Prefix, item patricia.Item) error {
		for _, e := range item.([]*Suffix) {
			if !fn(e) {
				return errStopVisit
			}
		}
		return nil
	})
	return err != nil
}

// HasContinuationFlags reports whether any entry carries continuation flags.
func (t *SuffixTable) HasContinuationFlags() bool { return !t.allContFlags.Empty() }

// HasContinuationFlag reports whether any entry's continuation flags
// contain f.
func (t *SuffixTable) HasContinuationFlag(f flagset.Flag) bool { return t.allContFlags.Contains(f) }

func reverseRunes(rs []rune) []rune {
	out := make([]rune, len(rs))
	for i, r := range rs {
		out[len(rs)-1-i] = r
	}
	return out
}
