// Package flagset implements the 16-bit morphological flag codes attached to
// dictionary stems and affix entries, and the ordered sets they are stored in.
package flagset

import (
	"sort"
)

// Flag identifies a morphological property of a stem or affix.
// The zero value means "no flag".
type Flag uint16

// Unset is the sentinel for an absent flag.
const Unset Flag = 0

// HiddenHomonym marks stem entries inserted internally for case-folded
// duplicates. The numeric flag 65535 and the UTF-8 flag U+FFFF decode to the
// same value.
const HiddenHomonym Flag = 0xFFFF

// Set is an ordered, duplicate-free collection of flags.
// The zero value is an empty set ready to use.
type Set struct {
	flags []Flag
}

// New builds a Set from the given flags, sorting and deduplicating them.
func New(flags ...Flag) Set {
	s := Set{flags: append([]Flag(nil), flags...)}
	s.sortUniq()
	return s
}

func (s *Set) sortUniq() {
	sort.Slice(s.flags, func(i, j int) bool { return s.flags[i] < s.flags[j] })
	out := s.flags[:0]
	var prev Flag
	for i, f := range s.flags {
		if i > 0 && f == prev {
			continue
		}
		out = append(out, f)
		prev = f
	}
	s.flags = out
}

// Contains reports whether f is a member of the set.
func (s Set) Contains(f Flag) bool {
	n := len(s.flags)
	if n <= 8 {
		for _, x := range s.flags {
			if x == f {
				return true
			}
		}
		return false
	}
	i := sort.Search(n, func(i int) bool { return s.flags[i] >= f })
	return i < n && s.flags[i] == f
}

// Insert adds f to the set, keeping it ordered.
func (s *Set) Insert(f Flag) {
	i := sort.Search(len(s.flags), func(i int) bool { return s.flags[i] >= f })
	if i < len(s.flags) && s.flags[i] == f {
		return
	}
	s.flags = append(s.flags, 0)
	copy(s.flags[i+1:], s.flags[i:])
	s.flags[i] = f
}

// Union merges other into a new set.
func (s Set) Union(other Set) Set {
	merged := make([]Flag, 0, len(s.flags)+len(other.flags))
	merged = append(merged, s.flags...)
	merged = append(merged, other.flags...)
	u := Set{flags: merged}
	u.sortUniq()
	return u
}

// Intersects reports whether the two sets share any flag.
func (s Set) Intersects(other Set) bool {
	i, j := 0, 0
	for i < len(s.flags) && j < len(other.flags) {
		switch {
		case s.flags[i] < other.flags[j]:
			i++
		case s.flags[i] > other.flags[j]:
			j++
		default:
			return true
		}
	}
	return false
}

// Equal reports element-wise equality.
func (s Set) Equal(other Set) bool {
	if len(s.flags) != len(other.flags) {
		return false
	}
	for i, f := range s.flags {
		if other.flags[i] != f {
			return false
		}
	}
	return true
}

// Len returns the number of flags in the set.
func (s Set) Len() int { return len(s.flags) }

// Empty reports whether the set has no flags.
func (s Set) Empty() bool { return len(s.flags) == 0 }

// Flags returns the ordered members. The slice must not be mutated.
func (s Set) Flags() []Flag { return s.flags }
