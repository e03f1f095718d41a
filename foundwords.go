// foundwords.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the found-word set: a bounded, deduplicating
// container keyed by byte-string, open-addressed with linear probing
// so that a parallel list of used slots gives an O(used) reset
// between boards instead of a full-table scan.

package boggle

// maxWordLen is the longest word the packed DAWG can spell; the word
// buffer used during search (see evaluator.go) is sized to match.
const maxWordLen = 16

// foundWordSetCapacity is a prime comfortably above the few thousand
// words a single board can realistically yield, keeping the load
// factor at peak occupancy well below 0.5.
const foundWordSetCapacity = 16381

// foundWordSet is an open-addressed, linear-probed hash table of
// words found during one board evaluation. Duplicate detection
// tolerates arbitrary hash collisions via probing; novelty is
// reported by Insert so the search engine only scores a word once.
type foundWordSet struct {
	slots    []string // the word held in each slot
	used     []int    // indices into slots that are occupied, for O(used) reset
	occupied []bool   // marks which slots hold a word
}

func newFoundWordSet() *foundWordSet {
	return &foundWordSet{
		slots:    make([]string, foundWordSetCapacity),
		used:     make([]int, 0, 4096),
		occupied: make([]bool, foundWordSetCapacity),
	}
}

// fnv1aHash is a small, fast string hash; collisions are resolved by
// linear probing, so the exact distribution only affects performance,
// never correctness.
func fnv1aHash(s string) uint64 {
	const offset = 14695981039346656037
	const prime = 1099511628211
	h := uint64(offset)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return h
}

// Insert adds word to the set, returning true if it was not already
// present. word must be at most maxWordLen bytes long.
func (s *foundWordSet) Insert(word string) bool {
	n := uint64(len(s.slots))
	i := fnv1aHash(word) % n
	for {
		if !s.occupied[i] {
			s.slots[i] = word
			s.occupied[i] = true
			s.used = append(s.used, int(i))
			return true
		}
		if s.slots[i] == word {
			return false
		}
		i = (i + 1) % n
	}
}

// Reset empties the set in O(distinct previously inserted entries) by
// walking only the slots that were touched since the last reset.
func (s *foundWordSet) Reset() {
	for _, i := range s.used {
		s.slots[i] = ""
		s.occupied[i] = false
	}
	s.used = s.used[:0]
}

// Len returns the number of distinct words currently held.
func (s *foundWordSet) Len() int {
	return len(s.used)
}

// Snapshot returns the set's contents. The order is deterministic
// given insertion order (it is simply insertion order), but is not
// otherwise meaningful; sort the result if a canonical ordering is
// required.
func (s *foundWordSet) Snapshot() []string {
	words := make([]string, len(s.used))
	for i, slot := range s.used {
		words[i] = s.slots[slot]
	}
	return words
}
