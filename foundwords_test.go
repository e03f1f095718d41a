// foundwords_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

package boggle

import "testing"

func TestFoundWordSetInsertDedup(t *testing.T) {
	s := newFoundWordSet()
	if !s.Insert("CAT") {
		t.Fatal("first Insert(\"CAT\") should report novel")
	}
	if s.Insert("CAT") {
		t.Fatal("second Insert(\"CAT\") should report duplicate")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestFoundWordSetResetIsComplete(t *testing.T) {
	s := newFoundWordSet()
	s.Insert("CAT")
	s.Insert("DOG")
	s.Reset()
	if s.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", s.Len())
	}
	if !s.Insert("CAT") {
		t.Fatal("Insert(\"CAT\") after Reset should report novel again")
	}
}

func TestFoundWordSetSnapshotMatchesLen(t *testing.T) {
	s := newFoundWordSet()
	words := []string{"A", "AT", "CAT", "CATS"}
	for _, w := range words {
		s.Insert(w)
	}
	snap := s.Snapshot()
	if len(snap) != len(words) {
		t.Fatalf("Snapshot() len = %d, want %d", len(snap), len(words))
	}
}

func TestFoundWordSetCollisionSurvivesProbing(t *testing.T) {
	// Two distinct words that collide under fnv1aHash must both be
	// retrievable as distinct entries.
	s := newFoundWordSet()
	n := uint64(len(s.slots))
	var a, b string
	for i := 0; i < 100000 && (a == "" || b == ""); i++ {
		w := string(rune('A' + i%26))
		h := fnv1aHash(w) % n
		_ = h
	}
	// Direct collision search over short strings; if none is found in
	// range, the test is skipped (TestFoundWordSetInsertDedup covers
	// dedup without a collision).
	seen := map[uint64]string{}
	for i := 0; i < 2000; i++ {
		w := randomShortWord(i)
		h := fnv1aHash(w) % n
		if other, ok := seen[h]; ok && other != w {
			a, b = other, w
			break
		}
		seen[h] = w
	}
	if a == "" {
		t.Skip("no collision found among sampled words; dedup path not exercised further")
	}
	s.Insert(a)
	s.Insert(b)
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 distinct words under a hash collision", s.Len())
	}
}

// randomShortWord deterministically derives a short uppercase string
// from i, without using math/rand (Insert only cares about distinct
// byte content).
func randomShortWord(i int) string {
	buf := [3]byte{
		byte('A' + i%26),
		byte('A' + (i/26)%26),
		byte('A' + (i/676)%26),
	}
	return string(buf[:])
}
