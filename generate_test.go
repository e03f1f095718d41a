// generate_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

package boggle

import "testing"

// fixedFaceDiceRNG returns an RNG whose every draw is 0, so rolling
// single-face dice always yields the same layout. With the dice
// C, A, A, T on a 2x2 board, where every cell touches every other,
// that layout spells CAT and AT whatever the shuffle order.
func fixedFaceDiceRNG() RNG {
	return &sequenceRNG{seq: []int{0, 0, 0, 0, 0, 0, 0, 0}}
}

func TestGenerateFindsQualifyingBoard(t *testing.T) {
	dict := wordsDawg()
	dice := DiceSet{"CCCCCC", "AAAAAA", "AAAAAA", "TTTTTT"}

	result, ok, err := Generate(
		dict, StandardScoreTable, 2, 2,
		Constraints{MinWords: 1, MinLegalLen: 2, MaxWords: -1, MaxScore: -1, MaxLongest: -1},
		10, dice, fixedFaceDiceRNG(), false,
	)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !ok {
		t.Fatal("Generate() ok = false, want true")
	}
	if len(result.Words) == 0 {
		t.Fatal("Generate() found no words on a board that should spell CAT/AT")
	}
	if result.Tries < 1 {
		t.Fatalf("Tries = %d, want >= 1", result.Tries)
	}
}

func TestGenerateExhaustsBudget(t *testing.T) {
	dict := wordsDawg()
	dice := DiceSet{"XXXXXX", "XXXXXX", "XXXXXX", "XXXXXX"}

	result, ok, err := Generate(
		dict, StandardScoreTable, 2, 2,
		Constraints{MinWords: 1, MinLegalLen: 2, MaxWords: -1, MaxScore: -1, MaxLongest: -1},
		5, dice, fixedFaceDiceRNG(), false,
	)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if ok {
		t.Fatal("Generate() ok = true, want false (no X-spelled word exists)")
	}
	if result.Tries != 0 {
		t.Fatalf("GenerateResult on failure should be zero value, got %+v", result)
	}
}

func TestGenerateRejectsMismatchedDiceCount(t *testing.T) {
	dict := wordsDawg()
	dice := DiceSet{"AAAAAA"}
	_, ok, err := Generate(
		dict, StandardScoreTable, 2, 2,
		Constraints{}, 10, dice, fixedFaceDiceRNG(), false,
	)
	if ok {
		t.Fatal("Generate() ok = true, want false")
	}
	if err == nil {
		t.Fatal("Generate() err = nil, want a dice/board mismatch error")
	}
}

func TestAnalyseIsDeterministic(t *testing.T) {
	dict := wordsDawg()
	words, err := Analyse(dict, StandardScoreTable, 2, 2, "CAAT")
	if err != nil {
		t.Fatalf("Analyse: %v", err)
	}
	words2, err := Analyse(dict, StandardScoreTable, 2, 2, "CAAT")
	if err != nil {
		t.Fatalf("Analyse: %v", err)
	}
	if len(words) != len(words2) {
		t.Fatalf("Analyse() not deterministic: %v vs %v", words, words2)
	}
	for i := range words {
		if words[i] != words2[i] {
			t.Fatalf("Analyse() not deterministic: %v vs %v", words, words2)
		}
	}
}

func TestAnalyseRejectsBadLayout(t *testing.T) {
	dict := wordsDawg()
	_, err := Analyse(dict, StandardScoreTable, 2, 2, "TOO LONG")
	if err == nil {
		t.Fatal("Analyse() err = nil, want a layout-length error")
	}
}
