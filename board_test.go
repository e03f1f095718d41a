// board_test.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

package boggle

import (
	"errors"
	"testing"
)

func TestNewBoardRejectsOversizedBoard(t *testing.T) {
	_, err := NewBoard(7, 6) // 42 cells > MaxCells (36)
	var tooLarge *BoardTooLarge
	if !errors.As(err, &tooLarge) {
		t.Fatalf("NewBoard(7, 6) error = %v, want *BoardTooLarge", err)
	}
}

func TestNewBoardAcceptsBoundaryCase(t *testing.T) {
	if _, err := NewBoard(6, 6); err != nil {
		t.Fatalf("NewBoard(6, 6) error = %v, want nil", err)
	}
}

func TestParseLayoutRoundTrip(t *testing.T) {
	b, err := ParseLayout(2, 2, "ABCD")
	if err != nil {
		t.Fatalf("ParseLayout: %v", err)
	}
	if got := b.Layout(); got != "ABCD" {
		t.Fatalf("Layout() = %q, want %q", got, "ABCD")
	}
}

func TestParseLayoutRejectsWrongLength(t *testing.T) {
	_, err := ParseLayout(2, 2, "ABC")
	var badDie *BadDie
	if !errors.As(err, &badDie) {
		t.Fatalf("ParseLayout error = %v, want *BadDie", err)
	}
}

func TestParseLayoutRejectsInvalidTileCode(t *testing.T) {
	_, err := ParseLayout(2, 2, "AB9D")
	var badDie *BadDie
	if !errors.As(err, &badDie) {
		t.Fatalf("ParseLayout error = %v, want *BadDie", err)
	}
}

func TestNormalizeConstraintsSubstitutesUnbounded(t *testing.T) {
	c := NormalizeConstraints(Constraints{MaxWords: -1, MaxScore: -1, MaxLongest: -1})
	if c.MaxWords != unbounded || c.MaxScore != unbounded || c.MaxLongest != unbounded {
		t.Fatalf("NormalizeConstraints did not substitute unbounded sentinels: %+v", c)
	}
}

func TestValidateDiceSetRejectsBadDie(t *testing.T) {
	dice := DiceSet{"AAEEGN", "TOOSHORT"}
	err := ValidateDiceSet(dice)
	var badDie *BadDie
	if !errors.As(err, &badDie) {
		t.Fatalf("ValidateDiceSet error = %v, want *BadDie", err)
	}
	if badDie.Index != 1 {
		t.Fatalf("BadDie.Index = %d, want 1", badDie.Index)
	}
}

func TestStandardEnglishDiceIsValid(t *testing.T) {
	if len(StandardEnglishDice) != 16 {
		t.Fatalf("len(StandardEnglishDice) = %d, want 16", len(StandardEnglishDice))
	}
	if err := ValidateDiceSet(StandardEnglishDice); err != nil {
		t.Fatalf("ValidateDiceSet(StandardEnglishDice) = %v, want nil", err)
	}
}

func TestScoreForUsesLastEntryPastTableEnd(t *testing.T) {
	if got := StandardScoreTable.ScoreFor(100); got != 11 {
		t.Fatalf("ScoreFor(100) = %d, want 11", got)
	}
	if got := StandardScoreTable.ScoreFor(3); got != 1 {
		t.Fatalf("ScoreFor(3) = %d, want 1", got)
	}
}
