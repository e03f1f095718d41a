// generate.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the public surface of the package: the
// rejection-sampling outer loop that rerolls a board until it
// satisfies the given constraints (or a try budget is exhausted), and
// the fixed-board analysis entry point that bypasses rolling and
// constraints entirely.

package boggle

import "sort"

// GenerateResult is returned by Generate on success.
type GenerateResult struct {
	Words      []string
	DiceLayout string
	Tries      int
}

// Generate draws from rng, which the caller has already seeded; it
// rolls dice onto a width*height board, optionally prefilters, and
// evaluates, for up to maxTries attempts. It returns (result, true,
// nil) on the first board that satisfies every lower bound without
// tripping an upper bound, or (GenerateResult{}, false, nil) if the
// budget is exhausted. A (false) return is not an error: see spec.md
// section 7. Invalid dice or board dimensions return a non-nil error.
//
// usePrefilter enables the cheap statistical check of spec.md section
// 4.6 before running the full search on each candidate board.
func Generate(
	dict *Dictionary,
	scoreTable ScoreTable,
	width, height int,
	constraints Constraints,
	maxTries int,
	dice DiceSet,
	rng RNG,
	usePrefilter bool,
) (GenerateResult, bool, error) {
	if err := ValidateDiceSet(dice); err != nil {
		return GenerateResult{}, false, err
	}
	board, err := NewBoard(width, height)
	if err != nil {
		return GenerateResult{}, false, err
	}
	if len(dice) != width*height {
		return GenerateResult{}, false, &BadDie{Index: -1, Face: "dice set size does not match board dimensions"}
	}

	// Roll mutates its own copy of the dice set's ordering, not the
	// caller's slice, matching the teacher's "owned by the generator"
	// convention for mutable shared state.
	workingDice := make(DiceSet, len(dice))
	copy(workingDice, dice)

	eval := NewEvaluator(dict, scoreTable)
	normalized := NormalizeConstraints(constraints)

	for t := 1; t <= maxTries; t++ {
		Roll(board, workingDice, rng)
		if usePrefilter && !LooksPromising(board, normalized) {
			continue
		}
		eval.Bind(board, normalized)
		ok, result := eval.Evaluate()
		if ok {
			words := make([]string, len(result.Words))
			copy(words, result.Words)
			sort.Strings(words)
			return GenerateResult{
				Words:      words,
				DiceLayout: board.Layout(),
				Tries:      t,
			}, true, nil
		}
	}
	return GenerateResult{}, false, nil
}

// Analyse bypasses rolling and constraints: it parses an exact dice
// layout and runs the search with every minimum at 0 and every
// maximum unbounded, returning every word found on that fixed board.
func Analyse(dict *Dictionary, scoreTable ScoreTable, width, height int, layout string) ([]string, error) {
	board, err := ParseLayout(width, height, layout)
	if err != nil {
		return nil, err
	}
	eval := NewEvaluator(dict, scoreTable)
	eval.Bind(board, Constraints{
		MinWords:    0,
		MaxWords:    -1,
		MinScore:    0,
		MaxScore:    -1,
		MinLongest:  0,
		MaxLongest:  -1,
		MinLegalLen: 0,
	})
	_, result := eval.Evaluate()
	words := make([]string, len(result.Words))
	copy(words, result.Words)
	sort.Strings(words)
	return words, nil
}
