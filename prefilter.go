// prefilter.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements an optional, cheap statistical check on a
// freshly rolled board that rejects layouts unlikely to satisfy the
// constraints, without running the full search. False positives are
// fine (they merely cost a wasted search); a false negative discards
// a board that might have qualified and merely costs another roll.
// The thresholds below are loose heuristics, not an exact contract.

package boggle

// LooksPromising applies the rules of spec.md section 4.6 in order;
// any rule failing returns false immediately.
func LooksPromising(board *Board, c Constraints) bool {
	n := len(board.Dice)
	if n == 0 {
		return false
	}

	vowels := CountByte(board.Dice, 'A') + CountByte(board.Dice, 'E') + CountByte(board.Dice, 'I') +
		CountByte(board.Dice, 'O') + CountByte(board.Dice, 'U') +
		CountByte(board.Dice, '2') + CountByte(board.Dice, '5') // "IN", "HE" are vowel-bearing
	consonants := CountByte(board.Dice, 'S') + CountByte(board.Dice, 'R') + CountByte(board.Dice, 'T') +
		CountByte(board.Dice, 'N') + CountByte(board.Dice, 'L')

	var multi int
	for _, code := range board.Dice {
		if isMultiLetter(code) {
			multi++
		}
	}
	hasSDG := ContainsByte(board.Dice, 'S') || ContainsByte(board.Dice, 'D') || ContainsByte(board.Dice, 'G')

	demanding := c.MinWords > 100
	veryDemanding := c.MinWords > 200 || c.MinLongest > 10

	vowelFrac := float64(vowels) / float64(n)
	lo, hi := 0.15, 0.65
	if demanding {
		lo, hi = 0.20, 0.55
	}
	if vowelFrac < lo || vowelFrac > hi {
		return false
	}

	minConsonants := 1
	if veryDemanding {
		minConsonants = 3
	} else if demanding {
		minConsonants = 2
	}
	if consonants < minConsonants {
		return false
	}

	if multi > n/2 {
		return false
	}

	if veryDemanding {
		if vowels < 3 || !hasSDG {
			return false
		}
	}

	return true
}
