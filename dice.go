// dice.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the dice roller: a Fisher-Yates shuffle of
// dice-to-positions followed by a per-position face pick. The RNG
// itself is treated as an injected stream of uniform integers, so the
// roller never reaches for a global random source.

package boggle

// RNG is the source of uniform random integers the roller (and the
// outer generation loop) draws from. *rand.Rand satisfies this
// interface, so callers can seed their own.
type RNG interface {
	// Intn returns a uniform pseudo-random integer in [0, n).
	Intn(n int) int
}

// Roll shuffles dice in place with a Fisher-Yates permutation driven
// by rng, then picks one face per position, writing the result into
// board. len(dice) must equal len(board.Dice); Roll panics otherwise,
// as this is a programming error, not a runtime condition to recover
// from.
func Roll(board *Board, dice DiceSet, rng RNG) {
	n := len(dice)
	if n != len(board.Dice) {
		panic("boggle: dice set size does not match board dimensions")
	}
	// Fisher-Yates: for i from n-1 down to 1, swap dice[i] with a
	// uniformly chosen dice[j], j in [0, i]. This mutates dice
	// in place; it is owned by the generator, and only the order
	// of the (pointer-identical) face strings changes.
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dice[i], dice[j] = dice[j], dice[i]
	}
	for i := 0; i < n; i++ {
		face := dice[i][rng.Intn(6)]
		board.Dice[i] = face
	}
}
