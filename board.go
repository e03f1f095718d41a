// board.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson
// This file implements the Board, its tile layout, the Constraints
// and ScoreTable records, and the Die/DiceSet types used to roll it.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package boggle

import (
	"fmt"
	"strings"
)

// MaxCells is the largest board width*height this module accepts. A
// 64-bit used-tile bitmask has headroom well past this; the cap is the
// dictionary/search budget's, not the bitmask's.
const MaxCells = 36

// unbounded is the internal sentinel substituted for a "-1" (no
// upper bound) constraint field.
const unbounded = 1 << 30

// Constraints describes the lexical quality bounds a generated board
// must satisfy. A "max" field of -1 denotes "unbounded" at the public
// surface; NormalizeConstraints substitutes unbounded for it.
type Constraints struct {
	MinWords    int
	MaxWords    int
	MinScore    int
	MaxScore    int
	MinLongest  int
	MaxLongest  int
	MinLegalLen int
}

// NormalizeConstraints returns a copy of c with every "-1" max field
// replaced by the internal unbounded sentinel.
func NormalizeConstraints(c Constraints) Constraints {
	if c.MaxWords < 0 {
		c.MaxWords = unbounded
	}
	if c.MaxScore < 0 {
		c.MaxScore = unbounded
	}
	if c.MaxLongest < 0 {
		c.MaxLongest = unbounded
	}
	return c
}

// ScoreTable maps a word length to the points it is worth. Lengths
// past the end of the table use the last entry; by convention lengths
// 0-2 score 0.
type ScoreTable []int

// ScoreFor returns the score for a word of the given length.
func (st ScoreTable) ScoreFor(length int) int {
	if length < len(st) {
		return st[length]
	}
	if len(st) == 0 {
		return 0
	}
	return st[len(st)-1]
}

// StandardScoreTable is the classic 4x4 Boggle scoring table: lengths
// 0-2 score 0, and words of 8 or more letters are all worth 11.
var StandardScoreTable = ScoreTable{0, 0, 0, 1, 1, 2, 3, 5, 11, 11, 11, 11, 11, 11, 11, 11, 11}

// Board owns the current dice layout and the dimensions it was rolled
// for. It does not own per-evaluation counters; those live on the
// Evaluator that walks it (see evaluator.go), so that one Board may be
// shared read-only across evaluators that each hold their own state.
type Board struct {
	Width, Height int
	// Dice is the flat, row-major layout of tile codes. Position
	// (y, x) maps to Dice[y*Width+x] and to bit y*Width+x of the
	// used-tile bitmask.
	Dice []TileCode
}

// NewBoard allocates an empty board of the given dimensions. It
// returns *BoardTooLarge if width*height exceeds MaxCells.
func NewBoard(width, height int) (*Board, error) {
	if width*height > MaxCells {
		return nil, &BoardTooLarge{Width: width, Height: height}
	}
	return &Board{
		Width:  width,
		Height: height,
		Dice:   make([]TileCode, width*height),
	}, nil
}

// bit returns the used-mask bit for board position (y, x).
func (b *Board) bit(y, x int) uint64 {
	return 1 << uint(y*b.Width+x)
}

// inBounds reports whether (y, x) is a valid board position.
func (b *Board) inBounds(y, x int) bool {
	return y >= 0 && y < b.Height && x >= 0 && x < b.Width
}

// Layout returns the board's dice layout as a flat string of tile
// codes, in row-major order.
func (b *Board) Layout() string {
	return string(b.Dice)
}

// SetLayout overwrites the board's dice from a flat, row-major layout
// string. The caller is responsible for validating the alphabet; use
// ParseLayout for a validating constructor.
func (b *Board) SetLayout(layout string) {
	copy(b.Dice, layout)
}

// ParseLayout builds a Board from an exact dice layout string of
// length width*height, rejecting any byte outside the tile-code
// alphabet with *BadDie.
func ParseLayout(width, height int, layout string) (*Board, error) {
	board, err := NewBoard(width, height)
	if err != nil {
		return nil, err
	}
	if len(layout) != width*height {
		return nil, &BadDie{Index: -1, Face: layout}
	}
	for i := 0; i < len(layout); i++ {
		c := layout[i]
		if !validTileCode(c) {
			return nil, &BadDie{Index: i, Face: string(c)}
		}
	}
	board.SetLayout(layout)
	return board, nil
}

// validTileCode reports whether c is a legal tile code: 'A'-'Z' or
// '0'-'5'.
func validTileCode(c byte) bool {
	return (c >= 'A' && c <= 'Z') || isMultiLetter(c)
}

// String renders the board as a grid, one row per line, spaces
// between tile codes, in the teacher's plain-text board style.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			sb.WriteString(fmt.Sprintf("%c ", b.Dice[y*b.Width+x]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Die is a string of exactly six face characters, drawn from the
// tile-code alphabet.
type Die string

// validate reports an error if the die does not have exactly six
// valid tile-code faces.
func (d Die) validate(index int) error {
	if len(d) != 6 {
		return &BadDie{Index: index, Face: string(d)}
	}
	for i := 0; i < len(d); i++ {
		if !validTileCode(d[i]) {
			return &BadDie{Index: index, Face: string(d)}
		}
	}
	return nil
}

// DiceSet is an ordered collection of width*height dice. Rolling
// mutates its order in place (see Roll in dice.go); the six-face
// strings themselves are not copied, only reordered.
type DiceSet []Die

// ValidateDiceSet checks that every die in the set has exactly six
// valid tile-code faces, returning the first violation found.
func ValidateDiceSet(dice DiceSet) error {
	for i, d := range dice {
		if err := d.validate(i); err != nil {
			return err
		}
	}
	return nil
}

// StandardEnglishDice is the classic 4x4 Boggle dice set (16 dice, six
// faces each), using the upper-case letter alphabet plus the 'QU'
// multi-letter tile ('1').
var StandardEnglishDice = DiceSet{
	"AAEEGN", "ELRTTY", "AOOTTW", "ABBJOO",
	"EHRTVW", "CIMOTU", "DISTTY", "EIOSST",
	"DELRVY", "ACHOPS", "HIMNU1", "EEINSU",
	"EEGHNW", "AFFKPS", "HLNNRZ", "DEILRX",
}
