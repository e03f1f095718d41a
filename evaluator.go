// evaluator.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file implements the search engine: a recursive traversal that
// simultaneously walks a Board's adjacency graph and a Dictionary's
// DAWG, enforcing a 64-bit used-tile bitmask, deduplicating found
// words, and failing fast as soon as an upper-bound constraint is
// provably violated. This is the hard core of the package; see
// spec.md section 4.5 for the invariants it must uphold.

package boggle

// neighbourDeltas lists the eight (dy, dx) offsets explored from each
// board position, in the fixed order top-left, top, top-right, left,
// right, bottom-left, bottom, bottom-right. The order only matters
// when an upper-bound abort happens mid-traversal; the set of
// accepted words is otherwise order-invariant.
var neighbourDeltas = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Evaluator owns everything a single-threaded board evaluation needs:
// the dictionary it searches against, the board it walks, the
// dedup set, the word buffer, and the per-evaluation counters. None of
// this may be aliased across goroutines; give each thread its own
// Evaluator (see spec.md section 5).
type Evaluator struct {
	dict  *Dictionary
	board *Board
	words *foundWordSet

	scoreTable  ScoreTable
	constraints Constraints

	// word is the buffer holding the current path's spelling; 17
	// bytes is enough for the 16-letter words the DAWG can contain
	// plus one byte of headroom.
	word    [maxWordLen + 1]byte
	wordLen int

	numWords int
	score    int
	longest  int
	failed   bool
}

// NewEvaluator builds an Evaluator bound to a dictionary and score
// table. Call Bind before each board to point it at that board's
// constraints and layout.
func NewEvaluator(dict *Dictionary, scoreTable ScoreTable) *Evaluator {
	return &Evaluator{
		dict:       dict,
		words:      newFoundWordSet(),
		scoreTable: scoreTable,
	}
}

// Bind points the evaluator at a board and the constraints to check
// it against. It does not itself reset counters; Evaluate does that
// on entry so that Bind can be called once and Evaluate many times if
// the board is mutated and re-evaluated (e.g. by the outer loop).
func (e *Evaluator) Bind(board *Board, constraints Constraints) {
	e.board = board
	e.constraints = NormalizeConstraints(constraints)
}

// Result holds the outcome of a search: the distinct words found and
// the counters derived from them.
type Result struct {
	Words   []string
	NumWords int
	Score   int
	Longest int
}

// Evaluate runs the full board+DAWG traversal described in spec.md
// section 4.5 and reports whether the board satisfies every lower
// bound and never tripped an upper bound. The found-word set and
// counters are reset on entry, so repeated calls on the same or
// different boards are independent.
func (e *Evaluator) Evaluate() (ok bool, result Result) {
	e.words.Reset()
	e.numWords = 0
	e.score = 0
	e.longest = 0
	e.failed = false
	e.wordLen = 0

	b := e.board
outer:
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if !e.step(1, 0, y, x, 0) {
				// Aborted: an upper bound was tripped. No further
				// starting position can undo that, so stop entirely.
				break outer
			}
		}
	}

	result = Result{
		Words:    e.words.Snapshot(),
		NumWords: e.numWords,
		Score:    e.score,
		Longest:  e.longest,
	}

	if e.failed {
		return false, result
	}
	c := e.constraints
	if e.numWords < c.MinWords || e.score < c.MinScore {
		return false, result
	}
	if e.longest < c.MinLongest || e.longest > c.MaxLongest {
		return false, result
	}
	return true, result
}

// step descends one board position at DAWG index i, having matched
// word_len letters so far along used. It returns false to unwind the
// whole recursion immediately ("abort", an upper bound was tripped)
// or true to keep exploring sibling calls ("continue").
func (e *Evaluator) step(i uint32, wordLen int, y, x int, used uint64) bool {
	if e.failed {
		return false
	}
	b := e.board
	if !b.inBounds(y, x) {
		return true
	}
	mask := b.bit(y, x)
	if used&mask != 0 {
		return true
	}

	c := decodeTile(b.Dice[y*b.Width+x])
	if c.isMulti {
		first := e.dict.findSibling(i, c.first)
		if first == null {
			return true
		}
		childIdx := e.dict.child(first)
		if childIdx == null {
			return true
		}
		second := e.dict.findSibling(childIdx, c.second)
		if second == null {
			return true
		}
		e.word[wordLen] = c.first
		e.word[wordLen+1] = c.second
		wordLen += 2
		i = second
	} else {
		next := e.dict.findSibling(i, c.letter)
		if next == null {
			return true
		}
		e.word[wordLen] = c.letter
		wordLen++
		i = next
	}

	used |= mask

	if e.dict.eow(i) && wordLen >= e.constraints.MinLegalLen {
		word := string(e.word[:wordLen])
		if e.words.Insert(word) {
			e.numWords++
			if e.numWords > e.constraints.MaxWords {
				e.failed = true
				return false
			}
			e.score += e.scoreTable.ScoreFor(wordLen)
			if e.score > e.constraints.MaxScore {
				e.failed = true
				return false
			}
			if wordLen > e.longest {
				e.longest = wordLen
				if e.longest > e.constraints.MaxLongest {
					e.failed = true
					return false
				}
			}
		}
	}

	childIdx := e.dict.child(i)
	if childIdx != null {
		for _, d := range neighbourDeltas {
			if !e.step(childIdx, wordLen, y+d[0], x+d[1], used) {
				return false
			}
		}
	}
	return true
}
