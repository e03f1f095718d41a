// tile.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file defines the tile-code alphabet and its decoding into the
// letter-or-two-letter tagged variant the search engine consumes.

package boggle

// TileCode is a single byte identifying what a board position spells.
// Codes 'A'-'Z' are ordinary letters; codes '0'-'5' are predefined
// multi-letter tiles (see multiLetterTiles below).
type TileCode = byte

// multiLetterTiles maps a digit tile code to its two-letter expansion.
// '0' expands to "__", which never matches a real DAWG letter and so
// always short-circuits the search at the first sibling scan.
var multiLetterTiles = [6]string{
	'0' - '0': "__",
	'1' - '0': "QU",
	'2' - '0': "IN",
	'3' - '0': "TH",
	'4' - '0': "ER",
	'5' - '0': "HE",
}

// isMultiLetter reports whether c is one of the '0'..'5' tile codes.
func isMultiLetter(c byte) bool {
	return c >= '0' && c <= '5'
}

// expansion returns the two letters a multi-letter tile code stands
// for. c must satisfy isMultiLetter(c).
func expansion(c byte) (first, second byte) {
	s := multiLetterTiles[c-'0']
	return s[0], s[1]
}

// tile is the tagged variant {Letter(byte), Multi(byte, byte)} called
// for from a single decoder at the start of each search step, rather
// than branching on the character range inline at every call site.
type tile struct {
	isMulti      bool
	letter       byte // valid when !isMulti
	first, second byte // valid when isMulti
}

// decodeTile classifies a raw board tile code into its letter-or-multi
// form.
func decodeTile(c TileCode) tile {
	if isMultiLetter(c) {
		first, second := expansion(c)
		return tile{isMulti: true, first: first, second: second}
	}
	return tile{letter: c}
}
