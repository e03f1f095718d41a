// utils.go
// Copyright (C) 2018 Vilhjálmur Þorsteinsson

// This file contains general byte-slice utility functions, used by the
// prefilter.

package boggle

// ContainsByte reports whether a byte slice contains b.
func ContainsByte(s []byte, b byte) bool {
	for _, c := range s {
		if c == b {
			return true
		}
	}
	return false
}

// CountByte returns the number of times b occurs in s.
func CountByte(s []byte, b byte) int {
	count := 0
	for _, c := range s {
		if c == b {
			count++
		}
	}
	return count
}
