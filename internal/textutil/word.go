package textutil

import "github.com/rivo/uniseg"

// WordBoundaries returns the UAX #29 word boundaries of text in ascending
// order: the start offset of every word segment followed by len(text).
// Whitespace and punctuation runs count as their own segments, so "foo bar"
// yields 0, 3, 4, 7.
func WordBoundaries(text string) []int {
	bounds := []int{0}
	offset := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		offset += len(word)
		bounds = append(bounds, offset)
	}
	return bounds
}

// CeilWordBoundary returns the first word boundary strictly greater than
// index, or len(text) when there is none.
func CeilWordBoundary(text string, index int) int {
	for _, b := range WordBoundaries(text) {
		if b > index {
			return b
		}
	}
	return len(text)
}

// FloorWordBoundary returns the last word boundary at or before index, or 0
// when there is none.
func FloorWordBoundary(text string, index int) int {
	floor := 0
	for _, b := range WordBoundaries(text) {
		if b > index {
			break
		}
		floor = b
	}
	return floor
}
