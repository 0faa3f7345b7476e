// Package textutil finds grapheme-cluster and word boundaries in UTF-8 text.
// All indices are byte offsets. Boundaries are recomputed on every call;
// nothing is cached between edits.
package textutil

import "github.com/rivo/uniseg"

// graphemeBoundaries calls fn with every grapheme boundary in text, in
// ascending order, including 0 and len(text). Iteration stops when fn
// returns false.
func graphemeBoundaries(text string, fn func(offset int) bool) {
	if !fn(0) {
		return
	}
	offset := 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		offset += len(cluster)
		if !fn(offset) {
			return
		}
	}
}

// NextGraphemeBoundary returns the smallest grapheme boundary strictly greater
// than index. ok is false when index is already at or past the end of text.
func NextGraphemeBoundary(text string, index int) (next int, ok bool) {
	if index >= len(text) {
		return len(text), false
	}
	graphemeBoundaries(text, func(offset int) bool {
		if offset > index {
			next, ok = offset, true
			return false
		}
		return true
	})
	return next, ok
}

// PrevGraphemeBoundary returns the largest grapheme boundary strictly less
// than index. ok is false when index is 0.
func PrevGraphemeBoundary(text string, index int) (prev int, ok bool) {
	if index <= 0 {
		return 0, false
	}
	graphemeBoundaries(text, func(offset int) bool {
		if offset >= index {
			return false
		}
		prev, ok = offset, true
		return true
	})
	return prev, ok
}

// SnapToGraphemeBoundary returns the largest grapheme boundary <= index,
// clamping index into [0, len(text)] first.
func SnapToGraphemeBoundary(text string, index int) int {
	if index <= 0 {
		return 0
	}
	if index >= len(text) {
		return len(text)
	}
	snapped := 0
	graphemeBoundaries(text, func(offset int) bool {
		if offset > index {
			return false
		}
		snapped = offset
		return true
	})
	return snapped
}

// IsGraphemeBoundary reports whether index falls between two grapheme clusters.
func IsGraphemeBoundary(text string, index int) bool {
	if index < 0 || index > len(text) {
		return false
	}
	return SnapToGraphemeBoundary(text, index) == index
}

// TruncateGraphemes returns the longest prefix of text made of whole grapheme
// clusters whose byte length does not exceed maxBytes.
func TruncateGraphemes(text string, maxBytes int) string {
	if maxBytes >= len(text) {
		return text
	}
	return text[:SnapToGraphemeBoundary(text, maxBytes)]
}
