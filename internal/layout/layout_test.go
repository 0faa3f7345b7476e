package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bethropolis/tide-input/internal/types"
)

func ia(i int, a types.Affinity) types.IndexAffinity {
	return types.IndexAffinity{Index: i, Affinity: a}
}

func pos(line, col int) types.Position {
	return types.Position{Line: line, Col: col}
}

func TestRows(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []Row
	}{
		{"empty", "", 10, []Row{{0, 0, false}}},
		{"no wrap", "abcdef", 0, []Row{{0, 6, false}}},
		{"soft wrap", "abcdef", 3, []Row{{0, 3, true}, {3, 6, false}}},
		{"hard break", "ab\ncd", 10, []Row{{0, 2, false}, {3, 5, false}}},
		{"trailing newline", "ab\n", 10, []Row{{0, 2, false}, {3, 3, false}}},
		{"crlf", "ab\r\ncd", 10, []Row{{0, 2, false}, {4, 6, false}}},
		{"wide wrap", "日本", 3, []Row{{0, 3, true}, {3, 6, false}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.width, 4).Rows(tt.text))
		})
	}
}

func TestAffinityAtSoftWrap(t *testing.T) {
	l := New(3, 4)
	text := "abcdef"

	assert.Equal(t, pos(0, 3), l.IndexAffinityToPosition(text, ia(3, types.After)))
	assert.Equal(t, pos(1, 0), l.IndexAffinityToPosition(text, ia(3, types.Before)))

	assert.Equal(t, ia(3, types.After), l.PositionToIndexAffinity(text, pos(0, 5)))
	assert.Equal(t, ia(3, types.Before), l.PositionToIndexAffinity(text, pos(1, 0)))
	assert.Equal(t, ia(4, types.Before), l.PositionToIndexAffinity(text, pos(1, 1)))
}

func TestAffinityIgnoredAtHardBreak(t *testing.T) {
	l := New(10, 4)
	text := "ab\ncd"

	assert.Equal(t, pos(0, 2), l.IndexAffinityToPosition(text, ia(2, types.Before)))
	assert.Equal(t, pos(0, 2), l.IndexAffinityToPosition(text, ia(2, types.After)))
	assert.Equal(t, pos(1, 0), l.IndexAffinityToPosition(text, ia(3, types.Before)))
	assert.Equal(t, pos(1, 2), l.IndexAffinityToPosition(text, ia(5, types.After)))
}

func TestPositionOutsideText(t *testing.T) {
	l := New(10, 4)
	text := "ab\ncd"

	assert.Equal(t, ia(0, types.Before), l.PositionToIndexAffinity(text, pos(-1, 3)))
	assert.Equal(t, ia(5, types.After), l.PositionToIndexAffinity(text, pos(7, 0)))
	assert.Equal(t, ia(2, types.After), l.PositionToIndexAffinity(text, pos(0, 9)))
}

func TestPositionSnapsToNearestClusterEdge(t *testing.T) {
	l := New(0, 4)
	text := "日本"

	assert.Equal(t, ia(0, types.Before), l.PositionToIndexAffinity(text, pos(0, 0)))
	// Column 1 is the right half of 日: equidistant, so it snaps forward.
	assert.Equal(t, ia(3, types.Before), l.PositionToIndexAffinity(text, pos(0, 1)))
	assert.Equal(t, ia(3, types.Before), l.PositionToIndexAffinity(text, pos(0, 2)))
	assert.Equal(t, pos(0, 2), l.IndexAffinityToPosition(text, ia(3, types.Before)))
}

func TestTabsExpandToTabStops(t *testing.T) {
	l := New(0, 4)
	text := "a\tb"

	assert.Equal(t, pos(0, 4), l.IndexAffinityToPosition(text, ia(2, types.Before)))
	assert.Equal(t, pos(0, 5), l.IndexAffinityToPosition(text, ia(3, types.After)))
}

func TestRowStartAndEnd(t *testing.T) {
	l := New(3, 4)
	text := "abcdef"

	assert.Equal(t, ia(3, types.Before), l.RowStart(text, ia(5, types.Before)))
	assert.Equal(t, ia(6, types.After), l.RowEnd(text, ia(4, types.Before)))
	assert.Equal(t, ia(3, types.After), l.RowEnd(text, ia(1, types.Before)))
	assert.Equal(t, ia(0, types.Before), l.RowStart(text, ia(3, types.After)))
}

func TestRoundTripEveryBoundary(t *testing.T) {
	l := New(4, 4)
	text := "h\u00e9llo w\u00f6rld\nsecond line"
	for i := 0; i <= len(text); i++ {
		for _, a := range []types.Affinity{types.Before, types.After} {
			p := l.IndexAffinityToPosition(text, ia(i, a))
			back := l.PositionToIndexAffinity(text, p)
			if back.Index != i {
				// Only offsets inside multi-byte clusters may fail to round-trip.
				assert.Equal(t, byte(0x80), text[i]&0xC0, "index %d", i)
			}
		}
	}
}
