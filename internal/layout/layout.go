// Package layout maps between byte indices in a text and cell positions on
// screen. Text is hard-broken at newlines and soft-wrapped at a cell width.
package layout

import (
	"github.com/rivo/uniseg"

	"github.com/bethropolis/tide-input/internal/types"
)

const DefaultTabWidth = 4

// farColumn is past the end of any row.
const farColumn = 1 << 24

// Row is one visual row: the byte range [Start, End) of the text it shows.
// Wrapped is true when the row ends at a soft wrap rather than a newline or
// the end of the text; in that case End equals the next row's Start.
type Row struct {
	Start   int
	End     int
	Wrapped bool
}

// Layout wraps text into rows of at most Width cells. Width <= 0 disables
// soft wrapping.
type Layout struct {
	Width    int
	TabWidth int
}

// New creates a layout for the given wrap width and tab width.
func New(width, tabWidth int) *Layout {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return &Layout{Width: width, TabWidth: tabWidth}
}

// SetWidth changes the wrap width, e.g. after a terminal resize.
func (l *Layout) SetWidth(width int) {
	l.Width = width
}

func isNewline(cluster string) bool {
	return cluster == "\n" || cluster == "\r\n" || cluster == "\r"
}

// cellWidth is the number of cells cluster occupies when drawn at col.
func (l *Layout) cellWidth(cluster string, width, col int) int {
	if cluster == "\t" {
		return l.TabWidth - col%l.TabWidth
	}
	return width
}

// Rows splits text into visual rows. There is always at least one row.
func (l *Layout) Rows(text string) []Row {
	var rows []Row
	rowStart, col, offset := 0, 0, 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)

		if isNewline(cluster) {
			rows = append(rows, Row{Start: rowStart, End: offset})
			offset += len(cluster)
			rowStart, col = offset, 0
			continue
		}

		cells := l.cellWidth(cluster, w, col)
		if l.Width > 0 && col > 0 && col+cells > l.Width {
			rows = append(rows, Row{Start: rowStart, End: offset, Wrapped: true})
			rowStart, col = offset, 0
			cells = l.cellWidth(cluster, w, 0)
		}
		col += cells
		offset += len(cluster)
	}
	return append(rows, Row{Start: rowStart, End: offset})
}

// WalkRow calls fn for each grapheme cluster of row with its byte offset,
// starting cell column and cell width. Iteration stops when fn returns false.
func (l *Layout) WalkRow(text string, row Row, fn func(start int, cluster string, col, cells int) bool) {
	col, offset := 0, row.Start
	state := -1
	rest := text[row.Start:row.End]
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cells := l.cellWidth(cluster, w, col)
		if !fn(offset, cluster, col, cells) {
			return
		}
		col += cells
		offset += len(cluster)
	}
}

// colAt returns the cell column of index within row.
func (l *Layout) colAt(text string, row Row, index int) int {
	result := 0
	l.WalkRow(text, row, func(start int, _ string, col, cells int) bool {
		if start >= index {
			return false
		}
		result = col + cells
		return true
	})
	return result
}

// rowIndexOf returns the row that shows ia, honoring affinity at soft wraps.
func rowIndexOf(rows []Row, ia types.IndexAffinity) int {
	for i, r := range rows {
		if ia.Index > r.End {
			continue
		}
		if ia.Index == r.End && r.Wrapped && ia.Affinity == types.Before {
			continue
		}
		return i
	}
	return len(rows) - 1
}

// IndexAffinityToPosition returns the cell where a caret at ia is drawn.
func (l *Layout) IndexAffinityToPosition(text string, ia types.IndexAffinity) types.Position {
	rows := l.Rows(text)
	i := rowIndexOf(rows, ia)
	index := ia.Index
	if index > rows[i].End {
		index = rows[i].End
	}
	return types.Position{Line: i, Col: l.colAt(text, rows[i], index)}
}

// PositionToIndexAffinity returns the caret position nearest to pos. Rows
// above the text map to its start, rows below to its end, and columns past
// the end of a row to that row's end with After affinity.
func (l *Layout) PositionToIndexAffinity(text string, pos types.Position) types.IndexAffinity {
	rows := l.Rows(text)
	if pos.Line < 0 {
		return types.IndexAffinity{Index: 0, Affinity: types.Before}
	}
	if pos.Line >= len(rows) {
		return types.IndexAffinity{Index: len(text), Affinity: types.After}
	}

	row := rows[pos.Line]
	result := types.IndexAffinity{Index: row.End, Affinity: types.After}
	l.WalkRow(text, row, func(start int, _ string, col, cells int) bool {
		// Snap to whichever edge of the cluster is closer.
		if 2*pos.Col < 2*col+cells {
			result = types.IndexAffinity{Index: start, Affinity: types.Before}
			return false
		}
		return true
	})
	return result
}

// RowStart is the caret position at the start of the row showing ia.
func (l *Layout) RowStart(text string, ia types.IndexAffinity) types.IndexAffinity {
	pos := l.IndexAffinityToPosition(text, ia)
	return l.PositionToIndexAffinity(text, types.Position{Line: pos.Line, Col: 0})
}

// RowEnd is the caret position at the end of the row showing ia.
func (l *Layout) RowEnd(text string, ia types.IndexAffinity) types.IndexAffinity {
	pos := l.IndexAffinityToPosition(text, ia)
	return l.PositionToIndexAffinity(text, types.Position{Line: pos.Line, Col: farColumn})
}
