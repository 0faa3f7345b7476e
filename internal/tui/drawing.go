// internal/tui/drawing.go
package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tide-input/internal/core"
	"github.com/bethropolis/tide-input/internal/core/cursor"
	"github.com/bethropolis/tide-input/internal/theme"
)

// DrawInput draws the visible rows of ti into the area above the status bar,
// scrolling vp so the caret stays visible, and places the cursor.
func DrawInput(t *TUI, ti *core.TextInput, vp *cursor.Viewport, activeTheme *theme.Theme, statusBarHeight int) {
	defaultStyle := activeTheme.GetStyle(theme.StyleDefault)
	selectionStyle := activeTheme.GetStyle(theme.StyleSelection)
	cursorStyle := activeTheme.GetStyle(theme.StyleCursor)

	width, height := t.Size()
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		t.screen.HideCursor()
		return
	}
	vp.SetHeight(viewHeight)

	text := ti.Text()
	lay := ti.Layout()
	rows := lay.Rows(text)
	caret := ti.CaretPosition()
	vp.ScrollTo(caret.Line)
	selStart, selEnd := ti.Cursor().Range()

	for screenY := 0; screenY < viewHeight; screenY++ {
		for x := 0; x < width; x++ {
			t.screen.SetContent(x, screenY, ' ', nil, defaultStyle)
		}

		rowIdx := vp.Top + screenY
		if rowIdx >= len(rows) {
			continue
		}
		row := rows[rowIdx]

		lastCol := 0
		lay.WalkRow(text, row, func(start int, cluster string, col, cells int) bool {
			if col >= width {
				return false
			}
			style := defaultStyle
			if start >= selStart && start < selEnd {
				style = selectionStyle
			}
			if cluster == "\t" {
				for i := 0; i < cells && col+i < width; i++ {
					t.screen.SetContent(col+i, screenY, ' ', nil, style)
				}
			} else {
				runes := []rune(cluster)
				t.screen.SetContent(col, screenY, runes[0], runes[1:], style)
			}
			lastCol = col + cells
			return true
		})

		// A selected line break shows as one highlighted cell.
		if !row.Wrapped && row.End < len(text) && row.End >= selStart && row.End < selEnd && lastCol < width {
			t.screen.SetContent(lastCol, screenY, ' ', nil, selectionStyle)
		}
	}

	drawCaret(t, caret.Col, caret.Line-vp.Top, width, viewHeight, cursorStyle)
}

// drawCaret paints the cell under the caret and moves the terminal cursor
// there so IME candidate windows follow it.
func drawCaret(t *TUI, x, y, width, viewHeight int, style tcell.Style) {
	if y < 0 || y >= viewHeight {
		t.screen.HideCursor()
		return
	}
	if x >= width {
		x = width - 1
	}
	mainc, combc, _, _ := t.screen.GetContent(x, y)
	t.screen.SetContent(x, y, mainc, combc, style)
	t.screen.ShowCursor(x, y)
}
