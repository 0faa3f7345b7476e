package app

import (
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tide-input/internal/config"
	"github.com/bethropolis/tide-input/internal/core"
	"github.com/bethropolis/tide-input/internal/types"
)

// mouseState tracks the primary button between mouse events.
type mouseState struct {
	pressed   bool
	lastClick time.Time
	lastPos   types.Position
}

// handleMouse turns button 1 presses into caret moves: a click places the
// caret, dragging extends the selection, a double click selects a word.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	if ev.Buttons()&tcell.Button1 == 0 {
		a.mouse.pressed = false
		return
	}

	x, y := ev.Position()
	_, height := a.tuiManager.Size()
	if y >= height-config.StatusBarHeight {
		return
	}
	pos := types.Position{Line: a.viewport.Top + y, Col: x}
	target := a.input.Layout().PositionToIndexAffinity(a.input.Text(), pos)

	if a.mouse.pressed {
		a.input.MoveCursorTo(target, true)
		return
	}
	a.mouse.pressed = true

	doubleClick := time.Duration(a.cfg.DoubleClickMs) * time.Millisecond
	if ev.When().Sub(a.mouse.lastClick) <= doubleClick && pos == a.mouse.lastPos {
		a.input.MoveCursorTo(target, false)
		a.input.SelectWord()
		a.mouse.lastClick = time.Time{} // A third click starts over
		return
	}
	a.mouse.lastClick = ev.When()
	a.mouse.lastPos = pos
	a.input.MoveCursorTo(target, ev.Modifiers()&tcell.ModShift != 0)
}

// handlePaste brackets a terminal paste: keys between start and end are
// collected and inserted as one paste.
func (a *App) handlePaste(ev *tcell.EventPaste) {
	if ev.Start() {
		a.paste = &strings.Builder{}
		return
	}
	if a.paste == nil {
		return
	}
	text := a.paste.String()
	a.paste = nil
	a.input.InsertText(core.TextInputEvent{Input: text, WasPaste: true})
}

func (a *App) collectPaste(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyRune:
		a.paste.WriteRune(ev.Rune())
	case tcell.KeyEnter:
		a.paste.WriteByte('\n')
	case tcell.KeyTab:
		a.paste.WriteByte('\t')
	}
}
