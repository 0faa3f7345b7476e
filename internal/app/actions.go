package app

import (
	"github.com/rivo/uniseg"

	"github.com/bethropolis/tide-input/internal/core"
	"github.com/bethropolis/tide-input/internal/input"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/plugins/wordcount"
)

// handleAction applies a decoded key action to the text input.
func (a *App) handleAction(ae input.ActionEvent) {
	ti := a.input

	switch ae.Action {
	case input.ActionQuit:
		a.Quit()

	// --- Movement ---
	case input.ActionMoveLeft:
		ti.MoveCursorLeft(ae.Select)
	case input.ActionMoveRight:
		ti.MoveCursorRight(ae.Select)
	case input.ActionMoveUp:
		ti.MoveCursorUp(ae.Select)
	case input.ActionMoveDown:
		ti.MoveCursorDown(ae.Select)
	case input.ActionMoveHome:
		ti.MoveCursorHome(ae.Select)
	case input.ActionMoveEnd:
		ti.MoveCursorEnd(ae.Select)

	// --- Selection ---
	case input.ActionSelectAll:
		ti.SelectAll()
	case input.ActionSelectWord:
		ti.SelectWord()

	// --- Editing ---
	case input.ActionInsertRune:
		if !ti.InsertText(core.TextInputEvent{Input: string(ae.Rune)}) {
			a.reportLimit()
		}
	case input.ActionInsertNewLine:
		if !ti.Newline() && ti.IsMultiline() {
			a.reportLimit()
		}
	case input.ActionDeleteCharBackward:
		ti.Backspace()
	case input.ActionDeleteCharForward:
		ti.Delete()

	// --- History ---
	case input.ActionUndo:
		if !ti.Undo() {
			a.statusBar.SetTemporaryMessage("Nothing to undo")
			a.requestRedraw()
		}
	case input.ActionRedo:
		if !ti.Redo() {
			a.statusBar.SetTemporaryMessage("Nothing to redo")
			a.requestRedraw()
		}

	// --- Clipboard ---
	case input.ActionCopy:
		count := uniseg.GraphemeClusterCount(ti.SelectedText())
		ok, err := ti.Copy()
		a.reportClipboard(ok, err, "Copied %d characters", count)
	case input.ActionCut:
		count := uniseg.GraphemeClusterCount(ti.SelectedText())
		ok, err := ti.Cut()
		a.reportClipboard(ok, err, "Cut %d characters", count)
	case input.ActionPaste:
		if _, err := ti.Paste(); err != nil {
			a.reportError(err)
		}

	// --- Plugins ---
	case input.ActionWordCount:
		a.runCommand(wordcount.CommandName)

	default:
		logger.DebugTagf("input", "App: unhandled key action %v", ae.Action)
	}
}

// reportClipboard shows the outcome of a clipboard operation.
func (a *App) reportClipboard(ok bool, err error, format string, args ...interface{}) {
	switch {
	case err != nil:
		a.reportError(err)
	case ok:
		a.statusBar.SetTemporaryMessage(format, args...)
		a.requestRedraw()
	}
}

func (a *App) reportError(err error) {
	logger.Warnf("App: %v", err)
	a.statusBar.SetTemporaryMessage("Error: %v", err)
	a.requestRedraw()
}

func (a *App) reportLimit() {
	if a.cfg.MaxLength > 0 && len(a.input.Text()) >= a.cfg.MaxLength {
		a.statusBar.SetTemporaryMessage("Length limit of %d bytes reached", a.cfg.MaxLength)
		a.requestRedraw()
	}
}
