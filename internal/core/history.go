// internal/core/history.go
package core

import (
	"github.com/bethropolis/tide-input/internal/event"
	"github.com/bethropolis/tide-input/internal/types"
)

// Undo reverts the most recent edit group and restores the cursor it was
// opened with. It returns false when there is nothing to undo.
func (ti *TextInput) Undo() bool {
	oldLen := len(ti.text)
	c, ok := ti.history.Undo(ti.cursor.Cursor(), &ti.text)
	if !ok {
		return false
	}
	ti.afterHistoryStep(c, oldLen)
	return true
}

// Redo reapplies the most recently undone group. It returns false when there
// is nothing to redo.
func (ti *TextInput) Redo() bool {
	oldLen := len(ti.text)
	c, ok := ti.history.Redo(ti.cursor.Cursor(), &ti.text)
	if !ok {
		return false
	}
	ti.afterHistoryStep(c, oldLen)
	return true
}

func (ti *TextInput) afterHistoryStep(c types.Cursor, oldLen int) {
	ti.cursor.Set(c)
	ti.lastInsertLen = 0
	// A group may touch several ranges, so report the whole text.
	ti.dispatch(event.TypeTextChanged, event.TextChangedData{
		Start: 0, OldEnd: oldLen, NewEnd: len(ti.text), Length: len(ti.text),
	})
	ti.notifyCursor()
	ti.notifyHistory()
	ti.redraw()
}

// ForceNewEditGroup makes the next edit start a new undo group.
func (ti *TextInput) ForceNewEditGroup() {
	ti.history.ForceNewEditGroup()
}

// FocusIn is called when the input gains focus.
func (ti *TextInput) FocusIn() {
	ti.ForceNewEditGroup()
	ti.lastInsertLen = 0
	ti.redraw()
}

// CanUndo reports whether Undo would do anything.
func (ti *TextInput) CanUndo() bool {
	return ti.history.CanUndo()
}

// CanRedo reports whether Redo would do anything.
func (ti *TextInput) CanRedo() bool {
	return ti.history.CanRedo()
}

// HistoryDepth returns the number of undo and redo groups.
func (ti *TextInput) HistoryDepth() (undo, redo int) {
	return ti.history.UndoDepth(), ti.history.RedoDepth()
}
