// internal/core/clipboard.go
package core

import (
	"fmt"

	"github.com/bethropolis/tide-input/internal/core/history"
	"github.com/bethropolis/tide-input/internal/logger"
)

// Copy writes the selection to the clipboard. It returns false without a
// selection.
func (ti *TextInput) Copy() (bool, error) {
	if !ti.HasSelection() {
		return false, nil
	}
	if err := ti.clipboard.Write(ti.SelectedText()); err != nil {
		return false, fmt.Errorf("copy: %w", err)
	}
	logger.DebugTagf("input", "TextInput: copied %d bytes", len(ti.SelectedText()))
	return true, nil
}

// Cut copies the selection and deletes it. Nothing is deleted when the
// clipboard write fails.
func (ti *TextInput) Cut() (bool, error) {
	ok, err := ti.Copy()
	if !ok || err != nil {
		return false, err
	}
	start, end := ti.cursor.Cursor().Range()
	ti.ApplyEdit(history.EditKindOther, history.Edit{Start: start, End: end})
	ti.lastInsertLen = 0
	return true, nil
}

// Paste inserts the clipboard contents over the selection.
func (ti *TextInput) Paste() (bool, error) {
	text, err := ti.clipboard.Read()
	if err != nil {
		return false, fmt.Errorf("paste: %w", err)
	}
	return ti.InsertText(TextInputEvent{Input: text, WasPaste: true}), nil
}
