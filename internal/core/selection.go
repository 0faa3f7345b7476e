// internal/core/selection.go
package core

// HasSelection reports whether a non-empty range is selected.
func (ti *TextInput) HasSelection() bool {
	return !ti.cursor.Cursor().IsEmpty()
}

// SelectedText returns the text covered by the selection.
func (ti *TextInput) SelectedText() string {
	start, end := ti.cursor.Cursor().Range()
	return ti.text[start:end]
}

// SelectAll selects the whole text.
func (ti *TextInput) SelectAll() {
	ti.ForceNewEditGroup()
	ti.lastInsertLen = 0
	ti.cursor.SelectAll(ti.text)
	ti.notifyCursor()
	ti.redraw()
}

// SelectWord grows the selection to word granularity (double click).
func (ti *TextInput) SelectWord() {
	ti.ForceNewEditGroup()
	ti.lastInsertLen = 0
	ti.cursor.SelectWord(ti.text)
	ti.notifyCursor()
	ti.redraw()
}

// ClearSelection collapses the selection onto the head.
func (ti *TextInput) ClearSelection() {
	if !ti.HasSelection() {
		return
	}
	ti.lastInsertLen = 0
	ti.cursor.MoveTo(ti.cursor.Cursor().Head, false)
	ti.notifyCursor()
	ti.redraw()
}
