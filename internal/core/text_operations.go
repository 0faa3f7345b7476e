// internal/core/text_operations.go
package core

import (
	"github.com/bethropolis/tide-input/internal/core/history"
	"github.com/bethropolis/tide-input/internal/event"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/textutil"
)

// TextInputEvent is text arriving from the keyboard, an IME or a paste.
type TextInputEvent struct {
	Input string
	// ReplaceLast asks to replace the text inserted by the previous event
	// (IME correction of an auto-inserted suggestion).
	ReplaceLast bool
	WasPaste    bool
}

// ApplyEdit records edit in the history and applies it. The caret lands
// right after the replacement. edit must lie on grapheme boundaries of the
// current text; anything else is a caller bug and panics.
func (ti *TextInput) ApplyEdit(kind history.EditKind, edit history.Edit) {
	oldEnd := edit.End
	ti.history.CreateOrExtendEditGroup(kind, edit, ti.cursor.Cursor())
	ti.cursor.Set(ti.history.ApplyEdit(edit, &ti.text))

	logger.DebugTagf("input", "TextInput: %s edit [%d,%d) -> %q", kind, edit.Start, oldEnd, edit.ReplaceWith)
	ti.dispatch(event.TypeTextChanged, event.TextChangedData{
		Start:  edit.Start,
		OldEnd: oldEnd,
		NewEnd: edit.CaretAfter(),
		Length: len(ti.text),
	})
	ti.notifyCursor()
	ti.notifyHistory()
	ti.redraw()
}

// InsertText replaces the selection with ev.Input. It returns false when
// nothing changed, e.g. the input is empty or the length limit is reached.
func (ti *TextInput) InsertText(ev TextInputEvent) bool {
	input := ti.sanitize(ev.Input)
	start, end := ti.cursor.Cursor().Range()

	if ev.ReplaceLast {
		widened := start - ti.lastInsertLen
		if widened < 0 {
			widened = 0
		}
		start = textutil.SnapToGraphemeBoundary(ti.text, widened)
	}

	if ti.maxLength > 0 {
		room := ti.maxLength - (len(ti.text) - (end - start))
		if room < 0 {
			room = 0
		}
		if len(input) > room {
			logger.DebugTagf("input", "TextInput: input truncated to %d bytes (max_length %d)", room, ti.maxLength)
			input = textutil.TruncateGraphemes(input, room)
		}
	}

	if input == "" && start == end {
		return false
	}

	kind := history.EditKindInsert
	if ev.ReplaceLast || ev.WasPaste {
		kind = history.EditKindOther
	}
	ti.ApplyEdit(kind, history.Edit{Start: start, End: end, ReplaceWith: input})
	ti.lastInsertLen = len(input)
	if ev.ReplaceLast {
		ti.ForceNewEditGroup()
	}
	return true
}

// Backspace deletes the selection, or the grapheme before the caret.
func (ti *TextInput) Backspace() bool {
	start, end := ti.cursor.Cursor().Range()
	if start == end {
		prev, ok := textutil.PrevGraphemeBoundary(ti.text, start)
		if !ok {
			return false
		}
		start = prev
	}
	ti.ApplyEdit(history.EditKindBackspace, history.Edit{Start: start, End: end})
	ti.lastInsertLen = 0
	return true
}

// Delete deletes the selection, or the grapheme after the caret.
func (ti *TextInput) Delete() bool {
	start, end := ti.cursor.Cursor().Range()
	if start == end {
		next, ok := textutil.NextGraphemeBoundary(ti.text, end)
		if !ok {
			return false
		}
		end = next
	}
	ti.ApplyEdit(history.EditKindDelete, history.Edit{Start: start, End: end})
	ti.lastInsertLen = 0
	return true
}

// Newline inserts a line break. Single-line inputs ignore it.
func (ti *TextInput) Newline() bool {
	if !ti.multiline {
		return false
	}
	return ti.InsertText(TextInputEvent{Input: "\n"})
}
