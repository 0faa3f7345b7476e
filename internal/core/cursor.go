// internal/core/cursor.go
package core

import (
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/textutil"
	"github.com/bethropolis/tide-input/internal/types"
)

// MoveCursorLeft moves the head one grapheme left. At the start of the text
// a selection still collapses onto the head.
func (ti *TextInput) MoveCursorLeft(isSelect bool) {
	target, ok := ti.cursor.LeftTarget(ti.text)
	if !ok {
		target = ti.cursor.Cursor().Head
	}
	ti.MoveCursorTo(target, isSelect)
}

// MoveCursorRight moves the head one grapheme right.
func (ti *TextInput) MoveCursorRight(isSelect bool) {
	target, ok := ti.cursor.RightTarget(ti.text)
	if !ok {
		target = ti.cursor.Cursor().Head
	}
	ti.MoveCursorTo(target, isSelect)
}

// MoveCursorUp moves the head to the nearest position one visual row up, or
// to the start of the text from the first row.
func (ti *TextInput) MoveCursorUp(isSelect bool) {
	ti.moveVertical(-1, isSelect)
}

// MoveCursorDown moves the head to the nearest position one visual row down,
// or to the end of the text from the last row.
func (ti *TextInput) MoveCursorDown(isSelect bool) {
	ti.moveVertical(1, isSelect)
}

func (ti *TextInput) moveVertical(delta int, isSelect bool) {
	pos := ti.layout.IndexAffinityToPosition(ti.text, ti.cursor.Cursor().Head)
	pos.Line += delta
	ti.MoveCursorTo(ti.layout.PositionToIndexAffinity(ti.text, pos), isSelect)
}

// MoveCursorHome moves the head to the start of its visual row.
func (ti *TextInput) MoveCursorHome(isSelect bool) {
	ti.MoveCursorTo(ti.layout.RowStart(ti.text, ti.cursor.Cursor().Head), isSelect)
}

// MoveCursorEnd moves the head to the end of its visual row.
func (ti *TextInput) MoveCursorEnd(isSelect bool) {
	ti.MoveCursorTo(ti.layout.RowEnd(ti.text, ti.cursor.Cursor().Head), isSelect)
}

// MoveCursorTo moves the head to target, collapsing the selection unless
// isSelect is set. target is clamped into the text and snapped to a grapheme
// boundary. Relocating the caret always starts a new edit group.
func (ti *TextInput) MoveCursorTo(target types.IndexAffinity, isSelect bool) {
	if target.Index > len(ti.text) {
		target = types.IndexAffinity{Index: len(ti.text), Affinity: types.After}
	}
	target.Index = textutil.SnapToGraphemeBoundary(ti.text, target.Index)

	ti.ForceNewEditGroup()
	ti.lastInsertLen = 0
	before := ti.cursor.Cursor()
	ti.cursor.MoveTo(target, isSelect)
	if ti.cursor.Cursor() == before {
		return
	}
	logger.DebugTagf("input", "TextInput: cursor %v -> %v", before, ti.cursor.Cursor())
	ti.notifyCursor()
	ti.redraw()
}
