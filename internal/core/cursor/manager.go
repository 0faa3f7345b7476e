// Package cursor holds the head/tail selection model of a text input.
package cursor

import (
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/textutil"
	"github.com/bethropolis/tide-input/internal/types"
)

// Model tracks the caret and selection. It never owns the text; every
// operation that needs it takes the current text as an argument.
type Model struct {
	cursor types.Cursor
}

// NewModel creates a model with a caret at index 0.
func NewModel() *Model {
	return &Model{}
}

// Cursor returns the current cursor.
func (m *Model) Cursor() types.Cursor {
	return m.cursor
}

// Set replaces the cursor wholesale (used after undo/redo and edits).
func (m *Model) Set(c types.Cursor) {
	m.cursor = c
}

// Start returns the selection end with the lower index.
func (m *Model) Start() types.IndexAffinity {
	return m.cursor.Start()
}

// End returns the selection end with the higher index.
func (m *Model) End() types.IndexAffinity {
	return m.cursor.End()
}

// MoveTo moves the head to target. Without extend the tail follows and the
// selection collapses to a caret.
func (m *Model) MoveTo(target types.IndexAffinity, extend bool) {
	m.cursor.Head = target
	if !extend {
		m.cursor.Tail = target
	}
	logger.DebugTagf("cursor", "Cursor: moved to %v (extend=%v)", m.cursor, extend)
}

// SelectAll selects the whole text with the head at the end.
func (m *Model) SelectAll(text string) {
	m.cursor = types.Cursor{
		Head: types.IndexAffinity{Index: len(text), Affinity: types.After},
		Tail: types.IndexAffinity{Index: 0, Affinity: types.Before},
	}
}

// SelectWord grows the selection to word granularity. With a directional
// selection only the head moves, outward to the nearest word boundary, so
// the anchor is preserved. A plain caret selects the word around it.
func (m *Model) SelectWord(text string) {
	head, tail := m.cursor.Head.Index, m.cursor.Tail.Index
	switch {
	case head < tail:
		m.cursor.Head = types.IndexAffinity{Index: textutil.FloorWordBoundary(text, head), Affinity: types.Before}
	case head > tail:
		m.cursor.Head = types.IndexAffinity{Index: textutil.CeilWordBoundary(text, head), Affinity: types.After}
	default:
		m.cursor.Head = types.IndexAffinity{Index: textutil.FloorWordBoundary(text, head), Affinity: types.Before}
		m.cursor.Tail = types.IndexAffinity{Index: textutil.CeilWordBoundary(text, head), Affinity: types.After}
	}
	logger.DebugTagf("cursor", "Cursor: word selection %v", m.cursor)
}

// LeftTarget is the position one grapheme left of the head. ok is false at
// the start of the text.
func (m *Model) LeftTarget(text string) (types.IndexAffinity, bool) {
	prev, ok := textutil.PrevGraphemeBoundary(text, m.cursor.Head.Index)
	return types.IndexAffinity{Index: prev, Affinity: types.After}, ok
}

// RightTarget is the position one grapheme right of the head. ok is false at
// the end of the text.
func (m *Model) RightTarget(text string) (types.IndexAffinity, bool) {
	next, ok := textutil.NextGraphemeBoundary(text, m.cursor.Head.Index)
	return types.IndexAffinity{Index: next, Affinity: types.Before}, ok
}

// Clamp pulls both ends back inside text and onto grapheme boundaries.
func (m *Model) Clamp(text string) {
	c := m.cursor.Clamp(len(text))
	c.Head.Index = textutil.SnapToGraphemeBoundary(text, c.Head.Index)
	c.Tail.Index = textutil.SnapToGraphemeBoundary(text, c.Tail.Index)
	m.cursor = c
}
