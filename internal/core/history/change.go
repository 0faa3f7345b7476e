// Package history provides undo/redo of text edits, coalescing runs of
// compatible edits into edit groups.
package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/tide-input/internal/types"
)

// EditKind classifies an edit for grouping decisions only.
type EditKind int

const (
	EditKindInsert EditKind = iota
	EditKindBackspace
	EditKindDelete
	EditKindOther
)

func (k EditKind) String() string {
	switch k {
	case EditKindInsert:
		return "insert"
	case EditKindBackspace:
		return "backspace"
	case EditKindDelete:
		return "delete"
	case EditKindOther:
		return "other"
	}
	return fmt.Sprintf("EditKind(%d)", int(k))
}

// Edit replaces the byte range [Start, End) with ReplaceWith.
type Edit struct {
	Start       int
	End         int
	ReplaceWith string
}

// CaretAfter is where the caret lands once the edit is applied.
func (e Edit) CaretAfter() int {
	return e.Start + len(e.ReplaceWith)
}

// change pairs an applied edit with the edit that reverts it.
type change struct {
	forward Edit
	inverse Edit
}

// EditGroup is one undo/redo unit: the edits applied in order plus the
// cursor as it was before the first of them.
type EditGroup struct {
	CursorBefore types.Cursor
	changes      []change
}

// Len returns the number of edits in the group.
func (g *EditGroup) Len() int {
	return len(g.changes)
}

// checkEdit panics when edit cannot be applied to text. Callers always build
// edits from grapheme boundaries, so a failure here is a bug in the caller.
func checkEdit(edit Edit, text string) {
	if edit.Start < 0 || edit.Start > edit.End || edit.End > len(text) {
		panic(fmt.Sprintf("history: edit range [%d,%d) out of bounds for text of length %d",
			edit.Start, edit.End, len(text)))
	}
	if edit.Start < len(text) && !utf8.RuneStart(text[edit.Start]) {
		panic(fmt.Sprintf("history: edit start %d is not on a character boundary", edit.Start))
	}
	if edit.End < len(text) && !utf8.RuneStart(text[edit.End]) {
		panic(fmt.Sprintf("history: edit end %d is not on a character boundary", edit.End))
	}
}

// apply performs edit on text and returns the change that records it.
func apply(edit Edit, text *string) change {
	checkEdit(edit, *text)
	removed := (*text)[edit.Start:edit.End]
	*text = (*text)[:edit.Start] + edit.ReplaceWith + (*text)[edit.End:]
	return change{
		forward: edit,
		inverse: Edit{
			Start:       edit.Start,
			End:         edit.CaretAfter(),
			ReplaceWith: removed,
		},
	}
}
