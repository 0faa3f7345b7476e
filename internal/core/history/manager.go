package history

import (
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/types"
)

const DefaultMaxHistory = 100

// History owns the undo and redo stacks of one text input.
//
// Edits are recorded in two steps: CreateOrExtendEditGroup decides whether
// the next edit joins the most recent group, then ApplyEdit performs it.
// A new group is only pushed once its first edit is applied, so committed
// groups are never empty.
type History struct {
	undoStack  []EditGroup
	redoStack  []EditGroup
	maxHistory int

	// open is true while the top of undoStack may still be extended.
	open      bool
	lastKind  EditKind
	lastCaret int

	// armed is set by CreateOrExtendEditGroup and consumed by ApplyEdit.
	armed   bool
	pending *EditGroup
}

// New creates an empty history keeping at most maxHistory groups.
func New(maxHistory int) *History {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &History{
		undoStack:  make([]EditGroup, 0, 16),
		maxHistory: maxHistory,
	}
}

// canExtend reports whether an edit of kind continues the open group.
func (h *History) canExtend(kind EditKind, edit Edit) bool {
	if !h.open || len(h.undoStack) == 0 || kind != h.lastKind {
		return false
	}
	switch kind {
	case EditKindInsert, EditKindDelete:
		return edit.Start == h.lastCaret
	case EditKindBackspace:
		return edit.End == h.lastCaret
	case EditKindOther:
		return false
	}
	return false
}

// CreateOrExtendEditGroup prepares the history for edit. If edit continues
// the open group it will be appended to it; otherwise a new group starting
// from cursorBefore is opened. Either way the redo stack is discarded.
func (h *History) CreateOrExtendEditGroup(kind EditKind, edit Edit, cursorBefore types.Cursor) (extended bool) {
	extended = h.canExtend(kind, edit)
	h.armed = true
	h.lastKind = kind
	if extended {
		h.pending = nil
		logger.DebugTagf("history", "History: extending %s group (%d edits)", kind, h.undoStack[len(h.undoStack)-1].Len())
	} else {
		h.pending = &EditGroup{CursorBefore: cursorBefore}
		logger.DebugTagf("history", "History: opening %s group at %v", kind, cursorBefore)
	}
	if len(h.redoStack) > 0 {
		h.redoStack = nil
	}
	return extended
}

// ApplyEdit replaces text[edit.Start:edit.End] with edit.ReplaceWith and
// returns the caret placed right after the replacement. The edit is recorded
// when CreateOrExtendEditGroup was called first.
func (h *History) ApplyEdit(edit Edit, text *string) types.Cursor {
	c := apply(edit, text)

	if h.armed {
		if h.pending != nil {
			h.push(*h.pending)
			h.pending = nil
		}
		top := &h.undoStack[len(h.undoStack)-1]
		top.changes = append(top.changes, c)
		h.armed = false
		h.open = h.lastKind != EditKindOther
		h.lastCaret = edit.CaretAfter()
	} else {
		logger.Warnf("History: applied edit [%d,%d) without an edit group, it cannot be undone", edit.Start, edit.End)
	}

	return types.Caret(types.IndexAffinity{Index: edit.CaretAfter(), Affinity: types.After})
}

// push adds group to the undo stack, evicting the oldest group when full.
func (h *History) push(group EditGroup) {
	h.undoStack = append(h.undoStack, group)
	if over := len(h.undoStack) - h.maxHistory; over > 0 {
		clear(h.undoStack[:over])
		h.undoStack = h.undoStack[over:]
	}
}

// pop removes the top group of stack, zeroing its slot so the group's text
// is not kept alive by the backing array.
func pop(stack *[]EditGroup) EditGroup {
	s := *stack
	group := s[len(s)-1]
	s[len(s)-1] = EditGroup{}
	*stack = s[:len(s)-1]
	return group
}

// ForceNewEditGroup closes the open group so the next edit starts a new one.
func (h *History) ForceNewEditGroup() {
	h.open = false
}

// Undo reverts the most recent group and returns the cursor captured before
// it. With nothing to undo it returns current and false, leaving text alone.
func (h *History) Undo(current types.Cursor, text *string) (types.Cursor, bool) {
	if len(h.undoStack) == 0 {
		logger.DebugTagf("history", "History: Nothing to undo.")
		return current, false
	}

	group := pop(&h.undoStack)
	for i := len(group.changes) - 1; i >= 0; i-- {
		apply(group.changes[i].inverse, text)
	}
	h.redoStack = append(h.redoStack, group)
	h.open = false
	h.armed = false

	logger.DebugTagf("history", "History: undid group of %d edits, undo=%d redo=%d",
		group.Len(), len(h.undoStack), len(h.redoStack))
	return group.CursorBefore, true
}

// Redo reapplies the most recently undone group and returns a caret right
// after its last edit. With nothing to redo it returns current and false.
func (h *History) Redo(current types.Cursor, text *string) (types.Cursor, bool) {
	if len(h.redoStack) == 0 {
		logger.DebugTagf("history", "History: Nothing to redo.")
		return current, false
	}

	group := pop(&h.redoStack)
	for i := range group.changes {
		group.changes[i] = apply(group.changes[i].forward, text)
	}
	h.push(group)
	h.open = false
	h.armed = false

	last := group.changes[len(group.changes)-1].forward
	logger.DebugTagf("history", "History: redid group of %d edits, undo=%d redo=%d",
		group.Len(), len(h.undoStack), len(h.redoStack))
	return types.Caret(types.IndexAffinity{Index: last.CaretAfter(), Affinity: types.After}), true
}

// Clear empties both stacks. Call it whenever the text is replaced wholesale.
func (h *History) Clear() {
	// Fresh slices, so removed text held by old groups can be collected.
	h.undoStack = nil
	h.redoStack = nil
	h.open = false
	h.armed = false
	h.pending = nil
	logger.DebugTagf("history", "History: Cleared.")
}

// CanUndo returns true if there are groups that can be undone.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if there are groups that can be redone.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoDepth returns the number of groups on the undo stack.
func (h *History) UndoDepth() int {
	return len(h.undoStack)
}

// RedoDepth returns the number of groups on the redo stack.
func (h *History) RedoDepth() int {
	return len(h.redoStack)
}
