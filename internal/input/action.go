// internal/input/action.go
package input

// Action represents an operation to be performed on the text input.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown Action = iota // Default/invalid action
	ActionQuit

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMoveHome // Start of visual row
	ActionMoveEnd  // End of visual row

	// --- Selection ---
	ActionSelectAll
	ActionSelectWord

	// --- Text Manipulation ---
	ActionInsertRune         // Requires Rune argument
	ActionInsertNewLine      // Enter
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key

	// --- History ---
	ActionUndo
	ActionRedo

	// --- Clipboard ---
	ActionCopy
	ActionCut
	ActionPaste

	// --- Plugins ---
	ActionWordCount
)

var actionNames = map[Action]string{
	ActionQuit:               "Quit",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionSelectAll:          "SelectAll",
	ActionSelectWord:         "SelectWord",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionCopy:               "Copy",
	ActionCut:                "Cut",
	ActionPaste:              "Paste",
	ActionWordCount:          "WordCount",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsMovement reports whether the action moves the caret and so can extend
// the selection.
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveEnd
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
	Select bool // Shift held on a movement: extend the selection
}
