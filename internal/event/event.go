// internal/event/event.go
package event

import (
	"github.com/bethropolis/tide-input/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Text input events
	TypeTextChanged    // Text content changed (edit, undo, redo, SetText)
	TypeCursorMoved    // Head or tail moved
	TypeHistoryChanged // Undo/redo depth changed

	// Raw key press forwarded by the app before it is handled
	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

func (t Type) String() string {
	switch t {
	case TypeTextChanged:
		return "TextChanged"
	case TypeCursorMoved:
		return "CursorMoved"
	case TypeHistoryChanged:
		return "HistoryChanged"
	case TypeKeyPressed:
		return "KeyPressed"
	case TypeAppReady:
		return "AppReady"
	case TypeAppQuit:
		return "AppQuit"
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// TextChangedData describes a change to the text.
// Start/OldEnd/NewEnd are byte offsets of the replaced range; Wholesale is
// set when the text was replaced from outside the edit machinery.
type TextChangedData struct {
	Start     int
	OldEnd    int
	NewEnd    int
	Wholesale bool
	Length    int
}

// CursorMovedData carries the new cursor.
type CursorMovedData struct {
	Cursor types.Cursor
}

// HistoryChangedData carries the stack depths after the change.
type HistoryChangedData struct {
	UndoDepth int
	RedoDepth int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// AppReadyData and AppQuitData carry no payload yet.
type AppReadyData struct{}
type AppQuitData struct{}
