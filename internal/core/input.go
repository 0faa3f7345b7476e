// internal/core/input.go
package core

import (
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/tide-input/internal/core/clipboard"
	"github.com/bethropolis/tide-input/internal/core/cursor"
	"github.com/bethropolis/tide-input/internal/core/history"
	"github.com/bethropolis/tide-input/internal/event"
	"github.com/bethropolis/tide-input/internal/layout"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/textutil"
	"github.com/bethropolis/tide-input/internal/types"
)

// Options configures a TextInput. The zero value is a single-line input with
// unlimited length, default history depth and an internal clipboard.
type Options struct {
	Multiline  bool
	MaxLength  int // Maximum text length in bytes, 0 for unlimited
	MaxHistory int
	WrapWidth  int
	TabWidth   int
	Clipboard  clipboard.Clipboard
}

// TextInput is an editable piece of text with a caret, a selection and an
// undo history. It is driven from a single goroutine (the UI loop).
type TextInput struct {
	text      string
	cursor    *cursor.Model
	history   *history.History
	layout    *layout.Layout
	clipboard clipboard.Clipboard

	multiline bool
	maxLength int

	// lastInsertLen is the byte length of the most recent InsertText, used by
	// IME replace-last corrections. 0 when unknown.
	lastInsertLen int

	eventManager  *event.Manager
	requestRedraw func()
}

// NewTextInput creates an empty text input.
func NewTextInput(opts Options) *TextInput {
	clip := opts.Clipboard
	if clip == nil {
		clip = &clipboard.Internal{}
	}
	maxLength := opts.MaxLength
	if maxLength < 0 {
		maxLength = 0
	}
	return &TextInput{
		cursor:    cursor.NewModel(),
		history:   history.New(opts.MaxHistory),
		layout:    layout.New(opts.WrapWidth, opts.TabWidth),
		clipboard: clip,
		multiline: opts.Multiline,
		maxLength: maxLength,
	}
}

// SetEventManager sets the event manager for dispatching change events.
func (ti *TextInput) SetEventManager(mgr *event.Manager) {
	ti.eventManager = mgr
}

// SetRedrawFunc sets the callback used to request a redraw. It must not block.
func (ti *TextInput) SetRedrawFunc(fn func()) {
	ti.requestRedraw = fn
}

// Text returns the current text.
func (ti *TextInput) Text() string {
	return ti.text
}

// Cursor returns the current cursor.
func (ti *TextInput) Cursor() types.Cursor {
	return ti.cursor.Cursor()
}

// Layout returns the layout used for vertical movement and drawing.
func (ti *TextInput) Layout() *layout.Layout {
	return ti.layout
}

// IsMultiline reports whether the input accepts newlines.
func (ti *TextInput) IsMultiline() bool {
	return ti.multiline
}

// SetWrapWidth changes the soft wrap width, e.g. after a resize.
func (ti *TextInput) SetWrapWidth(width int) {
	if ti.layout.Width == width {
		return
	}
	ti.layout.SetWidth(width)
	ti.redraw()
}

// CaretPosition returns the screen cell of the head relative to the input.
func (ti *TextInput) CaretPosition() types.Position {
	return ti.layout.IndexAffinityToPosition(ti.text, ti.cursor.Cursor().Head)
}

// SetText replaces the whole text. History is cleared because its byte
// ranges no longer refer to anything, and the cursor is clamped.
func (ti *TextInput) SetText(text string) {
	text = ti.sanitize(text)
	if ti.maxLength > 0 && len(text) > ti.maxLength {
		text = textutil.TruncateGraphemes(text, ti.maxLength)
	}
	oldLen := len(ti.text)
	ti.text = text
	ti.history.Clear()
	ti.cursor.Clamp(ti.text)
	ti.lastInsertLen = 0

	logger.DebugTagf("input", "TextInput: text set (%d bytes)", len(text))
	ti.dispatch(event.TypeTextChanged, event.TextChangedData{
		Start: 0, OldEnd: oldLen, NewEnd: len(text), Wholesale: true, Length: len(text),
	})
	ti.notifyCursor()
	ti.notifyHistory()
	ti.redraw()
}

var lineBreaks = strings.NewReplacer("\r\n", "", "\r", "", "\n", "")

// sanitize replaces invalid UTF-8 with U+FFFD, so every grapheme boundary
// is a rune boundary, and strips line breaks from single-line input.
func (ti *TextInput) sanitize(text string) string {
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "\uFFFD")
	}
	if ti.multiline || !strings.ContainsAny(text, "\r\n") {
		return text
	}
	return lineBreaks.Replace(text)
}

func (ti *TextInput) dispatch(t event.Type, data interface{}) {
	if ti.eventManager != nil {
		ti.eventManager.Dispatch(t, data)
	}
}

func (ti *TextInput) notifyCursor() {
	ti.dispatch(event.TypeCursorMoved, event.CursorMovedData{Cursor: ti.cursor.Cursor()})
}

func (ti *TextInput) notifyHistory() {
	ti.dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		UndoDepth: ti.history.UndoDepth(),
		RedoDepth: ti.history.RedoDepth(),
	})
}

func (ti *TextInput) redraw() {
	if ti.requestRedraw != nil {
		ti.requestRedraw()
	}
}
