// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/tide-input/internal/types"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style // Default background/foreground
	StyleMessage   tcell.Style // Style for temporary messages
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar is the status line at the bottom of the screen.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	label     string
	cursorPos types.Position
	selected  int // Selected grapheme clusters
	length    int // Text length in bytes
	maxLength int // 0 for unlimited
	undoDepth int
	redoDepth int

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetLabel sets the text shown at the left, e.g. the file being edited.
func (sb *StatusBar) SetLabel(label string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.label = label
}

// SetCursorInfo updates the caret position and the selection size.
func (sb *StatusBar) SetCursorInfo(pos types.Position, selected int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
	sb.selected = selected
}

// SetLengthInfo updates the text length and limit.
func (sb *StatusBar) SetLengthInfo(length, maxLength int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.length = length
	sb.maxLength = maxLength
}

// SetHistoryInfo updates the undo and redo depths.
func (sb *StatusBar) SetHistoryInfo(undo, redo int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.undoDepth = undo
	sb.redoDepth = redo
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// defaultText builds the status line. Caller holds the lock.
func (sb *StatusBar) defaultText() string {
	label := sb.label
	if label == "" {
		label = "[scratch]"
	}

	text := fmt.Sprintf("%s -- Ln %d, Col %d", label, sb.cursorPos.Line+1, sb.cursorPos.Col+1)
	if sb.selected > 0 {
		text += fmt.Sprintf(" (%d selected)", sb.selected)
	}
	if sb.maxLength > 0 {
		text += fmt.Sprintf(" -- %d/%d", sb.length, sb.maxLength)
	} else {
		text += fmt.Sprintf(" -- %d bytes", sb.length)
	}
	return text + fmt.Sprintf(" -- undo %d, redo %d", sb.undoDepth, sb.redoDepth)
}

// Text returns what Draw would show now.
func (sb *StatusBar) Text() (string, tcell.Style) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	active := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	if active {
		return sb.tempMessage, sb.config.StyleMessage
	}
	return sb.defaultText(), sb.config.StyleDefault
}

// Draw renders the status bar on the last row of the screen.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1
	text, style := sb.Text()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	state := -1
	x := 0
	rest := text
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if x+w > width {
			break
		}
		runes := []rune(cluster)
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
}
