package app

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tide-input/internal/config"
	"github.com/bethropolis/tide-input/internal/event"
	"github.com/bethropolis/tide-input/internal/types"
)

func newTestApp(t *testing.T, text string, configure func(*config.Config)) (*App, tcell.SimulationScreen) {
	t.Helper()
	cfg := config.NewDefaultConfig()
	cfg.Input.SystemClipboard = false
	if configure != nil {
		configure(cfg)
	}
	sim := tcell.NewSimulationScreen("UTF-8")
	a, err := NewApp(Options{Config: cfg, Screen: sim, InitialText: text, Label: "test"})
	require.NoError(t, err)
	sim.SetSize(20, 5)
	return a, sim
}

func key(k tcell.Key, mod tcell.ModMask) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, mod)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func screenRow(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var out []rune
	for x := 0; x < w; x++ {
		out = append(out, cells[y*w+x].Runes...)
	}
	return string(out)
}

func TestTypingEditingAndHistory(t *testing.T) {
	a, _ := newTestApp(t, "", nil)
	defer a.tuiManager.Close()

	for _, r := range "hi!" {
		a.HandleEvent(runeKey(r))
	}
	assert.Equal(t, "hi!", a.Input().Text())

	a.HandleEvent(key(tcell.KeyBackspace2, tcell.ModNone))
	assert.Equal(t, "hi", a.Input().Text())

	a.HandleEvent(key(tcell.KeyLeft, tcell.ModShift))
	assert.Equal(t, "i", a.Input().SelectedText())

	a.HandleEvent(key(tcell.KeyCtrlX, tcell.ModCtrl))
	assert.Equal(t, "h", a.Input().Text())
	a.HandleEvent(key(tcell.KeyHome, tcell.ModNone))
	a.HandleEvent(key(tcell.KeyCtrlV, tcell.ModCtrl))
	assert.Equal(t, "ih", a.Input().Text())

	a.HandleEvent(key(tcell.KeyCtrlZ, tcell.ModCtrl))
	assert.Equal(t, "h", a.Input().Text())
	a.HandleEvent(key(tcell.KeyCtrlY, tcell.ModCtrl))
	assert.Equal(t, "ih", a.Input().Text())

	a.HandleEvent(key(tcell.KeyCtrlA, tcell.ModCtrl))
	a.HandleEvent(key(tcell.KeyDelete, tcell.ModNone))
	assert.Equal(t, "", a.Input().Text())
}

func TestEnterDependsOnMultiline(t *testing.T) {
	a, _ := newTestApp(t, "ab", nil)
	defer a.tuiManager.Close()
	a.HandleEvent(key(tcell.KeyEnter, tcell.ModNone))
	assert.Equal(t, "\nab", a.Input().Text())

	single, _ := newTestApp(t, "ab", func(c *config.Config) { c.Input.Multiline = false })
	defer single.tuiManager.Close()
	single.HandleEvent(key(tcell.KeyEnter, tcell.ModNone))
	assert.Equal(t, "ab", single.Input().Text())
}

func TestMouseClickDragAndDoubleClick(t *testing.T) {
	a, _ := newTestApp(t, "foo bar", nil)
	defer a.tuiManager.Close()

	press := func(x, y int) { a.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)) }
	release := func(x, y int) { a.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)) }

	press(0, 0)
	press(3, 0)
	release(3, 0)
	assert.Equal(t, "foo", a.Input().SelectedText())

	press(5, 0)
	release(5, 0)
	assert.Equal(t, 5, a.Input().Cursor().Head.Index)
	assert.False(t, a.Input().HasSelection())

	press(5, 0)
	release(5, 0)
	assert.Equal(t, "bar", a.Input().SelectedText())

	// Clicks on the status bar are ignored.
	press(0, 4)
	assert.Equal(t, "bar", a.Input().SelectedText())
}

func TestBracketedPaste(t *testing.T) {
	a, _ := newTestApp(t, "", nil)
	defer a.tuiManager.Close()

	a.HandleEvent(tcell.NewEventPaste(true))
	for _, r := range "ab" {
		a.HandleEvent(runeKey(r))
	}
	a.HandleEvent(key(tcell.KeyEnter, tcell.ModNone))
	a.HandleEvent(runeKey('c'))
	a.HandleEvent(tcell.NewEventPaste(false))
	assert.Equal(t, "ab\nc", a.Input().Text())

	// The paste is a single undo step.
	a.HandleEvent(key(tcell.KeyCtrlZ, tcell.ModCtrl))
	assert.Equal(t, "", a.Input().Text())
}

func TestDrawShowsTextAndStatus(t *testing.T) {
	a, sim := newTestApp(t, "hello", nil)
	defer a.tuiManager.Close()

	a.HandleEvent(key(tcell.KeyEnd, tcell.ModNone))
	a.Draw()

	assert.Equal(t, "hello", screenRow(sim, 0)[:5])
	assert.Contains(t, screenRow(sim, 4), "test -- Ln 1, Col 6")
	x, y, visible := sim.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 5, x)
	assert.Equal(t, 0, y)
}

func TestResizeRewrapsText(t *testing.T) {
	a, sim := newTestApp(t, "abcdefghij", nil)
	defer a.tuiManager.Close()

	sim.SetSize(4, 5)
	a.HandleEvent(tcell.NewEventResize(4, 5))
	assert.Equal(t, 3, a.Input().Layout().Width)
	assert.Len(t, a.Input().Layout().Rows(a.Input().Text()), 4)
}

func TestRunUntilQuit(t *testing.T) {
	a, sim := newTestApp(t, "", nil)

	var sawReady, sawQuit bool
	a.Events().Subscribe(event.TypeAppReady, func(event.Event) bool { sawReady = true; return false })
	a.Events().Subscribe(event.TypeAppQuit, func(event.Event) bool { sawQuit = true; return false })

	done := make(chan error, 1)
	go func() { done <- a.Run() }()

	sim.InjectKey(tcell.KeyRune, 'o', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'k', tcell.ModNone)
	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Esc")
	}
	assert.Equal(t, "ok", a.Input().Text())
	assert.True(t, sawReady)
	assert.True(t, sawQuit)
}

func TestWordCountCommand(t *testing.T) {
	a, _ := newTestApp(t, "one two\nthree", nil)
	defer a.tuiManager.Close()

	assert.Equal(t, []string{"wc"}, a.pluginManager.Commands())

	a.HandleEvent(key(tcell.KeyCtrlG, tcell.ModCtrl))
	text, _ := a.statusBar.Text()
	assert.Equal(t, "Text: Lines: 2, Words: 3, Chars: 13, Bytes: 13", text)

	a.HandleEvent(key(tcell.KeyCtrlA, tcell.ModCtrl))
	a.HandleEvent(key(tcell.KeyCtrlG, tcell.ModCtrl))
	text, _ = a.statusBar.Text()
	assert.Contains(t, text, "Selection: Lines: 2")

	a.runCommand("missing")
	text, _ = a.statusBar.Text()
	assert.Equal(t, "Error: unknown command: missing", text)
}

func TestCaretAtEndOfFullRowHasItsOwnCell(t *testing.T) {
	a, sim := newTestApp(t, strings.Repeat("a", 20), nil)
	defer a.tuiManager.Close()
	a.HandleEvent(tcell.NewEventResize(20, 5))
	require.Equal(t, 19, a.Input().Layout().Width)

	caretCell := func(index int, affinity types.Affinity) (int, int) {
		a.Input().MoveCursorTo(types.IndexAffinity{Index: index, Affinity: affinity}, false)
		a.Draw()
		x, y, visible := sim.GetCursor()
		require.True(t, visible)
		return x, y
	}

	x, y := caretCell(18, types.Before)
	assert.Equal(t, []int{18, 0}, []int{x, y})
	x, y = caretCell(19, types.After)
	assert.Equal(t, []int{19, 0}, []int{x, y})
	x, y = caretCell(20, types.After)
	assert.Equal(t, []int{1, 1}, []int{x, y})
}

func TestConfiguredWrapWidthLeavesCaretColumn(t *testing.T) {
	a, _ := newTestApp(t, "", func(cfg *config.Config) { cfg.Input.WrapWidth = 10 })
	defer a.tuiManager.Close()

	a.HandleEvent(tcell.NewEventResize(20, 5))
	assert.Equal(t, 10, a.Input().Layout().Width)
	// Narrower screens still keep a column for the caret.
	assert.Equal(t, 7, a.wrapWidthFor(8))
	assert.Equal(t, 1, a.wrapWidthFor(1))
}
