package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tide-input/internal/core"
	"github.com/bethropolis/tide-input/internal/core/cursor"
	"github.com/bethropolis/tide-input/internal/theme"
	"github.com/bethropolis/tide-input/internal/types"
)

func newSimTUI(t *testing.T, width, height int) (*TUI, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	tu, err := NewWithScreen(sim, tcell.StyleDefault)
	require.NoError(t, err)
	t.Cleanup(tu.Close)
	sim.SetSize(width, height)
	return tu, sim
}

func rowText(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var out []rune
	for x := 0; x < w; x++ {
		out = append(out, cells[y*w+x].Runes...)
	}
	return string(out)
}

func cellStyle(sim tcell.SimulationScreen, x, y int) tcell.Style {
	cells, w, _ := sim.GetContents()
	return cells[y*w+x].Style
}

func TestDrawInputWrapsAndSelects(t *testing.T) {
	tu, sim := newSimTUI(t, 5, 4)
	th := theme.Dark()

	ti := core.NewTextInput(core.Options{Multiline: true, WrapWidth: 5})
	ti.SetText("hello world")
	ti.MoveCursorTo(types.NewIndexAffinity(1, types.Before), false)
	ti.MoveCursorTo(types.NewIndexAffinity(3, types.Before), true)

	vp := &cursor.Viewport{}
	DrawInput(tu, ti, vp, th, 1)
	tu.Show()

	assert.Equal(t, "hello", rowText(sim, 0))
	assert.Equal(t, " worl", rowText(sim, 1))
	assert.Equal(t, "d    ", rowText(sim, 2))

	assert.Equal(t, th.GetStyle(theme.StyleDefault), cellStyle(sim, 0, 0))
	assert.Equal(t, th.GetStyle(theme.StyleSelection), cellStyle(sim, 1, 0))
	assert.Equal(t, th.GetStyle(theme.StyleSelection), cellStyle(sim, 2, 0))
	// The caret cell uses the cursor style.
	assert.Equal(t, th.GetStyle(theme.StyleCursor), cellStyle(sim, 3, 0))

	x, y, visible := sim.GetCursor()
	assert.True(t, visible)
	assert.Equal(t, 3, x)
	assert.Equal(t, 0, y)
}

func TestDrawInputScrollsToCaret(t *testing.T) {
	tu, sim := newSimTUI(t, 10, 3)
	ti := core.NewTextInput(core.Options{Multiline: true})
	ti.SetText("a\nb\nc\nd\ne")
	ti.MoveCursorTo(types.NewIndexAffinity(len(ti.Text()), types.After), false)

	vp := &cursor.Viewport{}
	DrawInput(tu, ti, vp, theme.Dark(), 1)
	tu.Show()

	assert.Equal(t, 3, vp.Top)
	assert.Equal(t, 2, vp.Height)
	assert.Equal(t, "d", rowText(sim, 0)[:1])
	assert.Equal(t, "e", rowText(sim, 1)[:1])
	x, y, _ := sim.GetCursor()
	assert.Equal(t, 1, x)
	assert.Equal(t, 1, y)
}

func TestDrawInputExpandsTabs(t *testing.T) {
	tu, sim := newSimTUI(t, 10, 2)
	ti := core.NewTextInput(core.Options{TabWidth: 4})
	ti.SetText("a\tb")

	DrawInput(tu, ti, &cursor.Viewport{}, theme.Dark(), 1)
	tu.Show()
	assert.Equal(t, "a   b     ", rowText(sim, 0))
}

func TestDrawInputTooSmall(t *testing.T) {
	tu, sim := newSimTUI(t, 10, 1)
	ti := core.NewTextInput(core.Options{})
	ti.SetText("x")

	DrawInput(tu, ti, &cursor.Viewport{}, theme.Dark(), 1)
	tu.Show()
	_, _, visible := sim.GetCursor()
	assert.False(t, visible)
}
