package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTheme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paper.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestGetStyleFallbacks(t *testing.T) {
	th := &Theme{
		Name: "test",
		Styles: map[string]tcell.Style{
			StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorWhite),
			StyleStatusBar: tcell.StyleDefault.Background(tcell.ColorBlue),
		},
	}
	assert.Equal(t, th.Styles[StyleStatusBar], th.GetStyle(StyleStatusBarMessage))
	assert.Equal(t, th.Styles[StyleDefault], th.GetStyle("Placeholder"))
	assert.Equal(t, tcell.StyleDefault, (&Theme{}).GetStyle(StyleCursor))
}

func TestBuiltinThemeHasUIStyles(t *testing.T) {
	th := Dark()
	for _, name := range []string{StyleDefault, StyleSelection, StyleCursor, StyleStatusBar, StyleStatusBarMessage} {
		assert.Contains(t, th.Styles, name)
	}
	// Each call returns an independent copy.
	th.Styles[StyleCursor] = tcell.StyleDefault
	assert.NotEqual(t, tcell.StyleDefault, Dark().Styles[StyleCursor])
}

func TestLoadEmptyPathIsBuiltin(t *testing.T) {
	th, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Tide Dark", th.Name)
}

func TestLoadThemeFromFile(t *testing.T) {
	path := writeTheme(t, `
name = "Paper"

[styles.Default]
fg = "#202020"
bg = "white"

[styles.Selection]
bg = "#ffd700"

[styles.Cursor]
reverse = true

[styles.StatusBar]
fg = "nope"
`)
	th, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Paper", th.Name)
	assert.False(t, th.IsDark)

	def := th.GetStyle(StyleDefault)
	fg, bg, _ := def.Decompose()
	assert.Equal(t, tcell.NewHexColor(0x202020), fg)
	assert.Equal(t, tcell.ColorWhite, bg)

	// Selection inherits the file's Default foreground.
	fg, bg, _ = th.GetStyle(StyleSelection).Decompose()
	assert.Equal(t, tcell.NewHexColor(0x202020), fg)
	assert.Equal(t, tcell.NewHexColor(0xffd700), bg)

	_, _, attrs := th.GetStyle(StyleCursor).Decompose()
	assert.NotZero(t, attrs&tcell.AttrReverse)

	// A broken style keeps the built-in one.
	assert.Equal(t, Dark().Styles[StyleStatusBar], th.GetStyle(StyleStatusBar))
}

func TestLoadThemeNameFromFilename(t *testing.T) {
	th, err := LoadThemeFromFile(writeTheme(t, "[styles.Cursor]\nbold = true\n"))
	require.NoError(t, err)
	assert.Equal(t, "paper", th.Name)
}

func TestLoadThemeErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeTheme(t, "[styles.Default\n"))
	assert.Error(t, err)

	_, err = Load(writeTheme(t, "[styles.Default]\nfg = \"#12\"\n"))
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#ff0000", tcell.NewHexColor(0xff0000), false},
		{" Red ", tcell.ColorRed, false},
		{"reset", tcell.ColorReset, false},
		{"default", tcell.ColorDefault, false},
		{"#fff", tcell.ColorDefault, true},
		{"chartreuse-ish", tcell.ColorDefault, true},
	}
	for _, tt := range tests {
		got, err := parseColor(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
