// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tide-input/internal/logger"
)

// Style names used by the text input UI.
const (
	StyleDefault          = "Default"
	StyleSelection        = "Selection"
	StyleCursor           = "Cursor"
	StyleStatusBar        = "StatusBar"
	StyleStatusBarMessage = "StatusBar.Message"
)

// Theme is a named set of styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the style called name. Dotted names fall back to their
// base name ("StatusBar.Message" -> "StatusBar"), then to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.Debugf("Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Dark returns the built-in dark theme.
func Dark() *Theme {
	background := tcell.NewHexColor(0x2a2f38) // Muted dark blue/grey (status bar)
	foreground := tcell.NewHexColor(0xc5cdd9) // Soft off-white
	accent := tcell.NewHexColor(0x61afef)     // Soft blue
	highlight := tcell.NewHexColor(0x3e4451)  // Selection background

	// Use the terminal background for the text area.
	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)

	return &Theme{
		Name:   "Tide Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:          base,
			StyleSelection:        base.Background(highlight),
			StyleCursor:           base.Reverse(true),
			StyleStatusBar:        tcell.StyleDefault.Background(background).Foreground(foreground),
			StyleStatusBarMessage: tcell.StyleDefault.Background(background).Foreground(accent).Bold(true),
		},
	}
}
