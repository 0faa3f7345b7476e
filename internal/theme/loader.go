// internal/theme/loader.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tide-input/internal/logger"
)

// TomlStyleDef is a single style definition in a theme file.
// Pointers distinguish unset attributes from false/empty ones.
type TomlStyleDef struct {
	Fg        *string `toml:"fg"`
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme is the structure of a theme file.
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// Load returns the theme to use for path. An empty path gives the built-in
// theme. A bare name without extension is looked up in the user's theme
// directory (~/.config/tide/themes/<name>.toml).
func Load(path string) (*Theme, error) {
	if path == "" {
		return Dark(), nil
	}
	if filepath.Ext(path) == "" && !strings.ContainsRune(path, filepath.Separator) {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("cannot locate theme '%s': %w", path, err)
		}
		path = filepath.Join(configDir, "tide", "themes", path+".toml")
	}
	return LoadThemeFromFile(path)
}

// LoadThemeFromFile parses a TOML theme file. Styles inherit unset
// attributes from the built-in theme, and from the file's Default style.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}

	var tomlTheme TomlTheme
	metadata, err := toml.Decode(string(data), &tomlTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Theme file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}

	if tomlTheme.Name == "" {
		tomlTheme.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	}

	builtin := Dark()
	theme := &Theme{
		Name:   tomlTheme.Name,
		IsDark: tomlTheme.IsDark,
		Styles: builtin.Styles,
	}

	// Default first: every other style of the file inherits from it.
	base := theme.Styles[StyleDefault]
	if def, ok := tomlTheme.Styles[StyleDefault]; ok {
		style, err := convertTomlStyle(def, tcell.StyleDefault)
		if err != nil {
			return nil, fmt.Errorf("theme '%s': style 'Default': %w", theme.Name, err)
		}
		base = style
		theme.Styles[StyleDefault] = base
	}

	for name, def := range tomlTheme.Styles {
		if name == StyleDefault {
			continue
		}
		style, err := convertTomlStyle(def, base)
		if err != nil {
			logger.Warnf("Theme '%s': Failed to parse style '%s', skipping: %v", theme.Name, name, err)
			continue
		}
		theme.Styles[name] = style
	}

	logger.Debugf("Loaded theme '%s' from '%s'", theme.Name, filePath)
	return theme, nil
}

// convertTomlStyle applies the attributes set in def on top of base.
func convertTomlStyle(def TomlStyleDef, base tcell.Style) (tcell.Style, error) {
	style := base
	if def.Fg != nil {
		color, err := parseColor(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color: %w", err)
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := parseColor(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color: %w", err)
		}
		style = style.Background(color)
	}
	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColor accepts #RRGGBB, W3C color names and "reset"/"default".
func parseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "reset":
		return tcell.ColorReset, nil
	case "default":
		return tcell.ColorDefault, nil
	}
	if strings.HasPrefix(s, "#") && len(s) != 7 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color format '%s', must be #RRGGBB", s)
	}
	color := tcell.GetColor(s)
	if color == tcell.ColorDefault {
		return color, fmt.Errorf("unknown color '%s'", s)
	}
	return color, nil
}
