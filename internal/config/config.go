// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/tide-input/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Input  InputConfig   `toml:"input"`
	Theme  ThemeConfig   `toml:"theme"`

	// warnings collected while loading, logged once the logger is up.
	warnings []string
}

// InputConfig holds text input settings.
type InputConfig struct {
	Multiline       bool `toml:"multiline"`
	MaxLength       int  `toml:"max_length"`  // Bytes, 0 for unlimited
	MaxHistory      int  `toml:"max_history"` // Undo groups kept
	WrapWidth       int  `toml:"wrap_width"`  // 0 wraps at the terminal width
	TabWidth        int  `toml:"tab_width"`
	ScrollOff       int  `toml:"scroll_off"`
	SystemClipboard bool `toml:"system_clipboard"`
	DoubleClickMs   int  `toml:"double_click_ms"`
}

// ThemeConfig selects the theme file. Empty uses the built-in theme.
type ThemeConfig struct {
	File string `toml:"file"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Input: InputConfig{
			Multiline:       true,
			MaxHistory:      DefaultMaxHistory,
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			DoubleClickMs:   DefaultDoubleClickMs,
		},
	}
}

// Warnings returns problems found while loading that did not stop it.
func (c *Config) Warnings() []string {
	return c.warnings
}

// DefaultConfigPath returns ~/.config/tide/config.toml, or "" when the user
// config directory is unknown.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
func loadFromFile(cfg *Config, filePath string) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		cfg.warnings = append(cfg.warnings, fmt.Sprintf("config file '%s': unrecognized keys: %v", filePath, undecoded))
	}
	return nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Input.TabWidth <= 0 {
		c.Input.TabWidth = defaults.Input.TabWidth
	}
	if c.Input.ScrollOff < 0 { // Allow 0
		c.Input.ScrollOff = defaults.Input.ScrollOff
	}
	if c.Input.MaxLength < 0 {
		c.Input.MaxLength = defaults.Input.MaxLength
	}
	if c.Input.MaxHistory <= 0 {
		c.Input.MaxHistory = defaults.Input.MaxHistory
	}
	if c.Input.WrapWidth < 0 {
		c.Input.WrapWidth = defaults.Input.WrapWidth
	}
	if c.Input.DoubleClickMs <= 0 {
		c.Input.DoubleClickMs = defaults.Input.DoubleClickMs
	}

	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.warnings = append(c.warnings, fmt.Sprintf("unknown log level %q, using %q", c.Logger.LogLevel, defaults.Logger.LogLevel))
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds a configuration from defaults, the TOML file at path (the
// default location when path is empty) and flags, in that order. flags may
// be nil.
func Load(path string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	if path == "" {
		path = DefaultConfigPath()
	}
	var err error
	if path != "" {
		err = loadFromFile(cfg, path)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, err
}
