// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags holds values parsed from command-line flags.
// Only flags that were actually set override the config file.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	EnableTags     *string
	DisableTags    *string
	EnablePkgs     *string
	DisablePkgs    *string
	EnableFiles    *string
	DisableFiles   *string

	SingleLine      *bool
	MaxLength       *int
	WrapWidth       *int
	TabWidth        *int
	ScrollOff       *int
	SystemClipboard *bool
	ThemeFile       *string
}

// NewFlags defines the command-line flags on fs.
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", ConfigDirName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")

	f.SingleLine = fs.Bool("single-line", false, "Edit a single line; newlines are stripped")
	f.MaxLength = fs.Int("max-length", 0, "Maximum text length in bytes (0 = unlimited)")
	f.WrapWidth = fs.Int("wrap", 0, "Soft wrap width in cells (0 = terminal width)")
	f.TabWidth = fs.Int("tabwidth", 0, "Number of cells per tab stop - Overrides config file")
	f.ScrollOff = fs.Int("scrolloff", -1, "Rows of context above/below the caret - Overrides config file")
	f.SystemClipboard = fs.Bool("system-clipboard", false, "Use the system clipboard instead of an internal register")
	f.ThemeFile = fs.String("theme", "", "Path to a TOML theme file")
	return f
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides updates cfg with the values of flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath // "-" is valid
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
		case "single-line":
			cfg.Input.Multiline = !*f.SingleLine
		case "max-length":
			cfg.Input.MaxLength = *f.MaxLength
		case "wrap":
			cfg.Input.WrapWidth = *f.WrapWidth
		case "tabwidth":
			if *f.TabWidth > 0 {
				cfg.Input.TabWidth = *f.TabWidth
			}
		case "scrolloff":
			if *f.ScrollOff >= 0 {
				cfg.Input.ScrollOff = *f.ScrollOff
			}
		case "system-clipboard":
			cfg.Input.SystemClipboard = *f.SystemClipboard
		case "theme":
			cfg.Theme.File = *f.ThemeFile
		}
	})
}

// splitCommaList splits a comma-separated list, dropping empty items.
func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
