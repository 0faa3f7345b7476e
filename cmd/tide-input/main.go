// cmd/tide-input/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // Use standard log for fatal errors before logger is ready
	"os"
	"path/filepath"

	"github.com/bethropolis/tide-input/internal/app"
	"github.com/bethropolis/tide-input/internal/config"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/theme"
)

var version = "dev"

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(flag.CommandLine)
	args, err := flags.Parse(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	cfg, cfgErr := config.Load(*flags.ConfigFilePath, flags)

	// --- Logger Initialization ---
	cleanup, err := logger.Init(cfg.Logger)
	if err != nil {
		stlog.Fatalf("Failed to initialize logger: %v", err)
	}
	defer cleanup()

	logger.Infof("Starting %s...", config.AppName)
	if cfgErr != nil {
		logger.Warnf("Config: %v (using defaults)", cfgErr)
	}
	for _, w := range cfg.Warnings() {
		logger.Warnf("Config: %s", w)
	}

	// --- Optional initial text ---
	var filePath, initialText string
	if len(args) > 0 {
		filePath = args[0]
		data, err := os.ReadFile(filePath)
		switch {
		case err == nil:
			initialText = string(data)
		case os.IsNotExist(err):
			logger.Debugf("File '%s' does not exist, starting empty.", filePath)
		default:
			stlog.Fatalf("Failed to read '%s': %v", filePath, err)
		}
	}

	activeTheme, err := theme.Load(cfg.Theme.File)
	if err != nil {
		logger.Warnf("Theme: %v (using built-in theme)", err)
		activeTheme = theme.Dark()
	}

	// --- Create and Run App ---
	label := ""
	if filePath != "" {
		label = filepath.Base(filePath)
	}
	inputApp, err := app.NewApp(app.Options{
		Config:      cfg,
		Theme:       activeTheme,
		Label:       label,
		InitialText: initialText,
	})
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := inputApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	// The edited text goes to stdout so the tool can be used in pipelines.
	fmt.Print(inputApp.Input().Text())
	logger.Infof("%s finished.", config.AppName)
}
