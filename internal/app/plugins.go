// internal/app/plugins.go
package app

import (
	"fmt"

	"github.com/bethropolis/tide-input/internal/event"
	"github.com/bethropolis/tide-input/internal/plugin"
	"github.com/bethropolis/tide-input/internal/types"
	"github.com/bethropolis/tide-input/plugins/wordcount"
)

// Ensure App implements the plugin API
var _ plugin.API = (*App)(nil)

// registerPlugins registers the built-in plugins and initializes them.
func (a *App) registerPlugins() error {
	if err := a.pluginManager.Register(wordcount.New()); err != nil {
		return fmt.Errorf("failed to register plugin: %w", err)
	}
	a.pluginManager.InitializePlugins(a)
	return nil
}

// runCommand executes a plugin command, reporting failures in the status bar.
func (a *App) runCommand(name string, args ...string) {
	if err := a.pluginManager.RunCommand(name, args); err != nil {
		a.reportError(err)
	}
}

// Text returns the input's current text.
func (a *App) Text() string {
	return a.input.Text()
}

// Cursor returns the input's cursor.
func (a *App) Cursor() types.Cursor {
	return a.input.Cursor()
}

// SelectedText returns the selected text, empty when nothing is selected.
func (a *App) SelectedText() string {
	return a.input.SelectedText()
}

// SubscribeEvent lets plugins listen on the app's event bus.
func (a *App) SubscribeEvent(eventType event.Type, handler event.Handler) {
	a.eventManager.Subscribe(eventType, handler)
}

// RegisterCommand exposes a plugin command.
func (a *App) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	return a.pluginManager.RegisterCommand(name, cmdFunc)
}

// SetStatusMessage shows a temporary status bar message.
func (a *App) SetStatusMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(format, args...)
	a.requestRedraw()
}
