// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/tide-input/internal/event"
	"github.com/bethropolis/tide-input/internal/types"
)

// CommandFunc defines the signature for commands registered by plugins.
type CommandFunc func(args []string) error

// API defines the methods plugins can use to interact with the text input.
// It is a controlled surface; plugins never touch the widget directly.
type API interface {
	// --- Text Access (read-only) ---
	Text() string
	Cursor() types.Cursor
	SelectedText() string

	// --- Event Bus Interaction ---
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Command Registration ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded. Used for
	// subscribing to events and registering commands.
	Initialize(api API) error

	// Shutdown is called once when the app is closing.
	Shutdown() error
}
