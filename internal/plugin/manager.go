// internal/plugin/manager.go
package plugin

import (
	"fmt"
	"sort"

	"github.com/bethropolis/tide-input/internal/logger"
)

// Manager handles the registration, initialization, and lifecycle of plugins,
// and keeps the commands they register.
type Manager struct {
	plugins  map[string]Plugin
	order    []string // Registration order, for deterministic init/shutdown
	commands map[string]CommandFunc
}

// NewManager creates a new plugin manager.
func NewManager() *Manager {
	return &Manager{
		plugins:  make(map[string]Plugin),
		commands: make(map[string]CommandFunc),
	}
}

// Register adds a plugin instance to the manager.
// This should be called before InitializePlugins.
func (m *Manager) Register(p Plugin) error {
	name := p.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: plugin name cannot be empty")
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: plugin named '%s' already registered", name)
	}

	m.plugins[name] = p
	m.order = append(m.order, name)
	logger.Debugf("Plugin Manager: Registered plugin '%s'", name)
	return nil
}

// InitializePlugins calls Initialize on every registered plugin. A failing
// plugin is logged and the rest are still initialized.
func (m *Manager) InitializePlugins(api API) {
	logger.Debugf("Plugin Manager: Initializing %d plugins...", len(m.order))
	for _, name := range m.order {
		if err := m.plugins[name].Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", name, err)
		}
	}
}

// ShutdownPlugins calls Shutdown on all registered plugins in reverse order.
func (m *Manager) ShutdownPlugins() {
	for i := len(m.order) - 1; i >= 0; i-- {
		name := m.order[i]
		if err := m.plugins[name].Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", name, err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	p, exists := m.plugins[name]
	return p, exists
}

// RegisterCommand makes a command available to RunCommand.
func (m *Manager) RegisterCommand(name string, cmdFunc CommandFunc) error {
	if name == "" || cmdFunc == nil {
		return fmt.Errorf("invalid command registration for '%s'", name)
	}
	if _, exists := m.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	m.commands[name] = cmdFunc
	logger.DebugTagf("plugin", "Plugin Manager: Registered command '%s'", name)
	return nil
}

// RunCommand executes a registered command.
func (m *Manager) RunCommand(name string, args []string) error {
	cmdFunc, ok := m.commands[name]
	if !ok {
		return fmt.Errorf("unknown command: %s", name)
	}
	if err := cmdFunc(args); err != nil {
		return fmt.Errorf("command '%s' failed: %w", name, err)
	}
	return nil
}

// Commands returns the registered command names, sorted.
func (m *Manager) Commands() []string {
	names := make([]string, 0, len(m.commands))
	for name := range m.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
