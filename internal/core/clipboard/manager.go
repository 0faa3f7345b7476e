// Package clipboard provides the copy/paste register used by text inputs.
package clipboard

import (
	"fmt"
	"sync"

	sysclip "github.com/atotto/clipboard"

	"github.com/bethropolis/tide-input/internal/logger"
)

// Clipboard stores and returns copied text.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
}

// Internal is an in-process register.
type Internal struct {
	mu   sync.Mutex
	text string
}

// Read returns the last written text.
func (c *Internal) Read() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text, nil
}

// Write replaces the register contents.
func (c *Internal) Write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.text = text
	return nil
}

// System talks to the OS clipboard.
type System struct{}

// Read returns the OS clipboard contents.
func (System) Read() (string, error) {
	text, err := sysclip.ReadAll()
	if err != nil {
		return "", fmt.Errorf("failed to read system clipboard: %w", err)
	}
	return text, nil
}

// Write sets the OS clipboard contents.
func (System) Write(text string) error {
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write system clipboard: %w", err)
	}
	return nil
}

// New returns the system clipboard when requested and available, the
// internal register otherwise.
func New(useSystem bool) Clipboard {
	if useSystem && !sysclip.Unsupported {
		return System{}
	}
	if useSystem {
		logger.Warnf("Clipboard: system clipboard unsupported, using internal register")
	}
	return &Internal{}
}
