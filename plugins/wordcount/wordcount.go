// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bethropolis/tide-input/internal/plugin"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// CommandName is the command the plugin registers.
const CommandName = "wc"

// WordCount counts lines, words, characters and bytes.
type WordCount struct {
	api plugin.API
}

// New creates a new instance of the WordCount plugin.
func New() *WordCount {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "WordCount"
}

// Initialize registers the wc command.
func (p *WordCount) Initialize(api plugin.API) error {
	p.api = api
	if err := api.RegisterCommand(CommandName, p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register '%s' command: %w", CommandName, err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

// Stats holds the counts reported by the wc command.
type Stats struct {
	Lines, Words, Chars, Bytes int
}

// Count computes stats for text. Characters are grapheme clusters; an empty
// text has zero lines.
func Count(text string) Stats {
	if text == "" {
		return Stats{}
	}
	return Stats{
		Lines: strings.Count(text, "\n") + 1,
		Words: len(strings.Fields(text)),
		Chars: uniseg.GraphemeClusterCount(text),
		Bytes: len(text),
	}
}

// executeWordCount reports stats for the selection, or the whole text when
// nothing is selected.
func (p *WordCount) executeWordCount(args []string) error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}

	scope := "Text"
	text := p.api.SelectedText()
	if text == "" {
		text = p.api.Text()
	} else {
		scope = "Selection"
	}

	s := Count(text)
	p.api.SetStatusMessage("%s: Lines: %d, Words: %d, Chars: %d, Bytes: %d",
		scope, s.Lines, s.Words, s.Chars, s.Bytes)
	return nil
}
