package wordcount

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/tide-input/internal/event"
	"github.com/bethropolis/tide-input/internal/plugin"
	"github.com/bethropolis/tide-input/internal/types"
)

type fakeAPI struct {
	text, selected string
	commands       map[string]plugin.CommandFunc
	message        string
}

func (f *fakeAPI) Text() string                             { return f.text }
func (f *fakeAPI) Cursor() types.Cursor                     { return types.Cursor{} }
func (f *fakeAPI) SelectedText() string                     { return f.selected }
func (f *fakeAPI) SubscribeEvent(event.Type, event.Handler) {}
func (f *fakeAPI) SetStatusMessage(format string, args ...interface{}) {
	f.message = fmt.Sprintf(format, args...)
}

func (f *fakeAPI) RegisterCommand(name string, fn plugin.CommandFunc) error {
	if f.commands == nil {
		f.commands = make(map[string]plugin.CommandFunc)
	}
	f.commands[name] = fn
	return nil
}

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Stats
	}{
		{"empty", "", Stats{}},
		{"single word", "hi", Stats{Lines: 1, Words: 1, Chars: 2, Bytes: 2}},
		{"trailing newline", "a b\n", Stats{Lines: 2, Words: 2, Chars: 4, Bytes: 4}},
		{"crlf is one character", "a\r\nb", Stats{Lines: 2, Words: 2, Chars: 3, Bytes: 4}},
		{"flag emoji", "\U0001F1E9\U0001F1EA", Stats{Lines: 1, Words: 1, Chars: 1, Bytes: 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Count(tt.text))
		})
	}
}

func TestCommandReportsSelectionOrText(t *testing.T) {
	api := &fakeAPI{text: "one two three"}
	p := New()
	require.NoError(t, p.Initialize(api))
	cmd, ok := api.commands[CommandName]
	require.True(t, ok)

	require.NoError(t, cmd(nil))
	assert.Equal(t, "Text: Lines: 1, Words: 3, Chars: 13, Bytes: 13", api.message)

	api.selected = "two"
	require.NoError(t, cmd(nil))
	assert.Equal(t, "Selection: Lines: 1, Words: 1, Chars: 3, Bytes: 3", api.message)
}

func TestCommandWithoutInitialize(t *testing.T) {
	assert.Error(t, New().executeWordCount(nil))
}
