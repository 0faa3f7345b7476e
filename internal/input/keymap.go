// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to actions.
type Keymap map[tcell.Key]Action        // For special keys (Enter, Arrows, Ctrl+letter, etc.)
type ModKeymap map[tcell.ModMask]Keymap // For keys whose meaning depends on extra modifiers

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap    Keymap
	modKeymap ModKeymap
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:    make(Keymap),
		modKeymap: make(ModKeymap),
	}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the initial key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	// --- Movement (Shift extends the selection) ---
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd

	// --- Editing ---
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward // Often used for Backspace
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine

	// --- Ctrl+letter arrives as its own key code ---
	p.keymap[tcell.KeyCtrlA] = ActionSelectAll
	p.keymap[tcell.KeyCtrlW] = ActionSelectWord
	p.keymap[tcell.KeyCtrlZ] = ActionUndo
	p.keymap[tcell.KeyCtrlY] = ActionRedo
	p.keymap[tcell.KeyCtrlC] = ActionCopy
	p.keymap[tcell.KeyCtrlX] = ActionCut
	p.keymap[tcell.KeyCtrlV] = ActionPaste
	p.keymap[tcell.KeyCtrlG] = ActionWordCount

	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlQ] = ActionQuit

	// Ctrl+Shift+Z is the other common redo binding.
	p.modKeymap[tcell.ModCtrl|tcell.ModShift] = Keymap{tcell.KeyCtrlZ: ActionRedo}
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	// 1. Modifier + Key combinations
	if modKeyMap, ok := p.modKeymap[mod]; ok {
		if action, ok := modKeyMap[key]; ok {
			return ActionEvent{Action: action}
		}
	}
	// Ctrl is implied by the key code itself; drop it so Ctrl+A matches KeyCtrlA.
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		mod &^= tcell.ModCtrl
	}
	shift := mod&tcell.ModShift != 0
	mod &^= tcell.ModShift

	// 2. Simple key mappings, Shift allowed
	if mod == tcell.ModNone {
		if action, ok := p.keymap[key]; ok {
			return ActionEvent{Action: action, Select: shift && action.IsMovement()}
		}
	}

	// 3. Plain runes insert (Shift is part of the rune already)
	if mod == tcell.ModNone {
		switch key {
		case tcell.KeyRune:
			return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
		case tcell.KeyTab:
			return ActionEvent{Action: ActionInsertRune, Rune: '\t'}
		}
	}

	// 4. No mapping found
	return ActionEvent{Action: ActionUnknown}
}
