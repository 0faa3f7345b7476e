// internal/app/app.go
package app

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tide-input/internal/config"
	"github.com/bethropolis/tide-input/internal/core"
	"github.com/bethropolis/tide-input/internal/core/clipboard"
	"github.com/bethropolis/tide-input/internal/core/cursor"
	"github.com/bethropolis/tide-input/internal/event"
	"github.com/bethropolis/tide-input/internal/input"
	"github.com/bethropolis/tide-input/internal/logger"
	"github.com/bethropolis/tide-input/internal/plugin"
	"github.com/bethropolis/tide-input/internal/statusbar"
	"github.com/bethropolis/tide-input/internal/theme"
	"github.com/bethropolis/tide-input/internal/tui"
)

// Options configures a new App.
type Options struct {
	Config      *config.Config
	Theme       *theme.Theme // nil uses the built-in theme
	Label       string       // Shown in the status bar
	InitialText string
	Screen      tcell.Screen // nil opens the terminal
}

// App wires the text input to the terminal and runs the event loop.
type App struct {
	tuiManager     *tui.TUI
	input          *core.TextInput
	inputProcessor *input.InputProcessor
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	pluginManager  *plugin.Manager
	viewport       *cursor.Viewport
	activeTheme    *theme.Theme
	cfg            config.InputConfig

	mouse mouseState
	paste *strings.Builder // Non-nil while a bracketed paste is arriving

	// Channels managed by the App
	quit          chan struct{}
	quitOnce      sync.Once
	redrawRequest chan struct{}
	events        chan tcell.Event
}

// NewApp creates and initializes a new application instance.
func NewApp(opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	activeTheme := opts.Theme
	if activeTheme == nil {
		activeTheme = theme.Dark()
	}

	var tuiManager *tui.TUI
	var err error
	if opts.Screen != nil {
		tuiManager, err = tui.NewWithScreen(opts.Screen, activeTheme.GetStyle(theme.StyleDefault))
	} else {
		tuiManager, err = tui.New(activeTheme.GetStyle(theme.StyleDefault))
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	statusBarConfig := statusbar.Config{
		StyleDefault:   activeTheme.GetStyle(theme.StyleStatusBar),
		StyleMessage:   activeTheme.GetStyle(theme.StyleStatusBarMessage),
		MessageTimeout: config.MessageTimeout,
	}

	a := &App{
		tuiManager:     tuiManager,
		inputProcessor: input.NewInputProcessor(),
		statusBar:      statusbar.New(statusBarConfig),
		eventManager:   event.NewManager(),
		pluginManager:  plugin.NewManager(),
		viewport:       &cursor.Viewport{ScrollOff: cfg.Input.ScrollOff},
		activeTheme:    activeTheme,
		cfg:            cfg.Input,
		quit:           make(chan struct{}),
		redrawRequest:  make(chan struct{}, 1),
		events:         make(chan tcell.Event),
	}

	width, _ := tuiManager.Size()
	a.input = core.NewTextInput(core.Options{
		Multiline:  cfg.Input.Multiline,
		MaxLength:  cfg.Input.MaxLength,
		MaxHistory: cfg.Input.MaxHistory,
		WrapWidth:  a.wrapWidthFor(width),
		TabWidth:   cfg.Input.TabWidth,
		Clipboard:  clipboard.New(cfg.Input.SystemClipboard),
	})

	a.subscribeStatusUpdates()
	a.input.SetEventManager(a.eventManager)
	a.input.SetRedrawFunc(a.requestRedraw)
	a.statusBar.SetLabel(opts.Label)
	a.input.SetText(opts.InitialText)
	a.input.FocusIn()

	if err := a.registerPlugins(); err != nil {
		tuiManager.Close()
		return nil, err
	}

	return a, nil
}

// Input returns the text input driven by the app.
func (a *App) Input() *core.TextInput {
	return a.input
}

// Events returns the app's event manager for extra subscribers.
func (a *App) Events() *event.Manager {
	return a.eventManager
}

// Run starts polling the terminal and blocks until the user quits. All
// handling and drawing happens on the calling goroutine.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.pollLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage("Esc quit | Ctrl+Z undo | Ctrl+Y redo | Ctrl+C/X/V clipboard | Ctrl+G count")
	a.requestRedraw()

	// Expire temporary messages even when idle.
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			a.pluginManager.ShutdownPlugins()
			logger.Infof("Exiting application.")
			return nil
		case ev := <-a.events:
			a.HandleEvent(ev)
		case <-a.redrawRequest:
			a.Draw()
		case <-ticker.C:
			a.requestRedraw()
		}
	}
}

// pollLoop forwards terminal events to Run until the screen is closed.
func (a *App) pollLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// HandleEvent processes one terminal event.
func (a *App) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		width, _ := a.tuiManager.Size()
		a.input.SetWrapWidth(a.wrapWidthFor(width))
		a.requestRedraw()

	case *tcell.EventPaste:
		a.handlePaste(ev)

	case *tcell.EventKey:
		if a.paste != nil {
			a.collectPaste(ev)
			return
		}
		a.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})
		a.handleAction(a.inputProcessor.ProcessEvent(ev))

	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
}

// wrapWidthFor returns the wrap width for a screen this wide. The last column
// stays free so a caret at the end of a full row has a cell of its own.
func (a *App) wrapWidthFor(screenWidth int) int {
	width := a.cfg.WrapWidth
	if width <= 0 || width >= screenWidth {
		width = screenWidth - 1
	}
	if width < 1 {
		width = 1
	}
	return width
}

// Draw redraws the whole screen.
func (a *App) Draw() {
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	tui.DrawInput(a.tuiManager, a.input, a.viewport, a.activeTheme, config.StatusBarHeight)
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height)
	a.tuiManager.Show()
}

// Quit stops Run. It is safe to call more than once.
func (a *App) Quit() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // Don't block if a redraw is already pending
	}
}
