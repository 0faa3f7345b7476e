package app

import (
	"github.com/rivo/uniseg"

	"github.com/bethropolis/tide-input/internal/event"
)

// subscribeStatusUpdates keeps the status bar in sync with the text input.
func (a *App) subscribeStatusUpdates() {
	a.eventManager.Subscribe(event.TypeTextChanged, a.handleTextChangedForStatus)
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleCursorMovedForStatus)
	a.eventManager.Subscribe(event.TypeHistoryChanged, a.handleHistoryChangedForStatus)
}

func (a *App) handleTextChangedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.TextChangedData); ok {
		a.statusBar.SetLengthInfo(data.Length, a.cfg.MaxLength)
	}
	return false // Not consumed
}

func (a *App) handleCursorMovedForStatus(e event.Event) bool {
	if _, ok := e.Data.(event.CursorMovedData); ok {
		selected := uniseg.GraphemeClusterCount(a.input.SelectedText())
		a.statusBar.SetCursorInfo(a.input.CaretPosition(), selected)
	}
	return false
}

func (a *App) handleHistoryChangedForStatus(e event.Event) bool {
	if data, ok := e.Data.(event.HistoryChangedData); ok {
		a.statusBar.SetHistoryInfo(data.UndoDepth, data.RedoDepth)
	}
	return false
}
