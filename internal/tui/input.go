package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"puffy/internal/app"
	"puffy/internal/watch"
)

// A terminal cell stands for this many pointer pixels, so camera sensitivity
// feels like it does with a real pointer.
const (
	cellPixelsX = 8
	cellPixelsY = 16
)

// mouseEvents translates a terminal mouse message into core input events.
// originX/originY is the top-left cell of the canvas.
func mouseEvents(msg tea.MouseMsg, originX, originY int) []app.Event {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return []app.Event{app.Scroll{Delta: 1}}
	case tea.MouseButtonWheelDown:
		return []app.Event{app.Scroll{Delta: -1}}
	}
	move := app.PointerMove{
		X: float32((msg.X - originX) * cellPixelsX),
		Y: float32((msg.Y - originY) * cellPixelsY),
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			return []app.Event{move, app.PointerButton{Down: true}}
		}
	case tea.MouseActionRelease:
		// the move lands while still dragging so the last delta is applied
		return []app.Event{move, app.PointerButton{Down: false}}
	}
	return []app.Event{move}
}

type fileChangedMsg struct{ path string }

// waitForChange blocks on the watcher and delivers the next change to Update.
func waitForChange(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-w.Changes()
		if !ok {
			return nil
		}
		return fileChangedMsg{path: p}
	}
}
