package tui

import (
	"fmt"
	"strings"

	"cogentcore.org/core/base/errors"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"puffy/internal/app"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.height-1-2) // provisional; will be refined in View
		}
	case fileChangedMsg:
		shown, err := m.app.Reload(msg.path)
		switch {
		case !shown:
			m.log.Debug("change ignored", "path", msg.path)
		case err != nil:
			m.status = "reload error (keeping previous shape): " + err.Error()
		default:
			m.status = "reloaded: " + m.app.Status()
			m.refreshAttrsIfShown()
		}
		if m.watcher == nil {
			return m, nil
		}
		return m, waitForChange(m.watcher)
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		switch msg.String() {
		case "ctrl+c", "q":
			if m.watcher != nil {
				errors.Log(m.watcher.Close())
			}
			return m, tea.Quit
		case "tab":
			m.showSidebar = !m.showSidebar
			if m.showSidebar {
				m.refreshDir()
				m.l.SetSize(sidebarWidth-2, m.height-1-2)
			}
		case "e":
			m.pasteMode = true
			m.ta.SetValue("")
			m.status = "paste mode"
			m.ta.Focus()
			return m, nil
		case "h":
			m.helpVisible = !m.helpVisible
		case "a":
			m.showAttrs = !m.showAttrs
			if m.showAttrs {
				m.refreshAttrsFromCurrent()
			}
		case "s":
			m.snapshots++
			path := fmt.Sprintf("puffy-%03d.png", m.snapshots)
			if err := errors.Log(m.app.Snapshot(path)); err != nil {
				m.status = err.Error()
			} else {
				m.log.Debug("snapshot written", "path", path)
				m.status = "snapshot: " + path
			}
		case "enter":
			if m.showSidebar {
				if it, ok := m.l.SelectedItem().(fileItem); ok {
					m.loadPath(it.path)
				}
			}
		default:
			key := msg.String()
			if (m.showSidebar || m.showAttrs) && (key == "up" || key == "down") {
				break
			}
			if m.app.Handle(app.KeyPress{Key: key}) {
				m.status = m.app.Status()
			}
		}
	case tea.MouseMsg:
		lay := m.layout()
		inside := msg.X >= lay.mapX && msg.X < lay.mapX+lay.mapW && msg.Y >= lay.mapY && msg.Y < lay.mapY+lay.mapH
		// presses (wheel included) only count over the canvas; a drag may leave it
		if !inside && msg.Action == tea.MouseActionPress {
			break
		}
		changed := false
		for _, ev := range mouseEvents(msg, lay.mapX, lay.mapY) {
			if m.app.Handle(ev) {
				changed = true
			}
		}
		if changed {
			m.status = m.app.Status()
		}
	}
	var cmds []tea.Cmd
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		cmds = append(cmds, cmd)
	}
	if m.showAttrs {
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "ctrl+s":
		doc := strings.TrimSpace(m.ta.Value())
		if doc == "" {
			m.status = "paste: empty"
			return m, nil
		}
		if err := m.app.LoadReader("<pasted>", strings.NewReader(doc)); err != nil {
			m.status = "svg error: " + err.Error()
			return m, nil
		}
		m.selPath = ""
		m.status = "rendered " + m.app.Status()
		m.pasteMode = false
		m.ta.Blur()
		m.refreshAttrsIfShown()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}
