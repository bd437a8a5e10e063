package tui

import (
	"log/slog"
	"os"

	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"puffy/internal/app"
	"puffy/internal/watch"
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string // highlighted in the list when it is a file in cwd

	// Viewer state; mutated only from Update
	app *app.App

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// vertex table
	showAttrs bool
	tbl       table.Model

	watcher   *watch.Watcher
	snapshots int
	log       *slog.Logger
}

// New wraps an app whose shape is usually already loaded.
func New(a *app.App, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	m := Model{
		showSidebar: false,
		helpVisible: true,
		status:      "puffy ready",
		app:         a,
		log:         logger,
	}
	m.cwd, _ = os.Getwd()
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "SVG files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = `Paste SVG markup, e.g. <svg><circle cx="0" cy="0" r="50"/></svg>. Ctrl+S renders; Esc cancels.`
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// vertex table setup
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	if a.Shape() != nil {
		m.status = a.Status()
		m.selPath = a.Source()
		m.selectCurrent()
	}
	return m
}

// WithWatcher reloads the shape whenever w reports a change.
func (m Model) WithWatcher(w *watch.Watcher) Model {
	m.watcher = w
	return m
}

func (m Model) Init() tea.Cmd {
	if m.watcher != nil {
		return waitForChange(m.watcher)
	}
	return nil
}
