package tui

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.ToLower(filepath.Ext(name)) != ".svg" {
			continue
		}
		items = append(items, fileItem{title: name, desc: ".svg", path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no .svg files in current directory"
		return
	}
	m.selectCurrent()
}

// selectCurrent moves the list cursor onto the shown file, if it is listed.
func (m *Model) selectCurrent() {
	if m.selPath == "" {
		return
	}
	want, err := filepath.Abs(m.selPath)
	if err != nil {
		return
	}
	for i, it := range m.l.Items() {
		if fi, ok := it.(fileItem); ok && fi.path == want {
			m.l.Select(i)
			return
		}
	}
}

// loadPath replaces the shape with the document at p; a bad file leaves the current one in place.
func (m *Model) loadPath(p string) {
	if err := m.app.Load(p); err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.log.Debug("file selected", "path", p)
	m.status = "loaded: " + m.app.Status()
	m.refreshAttrsIfShown()
}
