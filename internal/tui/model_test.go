package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puffy/internal/app"
	"puffy/internal/config"
	"puffy/internal/view"
)

func newModel(t *testing.T) Model {
	t.Helper()
	a := app.New(config.Default(), nil)
	require.NoError(t, a.LoadReader("sticker", strings.NewReader(`<svg><rect x="0" y="0" width="120" height="80"/></svg>`)))
	m := New(a, nil)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func press(m Model, key string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
	return next.(Model)
}

func TestNewShowsLoadedShape(t *testing.T) {
	m := newModel(t)
	assert.Contains(t, m.status, "sticker")
	assert.Equal(t, "sticker", m.selPath)
}

func TestPuffyKeySwitchesMode(t *testing.T) {
	m := newModel(t)
	assert.Equal(t, view.Flat, m.app.Mode())
	m = press(m, "p")
	assert.Equal(t, view.Inflated, m.app.Mode())
	assert.Contains(t, m.status, "mode=inflated")
}

func TestViewRendersCanvas(t *testing.T) {
	m := newModel(t)
	out := m.View()
	assert.Contains(t, out, "puffy")
	assert.Contains(t, out, "flat")
	assert.True(t, strings.ContainsFunc(out, func(r rune) bool { return r > 0x2800 && r <= 0x28FF }))

	m = press(m, "h")
	assert.False(t, m.helpVisible)
}

func TestMouseDragOrbits(t *testing.T) {
	m := newModel(t)
	m = press(m, "p")
	theta := m.app.Camera().Theta

	next, _ := m.Update(tea.MouseMsg{X: 10, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	m = next.(Model)
	assert.True(t, m.app.Dragging())
	next, _ = m.Update(tea.MouseMsg{X: 20, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion})
	m = next.(Model)
	assert.InDelta(t, theta-0.8, m.app.Camera().Theta, 1e-5)

	next, _ = m.Update(tea.MouseMsg{X: 20, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	m = next.(Model)
	assert.False(t, m.app.Dragging())
}

func TestWheelZooms(t *testing.T) {
	m := newModel(t)
	r := m.app.Camera().Radius
	next, _ := m.Update(tea.MouseMsg{X: 10, Y: 5, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m = next.(Model)
	assert.Equal(t, r-5, m.app.Camera().Radius)

	// outside the canvas (header row) the wheel is ignored
	next, _ = m.Update(tea.MouseMsg{X: 10, Y: 0, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	m = next.(Model)
	assert.Equal(t, r-5, m.app.Camera().Radius)
}

func TestMouseEvents(t *testing.T) {
	evs := mouseEvents(tea.MouseMsg{X: 5, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, 1, 1)
	assert.Equal(t, []app.Event{app.PointerMove{X: 32, Y: 32}, app.PointerButton{Down: true}}, evs)

	evs = mouseEvents(tea.MouseMsg{X: 5, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, 1, 1)
	assert.Equal(t, []app.Event{app.PointerMove{X: 32, Y: 32}, app.PointerButton{Down: false}}, evs)

	evs = mouseEvents(tea.MouseMsg{X: 2, Y: 2, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress}, 0, 0)
	assert.Equal(t, []app.Event{app.Scroll{Delta: -1}}, evs)

	evs = mouseEvents(tea.MouseMsg{X: 2, Y: 2, Action: tea.MouseActionMotion}, 0, 0)
	assert.Equal(t, []app.Event{app.PointerMove{X: 16, Y: 32}}, evs)
}

func TestPasteMode(t *testing.T) {
	m := newModel(t)
	m = press(m, "e")
	require.True(t, m.pasteMode)
	m.ta.SetValue(`<svg><circle cx="0" cy="0" r="10"/></svg>`)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	assert.False(t, m.pasteMode)
	assert.Equal(t, "<pasted>", m.app.Source())
	assert.Equal(t, 64, m.app.Shape().Len())

	m = press(m, "e")
	m.ta.SetValue(`<html/>`)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	assert.True(t, m.pasteMode)
	assert.Contains(t, m.status, "svg error")
	assert.Equal(t, "<pasted>", m.app.Source())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)
	assert.False(t, m.pasteMode)
}

func TestVertexTable(t *testing.T) {
	m := newModel(t)
	m = press(m, "a")
	require.True(t, m.showAttrs)
	rows := m.tbl.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, "0:rect", rows[0][1])
	assert.Equal(t, "-60.00", rows[0][2])
	assert.Equal(t, "-40.00", rows[0][3])
}

func TestFileChangeReloadsShownFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "s.svg")
	require.NoError(t, os.WriteFile(p, []byte(`<svg><rect width="10" height="10"/></svg>`), 0o644))
	a := app.New(config.Default(), nil)
	require.NoError(t, a.Load(p))
	m := New(a, nil)
	shape := m.app.Shape()

	require.NoError(t, os.WriteFile(p, []byte(`<svg><circle r="5"/></svg>`), 0o644))
	next, cmd := m.Update(fileChangedMsg{path: p})
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.Contains(t, m.status, "reloaded")
	assert.Same(t, shape, m.app.Shape())
	assert.Equal(t, 64, m.app.Shape().Len())
}

func TestFileChangeKeepsPastedShape(t *testing.T) {
	p := filepath.Join(t.TempDir(), "s.svg")
	require.NoError(t, os.WriteFile(p, []byte(`<svg><circle r="5"/></svg>`), 0o644))
	m := newModel(t)
	m = press(m, "e")
	m.ta.SetValue(`<svg><rect width="10" height="10"/></svg>`)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = next.(Model)
	status := m.status

	next, _ = m.Update(fileChangedMsg{path: p})
	m = next.(Model)
	assert.Equal(t, "<pasted>", m.app.Source())
	assert.Equal(t, 4, m.app.Shape().Len())
	assert.Equal(t, status, m.status)
}

func TestListSelectsShownFile(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.svg", "b.svg", "c.svg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`<svg><circle r="5"/></svg>`), 0o644))
	}
	t.Chdir(dir)
	a := app.New(config.Default(), nil)
	require.NoError(t, a.Load("b.svg"))
	m := New(a, nil)
	it, ok := m.l.SelectedItem().(fileItem)
	require.True(t, ok)
	assert.Equal(t, "b.svg", it.title)
}
