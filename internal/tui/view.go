package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"puffy/internal/render"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

// screenLayout is the canvas rectangle in terminal cells; shared by View and mouse hit-testing.
type screenLayout struct {
	contentW, contentH int
	sidebarW           int
	mapX, mapY         int
	mapW, mapH         int
}

func (m Model) layout() screenLayout {
	var lay screenLayout
	if m.showSidebar {
		lay.sidebarW = sidebarWidth
	}
	lay.contentH = max(4, m.height-headerHeight-footerHeight)
	lay.contentW = max(10, m.width)
	lay.mapW = max(10, lay.contentW-lay.sidebarW-1)
	lay.mapH = lay.contentH
	lay.mapY = headerHeight
	if m.showSidebar {
		lay.mapX = lay.sidebarW + 1
	}
	return lay
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Update list size with accurate content height when sidebar visible
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lay.contentH-2)
	}

	// Header
	header := titleStyle.Render(" puffy ─ svg sticker inflater ")
	header = lipgloss.NewStyle().Width(lay.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lay.sidebarW).Render(m.l.View())
	}

	canvasW, canvasH := max(8, lay.mapW), max(4, lay.mapH)
	var mapView string
	switch {
	case m.showAttrs:
		// infer a reasonable width from columns
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		if colW == 0 {
			colW = min(60, lay.contentW-6)
		}
		maxW := min(lay.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lay.mapH-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.pasteMode:
		m.ta.SetWidth(canvasW)
		m.ta.SetHeight(min(canvasH, 12))
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(m.ta.View())
	default:
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(m.renderCanvas(canvasW, canvasH))
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	} else {
		body = mapView
	}

	// Footer / help
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	mode := modeStyle.Render(" " + m.app.Mode().String() + " ")
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, mode, status)
	footer := lipgloss.NewStyle().Width(lay.contentW).Render(lipgloss.JoinVertical(lipgloss.Left, left, help))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

// renderCanvas draws the current frame of the app into a w x h braille canvas.
func (m Model) renderCanvas(w, h int) string {
	cfg := m.app.Config()
	c := render.NewCanvas(w, h, cfg.Light())
	c.OutlineStyle = outlineStyle
	if err := m.app.Render(c); err != nil {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, dimStyle.Render(err.Error()))
	}
	return c.String()
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"p puffy",
		"[/] puffiness",
		"drag/←↑↓→ orbit",
		"wheel/+- zoom",
		"r reset",
		"Tab files",
		"e paste",
		"a vertices",
		"s snapshot",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
