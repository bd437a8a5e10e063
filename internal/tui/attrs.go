package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshAttrsFromCurrent rebuilds the vertex table from the current shape.
func (m *Model) refreshAttrsFromCurrent() {
	cols, rows := m.buildVertexRows()
	if len(rows) == 0 {
		// no shape: nothing to tabulate
		m.showAttrs = false
		m.status = "no vertices for current shape"
		return
	}
	// Avoid transient mismatch: clear rows, set columns, then set rows
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(cols)
	m.tbl.SetRows(rows)
}

func (m *Model) refreshAttrsIfShown() {
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
}

// buildVertexRows lists every flat vertex with its part and its height at the current puffiness.
func (m *Model) buildVertexRows() ([]table.Column, []table.Row) {
	cols := []table.Column{
		{Title: "#", Width: 5},
		{Title: "part", Width: 10},
		{Title: "x", Width: 10},
		{Title: "y", Width: 10},
		{Title: "height", Width: 10},
	}
	s := m.app.Shape()
	if s == nil {
		return cols, nil
	}
	flat := s.Flat()
	inflated := s.Inflated()
	rows := make([]table.Row, 0, len(flat))
	for pi, p := range s.Parts() {
		part := fmt.Sprintf("%d:%s", pi, p.Kind)
		for i := p.Start; i < p.End; i++ {
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", i),
				part,
				fmt.Sprintf("%.2f", flat[i].X),
				fmt.Sprintf("%.2f", flat[i].Y),
				fmt.Sprintf("%.2f", inflated[i].Z),
			})
		}
	}
	return cols, rows
}
