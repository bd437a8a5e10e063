package render

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/core/math32"
	"github.com/charmbracelet/lipgloss"

	"puffy/internal/geom"
	"puffy/internal/view"
)

// shadeLevels quantises cell intensity so neighbouring cells share a style run.
const shadeLevels = 16

// Canvas is a terminal renderer drawing with braille dots, 2x4 per character cell.
// Each frame needs a fresh Canvas (or Reset).
type Canvas struct {
	w, h  int
	buf   *brailleBuf
	proj  projector
	light Light
	fill  color.RGBA

	// OutlineStyle renders outline-only cells.
	OutlineStyle lipgloss.Style
}

// NewCanvas returns a blank canvas of w x h character cells.
func NewCanvas(w, h int, light Light) *Canvas {
	return &Canvas{
		w:            w,
		h:            h,
		buf:          newBrailleBuf(w, h),
		light:        light,
		OutlineStyle: lipgloss.NewStyle(),
	}
}

// Reset clears the canvas.
func (c *Canvas) Reset() { c.buf = newBrailleBuf(c.w, c.h) }

func (c *Canvas) SetProjection(p view.Projection, v math32.Matrix4) {
	c.proj.set(p, v, float32(c.buf.microW()), float32(c.buf.microH()))
}

func (c *Canvas) DrawOutline(vs []geom.Vertex2D) {
	if len(vs) == 0 {
		return
	}
	pts := make([][2]float32, 0, len(vs))
	for _, v := range vs {
		x, y, ok := c.proj.point2D(v)
		if !ok {
			continue
		}
		pts = append(pts, [2]float32{x, y})
	}
	if len(pts) == 1 {
		c.buf.drawSegment(pts[0][0], pts[0][1], pts[0][0], pts[0][1])
		return
	}
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		c.buf.drawSegment(a[0], a[1], b[0], b[1])
	}
}

// DrawFilledSurface fills the fan (vs[0], vs[i], vs[i+1]) with Gouraud-shaded dots.
func (c *Canvas) DrawFilledSurface(vs []geom.Vertex3D, normals []math32.Vector3, fill color.RGBA) {
	c.fill = fill
	mv := make([]microVertex, len(vs))
	visible := make([]bool, len(vs))
	for i, v := range vs {
		x, y, z, ok := c.proj.point(v)
		if !ok {
			continue
		}
		n := math32.Vec3(0, 0, 1)
		if i < len(normals) {
			n = normals[i]
		}
		mv[i] = microVertex{x: x, y: y, z: z, i: c.light.shade(c.proj.normal(n))}
		visible[i] = true
	}
	if len(vs) < 3 {
		for i := range mv {
			if visible[i] {
				c.buf.plot(int(mv[i].x), int(mv[i].y), mv[i].z, mv[i].i)
			}
		}
		return
	}
	for i := 1; i+1 < len(mv); i++ {
		if !visible[0] || !visible[i] || !visible[i+1] {
			continue
		}
		c.buf.fillTriangle(mv[0], mv[i], mv[i+1])
	}
}

// Lines returns the canvas without styling.
func (c *Canvas) Lines() []string { return c.buf.toLines() }

// String renders the canvas with shaded cells coloured from the surface fill.
func (c *Canvas) String() string {
	lines := make([]string, c.h)
	for y := 0; y < c.h; y++ {
		var sb strings.Builder
		var run []rune
		runKey := -2
		flush := func() {
			if len(run) == 0 {
				return
			}
			sb.WriteString(c.style(runKey).Render(string(run)))
			run = run[:0]
		}
		for x := 0; x < c.w; x++ {
			key := -1 // outline or empty
			if l, ok := c.buf.cellLight(x, y); ok {
				key = int(math32.Round(l * shadeLevels))
			}
			if key != runKey {
				flush()
				runKey = key
			}
			run = append(run, c.buf.cell(x, y))
		}
		flush()
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) style(key int) lipgloss.Style {
	if key < 0 {
		return c.OutlineStyle
	}
	col := tint(c.fill, float32(key)/shadeLevels)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(col)))
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
