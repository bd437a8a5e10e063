package render

import (
	"math"

	"cogentcore.org/core/math32"
)

// unlit marks a dot drawn by an outline rather than a shaded surface.
const unlit = -1

type brailleBuf struct {
	w, h  int       // in cells
	m     [][]uint8 // per-cell 8-bit mask
	depth []float32 // per dot; +Inf when empty
	light []float32 // per dot intensity, unlit for outline dots
}

func newBrailleBuf(w, h int) *brailleBuf {
	w, h = max(w, 0), max(h, 0)
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	n := w * 2 * h * 4
	b := &brailleBuf{w: w, h: h, m: m, depth: make([]float32, n), light: make([]float32, n)}
	for i := range b.depth {
		b.depth[i] = math32.Inf(1)
	}
	return b
}

// microW and microH are the dot grid dimensions: 2x4 dots per cell.
func (b *brailleBuf) microW() int { return b.w * 2 }
func (b *brailleBuf) microH() int { return b.h * 4 }

// dotBit is the braille pattern bit of the dot at (rx, ry) inside its cell.
func dotBit(rx, ry int) uint8 {
	if rx == 0 {
		switch ry {
		case 0:
			return 0x01
		case 1:
			return 0x02
		case 2:
			return 0x04
		case 3:
			return 0x40
		}
	} else {
		switch ry {
		case 0:
			return 0x08
		case 1:
			return 0x10
		case 2:
			return 0x20
		case 3:
			return 0x80
		}
	}
	return 0
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell) as an outline dot.
func (b *brailleBuf) setPixel(mx, my int) {
	b.plot(mx, my, math32.Inf(-1), unlit)
}

// plot sets a dot if it is nearer than what the dot already holds.
func (b *brailleBuf) plot(mx, my int, depth, intensity float32) {
	if mx < 0 || my < 0 || mx >= b.microW() || my >= b.microH() {
		return
	}
	i := my*b.microW() + mx
	if depth > b.depth[i] {
		return
	}
	b.depth[i] = depth
	b.light[i] = intensity
	b.m[my/4][mx/2] |= dotBit(mx%2, my%4)
}

// drawSegment draws a line given in float micro coordinates, clipped to the grid first so the
// cost depends on the visible part only.
func (b *brailleBuf) drawSegment(x0, y0, x1, y1 float32) {
	ax, ay, bx, by, ok := clipSegment(
		float64(x0), float64(y0), float64(x1), float64(y1),
		float64(b.microW()-1), float64(b.microH()-1),
	)
	if !ok {
		return
	}
	b.drawLineMicro(int(ax), int(ay), int(bx), int(by))
}

// clipSegment clips (x0,y0)-(x1,y1) to [0,maxX]x[0,maxY] (Liang-Barsky). ok is false when the
// segment misses the box or has a non-finite coordinate.
func clipSegment(x0, y0, x1, y1, maxX, maxY float64) (ax, ay, bx, by float64, ok bool) {
	for _, v := range [4]float64{x0, y0, x1, y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	if maxX < 0 || maxY < 0 {
		return 0, 0, 0, 0, false
	}
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{{-dx, x0}, {dx, maxX - x0}, {-dy, y0}, {dy, maxY - y0}}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = min(t1, r)
		}
	}
	clampX := func(v float64) float64 { return min(max(v, 0), maxX) }
	clampY := func(v float64) float64 { return min(max(v, 0), maxY) }
	return clampX(x0 + t0*dx), clampY(y0 + t0*dy), clampX(x0 + t1*dx), clampY(y0 + t1*dy), true
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// microVertex is a projected vertex on the dot grid with its depth and light intensity.
type microVertex struct {
	x, y, z, i float32
}

func edge(a, b microVertex, px, py float32) float32 {
	return (b.x-a.x)*(py-a.y) - (b.y-a.y)*(px-a.x)
}

// fillTriangle rasterises abc, sampling dot centres and interpolating depth and intensity.
// Either winding is accepted.
func (b *brailleBuf) fillTriangle(a, bv, c microVertex) {
	area := edge(a, bv, c.x, c.y)
	if area == 0 {
		return
	}
	// bounds are clamped in float so far-off vertices never reach the int conversion
	gw, gh := float32(b.microW()-1), float32(b.microH()-1)
	minX := int(math32.Clamp(math32.Floor(min(a.x, bv.x, c.x)), 0, gw))
	maxX := int(math32.Clamp(math32.Ceil(max(a.x, bv.x, c.x)), 0, gw))
	minY := int(math32.Clamp(math32.Floor(min(a.y, bv.y, c.y)), 0, gh))
	maxY := int(math32.Clamp(math32.Ceil(max(a.y, bv.y, c.y)), 0, gh))
	for my := minY; my <= maxY; my++ {
		py := float32(my) + 0.5
		for mx := minX; mx <= maxX; mx++ {
			px := float32(mx) + 0.5
			w0 := edge(bv, c, px, py) / area
			w1 := edge(c, a, px, py) / area
			w2 := edge(a, bv, px, py) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*a.z + w1*bv.z + w2*c.z
			i := w0*a.i + w1*bv.i + w2*c.i
			b.plot(mx, my, z, i)
		}
	}
}

// cellLight returns the mean intensity of the shaded dots of a cell; ok is false when the cell
// only has outline dots or none.
func (b *brailleBuf) cellLight(cx, cy int) (float32, bool) {
	var sum float32
	n := 0
	for ry := 0; ry < 4; ry++ {
		for rx := 0; rx < 2; rx++ {
			mx, my := cx*2+rx, cy*4+ry
			if b.m[cy][cx]&dotBit(rx, ry) == 0 {
				continue
			}
			if l := b.light[my*b.microW()+mx]; l >= 0 {
				sum += l
				n++
			}
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float32(n), true
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = b.cell(x, y)
		}
		out[y] = string(row)
	}
	return out
}

func (b *brailleBuf) cell(x, y int) rune {
	mask := b.m[y][x]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
