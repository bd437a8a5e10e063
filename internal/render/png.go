package render

import (
	"fmt"
	"image/color"
	"sort"

	"cogentcore.org/core/math32"
	"github.com/gogpu/gg"

	"puffy/internal/geom"
	"puffy/internal/view"
)

// Image renders frames into an offscreen raster with gg.
type Image struct {
	dc    *gg.Context
	proj  projector
	light Light
	err   error

	Background gg.RGBA
	Outline    gg.RGBA
	LineWidth  float64
}

// NewImage returns a w x h pixel renderer cleared to the background colour.
func NewImage(w, h int, light Light) *Image {
	im := &Image{
		dc:         gg.NewContext(w, h),
		light:      light,
		Background: gg.Hex("#0B0F14"),
		Outline:    gg.Hex("#E6E6E6"),
		LineWidth:  2,
	}
	im.dc.ClearWithColor(im.Background)
	return im
}

func (im *Image) SetProjection(p view.Projection, v math32.Matrix4) {
	im.proj.set(p, v, float32(im.dc.Width()), float32(im.dc.Height()))
}

func (im *Image) DrawOutline(vs []geom.Vertex2D) {
	first := true
	for _, v := range vs {
		x, y, ok := im.proj.point2D(v)
		if !ok {
			continue
		}
		if first {
			im.dc.MoveTo(float64(x), float64(y))
			first = false
			continue
		}
		im.dc.LineTo(float64(x), float64(y))
	}
	if first {
		return
	}
	im.dc.ClosePath()
	im.dc.SetColor(im.Outline.Color())
	im.dc.SetLineWidth(im.LineWidth)
	im.keep(im.dc.Stroke())
}

type fanTriangle struct {
	pts   [3][2]float64
	depth float32
	light float32
}

// DrawFilledSurface fills the fan back to front, one flat-shaded triangle at a time.
func (im *Image) DrawFilledSurface(vs []geom.Vertex3D, normals []math32.Vector3, fill color.RGBA) {
	if len(vs) < 3 {
		return
	}
	type projected struct {
		x, y, z, i float32
		ok         bool
	}
	ps := make([]projected, len(vs))
	for i, v := range vs {
		x, y, z, ok := im.proj.point(v)
		n := math32.Vec3(0, 0, 1)
		if i < len(normals) {
			n = normals[i]
		}
		ps[i] = projected{x: x, y: y, z: z, i: im.light.shade(im.proj.normal(n)), ok: ok}
	}
	var tris []fanTriangle
	for i := 1; i+1 < len(ps); i++ {
		a, b, c := ps[0], ps[i], ps[i+1]
		if !a.ok || !b.ok || !c.ok {
			continue
		}
		tris = append(tris, fanTriangle{
			pts:   [3][2]float64{{float64(a.x), float64(a.y)}, {float64(b.x), float64(b.y)}, {float64(c.x), float64(c.y)}},
			depth: (a.z + b.z + c.z) / 3,
			light: (a.i + b.i + c.i) / 3,
		})
	}
	sort.SliceStable(tris, func(i, j int) bool { return tris[i].depth > tris[j].depth })
	for _, t := range tris {
		im.dc.MoveTo(t.pts[0][0], t.pts[0][1])
		im.dc.LineTo(t.pts[1][0], t.pts[1][1])
		im.dc.LineTo(t.pts[2][0], t.pts[2][1])
		im.dc.ClosePath()
		im.dc.SetColor(tint(fill, t.light))
		im.keep(im.dc.Fill())
	}
}

func (im *Image) keep(err error) {
	if err != nil && im.err == nil {
		im.err = err
	}
}

// SavePNG writes the image to path.
func (im *Image) SavePNG(path string) error {
	if im.err != nil {
		return fmt.Errorf("render: %w", im.err)
	}
	return im.dc.SavePNG(path)
}

// Close releases the drawing context.
func (im *Image) Close() error {
	return im.dc.Close()
}
