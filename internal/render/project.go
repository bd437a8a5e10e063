// Package render implements view.Renderer for a braille terminal canvas and for PNG images.
package render

import (
	"image/color"

	"cogentcore.org/core/math32"

	"puffy/internal/geom"
	"puffy/internal/view"
)

// viewport is the largest rectangle of the requested aspect centred in a surface.
type viewport struct {
	x0, y0, w, h float32
}

func fitViewport(surfaceW, surfaceH, aspect float32) viewport {
	if surfaceW <= 0 || surfaceH <= 0 || aspect <= 0 {
		return viewport{w: surfaceW, h: surfaceH}
	}
	w, h := surfaceW, surfaceW/aspect
	if h > surfaceH {
		h = surfaceH
		w = surfaceH * aspect
	}
	return viewport{x0: (surfaceW - w) / 2, y0: (surfaceH - h) / 2, w: w, h: h}
}

// projector maps world points to surface coordinates with y growing downward.
type projector struct {
	view math32.Matrix4
	mvp  math32.Matrix4
	vp   viewport
}

func (p *projector) set(proj view.Projection, v math32.Matrix4, surfaceW, surfaceH float32) {
	p.view = v
	pm := proj.Matrix()
	p.mvp.MulMatrices(&pm, &v)
	p.vp = fitViewport(surfaceW, surfaceH, proj.AspectRatio())
}

// point projects v; ok is false behind the camera. depth is NDC z, smaller is nearer.
func (p *projector) point(v geom.Vertex3D) (x, y, depth float32, ok bool) {
	clip := math32.Vec4(v.X, v.Y, v.Z, 1).MulMatrix4(&p.mvp)
	if clip.W <= 0 {
		return 0, 0, 0, false
	}
	ndc := clip.PerspDiv()
	x = p.vp.x0 + (ndc.X+1)/2*p.vp.w
	y = p.vp.y0 + (1-ndc.Y)/2*p.vp.h
	return x, y, ndc.Z, true
}

func (p *projector) point2D(v geom.Vertex2D) (x, y float32, ok bool) {
	x, y, _, ok = p.point(math32.Vec3(v.X, v.Y, 0))
	return x, y, ok
}

// normal rotates a world normal into camera space.
func (p *projector) normal(n math32.Vector3) math32.Vector3 {
	r := math32.Vec4(n.X, n.Y, n.Z, 0).MulMatrix4(&p.view)
	return math32.Vec3(r.X, r.Y, r.Z).Normal()
}

// Light is a directional light fixed in camera space plus an ambient term.
type Light struct {
	Ambient float32
	Diffuse float32
	// Dir points from the surface toward the light, in camera space.
	Dir math32.Vector3
}

// DefaultLight approximates a white light at (0,0,10) in front of the viewer.
func DefaultLight() Light {
	return Light{Ambient: 0.3, Diffuse: 1, Dir: math32.Vec3(0, 0, 1)}
}

// shade returns the lit intensity in [0,1] for a camera-space normal. Both faces are lit.
func (l Light) shade(n math32.Vector3) float32 {
	d := math32.Abs(n.Dot(l.Dir.Normal()))
	return math32.Min(1, l.Ambient+l.Diffuse*d)
}

// tint scales the colour channels of c by intensity i.
func tint(c color.RGBA, i float32) color.RGBA {
	i = math32.Clamp(i, 0, 1)
	return color.RGBA{
		R: uint8(float32(c.R) * i),
		G: uint8(float32(c.G) * i),
		B: uint8(float32(c.B) * i),
		A: c.A,
	}
}
