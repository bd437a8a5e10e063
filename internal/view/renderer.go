package view

import (
	"image/color"

	"cogentcore.org/core/math32"

	"puffy/internal/geom"
)

type ProjectionKind int

const (
	Orthographic ProjectionKind = iota
	Perspective
)

// Projection describes the camera-to-screen mapping. Orthographic uses the Left..Top box,
// Perspective uses FOV (vertical, degrees), Aspect, Near and Far.
type Projection struct {
	Kind ProjectionKind

	Left, Right, Bottom, Top float32

	FOV, Aspect, Near, Far float32
}

// Ortho is an orthographic projection over [0,w] x [0,h].
func Ortho(w, h float32) Projection {
	return Projection{Kind: Orthographic, Right: w, Top: h}
}

// Persp is a perspective projection.
func Persp(fov, aspect, near, far float32) Projection {
	return Projection{Kind: Perspective, FOV: fov, Aspect: aspect, Near: near, Far: far}
}

// AspectRatio is width over height of the projected area.
func (p Projection) AspectRatio() float32 {
	if p.Kind == Perspective {
		return p.Aspect
	}
	if p.Top == p.Bottom {
		return 1
	}
	return (p.Right - p.Left) / (p.Top - p.Bottom)
}

// Matrix returns the projection matrix for Perspective; Orthographic maps the Left..Top box
// to normalised device coordinates.
func (p Projection) Matrix() math32.Matrix4 {
	var m math32.Matrix4
	if p.Kind == Perspective {
		m.SetPerspective(p.FOV, p.Aspect, p.Near, p.Far)
		return m
	}
	w, h := p.Right-p.Left, p.Top-p.Bottom
	if w == 0 || h == 0 {
		m.SetIdentity()
		return m
	}
	m.SetTransform(
		math32.Vec3(-(p.Right+p.Left)/w, -(p.Top+p.Bottom)/h, 0),
		math32.Quat{W: 1},
		math32.Vec3(2/w, 2/h, 1),
	)
	return m
}

// Renderer is what a frame needs from a drawing backend.
type Renderer interface {
	// SetProjection sets the projection and the world-to-camera transform for following draws.
	SetProjection(p Projection, view math32.Matrix4)
	// DrawOutline draws a closed polyline through vs.
	DrawOutline(vs []geom.Vertex2D)
	// DrawFilledSurface draws a triangle fan over vs with one normal per vertex.
	DrawFilledSurface(vs []geom.Vertex3D, normals []math32.Vector3, fill color.RGBA)
}
