package view

import (
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puffy/internal/camera"
	"puffy/internal/geom"
)

type recorder struct {
	projections []Projection
	views       []math32.Matrix4
	outlines    [][]geom.Vertex2D
	surfaces    [][]geom.Vertex3D
	normals     [][]math32.Vector3
	fills       []color.RGBA
}

func (r *recorder) SetProjection(p Projection, v math32.Matrix4) {
	r.projections = append(r.projections, p)
	r.views = append(r.views, v)
}

func (r *recorder) DrawOutline(vs []geom.Vertex2D) { r.outlines = append(r.outlines, vs) }

func (r *recorder) DrawFilledSurface(vs []geom.Vertex3D, ns []math32.Vector3, fill color.RGBA) {
	r.surfaces = append(r.surfaces, vs)
	r.normals = append(r.normals, ns)
	r.fills = append(r.fills, fill)
}

func rect(t *testing.T) *geom.Shape {
	t.Helper()
	s, err := geom.NewShape([]geom.Vertex2D{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 20}, {X: 0, Y: 20}}, nil)
	require.NoError(t, err)
	return s
}

func TestControllerStartsFlat(t *testing.T) {
	c := NewController(DefaultSettings())
	assert.Equal(t, Flat, c.Mode())
	assert.Equal(t, "flat", c.Mode().String())
}

func TestActivatePuffyIsIdempotent(t *testing.T) {
	c := NewController(DefaultSettings())
	assert.True(t, c.Fire(ActivatePuffy))
	assert.Equal(t, Inflated, c.Mode())
	assert.True(t, c.Fire(ActivatePuffy))
	assert.Equal(t, Inflated, c.Mode())
}

func TestUndefinedEventLeavesMode(t *testing.T) {
	c := NewController(DefaultSettings())
	assert.False(t, c.Fire(Event(42)))
	assert.Equal(t, Flat, c.Mode())
	assert.Equal(t, "unknown", Event(42).String())
}

func TestFlatFrame(t *testing.T) {
	s := rect(t)
	c := NewController(DefaultSettings())
	var r recorder
	require.NoError(t, c.Frame(&r, s, camera.New(camera.DefaultOptions())))

	require.Len(t, r.projections, 1)
	p := r.projections[0]
	assert.Equal(t, Orthographic, p.Kind)
	assert.Equal(t, float32(800), p.Right)
	assert.Equal(t, float32(600), p.Top)
	assert.Empty(t, r.surfaces)
	require.Len(t, r.outlines, 1)
	assert.Equal(t, s.Flat(), r.outlines[0])

	// the centroid lands on the viewport centre
	v := r.views[0]
	o := math32.Vec4(0, 0, 0, 1).MulMatrix4(&v)
	assert.InDelta(t, 400, o.X, 1e-4)
	assert.InDelta(t, 300, o.Y, 1e-4)

	pm := p.Matrix()
	ndc := o.MulMatrix4(&pm)
	assert.InDelta(t, 0, ndc.X, 1e-5)
	assert.InDelta(t, 0, ndc.Y, 1e-5)
}

func TestFlatFrameDrawsEveryPart(t *testing.T) {
	vs := []geom.Vertex2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}}
	s, err := geom.NewShape(vs, []geom.Part{{Kind: "rect", Start: 0, End: 3}, {Kind: "rect", Start: 3, End: 6}})
	require.NoError(t, err)
	var r recorder
	require.NoError(t, NewController(DefaultSettings()).Frame(&r, s, camera.New(camera.DefaultOptions())))
	require.Len(t, r.outlines, 2)
	assert.Len(t, r.outlines[0], 3)
	assert.Len(t, r.outlines[1], 3)
}

func TestInflatedFrame(t *testing.T) {
	s := rect(t)
	s.SetPuffiness(5)
	settings := DefaultSettings()
	c := NewController(settings)
	c.Fire(ActivatePuffy)
	cam := camera.New(camera.DefaultOptions())

	var r recorder
	require.NoError(t, c.Frame(&r, s, cam))
	require.Len(t, r.projections, 1)
	p := r.projections[0]
	assert.Equal(t, Perspective, p.Kind)
	assert.Equal(t, float32(45), p.FOV)
	assert.InDelta(t, 800.0/600.0, p.Aspect, 1e-6)
	assert.Equal(t, float32(1), p.Near)
	assert.Equal(t, float32(1000), p.Far)
	assert.Empty(t, r.outlines)

	require.Len(t, r.surfaces, 1)
	assert.Equal(t, s.Inflated(), r.surfaces[0])
	assert.Equal(t, s.Normals(), r.normals[0])
	assert.Equal(t, settings.Fill, r.fills[0])

	// model scale applies before the camera: a point at x=100 lands at x=28 in camera space
	v := r.views[0]
	pt := math32.Vec4(100, 0, 0, 1).MulMatrix4(&v)
	assert.InDelta(t, 28, pt.X, 1e-3)
	assert.InDelta(t, -200, pt.Z, 1e-3)
}

func TestInflatedFrameFollowsCamera(t *testing.T) {
	s := rect(t)
	c := NewController(DefaultSettings())
	c.Fire(ActivatePuffy)
	cam := camera.New(camera.DefaultOptions())

	var before, after recorder
	require.NoError(t, c.Frame(&before, s, cam))
	cam.Update(0, 0, 10)
	require.NoError(t, c.Frame(&after, s, cam))
	assert.NotEqual(t, before.views[0], after.views[0])
}

func TestOrthoMatrix(t *testing.T) {
	p := Ortho(800, 600)
	assert.InDelta(t, 800.0/600.0, p.AspectRatio(), 1e-6)
	m := p.Matrix()
	corner := math32.Vec4(800, 600, 0, 1).MulMatrix4(&m)
	assert.InDelta(t, 1, corner.X, 1e-6)
	assert.InDelta(t, 1, corner.Y, 1e-6)
	origin := math32.Vec4(0, 0, 0, 1).MulMatrix4(&m)
	assert.InDelta(t, -1, origin.X, 1e-6)
	assert.InDelta(t, -1, origin.Y, 1e-6)
}

func TestPerspMatrix(t *testing.T) {
	p := Persp(45, 2, 1, 1000)
	assert.Equal(t, float32(2), p.AspectRatio())
	m := p.Matrix()
	// a point straight ahead projects to the centre
	c := math32.Vec4(0, 0, -100, 1).MulMatrix4(&m)
	assert.Greater(t, c.W, float32(0))
	ndc := c.PerspDiv()
	assert.InDelta(t, 0, ndc.X, 1e-6)
	assert.InDelta(t, 0, ndc.Y, 1e-6)
}
