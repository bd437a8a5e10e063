package view

import (
	"image/color"

	"cogentcore.org/core/math32"

	"puffy/internal/camera"
	"puffy/internal/geom"
)

// Settings are the fixed projection parameters of both modes.
type Settings struct {
	ViewportWidth  float32
	ViewportHeight float32

	FOV  float32 // degrees
	Near float32
	Far  float32

	// ModelScale shrinks the inflated shape before viewing.
	ModelScale float32
	Fill       color.RGBA
}

func DefaultSettings() Settings {
	return Settings{
		ViewportWidth:  800,
		ViewportHeight: 600,
		FOV:            45,
		Near:           1,
		Far:            1000,
		ModelScale:     0.28,
		Fill:           color.RGBA{R: 153, G: 204, B: 153, A: 255},
	}
}

// Controller is the flat/inflated state machine. It starts Flat.
type Controller struct {
	mode     Mode
	settings Settings
}

func NewController(s Settings) *Controller {
	return &Controller{mode: Flat, settings: s}
}

func (c *Controller) Mode() Mode { return c.mode }

func (c *Controller) Settings() Settings { return c.settings }

// Fire applies ev and reports whether the pair (mode, ev) has a defined transition.
// Undefined pairs leave the mode unchanged.
func (c *Controller) Fire(ev Event) bool {
	next, ok := transitions[transitionKey{c.mode, ev}]
	if !ok {
		return false
	}
	c.mode = next
	return true
}

// Frame hands the geometry of the current mode to r. The view transform is rebuilt on every call.
func (c *Controller) Frame(r Renderer, s *geom.Shape, cam *camera.Camera) error {
	if c.mode == Inflated {
		c.inflatedFrame(r, s, cam)
		return nil
	}
	return c.flatFrame(r, s)
}

// flatFrame draws every part as its own outline, moved so the shape centroid sits at the viewport centre.
func (c *Controller) flatFrame(r Renderer, s *geom.Shape) error {
	center, err := geom.Centroid(s.Flat())
	if err != nil {
		return err
	}
	screen := math32.Vec2(c.settings.ViewportWidth/2, c.settings.ViewportHeight/2)
	off := screen.Sub(center)

	var v math32.Matrix4
	v.SetTransform(math32.Vec3(off.X, off.Y, 0), math32.Quat{W: 1}, math32.Vec3(1, 1, 1))
	r.SetProjection(Ortho(c.settings.ViewportWidth, c.settings.ViewportHeight), v)
	for i := range s.Parts() {
		r.DrawOutline(s.PartVertices(i))
	}
	return nil
}

func (c *Controller) inflatedFrame(r Renderer, s *geom.Shape, cam *camera.Camera) {
	eyeView := cam.View()
	var model math32.Matrix4
	sc := c.settings.ModelScale
	model.SetTransform(math32.Vector3{}, math32.Quat{W: 1}, math32.Vec3(sc, sc, sc))
	var v math32.Matrix4
	v.MulMatrices(&eyeView, &model)

	aspect := float32(1)
	if c.settings.ViewportHeight > 0 {
		aspect = c.settings.ViewportWidth / c.settings.ViewportHeight
	}
	r.SetProjection(Persp(c.settings.FOV, aspect, c.settings.Near, c.settings.Far), v)
	r.DrawFilledSurface(s.Inflated(), s.Normals(), c.settings.Fill)
}
