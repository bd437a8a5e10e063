// Package camera implements an orbit camera that circles the origin on a sphere.
package camera

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Options are the tunable constants of the orbit camera.
type Options struct {
	Theta  float32 `toml:"theta" yaml:"theta"`   // initial azimuth, radians
	Phi    float32 `toml:"phi" yaml:"phi"`       // initial polar angle, radians
	Radius float32 `toml:"radius" yaml:"radius"` // initial distance to the origin

	MinRadius   float32 `toml:"min_radius" yaml:"min_radius"`
	Sensitivity float32 `toml:"sensitivity" yaml:"sensitivity"` // radians per pointer unit
	ZoomStep    float32 `toml:"zoom_step" yaml:"zoom_step"`     // radius change per scroll unit
}

// DefaultOptions looks at the origin from +Z.
func DefaultOptions() Options {
	return Options{
		Theta:       math32.Pi / 2,
		Phi:         math32.Pi / 2,
		Radius:      200,
		MinRadius:   10,
		Sensitivity: 0.01,
		ZoomStep:    5,
	}
}

// Camera is the spherical state (Theta, Phi, Radius). Radius never drops below MinRadius.
// Phi is not clamped: orbiting past a pole flips the picture because the up vector stays +Y.
type Camera struct {
	Theta  float32
	Phi    float32
	Radius float32

	opts Options
}

// New returns a camera at the initial position of opts. A non-positive MinRadius is replaced by the default.
func New(opts Options) *Camera {
	if opts.MinRadius <= 0 {
		opts.MinRadius = DefaultOptions().MinRadius
	}
	c := &Camera{opts: opts}
	c.Reset()
	return c
}

func (c *Camera) Options() Options { return c.opts }

// Reset returns to the initial position.
func (c *Camera) Reset() {
	c.Theta = c.opts.Theta
	c.Phi = c.opts.Phi
	c.Radius = math32.Max(c.opts.MinRadius, c.opts.Radius)
}

// Update applies a pointer drag (dAzimuth, dPolar) and a scroll delta. Positive scroll moves closer.
func (c *Camera) Update(dAzimuth, dPolar, scroll float32) {
	c.Theta -= dAzimuth * c.opts.Sensitivity
	c.Phi += dPolar * c.opts.Sensitivity
	c.Radius = math32.Max(c.opts.MinRadius, c.Radius-scroll*c.opts.ZoomStep)
}

// Eye is the camera position in world space.
func (c *Camera) Eye() math32.Vector3 {
	sp := math32.Sin(c.Phi)
	return math32.Vec3(
		c.Radius*sp*math32.Cos(c.Theta),
		c.Radius*math32.Cos(c.Phi),
		c.Radius*sp*math32.Sin(c.Theta),
	)
}

// Up is the fixed up direction.
func (c *Camera) Up() math32.Vector3 { return math32.Vec3(0, 1, 0) }

// View is the world-to-camera transform looking from Eye at the origin.
func (c *Camera) View() math32.Matrix4 {
	return LookAt(c.Eye(), math32.Vector3{}, c.Up())
}

func (c *Camera) String() string {
	return fmt.Sprintf("θ=%.2f φ=%.2f r=%.1f", c.Theta, c.Phi, c.Radius)
}

// LookAt returns the view matrix of a camera at eye facing target.
func LookAt(eye, target, up math32.Vector3) math32.Matrix4 {
	var q math32.Quat
	q.SetFromRotationMatrix(math32.NewLookAt(eye, target, up))
	var pose math32.Matrix4
	pose.SetTransform(eye, q, math32.Vec3(1, 1, 1))
	view, err := pose.Inverse()
	if err != nil {
		var id math32.Matrix4
		id.SetIdentity()
		return id
	}
	return *view
}
