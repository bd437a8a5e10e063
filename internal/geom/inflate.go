package geom

import "cogentcore.org/core/math32"

// heightField is the radial falloff h(d) = p * exp(-d^2 / spread) centred on a vertex set's centroid.
type heightField struct {
	center    Vertex2D
	puffiness float32
	spread    float32 // 2 * maxRadius^2 / 3; zero for a degenerate set
}

func newHeightField(flat []Vertex2D, puffiness float32) heightField {
	hf := heightField{puffiness: puffiness}
	c, err := Centroid(flat)
	if err != nil {
		return hf
	}
	hf.center = c
	var maxRadius float32
	for _, v := range flat {
		if d := v.Sub(c).Length(); d > maxRadius {
			maxRadius = d
		}
	}
	hf.spread = 2 * maxRadius * maxRadius / 3
	return hf
}

func (hf heightField) at(v Vertex2D) float32 {
	if hf.spread == 0 {
		return hf.puffiness
	}
	d2 := v.Sub(hf.center).LengthSquared()
	return hf.puffiness * math32.Exp(-d2/hf.spread)
}

// normal is normalize(-dh/dx, -dh/dy, 1).
func (hf heightField) normal(v Vertex2D) math32.Vector3 {
	if hf.spread == 0 {
		return math32.Vec3(0, 0, 1)
	}
	rel := v.Sub(hf.center)
	k := 2 * hf.at(v) / hf.spread
	return math32.Vec3(k*rel.X, k*rel.Y, 1).Normal()
}

// Inflate lifts every flat vertex to the height of a radial Gaussian dome over the set's centroid.
// Heights peak at puffiness on the centroid and fall off toward the farthest vertex. When every
// vertex coincides with the centroid all heights equal puffiness.
//
// The result is meant to be drawn as one triangle fan over the boundary, so concave outlines
// produce overlapping triangles; this is a visual approximation, not a valid mesh.
func Inflate(flat []Vertex2D, puffiness float32) []Vertex3D {
	hf := newHeightField(flat, puffiness)
	out := make([]Vertex3D, len(flat))
	for i, v := range flat {
		out[i] = math32.Vec3(v.X, v.Y, hf.at(v))
	}
	return out
}

// Normals returns the surface normal of the inflated height field at every flat vertex.
func Normals(flat []Vertex2D, puffiness float32) []math32.Vector3 {
	hf := newHeightField(flat, puffiness)
	out := make([]math32.Vector3, len(flat))
	for i, v := range flat {
		out[i] = hf.normal(v)
	}
	return out
}
