package geom

import "cogentcore.org/core/math32"

// Centroid returns the arithmetic mean of vs.
func Centroid(vs []Vertex2D) (Vertex2D, error) {
	if len(vs) == 0 {
		return Vertex2D{}, ErrEmptyShape
	}
	var sum math32.Vector2
	for _, v := range vs {
		sum = sum.Add(v)
	}
	return sum.DivScalar(float32(len(vs))), nil
}

// Center translates vs in place so that their centroid is the origin and returns the offset removed.
func Center(vs []Vertex2D) (Vertex2D, error) {
	c, err := Centroid(vs)
	if err != nil {
		return Vertex2D{}, err
	}
	for i := range vs {
		vs[i] = vs[i].Sub(c)
	}
	return c, nil
}

// Bounds returns the bounding box of vs.
func Bounds(vs []Vertex2D) math32.Box2 {
	var b math32.Box2
	b.SetFromPoints(vs)
	return b
}
