package geom

import "cogentcore.org/core/math32"

// Shape is a centred flat outline plus its lazily inflated copy.
type Shape struct {
	flat  []Vertex2D
	parts []Part

	puffiness float32
	inflated  []Vertex3D
	normals   []math32.Vector3
	fresh     bool
}

// NewShape centres vs on the origin and takes ownership of it.
// parts may be nil, in which case the whole sequence is one part.
func NewShape(vs []Vertex2D, parts []Part) (*Shape, error) {
	if _, err := Center(vs); err != nil {
		return nil, err
	}
	if len(parts) == 0 {
		parts = []Part{{Kind: "polygon", Start: 0, End: len(vs)}}
	}
	return &Shape{flat: vs, parts: parts}, nil
}

// Flat returns the centred outline. Callers must not modify it.
func (s *Shape) Flat() []Vertex2D { return s.flat }

// Parts returns the per-element index ranges into Flat.
func (s *Shape) Parts() []Part { return s.parts }

// PartVertices returns the flat vertices of part i.
func (s *Shape) PartVertices(i int) []Vertex2D {
	p := s.parts[i]
	return s.flat[p.Start:p.End]
}

func (s *Shape) Len() int { return len(s.flat) }

func (s *Shape) Bounds() math32.Box2 { return Bounds(s.flat) }

func (s *Shape) Puffiness() float32 { return s.puffiness }

// SetPuffiness changes the inflation level; the inflated copy is rebuilt on next access.
func (s *Shape) SetPuffiness(p float32) {
	if p == s.puffiness && s.fresh {
		return
	}
	s.puffiness = p
	s.fresh = false
}

// SetFlat replaces the outline geometry, recentres it and invalidates the inflated copy.
func (s *Shape) SetFlat(vs []Vertex2D, parts []Part) error {
	ns, err := NewShape(vs, parts)
	if err != nil {
		return err
	}
	s.flat, s.parts = ns.flat, ns.parts
	s.fresh = false
	return nil
}

// Inflated returns the height-field vertices for the current puffiness, index-aligned with Flat.
func (s *Shape) Inflated() []Vertex3D {
	s.refresh()
	return s.inflated
}

// Normals returns the per-vertex surface normals of Inflated.
func (s *Shape) Normals() []math32.Vector3 {
	s.refresh()
	return s.normals
}

func (s *Shape) refresh() {
	if s.fresh {
		return
	}
	s.inflated = Inflate(s.flat, s.puffiness)
	s.normals = Normals(s.flat, s.puffiness)
	s.fresh = true
}
