package geom

import (
	"errors"

	"cogentcore.org/core/math32"
)

// Vertex2D is a point of the flat outline.
type Vertex2D = math32.Vector2

// Vertex3D is an inflated point: X and Y copied from the flat vertex, Z holds the derived height.
type Vertex3D = math32.Vector3

var (
	ErrIO                 = errors.New("svg: cannot read document")
	ErrMissingRootElement = errors.New("svg: no <svg> root element")
	ErrEmptyShape         = errors.New("empty shape: no vertices")
)

// Part is the index range [Start, End) of the vertices one source element produced.
type Part struct {
	Kind  string
	Start int
	End   int
}

func (p Part) Len() int { return p.End - p.Start }
