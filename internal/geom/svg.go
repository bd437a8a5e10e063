package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"cogentcore.org/core/math32"
)

// DefaultCircleSegments is the number of vertices a <circle> is tessellated into.
const DefaultCircleSegments = 64

// Parser extracts a flat outline from the <circle> and <rect> children of an <svg> root.
// Every other element is skipped without error. Missing or malformed numeric attributes read as 0.
type Parser struct {
	Segments int
	Logger   *slog.Logger
}

// NewParser returns a parser with the default tessellation and a discarding logger.
func NewParser() *Parser {
	return &Parser{Segments: DefaultCircleSegments}
}

// Parse reads a document with the default parser.
func Parse(r io.Reader) (*Shape, error) { return NewParser().Parse(r) }

// ParseFile reads the document at path with the default parser.
func ParseFile(path string) (*Shape, error) { return NewParser().ParseFile(path) }

func (p *Parser) ParseFile(path string) (*Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer f.Close()
	s, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse collects the vertices of every recognised element in document order, concatenated into
// one sequence, and returns them centred on their centroid. Each element's range is kept as a Part.
func (p *Parser) Parse(r io.Reader) (*Shape, error) {
	log := p.logger()
	dec := xml.NewDecoder(r)
	dec.Strict = true

	if err := findRoot(dec); err != nil {
		return nil, err
	}

	var vs []Vertex2D
	var parts []Part
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// unterminated root
				return nil, fmt.Errorf("%w: %w", ErrIO, io.ErrUnexpectedEOF)
			}
			return nil, fmt.Errorf("%w: %w", ErrIO, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			start := len(vs)
			switch t.Name.Local {
			case "circle":
				a := attrs(t.Attr)
				vs = append(vs, circlePolygon(a.num("cx"), a.num("cy"), a.num("r"), p.segments())...)
			case "rect":
				a := attrs(t.Attr)
				vs = append(vs, rectPolygon(a.num("x"), a.num("y"), a.num("width"), a.num("height"))...)
			}
			if len(vs) > start {
				log.Debug("found tag", "tag", t.Name.Local, "vertices", len(vs)-start)
				parts = append(parts, Part{Kind: t.Name.Local, Start: start, End: len(vs)})
			} else {
				log.Debug("ignored tag", "tag", t.Name.Local)
			}
			// children of shapes and of unknown elements are not scanned
			if err := dec.Skip(); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrIO, err)
			}
		case xml.EndElement:
			// closes the root
			if len(parts) > 1 {
				log.Warn("document has several shapes; vertices are merged into one outline", "shapes", len(parts))
			}
			s, err := NewShape(vs, parts)
			if err != nil {
				return nil, err
			}
			log.Info("loaded shape", "vertices", s.Len(), "parts", len(parts))
			return s, nil
		}
	}
}

func (p *Parser) segments() int {
	if p.Segments <= 0 {
		return DefaultCircleSegments
	}
	return p.Segments
}

func (p *Parser) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// findRoot advances dec past the <svg> start tag.
func findRoot(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return ErrMissingRootElement
			}
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			if se.Name.Local != "svg" {
				return fmt.Errorf("%w: root is <%s>", ErrMissingRootElement, se.Name.Local)
			}
			return nil
		}
	}
}

type attrs []xml.Attr

// num returns the named attribute as a float, or 0 when it is absent or not a number.
func (a attrs) num(name string) float32 {
	for _, at := range a {
		if at.Name.Local == name {
			return parseFloat32(at.Value)
		}
	}
	return 0
}

func parseFloat32(s string) float32 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0
	}
	return float32(v)
}

// circlePolygon approximates a circle by n vertices at increasing angle starting on +X.
func circlePolygon(cx, cy, r float32, n int) []Vertex2D {
	pts := make([]Vertex2D, n)
	for i := 0; i < n; i++ {
		theta := 2 * math32.Pi * float32(i) / float32(n)
		pts[i] = math32.Vec2(cx+r*math32.Cos(theta), cy+r*math32.Sin(theta))
	}
	return pts
}

func rectPolygon(x, y, w, h float32) []Vertex2D {
	return []Vertex2D{
		math32.Vec2(x, y),
		math32.Vec2(x+w, y),
		math32.Vec2(x+w, y+h),
		math32.Vec2(x, y+h),
	}
}
