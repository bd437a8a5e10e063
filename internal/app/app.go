// Package app is the viewer's context object: the loaded shape, the orbit camera, the view mode
// and the pointer state, updated by host-neutral input events and drawn into any view.Renderer.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"puffy/internal/camera"
	"puffy/internal/config"
	"puffy/internal/geom"
	"puffy/internal/view"
)

var ErrNoShape = errors.New("no shape loaded")

type App struct {
	cfg    config.Config
	log    *slog.Logger
	parser *geom.Parser

	shape     *geom.Shape
	source    string
	puffiness float32

	cam  *camera.Camera
	ctrl *view.Controller

	// pointer state
	dragging bool
	lastX    float32
	lastY    float32
	hasLast  bool
}

// New returns an app with no shape, in flat mode. A nil logger discards.
func New(cfg config.Config, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &App{
		cfg:       cfg,
		log:       logger,
		parser:    &geom.Parser{Segments: cfg.CircleSegments, Logger: logger},
		puffiness: cfg.Puffiness,
		cam:       camera.New(cfg.Camera),
		ctrl:      view.NewController(cfg.View()),
	}
}

// Load parses the document at path. On failure the current shape is kept.
func (a *App) Load(path string) error {
	s, err := a.parser.ParseFile(path)
	if err != nil {
		a.log.Error("load failed", "path", path, "err", err)
		return err
	}
	a.install(path, s)
	return nil
}

// LoadReader parses a document from r; name labels it in status and logs.
func (a *App) LoadReader(name string, r io.Reader) error {
	s, err := a.parser.Parse(r)
	if err != nil {
		a.log.Error("load failed", "source", name, "err", err)
		return fmt.Errorf("%s: %w", name, err)
	}
	a.install(name, s)
	return nil
}

// Reload re-reads path into the current shape when path is what is being shown, keeping the
// shape's identity and puffiness. shown is false when another document is on screen.
func (a *App) Reload(path string) (shown bool, err error) {
	if a.shape == nil || !samePath(path, a.source) {
		a.log.Debug("reload ignored", "path", path, "source", a.source)
		return false, nil
	}
	s, err := a.parser.ParseFile(path)
	if err != nil {
		a.log.Error("reload failed", "path", path, "err", err)
		return true, err
	}
	if err := a.shape.SetFlat(s.Flat(), s.Parts()); err != nil {
		return true, fmt.Errorf("%s: %w", path, err)
	}
	a.log.Info("shape reloaded", "source", path, "vertices", a.shape.Len())
	return true, nil
}

func samePath(p, q string) bool {
	ap, err := filepath.Abs(p)
	if err != nil {
		return false
	}
	aq, err := filepath.Abs(q)
	if err != nil {
		return false
	}
	return ap == aq
}

func (a *App) install(name string, s *geom.Shape) {
	s.SetPuffiness(a.puffiness)
	a.shape = s
	a.source = name
	a.log.Info("shape installed", "source", name, "vertices", s.Len(), "parts", len(s.Parts()))
}

func (a *App) Config() config.Config  { return a.cfg }
func (a *App) Shape() *geom.Shape     { return a.shape }
func (a *App) Source() string         { return a.source }
func (a *App) Camera() *camera.Camera { return a.cam }
func (a *App) Mode() view.Mode        { return a.ctrl.Mode() }
func (a *App) Puffiness() float32     { return a.puffiness }
func (a *App) Dragging() bool         { return a.dragging }

// SetPuffiness changes the inflation level of the current and any later shape.
func (a *App) SetPuffiness(p float32) {
	a.puffiness = p
	if a.shape != nil {
		a.shape.SetPuffiness(p)
	}
}

// EnterPuffyMode switches to the inflated view; repeated calls change nothing.
func (a *App) EnterPuffyMode() {
	if a.ctrl.Fire(view.ActivatePuffy) {
		a.log.Debug("mode", "mode", a.ctrl.Mode())
	}
}

// Handle applies one input event and reports whether anything visible may have changed.
func (a *App) Handle(ev Event) bool {
	switch e := ev.(type) {
	case KeyPress:
		return a.handleKey(e.Key)
	case PointerButton:
		a.dragging = e.Down
		return false
	case PointerMove:
		return a.handleMove(e.X, e.Y)
	case Scroll:
		a.cam.Update(0, 0, e.Delta)
		return true
	}
	return false
}

func (a *App) handleKey(key string) bool {
	switch key {
	case KeyPuffy, KeyPuffyUpper:
		before := a.ctrl.Mode()
		a.EnterPuffyMode()
		return a.ctrl.Mode() != before
	case KeyMorePuffy:
		a.SetPuffiness(a.puffiness + 1)
	case KeyLessPuffy:
		a.SetPuffiness(a.puffiness - 1)
	case KeyResetCamera:
		a.cam.Reset()
	case KeyZoomIn:
		a.cam.Update(0, 0, 1)
	case KeyZoomOut:
		a.cam.Update(0, 0, -1)
	case KeyOrbitLeft, KeyOrbitRight, KeyOrbitUp, KeyOrbitDown:
		if a.ctrl.Mode() != view.Inflated {
			return false
		}
		dx, dy := float32(0), float32(0)
		switch key {
		case KeyOrbitLeft:
			dx = -orbitStep
		case KeyOrbitRight:
			dx = orbitStep
		case KeyOrbitUp:
			dy = -orbitStep
		case KeyOrbitDown:
			dy = orbitStep
		}
		a.cam.Update(dx, dy, 0)
	default:
		return false
	}
	return true
}

// handleMove orbits by the pointer delta while dragging in the inflated view.
// The last position is tracked in every mode so a drag never starts with a jump.
func (a *App) handleMove(x, y float32) bool {
	moved := false
	if a.dragging && a.hasLast && a.ctrl.Mode() == view.Inflated {
		a.cam.Update(x-a.lastX, y-a.lastY, 0)
		moved = true
	}
	a.lastX, a.lastY, a.hasLast = x, y, true
	return moved
}

// Render draws the current frame into r.
func (a *App) Render(r view.Renderer) error {
	if a.shape == nil {
		return ErrNoShape
	}
	return a.ctrl.Frame(r, a.shape, a.cam)
}

// Status is a one-line summary of the app state.
func (a *App) Status() string {
	if a.shape == nil {
		return "no shape"
	}
	size := a.shape.Bounds().Size()
	s := fmt.Sprintf("%s  %d vertices  %.0fx%.0f  mode=%s  puffiness=%g",
		a.source, a.shape.Len(), size.X, size.Y, a.ctrl.Mode(), a.puffiness)
	if a.ctrl.Mode() == view.Inflated {
		s += "  " + a.cam.String()
	}
	return s
}
