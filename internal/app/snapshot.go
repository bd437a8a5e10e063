package app

import (
	"fmt"

	"puffy/internal/render"
)

// Snapshot renders the current frame into a PNG at path, sized like the configured viewport.
func (a *App) Snapshot(path string) error {
	vs := a.ctrl.Settings()
	w, h := int(vs.ViewportWidth), int(vs.ViewportHeight)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("snapshot: invalid viewport %dx%d", w, h)
	}
	im := render.NewImage(w, h, a.cfg.Light())
	defer im.Close()
	if err := a.Render(im); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := im.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	a.log.Info("snapshot written", "path", path, "mode", a.ctrl.Mode())
	return nil
}
