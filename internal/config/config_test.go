package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, float32(1), cfg.Puffiness)
	assert.Equal(t, 64, cfg.CircleSegments)
	assert.Equal(t, float32(200), cfg.Camera.Radius)
	assert.Equal(t, float32(0.28), cfg.Viewport.Scale)

	fill, err := cfg.FillColor()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x99, G: 0xCC, B: 0x99, A: 255}, fill)

	vs := cfg.View()
	assert.Equal(t, float32(800), vs.ViewportWidth)
	assert.Equal(t, float32(45), vs.FOV)
	assert.Equal(t, fill, vs.Fill)
	assert.Equal(t, float32(0.3), cfg.Light().Ambient)
}

func TestLoadTOML(t *testing.T) {
	p := writeFile(t, "puffy.toml", `
puffiness = 4.0

[camera]
radius = 120.0
zoom_step = 2.0

[surface]
fill = "#FF8800"
ambient = 0.5
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, float32(4), cfg.Puffiness)
	assert.Equal(t, float32(120), cfg.Camera.Radius)
	assert.Equal(t, float32(2), cfg.Camera.ZoomStep)
	// untouched keys keep their defaults
	assert.Equal(t, float32(0.01), cfg.Camera.Sensitivity)
	assert.Equal(t, 64, cfg.CircleSegments)
	assert.Equal(t, float32(0.5), cfg.Light().Ambient)

	fill, err := cfg.FillColor()
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xFF, G: 0x88, B: 0x00, A: 255}, fill)
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, "puffy.yml", `
circle_segments: 16
viewport:
  fov: 60
  scale: 0.5
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.CircleSegments)
	assert.Equal(t, float32(60), cfg.View().FOV)
	assert.Equal(t, float32(0.5), cfg.View().ModelScale)
	assert.Equal(t, float32(1000), cfg.View().Far)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "puffy.json", `{}`))
	assert.ErrorContains(t, err, "unsupported file type")

	_, err = Load(writeFile(t, "bad.toml", `puffiness = `))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "color.toml", "[surface]\nfill = \"green\"\n"))
	assert.ErrorContains(t, err, "fill")

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestViewFallsBackOnBadFill(t *testing.T) {
	cfg := Default()
	cfg.Surface.Fill = "nope"
	assert.Equal(t, Default().View().Fill, cfg.View().Fill)
}
