// Package config loads the viewer's tunable constants from defaults and an optional TOML or YAML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"puffy/internal/camera"
	"puffy/internal/geom"
	"puffy/internal/render"
	"puffy/internal/view"
)

// DefaultPath is read when no --config flag is given and the file exists.
const DefaultPath = "~/.config/puffy/config.toml"

type Config struct {
	Puffiness      float32 `toml:"puffiness" yaml:"puffiness"`
	CircleSegments int     `toml:"circle_segments" yaml:"circle_segments"`

	Camera   camera.Options `toml:"camera" yaml:"camera"`
	Viewport Viewport       `toml:"viewport" yaml:"viewport"`
	Surface  Surface        `toml:"surface" yaml:"surface"`
}

type Viewport struct {
	Width  float32 `toml:"width" yaml:"width"`
	Height float32 `toml:"height" yaml:"height"`
	FOV    float32 `toml:"fov" yaml:"fov"`
	Near   float32 `toml:"near" yaml:"near"`
	Far    float32 `toml:"far" yaml:"far"`
	Scale  float32 `toml:"scale" yaml:"scale"`
}

type Surface struct {
	Fill    string  `toml:"fill" yaml:"fill"`
	Ambient float32 `toml:"ambient" yaml:"ambient"`
	Diffuse float32 `toml:"diffuse" yaml:"diffuse"`
}

// Default returns the built-in tunables.
func Default() Config {
	vs := view.DefaultSettings()
	l := render.DefaultLight()
	return Config{
		Puffiness:      1,
		CircleSegments: geom.DefaultCircleSegments,
		Camera:         camera.DefaultOptions(),
		Viewport: Viewport{
			Width:  vs.ViewportWidth,
			Height: vs.ViewportHeight,
			FOV:    vs.FOV,
			Near:   vs.Near,
			Far:    vs.Far,
			Scale:  vs.ModelScale,
		},
		Surface: Surface{
			Fill:    "#99CC99",
			Ambient: l.Ambient,
			Diffuse: l.Diffuse,
		},
	}
}

// Load decodes path over the defaults. The format follows the extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	p, err := homedir.Expand(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("config: unsupported file type %q", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", p, err)
	}
	if _, err := cfg.FillColor(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadDefault reads DefaultPath if it exists and falls back to Default otherwise.
func LoadDefault() (Config, error) {
	cfg, err := Load(DefaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// FillColor parses Surface.Fill as a #RRGGBB colour.
func (c Config) FillColor() (color.RGBA, error) {
	col, err := colorful.Hex(c.Surface.Fill)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("config: fill %q: %w", c.Surface.Fill, err)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// View returns the projection settings for the mode controller.
func (c Config) View() view.Settings {
	fill, err := c.FillColor()
	if err != nil {
		fill = view.DefaultSettings().Fill
	}
	return view.Settings{
		ViewportWidth:  c.Viewport.Width,
		ViewportHeight: c.Viewport.Height,
		FOV:            c.Viewport.FOV,
		Near:           c.Viewport.Near,
		Far:            c.Viewport.Far,
		ModelScale:     c.Viewport.Scale,
		Fill:           fill,
	}
}

// Light returns the renderer lighting.
func (c Config) Light() render.Light {
	l := render.DefaultLight()
	l.Ambient = c.Surface.Ambient
	l.Diffuse = c.Surface.Diffuse
	return l
}
