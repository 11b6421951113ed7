package main

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/sprite"
	"github.com/gogpu/sprite/blend"
	"github.com/gogpu/sprite/color"
)

// Recipe describes a composite: layers applied bottom to top, then an
// optional crop and transform.
type Recipe struct {
	Channel   string     `toml:"channel" yaml:"channel"`
	Output    string     `toml:"output" yaml:"output"`
	Layers    []Layer    `toml:"layer" yaml:"layers"`
	Crop      *Crop      `toml:"crop" yaml:"crop"`
	Transform *Transform `toml:"transform" yaml:"transform"`
}

// Layer is one image applied to the canvas at (X, Y).
type Layer struct {
	Path    string `toml:"path" yaml:"path"`
	X       int    `toml:"x" yaml:"x"`
	Y       int    `toml:"y" yaml:"y"`
	Blend   string `toml:"blend" yaml:"blend"`
	Compose string `toml:"compose" yaml:"compose"`
}

// Crop keeps the stencils touching the rectangle.
type Crop struct {
	X int `toml:"x" yaml:"x"`
	Y int `toml:"y" yaml:"y"`
	W int `toml:"w" yaml:"w"`
	H int `toml:"h" yaml:"h"`
}

// Transform is applied to the flattened canvas, scale first.
type Transform struct {
	Sampling  string  `toml:"sampling" yaml:"sampling"`
	ScaleX    float64 `toml:"scale_x" yaml:"scale_x"`
	ScaleY    float64 `toml:"scale_y" yaml:"scale_y"`
	RotateDeg float64 `toml:"rotate_deg" yaml:"rotate_deg"`
}

// plan is a validated recipe with names resolved.
type plan struct {
	channel   color.Channel
	output    string
	layers    []layerPlan
	crop      *sprite.Rect
	sampling  sprite.Sampling
	transform *sprite.Matrix
}

type layerPlan struct {
	path string
	x, y int
	mode blend.Mode
	op   blend.Op
}

var errNoLayers = errors.New("recipe has no layers")

// loadRecipe reads a recipe file, choosing the decoder by extension.
// Relative layer paths resolve against the recipe's directory.
func loadRecipe(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := parseRecipe(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for i := range r.Layers {
		if !filepath.IsAbs(r.Layers[i].Path) {
			r.Layers[i].Path = filepath.Join(dir, r.Layers[i].Path)
		}
	}
	if r.Output != "" && !filepath.IsAbs(r.Output) {
		r.Output = filepath.Join(dir, r.Output)
	}
	return r, nil
}

func parseRecipe(data []byte, ext string) (*Recipe, error) {
	var r Recipe
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown recipe format %q", ext)
	}
	return &r, nil
}

// resolve validates r and looks up every named mode, operator and layout.
func (r *Recipe) resolve() (*plan, error) {
	p := &plan{channel: color.ChannelRGBA, output: r.Output}
	if r.Channel != "" {
		ch, err := color.ParseChannel(r.Channel)
		if err != nil {
			return nil, err
		}
		p.channel = ch
	}
	if len(r.Layers) == 0 {
		return nil, errNoLayers
	}
	for i, l := range r.Layers {
		lp := layerPlan{path: l.Path, x: l.X, y: l.Y, mode: blend.ModeNormal, op: blend.OpSourceOver}
		var err error
		if l.Blend != "" {
			if lp.mode, err = blend.ParseMode(l.Blend); err != nil {
				return nil, fmt.Errorf("layer %d: %w", i, err)
			}
		}
		if l.Compose != "" {
			if lp.op, err = blend.ParseOp(l.Compose); err != nil {
				return nil, fmt.Errorf("layer %d: %w", i, err)
			}
		}
		if lp.path == "" {
			return nil, fmt.Errorf("layer %d: missing path", i)
		}
		p.layers = append(p.layers, lp)
	}
	if c := r.Crop; c != nil {
		if c.W <= 0 || c.H <= 0 {
			return nil, fmt.Errorf("crop %dx%d is empty", c.W, c.H)
		}
		p.crop = &sprite.Rect{X: c.X, Y: c.Y, W: c.W, H: c.H}
	}
	if t := r.Transform; t != nil {
		if t.Sampling != "" {
			if err := p.sampling.UnmarshalText([]byte(t.Sampling)); err != nil {
				return nil, err
			}
		}
		sx, sy := t.ScaleX, t.ScaleY
		if sx == 0 {
			sx = 1
		}
		if sy == 0 {
			sy = 1
		}
		m := sprite.Rotate(t.RotateDeg * math.Pi / 180).Multiply(sprite.Scale(sx, sy))
		if !m.IsIdentity() {
			p.transform = &m
		}
	}
	return p, nil
}
