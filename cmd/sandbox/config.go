package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hubastard/thicket/engine/colors"
)

// RGBA8 is a 0..255 color as it appears in the config file.
type RGBA8 [4]uint8

func (c RGBA8) Color() colors.Color {
	return colors.FromRGBA8(c[0], c[1], c[2], c[3])
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

type SheetConfig struct {
	Path string `yaml:"path"`
	Cols int    `yaml:"cols"`
	Rows int    `yaml:"rows"`
}

type AnimationConfig struct {
	Path          string `yaml:"path"`
	Cols          int    `yaml:"cols"`
	Rows          int    `yaml:"rows"`
	TicksPerFrame int    `yaml:"ticks_per_frame"`
}

type GridConfig struct {
	X          float32           `yaml:"x,omitempty"`
	Y          float32           `yaml:"y,omitempty"`
	CellW      int               `yaml:"cell_w"`
	CellH      int               `yaml:"cell_h"`
	Cols       int               `yaml:"cols"`
	Rows       int               `yaml:"rows"`
	LineColor  RGBA8             `yaml:"line_color"`
	FillColor  RGBA8             `yaml:"fill_color"`
	Sheet      *SheetConfig      `yaml:"sheet,omitempty"`
	Textures   []string          `yaml:"textures,omitempty"`
	Animations []AnimationConfig `yaml:"animations,omitempty"`
}

type Config struct {
	Window     WindowConfig `yaml:"window"`
	ClearColor RGBA8        `yaml:"clear_color"`
	Grid       GridConfig   `yaml:"grid"`
	Font       string       `yaml:"font,omitempty"`
	CameraOn   bool         `yaml:"camera_on"`
}

// DefaultConfig is what the sandbox runs with when no config file exists.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Thicket Sandbox",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		ClearColor: RGBA8{45, 45, 48, 255},
		Grid: GridConfig{
			X: 64, Y: 64,
			CellW: 48, CellH: 48,
			Cols: 12, Rows: 8,
			LineColor: RGBA8{200, 200, 200, 255},
			FillColor: RGBA8{70, 70, 80, 255},
		},
		Font: "RobotoMono.ttf",
	}
}

// LoadConfig reads a YAML config; a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width < 1 || c.Window.Height < 1 {
		return fmt.Errorf("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	g := &c.Grid
	if g.CellW < 1 || g.CellH < 1 {
		return fmt.Errorf("grid cell size %dx%d", g.CellW, g.CellH)
	}
	if g.Cols < 1 || g.Rows < 1 {
		return fmt.Errorf("grid layout %dx%d", g.Cols, g.Rows)
	}
	if s := g.Sheet; s != nil {
		if s.Path == "" {
			return fmt.Errorf("grid sheet without a path")
		}
		if s.Cols < 1 || s.Rows < 1 {
			return fmt.Errorf("grid sheet layout %dx%d", s.Cols, s.Rows)
		}
	}
	for i, a := range g.Animations {
		if a.Path == "" {
			return fmt.Errorf("animation %d without a path", i)
		}
		if a.Cols < 1 || a.Rows < 1 {
			return fmt.Errorf("animation %d layout %dx%d", i, a.Cols, a.Rows)
		}
	}
	return nil
}
