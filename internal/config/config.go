// Package config holds the display settings shared by the CLI and any
// viewer shell: layer mode, fit behavior, pick radius, and the color
// palettes. Colors are SVG 1.1 names resolved through the colornames
// table, so a settings file can say "royalblue" and get the same pixel
// value everywhere.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Config is the viewer display configuration.
type Config struct {
	LayerMode    string  `yaml:"layer_mode"`
	PickRadiusPx float64 `yaml:"pick_radius_px"`
	FitMarginPx  float64 `yaml:"fit_margin_px"`
	FitFactor    float64 `yaml:"fit_factor"`

	ShowSteps    bool `yaml:"show_steps"`
	ShowOutline  bool `yaml:"show_outline"`
	ShowEdges    bool `yaml:"show_edges"`
	ShowRepeats  bool `yaml:"show_repeats"`
	ShowBarcodes bool `yaml:"show_barcodes"`

	Background     string   `yaml:"background"`
	StepPalette    []string `yaml:"step_palette"`
	OutlinePalette []string `yaml:"outline_palette"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LayerMode:    "both",
		PickRadiusPx: 5,
		FitMarginPx:  100,
		FitFactor:    0.9,
		ShowSteps:    true,
		ShowOutline:  true,
		ShowEdges:    true,
		ShowRepeats:  true,
		ShowBarcodes: true,
		Background:   "darkgreen",
		StepPalette: []string{
			"red", "lime", "blue", "yellow", "magenta", "cyan",
		},
		OutlinePalette: []string{
			"cyan", "gold", "limegreen", "tomato",
			"royalblue", "hotpink", "blueviolet", "lightseagreen",
		},
	}
}

// Load reads a YAML settings file over the defaults: fields the file omits
// keep their built-in values. An empty or missing path returns the defaults
// without error; malformed YAML or an unknown color name is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// validate checks that every configured color name resolves.
func (c *Config) validate() error {
	names := []string{c.Background}
	names = append(names, c.StepPalette...)
	names = append(names, c.OutlinePalette...)
	for _, n := range names {
		if _, ok := colornames.Map[strings.ToLower(n)]; !ok {
			return fmt.Errorf("unknown color name %q", n)
		}
	}
	return nil
}

// Color resolves an SVG 1.1 color name, case-insensitively. Unknown names
// come back black.
func (c *Config) Color(name string) color.RGBA {
	if col, ok := colornames.Map[strings.ToLower(name)]; ok {
		return col
	}
	return color.RGBA{A: 0xff}
}

// StepColor returns the color of the i-th panelization step, cycling the
// palette.
func (c *Config) StepColor(i int) color.RGBA {
	if len(c.StepPalette) == 0 {
		return colornames.Gray
	}
	return c.Color(c.StepPalette[i%len(c.StepPalette)])
}

// OutlineColor returns the outline color for a step nesting depth, cycling
// the palette.
func (c *Config) OutlineColor(depth int) color.RGBA {
	if len(c.OutlinePalette) == 0 {
		return colornames.Gray
	}
	return c.Color(c.OutlinePalette[depth%len(c.OutlinePalette)])
}

// stepTypeColors maps an eMAP step type to its fixed display color.
var stepTypeColors = map[string]color.RGBA{
	"panel": colornames.Gold,
	"set":   colornames.Royalblue,
	"pcs":   colornames.Limegreen,
	"kb":    colornames.Tomato,
	"edit":  colornames.Blueviolet,
}

// StepTypeColor returns the display color for an eMAP step type. Unknown
// types draw gray.
func StepTypeColor(stepType string) color.RGBA {
	if col, ok := stepTypeColors[strings.ToLower(stepType)]; ok {
		return col
	}
	return colornames.Gray
}
