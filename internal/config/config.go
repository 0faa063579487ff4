package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/armchain/internal/arm"
	"github.com/san-kum/armchain/internal/input"
	"github.com/san-kum/armchain/internal/render"
)

const (
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultFPS     = 60
	DefaultTitle   = "armchain"
	DefaultBackend = "raylib"
	DefaultMode    = "chain"
)

var (
	ErrInvalidWindow  = errors.New("config: window size and fps must be positive")
	ErrInvalidColor   = errors.New("config: invalid colour")
	ErrNonFinite      = errors.New("config: value is not finite")
	ErrInvalidMode    = errors.New("config: unknown arm mode")
	ErrInvalidBackend = errors.New("config: unknown backend")
)

// Backends lists the accepted values of Config.Backend.
var Backends = []string{"raylib", "ebiten", "tui"}

type Config struct {
	Window      WindowConfig `yaml:"window"`
	Backend     string       `yaml:"backend"`
	Mode        string       `yaml:"mode"`
	Background  string       `yaml:"background"`
	ManualSpeed int64        `yaml:"manual_speed"`
	Arms        ArmsConfig   `yaml:"arms"`
	Debug       DebugConfig  `yaml:"debug"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

type ArmsConfig struct {
	Colors         []string `yaml:"colors"`
	WidthMultiply  float64  `yaml:"width_multiply"`
	WidthMinimum   float64  `yaml:"width_minimum"`
	LengthMultiply float64  `yaml:"length_multiply"`
	LengthMinimum  float64  `yaml:"length_minimum"`
	SpeedExponent  float64  `yaml:"speed_exponent"`
	SpeedMultiply  float64  `yaml:"speed_multiply"`
}

type DebugConfig struct {
	Margin     float64 `yaml:"margin"`
	Padding    float64 `yaml:"padding"`
	LineHeight float64 `yaml:"line_height"`
	FontSize   float64 `yaml:"font_size"`
	Panel      string  `yaml:"panel"`
	Text       string  `yaml:"text"`
}

func DefaultConfig() *Config {
	p := arm.DefaultParams()
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			Title:  DefaultTitle,
			FPS:    DefaultFPS,
		},
		Backend:     DefaultBackend,
		Mode:        DefaultMode,
		Background:  "#000000",
		ManualSpeed: input.DefaultManualSpeed,
		Arms: ArmsConfig{
			Colors:         []string{"#ff0000", "#ff8000", "#ffff00", "#00ff00", "#0080ff", "#8000ff"},
			WidthMultiply:  p.WidthMultiply,
			WidthMinimum:   p.WidthMinimum,
			LengthMultiply: p.LengthMultiply,
			LengthMinimum:  p.LengthMinimum,
			SpeedExponent:  p.SpeedExponent,
			SpeedMultiply:  p.SpeedMultiply,
		},
		Debug: DebugConfig{
			Margin:     20,
			Padding:    8,
			LineHeight: 5,
			FontSize:   18,
			Panel:      "#80000080",
			Text:       "#ffffff",
		},
	}
}

// Load reads a yaml file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 || c.Window.FPS <= 0 {
		return ErrInvalidWindow
	}
	if _, err := arm.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	if !validBackend(c.Backend) {
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Backend)
	}

	nums := map[string]float64{
		"width_multiply":  c.Arms.WidthMultiply,
		"width_minimum":   c.Arms.WidthMinimum,
		"length_multiply": c.Arms.LengthMultiply,
		"length_minimum":  c.Arms.LengthMinimum,
		"speed_exponent":  c.Arms.SpeedExponent,
		"speed_multiply":  c.Arms.SpeedMultiply,
		"margin":          c.Debug.Margin,
		"padding":         c.Debug.Padding,
		"line_height":     c.Debug.LineHeight,
		"font_size":       c.Debug.FontSize,
	}
	for name, v := range nums {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s", ErrNonFinite, name)
		}
	}

	colors := append([]string{c.Background, c.Debug.Panel, c.Debug.Text}, c.Arms.Colors...)
	for _, s := range colors {
		if _, err := ParseColor(s); err != nil {
			return err
		}
	}
	return nil
}

func validBackend(name string) bool {
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}

// ParseColor accepts #rrggbb and #rrggbbaa.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 && strings.HasPrefix(s, "#") {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// mustColor is used after Validate has accepted the config.
func mustColor(s string) color.RGBA {
	c, err := ParseColor(s)
	if err != nil {
		return color.RGBA{A: 255}
	}
	return c
}

func (c *Config) ArmParams() arm.Params {
	return arm.Params{
		WidthMultiply:  c.Arms.WidthMultiply,
		WidthMinimum:   c.Arms.WidthMinimum,
		LengthMultiply: c.Arms.LengthMultiply,
		LengthMinimum:  c.Arms.LengthMinimum,
		SpeedExponent:  c.Arms.SpeedExponent,
		SpeedMultiply:  c.Arms.SpeedMultiply,
	}
}

func (c *Config) Specs() []arm.Spec {
	colors := make([]color.RGBA, len(c.Arms.Colors))
	for i, s := range c.Arms.Colors {
		colors[i] = mustColor(s)
	}
	return arm.BuildSpecs(colors, c.ArmParams())
}

func (c *Config) ArmMode() arm.Mode {
	m, _ := arm.ParseMode(c.Mode)
	return m
}

func (c *Config) Layout() render.Layout {
	return render.Layout{
		Margin:     c.Debug.Margin,
		Padding:    c.Debug.Padding,
		LineHeight: c.Debug.LineHeight,
		FontSize:   c.Debug.FontSize,
		Panel:      mustColor(c.Debug.Panel),
		Text:       mustColor(c.Debug.Text),
	}
}

func (c *Config) BackgroundColor() color.RGBA {
	return mustColor(c.Background)
}

func (c *Config) CanvasSize() render.Size {
	return render.Size{W: float64(c.Window.Width), H: float64(c.Window.Height)}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	cp := *c
	cp.Arms.Colors = append([]string(nil), c.Arms.Colors...)
	return &cp
}
