package config

import (
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/armchain/internal/arm"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Backend != "raylib" {
		t.Errorf("expected backend raylib, got %s", cfg.Backend)
	}
	if len(cfg.Specs()) != 6 {
		t.Errorf("expected 6 arms, got %d", len(cfg.Specs()))
	}
	if cfg.ArmMode() != arm.ModeChain {
		t.Errorf("expected chain mode, got %v", cfg.ArmMode())
	}
}

func TestDefaultConfig_FitsWindow(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		half := math.Min(float64(cfg.Window.Width), float64(cfg.Window.Height)) / 2
		if ext := arm.Extent(cfg.ArmMode(), cfg.Specs()); ext > half {
			t.Errorf("preset %s: extent %.1f exceeds half window %.1f", name, ext, half)
		}
	}
}

func TestLayout_MatchesDefaults(t *testing.T) {
	l := DefaultConfig().Layout()
	if l.Margin != 20 || l.Padding != 8 || l.LineHeight != 5 || l.FontSize != 18 {
		t.Errorf("unexpected layout %+v", l)
	}
	if l.Panel != (color.RGBA{128, 0, 0, 128}) {
		t.Errorf("panel colour %v", l.Panel)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#ff0000", color.RGBA{255, 0, 0, 255}, false},
		{"#80000080", color.RGBA{128, 0, 0, 128}, false},
		{" #00ff00 ", color.RGBA{0, 255, 0, 255}, false},
		{"red", color.RGBA{}, true},
		{"#12345", color.RGBA{}, true},
		{"#ff0000zz", color.RGBA{}, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) err = %v", tt.in, err)
			continue
		}
		if err != nil && !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) err %v is not ErrInvalidColor", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, ErrInvalidWindow},
		{"zero fps", func(c *Config) { c.Window.FPS = 0 }, ErrInvalidWindow},
		{"bad mode", func(c *Config) { c.Mode = "spiral" }, ErrInvalidMode},
		{"bad backend", func(c *Config) { c.Backend = "sdl" }, ErrInvalidBackend},
		{"nan speed", func(c *Config) { c.Arms.SpeedMultiply = math.NaN() }, ErrNonFinite},
		{"bad arm colour", func(c *Config) { c.Arms.Colors[2] = "blue" }, ErrInvalidColor},
		{"bad panel colour", func(c *Config) { c.Debug.Panel = "" }, ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestValidate_NoArms(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Arms.Colors = nil
	if err := cfg.Validate(); err != nil {
		t.Errorf("empty arm table should be valid: %v", err)
	}
	if len(cfg.Specs()) != 0 {
		t.Error("expected no specs")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "armchain.yaml")
	cfg := GetPreset("pair")
	cfg.Window.Title = "saved"

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Window.Title != "saved" || len(loaded.Arms.Colors) != 2 {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}

func TestLoad_PartialOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := []byte("mode: independent\narms:\n  colors: [\"#ffffff\"]\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.ArmMode() != arm.ModeIndependent {
		t.Errorf("mode = %v", cfg.ArmMode())
	}
	if len(cfg.Arms.Colors) != 1 {
		t.Errorf("expected 1 colour, got %d", len(cfg.Arms.Colors))
	}
	if cfg.Window.Width != DefaultWidth || cfg.Arms.SpeedExponent != 1.3 {
		t.Error("defaults not kept for unset fields")
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("backend: sdl\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); !errors.Is(err, ErrInvalidBackend) {
		t.Errorf("expected ErrInvalidBackend, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("independent")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.ArmMode() != arm.ModeIndependent {
		t.Errorf("expected independent mode, got %v", cfg.ArmMode())
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestGetPreset_DoesNotShareDefaults(t *testing.T) {
	a := GetPreset("rainbow")
	b := GetPreset("classic")
	if len(a.Arms.Colors) == len(b.Arms.Colors) {
		t.Error("rainbow preset leaked into classic")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) != 4 || presets[0] != "classic" {
		t.Errorf("unexpected presets %v", presets)
	}
}

func TestClone(t *testing.T) {
	a := DefaultConfig()
	b := a.Clone()
	b.Arms.Colors[0] = "#ffffff"
	if a.Arms.Colors[0] == "#ffffff" {
		t.Error("clone shares colour slice")
	}
}
