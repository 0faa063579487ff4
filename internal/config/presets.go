package config

import "sort"

// Presets are named variations applied over DefaultConfig.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"independent": func(c *Config) {
		c.Mode = "independent"
		c.Arms.LengthMultiply = 30
		c.Arms.LengthMinimum = 40
	},
	"rainbow": func(c *Config) {
		c.Arms.Colors = []string{
			"#ff0000", "#ff4000", "#ff8000", "#ffbf00", "#ffff00", "#80ff00",
			"#00ff80", "#00ffff", "#0080ff", "#0000ff", "#8000ff", "#ff00ff",
		}
		c.Arms.WidthMultiply = 1.5
		c.Arms.WidthMinimum = 2
		c.Arms.LengthMultiply = 2
		c.Arms.LengthMinimum = 10
		c.Arms.SpeedExponent = 1.1
	},
	"pair": func(c *Config) {
		c.Arms.Colors = []string{"#ff0000", "#0000ff"}
		c.Arms.WidthMultiply = 2
		c.Arms.WidthMinimum = 2
		c.Arms.LengthMultiply = 60
		c.Arms.LengthMinimum = 40
	},
}

// GetPreset returns the default config with the named preset applied, or
// nil if there is no such preset.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
