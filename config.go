package scrim

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config carries host-tunable settings for the app loop and interaction
// router. Zero fields fall back to the defaults, so a partial TOML file is
// fine.
type Config struct {
	// TickRate is frames per second for fixed-rate mode; 0 means
	// event-driven (block until input).
	TickRate int `toml:"tick_rate"`

	// AutoHideIdleTicks is how many ticks an idle element stays visible
	// before auto-hide kicks in.
	AutoHideIdleTicks uint64 `toml:"auto_hide_idle_ticks"`

	// MouseEnabled turns on mouse reporting in backends that support it.
	MouseEnabled bool `toml:"mouse_enabled"`

	// Theme names a built-in theme: "dark", "light" or "mono".
	Theme string `toml:"theme"`

	// Colors optionally overrides individual theme slots, keyed by slot
	// name ("base", "muted", "accent", "error", "border").
	Colors map[string]string `toml:"colors"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() Config {
	return Config{
		TickRate:          0,
		AutoHideIdleTicks: 20,
		MouseEnabled:      true,
		Theme:             "dark",
	}
}

// LoadConfig reads a TOML config file, layering it over the defaults. A
// missing file is not an error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("scrim: config %s: %w", path, err)
	}
	if cfg.TickRate < 0 {
		return cfg, fmt.Errorf("scrim: config %s: tick_rate must be >= 0", path)
	}
	return cfg, nil
}

// ResolveTheme returns the configured theme with any color overrides
// applied.
func (c Config) ResolveTheme() (Theme, error) {
	theme, ok := ThemeByName(c.Theme)
	if !ok {
		return theme, fmt.Errorf("scrim: unknown theme %q", c.Theme)
	}
	for slot, value := range c.Colors {
		color, err := ParseColor(value)
		if err != nil {
			return theme, err
		}
		switch slot {
		case "base":
			theme.Base.FG = color
		case "muted":
			theme.Muted.FG = color
		case "accent":
			theme.Accent.FG = color
		case "error":
			theme.Error.FG = color
		case "border":
			theme.Border.FG = color
		default:
			return theme, fmt.Errorf("scrim: unknown theme slot %q", slot)
		}
	}
	return theme, nil
}
