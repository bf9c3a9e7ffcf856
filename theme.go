package spoke

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Theme is the YAML document a host ships to restyle its menus. Every field
// is optional; omitted fields keep the stock defaults. Sizes are pixels,
// times are seconds.
//
//	background: ui/menu_item.png
//	normal_size: 50
//	focus_size: 64
//	move_time: 0.3
//	focus_time: 0.25
//	action_visible: true
type Theme struct {
	Background    string   `yaml:"background"`
	NormalSize    *float64 `yaml:"normal_size"`
	FocusSize     *float64 `yaml:"focus_size"`
	MoveTime      *float64 `yaml:"move_time"`
	FocusTime     *float64 `yaml:"focus_time"`
	ActionVisible *bool    `yaml:"action_visible"`
}

// LoadTheme parses YAML theme data into a Config, starting from
// DefaultConfig. The background path ends up as the default item texture, so
// a theme lookup never happens at open time.
func LoadTheme(data []byte) (Config, error) {
	var theme Theme
	if err := yaml.Unmarshal(data, &theme); err != nil {
		return Config{}, fmt.Errorf("spoke: failed to parse theme: %w", err)
	}

	cfg := DefaultConfig()
	cfg.BackgroundPath = theme.Background
	if theme.NormalSize != nil {
		cfg.NormalSize = *theme.NormalSize
	}
	if theme.FocusSize != nil {
		cfg.FocusSize = *theme.FocusSize
	}
	if theme.MoveTime != nil {
		cfg.MoveTime = *theme.MoveTime
	}
	if theme.FocusTime != nil {
		cfg.FocusTime = *theme.FocusTime
	}
	if theme.ActionVisible != nil {
		cfg.ActionVisible = *theme.ActionVisible
	}

	if cfg.NormalSize <= 0 || cfg.FocusSize <= 0 {
		return Config{}, fmt.Errorf("spoke: theme sizes must be positive (normal %v, focus %v)", cfg.NormalSize, cfg.FocusSize)
	}
	if cfg.MoveTime < 0 || cfg.FocusTime < 0 {
		return Config{}, fmt.Errorf("spoke: theme durations must not be negative (move %v, focus %v)", cfg.MoveTime, cfg.FocusTime)
	}

	return cfg, nil
}
