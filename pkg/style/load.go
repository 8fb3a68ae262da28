package style

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/justyntemme/audioui/pkg/core"
)

// themeConfig is the on-disk theme schema. Palette entries map
// snake_case names to "#rrggbb" or "#rrggbbaa" strings; absent
// entries keep their stock values.
type themeConfig struct {
	Palette map[string]string `yaml:"palette"`
	Knob    knobConfig        `yaml:"knob"`
}

type knobConfig struct {
	AngleMinDeg *float32 `yaml:"angle_min_deg"`
	AngleMaxDeg *float32 `yaml:"angle_max_deg"`
}

// ParseTheme builds a theme from YAML theme data.
func ParseTheme(data []byte) (*Theme, error) {
	var cfg themeConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}

	palette := DefaultPalette()
	entries := paletteEntries(&palette)
	for name, value := range cfg.Palette {
		slot, ok := entries[name]
		if !ok {
			return nil, fmt.Errorf("parse theme: unknown palette entry %q", name)
		}
		color, err := parseColor(value)
		if err != nil {
			return nil, fmt.Errorf("parse theme: palette entry %q: %w", name, err)
		}
		*slot = color
	}

	theme := NewTheme(palette)

	if cfg.Knob.AngleMinDeg != nil || cfg.Knob.AngleMaxDeg != nil {
		minDeg := float32(30.0)
		maxDeg := float32(330.0)
		if cfg.Knob.AngleMinDeg != nil {
			minDeg = *cfg.Knob.AngleMinDeg
		}
		if cfg.Knob.AngleMaxDeg != nil {
			maxDeg = *cfg.Knob.AngleMaxDeg
		}
		theme.Knob = themedKnobSheet{
			DefaultKnobSheet: DefaultKnobSheet{Palette: palette.WithHoverShades()},
			angles:           core.KnobAngleRangeFromDeg(minDeg, maxDeg),
		}
	}

	return theme, nil
}

// LoadThemeFile reads and parses a YAML theme file.
func LoadThemeFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load theme: %w", err)
	}
	return ParseTheme(data)
}

// parseColor parses "#rrggbb" or "#rrggbbaa".
func parseColor(s string) (Color, error) {
	if strings.HasPrefix(s, "#") && len(s) == 9 {
		alpha, err := strconv.ParseUint(s[7:9], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		c, err := Hex(s[:7])
		if err != nil {
			return Color{}, err
		}
		return c.WithAlpha(float32(alpha) / 255.0), nil
	}
	return Hex(s)
}

func paletteEntries(p *Palette) map[string]*Color {
	return map[string]*Color{
		"border":           &p.Border,
		"light_back":       &p.LightBack,
		"light_back_hover": &p.LightBackHover,
		"light_back_drag":  &p.LightBackDrag,

		"knob_back_hover": &p.KnobBackHover,
		"ramp_back_hover": &p.RampBackHover,

		"slider_rail_top":    &p.SliderRailTop,
		"slider_rail_bottom": &p.SliderRailBottom,

		"tick_tier_1": &p.TickTier1,
		"tick_tier_2": &p.TickTier2,
		"tick_tier_3": &p.TickTier3,
		"text_mark":   &p.TextMark,

		"xy_pad_rail":        &p.XYPadRail,
		"xy_pad_center_line": &p.XYPadCenterLine,

		"db_meter_back":        &p.DBMeterBack,
		"db_meter_border":      &p.DBMeterBorder,
		"db_meter_low":         &p.DBMeterLow,
		"db_meter_med":         &p.DBMeterMed,
		"db_meter_high":        &p.DBMeterHigh,
		"db_meter_clip":        &p.DBMeterClip,
		"db_meter_clip_marker": &p.DBMeterClipMarker,
		"db_meter_gap":         &p.DBMeterGap,
		"db_meter_tick_tier_1": &p.DBMeterTickTier1,
		"db_meter_tick_tier_2": &p.DBMeterTickTier2,
		"db_meter_tick_tier_3": &p.DBMeterTickTier3,

		"phase_meter_center_line": &p.PhaseMeterCenterLine,
	}
}
