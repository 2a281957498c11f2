package theme

import (
	"fmt"
	"image/color"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var paletteRefRe = regexp.MustCompile(`^\$\{(\w+)\}$`)

// Font configures the label font of canvas surfaces.
type Font struct {
	Name string  `yaml:"name"` // system font family name
	Path string  `yaml:"path"` // optional font file, takes precedence
	Size float64 `yaml:"size"` // label size in pixels
}

// Theme is the visual configuration of rendered rulers. Color values are hex
// strings (#rgb, #rrggbb or #rrggbbaa) or ${name} references into Palette.
type Theme struct {
	Palette    map[string]string `yaml:"palette"`
	Background string            `yaml:"background"`
	Tick       string            `yaml:"tick"`
	Label      string            `yaml:"label"`
	Guide      string            `yaml:"guide"`
	Font       Font              `yaml:"font"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Background: "#ffffff",
		Tick:       "#333333",
		Label:      "#333333",
		Guide:      "#1e66cc80",
		Font:       Font{Name: "sans-serif", Size: 10},
	}
}

// Load reads a YAML theme file and merges it over the defaults. Empty fields
// keep their default value.
func Load(path string) (Theme, error) {
	merged := Default()
	if path == "" {
		return merged, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return merged, fmt.Errorf("read theme %s: %w", path, err)
	}
	var t Theme
	if err := yaml.Unmarshal(data, &t); err != nil {
		return merged, fmt.Errorf("parse theme %s: %w", path, err)
	}
	merged = Merge(merged, t)
	return merged, nil
}

// Merge overlays non-empty fields of override on base; a pure function.
func Merge(base, override Theme) Theme {
	out := base
	if len(override.Palette) > 0 {
		out.Palette = override.Palette
	}
	if override.Background != "" {
		out.Background = override.Background
	}
	if override.Tick != "" {
		out.Tick = override.Tick
	}
	if override.Label != "" {
		out.Label = override.Label
	}
	if override.Guide != "" {
		out.Guide = override.Guide
	}
	if override.Font.Name != "" {
		out.Font.Name = override.Font.Name
	}
	if override.Font.Path != "" {
		out.Font.Path = override.Font.Path
	}
	if override.Font.Size > 0 {
		out.Font.Size = override.Font.Size
	}
	return out
}

// Color resolves one color field: ${name} references are looked up in the
// palette first, then the hex value is parsed.
func (t Theme) Color(value string) (color.Color, error) {
	if m := paletteRefRe.FindStringSubmatch(strings.TrimSpace(value)); m != nil {
		ref, ok := t.Palette[m[1]]
		if !ok {
			return nil, fmt.Errorf("palette has no color named %q", m[1])
		}
		value = ref
	}
	return ParseHex(value)
}

// BackgroundColor resolves the background color.
func (t Theme) BackgroundColor() (color.Color, error) { return t.Color(t.Background) }

// TickColor resolves the tick stroke color.
func (t Theme) TickColor() (color.Color, error) { return t.Color(t.Tick) }

// LabelColor resolves the label fill color.
func (t Theme) LabelColor() (color.Color, error) { return t.Color(t.Label) }

// GuideColor resolves the cursor guide color.
func (t Theme) GuideColor() (color.Color, error) { return t.Color(t.Guide) }

// ParseHex parses #rgb, #rrggbb and #rrggbbaa color strings.
func ParseHex(s string) (color.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]}) + "ff"
	case 6:
		hex += "ff"
	case 8:
	default:
		return nil, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
