package choreo

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// Color accepts "#RRGGBB", "#RRGGBBAA" or an SVG color name in YAML.
type Color struct {
	color.NRGBA
}

func ParseColor(s string) (Color, error) {
	trimmed := strings.TrimSpace(s)
	if named, ok := colornames.Map[strings.ToLower(trimmed)]; ok {
		return Color{NRGBA: color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}}, nil
	}

	hex := strings.TrimPrefix(trimmed, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color format: %s", s)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	g, err := parse(2)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %s: %w", s, err)
	}
	b, err := parse(4)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %s: %w", s, err)
	}

	a := uint8(255)
	if len(hex) == 8 {
		a, err = parse(6)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color %s: %w", s, err)
		}
	}

	return Color{NRGBA: color.NRGBA{R: r, G: g, B: b, A: a}}, nil
}

// Hex renders the color as "#RRGGBB", adding the alpha byte when it is
// not fully opaque. This is the value handed to targets.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}
