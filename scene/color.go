package scene

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// DefaultColor fills objects that carry no color of their own.
const DefaultColor = "#3b82f6"

var defaultRGBA = color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}

// ResolveColor picks an object's fill: its own Color, then a string "color"
// property, then DefaultColor. Every consumer goes through here.
func ResolveColor(o GameObject) string {
	if o.Color != "" {
		return o.Color
	}
	if c, ok := o.Properties.Text("color"); ok && c != "" {
		return c
	}
	return DefaultColor
}

// ParseHexColor parses #rrggbb, #rgb or an SVG color name. Anything else
// yields the default object color.
func ParseHexColor(s string) color.RGBA {
	c, err := parseColor(s)
	if err != nil {
		return defaultRGBA
	}
	return c
}

func parseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	var r, g, b uint32
	switch len(s) {
	case 7:
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
	case 4:
		if _, err := fmt.Sscanf(s[1:], "%1x%1x%1x", &r, &g, &b); err != nil {
			return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
		}
		r, g, b = r*0x11, g*0x11, b*0x11
	default:
		return color.RGBA{}, fmt.Errorf("parse color %q: bad length", s)
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, nil
}

// ValidColor reports whether s parses as a color.
func ValidColor(s string) bool {
	_, err := parseColor(s)
	return err == nil
}
