package theme

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

var hexColorRegex = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// Color is a validated theme color literal (#RRGGBB or #RRGGBBAA).
type Color struct {
	raw string
	c   csscolorparser.Color
}

// IsHexColor reports whether s is a #RRGGBB or #RRGGBBAA literal.
func IsHexColor(s string) bool {
	return hexColorRegex.MatchString(s)
}

// ParseColor validates and decodes a theme color literal.
// Short forms (#RGB) and CSS names are rejected even though the CSS parser would accept them.
func ParseColor(s string) (Color, error) {
	if !IsHexColor(s) {
		return Color{}, fmt.Errorf("%w: %q (want #RRGGBB or #RRGGBBAA)", ErrInvalidColor, s)
	}
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, s, err)
	}
	return Color{raw: s, c: c}, nil
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// String returns the literal as authored.
func (c Color) String() string { return c.raw }

// Hex returns the color as upper-case #RRGGBB, dropping alpha.
func (c Color) Hex() string {
	return strings.ToUpper(c.raw[:7])
}

// HasAlpha reports whether the literal carries an alpha channel.
func (c Color) HasAlpha() bool { return len(c.raw) == 9 }

// Alpha returns the alpha channel in [0, 1].
func (c Color) Alpha() float64 { return c.c.A }

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.c.R, G: c.c.G, B: c.c.B}
}

// Luminance returns the WCAG relative luminance of the color, ignoring alpha.
func (c Color) Luminance() float64 {
	r, g, b := c.colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// IsDark reports whether the color reads as a dark surface.
func (c Color) IsDark() bool {
	_, _, l := c.colorful().Hsl()
	return l < 0.5
}

// BlendOver composites c over an opaque background and returns the opaque result.
func (c Color) BlendOver(bg Color) Color {
	if !c.HasAlpha() {
		return c
	}
	out := bg.colorful().BlendRgb(c.colorful(), c.Alpha()).Clamped()
	return MustColor(strings.ToUpper(out.Hex()))
}

// ContrastRatio returns the WCAG contrast ratio between two colors, in [1, 21].
func ContrastRatio(a, b Color) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
