// Package graphics holds the color type shared by the kernel's
// configuration components, themes, and demo hosts.
package graphics

import "fmt"

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red component.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green component.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue component.
func (c Color) B() uint8 { return uint8(c) }

// A returns the alpha component (0 transparent, 255 opaque).
func (c Color) A() uint8 { return uint8(c >> 24) }

// WithAlpha returns a copy of the color with the given alpha byte.
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// Hex formats the color as "#RRGGBB" for opaque colors and
// "#AARRGGBB" otherwise.
func (c Color) Hex() string {
	if c.A() == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R(), c.G(), c.B())
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A(), c.R(), c.G(), c.B())
}

// String returns the hex form.
func (c Color) String() string { return c.Hex() }

// ParseColor reads "#RGB", "#RRGGBB", or "#AARRGGBB".
func ParseColor(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return 0, fmt.Errorf("color %q: expected leading '#'", s)
	}
	digits := s[1:]
	var value uint32
	for _, r := range digits {
		d, ok := hexDigit(r)
		if !ok {
			return 0, fmt.Errorf("color %q: invalid hex digit %q", s, r)
		}
		value = value<<4 | d
	}
	switch len(digits) {
	case 3:
		r := (value >> 8) & 0xF
		g := (value >> 4) & 0xF
		b := value & 0xF
		return RGB(uint8(r<<4|r), uint8(g<<4|g), uint8(b<<4|b)), nil
	case 6:
		return Color(0xFF000000 | value), nil
	case 8:
		return Color(value), nil
	default:
		return 0, fmt.Errorf("color %q: expected 3, 6, or 8 hex digits", s)
	}
}

func hexDigit(r rune) (uint32, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint32(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint32(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint32(r-'A') + 10, true
	}
	return 0, false
}

// Common colors.
const (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorGray        = Color(0xFF808080)
	ColorDarkGray    = Color(0xFF404040)
)
