// Package theme provides the visual defaults sled hosts draw with and
// a YAML loader for overriding them per project.
package theme

import "github.com/go-sled/sled/pkg/graphics"

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	// BrightnessDark is the default for terminal hosts.
	BrightnessDark Brightness = iota

	// BrightnessLight inverts the palette for light backgrounds.
	BrightnessLight
)

// String returns "dark" or "light".
func (b Brightness) String() string {
	if b == BrightnessLight {
		return "light"
	}
	return "dark"
}

// ScrollbarTheme styles one scrollbar pair.
type ScrollbarTheme struct {
	// Track fills the scrollbar background, thumb excluded.
	Track graphics.Color

	// Thumb fills the draggable indicator.
	Thumb graphics.Color

	// Border draws the track's border edges.
	Border graphics.Color
}

// ThemeData contains the visual configuration for a sled host.
type ThemeData struct {
	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// Background fills the scrollable region behind its content.
	Background graphics.Color

	// Foreground draws the region's content.
	Foreground graphics.Color

	// Border draws region borders.
	Border graphics.Color

	// Scrollbar is optional; derived from the palette when nil.
	Scrollbar *ScrollbarTheme
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{
		Brightness: BrightnessDark,
		Background: graphics.ColorBlack,
		Foreground: graphics.ColorWhite,
		Border:     graphics.ColorGray,
	}
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{
		Brightness: BrightnessLight,
		Background: graphics.ColorWhite,
		Foreground: graphics.ColorBlack,
		Border:     graphics.ColorDarkGray,
	}
}

// ScrollbarThemeOf returns the scrollbar theme, deriving it from the
// palette when none is set.
func (t *ThemeData) ScrollbarThemeOf() ScrollbarTheme {
	if t.Scrollbar != nil {
		return *t.Scrollbar
	}
	return ScrollbarTheme{
		Track:  graphics.ColorDarkGray,
		Thumb:  t.Foreground,
		Border: t.Border,
	}
}

// CopyWith returns a new ThemeData with the specified fields
// overridden. Nil arguments keep the receiver's values.
func (t *ThemeData) CopyWith(background, foreground *graphics.Color, scrollbar *ScrollbarTheme) *ThemeData {
	result := &ThemeData{
		Brightness: t.Brightness,
		Background: t.Background,
		Foreground: t.Foreground,
		Border:     t.Border,
		Scrollbar:  t.Scrollbar,
	}
	if background != nil {
		result.Background = *background
	}
	if foreground != nil {
		result.Foreground = *foreground
	}
	if scrollbar != nil {
		result.Scrollbar = scrollbar
	}
	return result
}
