// Package text resolves line heights for wheel scrolling and measures
// strings against font faces.
package text

import "fmt"

const (
	// DefaultFontSize is used when a region configures no font size.
	DefaultFontSize = 20.0

	// DefaultLineScale is the default line height as a multiple of the
	// font size.
	DefaultLineScale = 1.2
)

// LineHeightMode selects how a LineHeight value is interpreted.
type LineHeightMode int

const (
	// LineHeightRelative interprets the value as a multiple of the font
	// size. This is the default mode.
	LineHeightRelative LineHeightMode = iota

	// LineHeightPx interprets the value as an absolute pixel height.
	LineHeightPx
)

// LineHeight is the height of one line of text, either absolute or
// relative to the font size.
type LineHeight struct {
	Mode  LineHeightMode
	Value float64
}

// Px returns an absolute line height in pixels.
func Px(px float64) LineHeight {
	return LineHeight{Mode: LineHeightPx, Value: px}
}

// RelativeToFont returns a line height expressed as a multiple of the
// font size.
func RelativeToFont(scale float64) LineHeight {
	return LineHeight{Mode: LineHeightRelative, Value: scale}
}

// String returns a human-readable representation of the line height.
func (lh LineHeight) String() string {
	if lh.Mode == LineHeightPx {
		return fmt.Sprintf("%gpx", lh.Value)
	}
	return fmt.Sprintf("%gx font", lh.Value)
}

// LineMetrics converts "line" wheel units into pixels. Zero values fall
// back to the package defaults, so LineMetrics{} is usable as-is.
type LineMetrics struct {
	// FontSize is the font size in pixels.
	FontSize float64

	// LineHeight is the height of one line.
	LineHeight LineHeight
}

// DefaultLineMetrics returns the metrics installed on a region that has
// none configured when a vertical scrollbar attaches to it.
func DefaultLineMetrics() LineMetrics {
	return LineMetrics{
		FontSize:   DefaultFontSize,
		LineHeight: RelativeToFont(DefaultLineScale),
	}
}

// PixelsPerLine resolves the metrics to the pixel height of one line.
func (m LineMetrics) PixelsPerLine() float64 {
	if m.LineHeight.Mode == LineHeightPx {
		return m.LineHeight.Value
	}
	scale := m.LineHeight.Value
	if scale <= 0 {
		scale = DefaultLineScale
	}
	size := m.FontSize
	if size <= 0 {
		size = DefaultFontSize
	}
	return scale * size
}
