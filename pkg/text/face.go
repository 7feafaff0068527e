package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DefaultFace returns the bundled bitmap face. Hosts without their own
// font stack use it for content measurement.
func DefaultFace() font.Face {
	return basicfont.Face7x13
}

// FaceMetrics derives line metrics from a font face. The line height is
// taken from the face's recommended line spacing as an absolute pixel
// value, and the font size from ascent plus descent.
func FaceMetrics(face font.Face) LineMetrics {
	m := face.Metrics()
	return LineMetrics{
		FontSize:   fixedToFloat(m.Ascent + m.Descent),
		LineHeight: Px(fixedToFloat(m.Height)),
	}
}

// MeasureString returns the advance width of s under the face, in pixels.
func MeasureString(face font.Face, s string) float64 {
	return fixedToFloat(font.MeasureString(face, s))
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
