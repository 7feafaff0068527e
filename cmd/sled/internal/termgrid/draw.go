package termgrid

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/graphics"
)

const (
	trackRune = '░'
	thumbRune = '█'
)

// tcellColor converts a kernel color to a terminal color.
func tcellColor(c graphics.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}

func (a *App) baseStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(a.th.Foreground)).
		Background(tcellColor(a.th.Background))
}

func (a *App) trackStyle() tcell.Style {
	return a.baseStyle().Foreground(tcellColor(a.th.ScrollbarThemeOf().Track))
}

func (a *App) thumbStyle() tcell.Style {
	return a.baseStyle().Foreground(tcellColor(a.th.ScrollbarThemeOf().Thumb))
}

func (a *App) statusStyle() tcell.Style {
	return a.baseStyle().Reverse(true)
}

// measure returns the display width of s in cells.
func measure(s string) float64 {
	return float64(runewidth.StringWidth(s))
}

// draw renders content, scrollbar, and status line from kernel state.
func (a *App) draw() {
	a.screen.Clear()

	regionSnap, ok := a.sched.Snapshots().Get(a.region)
	if !ok {
		return
	}
	s, ok := a.manager.Scrollables().Get(a.region)
	if !ok {
		return
	}

	a.drawContent(regionSnap.LogicalRect(), s.Offset)
	a.drawScrollbar()
	a.drawStatus(s.Offset)
}

// drawContent draws the visible window of the content rows. Terminal
// cells cannot show fractional offsets, so the window starts at the
// floor of the offset.
func (a *App) drawContent(rect geometry.Rect, offset geometry.Offset) {
	style := a.baseStyle()
	width := int(rect.Width())
	height := int(rect.Height())
	firstRow := int(offset.Y)
	firstCol := int(offset.X)

	for row := 0; row < height; row++ {
		idx := firstRow + row
		if idx < 0 || idx >= len(a.lines) {
			continue
		}
		drawClipped(a.screen, int(rect.Left), int(rect.Top)+row, a.lines[idx], firstCol, width, style)
	}
}

// drawScrollbar paints the track, then the thumb from its geometry
// snapshot. A thumb whose fraction reaches 1 means the content fits,
// so there is nothing to grab and it stays hidden.
func (a *App) drawScrollbar() {
	barSnap, ok := a.sched.Snapshots().Get(a.bar)
	if !ok {
		return
	}
	rect := barSnap.LogicalRect()
	track := a.trackStyle()
	for y := int(rect.Top); y < int(rect.Bottom); y++ {
		for x := int(rect.Left); x < int(rect.Right); x++ {
			a.screen.SetContent(x, y, trackRune, nil, track)
		}
	}

	thumbEnt, ok := a.manager.ThumbOf(a.bar)
	if !ok {
		return
	}
	th, ok := a.manager.Thumbs().Get(thumbEnt)
	if !ok || th.LengthFraction >= 1 {
		return
	}
	thumbSnap, ok := a.sched.Snapshots().Get(thumbEnt)
	if !ok {
		return
	}

	trect := thumbSnap.LogicalRect()
	x0 := int(math.Round(trect.Left))
	x1 := int(math.Round(trect.Right))
	y0 := int(math.Round(trect.Top))
	y1 := int(math.Round(trect.Bottom))
	// A sliver of a thumb still needs one visible cell.
	if a.axis == geometry.Horizontal {
		if x1 == x0 {
			x1 = x0 + 1
		}
	} else {
		if y1 == y0 {
			y1 = y0 + 1
		}
	}

	style := a.thumbStyle()
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			a.screen.SetContent(x, y, thumbRune, nil, style)
		}
	}
}

// drawStatus renders the bottom status line in reverse video.
func (a *App) drawStatus(offset geometry.Offset) {
	width, height := a.screen.Size()
	y := height - 1
	if y < 0 {
		return
	}

	maxOffset := math.Max(0, a.contentExtent()-a.viewportExtent())
	var fraction float64
	if thumbEnt, ok := a.manager.ThumbOf(a.bar); ok {
		if th, ok := a.manager.Thumbs().Get(thumbEnt); ok {
			fraction = th.LengthFraction
		}
	}

	line := fmt.Sprintf(" %s  offset %.0f/%.0f  thumb %.0f%%  wheel scrolls, drag thumb, click track, q quits",
		a.title, a.axis.Component(offset), maxOffset, fraction*100)
	style := a.statusStyle()
	drawClipped(a.screen, 0, y, line, 0, width, style)

	used := runewidth.StringWidth(line)
	if used > width {
		used = width
	}
	for x := used; x < width; x++ {
		a.screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawClipped draws s with its first fromCol display columns cut off,
// clipped to maxW cells at (x, y). A wide rune straddling the cut is
// dropped rather than split.
func drawClipped(screen tcell.Screen, x, y int, s string, fromCol, maxW int, style tcell.Style) {
	col := 0
	drawn := 0
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if col+w <= fromCol {
			col += w
			continue
		}
		if col < fromCol {
			col += w
			continue
		}
		if drawn+w > maxW {
			break
		}
		screen.SetContent(x+drawn, y, r, nil, style)
		drawn += w
		col += w
	}
}
