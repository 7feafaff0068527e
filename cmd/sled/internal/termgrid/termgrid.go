// Package termgrid hosts the scroll kernel in a terminal. Content is a
// column of generated text rows, the scrollbar is a one-cell-wide strip
// at the right or bottom edge, and one logical pixel is one terminal
// cell, so kernel geometry maps straight onto the character grid.
package termgrid

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-sled/sled/pkg/frame"
	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/input"
	"github.com/go-sled/sled/pkg/scene"
	"github.com/go-sled/sled/pkg/scroll"
	"github.com/go-sled/sled/pkg/text"
	"github.com/go-sled/sled/pkg/theme"
)

// wheelRows is how many rows one wheel tick scrolls, wired in as the
// region's WheelScale.
const wheelRows = 3

// frameInterval paces the render loop at roughly sixty frames per second.
const frameInterval = 16 * time.Millisecond

// Options configures the demo host.
type Options struct {
	// Rows is the number of content rows to generate.
	Rows int

	// Axis selects a vertical scrollbar at the right edge or a
	// horizontal one above the status line.
	Axis geometry.Axis

	// Title is shown in the status line.
	Title string

	// Theme supplies the palette; nil means the built-in dark theme.
	Theme *theme.ThemeData

	// Screen overrides the terminal screen, used by tests to inject a
	// simulation screen. Nil opens the real terminal.
	Screen tcell.Screen
}

// App owns the terminal screen and the kernel stack driving it.
type App struct {
	screen tcell.Screen
	th     *theme.ThemeData
	title  string
	axis   geometry.Axis

	world   *scene.World
	sched   *frame.Scheduler
	router  *input.Router
	manager *scroll.Manager

	region scene.Entity
	bar    scene.Entity

	lines     []string
	lineWidth float64

	relayout bool

	mouseDown  bool
	pointerSeq int
	lastMouse  geometry.Offset

	quit bool
}

// NewApp initializes the screen and spawns the region/scrollbar pair.
// The caller owns screen shutdown; Run does it for the normal path.
func NewApp(opts Options) (*App, error) {
	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("open terminal: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	th := opts.Theme
	if th == nil {
		th = theme.DefaultDarkTheme()
	}
	rows := opts.Rows
	if rows <= 0 {
		rows = 1
	}
	title := opts.Title
	if title == "" {
		title = "sled"
	}

	app := &App{
		screen:   screen,
		th:       th,
		title:    title,
		axis:     opts.Axis,
		relayout: true,
	}
	app.lines, app.lineWidth = contentLines(rows, opts.Axis)

	app.world = scene.NewWorld()
	app.sched = frame.NewScheduler(app.world)
	app.router = input.NewRouter(app.world, app.sched.Snapshots())
	app.manager = scroll.NewManager(app.sched, app.router)
	app.sched.SetLayoutIntake(app.intake)

	app.region = app.world.Spawn()
	app.bar = app.world.Spawn()

	axes := geometry.OverflowAxes{}
	if opts.Axis == geometry.Horizontal {
		axes.X = geometry.OverflowScroll
	} else {
		axes.Y = geometry.OverflowScroll
	}
	app.manager.Overflow().Set(app.region, axes)

	// One terminal cell is one pixel, so a wheel "line" is one row.
	metrics := text.LineMetrics{FontSize: 1, LineHeight: text.Px(1)}
	app.manager.Scrollables().Set(app.region, scroll.Scrollable{
		WheelScale: wheelRows,
		Metrics:    &metrics,
	})
	app.manager.Attach(app.bar, scroll.Scrollbar{
		Target:     app.region,
		ThumbColor: th.ScrollbarThemeOf().Thumb,
	})

	screen.SetStyle(app.baseStyle())
	return app, nil
}

// Run opens the host and blocks until the user quits.
func Run(opts Options) error {
	app, err := NewApp(opts)
	if err != nil {
		return err
	}
	defer app.screen.Fini()
	return app.loop()
}

// loop polls terminal events on one goroutine and runs frames on the
// caller's. Events apply between frames, which is the contract the
// kernel's handlers assume.
func (a *App) loop() error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			a.handleEvent(ev)
			if a.quit {
				close(done)
				return nil
			}
		case <-ticker.C:
			a.step()
		}
	}
}

// step runs one frame and redraws.
func (a *App) step() {
	a.sched.RunFrame()
	a.draw()
	a.screen.Show()
}

// intake is the scheduler's layout callback. It rewrites the region and
// bar snapshots only when the screen geometry changed; the manager owns
// the thumb's snapshot.
func (a *App) intake(w *scene.World, snapshots *scene.Table[scene.GeometrySnapshot]) {
	if !a.relayout {
		return
	}
	a.relayout = false

	width, height := a.screen.Size()
	content := geometry.Size{Width: a.lineWidth, Height: float64(len(a.lines))}

	var regionSnap, barSnap scene.GeometrySnapshot
	if a.axis == geometry.Horizontal {
		// Bar is the row above the status line, region fills the rest.
		regionSnap = snapshot(0, 0, float64(width), float64(height-2), content)
		barSnap = strip(0, float64(height-2), float64(width), 1)
	} else {
		// Bar is the rightmost column, region fills the rest.
		regionSnap = snapshot(0, 0, float64(width-1), float64(height-1), content)
		barSnap = strip(float64(width-1), 0, 1, float64(height-1))
	}
	snapshots.Set(a.region, regionSnap)
	snapshots.Set(a.bar, barSnap)
}

func snapshot(x, y, w, h float64, content geometry.Size) scene.GeometrySnapshot {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return scene.GeometrySnapshot{
		Origin:       geometry.Offset{X: x, Y: y},
		Size:         geometry.Size{Width: w, Height: h},
		ContentSize:  content,
		InverseScale: 1,
	}
}

func strip(x, y, w, h float64) scene.GeometrySnapshot {
	size := geometry.Size{Width: w, Height: h}
	return scene.GeometrySnapshot{
		Origin:       geometry.Offset{X: x, Y: y},
		Size:         size,
		ContentSize:  size,
		InverseScale: 1,
	}
}

// contentLines generates the demo rows. The horizontal variant repeats
// each row's text so lines overflow sideways instead of downward.
func contentLines(rows int, axis geometry.Axis) ([]string, float64) {
	lines := make([]string, rows)
	var widest float64
	for i := range lines {
		line := fmt.Sprintf("Scrolling %d!", i)
		if axis == geometry.Horizontal {
			for len(line) < 400 {
				line += fmt.Sprintf("  and %d more", i)
			}
		}
		lines[i] = line
		if w := measure(line); w > widest {
			widest = w
		}
	}
	return lines, widest
}
