package termgrid

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/input"
)

// handleEvent translates one terminal event for the kernel.
func (a *App) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.relayout = true
		a.screen.Sync()
	case *tcell.EventKey:
		a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	}
}

// handleKey maps arrow and paging keys onto the position controller.
// The mapping is axis-generic: up/left step backward, down/right step
// forward, whichever axis the pair scrolls on.
func (a *App) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEsc, tcell.KeyCtrlC:
		a.quit = true
	case tcell.KeyUp, tcell.KeyLeft:
		a.scrollBy(-1)
	case tcell.KeyDown, tcell.KeyRight:
		a.scrollBy(1)
	case tcell.KeyPgUp:
		a.scrollBy(-a.viewportExtent())
	case tcell.KeyPgDn:
		a.scrollBy(a.viewportExtent())
	case tcell.KeyHome:
		a.scrollBy(-a.contentExtent())
	case tcell.KeyEnd:
		a.scrollBy(a.contentExtent())
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			a.quit = true
		}
	}
}

// scrollBy drives the controller directly, the host-side equivalent of
// a wheel gesture. Before the first layout lands there is nothing to
// scroll against and the lookup error is expected.
func (a *App) scrollBy(delta float64) {
	if delta == 0 {
		return
	}
	_ = a.manager.ApplyDelta(a.region, delta)
}

func (a *App) viewportExtent() float64 {
	snap, ok := a.sched.Snapshots().Get(a.region)
	if !ok {
		return 0
	}
	return a.axis.MainExtent(snap.LogicalSize())
}

func (a *App) contentExtent() float64 {
	snap, ok := a.sched.Snapshots().Get(a.region)
	if !ok {
		return 0
	}
	return a.axis.MainExtent(snap.LogicalContentSize())
}

// handleMouse tracks press state across events; tcell reports buttons
// as a mask, not as transitions.
func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pos := geometry.Offset{X: float64(x), Y: float64(y)}
	buttons := ev.Buttons()

	const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight
	if buttons&wheelMask != 0 {
		a.dispatchWheel(buttons, pos)
		return
	}

	nowDown := buttons&tcell.Button1 != 0
	switch {
	case nowDown && !a.mouseDown:
		a.mouseDown = true
		a.lastMouse = pos
		a.pointerSeq++
		a.router.DispatchPointer(input.PointerEvent{
			PointerID: a.pointerSeq,
			Phase:     input.PointerPhaseDown,
			Position:  pos,
		})
	case nowDown && a.mouseDown:
		if pos == a.lastMouse {
			return
		}
		delta := pos.Sub(a.lastMouse)
		a.lastMouse = pos
		a.router.DispatchPointer(input.PointerEvent{
			PointerID: a.pointerSeq,
			Phase:     input.PointerPhaseMove,
			Position:  pos,
			Delta:     delta,
		})
	case !nowDown && a.mouseDown:
		a.mouseDown = false
		a.router.DispatchPointer(input.PointerEvent{
			PointerID: a.pointerSeq,
			Phase:     input.PointerPhaseUp,
			Position:  pos,
		})
	}
}

// dispatchWheel converts tcell wheel masks into one line-unit event.
// Wheel up or left reads as positive raw delta, which the kernel's
// wheel handler turns into backward scrolling.
func (a *App) dispatchWheel(buttons tcell.ButtonMask, pos geometry.Offset) {
	var delta geometry.Offset
	if buttons&tcell.WheelUp != 0 {
		delta.Y++
	}
	if buttons&tcell.WheelDown != 0 {
		delta.Y--
	}
	if buttons&tcell.WheelLeft != 0 {
		delta.X++
	}
	if buttons&tcell.WheelRight != 0 {
		delta.X--
	}
	a.router.DispatchWheel(input.WheelEvent{
		Delta:    delta,
		Unit:     input.WheelUnitLine,
		Position: pos,
	})
}
