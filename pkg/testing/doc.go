// Package testing provides a harness for driving the scroll kernel in
// unit tests without a real host: scripted layout instead of a layout
// engine, synthesized pointer and wheel input instead of a platform
// event source, and a fake clock so frames advance deterministically.
//
// Import it with an alias to avoid shadowing the standard library:
//
//	import sledtest "github.com/go-sled/sled/pkg/testing"
//
// # Quick start
//
//	func TestWheelScrollsRegion(t *testing.T) {
//	    h := sledtest.NewHarnessWithT(t)
//
//	    region := h.World().Spawn()
//	    bar := h.World().Spawn()
//	    h.LayOut(region, sledtest.Snapshot(
//	        geometry.Offset{},
//	        geometry.Size{Width: 180, Height: 100},
//	        geometry.Size{Width: 180, Height: 400},
//	    ))
//	    h.LayOut(bar, sledtest.Snapshot(
//	        geometry.Offset{X: 180},
//	        geometry.Size{Width: 20, Height: 400},
//	        geometry.Size{Width: 20, Height: 400},
//	    ))
//
//	    h.Scroll().Attach(bar, scroll.Scrollbar{Target: region})
//	    h.Pump()
//
//	    h.WheelAt(geometry.Offset{X: 50, Y: 50}, geometry.Offset{Y: -3})
//	    // region content is now scrolled to offset 3.
//	}
//
// Geometry queued with LayOut is applied at the start of the next Pump,
// the same point in the frame where a real host hands over layout
// results. Input synthesized between pumps is delivered immediately,
// matching how the router receives platform events.
package testing
