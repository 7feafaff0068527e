package scroll

import (
	"fmt"

	"github.com/go-sled/sled/pkg/errors"
	"github.com/go-sled/sled/pkg/input"
	"github.com/go-sled/sled/pkg/scene"
)

const opTroughClick = "scroll.troughClick"

// wheelHandler scrolls the region's content on wheel events. Line
// deltas convert through the region's line metrics when present and
// pass through as raw pixels otherwise. The sign flips so wheel-up
// (positive raw delta) moves content backward.
func (m *Manager) wheelHandler(region scene.Entity) input.WheelHandler {
	return func(ev input.WheelEvent) error {
		s, ok := m.scrollables.Get(region)
		if !ok {
			return &errors.LookupError{Entity: region.String(), Component: m.scrollables.Name()}
		}
		raw := s.Axis.Component(ev.Delta)
		if ev.Unit == input.WheelUnitLine && s.Metrics != nil {
			raw *= s.Metrics.PixelsPerLine()
		}
		return m.ApplyDelta(region, -raw*s.wheelScale())
	}
}

// dragHandler scrolls the region's content while its thumb is dragged.
// One dragged pixel is worth DragScale offset pixels, so the thumb does
// not track the pointer one to one.
func (m *Manager) dragHandler(thumb scene.Entity) input.DragHandler {
	return func(ev input.PointerEvent) error {
		bar, ok := m.world.ParentOf(thumb)
		if !ok {
			return &errors.LookupError{Entity: thumb.String(), Component: "parent"}
		}
		config, ok := m.scrollbars.Get(bar)
		if !ok {
			return &errors.LookupError{Entity: bar.String(), Component: m.scrollbars.Name()}
		}
		s, ok := m.scrollables.Get(config.Target)
		if !ok {
			return &errors.LookupError{Entity: config.Target.String(), Component: m.scrollables.Name()}
		}
		raw := s.Axis.Component(ev.Delta)
		return m.ApplyDelta(config.Target, raw*config.dragScale())
	}
}

// consumeThumbClick stops click propagation so a press on the thumb
// never reaches the trough handler underneath it.
func consumeThumbClick(ev *input.ClickEvent) error {
	ev.StopPropagation()
	return nil
}

// troughClickHandler pages the region's content when the trough is
// clicked: one viewport forward when the click lands past the thumb,
// one viewport back when it lands before it. Clicks on the thumb itself
// never arrive here; consumeThumbClick discards them first.
func (m *Manager) troughClickHandler(bar scene.Entity) input.ClickHandler {
	return func(ev *input.ClickEvent) error {
		if !ev.HasPosition {
			return &errors.SledError{
				Op:     opTroughClick,
				Kind:   errors.KindInvariant,
				Err:    fmt.Errorf("click observed without a hit position"),
				Entity: bar.String(),
			}
		}
		config, ok := m.scrollbars.Get(bar)
		if !ok {
			return &errors.LookupError{Entity: bar.String(), Component: m.scrollbars.Name()}
		}
		region := config.Target
		s, ok := m.scrollables.Get(region)
		if !ok {
			return &errors.LookupError{Entity: region.String(), Component: m.scrollables.Name()}
		}
		snap, ok := m.snapshots.Get(region)
		if !ok {
			return &errors.LookupError{Entity: region.String(), Component: m.snapshots.Name()}
		}
		barSnap, ok := m.snapshots.Get(bar)
		if !ok {
			return &errors.LookupError{Entity: bar.String(), Component: m.snapshots.Name()}
		}
		thumbEnt, ok := m.ThumbOf(bar)
		if !ok {
			return &errors.LookupError{Entity: bar.String(), Component: m.thumbs.Name()}
		}
		thumb, ok := m.thumbs.Get(thumbEnt)
		if !ok {
			return &errors.LookupError{Entity: thumbEnt.String(), Component: m.thumbs.Name()}
		}

		axis := s.Axis
		track := newTrackGeometry(axis, barSnap, thumb.LengthFraction)
		clickPos := axis.Component(ev.Position) -
			axis.MainStart(barSnap.LogicalRect()) -
			axis.MainStartInset(barSnap.LogicalBorder())

		viewport := axis.MainExtent(snap.LogicalSize())
		if clickPos > thumb.TrackOffset+track.thumbLen/2 {
			return m.ApplyDelta(region, viewport)
		}
		return m.ApplyDelta(region, -viewport)
	}
}
