package scroll

import (
	"github.com/go-sled/sled/pkg/errors"
	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/scene"
)

// trackGeometry is the derived layout of a track and its thumb along
// the scrolled axis, in logical pixels.
type trackGeometry struct {
	// inner is the track length inside its borders.
	inner float64

	// thumbLen is the thumb's length, fraction times inner. Exceeds
	// inner when the content fits the viewport.
	thumbLen float64

	// draggable is the travel available to the thumb: inner minus
	// thumbLen, floored at zero.
	draggable float64
}

func newTrackGeometry(axis geometry.Axis, barSnap scene.GeometrySnapshot, fraction float64) trackGeometry {
	inner := axis.MainExtent(barSnap.LogicalSize()) - axis.MainInsets(barSnap.LogicalBorder())
	if inner < 0 {
		inner = 0
	}
	thumbLen := fraction * inner
	draggable := inner - thumbLen
	if draggable < 0 {
		draggable = 0
	}
	return trackGeometry{inner: inner, thumbLen: thumbLen, draggable: draggable}
}

// ApplyDelta scrolls a region by delta logical pixels along its axis.
// Positive deltas scroll forward (the offset grows), negative backward.
//
// This is the single mutation path for scroll state: the offset clamps
// to [0, content minus viewport] and the paired thumb moves by the
// track-to-content ratio in the same call, so no handler or system ever
// observes the two disagreeing. Regions whose content fits the viewport
// ignore deltas entirely.
func (m *Manager) ApplyDelta(region scene.Entity, delta float64) error {
	s, ok := m.scrollables.Get(region)
	if !ok {
		return &errors.LookupError{Entity: region.String(), Component: m.scrollables.Name()}
	}
	snap, ok := m.snapshots.Get(region)
	if !ok {
		return &errors.LookupError{Entity: region.String(), Component: m.snapshots.Name()}
	}

	axis := s.Axis
	viewport := axis.MainExtent(snap.LogicalSize())
	content := axis.MainExtent(snap.LogicalContentSize())
	scrollRange := content - viewport
	if scrollRange <= 0 {
		return nil // content fits, nothing to scroll
	}
	newOffset := geometry.Clamp(axis.Component(s.Offset)+delta, 0, scrollRange)

	m.scrollables.Update(region, func(sc *Scrollable) {
		sc.Offset = axis.WithComponent(sc.Offset, newOffset)
	})
	m.moveThumb(region, axis, scrollRange, delta)
	return nil
}

// moveThumb advances the paired thumb by the track-to-content ratio of
// the applied delta. Pairs still mid-setup or not yet laid out are
// skipped; the sync system reconciles them once geometry exists.
func (m *Manager) moveThumb(region scene.Entity, axis geometry.Axis, scrollRange, delta float64) {
	bar, bound := m.pairs.PartnerOf(region)
	if !bound {
		return
	}
	thumbEnt, ok := m.ThumbOf(bar)
	if !ok {
		return
	}
	thumb, ok := m.thumbs.Get(thumbEnt)
	if !ok {
		return
	}
	barSnap, ok := m.snapshots.Get(bar)
	if !ok {
		return
	}

	track := newTrackGeometry(axis, barSnap, thumb.LengthFraction)
	if track.draggable <= 0 {
		return
	}
	ratio := track.draggable / scrollRange
	newTrack := geometry.Clamp(thumb.TrackOffset+ratio*delta, 0, track.draggable)

	m.thumbs.Update(thumbEnt, func(t *Thumb) {
		t.TrackOffset = newTrack
	})

	// Keep the thumb's hit-test geometry at its visual position.
	inv := barSnap.InverseScale
	if inv == 0 {
		inv = 1
	}
	mainOrigin := axis.Component(barSnap.Origin) + axis.MainStartInset(barSnap.Border) + newTrack/inv
	m.snapshots.Update(thumbEnt, func(ts *scene.GeometrySnapshot) {
		ts.Origin = axis.WithComponent(ts.Origin, mainOrigin)
	})
}
