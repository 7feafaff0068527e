package scroll

import (
	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/scene"
)

// sync rederives thumb geometry after layout intake.
//
// Change ticks gate the work: a pair is rebuilt only when the region's
// snapshot, the track's snapshot, or the region's scroll state moved
// since the previous frame, or when the thumb has never been laid out.
// Rebuilding reclamps the offset against the latest geometry, recomputes
// the thumb's length fraction and track position from it, and rewrites
// the thumb's own snapshot inside the track box.
func (m *Manager) sync(w *scene.World, sinceTick uint64) {
	for _, bar := range m.scrollbars.Entities() {
		region, bound := m.pairs.PartnerOf(bar)
		if !bound {
			continue // setup queued or aborted
		}
		thumbEnt, ok := m.ThumbOf(bar)
		if !ok {
			continue
		}
		changed := m.snapshots.ChangedSince(region, sinceTick) ||
			m.snapshots.ChangedSince(bar, sinceTick) ||
			m.scrollables.ChangedSince(region, sinceTick)
		if !changed && m.snapshots.Has(thumbEnt) {
			continue
		}
		m.syncPair(bar, region, thumbEnt)
	}
}

func (m *Manager) syncPair(bar, region, thumbEnt scene.Entity) {
	s, ok := m.scrollables.Get(region)
	if !ok {
		return
	}
	snap, ok := m.snapshots.Get(region)
	if !ok {
		return // not laid out yet
	}
	barSnap, ok := m.snapshots.Get(bar)
	if !ok {
		return
	}

	axis := s.Axis
	viewport := axis.MainExtent(snap.LogicalSize())
	content := axis.MainExtent(snap.LogicalContentSize())
	if content <= 0 {
		return // nothing measured yet
	}

	// Content may have shrunk below the current offset.
	scrollRange := content - viewport
	if scrollRange < 0 {
		scrollRange = 0
	}
	offset := geometry.Clamp(axis.Component(s.Offset), 0, scrollRange)
	if !geometry.FloatEqual(offset, axis.Component(s.Offset)) {
		m.scrollables.Update(region, func(sc *Scrollable) {
			sc.Offset = axis.WithComponent(sc.Offset, offset)
		})
	}

	fraction := viewport / content
	track := newTrackGeometry(axis, barSnap, fraction)
	trackOffset := 0.0
	if scrollRange > 0 && track.draggable > 0 {
		trackOffset = geometry.Clamp(offset/scrollRange*track.draggable, 0, track.draggable)
	}

	m.thumbs.Update(thumbEnt, func(t *Thumb) {
		t.LengthFraction = fraction
		t.TrackOffset = trackOffset
	})
	m.writeThumbSnapshot(thumbEnt, axis, barSnap, track, trackOffset)
}

// writeThumbSnapshot lays the thumb into the track's content box: full
// extent across the axis, the thumb length along it, shifted from the
// border start by the track position. The visual length caps at the
// track so an oversized thumb (content fits) never paints outside it.
func (m *Manager) writeThumbSnapshot(thumbEnt scene.Entity, axis geometry.Axis, barSnap scene.GeometrySnapshot, track trackGeometry, trackOffset float64) {
	inv := barSnap.InverseScale
	if inv == 0 {
		inv = 1
	}
	length := track.thumbLen
	if length > track.inner {
		length = track.inner
	}

	cross := axis.CrossExtent(barSnap.Size) - axis.CrossInsets(barSnap.Border)
	if cross < 0 {
		cross = 0
	}
	mainOrigin := axis.Component(barSnap.Origin) + axis.MainStartInset(barSnap.Border) + trackOffset/inv
	crossOrigin := axis.Cross().Component(barSnap.Origin) + axis.CrossStartInset(barSnap.Border)

	origin := axis.WithComponent(geometry.Offset{}, mainOrigin)
	origin = axis.Cross().WithComponent(origin, crossOrigin)
	size := axis.SizeWith(length/inv, cross)

	m.snapshots.Set(thumbEnt, scene.GeometrySnapshot{
		Origin:       origin,
		Size:         size,
		ContentSize:  size,
		InverseScale: barSnap.InverseScale,
	})
}
