package input

import (
	"github.com/go-sled/sled/pkg/geometry"
	"github.com/go-sled/sled/pkg/scene"
)

// HitTestResult accumulates the entities under a point, front to back:
// the topmost node first, its ancestors after it.
type HitTestResult struct {
	Entries []scene.Entity
}

// HitTest collects the entities whose bounds contain the given logical
// position. Within one parent, later children sit on top of earlier
// ones; a child is always in front of its parent. Nodes without a
// geometry snapshot are transparent but their children still hit.
func HitTest(w *scene.World, snapshots *scene.Table[scene.GeometrySnapshot], position geometry.Offset) *HitTestResult {
	result := &HitTestResult{}
	for _, root := range rootsOf(w, snapshots) {
		hitNode(w, snapshots, root, position, result)
	}
	return result
}

// rootsOf returns the parentless ancestors of every node carrying a
// snapshot, in slot order without duplicates.
func rootsOf(w *scene.World, snapshots *scene.Table[scene.GeometrySnapshot]) []scene.Entity {
	seen := map[scene.Entity]struct{}{}
	var roots []scene.Entity
	for _, e := range snapshots.Entities() {
		top := e
		for {
			parent, ok := w.ParentOf(top)
			if !ok {
				break
			}
			top = parent
		}
		if _, dup := seen[top]; !dup {
			seen[top] = struct{}{}
			roots = append(roots, top)
		}
	}
	return roots
}

func hitNode(w *scene.World, snapshots *scene.Table[scene.GeometrySnapshot], e scene.Entity, position geometry.Offset, result *HitTestResult) bool {
	snapshot, hasSnapshot := snapshots.Get(e)
	if hasSnapshot && !snapshot.LogicalRect().Contains(position) {
		return false
	}

	hit := false
	children := w.ChildrenOf(e)
	for i := len(children) - 1; i >= 0; i-- {
		if hitNode(w, snapshots, children[i], position, result) {
			hit = true
		}
	}
	if hasSnapshot {
		result.Entries = append(result.Entries, e)
		hit = true
	}
	return hit
}
