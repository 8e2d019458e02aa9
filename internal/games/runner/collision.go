package runner

import "github.com/vovakirdan/aplus-runner/internal/core"

// overlapsAny reports whether r intersects any entity in the given groups.
func overlapsAny(r core.Rect, groups ...[]Entity) bool {
	for _, list := range groups {
		for _, e := range list {
			if r.Intersects(e.Rect) {
				return true
			}
		}
	}
	return false
}

// takeOverlapping removes every entity intersecting r from the group and
// returns the removed entities in their original order.
func takeOverlapping(r core.Rect, list *[]Entity) []Entity {
	var taken []Entity
	kept := (*list)[:0]
	for _, e := range *list {
		if r.Intersects(e.Rect) {
			taken = append(taken, e)
			continue
		}
		kept = append(kept, e)
	}
	*list = kept
	return taken
}

// overlapsHorizontally reports whether the x-extents of a and b overlap.
func overlapsHorizontally(a, b core.Rect) bool {
	return a.X < b.Right() && b.X < a.Right()
}
