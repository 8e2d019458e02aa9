package runner

// World owns every scrolling entity, grouped by kind. Ground segments are
// kept apart from the other platforms: they only mark the floor visually and
// block item placement, while landing on the floor is decided by the ground
// line itself.
type World struct {
	Obstacles    []Entity
	Platforms    []Entity
	Ground       []Entity
	Pits         []Entity
	Items        []Entity
	Collectibles []Entity
	SpeedLines   []Entity

	limit   int
	dropped int
}

// NewWorld creates an empty world that holds at most limit entities per group.
func NewWorld(limit int) *World {
	if limit <= 0 {
		limit = 256
	}
	return &World{limit: limit}
}

// Add files the entity into its group. It returns false when the group is
// already at capacity and the entity was dropped.
func (w *World) Add(e Entity) bool {
	list := w.group(e)
	if len(*list) >= w.limit {
		w.dropped++
		return false
	}
	*list = append(*list, e)
	return true
}

func (w *World) group(e Entity) *[]Entity {
	switch e.Kind {
	case KindObstacle:
		return &w.Obstacles
	case KindPlatform:
		if e.Platform == PlatformGround {
			return &w.Ground
		}
		return &w.Platforms
	case KindPit:
		return &w.Pits
	case KindItem:
		return &w.Items
	case KindCollectible:
		return &w.Collectibles
	default:
		return &w.SpeedLines
	}
}

// Dropped returns how many spawns were rejected by the capacity limit.
func (w *World) Dropped() int {
	return w.dropped
}

// Scroll moves every entity left and removes those that left the screen.
func (w *World) Scroll(speed, speedLineFactor int) {
	for _, list := range w.groups() {
		scrollGroup(list, speed, speedLineFactor)
	}
}

func scrollGroup(list *[]Entity, speed, speedLineFactor int) {
	valid := (*list)[:0]
	for _, e := range *list {
		e.Scroll(speed, speedLineFactor)
		if !e.OffScreen() {
			valid = append(valid, e)
		}
	}
	*list = valid
}

func (w *World) groups() []*[]Entity {
	return []*[]Entity{
		&w.Obstacles, &w.Platforms, &w.Ground, &w.Pits,
		&w.Items, &w.Collectibles, &w.SpeedLines,
	}
}

// ClearTransient removes everything except the ground.
func (w *World) ClearTransient() {
	ground := w.Ground
	w.Clear()
	w.Ground = ground
}

// Clear removes every entity.
func (w *World) Clear() {
	for _, list := range w.groups() {
		*list = (*list)[:0]
	}
}

// RightmostGround returns the ground segment reaching furthest right.
func (w *World) RightmostGround() (Entity, bool) {
	if len(w.Ground) == 0 {
		return Entity{}, false
	}
	best := w.Ground[0]
	for _, g := range w.Ground[1:] {
		if g.Rect.Right() > best.Rect.Right() {
			best = g
		}
	}
	return best, true
}

// Len returns the total number of entities.
func (w *World) Len() int {
	n := 0
	for _, list := range w.groups() {
		n += len(*list)
	}
	return n
}

// Each calls fn for every entity in back-to-front draw order.
func (w *World) Each(fn func(Entity)) {
	for _, list := range [][]Entity{
		w.SpeedLines, w.Ground, w.Pits, w.Platforms,
		w.Obstacles, w.Collectibles, w.Items,
	} {
		for _, e := range list {
			fn(e)
		}
	}
}
