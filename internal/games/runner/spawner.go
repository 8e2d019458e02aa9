package runner

import (
	"github.com/vovakirdan/aplus-runner/internal/config"
	"github.com/vovakirdan/aplus-runner/internal/core"
)

// SpawnEvent is the outcome of one timed spawn roll.
type SpawnEvent int

const (
	SpawnNothing SpawnEvent = iota
	SpawnObstacle
	SpawnPit
	SpawnPlatform
)

// obstacleArtVariants is the number of art variants per chapter pool.
const obstacleArtVariants = 3

// Spawner generates obstacles, pits, platforms, pickups and the ground
// chain ahead of the runner.
type Spawner struct {
	cfg     config.SpawnerConfig
	pacing  *config.Pacing
	rng     core.Rand
	screenW int
	screenH int
	groundY int

	lastSpawn int64
	nextDelay int64

	lastItem    int64
	itemsPlaced int
	itemQuota   int

	lastCollectible int64
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(cfg config.RunnerConfig, pacing *config.Pacing, rng core.Rand) *Spawner {
	return &Spawner{
		cfg:     cfg.Spawner,
		pacing:  pacing,
		rng:     rng,
		screenW: cfg.Screen.Width,
		screenH: cfg.Screen.Height,
		groundY: cfg.Screen.GroundY,
	}
}

// Reset restarts every timer at now and rolls a fresh item quota.
func (s *Spawner) Reset(now int64) {
	s.lastSpawn = now
	s.nextDelay = s.cfg.InitialDelayMs
	s.lastItem = now
	s.itemsPlaced = 0
	s.itemQuota = core.RandRange(s.rng, s.cfg.ItemQuotaMin, s.cfg.ItemQuotaMax)
	s.lastCollectible = now
}

// ItemQuota returns how many items this chapter may place.
func (s *Spawner) ItemQuota() int {
	return s.itemQuota
}

// NextDelay returns the current delay before the next spawn event.
func (s *Spawner) NextDelay() int64 {
	return s.nextDelay
}

// SeedGround lays the initial floor, twice the screen wide, from x = 0.
func (s *Spawner) SeedGround(w *World) {
	w.Add(NewPlatform(PlatformGround, 0, s.groundY, s.screenW*2, s.cfg.PlatformHeight))
}

// ChainGround appends one ground segment flush to the rightmost one when
// its right edge comes within the lookahead of the screen edge.
func (s *Spawner) ChainGround(w *World) bool {
	last, ok := w.RightmostGround()
	if !ok {
		s.SeedGround(w)
		return true
	}
	if last.Rect.Right() >= s.screenW+s.cfg.GroundLookahead {
		return false
	}
	width := core.RandRange(s.rng, s.cfg.GroundMinWidth, s.cfg.GroundMaxWidth)
	return w.Add(NewPlatform(PlatformGround, last.Rect.Right(), s.groundY, width, s.cfg.PlatformHeight))
}

// Update runs every spawn timer at play time now. speed is the accelerated
// chapter speed, which picks the delay band.
func (s *Spawner) Update(now int64, chapter, speed int, w *World) {
	s.ChainGround(w)

	if now-s.lastSpawn > s.nextDelay {
		s.spawnEvent(chapter, w)
		s.lastSpawn = now
		lo, hi := s.pacing.SpawnDelayRange(speed)
		s.nextDelay = int64(core.RandRange(s.rng, lo, hi))
	}

	if s.itemsPlaced < s.itemQuota && now-s.lastItem >= s.cfg.ItemIntervalMs {
		s.lastItem = now
		if s.spawnItem(w) {
			s.itemsPlaced++
		}
	}

	if now-s.lastCollectible >= s.cfg.CollectibleIntervalMs {
		s.lastCollectible = now
		if core.Chance(s.rng, s.cfg.CollectibleChance) {
			s.spawnCollectible(w)
		}
	}
}

// spawnEvent rolls the weighted event kind and places it at the right edge.
func (s *Spawner) spawnEvent(chapter int, w *World) SpawnEvent {
	weights := []int{s.cfg.Weights.Obstacle, s.cfg.Weights.Pit, s.cfg.Weights.Platform}
	switch core.WeightedIndex(s.rng, weights) {
	case 0:
		t := obstacleTypes[s.rng.Intn(len(obstacleTypes))]
		w.Add(s.obstacle(t, chapter, s.screenW, s.groundY))
		return SpawnObstacle
	case 1:
		// Pits never open under a platform.
		if len(w.Platforms) > 0 {
			return SpawnNothing
		}
		width := core.RandRange(s.rng, s.cfg.PitMinWidth, s.cfg.PitMaxWidth)
		w.Add(NewPit(s.screenW, s.groundY, width, s.cfg.PitDepth))
		return SpawnPit
	default:
		s.spawnPlatform(chapter, w)
		return SpawnPlatform
	}
}

func (s *Spawner) obstacle(t ObstacleType, chapter, x, baseY int) Entity {
	return NewObstacle(t, chapter, s.rng.Intn(obstacleArtVariants), x, baseY)
}

func (s *Spawner) spawnPlatform(chapter int, w *World) {
	var pl Entity
	if s.rng.Intn(2) == 0 {
		width := core.RandRange(s.rng, s.cfg.FloatingMinWidth, s.cfg.FloatingMaxWidth)
		top := core.RandRange(s.rng, s.groundY-s.cfg.FloatingMaxRise, s.groundY-s.cfg.FloatingMinRise)
		pl = NewPlatform(PlatformFloating, s.screenW, top, width, s.cfg.PlatformHeight)
	} else {
		width := core.RandRange(s.rng, s.cfg.LowGroundMinWidth, s.cfg.LowGroundMaxWidth)
		pl = NewPlatform(PlatformLowGround, s.screenW, s.groundY-s.cfg.LowGroundRise, width, s.cfg.PlatformHeight)
	}
	if !w.Add(pl) {
		return
	}

	maxOffset := pl.Rect.W - s.cfg.PlatformObstacleMargin
	if maxOffset < s.cfg.PlatformObstacleMinX || !core.Chance(s.rng, s.cfg.PlatformObstacleChance) {
		return
	}
	t := jumpObstacleTypes[s.rng.Intn(len(jumpObstacleTypes))]
	x := s.screenW + core.RandRange(s.rng, s.cfg.PlatformObstacleMinX, maxOffset)
	w.Add(s.obstacle(t, chapter, x, pl.Rect.Y))
}

// spawnItem places a random power-up unless it would overlap an obstacle,
// a platform or the ground.
func (s *Spawner) spawnItem(w *World) bool {
	kind := itemKinds[s.rng.Intn(len(itemKinds))]
	cy := core.RandRange(s.rng, s.groundY-s.cfg.ItemMaxRise, s.groundY-s.cfg.ItemMinRise)
	item := NewItem(kind, s.screenW, cy, s.cfg.ItemSize)
	if overlapsAny(item.Rect, w.Obstacles, w.Platforms, w.Ground) {
		return false
	}
	return w.Add(item)
}

func (s *Spawner) spawnCollectible(w *World) bool {
	cy := core.RandRange(s.rng, s.groundY-s.cfg.CollectibleMaxRise, s.groundY-s.cfg.CollectibleMinRise)
	return w.Add(NewCollectible(s.screenW, cy))
}

// SpeedLine adds a motion streak on average once every SpeedLineOdds calls.
func (s *Spawner) SpeedLine(w *World) bool {
	if s.cfg.SpeedLineOdds <= 0 || s.rng.Intn(s.cfg.SpeedLineOdds) != 0 {
		return false
	}
	y := s.rng.Intn(core.Max(s.screenH, 1))
	width := core.RandRange(s.rng, 20, 40)
	return w.Add(NewSpeedLine(s.screenW, y, width))
}
