package runner

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/aplus-runner/internal/config"
	"github.com/vovakirdan/aplus-runner/internal/core"
)

func newTestSpawner(t *testing.T, mutate func(*config.RunnerConfig)) (*Spawner, *World) {
	t.Helper()
	cfg := config.DefaultRunnerConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s := NewSpawner(cfg, config.NewPacing(cfg), rand.New(rand.NewSource(42)))
	s.Reset(0)
	return s, NewWorld(cfg.Spawner.MaxEntitiesPerKind)
}

func TestSeedGround(t *testing.T) {
	s, w := newTestSpawner(t, nil)
	s.SeedGround(w)

	if len(w.Ground) != 1 || len(w.Platforms) != 0 {
		t.Fatalf("ground=%d platforms=%d, expected one ground segment", len(w.Ground), len(w.Platforms))
	}
	if got := w.Ground[0].Rect; got.X != 0 || got.W != 2400 || got.Y != 500 {
		t.Errorf("seed ground = %+v, expected x=0 w=2400 top=500", got)
	}
}

func TestChainGroundAppendsFlushSegment(t *testing.T) {
	s, w := newTestSpawner(t, nil)
	s.SeedGround(w)

	if s.ChainGround(w) {
		t.Fatal("chained ground while the seed still reaches past the lookahead")
	}

	w.Scroll(1100, 1)
	if !s.ChainGround(w) {
		t.Fatal("no ground chained once the edge came within the lookahead")
	}
	if len(w.Ground) != 2 {
		t.Fatalf("len(Ground) = %d, expected 2", len(w.Ground))
	}
	seg := w.Ground[1]
	if seg.Rect.X != w.Ground[0].Rect.Right() {
		t.Errorf("segment x = %d, expected flush at %d", seg.Rect.X, w.Ground[0].Rect.Right())
	}
	if seg.Rect.W < 300 || seg.Rect.W > 550 {
		t.Errorf("segment width = %d, expected within [300, 550]", seg.Rect.W)
	}
}

func TestChainGroundReseedsEmptyWorld(t *testing.T) {
	s, w := newTestSpawner(t, nil)
	if !s.ChainGround(w) || len(w.Ground) != 1 {
		t.Errorf("expected an empty world to be reseeded, ground=%d", len(w.Ground))
	}
}

func TestPitNeverSpawnsUnderPlatform(t *testing.T) {
	s, w := newTestSpawner(t, func(cfg *config.RunnerConfig) {
		cfg.Spawner.Weights = config.SpawnWeights{Obstacle: 0, Pit: 1, Platform: 0}
	})

	w.Add(NewPlatform(PlatformFloating, 900, 350, 400, 40))
	if ev := s.spawnEvent(1, w); ev != SpawnNothing {
		t.Errorf("spawnEvent() = %v with a platform present, expected SpawnNothing", ev)
	}
	if len(w.Pits) != 0 {
		t.Errorf("len(Pits) = %d, expected 0", len(w.Pits))
	}

	w.Platforms = nil
	if ev := s.spawnEvent(1, w); ev != SpawnPit {
		t.Fatalf("spawnEvent() = %v, expected SpawnPit", ev)
	}
	pit := w.Pits[0].Rect
	if pit.X != 1200 || pit.Y != 500 || pit.W < 100 || pit.W > 250 {
		t.Errorf("pit = %+v, expected at the right edge, 100-250 wide", pit)
	}
}

func TestSpawnObstacleAtRightEdge(t *testing.T) {
	s, w := newTestSpawner(t, func(cfg *config.RunnerConfig) {
		cfg.Spawner.Weights = config.SpawnWeights{Obstacle: 1}
	})

	for i := 0; i < 20; i++ {
		s.spawnEvent(2, w)
	}
	if len(w.Obstacles) != 20 {
		t.Fatalf("len(Obstacles) = %d, expected 20", len(w.Obstacles))
	}
	for _, o := range w.Obstacles {
		if o.Rect.X != 1200 || o.Chapter != 2 {
			t.Errorf("obstacle %+v, expected x=1200 chapter=2", o)
		}
		if o.Variant < 0 || o.Variant >= obstacleArtVariants {
			t.Errorf("variant %d out of range", o.Variant)
		}
		if o.Obstacle == ObstacleForceSlide && o.Rect.Bottom() != 430 {
			t.Errorf("slide obstacle bottom = %d, expected 430", o.Rect.Bottom())
		}
		if o.Obstacle != ObstacleForceSlide && o.Rect.Bottom() != 500 {
			t.Errorf("jump obstacle bottom = %d, expected on the ground", o.Rect.Bottom())
		}
	}
}

func TestPlatformObstacleSitsOnTop(t *testing.T) {
	s, w := newTestSpawner(t, func(cfg *config.RunnerConfig) {
		cfg.Spawner.Weights = config.SpawnWeights{Platform: 1}
		cfg.Spawner.PlatformObstacleChance = 1
	})

	for i := 0; i < 10; i++ {
		s.spawnEvent(1, w)
	}
	if len(w.Platforms) != 10 || len(w.Obstacles) != 10 {
		t.Fatalf("platforms=%d obstacles=%d, expected 10 each", len(w.Platforms), len(w.Obstacles))
	}
	for i, pl := range w.Platforms {
		o := w.Obstacles[i]
		if o.Rect.Bottom() != pl.Rect.Y {
			t.Errorf("obstacle bottom %d, expected platform top %d", o.Rect.Bottom(), pl.Rect.Y)
		}
		if o.Obstacle == ObstacleForceSlide {
			t.Error("slide obstacle placed on a platform")
		}
		if o.Rect.X < pl.Rect.X+30 || o.Rect.X > pl.Rect.Right()-60 {
			t.Errorf("obstacle x %d outside platform span [%d, %d]", o.Rect.X, pl.Rect.X+30, pl.Rect.Right()-60)
		}
	}
}

func TestSpawnDelayFollowsSpeedBands(t *testing.T) {
	tests := []struct {
		name   string
		speed  int
		lo, hi int64
	}{
		{"slow", 6, 400, 1200},
		{"medium", 9, 300, 900},
		{"fast", 13, 250, 700},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, w := newTestSpawner(t, nil)
			if s.NextDelay() != 2000 {
				t.Fatalf("initial delay = %d, expected 2000", s.NextDelay())
			}
			now := int64(0)
			for i := 0; i < 50; i++ {
				now += s.NextDelay() + 1
				s.Update(now, 1, tc.speed, w)
				w.Clear()
				if d := s.NextDelay(); d < tc.lo || d > tc.hi {
					t.Fatalf("delay %d outside [%d, %d]", d, tc.lo, tc.hi)
				}
			}
		})
	}
}

func TestNoSpawnBeforeDelay(t *testing.T) {
	s, w := newTestSpawner(t, func(cfg *config.RunnerConfig) {
		cfg.Spawner.CollectibleChance = 0
	})
	s.SeedGround(w)
	s.Update(2000, 1, 6, w)
	if len(w.Obstacles)+len(w.Pits)+len(w.Platforms) != 0 {
		t.Error("spawned before the initial delay elapsed")
	}
}

func TestItemRejectedOnOverlap(t *testing.T) {
	s, w := newTestSpawner(t, func(cfg *config.RunnerConfig) {
		cfg.Spawner.Weights = config.SpawnWeights{Pit: 1}
		cfg.Spawner.ItemQuotaMin = 2
		cfg.Spawner.ItemQuotaMax = 2
	})
	s.Reset(0)
	wall := Entity{Kind: KindObstacle, Rect: core.NewRect(1100, 0, 400, 600)}
	w.Add(wall)

	s.Update(6000, 1, 6, w)
	if len(w.Items) != 0 {
		t.Fatalf("len(Items) = %d, expected the item to be rejected", len(w.Items))
	}
	if s.itemsPlaced != 0 {
		t.Errorf("itemsPlaced = %d, rejected item must not count", s.itemsPlaced)
	}

	w.Clear()
	s.Update(12000, 1, 6, w)
	if len(w.Items) != 1 || s.itemsPlaced != 1 {
		t.Errorf("items=%d placed=%d, expected one item on a clear screen", len(w.Items), s.itemsPlaced)
	}
}

func TestItemQuota(t *testing.T) {
	s, w := newTestSpawner(t, func(cfg *config.RunnerConfig) {
		cfg.Spawner.ItemQuotaMin = 1
		cfg.Spawner.ItemQuotaMax = 1
		cfg.Spawner.Weights = config.SpawnWeights{Obstacle: 0, Pit: 1}
		cfg.Spawner.CollectibleChance = 0
	})
	s.Reset(0)

	placed := 0
	for now := int64(6000); now <= 60000; now += 6000 {
		s.Update(now, 1, 6, w)
		placed += len(w.Items)
		w.Items = nil
		w.Pits = nil
	}
	if placed != 1 {
		t.Errorf("placed %d items, expected quota of 1", placed)
	}
}

func TestCollectibleTimer(t *testing.T) {
	s, w := newTestSpawner(t, func(cfg *config.RunnerConfig) {
		cfg.Spawner.CollectibleChance = 1
		cfg.Spawner.Weights = config.SpawnWeights{Obstacle: 0, Pit: 1}
	})

	s.Update(999, 1, 6, w)
	if len(w.Collectibles) != 0 {
		t.Fatal("collectible spawned before its interval")
	}
	s.Update(1000, 1, 6, w)
	if len(w.Collectibles) != 1 {
		t.Fatalf("len(Collectibles) = %d, expected 1", len(w.Collectibles))
	}
	c := w.Collectibles[0].Rect
	if c.X != 1200 || c.CenterY() < 320 || c.CenterY() > 450 {
		t.Errorf("collectible = %+v, expected at the right edge above the ground", c)
	}
}

func TestSpeedLineOdds(t *testing.T) {
	s, w := newTestSpawner(t, nil)
	added := 0
	for i := 0; i < 400; i++ {
		if s.SpeedLine(w) {
			added++
		}
	}
	if added < 50 || added > 150 {
		t.Errorf("added %d speed lines in 400 calls, expected about 100", added)
	}
	for _, l := range w.SpeedLines {
		if l.Rect.W < 20 || l.Rect.W > 40 || l.Rect.Y < 0 || l.Rect.Y >= 600 {
			t.Errorf("speed line %+v out of range", l.Rect)
		}
	}
}
