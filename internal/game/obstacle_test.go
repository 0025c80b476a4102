package game

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/flappybird-tui/internal/config"
)

func TestObstacleRects(t *testing.T) {
	cfg := config.Default()
	o := Obstacle{X: 400, GapTop: 200}

	top := o.TopRect(cfg.Obstacles.Width)
	if top.X != 400 || top.Y != 0 || top.W != 50 || top.H != 200 {
		t.Errorf("top rect = %+v, expected {400 0 50 200}", top)
	}

	bottom := o.BottomRect(cfg.Obstacles.Width, cfg.Obstacles.GapHeight, cfg.GroundY())
	if bottom.X != 400 || bottom.Y != 350 || bottom.W != 50 || bottom.H != 150 {
		t.Errorf("bottom rect = %+v, expected {400 350 50 150}", bottom)
	}

	// The rects never overlap: the gap separates them exactly.
	if top.Bottom()+cfg.Obstacles.GapHeight != bottom.Y {
		t.Errorf("gap between rects = %g, expected %g", bottom.Y-top.Bottom(), cfg.Obstacles.GapHeight)
	}
}

func TestObstacleScrollScenario(t *testing.T) {
	// Spawned at x=1000 with speed 3: after 334 ticks x = 1000-1002 = -2,
	// and the obstacle leaves the world once its right edge crosses zero.
	cfg := config.Default()
	rng := rand.New(rand.NewSource(7))
	s := NewStream(cfg, rng)
	s.obstacles = append(s.obstacles, Obstacle{X: cfg.World.Width, GapTop: 200})
	s.spawnTimer = -10000 // Keep the timer from spawning more during the test

	for i := 0; i < 334; i++ {
		s.Tick()
	}
	if len(s.Obstacles()) != 1 {
		t.Fatalf("obstacle should still be tracked, have %d", len(s.Obstacles()))
	}
	if got := s.Obstacles()[0].X; got != -2 {
		t.Errorf("x after 334 ticks = %g, expected -2", got)
	}
	if s.Obstacles()[0].offScreen(cfg.Obstacles.Width) {
		t.Error("right edge is still inside the world, obstacle should not be off screen")
	}

	// 17 more ticks puts the right edge past the left boundary; the stream
	// retires it within the same tick.
	for i := 0; i < 17; i++ {
		s.Tick()
	}
	if len(s.Obstacles()) != 0 {
		t.Errorf("off-screen obstacle should be retired, still have %d", len(s.Obstacles()))
	}
}

func TestStreamSpawnCadence(t *testing.T) {
	cfg := config.Default()
	s := NewStream(cfg, rand.New(rand.NewSource(1)))

	for i := 0; i < cfg.Obstacles.SpawnInterval-1; i++ {
		s.Tick()
	}
	if len(s.Obstacles()) != 0 {
		t.Fatalf("no obstacle expected before the interval elapses, have %d", len(s.Obstacles()))
	}

	s.Tick()
	if len(s.Obstacles()) != 1 {
		t.Fatalf("exactly one obstacle expected at the interval, have %d", len(s.Obstacles()))
	}

	// The new obstacle spawns at the right edge and is advanced within the
	// same tick.
	if got := s.Obstacles()[0].X; got != cfg.World.Width-cfg.Physics.ScrollSpeed {
		t.Errorf("x after spawn tick = %g, expected %g", got, cfg.World.Width-cfg.Physics.ScrollSpeed)
	}

	// The timer resets: the second obstacle arrives one full interval later.
	for i := 0; i < cfg.Obstacles.SpawnInterval-1; i++ {
		s.Tick()
	}
	if len(s.Obstacles()) != 1 {
		t.Fatalf("second obstacle arrived early, have %d", len(s.Obstacles()))
	}
	s.Tick()
	if len(s.Obstacles()) != 2 {
		t.Errorf("second obstacle expected after another interval, have %d", len(s.Obstacles()))
	}
}

func TestStreamGapBounds(t *testing.T) {
	cfg := config.Default()
	s := NewStream(cfg, rand.New(rand.NewSource(99)))

	lo := cfg.Obstacles.MinGapMargin
	hi := cfg.GapTopMax()

	for i := 0; i < 50; i++ {
		s.spawn()
	}

	for _, o := range s.Obstacles() {
		if o.GapTop < lo || o.GapTop > hi {
			t.Fatalf("gap top %g outside [%g, %g]", o.GapTop, lo, hi)
		}

		// Both barriers keep strictly positive height with the margin.
		topH := o.TopRect(cfg.Obstacles.Width).H
		bottomH := o.BottomRect(cfg.Obstacles.Width, cfg.Obstacles.GapHeight, cfg.GroundY()).H
		if topH < lo || bottomH < lo {
			t.Fatalf("barrier heights %g/%g below the minimum margin %g", topH, bottomH, lo)
		}
	}
}

func TestStreamKeepsSpatialOrder(t *testing.T) {
	cfg := config.Default()
	s := NewStream(cfg, rand.New(rand.NewSource(5)))

	for i := 0; i < 500; i++ {
		s.Tick()

		obstacles := s.Obstacles()
		for j := 1; j < len(obstacles); j++ {
			if obstacles[j-1].X >= obstacles[j].X {
				t.Fatalf("tick %d: obstacles out of left-to-right order: %g then %g",
					i, obstacles[j-1].X, obstacles[j].X)
			}
		}
	}
}

func TestStreamDeterministicForSeed(t *testing.T) {
	cfg := config.Default()
	s1 := NewStream(cfg, rand.New(rand.NewSource(42)))
	s2 := NewStream(cfg, rand.New(rand.NewSource(42)))

	for i := 0; i < 400; i++ {
		s1.Tick()
		s2.Tick()
	}

	o1, o2 := s1.Obstacles(), s2.Obstacles()
	if len(o1) != len(o2) {
		t.Fatalf("obstacle counts diverged: %d vs %d", len(o1), len(o2))
	}
	for i := range o1 {
		if o1[i] != o2[i] {
			t.Errorf("obstacle %d diverged: %+v vs %+v", i, o1[i], o2[i])
		}
	}
}
