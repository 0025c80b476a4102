package game

import (
	"math/rand"

	"github.com/vovakirdan/flappybird-tui/internal/config"
	"github.com/vovakirdan/flappybird-tui/internal/core"
)

// Obstacle is a vertical barrier pair with a gap the avatar must pass
// through. Both barriers share the horizontal extent [X, X+width).
type Obstacle struct {
	X      float64 // Left edge
	GapTop float64 // Top of the gap
	Scored bool    // Set once by the session when the avatar passes
}

// TopRect returns the collision rectangle of the upper barrier, spanning
// from the top of the world down to the gap.
func (o Obstacle) TopRect(width float64) core.Rect {
	return core.NewRect(o.X, 0, width, o.GapTop)
}

// BottomRect returns the collision rectangle of the lower barrier, spanning
// from below the gap down to the ground line.
func (o Obstacle) BottomRect(width, gapHeight, groundY float64) core.Rect {
	bottomY := o.GapTop + gapHeight
	return core.NewRect(o.X, bottomY, width, groundY-bottomY)
}

// offScreen reports whether the obstacle's right edge has passed the world's
// left boundary.
func (o Obstacle) offScreen(width float64) bool {
	return o.X+width < 0
}

// Stream spawns, advances, and retires obstacles. It is the sole owner of
// the obstacle collection and of the spawn timer; insertion order equals
// left-to-right spatial order since every obstacle moves at the same speed
// and spawns at the same edge.
type Stream struct {
	obstacles  []Obstacle
	rng        *rand.Rand
	spawnTimer int
	cfg        config.Config
}

// NewStream creates an empty stream. The RNG is shared with the session so a
// seeded run replays identically across restarts.
func NewStream(cfg config.Config, rng *rand.Rand) *Stream {
	return &Stream{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg,
	}
}

// Tick advances the spawn timer, spawns an obstacle when the interval
// elapses, moves every obstacle left, and retires the ones that are fully
// off screen. Retirement is a two-phase filter: advance all, then retain.
func (s *Stream) Tick() {
	s.spawnTimer++
	if s.spawnTimer >= s.cfg.Obstacles.SpawnInterval {
		s.spawn()
		s.spawnTimer = 0
	}

	speed := s.cfg.Physics.ScrollSpeed
	for i := range s.obstacles {
		s.obstacles[i].X -= speed
	}

	width := s.cfg.Obstacles.Width
	alive := s.obstacles[:0]
	for _, o := range s.obstacles {
		if !o.offScreen(width) {
			alive = append(alive, o)
		}
	}
	s.obstacles = alive
}

// spawn appends an obstacle at the right edge of the world. The gap top is
// drawn uniformly from the inclusive integer range that leaves both barriers
// at least the minimum margin of height.
func (s *Stream) spawn() {
	lo := int(s.cfg.Obstacles.MinGapMargin)
	hi := int(s.cfg.GapTopMax())
	gapTop := lo
	if hi > lo {
		gapTop = lo + s.rng.Intn(hi-lo+1)
	}

	s.obstacles = append(s.obstacles, Obstacle{
		X:      s.cfg.World.Width,
		GapTop: float64(gapTop),
	})
}

// Obstacles returns the current ordered obstacle sequence. Callers outside
// the package must treat it as read-only.
func (s *Stream) Obstacles() []Obstacle {
	return s.obstacles
}
