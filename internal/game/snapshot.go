package game

import "github.com/vovakirdan/flappybird-tui/internal/core"

// ObstacleView is the render-facing shape of one obstacle: both barrier
// rectangles plus the scored flag.
type ObstacleView struct {
	Top    core.Rect
	Bottom core.Rect
	Scored bool
}

// Snapshot is the read-only render contract. It carries everything the
// presentation layer needs to draw a frame without touching simulation
// internals, plus the tick counter for determinism tests.
type Snapshot struct {
	Tick      uint64
	Phase     Phase
	Score     int
	Avatar    core.Rect
	Velocity  float64
	Obstacles []ObstacleView

	WorldW       float64
	WorldH       float64
	GroundHeight float64
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	width := s.cfg.Obstacles.Width
	gap := s.cfg.Obstacles.GapHeight
	groundY := s.cfg.GroundY()

	obstacles := make([]ObstacleView, len(s.stream.obstacles))
	for i, o := range s.stream.obstacles {
		obstacles[i] = ObstacleView{
			Top:    o.TopRect(width),
			Bottom: o.BottomRect(width, gap, groundY),
			Scored: o.Scored,
		}
	}

	return Snapshot{
		Tick:         s.tick,
		Phase:        s.phase,
		Score:        s.score,
		Avatar:       s.avatar.Rect(),
		Velocity:     s.avatar.Velocity(),
		Obstacles:    obstacles,
		WorldW:       s.cfg.World.Width,
		WorldH:       s.cfg.World.Height,
		GroundHeight: s.cfg.World.GroundHeight,
	}
}
