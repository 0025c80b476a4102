package game

import (
	"math/rand"

	"github.com/vovakirdan/flappybird-tui/internal/config"
	"github.com/vovakirdan/flappybird-tui/internal/core"
)

// Phase is one of the three mutually exclusive session states.
type Phase int

const (
	PhaseStartScreen Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStartScreen:
		return "StartScreen"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Session is the game state machine. It owns the avatar, the obstacle
// stream, and the score, and it is the only place phase transitions happen.
type Session struct {
	cfg    config.Config
	rng    *rand.Rand
	avatar *Avatar
	stream *Stream
	score  int
	phase  Phase
	tick   uint64
}

// NewSession creates a session on the start screen. The seed fixes the
// obstacle sequence for the whole process: restarts keep drawing from the
// same RNG, so a pinned seed reproduces an entire run.
func NewSession(cfg config.Config, seed int64) *Session {
	s := &Session{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	s.avatar = NewAvatar(cfg)
	s.stream = NewStream(cfg, s.rng)
	return s
}

// Step consumes one frame of input and, while playing, advances the
// simulation by one tick. Phase transitions happen only here: Activate
// starts the game from the start screen and restarts it after game over;
// Jump is meaningful only while playing.
func (s *Session) Step(in core.InputFrame) {
	switch s.phase {
	case PhaseStartScreen:
		if in.Has(core.CommandActivate) {
			s.phase = PhasePlaying
		}
	case PhaseGameOver:
		if in.Has(core.CommandActivate) {
			s.reset()
		}
	case PhasePlaying:
		if in.Has(core.CommandJump) {
			s.avatar.Jump()
		}
		s.advance()
	}
}

// reset replaces the session state wholesale: fresh avatar at the start
// position, empty stream with a zeroed spawn timer, zero score, and the
// phase set to Playing.
func (s *Session) reset() {
	s.avatar = NewAvatar(s.cfg)
	s.stream = NewStream(s.cfg, s.rng)
	s.score = 0
	s.tick = 0
	s.phase = PhasePlaying
}

// advance runs one simulation tick: avatar physics, obstacle spawning and
// movement, scoring, then the ground and barrier checks.
func (s *Session) advance() {
	s.tick++

	s.avatar.Tick()
	s.stream.Tick()

	// Score each obstacle exactly once, the first tick its right edge is
	// strictly left of the avatar's fixed x position.
	width := s.cfg.Obstacles.Width
	for i := range s.stream.obstacles {
		o := &s.stream.obstacles[i]
		if !o.Scored && o.X+width < s.avatar.X() {
			o.Scored = true
			s.score++
		}
	}

	// Ground contact ends the session and snaps the avatar onto the line.
	groundY := s.cfg.GroundY()
	if s.avatar.Bottom() >= groundY {
		s.avatar.snapBottom(groundY)
		s.phase = PhaseGameOver
	}

	// Barrier contact ends the session without snapping. Touching edges
	// count as a collision.
	avatarRect := s.avatar.Rect()
	gap := s.cfg.Obstacles.GapHeight
	for _, o := range s.stream.obstacles {
		if avatarRect.Intersects(o.TopRect(width)) || avatarRect.Intersects(o.BottomRect(width, gap, groundY)) {
			s.phase = PhaseGameOver
		}
	}
}

// Phase returns the current session phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}
