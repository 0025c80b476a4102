package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flappybird-tui/internal/config"
	"github.com/vovakirdan/flappybird-tui/internal/core"
	"github.com/vovakirdan/flappybird-tui/internal/game"
)

func TestDrawFrameStartScreen(t *testing.T) {
	session := game.NewSession(config.Default(), 1)
	screen := core.NewScreen(80, 24)

	DrawFrame(screen, session.Snapshot())

	if !strings.Contains(screen.String(), "Press SPACE to start") {
		t.Error("start screen should show the start prompt")
	}

	// The ground band fills the bottom of the screen.
	if screen.Get(0, 23) != groundChar {
		t.Errorf("bottom row should be ground, got %q", screen.Get(0, 23))
	}

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD should show the score, row 0 = %q", screen.Row(0))
	}
}

func TestDrawFramePlaying(t *testing.T) {
	session := game.NewSession(config.Default(), 1)
	activate := core.NewInputFrame()
	activate.Set(core.CommandActivate)
	session.Step(activate)

	screen := core.NewScreen(80, 24)
	DrawFrame(screen, session.Snapshot())

	// The avatar occupies cells scaled from its world rect: left edge 235 of
	// 1000 world units maps to column 18 on an 80-cell screen.
	if screen.Get(18, 11) != avatarChar || screen.Get(19, 11) != avatarEyeChar {
		t.Errorf("avatar cells = %q %q, expected %q %q",
			screen.Get(18, 11), screen.Get(19, 11), avatarChar, avatarEyeChar)
	}
	cell := screen.GetCell(18, 11)
	if cell.Color != core.ColorYellow {
		t.Errorf("avatar should be yellow, got %v", cell.Color)
	}

	if strings.Contains(screen.String(), "Press SPACE") {
		t.Error("no overlay expected while playing")
	}
}

func TestDrawFrameObstacles(t *testing.T) {
	session := game.NewSession(config.Default(), 1)
	activate := core.NewInputFrame()
	activate.Set(core.CommandActivate)
	session.Step(activate)

	// Run to just past the first spawn; keep the bird airborne so the run
	// does not end.
	for i := 0; i < 95; i++ {
		in := core.NewInputFrame()
		if i%15 == 0 {
			in.Set(core.CommandJump)
		}
		session.Step(in)
	}

	snap := session.Snapshot()
	if len(snap.Obstacles) == 0 {
		t.Fatal("expected at least one obstacle after the spawn interval")
	}

	screen := core.NewScreen(80, 24)
	DrawFrame(screen, snap)

	if !strings.ContainsRune(screen.String(), pipeChar) {
		t.Error("obstacle barriers should be drawn")
	}
}

func TestDrawFrameGameOverOverlay(t *testing.T) {
	snap := game.Snapshot{
		Phase:        game.PhaseGameOver,
		Score:        7,
		Avatar:       core.NewRect(235, 470, 30, 30),
		WorldW:       1000,
		WorldH:       600,
		GroundHeight: 100,
	}

	screen := core.NewScreen(80, 24)
	DrawFrame(screen, snap)

	out := screen.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over overlay missing")
	}
	if !strings.Contains(out, "Score: 7") {
		t.Error("final score missing from the overlay")
	}
}

func TestDrawFrameSurvivesTinyScreens(t *testing.T) {
	session := game.NewSession(config.Default(), 1)

	// Degenerate screens must not panic; drawing clips instead.
	for _, dim := range [][2]int{{1, 1}, {5, 3}, {2, 24}} {
		screen := core.NewScreen(dim[0], dim[1])
		DrawFrame(screen, session.Snapshot())
	}
}

func TestRenderScreenPlainContent(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "AB")
	s.SetColored(0, 1, '#', core.ColorGreen)

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "AB") {
		t.Errorf("first line should contain the text, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "#") {
		t.Errorf("second line should contain the colored cell, got %q", lines[1])
	}
}
