package tui

import (
	"fmt"

	"github.com/vovakirdan/flappybird-tui/internal/core"
	"github.com/vovakirdan/flappybird-tui/internal/game"
)

// Visual characters for rendering
const (
	avatarChar    = '●'
	avatarEyeChar = '▶'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
)

// DrawFrame renders a session snapshot into the screen buffer. The
// simulation runs in world units; everything here is scaled onto the cell
// grid, so resizes never touch the core.
func DrawFrame(dst *core.Screen, snap game.Snapshot) {
	dst.Clear()

	sx := float64(dst.Width()) / snap.WorldW
	sy := float64(dst.Height()) / snap.WorldH

	drawGround(dst, snap, sy)
	for _, o := range snap.Obstacles {
		drawObstacle(dst, o, sx, sy)
	}
	drawAvatar(dst, snap.Avatar, sx, sy)

	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))

	switch snap.Phase {
	case game.PhaseStartScreen:
		drawCenteredMessage(dst, "FLAPPY BIRD", "Press SPACE to start")
	case game.PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press SPACE to restart", snap.Score))
	}
}

// cellRect converts a world-unit rectangle to cell coordinates, keeping
// on-screen entities at least one cell wide and tall.
func cellRect(r core.Rect, sx, sy float64) (x, y, w, h int) {
	x = int(r.X * sx)
	y = int(r.Y * sy)
	w = max(1, int(r.W*sx))
	h = max(1, int(r.H*sy))
	return x, y, w, h
}

func drawGround(dst *core.Screen, snap game.Snapshot, sy float64) {
	groundRow := int((snap.WorldH - snap.GroundHeight) * sy)
	groundRow = min(groundRow, dst.Height()-1)
	for y := groundRow; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), groundChar, core.ColorOrange)
	}
}

func drawObstacle(dst *core.Screen, o game.ObstacleView, sx, sy float64) {
	x, _, w, _ := cellRect(o.Top, sx, sy)

	// Top barrier spans from the top of the screen down to the gap.
	topEnd := int(o.Top.Bottom() * sy)
	for y := 0; y < topEnd; y++ {
		dst.DrawHLine(x, y, w, pipeChar, core.ColorGreen)
	}
	if topEnd > 0 {
		dst.DrawHLine(x, topEnd-1, w, pipeCapTop, core.ColorGreen)
	}

	// Bottom barrier spans from below the gap down to the ground line.
	bottomStart := int(o.Bottom.Y * sy)
	bottomEnd := int(o.Bottom.Bottom() * sy)
	for y := bottomStart; y < bottomEnd; y++ {
		dst.DrawHLine(x, y, w, pipeChar, core.ColorGreen)
	}
	if bottomStart < bottomEnd {
		dst.DrawHLine(x, bottomStart, w, pipeCapBottom, core.ColorGreen)
	}
}

func drawAvatar(dst *core.Screen, r core.Rect, sx, sy float64) {
	x, y, w, h := cellRect(r, sx, sy)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			if dx == w-1 && dy == 0 {
				dst.SetColored(x+dx, y+dy, avatarEyeChar, core.ColorYellow)
			} else {
				dst.SetColored(x+dx, y+dy, avatarChar, core.ColorYellow)
			}
		}
	}
}

// drawCenteredMessage draws a boxed message in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
