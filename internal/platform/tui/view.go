package tui

import (
	"fmt"

	"github.com/vkondrat/brickout/internal/core"
	"github.com/vkondrat/brickout/internal/game"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// rowColors cycles brick colors by grid row.
var rowColors = []core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// Minimum terminal size for a playable field.
const (
	minScreenW = 30
	minScreenH = 12
)

// draw renders the full frame into the canvas screen buffer.
func (m Model) draw() {
	dst := m.canvas.Screen()
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorDefault)
		hint := fmt.Sprintf("Need %dx%d", minScreenW, minScreenH)
		dst.DrawTextCentered(dst.Height()/2+1, hint, core.ColorGray)
		return
	}

	cfg := m.game.Config()

	if m.game.Mode() == game.ModeMenu {
		m.drawMenu()
		return
	}

	// Bricks, colored per grid row.
	cols := cfg.Bricks.Cols
	for i, br := range m.game.Bricks() {
		if !br.Alive {
			continue
		}
		color := rowColors[(i/cols)%len(rowColors)]
		m.canvas.FillRect(br.Rect, BrickChar, color)
	}

	p := m.game.Paddle()
	m.canvas.FillRect(p.Rect(), PaddleChar, core.ColorBrightWhite)

	b := m.game.Ball()
	m.canvas.FillCircle(b.X, b.Y, b.Radius, BallChar, core.ColorBrightYellow)

	m.drawHUD()
	m.drawOverlay()
}

// drawHUD draws the score and lives line.
func (m Model) drawHUD() {
	dst := m.canvas.Screen()

	scoreText := fmt.Sprintf("Score: %d", m.game.Score())
	dst.DrawText(1, 0, scoreText, core.ColorWhite)

	livesText := fmt.Sprintf("Lives: %d", m.game.Lives())
	dst.DrawText(dst.Width()-len(livesText)-1, 0, livesText, core.ColorWhite)
}

// drawMenu draws the title screen.
func (m Model) drawMenu() {
	dst := m.canvas.Screen()
	mid := dst.Height() / 2

	dst.DrawTextCentered(mid-2, "B R I C K O U T", core.ColorBrightYellow)
	dst.DrawTextCentered(mid, "Drag or use A/D to move the paddle", core.ColorGray)
	dst.DrawTextCentered(mid+2, "Press SPACE or click to start", core.ColorWhite)
}

// drawOverlay draws the terminal-state message boxes.
func (m Model) drawOverlay() {
	switch m.game.Mode() {
	case game.ModeWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  SPACE to play again", m.game.Score())
		m.drawCenteredBox("YOU WIN!", subtitle)
	case game.ModeLose:
		subtitle := fmt.Sprintf("Score: %d  |  SPACE to retry", m.game.Score())
		m.drawCenteredBox("GAME OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (m Model) drawCenteredBox(title, subtitle string) {
	dst := m.canvas.Screen()
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title, core.ColorBrightWhite)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle, core.ColorGray)
}
