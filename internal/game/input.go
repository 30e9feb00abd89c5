package game

import "github.com/vkondrat/brickout/internal/core"

// Mapper converts raw pointer and key events from a presentation surface
// into the paddle target position. It owns the transient drag state (grab
// offset, tracking flag) and never writes Paddle.X, the ball or the bricks:
// the tick remains the single writer of physical state.
//
// The surface reports pointer positions in its own coordinates (terminal
// cells, pixels). SetViewport establishes the linear transform back into
// playfield units.
type Mapper struct {
	game *Game

	// Display-to-playfield transform: playfield = (display - origin) * scale.
	originX float64
	originY float64
	scaleX  float64
	scaleY  float64

	dragging   bool
	grabOffset float64
}

// NewMapper creates a mapper for the given game with an identity transform.
func NewMapper(g *Game) *Mapper {
	return &Mapper{game: g, scaleX: 1, scaleY: 1}
}

// SetViewport sets the on-screen origin and size of the rendered playfield.
// Called on resize. Degenerate sizes leave the previous transform in place.
func (m *Mapper) SetViewport(originX, originY, displayW, displayH float64) {
	if displayW <= 0 || displayH <= 0 {
		return
	}
	m.originX = originX
	m.originY = originY
	m.scaleX = m.game.cfg.Playfield.Width / displayW
	m.scaleY = m.game.cfg.Playfield.Height / displayH
}

// ToPlayfield converts a display-space position into playfield units.
func (m *Mapper) ToPlayfield(displayX, displayY float64) (float64, float64) {
	return (displayX - m.originX) * m.scaleX, (displayY - m.originY) * m.scaleY
}

// PointerDown begins a drag. The offset between the grab point and the
// paddle center is recorded so the paddle does not snap its center to the
// pointer on the first move.
func (m *Mapper) PointerDown(displayX, displayY float64) {
	px, _ := m.ToPlayfield(displayX, displayY)
	m.dragging = true
	m.grabOffset = px - m.game.paddle.CenterX()
}

// PointerMove updates the paddle target while a drag is active. Moves
// without a preceding PointerDown are ignored.
func (m *Mapper) PointerMove(displayX, displayY float64) {
	if !m.dragging {
		return
	}
	px, _ := m.ToPlayfield(displayX, displayY)
	m.setTarget(px - m.grabOffset - m.game.paddle.Width/2)
}

// PointerUp ends the drag and clears the grab state. Also used for cancel.
func (m *Mapper) PointerUp() {
	m.dragging = false
	m.grabOffset = 0
}

// Dragging reports whether a drag is in progress.
func (m *Mapper) Dragging() bool {
	return m.dragging
}

// NudgeLeft moves the paddle target one key step to the left. Keyboard
// fallback for surfaces without pointer input.
func (m *Mapper) NudgeLeft() {
	m.setTarget(m.game.paddle.TargetX - m.game.cfg.Paddle.KeyStep)
}

// NudgeRight moves the paddle target one key step to the right.
func (m *Mapper) NudgeRight() {
	m.setTarget(m.game.paddle.TargetX + m.game.cfg.Paddle.KeyStep)
}

// setTarget writes the clamped paddle target. The only simulation field the
// mapper ever touches.
func (m *Mapper) setTarget(x float64) {
	g := m.game
	g.paddle.TargetX = core.ClampF(x, 0, g.cfg.Playfield.Width-g.paddle.Width)
}
