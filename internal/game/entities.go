// Package game implements the brickout simulation: entity model, dt-based
// physics, collision orchestration and the top-level game flow state machine.
// All geometry lives in playfield units; presentation layers scale to their
// own surface.
package game

import (
	"github.com/vkondrat/brickout/internal/config"
	"github.com/vkondrat/brickout/internal/core"
)

// Paddle is the player-controlled bat at the bottom of the playfield.
// X is the left edge; Y is fixed after creation. TargetX is the desired
// left-edge position written by input, approached smoothly each tick.
type Paddle struct {
	X       float64
	Y       float64
	Width   float64
	Height  float64
	TargetX float64
}

// Rect returns the paddle's collision rectangle.
func (p *Paddle) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the x coordinate of the paddle's center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Ball is the moving circle. It embeds the kinematic body consumed by the
// collision routines directly.
type Ball struct {
	core.Body
}

// Brick is a single destructible cell of the grid. Once Alive flips to
// false it never comes back within a round.
type Brick struct {
	Rect  core.RectF
	Alive bool
}

// NewBrickGrid builds the row-major brick slice for a fresh round. Layout is
// deterministic given the configuration: brick width is derived from the
// playfield width minus side margins, divided evenly across columns with
// fixed gaps.
func NewBrickGrid(cfg config.Config) []Brick {
	bw := cfg.BrickWidth()
	bricks := make([]Brick, 0, cfg.Bricks.Rows*cfg.Bricks.Cols)

	for row := 0; row < cfg.Bricks.Rows; row++ {
		y := cfg.Bricks.TopOffset + float64(row)*(cfg.Bricks.Height+cfg.Bricks.Gap)
		for col := 0; col < cfg.Bricks.Cols; col++ {
			x := cfg.Bricks.MarginX + float64(col)*(bw+cfg.Bricks.Gap)
			bricks = append(bricks, Brick{
				Rect:  core.NewRectF(x, y, bw, cfg.Bricks.Height),
				Alive: true,
			})
		}
	}

	return bricks
}
