package tui

import (
	"github.com/vkondrat/brickout/internal/core"
)

// Canvas draws simulation-space shapes onto a terminal cell screen. The
// playfield is stretched over the whole screen: each axis scales
// independently, so the simulation never needs to know the terminal size or
// orientation.
type Canvas struct {
	screen *core.Screen
	fieldW float64
	fieldH float64
}

// NewCanvas creates a canvas projecting the given playfield dimensions onto
// the screen.
func NewCanvas(screen *core.Screen, fieldW, fieldH float64) *Canvas {
	return &Canvas{screen: screen, fieldW: fieldW, fieldH: fieldH}
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *core.Screen {
	return c.screen
}

// CellsPerUnit returns the screen-cell size of one playfield unit on each
// axis. Used to build the inverse transform for mouse input.
func (c *Canvas) CellsPerUnit() (float64, float64) {
	return float64(c.screen.Width()) / c.fieldW, float64(c.screen.Height()) / c.fieldH
}

// toCellX converts a playfield x coordinate to a screen column.
func (c *Canvas) toCellX(x float64) int {
	return int(x / c.fieldW * float64(c.screen.Width()))
}

// toCellY converts a playfield y coordinate to a screen row.
func (c *Canvas) toCellY(y float64) int {
	return int(y / c.fieldH * float64(c.screen.Height()))
}

// FillRect fills the cells covered by a playfield rectangle.
func (c *Canvas) FillRect(r core.RectF, glyph rune, col core.Color) {
	x0 := c.toCellX(r.X)
	y0 := c.toCellY(r.Y)
	x1 := c.toCellX(r.Right())
	y1 := c.toCellY(r.Bottom())

	// A rectangle narrower than one cell still draws one cell, otherwise
	// thin paddles and bricks vanish on small terminals.
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.screen.SetColored(x, y, glyph, col)
		}
	}
}

// FillCircle fills the cells covered by a playfield circle. At terminal
// resolution most circles are a single cell; larger radii get a rough disc.
func (c *Canvas) FillCircle(cx, cy, radius float64, glyph rune, col core.Color) {
	// The center cell always draws, so the ball never disappears when the
	// cell grid is coarser than the circle.
	c.screen.SetColored(c.toCellX(cx), c.toCellY(cy), glyph, col)

	x0 := c.toCellX(cx - radius)
	y0 := c.toCellY(cy - radius)
	x1 := c.toCellX(cx + radius)
	y1 := c.toCellY(cy + radius)

	sx, sy := c.CellsPerUnit()
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			// Cell center back in playfield units.
			px := (float64(x) + 0.5) / sx
			py := (float64(y) + 0.5) / sy
			dx := px - cx
			dy := py - cy
			if dx*dx+dy*dy <= radius*radius {
				c.screen.SetColored(x, y, glyph, col)
			}
		}
	}
}

// DrawText draws text with its left edge at a playfield position.
func (c *Canvas) DrawText(x, y float64, text string, col core.Color) {
	c.screen.DrawText(c.toCellX(x), c.toCellY(y), text, col)
}
