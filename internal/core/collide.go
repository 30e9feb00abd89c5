package core

// Body is a moving circle: the ball's kinematic state. Velocity uses the
// screen sign convention: positive VY points down.
type Body struct {
	X, Y   float64 // Center position
	VX, VY float64 // Velocity in units per second
	Radius float64
}

// pushEps is the extra separation applied after penetration correction so a
// corrected body does not re-collide on the next resolution pass.
const pushEps = 0.5

// ResolveCircleRect resolves a moving circle against an axis-aligned
// rectangle. If they overlap, the body's position is corrected to remove the
// penetration along the axis of least overlap and the matching velocity
// component is inverted; exactly one component flips per call. Returns false
// without mutating anything when there is no overlap.
//
// The same routine serves walls, paddle and bricks: it knows nothing about
// what the rectangle represents.
func ResolveCircleRect(b *Body, r RectF) bool {
	// Closest point on the rectangle to the circle center.
	cx := ClampF(b.X, r.X, r.Right())
	cy := ClampF(b.Y, r.Y, r.Bottom())

	dx := b.X - cx
	dy := b.Y - cy
	if dx*dx+dy*dy > b.Radius*b.Radius {
		return false
	}

	if dx == 0 && dy == 0 {
		// Center inside the rectangle: push out through the nearest edge.
		resolveInside(b, r)
		return true
	}

	overlapX := b.Radius - AbsF(dx)
	overlapY := b.Radius - AbsF(dy)

	if overlapX < overlapY {
		if dx > 0 {
			b.X += overlapX + pushEps
		} else {
			b.X -= overlapX + pushEps
		}
		b.VX = -b.VX
	} else {
		if dy > 0 {
			b.Y += overlapY + pushEps
		} else {
			b.Y -= overlapY + pushEps
		}
		b.VY = -b.VY
	}
	return true
}

// resolveInside handles the degenerate case where the circle center sits
// inside the rectangle. The body is ejected through whichever edge is
// closest; on equal distances the first minimum wins in the order
// left, right, top, bottom.
func resolveInside(b *Body, r RectF) {
	distLeft := b.X - r.X
	distRight := r.Right() - b.X
	distTop := b.Y - r.Y
	distBottom := r.Bottom() - b.Y

	min := distLeft
	edge := 0
	if distRight < min {
		min = distRight
		edge = 1
	}
	if distTop < min {
		min = distTop
		edge = 2
	}
	if distBottom < min {
		edge = 3
	}

	switch edge {
	case 0:
		b.X = r.X - b.Radius - pushEps
		b.VX = -b.VX
	case 1:
		b.X = r.Right() + b.Radius + pushEps
		b.VX = -b.VX
	case 2:
		b.Y = r.Y - b.Radius - pushEps
		b.VY = -b.VY
	case 3:
		b.Y = r.Bottom() + b.Radius + pushEps
		b.VY = -b.VY
	}
}
