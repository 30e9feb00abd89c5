package game

import "math"

// Snapshot contains the complete round state in primitive fields, used by
// the determinism tests to compare two runs.
type Snapshot struct {
	Tick  uint64
	Mode  int
	Score int
	Lives int

	PaddleX       float64
	PaddleTargetX float64

	BallX  float64
	BallY  float64
	BallVX float64
	BallVY float64

	// Alive flags, row-major.
	Bricks []bool
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]bool, len(g.bricks))
	for i := range g.bricks {
		bricks[i] = g.bricks[i].Alive
	}

	return Snapshot{
		Tick:          g.tick,
		Mode:          int(g.mode),
		Score:         g.score,
		Lives:         g.lives,
		PaddleX:       g.paddle.X,
		PaddleTargetX: g.paddle.TargetX,
		BallX:         g.ball.X,
		BallY:         g.ball.Y,
		BallVX:        g.ball.VX,
		BallVY:        g.ball.VY,
		Bricks:        bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Float fields hash by their bit patterns, so even sub-epsilon divergence
// between two runs shows up.
func (s Snapshot) Hash() uint64 {
	h := s.Tick
	h = h*31 + uint64(s.Mode)  //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(s.Lives) //#nosec G115 -- hash computation

	h = h*31 + math.Float64bits(s.PaddleX)
	h = h*31 + math.Float64bits(s.PaddleTargetX)
	h = h*31 + math.Float64bits(s.BallX)
	h = h*31 + math.Float64bits(s.BallY)
	h = h*31 + math.Float64bits(s.BallVX)
	h = h*31 + math.Float64bits(s.BallVY)

	for _, alive := range s.Bricks {
		h *= 31
		if alive {
			h++
		}
	}

	return h
}
