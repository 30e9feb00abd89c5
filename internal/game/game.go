package game

import (
	"fmt"
	"math"

	"github.com/vkondrat/brickout/internal/config"
	"github.com/vkondrat/brickout/internal/core"
)

// Mode is the top-level game flow state. Exactly one mode is active at a
// time.
type Mode int

const (
	ModeMenu    Mode = iota // Initial state, waiting for the start trigger
	ModePlaying             // Simulation running
	ModeWin                 // All bricks destroyed, terminal for the round
	ModeLose                // Lives exhausted, terminal for the round
	ModePaused              // Declared but unreachable: no transition in or out
)

// String returns the mode name for logging and persistence.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeWin:
		return "win"
	case ModeLose:
		return "lose"
	case ModePaused:
		return "paused"
	}
	return "unknown"
}

// Game owns all mutable round state: the paddle, ball, brick grid, score,
// lives and mode. Nothing is package-level; every instance is independent.
//
// Tick is the single writer of physical state. Input handlers must only
// write the paddle target (via Mapper) and call Start, never touch the ball
// or bricks.
type Game struct {
	cfg config.Config
	rng DirectionSource

	mode   Mode
	paddle Paddle
	ball   Ball
	bricks []Brick
	score  int
	lives  int
	tick   uint64
}

// New creates a game in menu mode. The configuration is validated up front
// so bad geometry fails here rather than mid-round. The direction source
// decides serve direction; pass a seeded SimpleRNG for normal play or a
// FixedDirection in tests.
func New(cfg config.Config, rng DirectionSource) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if rng == nil {
		return nil, fmt.Errorf("nil direction source")
	}
	return &Game{cfg: cfg, rng: rng, mode: ModeMenu}, nil
}

// Start is the start trigger: from menu, win or lose it begins a fresh
// round. Score resets to zero, lives to the configured count, a new brick
// grid is generated, the paddle is recentered and the ball is served.
// Calling Start while playing is ignored.
func (g *Game) Start() {
	if g.mode == ModePlaying {
		return
	}

	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.tick = 0
	g.bricks = NewBrickGrid(g.cfg)

	g.paddle = Paddle{
		X:      (g.cfg.Playfield.Width - g.cfg.Paddle.Width) / 2,
		Y:      g.cfg.Playfield.Height - g.cfg.Paddle.MarginBottom,
		Width:  g.cfg.Paddle.Width,
		Height: g.cfg.Paddle.Height,
	}
	g.paddle.TargetX = g.paddle.X

	g.serve()
	g.mode = ModePlaying
}

// Tick advances the simulation by dt seconds. No-op unless playing.
//
// dt is trusted to already be clamped by the caller (the frame loop bounds
// it to gameplay.max_dt); the simulation does not clamp internally. A
// single Euler step per tick means extreme dt or speed can tunnel through
// thin bricks, which is accepted.
func (g *Game) Tick(dt float64) {
	if g.mode != ModePlaying {
		return
	}
	g.tick++

	// Smooth the paddle toward its target. Exponential easing, not a snap,
	// so noisy pointer input does not jitter the paddle.
	g.paddle.X += (g.paddle.TargetX - g.paddle.X) * math.Min(1, dt*g.cfg.Paddle.Smoothing)
	g.paddle.X = core.ClampF(g.paddle.X, 0, g.cfg.Playfield.Width-g.paddle.Width)

	// Integrate ball position, then resolve everything it may have entered.
	g.ball.X += g.ball.VX * dt
	g.ball.Y += g.ball.VY * dt

	g.collide()
}

// collide runs the collision pipeline. The order is load-bearing: walls,
// then paddle, then bricks, then the out-of-bounds check, then the win
// check.
func (g *Game) collide() {
	b := &g.ball.Body
	w := g.cfg.Playfield.Width

	// Side and top walls clamp position and force velocity back inward.
	// There is no bottom wall: the bottom edge is the out-of-bounds exit.
	if b.X < b.Radius {
		b.X = b.Radius
		b.VX = core.AbsF(b.VX)
	}
	if b.X > w-b.Radius {
		b.X = w - b.Radius
		b.VX = -core.AbsF(b.VX)
	}
	if b.Y < b.Radius {
		b.Y = b.Radius
		b.VY = core.AbsF(b.VY)
	}

	// Paddle: the generic resolution handles position, but the bounce is
	// overridden for control. vy always ends upward, and vx comes from
	// where the ball struck the paddle (-0.5 left edge .. +0.5 right
	// edge), so the player can aim instead of getting glancing artifacts.
	if core.ResolveCircleRect(b, g.paddle.Rect()) {
		b.VY = -core.AbsF(b.VY)
		hit := core.ClampF((b.X-g.paddle.X)/g.paddle.Width-0.5, -0.5, 0.5)
		b.VX = hit * g.cfg.Ball.BounceSpeed
	}

	// Bricks in row-major order; only the first hit brick is destroyed
	// this tick, even when the ball touches several at once.
	for i := range g.bricks {
		br := &g.bricks[i]
		if !br.Alive {
			continue
		}
		if core.ResolveCircleRect(b, br.Rect) {
			br.Alive = false
			g.score += g.cfg.Bricks.Points
			break
		}
	}

	// Out of bounds: the ball's top edge has passed the playfield bottom.
	if b.Y-b.Radius > g.cfg.Playfield.Height {
		g.lives--
		if g.lives <= 0 {
			g.mode = ModeLose
			return
		}
		g.serve()
	}

	// Win the moment the last brick goes dark.
	if g.aliveBricks() == 0 {
		g.mode = ModeWin
	}
}

// serve places the ball at rest on the paddle center with a fresh velocity:
// fixed speed upward, horizontal drift in the direction the source picks.
func (g *Game) serve() {
	g.ball = Ball{Body: core.Body{
		X:      g.paddle.CenterX(),
		Y:      g.paddle.Y - g.cfg.Ball.Radius,
		VX:     g.rng.Sign() * g.cfg.Ball.ServeDrift,
		VY:     -g.cfg.Ball.ServeSpeed,
		Radius: g.cfg.Ball.Radius,
	}}
}

// aliveBricks counts bricks still standing.
func (g *Game) aliveBricks() int {
	n := 0
	for i := range g.bricks {
		if g.bricks[i].Alive {
			n++
		}
	}
	return n
}

// Mode returns the current game flow state.
func (g *Game) Mode() Mode { return g.mode }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Lives returns the remaining lives.
func (g *Game) Lives() int { return g.lives }

// Paddle returns a copy of the paddle for rendering.
func (g *Game) Paddle() Paddle { return g.paddle }

// Ball returns a copy of the ball for rendering.
func (g *Game) Ball() Ball { return g.ball }

// Bricks returns the brick slice for rendering. Callers must treat it as
// read-only.
func (g *Game) Bricks() []Brick { return g.bricks }

// Config returns the configuration the game was built with.
func (g *Game) Config() config.Config { return g.cfg }
