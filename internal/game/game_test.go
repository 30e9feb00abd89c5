package game

import (
	"math"
	"testing"

	"github.com/vkondrat/brickout/internal/config"
)

const testDT = 1.0 / 60.0

func newTestGame(t *testing.T, dir DirectionSource) *Game {
	t.Helper()
	g, err := New(config.Default(), dir)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Playfield.Width = 0
	if _, err := New(cfg, FixedDirection(1)); err == nil {
		t.Error("New() should reject a zero-width playfield")
	}

	if _, err := New(config.Default(), nil); err == nil {
		t.Error("New() should reject a nil direction source")
	}
}

func TestStartResetsRound(t *testing.T) {
	g := newTestGame(t, FixedDirection(1))

	if g.Mode() != ModeMenu {
		t.Fatalf("new game mode = %v, expected menu", g.Mode())
	}

	g.Start()

	if g.Mode() != ModePlaying {
		t.Errorf("mode after Start = %v, expected playing", g.Mode())
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, expected 0", g.Score())
	}
	if g.Lives() != 3 {
		t.Errorf("lives = %d, expected 3", g.Lives())
	}
	if got := g.aliveBricks(); got != 40 {
		t.Errorf("alive bricks = %d, expected 40", got)
	}

	// Paddle recentered: (360-60)/2 = 150, top at 640-30 = 610.
	if g.paddle.X != 150 || g.paddle.Y != 610 {
		t.Errorf("paddle at (%g,%g), expected (150,610)", g.paddle.X, g.paddle.Y)
	}
	if g.paddle.TargetX != g.paddle.X {
		t.Errorf("paddle target %g should match position %g", g.paddle.TargetX, g.paddle.X)
	}

	// Ball resting on the paddle center with a fresh serve velocity.
	if g.ball.X != 180 || g.ball.Y != 604 {
		t.Errorf("ball at (%g,%g), expected (180,604)", g.ball.X, g.ball.Y)
	}
	if g.ball.VY != -260 {
		t.Errorf("serve vy = %g, expected -260", g.ball.VY)
	}
	if g.ball.VX != 120 {
		t.Errorf("serve vx = %g, expected +120 for fixed direction +1", g.ball.VX)
	}
}

func TestStartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, FixedDirection(1))
	g.Start()

	for i := 0; i < 10; i++ {
		g.Tick(testDT)
	}

	before := g.Snapshot()
	g.Start()
	after := g.Snapshot()

	if before.Hash() != after.Hash() {
		t.Error("Start() during play should not reset the round")
	}
}

func TestStartTriggerLeavesTerminalStates(t *testing.T) {
	g := newTestGame(t, FixedDirection(1))
	g.Start()

	g.lives = 1
	g.ball.Y = g.cfg.Playfield.Height + g.ball.Radius + 1
	g.Tick(0)
	if g.Mode() != ModeLose {
		t.Fatalf("mode = %v, expected lose", g.Mode())
	}

	g.Start()
	if g.Mode() != ModePlaying {
		t.Errorf("mode after restart = %v, expected playing", g.Mode())
	}
	if g.Lives() != 3 || g.Score() != 0 || g.aliveBricks() != 40 {
		t.Error("restart should fully reset lives, score and bricks")
	}
}

func TestTickNoOpOutsidePlaying(t *testing.T) {
	g := newTestGame(t, FixedDirection(1))

	before := g.Snapshot().Hash()
	g.Tick(testDT)
	if g.Snapshot().Hash() != before {
		t.Error("Tick in menu mode should not mutate state")
	}
}

func TestPaddleSmoothing(t *testing.T) {
	g := newTestGame(t, FixedDirection(1))
	g.Start()

	// One 60fps tick covers dt*smoothing = 1/3 of the remaining distance.
	g.paddle.TargetX = 300
	g.Tick(testDT)
	if math.Abs(g.paddle.X-200) > 1e-6 {
		t.Errorf("paddle.X = %g after one tick, expected 200", g.paddle.X)
	}

	// A huge dt saturates the easing factor at 1: snap to target.
	g.Tick(1)
	if g.paddle.X != 300 {
		t.Errorf("paddle.X = %g after saturated tick, expected 300", g.paddle.X)
	}
}

func TestPaddleClampedToPlayfield(t *testing.T) {
	g := newTestGame(t, FixedDirection(1))
	g.Start()

	g.paddle.TargetX = 10000
	g.Tick(1)
	if g.paddle.X != 300 {
		t.Errorf("paddle.X = %g, expected clamp at 300 (playfield width - paddle width)", g.paddle.X)
	}

	g.paddle.TargetX = -10000
	g.Tick(1)
	if g.paddle.X != 0 {
		t.Errorf("paddle.X = %g, expected clamp at 0", g.paddle.X)
	}
}

func TestPaddleBounceCenterHit(t *testing.T) {
	g := newTestGame(t, FixedDirection(1))
	g.Start()

	// Ball dropping straight onto the paddle center.
	g.paddle.X = 150
	g.paddle.TargetX = 150
	g.paddle.Y = 600
	g.ball.X = 180
	g.ball.Y = 600
	g.ball.VX = 0
	g.ball.VY = 260

	g.Tick(testDT)

	if g.ball.VY != -260 {
		t.Errorf("vy = %g after paddle hit, expected -260 (forced upward)", g.ball.VY)
	}
	if g.ball.VX != 0 {
		t.Errorf("vx = %g after center hit, expected 0 (straight up)", g.ball.VX)
	}
	if g.ball.Y >= g.paddle.Y {
		t.Errorf("ball.Y = %g still inside paddle after resolution", g.ball.Y)
	}
}

func TestPaddleBounceAngleControl(t *testing.T) {
	tests := []struct {
		name   string
		ballX  float64
		wantVX float64
	}{
		{"left edge sends hard left", 150, -210},
		{"quarter left", 165, -105},
		{"center goes straight up", 180, 0},
		{"quarter right", 195, 105},
		{"right edge sends hard right", 210, 210},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t, FixedDirection(1))
			g.Start()

			g.paddle.X = 150
			g.paddle.TargetX = 150
			g.ball.X = tc.ballX
			g.ball.Y = g.paddle.Y - g.ball.Radius + 1 // slightly into the paddle
			g.ball.VX = 0
			g.ball.VY = 260

			g.Tick(0)

			if g.ball.VY >= 0 {
				t.Errorf("vy = %g, expected upward", g.ball.VY)
			}
			if math.Abs(g.ball.VX-tc.wantVX) > 1e-9 {
				t.Errorf("vx = %g, expected %g", g.ball.VX, tc.wantVX)
			}
		})
	}
}

func TestWallBounces(t *testing.T) {
	t.Run("left wall", func(t *testing.T) {
		g := newTestGame(t, FixedDirection(1))
		g.Start()

		g.ball.X = 2
		g.ball.Y = 300
		g.ball.VX = -50
		g.ball.VY = 10

		g.Tick(0)

		if g.ball.X != 6 {
			t.Errorf("ball.X = %g, expected clamp at radius 6", g.ball.X)
		}
		if g.ball.VX != 50 {
			t.Errorf("vx = %g, expected +50 (magnitude preserved, sign outward)", g.ball.VX)
		}
	})

	t.Run("right wall", func(t *testing.T) {
		g := newTestGame(t, FixedDirection(1))
		g.Start()

		g.ball.X = 358
		g.ball.Y = 300
		g.ball.VX = 75
		g.ball.VY = 10

		g.Tick(0)

		if g.ball.X != 354 {
			t.Errorf("ball.X = %g, expected clamp at width-radius 354", g.ball.X)
		}
		if g.ball.VX != -75 {
			t.Errorf("vx = %g, expected -75", g.ball.VX)
		}
	})

	t.Run("top wall", func(t *testing.T) {
		g := newTestGame(t, FixedDirection(1))
		g.Start()

		g.ball.X = 200
		g.ball.Y = 3
		g.ball.VX = 10
		g.ball.VY = -80

		g.Tick(0)

		if g.ball.Y != 6 {
			t.Errorf("ball.Y = %g, expected clamp at radius 6", g.ball.Y)
		}
		if g.ball.VY != 80 {
			t.Errorf("vy = %g, expected +80 (deflected downward)", g.ball.VY)
		}
	})
}

func TestBrickDestructionFirstHitWins(t *testing.T) {
	g := newTestGame(t, FixedDirection(1))
	g.Start()

	// Center the ball in the gap between the first two bricks of row 0 so
	// it overlaps both. Only the first in row-major order may die.
	b0 := g.bricks[0].Rect
	g.ball.X = b0.Right() + g.cfg.Bricks.Gap/2
	g.ball.Y = b0.Y + b0.H/2
	g.ball.VX = 50
	g.ball.VY = 30

	g.Tick(0)

	if g.bricks[0].Alive {
		t.Error("first brick should be destroyed")
	}
	if !g.bricks[1].Alive {
		t.Error("second brick should survive: at most one brick per tick")
	}
	if g.Score() != 10 {
		t.Errorf("score = %d, expected 10", g.Score())
	}
}

func TestClearingAllBricksWins(t *testing.T) {
	g := newTestGame(t, FixedDirection(1))
	g.Start()

	total := len(g.bricks)
	for i := 0; i < total; i++ {
		// Teleport the ball onto the first surviving brick and resolve.
		var target *Brick
		for j := range g.bricks {
			if g.bricks[j].Alive {
				target = &g.bricks[j]
				break
			}
		}
		if target == nil {
			t.Fatalf("ran out of bricks after %d hits", i)
		}

		g.ball.X = target.Rect.X + target.Rect.W/2
		g.ball.Y = target.Rect.Y + target.Rect.H/2
		g.ball.VX = 40
		g.ball.VY = 100

		prevScore := g.Score()
		g.Tick(0)

		if g.Score() != prevScore+10 {
			t.Fatalf("hit %d: score went %d -> %d, expected +10", i, prevScore, g.Score())
		}
	}

	if g.aliveBricks() != 0 {
		t.Errorf("%d bricks still alive after clearing pass", g.aliveBricks())
	}
	if g.Mode() != ModeWin {
		t.Errorf("mode = %v, expected win", g.Mode())
	}
	if g.Score() != total*10 {
		t.Errorf("score = %d, expected %d", g.Score(), total*10)
	}
}

func TestBottomExitCostsLifeAndReserves(t *testing.T) {
	g := newTestGame(t, FixedDirection(-1))
	g.Start()

	g.ball.X = 100
	g.ball.Y = g.cfg.Playfield.Height + g.ball.Radius + 1
	g.ball.VY = 300

	g.Tick(0)

	if g.Lives() != 2 {
		t.Errorf("lives = %d, expected 2", g.Lives())
	}
	if g.Mode() != ModePlaying {
		t.Errorf("mode = %v, expected still playing", g.Mode())
	}

	// Re-served on the paddle with a fresh velocity.
	if g.ball.X != g.paddle.CenterX() || g.ball.Y != g.paddle.Y-g.ball.Radius {
		t.Errorf("ball at (%g,%g), expected resting on paddle", g.ball.X, g.ball.Y)
	}
	if g.ball.VY != -260 {
		t.Errorf("serve vy = %g, expected -260", g.ball.VY)
	}
	if g.ball.VX != -120 {
		t.Errorf("serve vx = %g, expected -120 for fixed direction -1", g.ball.VX)
	}
}

func TestBallExactlyAtBottomEdgeIsNotOut(t *testing.T) {
	g := newTestGame(t, FixedDirection(1))
	g.Start()

	// Top edge exactly on the playfield bottom: not out yet.
	g.ball.X = 100
	g.ball.Y = g.cfg.Playfield.Height + g.ball.Radius

	g.Tick(0)

	if g.Lives() != 3 {
		t.Errorf("lives = %d, expected 3 (edge contact is not an exit)", g.Lives())
	}
}

func TestFinalLifeLoses(t *testing.T) {
	g := newTestGame(t, FixedDirection(1))
	g.Start()

	g.lives = 1
	g.ball.X = 100
	g.ball.Y = g.cfg.Playfield.Height + g.ball.Radius + 1

	g.Tick(0)

	if g.Lives() != 0 {
		t.Errorf("lives = %d, expected 0", g.Lives())
	}
	if g.Mode() != ModeLose {
		t.Errorf("mode = %v, expected lose", g.Mode())
	}
	if g.ball.Y != g.cfg.Playfield.Height+g.ball.Radius+1 {
		t.Error("ball should not be respawned on the final life loss")
	}

	// Terminal state: ticks do nothing until the start trigger.
	before := g.Snapshot().Hash()
	g.Tick(testDT)
	if g.Snapshot().Hash() != before {
		t.Error("Tick in lose mode should not mutate state")
	}
}

func TestInvariantsOverLongRun(t *testing.T) {
	g := newTestGame(t, NewSimpleRNG(7))
	g.Start()

	prev := g.Snapshot()
	for i := 0; i < 5000; i++ {
		g.Tick(testDT)
		snap := g.Snapshot()

		if snap.Lives > prev.Lives {
			t.Fatalf("tick %d: lives increased %d -> %d", i, prev.Lives, snap.Lives)
		}
		if snap.Score < prev.Score {
			t.Fatalf("tick %d: score decreased %d -> %d", i, prev.Score, snap.Score)
		}
		if d := snap.Score - prev.Score; d != 0 && d != 10 {
			t.Fatalf("tick %d: score jumped by %d, expected 0 or 10", i, d)
		}
		if g.Mode() == ModeWin && g.aliveBricks() != 0 {
			t.Fatalf("tick %d: won with %d bricks alive", i, g.aliveBricks())
		}
		if g.Mode() == ModeLose && snap.Lives != 0 {
			t.Fatalf("tick %d: lost with %d lives left", i, snap.Lives)
		}

		if g.Mode() != ModePlaying {
			break
		}
		prev = snap
	}
}

func TestDeterminism(t *testing.T) {
	run := func(seed int64) uint64 {
		g, err := New(config.Default(), NewSimpleRNG(seed))
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		m := NewMapper(g)
		g.Start()

		for i := 0; i < 2000; i++ {
			// Identical scripted input on both runs.
			switch {
			case i%90 == 30:
				m.NudgeLeft()
			case i%90 == 60:
				m.NudgeRight()
			}
			g.Tick(testDT)
			if g.Mode() != ModePlaying {
				break
			}
		}

		snap := g.Snapshot()
		return snap.Hash()
	}

	if h1, h2 := run(12345), run(12345); h1 != h2 {
		t.Errorf("same seed produced different hashes: %d vs %d", h1, h2)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeMenu, "menu"},
		{ModePlaying, "playing"},
		{ModeWin, "win"},
		{ModeLose, "lose"},
		{ModePaused, "paused"},
		{Mode(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.mode.String(); got != tc.want {
			t.Errorf("Mode(%d).String() = %q, expected %q", tc.mode, got, tc.want)
		}
	}
}
