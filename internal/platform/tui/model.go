package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vkondrat/brickout/internal/config"
	"github.com/vkondrat/brickout/internal/core"
	"github.com/vkondrat/brickout/internal/game"
	"github.com/vkondrat/brickout/internal/storage"
)

// Options configures a game session model.
type Options struct {
	// FPS is the frame rate of the render/tick loop.
	FPS int

	// Seed for the serve direction source. Zero means time-based.
	Seed int64

	// Store receives finished rounds. May be nil to play without saving.
	Store *storage.Store

	// Initial terminal size. Updated by resize messages.
	Width  int
	Height int
}

// Model is the Bubble Tea model running one brickout session. It owns the
// frame clock: each frame message carries a timestamp, the model derives dt
// from the previous one and clamps it to the configured maximum before the
// simulation tick. Input handlers route only into the game's input mapper
// and the start trigger; the tick stays the single writer of physical state.
type Model struct {
	game   *game.Game
	mapper *game.Mapper
	canvas *Canvas
	store  *storage.Store
	keys   *KeyMapper

	fps       int
	lastFrame time.Time

	quitting   bool
	roundSaved bool
}

// NewModel creates a session model for the given game.
func NewModel(g *game.Game, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}
	if opts.Height <= 0 {
		opts.Height = 24
	}

	cfg := g.Config()
	screen := core.NewScreen(opts.Width, opts.Height)
	canvas := NewCanvas(screen, cfg.Playfield.Width, cfg.Playfield.Height)

	mapper := game.NewMapper(g)
	mapper.SetViewport(0, 0, float64(opts.Width), float64(opts.Height))

	return Model{
		game:   g,
		mapper: mapper,
		canvas: canvas,
		store:  opts.Store,
		keys:   NewKeyMapper(),
		fps:    opts.FPS,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case ActionLeft:
		m.mapper.NudgeLeft()
	case ActionRight:
		m.mapper.NudgeRight()
	case ActionStart:
		m.start()
	}

	return m, nil
}

// handleMouse routes pointer events. A click outside of play doubles as the
// start trigger, matching the tap-to-start behavior of the key binding.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.game.Mode() != game.ModePlaying {
			m.start()
			return m, nil
		}
		m.mapper.PointerDown(float64(msg.X), float64(msg.Y))
	case tea.MouseActionMotion:
		m.mapper.PointerMove(float64(msg.X), float64(msg.Y))
	case tea.MouseActionRelease:
		m.mapper.PointerUp()
	}

	return m, nil
}

// handleResize processes window resize events. The playfield keeps its
// internal dimensions; only the projection and the input transform change,
// so the round survives a resize.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width <= 0 || msg.Height <= 0 {
		return m, nil
	}
	m.canvas.Screen().Resize(msg.Width, msg.Height)
	m.mapper.SetViewport(0, 0, float64(msg.Width), float64(msg.Height))
	m.mapper.PointerUp()
	return m, nil
}

// handleFrame advances the simulation by the clamped frame delta.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	cfg := m.game.Config()

	dt := 0.0
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame).Seconds()
	}
	m.lastFrame = now

	// Clamp here, in the caller: the simulation trusts its dt.
	if dt > cfg.Gameplay.MaxDT {
		dt = cfg.Gameplay.MaxDT
	}
	if dt < 0 {
		dt = 0
	}

	m.game.Tick(dt)

	// Persist each finished round once.
	mode := m.game.Mode()
	if (mode == game.ModeWin || mode == game.ModeLose) && !m.roundSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveRound(m.game.Score(), mode == game.ModeWin)
		}
		m.roundSaved = true
	}

	return m, frameCmd(m.fps)
}

// start fires the start trigger and rearms the round-save latch.
func (m *Model) start() {
	if m.game.Mode() == game.ModePlaying {
		return
	}
	m.game.Start()
	m.roundSaved = false
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.canvas.Screen())
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.Config, opts Options) error {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g, err := game.New(cfg, game.NewSimpleRNG(seed))
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		NewModel(g, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Drag reporting for the paddle
	)

	_, err = p.Run()
	return err
}
