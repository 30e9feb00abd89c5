package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vkondrat/brickout/internal/config"
	"github.com/vkondrat/brickout/internal/platform/tui"
	"github.com/vkondrat/brickout/internal/storage"
)

var (
	flagConfig string
	flagFPS    int
	flagSeed   int64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the local terminal",
	Long: `Start a game in the current terminal.

Controls:
  Mouse drag      - Move the paddle
  A/D or arrows   - Nudge the paddle
  Space/Enter     - Start / play again
  Q/Esc/Ctrl+C    - Quit

Examples:
  brickout play
  brickout play --fps 120
  brickout play --seed 42
  brickout play --config ./my-brickout.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagFPS, "fps", 60, "Frame rate of the render loop")
	playCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Serve direction seed (0 = random based on time)")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(cfg, tui.Options{
		FPS:    flagFPS,
		Seed:   flagSeed,
		Store:  store,
		Width:  width,
		Height: height,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
