// brickout is a terminal brick-breaker with continuous physics.
//
// Usage:
//
//	brickout                 - Play (same as 'brickout play')
//	brickout play            - Play in the local terminal
//	brickout scores          - Show recorded high scores
//	brickout serve           - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.brickout/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// flagDBPath is the scores database path shared by all subcommands.
var flagDBPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickout",
	Short: "Brickout - break bricks in your terminal",
	Long: `Brickout is a terminal brick-breaker: deflect the ball with the
paddle, clear the brick wall, keep your lives.

Available commands:
  play     - Play in the local terminal (default)
  scores   - View recorded high scores
  serve    - Start SSH server for remote play

Examples:
  brickout
  brickout play --fps 120
  brickout scores
  brickout serve --ssh :2222`,
	// Bare 'brickout' starts a game.
	Run: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickout/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
