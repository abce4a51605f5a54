// popchain is a terminal arcade game: balloons of random colors rise
// from the bottom of the screen, and the player must pop them in the
// order dictated by a target color sequence before the round countdown
// runs out.
//
// Usage:
//
//	popchain play             - Play locally
//	popchain scores           - Show the high-score table
//	popchain serve            - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.popchain/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/ivasilev/popchain/internal/game"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "popchain",
	Short: "Popchain - pop balloons in sequence, in your terminal",
	Long: `Popchain is a terminal arcade game. Balloons of random colors rise
from the bottom of the play area; pop them in the order shown by the
target sequence. Correct pops score points, wrong pops cost health,
and the round countdown keeps you moving.

Available commands:
  play     - Play locally
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  popchain play
  popchain play --config ./my-rules.yaml
  popchain scores
  popchain serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.popchain/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
