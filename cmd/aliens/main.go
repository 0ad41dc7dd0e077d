// aliens is a terminal Space Invaders-style shooter.
//
// Usage:
//
//	aliens play [game]       - Play (default: classic mode)
//	aliens list              - List available game modes
//	aliens scores <game>     - Show high scores
//	aliens serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (0 = use game config)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.aliens/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/arcadelab/aliens/internal/games/aliens"
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
	Use:   "aliens",
	Short: "It Was Aliens - a terminal invader shooter",
	Long: `It Was Aliens is a terminal shooter: hold the line at the bottom of
the screen while the alien swarm snakes its way down toward you.

Available commands:
  list     - Show available game modes
  play     - Play a game mode
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  aliens play
  aliens play aliens_zen
  aliens play --difficulty hard
  aliens scores aliens
  aliens serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = use game config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.aliens/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
