package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadelab/aliens/internal/platform/tui"
	"github.com/arcadelab/aliens/internal/registry"
	"github.com/arcadelab/aliens/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Shows the top high scores for a game mode.

With --interactive, opens a browsable scoreboard where you can switch
between game modes.

Examples:
  aliens scores aliens
  aliens scores aliens_zen
  aliens scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores interactively")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	gameID := "aliens"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'aliens list' to see available game modes.")
		os.Exit(1)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading scores: %v\n", err)
		os.Exit(1)
	}

	if len(scores) == 0 {
		fmt.Printf("No scores recorded for %q yet.\n", gameID)
		fmt.Printf("Run 'aliens play %s' to set one.\n", gameID)
		return
	}

	fmt.Printf("Top scores for %q:\n\n", gameID)
	fmt.Printf("  %-5s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-5s  %-10s  %s\n", "----", "-----", "----")
	for i, s := range scores {
		fmt.Printf("  #%-4d  %-10d  %s\n", i+1, s.Score, s.CreatedAt.Format("2006-01-02 15:04"))
	}

	best, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("\nBest: %d\n", best)
	}
}
