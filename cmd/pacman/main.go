// pacman is a terminal maze-chase arcade game.
//
// Usage:
//
//	pacman list              - List available game modes
//	pacman play [mode]       - Play (classic by default, or endless)
//	pacman serve             - Start SSH server for remote play
//	pacman scores [mode]     - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.pacman/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register its variants
	_ "github.com/vovakirdan/tui-pacman/internal/games/pacman"
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
	Use:   "pacman",
	Short: "Pacman - A maze-chase arcade game for your terminal",
	Long: `Pacman is a terminal-based maze-chase arcade game. Eat every pellet,
dodge the four ghosts, and grab power pellets to turn the tables.

Available commands:
  list     - Show available game modes
  play     - Play a game
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  pacman play
  pacman play pacman_endless
  pacman play --difficulty hard
  pacman serve --ssh :2222
  pacman scores pacman`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pacman/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
