// platformer is a terminal tile platformer: run, jump, stomp enemies,
// collect coins, and reach the flag before the clock runs out.
//
// Usage:
//
//	platformer levels            - List available levels
//	platformer play [level]      - Play a level
//	platformer serve             - Start SSH server for remote play
//	platformer scores [level]    - Show best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.platformer/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
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
	Use:   "platformer",
	Short: "Tile Runner - a platformer in your terminal",
	Long: `Tile Runner is a terminal platformer with coyote time, jump
buffering, one-way platforms, and patrolling enemies.

Available commands:
  levels   - Show all available levels
  play     - Play a level
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  platformer levels
  platformer play meadow
  platformer play caverns --difficulty hard
  platformer serve --ssh :2222
  platformer scores meadow`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
