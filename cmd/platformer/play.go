package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagLevelDir   string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level (first built-in level if omitted).

Controls:
  A/H/Left   - Move left
  D/L/Right  - Move right
  Space/W/Up - Jump (hold for a higher jump)
  P/Esc      - Pause
  R          - Restart the run
  Q/Ctrl+C   - Quit

Difficulty presets:
  easy   - More lives, more time, slower enemies
  normal - Default tuning
  hard   - Fewer lives, less time, faster enemies

Examples:
  platformer play
  platformer play caverns
  platformer play summit --difficulty hard
  platformer play meadow --config ./my-tuning.yaml
  platformer play custom-1 --level-dir ./levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom tuning config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagLevelDir, "level-dir", "", "Directory with user level YAML files")
}

// resolveLevel finds a level by ID among the built-ins and, if a level
// directory was given, among the user levels.
func resolveLevel(id string) (*platformer.Level, error) {
	if lvl, ok := platformer.GetLevelByID(id); ok {
		return lvl, nil
	}
	if flagLevelDir != "" {
		lvl, err := levels.NewLoader(flagLevelDir).LoadByID(id)
		if err == nil {
			return lvl, nil
		}
	}
	return nil, fmt.Errorf("unknown level %q", id)
}

func runPlay(cmd *cobra.Command, args []string) {
	level := platformer.GetLevel(0)
	if len(args) == 1 {
		var err error
		level, err = resolveLevel(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'platformer levels' to see available levels.")
			os.Exit(1)
		}
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	platformer.SetConfigPath(flagConfig)
	platformer.SetDifficultyPreset(flagDifficulty)
	platformer.SetLevel(level)

	game := platformer.New()

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
