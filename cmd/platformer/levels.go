package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
)

var flagListLevelDir string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the built-in levels plus any user levels from --level-dir.`,
	Run:   runLevels,
}

func init() {
	levelsCmd.Flags().StringVar(&flagListLevelDir, "level-dir", "", "Directory with user level YAML files")
}

func runLevels(cmd *cobra.Command, args []string) {
	all := platformer.BuiltinLevels()

	if flagListLevelDir != "" {
		user, err := levels.NewLoader(flagListLevelDir).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not load user levels: %v\n", err)
		}
		all = append(all, user...)
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, l := range all {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Name", "Size")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "----", "----")

	for _, l := range all {
		width := 0
		if len(l.Rows) > 0 {
			width = len(l.Rows[0])
		}
		fmt.Printf("  %-*s  %-16s  %dx%d\n", maxIDLen, l.ID, l.Name, width, len(l.Rows))
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a level.")
}
