// angry is a slingshot game for the terminal and the desktop.
//
// Usage:
//
//	angry play [game]        - Play in the terminal (mouse drag to launch)
//	angry window             - Play in a desktop window
//	angry levels [dir]       - List built-in levels or the levels in dir
//	angry config             - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for the backdrop choice
//	--config <path>       - Custom config YAML
//	--level <id|path>     - Level ID or level file (.yaml, .yml, .toml)
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write logs to a file (terminal mode)
//	--debug               - Log pointer events and other debug output
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JamieStevensDev/Angry-nerds/internal/registry"

	// Import games to register them
	_ "github.com/JamieStevensDev/Angry-nerds/internal/games/angry"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagLevel      string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "angry",
	Short: "Angry Nerds - fling aliens at cows",
	Long: `Angry Nerds is a slingshot game. Click and drag from the alien, release
to launch it, and capture every cow before you run out of aliens.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  levels   - List levels
  config   - Show the effective configuration

Examples:
  angry play
  angry play --level tower.toml --difficulty hard
  angry window --seed 3
  angry levels ./my-levels
  angry config --difficulty easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level ID or level file (default: built-in classic)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// gameOptions collects the flags every game factory understands.
func gameOptions() registry.Options {
	return registry.Options{
		ConfigPath: flagConfig,
		LevelPath:  flagLevel,
		Difficulty: flagDifficulty,
	}
}
