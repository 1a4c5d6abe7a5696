package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/JamieStevensDev/Angry-nerds/internal/core"
	"github.com/JamieStevensDev/Angry-nerds/internal/games/angry"
	"github.com/JamieStevensDev/Angry-nerds/internal/platform/tui"
	"github.com/JamieStevensDev/Angry-nerds/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal. Your terminal must report mouse events.

Controls:
  Mouse drag  - Pull back from the alien and release to launch
  Space       - Continue (title, instructions, after a round)
  P           - Pause
  R           - Replay straight away after a round
  Ctrl+S      - Save a text screenshot
  Esc/Q       - Quit

Difficulty options:
  easy   - Weaker gravity, gentler arcs
  normal - Default physics
  hard   - Stronger gravity, faster shots

Examples:
  angry play
  angry play --difficulty hard
  angry play --level ./levels/tower.toml
  angry play --log-file angry.log --debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := angry.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		ids := make([]string, 0)
		for _, g := range registry.List() {
			ids = append(ids, g.ID)
		}
		fmt.Fprintf(os.Stderr, "Error: unknown game %q (available: %s)\n", gameID, strings.Join(ids, ", "))
		os.Exit(1)
	}

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

	// The terminal belongs to Bubble Tea, so logs go to a file or nowhere
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID, gameOptions())
	if err != nil {
		closeLog()
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, cfg, logger)
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
