package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JamieStevensDev/Angry-nerds/internal/core"
	"github.com/JamieStevensDev/Angry-nerds/internal/games/angry"
	"github.com/JamieStevensDev/Angry-nerds/internal/platform/window"
	"github.com/JamieStevensDev/Angry-nerds/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the game in a desktop window.

Controls:
  Mouse drag  - Pull back from the alien and release to launch
  Space       - Continue (title, instructions, after a round)
  P           - Pause
  R           - Replay straight away after a round
  Esc/Q       - Quit`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(angry.ID, gameOptions())
	if err != nil {
		logger.Error("could not create game", "error", err)
		closeLog()
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		TickRate: flagFPS,
		Seed:     seed,
	}

	runErr := window.Run(game, cfg, logger)
	if runErr != nil {
		logger.Error("window closed with error", "error", runErr)
	}
	closeLog()

	if runErr != nil {
		os.Exit(1)
	}
}
