package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JamieStevensDev/Angry-nerds/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Prints the configuration the game would use as YAML, after the
search order and --difficulty have been applied. Save the output to
~/.angry/configs/angry.yaml or ./configs/angry.yaml to customise it.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyPreset(&cfg, preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", source)
	if preset != "" {
		fmt.Printf("# difficulty: %s\n", preset)
	}
	fmt.Print(string(data))
}
