package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JamieStevensDev/Angry-nerds/internal/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [dir]",
	Short: "List levels",
	Long: `Shows the built-in levels, or every valid level file found under dir.
Files that fail to parse or validate are skipped.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	var (
		lvls []levels.Level
		err  error
	)
	if len(args) == 1 {
		lvls, err = levels.NewLoader(args[0]).LoadAll()
	} else {
		lvls, err = levels.Embedded()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if len(lvls) == 0 {
		fmt.Println("No levels found.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxNameLen := 2, 4 // "ID", "Name" headers
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-*s  %-*s  %7s  %9s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Targets", "Obstacles", "Source")
	fmt.Printf("  %-*s  %-*s  %7s  %9s  %s\n", maxIDLen, "--", maxNameLen, "----", "-------", "---------", "------")

	for _, l := range lvls {
		source := l.FilePath
		if source == "" {
			source = "built-in"
		}
		fmt.Printf("  %-*s  %-*s  %7d  %9d  %s\n", maxIDLen, l.ID, maxNameLen, l.Name, len(l.Targets), len(l.Obstacles), source)
	}

	fmt.Println()
	fmt.Println("Run 'angry play --level <id or file>' to play a level.")
}
