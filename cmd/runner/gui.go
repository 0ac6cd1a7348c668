package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Start the runner in a desktop window. The window opens at the play
area size and can be resized; the picture scales with it.

Controls match the terminal version: arrows or A/D to move, Space to jump,
Enter to start, R to restart, Q or Esc to quit.

Examples:
  runner gui
  runner gui --difficulty hard --fps 120`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func runGUI(_ *cobra.Command, _ []string) {
	logger, logCloser, err := newLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	backend := openBackend(logger)
	game := newGame(gameCfg, backend, logger)

	runErr := gui.Run(game, backend, runtimeConfig(int(gameCfg.PlayArea.Width), int(gameCfg.PlayArea.Height)), logger)
	closeBackend(backend, logger)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
