package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows, h/j/k/l, w/a/s/d  - Steer (any of them starts a game)
  ?                         - More keys
  Q/Esc/Ctrl+C              - Quit

The snake can't reverse onto itself. It dies when it leaves the board or,
one second after the start, when it stops moving.

Presets:
  classic - Walls and standing still end the game
  strict  - Running into your own body also ends the game
  steady  - Speed stops increasing after ten apples

Without --preset, a picker shows the presets and their best scores.

Examples:
  snake play
  snake play --preset strict
  snake play --config ./my-snake.yaml --log-file snake.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		exitf("play needs a terminal; use 'snake sim' for headless runs")
	}
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(fd); err == nil {
		width, height = w, h
	}
	if width < tui.ScreenW || height < tui.ScreenH+1 {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs at least %dx%d\n",
			width, height, tui.ScreenW, tui.ScreenH+1)
	}

	// The alt screen owns the terminal, so logs only go to --log-file
	logger, closer, err := newLogger(io.Discard)
	if err != nil {
		exitf("%v", err)
	}
	defer closer.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	// Without an explicit --preset, let the player pick
	if !cmd.Flags().Changed("preset") {
		current, _ := config.ParsePreset(flagPreset)
		chosen, ok, selErr := tui.RunPresetSelector(store, current, width, height)
		if selErr != nil {
			exitf("%v", selErr)
		}
		if !ok {
			return
		}
		flagPreset = string(chosen)
	}

	cfg, preset, err := loadGame()
	if err != nil {
		exitf("%v", err)
	}

	logger.Info("starting game", "preset", preset, "seed", flagSeed)
	if err := tui.Run(tui.Options{
		Config:  cfg,
		Variant: string(preset),
		Seed:    flagSeed,
		Store:   store,
		Logger:  logger,
	}); err != nil {
		exitf("running game: %v", err)
	}
}
