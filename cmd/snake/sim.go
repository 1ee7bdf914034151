package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/sim"
)

var (
	flagBoard bool
	flagTrace bool
)

var simCmd = &cobra.Command{
	Use:   "sim <script.yaml>",
	Short: "Run a scripted game on virtual time",
	Long: `Play a YAML script of signals and waits against a fresh game without a
terminal and print the final state. Time is virtual, so a run takes no
wall-clock time and is reproducible for a given seed.

Script format:
  - signal: up     # directional signal (left, up, right, down)
  - wait: 1500ms   # advance the clock, firing ticks and delayed views
  - tick: 3        # run ticks directly without moving the clock

Without --seed, sim uses seed 1 so runs are repeatable.

Examples:
  snake sim eat.yaml
  snake sim eat.yaml --board --trace
  snake sim eat.yaml --preset strict --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().BoolVar(&flagBoard, "board", false, "Print the final board")
	simCmd.Flags().BoolVar(&flagTrace, "trace", false, "Print the state after every step")
}

func runSim(_ *cobra.Command, args []string) {
	steps, err := sim.LoadScript(args[0])
	if err != nil {
		exitf("%v", err)
	}

	cfg, preset, err := loadGame()
	if err != nil {
		exitf("%v", err)
	}

	logger, closer, err := newLogger(os.Stderr)
	if err != nil {
		exitf("%v", err)
	}
	defer closer.Close()

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	runner := sim.NewRunner(cfg, string(preset),
		snake.WithSeed(seed),
		snake.WithLogger(logger),
	)
	defer runner.Close()

	frames := runner.Run(steps)
	if flagTrace {
		for i, f := range frames {
			fmt.Printf("#%d %s\n%s\n", i+1, f.Step, f.Snapshot)
		}
	}

	fmt.Print(runner.Session().Snapshot())
	for _, res := range runner.Results() {
		fmt.Printf("Game over: score %d, %s after %d ticks\n", res.Score, res.Reason, res.Ticks)
	}
	if flagBoard {
		fmt.Println()
		fmt.Println(runner.Board())
	}
}
