package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration that play, serve and sim would use, after the
config file search and the preset are applied.

With --defaults, prints the built-in config file instead; it is a good
starting point for ~/.snake/configs/snake.yaml.

Examples:
  snake config
  snake config --preset steady
  snake config --defaults > ~/.snake/configs/snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, preset, err := loadGame()
	if err != nil {
		exitf("%v", err)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		exitf("encoding config: %v", err)
	}
	fmt.Printf("# preset: %s\n%s", preset, out)
}
