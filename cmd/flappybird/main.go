// flappybird is a terminal Flappy Bird: guide the bird through the gaps in
// scrolling pipes and score a point for every pipe you clear.
//
// Usage:
//
//	flappybird                      - Play with the default tuning
//	flappybird --seed 42            - Reproducible obstacle sequence
//	flappybird --config ./my.yaml   - Custom world/physics config
//
// Controls:
//
//	Space/Up/W - Jump (also starts and restarts the game)
//	Ctrl+S     - Save a screenshot
//	Q/Ctrl+C   - Quit
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappybird",
	Short: "Flappy Bird in your terminal",
	Long: `flappybird is a terminal rendition of the Flappy Bird arcade game.

The bird falls under gravity; press space to flap upward and steer it
through the gaps in the scrolling pipes. Each pipe you clear scores a
point. Touching a pipe or the ground ends the run.

Examples:
  flappybird
  flappybird --seed 42
  flappybird --fps 30
  flappybird --config ./my-tuning.yaml`,
	Run: runPlay,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}
