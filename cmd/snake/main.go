// snake is a terminal rendition of the classic single-screen snake game.
//
// Usage:
//
//	snake                - Play (same as "snake play")
//	snake play           - Play the game
//	snake config         - Print the effective configuration as YAML
//	snake keys           - List key bindings
//
// Global flags:
//
//	--fps <rate>         - Set frame rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible apple placement
//	--config <path>      - Use a specific config YAML
//	--log-file <path>    - Write logs to a file (default: no logging)
//	--log-level <level>  - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - eat apples, grow, don't bite yourself",
	Long: `Snake is a terminal rendition of the classic arcade game.

Steer the snake around a wrapping grid, eat apples to grow and score,
and avoid running into your own body.

Available commands:
  play     - Play the game (default)
  config   - Print the effective configuration
  keys     - List key bindings

Examples:
  snake
  snake play --seed 42
  snake --config ./my-snake.yaml
  snake --log-file /tmp/snake.log --log-level debug`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}
