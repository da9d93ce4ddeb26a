// journey runs the scene progression in a window or replays a recording.
//
// Usage:
//
//	journey play              - Open the game window
//	journey replay <file>     - Run a recording headless and print where it ended
//
// Global flags:
//
//	--config <path>     - Config file (default: ./configs/journey.yaml, then embedded)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/journey/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "journey",
	Short: "Journey - a short platforming story",
	Long: `Journey walks through a loading screen, two platforming levels and a
final celebration.

Controls:
  Left/Right   - Move
  Up/Space     - Jump
  Y/Enter      - Answer the final question

Examples:
  journey play
  journey play --watch --config ./configs/journey.yaml
  journey play --record run.json --seed 42
  journey replay run.json`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger builds the stderr logger shared by every command.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "journey",
		Level:           level,
	})
	return logger, nil
}

// loadConfig resolves --config, the local override and the embedded default.
func loadConfig() (*config.GameConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
