// snake is a wrap-around snake game for the terminal.
//
// Usage:
//
//	snake                    - Play locally (same as "snake play")
//	snake play               - Play locally
//	snake serve              - Serve independent games over SSH
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path>    - Game config YAML (default: search path, then built-in)
//	--fps <rate>       - Override the tick rate from config
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--log-file <path>  - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic wrap-around snake in your terminal",
	Long: `Snake moves on a board that wraps at every edge. Eat the apple to
grow; running into yourself starts you over. The board size and speed come
from the config file.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake play --driver tcell
  snake serve --ssh :2222
  snake config --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.Flags().StringVar(&flagDriver, "driver", driverTea, "Terminal driver: tea or tcell")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadRuntimeConfig loads the YAML config and applies flag overrides.
func loadRuntimeConfig() (core.RuntimeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return core.RuntimeConfig{}, err
	}
	if flagFPS > 0 {
		cfg.Speed.TicksPerSecond = flagFPS
	}
	return cfg.Runtime(flagSeed)
}

// newLogger returns a logger writing to path, or one that discards output
// when path is empty. The returned func closes the file.
func newLogger(path, prefix string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	//nolint:errcheck // Best-effort close on exit
	return logger, func() { f.Close() }, nil
}
