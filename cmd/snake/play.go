package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	termdriver "github.com/vovakirdan/tui-snake/internal/platform/term"
)

const (
	driverTea   = "tea"
	driverTcell = "tcell"
)

var flagDriver string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a local game.

Controls:
  Arrows/WASD/hjkl  - Turn
  Q/Esc/Ctrl+C      - Quit

Drivers:
  tea    - Bubble Tea renderer (default)
  tcell  - Direct tcell screen with a blocking frame loop

Examples:
  snake play
  snake play --fps 10
  snake play --driver tcell --seed 42
  snake play --config ./my-snake.yaml --log-file snake.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDriver, "driver", driverTea, "Terminal driver: tea or tcell")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadRuntimeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, "snake")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch flagDriver {
	case driverTea:
		// Check terminal size before taking over the screen
		needW, needH := tui.BoardSize(cfg.Grid)
		needH += 2
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
			closeLog()
			fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH)
			os.Exit(1)
		}
		err = tui.Run(cfg, logger)

	case driverTcell:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = termdriver.Run(ctx, cfg, logger)
		stop()

	default:
		err = fmt.Errorf("unknown driver %q (want %s or %s)", flagDriver, driverTea, driverTcell)
	}

	// Close log before potential exit
	closeLog()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
