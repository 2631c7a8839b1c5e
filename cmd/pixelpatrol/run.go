package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pixelrip/pixelpatrol/internal/cart"
	"github.com/pixelrip/pixelpatrol/internal/carts/patrol"
	"github.com/pixelrip/pixelpatrol/internal/core"
	"github.com/pixelrip/pixelpatrol/internal/platform/tui"
)

var flagConfig string

var runCmd = &cobra.Command{
	Use:   "run <cart>",
	Short: "Run a cart",
	Long: `Run the specified cart.

Controls:
  Arrows/WASD - Move (player carts)
  P/Esc       - Pause
  R           - Reset
  Q/Ctrl+C    - Quit

Examples:
  pixelpatrol run patrol
  pixelpatrol run patrol --config ./my-patrol.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom cart config YAML")
}

func runRun(cmd *cobra.Command, args []string) {
	cartID := args[0]

	if !cart.Exists(cartID) {
		logger.Error("unknown cart", "cart", cartID)
		logger.Info("run 'pixelpatrol list' to see available carts")
		os.Exit(1)
	}

	cfg := core.DefaultConfig()
	cfg.TickRate = flagFPS

	// The half-block renderer needs one terminal column per pixel and one
	// row per two pixel rows.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < cfg.ConsoleW || h < cfg.ConsoleH/2 {
			logger.Warn("terminal smaller than the console; frame will be cropped",
				"need", [2]int{cfg.ConsoleW, cfg.ConsoleH / 2},
				"have", [2]int{w, h})
		}
	}

	// Set config path for carts before creation
	switch cartID {
	case "patrol":
		patrol.SetConfigPath(flagConfig)
	}

	c, err := cart.Create(cartID)
	if err != nil {
		logger.Error("creating cart", "error", err)
		os.Exit(1)
	}

	if err := tui.Run(c, cfg); err != nil {
		logger.Error("running cart", "error", err)
		os.Exit(1)
	}
}
