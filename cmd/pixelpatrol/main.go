// pixelpatrol is a fantasy-console style sprite demo for the terminal.
//
// Usage:
//
//	pixelpatrol list             - List available carts
//	pixelpatrol run <cart>       - Run a cart
//	pixelpatrol browse           - Pick a cart interactively
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import carts to register them
	_ "github.com/pixelrip/pixelpatrol/internal/carts/patrol"
)

// flagFPS is the global tick rate flag.
var flagFPS int

// logger reports CLI-level warnings and errors.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "pixelpatrol",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pixelpatrol",
	Short: "Pixel Patrol - a sprite demo console for your terminal",
	Long: `Pixel Patrol renders a small fixed-function console in the terminal:
a 128x128 indexed-color screen, a sprite sheet, and demo carts driven by a
fixed-rate update/draw loop.

Available commands:
  list     - Show all available carts
  run      - Run a specific cart directly
  browse   - Interactive cart picker

Examples:
  pixelpatrol list
  pixelpatrol run patrol
  pixelpatrol run patrol --config ./my-patrol.yaml
  pixelpatrol browse`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(browseCmd)
}
