package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pixelrip/pixelpatrol/internal/platform/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Pick a cart interactively",
	Long:  "Show the cart browser and run the selected cart.",
	Run:   runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	selected, err := tui.RunBrowser(width, height)
	if err != nil {
		logger.Error("cart browser", "error", err)
		os.Exit(1)
	}

	// User quit without choosing
	if selected == "" {
		return
	}

	runRun(cmd, []string{selected})
}
