package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pixelrip/pixelpatrol/internal/cart"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available carts",
	Run: func(cmd *cobra.Command, args []string) {
		carts := cart.List()
		if len(carts) == 0 {
			fmt.Println("No carts registered.")
			return
		}

		fmt.Println("Available carts:")
		for _, c := range carts {
			fmt.Printf("  %-12s %s\n", c.ID, c.Title)
		}
		fmt.Println("\nRun a cart with: pixelpatrol run <cart>")
	},
}
