package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List key bindings",
	Long:  `Shows every key the game responds to.`,
	Run:   runKeys,
}

func runKeys(_ *cobra.Command, _ []string) {
	var rows [][2]string
	for _, group := range tui.DefaultKeyMap().FullHelp() {
		for _, b := range group {
			rows = append(rows, [2]string{b.Help().Key, b.Help().Desc})
		}
	}

	// Calculate column widths
	maxKeyLen := 3 // "Key" header
	for _, r := range rows {
		if len(r[0]) > maxKeyLen {
			maxKeyLen = len(r[0])
		}
	}

	fmt.Println("Key bindings:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "Key", "Action")
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "---", "------")
	for _, r := range rows {
		fmt.Printf("  %-*s  %s\n", maxKeyLen, r[0], r[1])
	}

	fmt.Println()
	fmt.Println("Run 'snake play' to start.")
}
