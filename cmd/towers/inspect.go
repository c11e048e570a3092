package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-towers/internal/games/towerdefense"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <frame>",
	Short: "Print a frame written by simulate --dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("cannot read frame: %w", err)
		}
		frame, err := towerdefense.DecodeFrame(data)
		if err != nil {
			return err
		}
		printFrame(frame)
		return nil
	},
}
