package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/arcade/internal/ports/primary"
	"github.com/example/arcade/internal/wire"
)

// LaunchCmd returns the launch command
func LaunchCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "launch [name]",
		Short: "Launch a game",
		Long: `Launch a game by name. The game starts detached in its own directory;
arcade records the launch time and returns immediately.

Examples:
  arcade launch "Half-Life 2"
  arcade launch BeatVR --category VR`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := wire.LaunchService().Launch(context.Background(), primary.LaunchRequest{
				Name:     args[0],
				Category: category,
			})
			if err != nil {
				return fmt.Errorf("failed to launch: %w", err)
			}

			fmt.Printf("✓ Launched %s (%s)\n", args[0], resp.Executable)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "PC", "Category the game belongs to")

	return cmd
}
