package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/arcade/internal/ports/primary"
	"github.com/example/arcade/internal/wire"
)

// GameCmd returns the game command
func GameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Manage games in the catalog",
		Long:  "List, inspect, and delete games, and export their artwork",
	}

	cmd.AddCommand(gameListCmd())
	cmd.AddCommand(gameShowCmd())
	cmd.AddCommand(gamePictureCmd())
	cmd.AddCommand(gameDeleteCmd())

	return cmd
}

func gameListCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List games, optionally filtered by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			games, err := wire.GameService().ListGames(context.Background(), primary.GameFilters{
				Category: category,
			})
			if err != nil {
				return fmt.Errorf("failed to list games: %w", err)
			}

			if len(games) == 0 {
				fmt.Println("No games found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tLAST PLAYED")
			for _, game := range games {
				lastPlayed := game.LastPlayed
				if lastPlayed == "" {
					lastPlayed = "never"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", game.ID, game.Name, game.Category, lastPlayed)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by category name")

	return cmd
}

func gameShowCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "show [name]",
		Short: "Show game details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			game, err := wire.GameService().GetGame(context.Background(), args[0], category)
			if err != nil {
				return fmt.Errorf("game not found: %w", err)
			}

			fmt.Printf("Game: %s (%s)\n", game.Name, game.ID)
			fmt.Printf("Category:   %s\n", game.Category)
			fmt.Printf("Executable: %s\n", game.Executable)
			fmt.Printf("Directory:  %s\n", game.ParentDirectory)
			fmt.Printf("Grid ID:    %d\n", game.GridID)
			if game.LastPlayed != "" {
				fmt.Printf("Last played: %s\n", game.LastPlayed)
			} else {
				fmt.Println("Last played: never")
			}
			fmt.Printf("Added:      %s\n", game.CreatedAt)

			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "PC", "Category the game belongs to")

	return cmd
}

func gamePictureCmd() *cobra.Command {
	var category, out string

	cmd := &cobra.Command{
		Use:   "picture [name]",
		Short: "Export a game's cover artwork to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			data, err := wire.GameService().GetPicture(context.Background(), name, category)
			if err != nil {
				return fmt.Errorf("failed to get picture: %w", err)
			}

			if out == "" {
				out = name + ".png"
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write picture: %w", err)
			}

			fmt.Printf("✓ Wrote %d bytes to %s\n", len(data), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "PC", "Category the game belongs to")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (defaults to <name>.png)")

	return cmd
}

func gameDeleteCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a game and its artwork",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := wire.GameService().DeleteGame(context.Background(), name, category); err != nil {
				return fmt.Errorf("failed to delete game: %w", err)
			}

			fmt.Printf("✓ Deleted %s\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "PC", "Category the game belongs to")

	return cmd
}
