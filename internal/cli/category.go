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

// CategoryCmd returns the category command
func CategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage game categories",
		Long:  "Create, list, show, and delete categories (e.g. VR, PC)",
	}

	cmd.AddCommand(categoryCreateCmd())
	cmd.AddCommand(categoryListCmd())
	cmd.AddCommand(categoryShowCmd())
	cmd.AddCommand(categoryDeleteCmd())

	return cmd
}

func categoryCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create a new category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := wire.CategoryService().CreateCategory(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to create category: %w", err)
			}

			fmt.Printf("✓ Category %s: %s\n", category.ID, category.Name)
			return nil
		},
	}
}

func categoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := wire.CategoryService().ListCategories(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			if len(categories) == 0 {
				fmt.Println("No categories found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tGAMES")
			for _, category := range categories {
				fmt.Fprintf(w, "%s\t%s\t%d\n", category.ID, category.Name, category.GameCount)
			}
			return w.Flush()
		},
	}
}

func categoryShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show a category and its games",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			name := args[0]

			category, err := wire.CategoryService().GetCategory(ctx, name)
			if err != nil {
				return fmt.Errorf("category not found: %w", err)
			}

			fmt.Printf("Category: %s (%s)\n", category.Name, category.ID)
			fmt.Printf("Created: %s\n", category.CreatedAt)
			fmt.Println()

			games, err := wire.GameService().ListGames(ctx, primary.GameFilters{Category: name})
			if err != nil {
				return fmt.Errorf("failed to list games: %w", err)
			}

			if len(games) == 0 {
				fmt.Println("No games in this category")
				return nil
			}

			fmt.Printf("Games (%d):\n", len(games))
			for _, game := range games {
				fmt.Printf("  %s: %s\n", game.ID, game.Name)
			}
			return nil
		},
	}
}

func categoryDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a category",
		Long:  "Delete a category. A category that still contains games requires --force, which deletes the games and their artwork too.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			if err := wire.CategoryService().DeleteCategory(context.Background(), name, force); err != nil {
				return fmt.Errorf("failed to delete category: %w", err)
			}

			fmt.Printf("✓ Deleted category %s\n", name)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Delete contained games too")

	return cmd
}
