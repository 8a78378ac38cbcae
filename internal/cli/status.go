package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/arcade/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a summary of the local game catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			categories, err := wire.CategoryService().ListCategories(ctx)
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}
			folders, err := wire.FolderService().ListFolders(ctx)
			if err != nil {
				return fmt.Errorf("failed to list folders: %w", err)
			}

			total := 0
			for _, c := range categories {
				total += c.GameCount
			}

			bold := color.New(color.Bold)
			bold.Printf("Catalog: %d game(s) in %d categor(ies)\n\n", total, len(categories))

			for _, c := range categories {
				fmt.Printf("  %-12s %d game(s)\n", c.Name, c.GameCount)
			}

			fmt.Printf("\nLookup folders (%d):\n", len(folders))
			for _, f := range folders {
				fmt.Printf("  %-10s %s\n", f.ID, f.Location)
			}

			entries, err := wire.SyncLogService().ListEntries(ctx, 1)
			if err != nil {
				return fmt.Errorf("failed to read sync log: %w", err)
			}
			if len(entries) > 0 {
				fmt.Printf("\nLast sync activity: %s (%s %s)\n",
					entries[0].CreatedAt, entries[0].Action, entries[0].GameName)
			} else {
				fmt.Println("\nNo sync activity recorded yet")
			}

			return nil
		},
	}
}
