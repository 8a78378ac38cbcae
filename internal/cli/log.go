package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/arcade/internal/wire"
)

// LogCmd returns the log command
func LogCmd() *cobra.Command {
	var limit int
	var pruneDays int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the sync audit trail",
		Long: `Show what recent syncs did to the catalog, newest first.

Examples:
  arcade log                  # Recent entries
  arcade log --limit 100      # More history
  arcade log --prune-days 90  # Drop entries older than 90 days`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if pruneDays > 0 {
				pruned, err := wire.SyncLogService().Prune(ctx, pruneDays)
				if err != nil {
					return fmt.Errorf("failed to prune log: %w", err)
				}
				fmt.Printf("✓ Pruned %d entr(ies) older than %d days\n", pruned, pruneDays)
				return nil
			}

			if limit == 0 {
				limit = wire.Config().LogLimit
			}

			entries, err := wire.SyncLogService().ListEntries(ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to list log: %w", err)
			}

			if len(entries) == 0 {
				fmt.Println("No sync activity recorded")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tWHEN\tACTION\tGAME\tDETAIL")
			for _, entry := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					entry.ID, entry.CreatedAt, entry.Action, entry.GameName, entry.Detail)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of entries to show")
	cmd.Flags().IntVar(&pruneDays, "prune-days", 0, "Delete entries older than this many days")

	return cmd
}
