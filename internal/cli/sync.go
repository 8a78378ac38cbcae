package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/arcade/internal/wire"
)

// SyncCmd returns the sync command
func SyncCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the catalog against the lookup folders",
		Long: `Scan every registered lookup folder for game executables, match them
against SteamGridDB, and bring the catalog in line: new games are added with
artwork, moved games get their paths updated, and games whose executables
disappeared are removed.

Running sync twice in a row without filesystem changes is a no-op.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := wire.SyncService().Reconcile(context.Background())
			if err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}

			green := color.New(color.FgGreen)
			yellow := color.New(color.FgYellow)
			red := color.New(color.FgRed)

			fmt.Printf("Scanned %d folder(s), %d candidate(s) discovered\n",
				report.FoldersScanned, report.Discovered)
			if report.FoldersMissing > 0 {
				yellow.Printf("⚠ %d registered folder(s) missing on disk\n", report.FoldersMissing)
			}
			if report.UpstreamOutage {
				red.Println("✗ SteamGridDB unreachable; no games were matched this pass")
			}

			if verbose {
				for _, m := range report.Matches {
					if m.Matched {
						fmt.Printf("  %-30s grid %d\n", m.Name, m.GridID)
					} else {
						fmt.Printf("  %-30s %s\n", m.Name, m.Detail)
					}
				}
			}

			for _, name := range report.Inserted {
				green.Printf("✓ added %s\n", name)
			}
			for _, name := range report.Updated {
				fmt.Printf("✓ updated %s\n", name)
			}
			for _, name := range report.Removed {
				red.Printf("✓ removed %s\n", name)
			}
			for _, skip := range report.Skipped {
				yellow.Printf("⚠ skipped %s: %s\n", skip.Name, skip.Detail)
			}

			if report.Mutations() == 0 {
				fmt.Println("Catalog already up to date")
			} else {
				fmt.Printf("\n%d change(s) applied\n", report.Mutations())
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show every candidate lookup")

	return cmd
}
