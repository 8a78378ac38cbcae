package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/arcade/internal/config"
	"github.com/example/arcade/internal/db"
	"github.com/example/arcade/internal/wire"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the arcade environment",
		Long: `Health check for the arcade setup.

Validates:
- Configuration directory and database file
- SteamGridDB API key presence
- Registered lookup folders still exist on disk

Examples:
  arcade doctor           # Run full health check
  arcade doctor --quiet   # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results := []CheckResult{
				checkConfigDir(),
				checkDatabase(),
				checkAPIKey(),
				checkLookupFolders(),
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Status != "✓" && r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'arcade init' to set up missing pieces.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

func checkConfigDir() CheckResult {
	dir, err := config.Dir()
	if err != nil {
		return CheckResult{Name: "Config directory", Status: "✗", Details: "  Cannot get home directory"}
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return CheckResult{Name: "Config directory", Status: "✗", Details: "  ~/.arcade/ missing, run 'arcade init'"}
	}
	return CheckResult{Name: "Config directory", Status: "✓"}
}

func checkDatabase() CheckResult {
	dbPath, err := db.Path()
	if err != nil {
		return CheckResult{Name: "Database", Status: "✗", Details: "  Cannot resolve database path"}
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return CheckResult{Name: "Database", Status: "✗", Details: "  Database missing, run 'arcade init'"}
	}
	return CheckResult{Name: "Database", Status: "✓"}
}

func checkAPIKey() CheckResult {
	if wire.Config().APIKey == "" {
		return CheckResult{
			Name:    "API key",
			Status:  "⚠",
			Details: "  No SteamGridDB API key configured; 'arcade sync' will not match games",
		}
	}
	return CheckResult{Name: "API key", Status: "✓"}
}

func checkLookupFolders() CheckResult {
	folders, err := wire.FolderService().ListFolders(context.Background())
	if err != nil {
		return CheckResult{Name: "Lookup folders", Status: "✗", Details: fmt.Sprintf("  %v", err)}
	}
	if len(folders) == 0 {
		return CheckResult{
			Name:    "Lookup folders",
			Status:  "⚠",
			Details: "  No lookup folders registered; 'arcade folder add' to register one",
		}
	}

	var missing []string
	for _, folder := range folders {
		if _, err := os.Stat(folder.Location); os.IsNotExist(err) {
			missing = append(missing, "  "+folder.Location)
		}
	}
	if len(missing) > 0 {
		details := "  Registered but missing on disk:\n"
		for _, m := range missing {
			details += m + "\n"
		}
		return CheckResult{Name: "Lookup folders", Status: "⚠", Details: details}
	}

	return CheckResult{Name: "Lookup folders", Status: "✓"}
}
