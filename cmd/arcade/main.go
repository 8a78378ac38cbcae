package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/arcade/internal/cli"
	"github.com/example/arcade/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "arcade",
		Short:   "arcade - local game library manager",
		Version: version.String(),
		Long: `arcade keeps a catalog of locally installed games. It scans registered
lookup folders for executables, resolves cover artwork from the grid
catalog, and launches games while tracking when they were last played.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.SyncCmd())
	rootCmd.AddCommand(cli.LaunchCmd())
	rootCmd.AddCommand(cli.LogCmd())

	// Entity commands
	rootCmd.AddCommand(cli.GameCmd())
	rootCmd.AddCommand(cli.CategoryCmd())
	rootCmd.AddCommand(cli.FolderCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
