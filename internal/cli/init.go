package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/arcade/internal/config"
	"github.com/example/arcade/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the arcade database and configuration",
		Long:  `Initialize the arcade database at ~/.arcade/arcade.db with the required schema, seed the default VR and PC categories, and write a starter config.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.Path()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing arcade database at %s\n", dbPath)

			database, err := db.GetDB()
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			if err := db.SeedCategories(database); err != nil {
				return fmt.Errorf("failed to seed categories: %w", err)
			}
			fmt.Println("✓ Default categories seeded (VR, PC)")

			configDir, err := config.Dir()
			if err != nil {
				return err
			}
			configPath, err := config.WriteTemplate(configDir)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Config file at %s\n", configPath)

			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  1. Put your SteamGridDB API key in the config file")
			fmt.Println("  2. arcade folder add /path/to/your/games")
			fmt.Println("  3. arcade sync")

			return nil
		},
	}
}
