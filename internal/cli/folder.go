package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/example/arcade/internal/wire"
)

// FolderCmd returns the folder command
func FolderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage lookup folders",
		Long:  "Register, list, and remove the directories scanned for game executables",
	}

	cmd.AddCommand(folderAddCmd())
	cmd.AddCommand(folderListCmd())
	cmd.AddCommand(folderRemoveCmd())

	return cmd
}

func folderAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [path]",
		Short: "Register a directory for game discovery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			folder, err := wire.FolderService().AddFolder(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("failed to add folder: %w", err)
			}

			fmt.Printf("✓ Registered %s: %s\n", folder.ID, folder.Location)
			fmt.Println("Run 'arcade sync' to pick up its games")
			return nil
		},
	}
}

func folderListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered lookup folders",
		RunE: func(cmd *cobra.Command, args []string) error {
			folders, err := wire.FolderService().ListFolders(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list folders: %w", err)
			}

			if len(folders) == 0 {
				fmt.Println("No lookup folders registered")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLOCATION\tADDED")
			for _, folder := range folders {
				fmt.Fprintf(w, "%s\t%s\t%s\n", folder.ID, folder.Location, folder.CreatedAt)
			}
			return w.Flush()
		},
	}
}

func folderRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove [path]",
		Short: "Unregister a lookup folder",
		Long:  "Unregister a lookup folder. Its games stay in the catalog until the next sync notices their executables are gone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location := args[0]

			if err := wire.FolderService().RemoveFolder(context.Background(), location); err != nil {
				return fmt.Errorf("failed to remove folder: %w", err)
			}

			fmt.Printf("✓ Unregistered %s\n", location)
			return nil
		},
	}
}
