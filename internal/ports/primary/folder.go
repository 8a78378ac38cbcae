package primary

import "context"

// FolderService defines the primary port for lookup-folder administration.
type FolderService interface {
	// AddFolder registers a directory for executable discovery, returning
	// the existing record if the location is already registered.
	AddFolder(ctx context.Context, location string) (*Folder, error)

	// ListFolders retrieves all registered lookup folders.
	ListFolders(ctx context.Context) ([]*Folder, error)

	// RemoveFolder unregisters a lookup folder by location.
	RemoveFolder(ctx context.Context, location string) error
}

// Folder represents a lookup folder at the port boundary.
type Folder struct {
	ID        string
	Location  string
	CreatedAt string
}
