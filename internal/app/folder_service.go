package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/example/arcade/internal/core/library"
	"github.com/example/arcade/internal/ports/primary"
	"github.com/example/arcade/internal/ports/secondary"
)

// FolderServiceImpl implements the FolderService interface.
type FolderServiceImpl struct {
	folderRepo secondary.FolderRepository
}

// NewFolderService creates a new FolderService with injected dependencies.
func NewFolderService(folderRepo secondary.FolderRepository) *FolderServiceImpl {
	return &FolderServiceImpl{
		folderRepo: folderRepo,
	}
}

// AddFolder registers a directory for executable discovery. Locations are
// stored in cleaned form so "C:/Games/" and "C:/Games" register once.
func (s *FolderServiceImpl) AddFolder(ctx context.Context, location string) (*primary.Folder, error) {
	if location == "" {
		return nil, fmt.Errorf("folder location must not be empty")
	}
	location = filepath.Clean(location)

	existing, err := s.folderRepo.GetByLocation(ctx, location)
	if err == nil {
		return s.recordToFolder(existing), nil
	}
	if !errors.Is(err, library.ErrNotFound) {
		return nil, err
	}

	nextID, err := s.folderRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate folder ID: %w", err)
	}

	record := &secondary.FolderRecord{
		ID:       nextID,
		Location: location,
	}

	if err := s.folderRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to register lookup folder: %w", err)
	}

	created, err := s.folderRepo.GetByLocation(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch registered folder: %w", err)
	}

	return s.recordToFolder(created), nil
}

// ListFolders retrieves all registered lookup folders.
func (s *FolderServiceImpl) ListFolders(ctx context.Context) ([]*primary.Folder, error) {
	records, err := s.folderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lookup folders: %w", err)
	}

	folders := make([]*primary.Folder, len(records))
	for i, r := range records {
		folders[i] = s.recordToFolder(r)
	}
	return folders, nil
}

// RemoveFolder unregisters a lookup folder by location. Games discovered
// through the folder stay in the catalog until the next reconciliation pass
// notices their executables are gone.
func (s *FolderServiceImpl) RemoveFolder(ctx context.Context, location string) error {
	record, err := s.folderRepo.GetByLocation(ctx, filepath.Clean(location))
	if err != nil {
		return err
	}

	return s.folderRepo.Delete(ctx, record.ID)
}

func (s *FolderServiceImpl) recordToFolder(r *secondary.FolderRecord) *primary.Folder {
	return &primary.Folder{
		ID:        r.ID,
		Location:  r.Location,
		CreatedAt: r.CreatedAt,
	}
}

// Ensure FolderServiceImpl implements the interface.
var _ primary.FolderService = (*FolderServiceImpl)(nil)
