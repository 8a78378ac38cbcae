package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/arcade/internal/core/library"
	"github.com/example/arcade/internal/ports/primary"
	"github.com/example/arcade/internal/ports/secondary"
)

// SyncServiceImpl implements the SyncService interface. It orchestrates the
// full reconciliation pass: discovery, matching, planning, and application,
// writing an audit entry for every mutation and every dropped candidate.
type SyncServiceImpl struct {
	folderRepo      secondary.FolderRepository
	gameRepo        secondary.GameRepository
	pictureRepo     secondary.PictureRepository
	logRepo         secondary.SyncLogRepository
	scanner         secondary.Scanner
	artClient       secondary.ArtworkClient
	gameService     primary.GameService
	categoryService primary.CategoryService
	classify        library.Classifier
}

// NewSyncService creates a new SyncService with injected dependencies.
func NewSyncService(
	folderRepo secondary.FolderRepository,
	gameRepo secondary.GameRepository,
	pictureRepo secondary.PictureRepository,
	logRepo secondary.SyncLogRepository,
	scanner secondary.Scanner,
	artClient secondary.ArtworkClient,
	gameService primary.GameService,
	categoryService primary.CategoryService,
) *SyncServiceImpl {
	return &SyncServiceImpl{
		folderRepo:      folderRepo,
		gameRepo:        gameRepo,
		pictureRepo:     pictureRepo,
		logRepo:         logRepo,
		scanner:         scanner,
		artClient:       artClient,
		gameService:     gameService,
		categoryService: categoryService,
		classify:        library.ClassifyBySuffix,
	}
}

// Reconcile runs one full pass over every lookup folder. A second pass with
// no filesystem or catalog changes applies no further mutations.
func (s *SyncServiceImpl) Reconcile(ctx context.Context) (*primary.SyncReport, error) {
	report := &primary.SyncReport{}

	discovered, err := s.discover(ctx, report)
	if err != nil {
		return nil, err
	}

	candidates := s.match(ctx, discovered, report)

	stored, err := s.storedGames(ctx)
	if err != nil {
		return nil, err
	}

	plan := library.BuildPlan(candidates, stored)

	if err := s.apply(ctx, plan, report); err != nil {
		return nil, err
	}

	return report, nil
}

// discover scans every lookup folder and merges the results. A name found in
// two folders resolves to the later folder's executable.
func (s *SyncServiceImpl) discover(ctx context.Context, report *primary.SyncReport) (map[string]string, error) {
	folders, err := s.folderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lookup folders: %w", err)
	}

	discovered := make(map[string]string)
	for _, folder := range folders {
		found, err := s.scanner.Scan(ctx, folder.Location)
		if errors.Is(err, library.ErrNotFound) {
			report.FoldersMissing++
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan '%s': %w", folder.Location, err)
		}

		report.FoldersScanned++
		for name, executable := range found {
			discovered[name] = executable
		}
	}

	report.Discovered = len(discovered)
	return discovered, nil
}

// match resolves every discovered name against the artwork catalog. A
// candidate without an exact match is dropped from the pass; its stored
// counterpart, if any, will be removed by the plan. When every lookup fails
// upstream the report flags a systemic outage.
func (s *SyncServiceImpl) match(ctx context.Context, discovered map[string]string, report *primary.SyncReport) library.DiscoverySet {
	candidates := make(library.DiscoverySet)
	upstreamFailures := 0

	for name, executable := range discovered {
		gridID, err := s.artClient.SearchByName(ctx, name)
		if err != nil {
			detail := "no exact match"
			if errors.Is(err, library.ErrUpstreamUnavailable) {
				detail = "catalog unavailable"
				upstreamFailures++
			}
			report.Matches = append(report.Matches, primary.MatchResult{
				Name:   name,
				Detail: detail,
			})
			continue
		}

		report.Matches = append(report.Matches, primary.MatchResult{
			Name:    name,
			GridID:  gridID,
			Matched: true,
		})
		candidates[name] = library.Candidate{
			Name:       name,
			Executable: executable,
			Category:   s.classify(name),
			GridID:     gridID,
		}
	}

	report.UpstreamOutage = len(discovered) > 0 && upstreamFailures == len(discovered)
	return candidates
}

func (s *SyncServiceImpl) storedGames(ctx context.Context) ([]library.StoredGame, error) {
	records, err := s.gameRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	stored := make([]library.StoredGame, len(records))
	for i, r := range records {
		stored[i] = library.StoredGame{
			ID:         r.ID,
			Name:       r.Name,
			Executable: r.Executable,
		}
	}
	return stored, nil
}

// apply executes the plan: removals first, then path updates, then inserts.
// An insert that fails (missing artwork, upstream outage) is recorded as
// skipped and does not abort the rest of the pass.
func (s *SyncServiceImpl) apply(ctx context.Context, plan library.Plan, report *primary.SyncReport) error {
	for _, removal := range plan.Removals {
		if _, err := s.pictureRepo.DeleteByGame(ctx, removal.ID); err != nil {
			return fmt.Errorf("failed to delete pictures for '%s': %w", removal.Name, err)
		}
		if err := s.gameRepo.Delete(ctx, removal.ID); err != nil {
			return fmt.Errorf("failed to remove '%s': %w", removal.Name, err)
		}
		if err := s.logAction(ctx, "remove", removal.Name, "executable no longer present"); err != nil {
			return err
		}
		report.Removed = append(report.Removed, removal.Name)
	}

	for _, update := range plan.Updates {
		parent := library.ParentDirectory(update.Executable)
		if err := s.gameRepo.UpdateExecutable(ctx, update.GameID, update.Executable, parent); err != nil {
			return fmt.Errorf("failed to update '%s': %w", update.Name, err)
		}
		if err := s.logAction(ctx, "update", update.Name, "moved to "+update.Executable); err != nil {
			return err
		}
		report.Updated = append(report.Updated, update.Name)
	}

	for _, insert := range plan.Inserts {
		if _, err := s.categoryService.CreateCategory(ctx, insert.Category); err != nil {
			return fmt.Errorf("failed to ensure category '%s': %w", insert.Category, err)
		}

		_, err := s.gameService.CreateGame(ctx, primary.CreateGameRequest{
			Name:       insert.Name,
			Category:   insert.Category,
			Executable: insert.Executable,
			GridID:     insert.GridID,
		})
		if err != nil {
			report.Skipped = append(report.Skipped, primary.MatchResult{
				Name:   insert.Name,
				GridID: insert.GridID,
				Detail: err.Error(),
			})
			if err := s.logAction(ctx, "skip", insert.Name, err.Error()); err != nil {
				return err
			}
			continue
		}

		if err := s.logAction(ctx, "insert", insert.Name, fmt.Sprintf("grid %d, category %s", insert.GridID, insert.Category)); err != nil {
			return err
		}
		report.Inserted = append(report.Inserted, insert.Name)
	}

	return nil
}

func (s *SyncServiceImpl) logAction(ctx context.Context, action, gameName, detail string) error {
	nextID, err := s.logRepo.GetNextID(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate sync log ID: %w", err)
	}

	err = s.logRepo.Create(ctx, &secondary.SyncLogRecord{
		ID:       nextID,
		Action:   action,
		GameName: gameName,
		Detail:   detail,
	})
	if err != nil {
		return fmt.Errorf("failed to write sync log: %w", err)
	}

	return nil
}

// Ensure SyncServiceImpl implements the interface.
var _ primary.SyncService = (*SyncServiceImpl)(nil)
