// Package wire provides dependency injection for the arcade application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"sync"

	"github.com/example/arcade/internal/adapters/fs"
	"github.com/example/arcade/internal/adapters/launcher"
	"github.com/example/arcade/internal/adapters/sqlite"
	"github.com/example/arcade/internal/adapters/steamgrid"
	"github.com/example/arcade/internal/app"
	"github.com/example/arcade/internal/config"
	"github.com/example/arcade/internal/db"
	"github.com/example/arcade/internal/ports/primary"
)

var (
	cfg             *config.Config
	gameService     primary.GameService
	categoryService primary.CategoryService
	folderService   primary.FolderService
	syncService     primary.SyncService
	launchService   primary.LaunchService
	syncLogService  primary.SyncLogService
	once            sync.Once
)

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// GameService returns the singleton GameService instance.
func GameService() primary.GameService {
	once.Do(initServices)
	return gameService
}

// CategoryService returns the singleton CategoryService instance.
func CategoryService() primary.CategoryService {
	once.Do(initServices)
	return categoryService
}

// FolderService returns the singleton FolderService instance.
func FolderService() primary.FolderService {
	once.Do(initServices)
	return folderService
}

// SyncService returns the singleton SyncService instance.
func SyncService() primary.SyncService {
	once.Do(initServices)
	return syncService
}

// LaunchService returns the singleton LaunchService instance.
func LaunchService() primary.LaunchService {
	once.Do(initServices)
	return launchService
}

// SyncLogService returns the singleton SyncLogService instance.
func SyncLogService() primary.SyncLogService {
	once.Do(initServices)
	return syncLogService
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Repository adapters (secondary ports) with injected DB
	gameRepo := sqlite.NewGameRepository(database)
	categoryRepo := sqlite.NewCategoryRepository(database)
	pictureRepo := sqlite.NewPictureRepository(database)
	folderRepo := sqlite.NewFolderRepository(database)
	logRepo := sqlite.NewSyncLogRepository(database)

	// External adapters
	artClient := steamgrid.NewClient(cfg.APIKey)
	scanner := fs.NewScanner()
	execLauncher := launcher.NewExecLauncher()

	// Services (primary ports implementation)
	gameService = app.NewGameService(gameRepo, categoryRepo, pictureRepo, artClient)
	categoryService = app.NewCategoryService(categoryRepo, gameRepo, pictureRepo)
	folderService = app.NewFolderService(folderRepo)
	launchService = app.NewLaunchService(gameRepo, categoryRepo, execLauncher)
	syncLogService = app.NewSyncLogService(logRepo)
	syncService = app.NewSyncService(
		folderRepo, gameRepo, pictureRepo, logRepo,
		scanner, artClient, gameService, categoryService,
	)
}
