package primary

import "context"

// LaunchService defines the primary port for starting games.
type LaunchService interface {
	// Launch looks up a game by (name, category), stamps last-played with
	// the current time, and starts the stored executable. The timestamp
	// records the launch attempt: it is written before the process starts
	// and is not reverted when the launch fails.
	Launch(ctx context.Context, req LaunchRequest) (*LaunchResponse, error)
}

// LaunchRequest identifies the game to launch.
type LaunchRequest struct {
	Name     string
	Category string
}

// LaunchResponse contains the result of a launch attempt.
type LaunchResponse struct {
	GameID     string
	Executable string
	LastPlayed string
}
