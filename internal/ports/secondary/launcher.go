package secondary

import "context"

// Launcher defines the secondary port for starting a game as an external
// process.
type Launcher interface {
	// Launch starts the executable in its parent directory as a detached
	// process. Returns an error wrapping library.ErrLaunchFailed when the
	// process cannot be started.
	Launch(ctx context.Context, executable string) error
}
