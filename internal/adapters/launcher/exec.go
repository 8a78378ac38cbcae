// Package launcher starts game executables as detached processes.
package launcher

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/example/arcade/internal/core/library"
	"github.com/example/arcade/internal/ports/secondary"
)

// ExecLauncher implements secondary.Launcher with os/exec.
type ExecLauncher struct{}

// NewExecLauncher creates a process launcher.
func NewExecLauncher() *ExecLauncher {
	return &ExecLauncher{}
}

// Launch starts the executable with its parent directory as the working
// directory and does not wait for it to exit. Games run for hours; the CLI
// returns as soon as the process has started.
func (l *ExecLauncher) Launch(ctx context.Context, executable string) error {
	cmd := exec.CommandContext(ctx, executable)
	cmd.Dir = library.ParentDirectory(executable)

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start '%s': %w: %v", executable, library.ErrLaunchFailed, err)
	}

	// Reap the child in the background so it does not linger as a zombie.
	go func() {
		_ = cmd.Wait()
	}()

	return nil
}

// Ensure ExecLauncher implements the interface.
var _ secondary.Launcher = (*ExecLauncher)(nil)
