package bootstrap

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
)

var (
	// ErrInvalidPath is returned if the executable doesn't live below the build output.
	ErrInvalidPath = eris.New("invalid path")
	// ErrDirectoryChange is returned if the working directory could not be changed.
	ErrDirectoryChange = eris.New("directory change failure")
	// ErrDirectoryNotFound is returned if no directory matched the requested project.
	ErrDirectoryNotFound = eris.New("directory not found")
	// ErrCommandFailed is matched by every CommandError.
	ErrCommandFailed = eris.New("command failed")
)

// CommandError reports a process that exited with a nonzero status.
type CommandError struct {
	Args     []string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command failed: %s exited with status %d", strings.Join(e.Args, " "), e.ExitCode)
}

func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// ExitCode extracts the exit status from a CommandError in err's chain.
func ExitCode(err error) (int, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.ExitCode, true
	}
	return 0, false
}
