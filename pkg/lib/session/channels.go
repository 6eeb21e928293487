package session

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// EnsureChannels creates the input and output channels if absent. Calling
// it again is a no-op, so a crashed run can always be repaired by running
// setup once more. It never blocks; only filesystem-level failures are
// returned.
func (s *Session) EnsureChannels() error {
	for _, path := range []string{s.InputPath(), s.OutputPath()} {
		if err := ensureFifo(path); err != nil {
			return err
		}
	}
	return nil
}

func ensureFifo(path string) error {
	err := unix.Mkfifo(path, 0o600)
	if err == nil {
		logger.Printf("created channel %s", path)
		return nil
	}
	if !errors.Is(err, unix.EEXIST) {
		return fmt.Errorf("create channel %s: %w", path, err)
	}
	// Tolerate an existing channel, but not an ordinary file squatting on
	// the channel name.
	fi, statErr := os.Stat(path)
	if statErr != nil {
		return statErr
	}
	if fi.Mode()&os.ModeNamedPipe == 0 {
		return fmt.Errorf("channel %s exists but is not a named pipe", path)
	}
	return nil
}

func channelPresent(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
