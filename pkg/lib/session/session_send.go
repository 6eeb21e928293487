package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/esxr/AgentShell/pkg/lib"
)

// Send appends text plus a trailing newline to the input channel.
//
// A FIFO write rendezvouses with its reader: if no process currently holds
// the read end, the open blocks until one appears. That is the channel's
// nature, not an error, but it does mean Send can stall indefinitely when
// the child is not actually reading.
func (s *Session) Send(text string) error {
	f, err := os.OpenFile(s.InputPath(), os.O_WRONLY, 0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", lib.ErrChannelUnavailable, s.InputPath())
		}
		return err
	}
	defer f.Close()

	if _, err := f.WriteString(text + "\n"); err != nil {
		return fmt.Errorf("write to %s: %w", s.InputPath(), err)
	}
	logger.Printf("sent %d bytes to %s", len(text)+1, s.InputPath())
	return nil
}
