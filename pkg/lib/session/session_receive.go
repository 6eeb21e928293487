package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/esxr/AgentShell/pkg/lib"

	"golang.org/x/sys/unix"
)

const (
	// readChunkSize bounds a single read from the output channel.
	readChunkSize = 4096
	// pollInterval is the sleep between read attempts while the channel is
	// quiet. It is also the timeout granularity: Receive may overrun the
	// nominal timeout by up to one interval.
	pollInterval = 100 * time.Millisecond
)

// Receive drains whatever the child has written to the output channel,
// waiting at most timeout for the first byte to show up.
//
// The child produces output in bursts of unknown size, so Receive uses
// silence as the end-of-burst signal: once some data has been collected
// and a read attempt comes back empty, it returns immediately instead of
// waiting out the rest of the timeout. Output that arrives later stays
// buffered in the channel for the next call — but only while some
// process still holds the channel open; a child that exits between calls
// takes any undelivered output with it. An empty result means nothing
// was written within the timeout.
func (s *Session) Receive(timeout time.Duration) ([]byte, error) {
	fd, err := unix.Open(s.OutputPath(), unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		if errors.Is(err, unix.ENOENT) {
			return nil, fmt.Errorf("%w: %s", lib.ErrChannelUnavailable, s.OutputPath())
		}
		return nil, fmt.Errorf("open %s: %w", s.OutputPath(), err)
	}
	defer unix.Close(fd)

	var output []byte
	buf := make([]byte, readChunkSize)
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		n, err := unix.Read(fd, buf)
		switch {
		case err != nil:
			if errors.Is(err, unix.EINTR) {
				continue
			}
			if !errors.Is(err, unix.EAGAIN) {
				// The channel went away under us (e.g. a concurrent end).
				// Hand back what was collected along with the condition.
				logger.Printf("read %s: %v", s.OutputPath(), err)
				return output, fmt.Errorf("%w: %s", lib.ErrChannelClosed, s.OutputPath())
			}
			// EAGAIN: nothing available right now.
			if len(output) > 0 {
				return output, nil
			}
			time.Sleep(pollInterval)
		case n > 0:
			output = append(output, buf[:n]...)
		default:
			// A zero-byte read means no writer is attached; same treatment
			// as an empty non-blocking read.
			if len(output) > 0 {
				return output, nil
			}
			time.Sleep(pollInterval)
		}
	}

	return output, nil
}
