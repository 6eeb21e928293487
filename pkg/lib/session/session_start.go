package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"

	"github.com/esxr/AgentShell/pkg/lib"
)

// StartResult reports the spawned process.
type StartResult struct {
	PID     int
	Command string
}

// openChannel opens a FIFO for the child's stdio. A missing channel means
// setup has not run; any other failure (e.g. permissions) is reported as
// what it actually is.
func openChannel(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", lib.ErrChannelUnavailable, path)
		}
		return nil, fmt.Errorf("open channel %s: %w", path, err)
	}
	return f, nil
}

// Start launches command with stdin bound to the input channel and both
// stdout and stderr bound to the output channel, then persists the session
// record, overwriting any prior one. It returns as soon as the child is
// spawned; the child is never waited on here and outlives the controller.
//
// The argv is executed directly, without shell interpretation.
func (s *Session) Start(command string, args ...string) (*StartResult, error) {
	if command == "" {
		return nil, lib.ErrNoCommand
	}

	// O_RDWR so these opens cannot block waiting for the peer end of the
	// FIFO. The child thereby holds a write end of its own stdin, so it
	// sees input as it arrives and never EOF; interactive children expect
	// exactly that.
	in, err := openChannel(s.InputPath())
	if err != nil {
		return nil, err
	}
	defer in.Close()
	out, err := openChannel(s.OutputPath())
	if err != nil {
		return nil, err
	}
	defer out.Close()

	cmd := exec.Command(command, args...)
	cmd.Stdin = in
	cmd.Stdout = out
	// Error text lands on the output channel too, so receive surfaces it.
	cmd.Stderr = out
	// New process group, so the child is not torn down with the controller
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	logger.Printf("starting %q in %s", command, s.dir)
	if err := cmd.Start(); err != nil {
		logger.Printf("failed to start %q: %v", command, err)
		return nil, fmt.Errorf("%w: %q: %w", lib.ErrLaunchFailed, command, err)
	}

	full := command
	if len(args) > 0 {
		full = command + " " + strings.Join(args, " ")
	}
	rec := Record{
		PID:       cmd.Process.Pid,
		Command:   full,
		StartedAt: float64(time.Now().UnixNano()) / 1e9,
	}
	if err := s.saveRecord(rec); err != nil {
		return nil, err
	}

	// Detach: no Wait here. Once the controller exits the child is
	// reparented and reaped by the OS.
	_ = cmd.Process.Release()

	logger.Printf("started %q (pid %d)", full, rec.PID)
	return &StartResult{PID: rec.PID, Command: full}, nil
}
