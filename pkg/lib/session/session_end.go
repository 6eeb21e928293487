package session

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// TermOutcome describes what happened to the child during End.
type TermOutcome int

const (
	// TermNone means no process was known, so nothing was signalled.
	TermNone TermOutcome = iota
	// TermGraceful means the process exited after SIGTERM.
	TermGraceful
	// TermForced means the process had to be SIGKILLed.
	TermForced
	// TermFailed means the process survived both signals.
	TermFailed
)

// EndResult reports the terminated process, if any.
type EndResult struct {
	PID     int
	Outcome TermOutcome
}

// terminateWait bounds how long End waits for the child to die after each
// signal before escalating.
const terminateWait = 1 * time.Second

// End stops the session: terminates the child (graceful first, forced if
// needed), then removes the session record and both channels. Termination
// failure never blocks cleanup, and every removal is a no-op when its
// target is already gone, so End can be called in any prior state. pid
// overrides the recorded process; pass 0 to use the record.
//
// The returned error covers genuine cleanup I/O failures only; "already
// gone" is not an error.
func (s *Session) End(pid int) (*EndResult, error) {
	res := &EndResult{}

	if pid == 0 {
		// Best effort; a corrupt or missing record just means there is no
		// process to stop.
		if rec, err := s.loadRecord(); err == nil && rec != nil {
			pid = rec.PID
		}
	}
	if pid != 0 {
		res.PID = pid
		res.Outcome = terminate(pid)
	}

	var errs []error
	if err := s.deleteRecord(); err != nil {
		errs = append(errs, err)
	}
	for _, path := range []string{s.InputPath(), s.OutputPath()} {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	logger.Printf("ended session in %s (pid %d, outcome %d)", s.dir, res.PID, res.Outcome)
	return res, errors.Join(errs...)
}

// terminate escalates SIGTERM -> SIGKILL, waiting briefly after each for
// the process to go away.
func terminate(pid int) TermOutcome {
	if !processAlive(pid) {
		return TermNone
	}
	if err := unix.Kill(pid, unix.SIGTERM); err == nil || errors.Is(err, unix.ESRCH) {
		if waitGone(pid) {
			return TermGraceful
		}
	}
	if err := unix.Kill(pid, unix.SIGKILL); err == nil || errors.Is(err, unix.ESRCH) {
		if waitGone(pid) {
			return TermForced
		}
	}
	return TermFailed
}

// waitGone polls until the process is dead or the wait budget runs out.
func waitGone(pid int) bool {
	deadline := time.Now().Add(terminateWait)
	for time.Now().Before(deadline) {
		if !processAlive(pid) {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return !processAlive(pid)
}
