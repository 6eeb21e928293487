package session

import (
	"errors"

	"golang.org/x/sys/unix"
)

// processAlive reports whether pid refers to a live, non-zombie process.
// An unknown pid is simply "not running". EPERM means the process exists
// but belongs to another user, which still counts as running.
func processAlive(pid int) bool {
	if pid <= 0 {
		return false
	}
	if err := unix.Kill(pid, 0); err != nil && !errors.Is(err, unix.EPERM) {
		return false
	}
	// kill(pid, 0) succeeds for zombies; an exited-but-unreaped child is
	// not a usable process, so it counts as dead.
	return !isZombie(pid)
}
