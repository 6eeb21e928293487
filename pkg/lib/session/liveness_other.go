//go:build !linux

package session

// Without procfs there is no cheap zombie probe; treat any signallable
// process as alive.
func isZombie(pid int) bool {
	return false
}
