//go:build linux

package session

import (
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// An exited but unreaped child is a zombie; it must not count as alive
// even though it still answers kill(pid, 0).
func TestProcessAliveZombie(t *testing.T) {
	cmd := exec.Command("true")
	require.NoError(t, cmd.Start())
	pid := cmd.Process.Pid
	defer func() { _ = cmd.Wait() }()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if isZombie(pid) {
			require.False(t, processAlive(pid))
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("process %d never became a zombie", pid)
}
