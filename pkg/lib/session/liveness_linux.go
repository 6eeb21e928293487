//go:build linux

package session

import (
	"bytes"
	"fmt"
	"os"
)

// isZombie reads the state field from /proc/<pid>/stat. The comm field may
// itself contain spaces and parentheses, so the state is located relative
// to the last ')'.
func isZombie(pid int) bool {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return false
	}
	i := bytes.LastIndexByte(data, ')')
	if i < 0 || i+2 >= len(data) {
		return false
	}
	return data[i+2] == 'Z'
}
