package main

import (
	"fmt"

	"github.com/esxr/AgentShell/pkg/lib"
)

func printStatusReport(r *lib.StatusReport) {
	fmt.Println("AgentShell status:")
	fmt.Printf("  Input channel: %s\n", readiness(r.InputChannel))
	fmt.Printf("  Output channel: %s\n", readiness(r.OutputChannel))

	if r.PID != 0 {
		state := "not running"
		if r.Process {
			state = "running"
		}
		fmt.Printf("  Command (PID %d): %s\n", r.PID, state)
		if r.Process && r.Command != "" {
			fmt.Printf("  Running: %s\n", r.Command)
		}
	} else {
		fmt.Println("  Command: not specified")
	}

	fmt.Printf("Overall status: %s\n", r.Overall)
}

func readiness(ok bool) string {
	if ok {
		return "ready"
	}
	return "not available"
}
