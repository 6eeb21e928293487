package main

import (
	"fmt"
	"strconv"

	"github.com/esxr/AgentShell/pkg/lib/session"

	"github.com/spf13/cobra"
)

func newStatusCmd(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status [pid]",
		Short: "Check the health of the session",
		Long: `Status reports whether both channels exist and whether the managed
process is alive. With no pid argument the process is taken from the
session record; without a record the process check is skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePidArg(args)
			if err != nil {
				return err
			}
			report, err := session.New(*dir).Status(pid)
			if err != nil {
				return err
			}
			printStatusReport(report)
			return nil
		},
	}
	return cmd
}

func parsePidArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, nil
	}
	pid, err := strconv.Atoi(args[0])
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("invalid PID %q", args[0])
	}
	return pid, nil
}
