package main

import (
	"fmt"
	"os"

	"github.com/esxr/AgentShell/pkg/lib/session"

	"github.com/spf13/cobra"
)

func newEndCmd(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "end [pid]",
		Short: "End the session and clean up",
		Long: `End terminates the managed process (gracefully first, forcibly if
needed) and removes the channels and the session record. It is safe to
run in any state; everything that is already gone is skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pid, err := parsePidArg(args)
			if err != nil {
				return err
			}
			res, err := session.New(*dir).End(pid)
			switch res.Outcome {
			case session.TermGraceful:
				fmt.Printf("Terminated command (PID %d)\n", res.PID)
			case session.TermForced:
				fmt.Printf("Force-terminated command (PID %d)\n", res.PID)
			case session.TermFailed:
				fmt.Fprintf(os.Stderr, "Failed to terminate command (PID %d)\n", res.PID)
			}
			if err != nil {
				return err
			}
			fmt.Println("AgentShell session ended.")
			return nil
		},
	}
	return cmd
}
