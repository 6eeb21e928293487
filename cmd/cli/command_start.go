package main

import (
	"errors"
	"fmt"

	"github.com/esxr/AgentShell/pkg/lib/session"

	"github.com/spf13/cobra"
)

func newStartCmd(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start -- <command> [args...]",
		Short: "Start an interactive command in the background",
		Long: `Start launches the command wired to the session channels: its stdin
reads from the input channel and its stdout and stderr go to the output
channel. The command is given as an argument vector and is not passed
through a shell.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("command to execute is required; use -- to separate CLI flags from the command")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := session.New(*dir).Start(args[0], args[1:]...)
			if err != nil {
				return err
			}
			fmt.Printf("Started interactive command (PID: %d): %s\n", res.PID, res.Command)
			return nil
		},
	}
	return cmd
}
