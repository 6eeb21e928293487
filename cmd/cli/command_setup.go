package main

import (
	"fmt"

	"github.com/esxr/AgentShell/pkg/lib/session"

	"github.com/spf13/cobra"
)

func newSetupCmd(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the session communication channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.New(*dir).EnsureChannels(); err != nil {
				return err
			}
			fmt.Println("AgentShell session ready.")
			return nil
		},
	}
	return cmd
}
