package main

import (
	"fmt"

	"github.com/esxr/AgentShell/pkg/lib/session"

	"github.com/spf13/cobra"
)

func newSendCmd(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send <text>",
		Short: "Send a line of input to the running command",
		Long: `Send writes the text plus a newline to the input channel, as if it had
been typed into the command's stdin. If the command is not currently
reading its stdin, the write waits until it does.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := session.New(*dir).Send(args[0]); err != nil {
				return err
			}
			fmt.Printf("Sent: '%s'\n", args[0])
			return nil
		},
	}
	return cmd
}
