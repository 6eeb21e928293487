package main

import "github.com/spf13/cobra"

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "agentshell",
		Short: "Drive interactive command-line tools that need input",
		Long: `AgentShell lets an automated agent drive any interactive command-line
program: start it in the background, send it input, and receive its
output without blocking. State lives in the session directory (two named
pipes plus a session record), so each subcommand is an independent
invocation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var dir string
	root.PersistentFlags().StringVar(&dir, "dir", ".", "session directory holding the channels and record")

	root.AddCommand(newSetupCmd(&dir))
	root.AddCommand(newStartCmd(&dir))
	root.AddCommand(newSendCmd(&dir))
	root.AddCommand(newReceiveCmd(&dir))
	root.AddCommand(newStatusCmd(&dir))
	root.AddCommand(newEndCmd(&dir))

	return root
}
