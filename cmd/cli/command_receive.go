package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/esxr/AgentShell/pkg/lib"
	"github.com/esxr/AgentShell/pkg/lib/session"

	"github.com/spf13/cobra"
)

func newReceiveCmd(dir *string) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "receive",
		Short: "Receive output produced by the command",
		Long: `Receive drains whatever the command has written since the last receive,
waiting at most the timeout for output to appear. Output arriving after
the timeout is not lost; it is picked up by the next receive.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := session.New(*dir).Receive(timeout)
			if err != nil {
				if !errors.Is(err, lib.ErrChannelClosed) {
					return err
				}
				// The channel vanished mid-read (e.g. a concurrent end);
				// whatever was collected is still worth printing.
				fmt.Fprintf(os.Stderr, "warning: %v\n", err)
			}
			if len(out) == 0 {
				fmt.Println("No output available (timeout)")
				return nil
			}
			_, werr := os.Stdout.Write(out)
			return werr
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Second, "how long to wait for output")
	return cmd
}
