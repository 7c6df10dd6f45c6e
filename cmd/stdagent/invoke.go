package main

import (
	"github.com/spf13/cobra"
)

func newInvokeCmd() *cobra.Command {
	opts := &invokeOptions{}
	cmd := &cobra.Command{
		Use:   "invoke <cmd> [args...]",
		Short: "Invoke an agent command with one JSON request and check its response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agentCmd := append([]string{args[0]}, args[1:]...)
			if len(opts.extraArgs) > 0 {
				agentCmd = append(agentCmd, opts.extraArgs...)
			}

			return runAgent(cmd, agentCmd, opts)
		},
	}

	addInvokeFlags(cmd, opts)

	return cmd
}
