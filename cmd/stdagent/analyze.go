package main

import (
	"fmt"

	"github.com/metalagman/stdagent"
	"github.com/metalagman/stdagent/agents/analysis"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Run the text analysis agent: JSON request on stdin, JSON response on stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// A broken config still yields a response.
			cfg, err := loadConfig(cmd)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "stdagent: %v, using default config\n", err)
			}

			code := stdagent.Run(
				cmd.Context(),
				analysis.New(),
				stdagent.WithStdin(cmd.InOrStdin()),
				stdagent.WithStdout(cmd.OutOrStdout()),
				stdagent.WithStderr(cmd.ErrOrStderr()),
				stdagent.WithConfig(cfg),
			)
			if code != stdagent.ExitSuccess {
				exitFn(code)
			}

			return nil
		},
	}
}
