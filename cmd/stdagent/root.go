package main

import (
	"github.com/metalagman/stdagent"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "stdagent",
		Short:         "Run and invoke single-shot JSON agents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	def := stdagent.DefaultConfig()
	root.PersistentFlags().String(flagLogLevel, def.LogLevel, "diagnostics level (debug, info, warn, error)")
	root.PersistentFlags().String(flagLogFormat, def.LogFormat, "diagnostics format (console, json)")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newInvokeCmd())
	root.AddCommand(newQuickstartCmd())

	return root
}
