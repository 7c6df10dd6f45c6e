package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newQuickstartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quickstart",
		Short: "Show examples and usage instructions",
		Run: func(cmd *cobra.Command, _ []string) {
			printQuickstart(cmd.OutOrStdout())
		},
	}
}

func printQuickstart(w io.Writer) {
	fmt.Fprintln(w, `Quickstart Guide for stdagent

1. Run the analysis agent
   The request is read from stdin, the response is written to stdout and
   diagnostics go to stderr.

   echo '{"data":"alpha beta gamma","mode":"default"}' | stdagent analyze

   {"success":true,"analysis":{"word_count":3,"char_count":16,"hash":"..."},"mode":"default","version":"1.0.0"}

2. Failures are responses too
   Empty or invalid input yields success=false and exit status 1.

   echo 'not json' | stdagent analyze
   {"success":false,"error":"...","details":"..."}

3. Invoke any agent command and check the contract
   stdout must hold exactly one response and the exit status must match
   its success flag.

   stdagent invoke --input='{"data":42}' -- stdagent analyze

4. Diagnostics
   --log-level / STDAGENT_LOG_LEVEL   debug, info, warn, error
   --log-format / STDAGENT_LOG_FORMAT console, json`)
}
