package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/metalagman/stdagent"
	"github.com/metalagman/stdagent/invoke"
	"github.com/spf13/cobra"
)

var exitFn = os.Exit

type invokeOptions struct {
	inputSchema     string
	inputSchemaFile string
	input           string
	workDir         string
	extraArgs       []string
	timeout         time.Duration
	debug           bool
}

func addInvokeFlags(cmd *cobra.Command, opts *invokeOptions) {
	cmd.Flags().StringVar(&opts.inputSchema, "input-schema", "", "input JSON schema checked before the agent starts")
	cmd.Flags().StringVar(&opts.inputSchemaFile, "input-schema-file", "", "path to input JSON schema file")
	cmd.Flags().StringVar(&opts.input, "input", "", "request JSON (read from stdin when not set)")
	cmd.Flags().StringArrayVar(&opts.extraArgs, "extra-args", nil, "extra args to pass to the agent command")
	cmd.Flags().StringVar(&opts.workDir, "work-dir", ".", "working directory of the agent command")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "kill the agent after this long (0 disables)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "forward agent stderr to stderr")
}

func runAgent(cmd *cobra.Command, agentCmd []string, opts *invokeOptions) error {
	cfg, err := buildRunConfig(cmd, agentCmd, opts)
	if err != nil {
		return err
	}

	return runAndEmit(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func resolveSchema(schemaValue, schemaFile string, schemaSet bool) (string, error) {
	if schemaFile == "" {
		return schemaValue, nil
	}

	if schemaSet {
		return "", fmt.Errorf("use --input-schema or --input-schema-file, not both")
	}

	data, err := os.ReadFile(schemaFile)
	if err != nil {
		return "", fmt.Errorf("read input schema file: %w", err)
	}

	return string(data), nil
}

type runConfig struct {
	runner  *invoke.Runner
	input   []byte
	timeout time.Duration
	debug   bool
}

func buildRunConfig(cmd *cobra.Command, agentCmd []string, opts *invokeOptions) (runConfig, error) {
	workDir := opts.workDir
	if workDir == "" {
		workDir = "."
	}

	schema, err := resolveSchema(opts.inputSchema, opts.inputSchemaFile, cmd.Flags().Changed("input-schema"))
	if err != nil {
		return runConfig{}, err
	}

	runner, err := invoke.NewRunner(invoke.Config{
		Cmd:         agentCmd,
		Dir:         workDir,
		InputSchema: schema,
	})
	if err != nil {
		return runConfig{}, err
	}

	var input []byte
	if cmd.Flags().Changed("input") {
		input = []byte(opts.input)
	} else {
		input, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return runConfig{}, fmt.Errorf("read request: %w", err)
		}
	}

	return runConfig{
		runner:  runner,
		input:   input,
		timeout: opts.timeout,
		debug:   opts.debug,
	}, nil
}

// runAndEmit prints the agent's response and exits with the agent's status.
// A broken contract is reported on stderr with status 1.
func runAndEmit(ctx context.Context, cfg runConfig, stdout, stderr io.Writer) error {
	if cfg.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	var runOpts []invoke.RunOption
	if cfg.debug {
		runOpts = append(runOpts, invoke.WithStderr(stderr))
	}

	res, err := cfg.runner.RunRaw(ctx, cfg.input, runOpts...)
	if err != nil {
		errBytes := res.Stderr
		if cfg.debug {
			errBytes = nil
		}

		return exitWithError(stderr, stdagent.ExitFailure, errBytes, err)
	}

	if _, err := stdout.Write(res.Stdout); err != nil {
		return exitWithError(stderr, stdagent.ExitFailure, nil, err)
	}

	if res.ExitCode != stdagent.ExitSuccess {
		exitFn(res.ExitCode)
	}

	return nil
}

func exitWithError(stderr io.Writer, code int, errBytes []byte, err error) error {
	if len(errBytes) > 0 {
		_, _ = stderr.Write(errBytes)
	}

	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
	}

	if code == 0 {
		code = stdagent.ExitFailure
	}

	exitFn(code)

	return err
}
