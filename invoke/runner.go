// Package invoke runs agent processes as a client of the stdin/stdout
// contract and checks that they honour it.
package invoke

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os/exec"

	"github.com/metalagman/stdagent"
)

// Result is the outcome of one agent invocation.
type Result struct {
	Response stdagent.Response
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Config describes the agent command to run.
type Config struct {
	Cmd         []string `json:"cmd"                    mapstructure:"cmd"`
	Dir         string   `json:"dir,omitempty"          mapstructure:"dir"`
	InputSchema string   `json:"input_schema,omitempty" mapstructure:"input_schema"`
}

// Runner invokes one agent command per call.
type Runner struct {
	cmd         []string
	dir         string
	inputSchema string
}

// NewRunner constructs a runner for the given command.
func NewRunner(cfg Config) (*Runner, error) {
	if len(cfg.Cmd) == 0 {
		return nil, ErrEmptyCommand
	}

	return &Runner{
		cmd:         append([]string(nil), cfg.Cmd...),
		dir:         cfg.Dir,
		inputSchema: cfg.InputSchema,
	}, nil
}

// Run encodes req as JSON and invokes the agent with it.
// A string or []byte request is passed through as raw input.
func (r *Runner) Run(ctx context.Context, req any, opts ...RunOption) (Result, error) {
	input, err := encodeInput(req)
	if err != nil {
		return Result{}, err
	}

	return r.RunRaw(ctx, input, opts...)
}

// RunRaw invokes the agent with input written verbatim to its stdin.
func (r *Runner) RunRaw(ctx context.Context, input []byte, opts ...RunOption) (Result, error) {
	runOpts := resolveRunOptions(opts)

	if len(input) > 0 {
		if err := stdagent.ValidateInput(r.inputSchema, input); err != nil {
			return Result{}, fmt.Errorf("validate input: %w", err)
		}
	}

	outBytes, errBytes, exitCode, err := runCommand(ctx, r.cmd, r.dir, input, runOpts.stdout, runOpts.stderr)
	res := Result{Stdout: outBytes, Stderr: errBytes, ExitCode: exitCode}

	if err != nil {
		return res, err
	}

	resp, err := decodeOutput(outBytes)
	if err != nil {
		return res, err
	}

	res.Response = resp

	if resp.Success != (exitCode == 0) {
		return res, fmt.Errorf("%w: success=%t exit code %d", ErrExitMismatch, resp.Success, exitCode)
	}

	return res, nil
}

func encodeInput(req any) ([]byte, error) {
	switch v := req.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal input: %w", err)
	}

	return data, nil
}

// decodeOutput requires stdout to hold exactly one response object.
func decodeOutput(out []byte) (stdagent.Response, error) {
	dec := json.NewDecoder(bytes.NewReader(out))

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return stdagent.Response{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return stdagent.Response{}, fmt.Errorf("%w: %v", ErrMalformedOutput, stdagent.ErrTrailingData)
	}

	var resp stdagent.Response
	if err := json.Unmarshal(raw, &resp); err != nil {
		return stdagent.Response{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	return resp, nil
}

func runCommand(
	ctx context.Context,
	argv []string,
	workDir string,
	stdin []byte,
	stdoutSink io.Writer,
	stderrSink io.Writer,
) ([]byte, []byte, int, error) {
	if len(argv) == 0 {
		return nil, nil, 0, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = workDir
	cmd.Stdin = bytes.NewReader(stdin)

	var (
		stdout bytes.Buffer
		stderr bytes.Buffer
	)

	if stdoutSink != nil {
		cmd.Stdout = io.MultiWriter(&stdout, stdoutSink)
	} else {
		cmd.Stdout = &stdout
	}

	if stderrSink != nil {
		cmd.Stderr = io.MultiWriter(&stderr, stderrSink)
	} else {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return stdout.Bytes(), stderr.Bytes(), exitErr.ExitCode(), nil
		}

		return stdout.Bytes(), stderr.Bytes(), 0, fmt.Errorf("cmd run: %w", err)
	}

	return stdout.Bytes(), stderr.Bytes(), 0, nil
}
