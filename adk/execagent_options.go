package adk

import "time"

// ExecAgentOptions configures an ExecAgent.
type ExecAgentOptions struct {
	name        string
	description string
	cmd         []string
	extraArgs   []string
	timeout     time.Duration
	inputSchema string
	runDir      string
}

// ExecAgentOption sets a field of ExecAgentOptions.
type ExecAgentOption func(*ExecAgentOptions)

// WithExecAgentExtraArgs appends arguments to the agent command.
func WithExecAgentExtraArgs(args ...string) ExecAgentOption {
	return func(o *ExecAgentOptions) {
		o.extraArgs = append(o.extraArgs, args...)
	}
}

// WithExecAgentTimeout bounds each invocation.
func WithExecAgentTimeout(d time.Duration) ExecAgentOption {
	return func(o *ExecAgentOptions) {
		o.timeout = d
	}
}

// WithExecAgentInputSchema checks requests before the command is started.
func WithExecAgentInputSchema(schema string) ExecAgentOption {
	return func(o *ExecAgentOptions) {
		o.inputSchema = schema
	}
}

// WithExecAgentRunDir sets the working directory of the command.
func WithExecAgentRunDir(dir string) ExecAgentOption {
	return func(o *ExecAgentOptions) {
		o.runDir = dir
	}
}

// NewExecAgentOptions applies setters over the defaults.
func NewExecAgentOptions(name, description string, cmd []string, setters ...ExecAgentOption) ExecAgentOptions {
	opts := getDefaultExecAgentOptions()
	opts.name = name
	opts.description = description
	opts.cmd = cmd

	for _, set := range setters {
		set(&opts)
	}

	return opts
}

// Validate reports missing mandatory options.
func (o ExecAgentOptions) Validate() error {
	switch {
	case o.name == "":
		return errRequired("name")
	case o.description == "":
		return errRequired("description")
	case len(o.cmd) == 0 || o.cmd[0] == "":
		return errRequired("cmd")
	}

	return nil
}

func getDefaultExecAgentOptions() ExecAgentOptions {
	return ExecAgentOptions{
		runDir: ".",
	}
}
