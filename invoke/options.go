package invoke

import "io"

// RunOptions defines where agent streams are mirrored while they are captured.
type RunOptions struct {
	stdout io.Writer
	stderr io.Writer
}

// RunOption configures a single invocation.
type RunOption func(*RunOptions)

// WithStdout mirrors the agent's stdout to w.
func WithStdout(w io.Writer) RunOption {
	return func(o *RunOptions) {
		o.stdout = w
	}
}

// WithStderr mirrors the agent's stderr to w.
func WithStderr(w io.Writer) RunOption {
	return func(o *RunOptions) {
		o.stderr = w
	}
}

func resolveRunOptions(opts []RunOption) RunOptions {
	out := defaultRunOptions()
	for _, opt := range opts {
		opt(&out)
	}

	return out
}

func defaultRunOptions() RunOptions {
	return RunOptions{
		stdout: io.Discard,
		stderr: io.Discard,
	}
}
