package stdagent

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// RunOptions defines the streams and diagnostics of one agent invocation.
type RunOptions struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *zerolog.Logger
	config Config
}

// RunOption configures an invocation started with Run.
type RunOption func(*RunOptions)

// WithStdin sets the stream the request is read from.
func WithStdin(r io.Reader) RunOption {
	return func(o *RunOptions) {
		if r != nil {
			o.stdin = r
		}
	}
}

// WithStdout sets the stream the response is written to.
func WithStdout(w io.Writer) RunOption {
	return func(o *RunOptions) {
		if w != nil {
			o.stdout = w
		}
	}
}

// WithStderr sets the diagnostics stream.
func WithStderr(w io.Writer) RunOption {
	return func(o *RunOptions) {
		if w != nil {
			o.stderr = w
		}
	}
}

// WithLogger replaces the diagnostics logger built from the config.
func WithLogger(l zerolog.Logger) RunOption {
	return func(o *RunOptions) {
		o.logger = &l
	}
}

// WithConfig sets the diagnostics configuration.
func WithConfig(cfg Config) RunOption {
	return func(o *RunOptions) {
		o.config = cfg
	}
}

// WithLogLevel sets the minimum diagnostics level.
func WithLogLevel(level string) RunOption {
	return func(o *RunOptions) {
		o.config.LogLevel = level
	}
}

// WithLogFormat selects console or json diagnostics.
func WithLogFormat(format string) RunOption {
	return func(o *RunOptions) {
		o.config.LogFormat = format
	}
}

func resolveRunOptions(opts []RunOption) RunOptions {
	out := defaultRunOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}

	return out
}

func defaultRunOptions() RunOptions {
	return RunOptions{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		config: DefaultConfig(),
	}
}
