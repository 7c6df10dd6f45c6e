package stdagent

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
)

const (
	// ExitSuccess is the process status after a success response.
	ExitSuccess = 0
	// ExitFailure is the process status after any caught failure.
	ExitFailure = 1
)

// Run executes one invocation of a: it reads the request from stdin, writes
// exactly one response to stdout and returns the exit status.
func Run(ctx context.Context, a Agent, opts ...RunOption) int {
	o := resolveRunOptions(opts)

	log := o.diagnostics(AgentName(a))
	log.Debug().Msg("reading input")

	input, readErr := ReadInput(o.stdin)
	resp, data, err := HandleInput(ctx, a, input, readErr)

	if err != nil {
		ev := log.Error().Err(err)

		var f *Failure
		if errors.As(err, &f) {
			ev = ev.Stringer("kind", f.Kind)
		}

		ev.Msg("invocation failed")
		log.Error().Msg(resp.Details)
	}

	if _, werr := o.stdout.Write(data); werr != nil {
		log.Error().Err(werr).Msg("write response")

		return ExitFailure
	}

	if err != nil {
		return ExitFailure
	}

	log.Info().Int("bytes", len(data)).Msg("request processed")

	return ExitSuccess
}

// Main runs a against the process streams and exits with its status.
func Main(a Agent, opts ...RunOption) {
	os.Exit(Run(context.Background(), a, opts...))
}

func (o RunOptions) diagnostics(name string) zerolog.Logger {
	if o.logger != nil {
		return o.logger.With().Str(AgentField, name).Logger()
	}

	log, err := NewLogger(o.stderr, name, o.config)
	if err != nil {
		log, _ = NewLogger(o.stderr, name, DefaultConfig())
		log.Warn().Err(err).Msg("invalid diagnostics config, using defaults")
	}

	return log
}
