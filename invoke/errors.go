package invoke

import "errors"

var (
	// ErrEmptyCommand indicates the runner was configured without a command.
	ErrEmptyCommand = errors.New("agent command is empty")
	// ErrMalformedOutput indicates stdout did not hold exactly one response object.
	ErrMalformedOutput = errors.New("agent output is not a single response")
	// ErrExitMismatch indicates the exit status disagrees with the success flag.
	ErrExitMismatch = errors.New("exit status does not match response")
)
