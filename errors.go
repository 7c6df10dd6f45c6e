package stdagent

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoInput indicates the input stream yielded no data.
	ErrNoInput = errors.New("no input received")
	// ErrNotObject indicates the input decoded to something other than a JSON object.
	ErrNotObject = errors.New("input is not a JSON object")
	// ErrTrailingData indicates more than one JSON value was found in the input.
	ErrTrailingData = errors.New("unexpected data after JSON value")
	// ErrNotImplemented indicates an agent did not supply processing logic.
	ErrNotImplemented = errors.New("process not implemented")
	// ErrPanic indicates the agent panicked while processing.
	ErrPanic = errors.New("agent panicked")
	// ErrInputSchemaInvalid indicates the request does not satisfy the agent's input schema.
	ErrInputSchemaInvalid = errors.New("input does not match schema")
	// ErrOutputSchemaInvalid indicates the result does not satisfy the agent's output schema.
	ErrOutputSchemaInvalid = errors.New("output does not match schema")
)

// Kind classifies where in the invocation a failure happened.
type Kind int

const (
	// InputAbsent means the input stream was empty or unreadable.
	InputAbsent Kind = iota + 1
	// DecodeFailure means the input was not an acceptable JSON object.
	DecodeFailure
	// ProcessingFailure means the agent returned an error or panicked.
	ProcessingFailure
	// EncodeFailure means the result could not be serialized or written.
	EncodeFailure
)

func (k Kind) String() string {
	switch k {
	case InputAbsent:
		return "InputAbsent"
	case DecodeFailure:
		return "DecodeFailure"
	case ProcessingFailure:
		return "ProcessingFailure"
	case EncodeFailure:
		return "EncodeFailure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Failure is the error reported for any caught failure of an invocation.
// It keeps the call frames recorded when the failure was classified.
type Failure struct {
	Kind   Kind
	Err    error
	frames []string
}

func newFailure(kind Kind, err error, frames []string) *Failure {
	if frames == nil {
		frames = callers(2)
	}

	return &Failure{Kind: kind, Err: err, frames: frames}
}

func (f *Failure) Error() string {
	if f.Err == nil {
		return f.Kind.String()
	}

	return f.Err.Error()
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Details renders the failure kind, the chain of wrapped causes and the
// recorded call frames.
func (f *Failure) Details() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s\n", f.Kind, f.Error())

	for _, cause := range causes(f.Err) {
		fmt.Fprintf(&b, "caused by: %s\n", cause)
	}

	if len(f.frames) > 0 {
		b.WriteString("stack:\n")

		for _, frame := range f.frames {
			b.WriteString(frame)
			b.WriteByte('\n')
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// causes lists the messages of every error wrapped below err, outermost first.
func causes(err error) []string {
	var out []string

	queue := unwrapAll(err)
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		if next == nil {
			continue
		}

		out = append(out, next.Error())
		queue = append(queue, unwrapAll(next)...)
	}

	return out
}

func unwrapAll(err error) []error {
	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		return e.Unwrap()
	case interface{ Unwrap() error }:
		return []error{e.Unwrap()}
	default:
		return nil
	}
}
