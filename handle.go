package stdagent

import (
	"bytes"
	"context"
	"errors"
	"fmt"
)

const fallbackFailure = `{"success":false,"error":"failure response could not be encoded","details":""}` + "\n"

// Handle runs one request through the decode-process-encode sequence.
// It always returns a well-formed response together with its encoding.
// err is nil on success and a *Failure otherwise. A panic anywhere in the
// sequence is reported with the kind of the stage it happened in.
func Handle(ctx context.Context, a Agent, input []byte) (resp Response, data []byte, err error) {
	stage := DecodeFailure

	defer func() {
		if r := recover(); r != nil {
			// The deferred call runs on the panicking stack, so the frames
			// start at the panic site.
			resp, data, err = failed(newFailure(stage, fmt.Errorf("%w: %v", ErrPanic, r), callers(2)))
		}
	}()

	if a == nil {
		return failed(newFailure(ProcessingFailure, fmt.Errorf("nil agent: %w", ErrNotImplemented), nil))
	}

	if len(bytes.TrimSpace(input)) == 0 {
		return failed(newFailure(InputAbsent, ErrNoInput, nil))
	}

	req, err := DecodeRequest(input)
	if err != nil {
		return failed(newFailure(DecodeFailure, err, nil))
	}

	sa, hasSchema := a.(SchemaAgent)
	if hasSchema {
		if err := ValidateInput(sa.InputSchema(), input); err != nil {
			return failed(newFailure(DecodeFailure, err, nil))
		}
	}

	stage = ProcessingFailure

	result, err := a.Process(ctx, req)
	if err != nil {
		return failed(newFailure(ProcessingFailure, err, nil))
	}

	stage = EncodeFailure
	resp = Succeed(result)

	data, err = EncodeResponse(resp)
	if err != nil {
		return failed(newFailure(EncodeFailure, err, nil))
	}

	if hasSchema {
		if err := ValidateOutput(sa.OutputSchema(), data); err != nil {
			return failed(newFailure(EncodeFailure, err, nil))
		}
	}

	return resp, data, nil
}

// HandleInput is Handle with an input read failure already known.
func HandleInput(ctx context.Context, a Agent, input []byte, readErr error) (Response, []byte, error) {
	if readErr != nil {
		return failed(newFailure(InputAbsent, readErr, nil))
	}

	return Handle(ctx, a, input)
}

// AgentName returns a.Name(), or "agent" when the agent is nil, has no name
// or panics while naming itself.
func AgentName(a Agent) (name string) {
	defer func() {
		if recover() != nil {
			name = "agent"
		}
	}()

	if a == nil || a.Name() == "" {
		return "agent"
	}

	return a.Name()
}

func failed(err error) (Response, []byte, error) {
	var f *Failure
	if !errors.As(err, &f) {
		f = newFailure(ProcessingFailure, err, nil)
	}

	resp := Fail(f)

	data, encErr := EncodeResponse(resp)
	if encErr != nil {
		data = []byte(fallbackFailure)
	}

	return resp, data, f
}
