package stdagent

import (
	"bytes"
	"fmt"
	"io"
)

// ReadInput reads the whole stream. Whitespace-only input is treated as no input.
func ReadInput(r io.Reader) ([]byte, error) {
	if r == nil {
		return nil, ErrNoInput
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoInput
	}

	return data, nil
}

// EncodeResponse encodes resp as one JSON value terminated by a newline.
func EncodeResponse(resp Response) ([]byte, error) {
	data, err := resp.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode response: %w", err)
	}

	return append(data, '\n'), nil
}

// WriteResponse encodes resp and writes it to w in a single write.
func WriteResponse(w io.Writer, resp Response) error {
	data, err := EncodeResponse(resp)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write response: %w", err)
	}

	return nil
}
