package stdagent

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

const (
	// SuccessField is the response key carrying the success flag.
	SuccessField = "success"
	// ErrorField is the response key carrying the failure message.
	ErrorField = "error"
	// DetailsField is the response key carrying the failure diagnostics.
	DetailsField = "details"
)

// ErrMissingSuccess indicates a response without a boolean success field.
var ErrMissingSuccess = errors.New("response has no boolean success field")

// Response is the single value an invocation emits.
// A success response carries Payload; a failure response carries Error and Details.
type Response struct {
	Success bool
	Payload map[string]any
	Error   string
	Details string
}

// Succeed wraps an agent result as a success response.
// A success key inside payload is dropped in favour of the flag.
func Succeed(payload map[string]any) Response {
	out := make(map[string]any, len(payload))
	for k, v := range payload {
		if k == SuccessField {
			continue
		}

		out[k] = v
	}

	return Response{Success: true, Payload: out}
}

// Fail builds a failure response from err.
func Fail(err error) Response {
	if err == nil {
		err = errors.New("unknown failure")
	}

	resp := Response{Error: err.Error(), Details: err.Error()}

	var f *Failure
	if errors.As(err, &f) {
		resp.Details = f.Details()
	}

	return resp
}

// MarshalJSON encodes the success flag first, then the remaining keys in
// sorted order.
func (r Response) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer

	b.WriteByte('{')

	if err := writeField(&b, SuccessField, r.Success); err != nil {
		return nil, err
	}

	if !r.Success {
		if err := writeField(&b, ErrorField, r.Error); err != nil {
			return nil, err
		}

		if err := writeField(&b, DetailsField, r.Details); err != nil {
			return nil, err
		}

		b.WriteByte('}')

		return b.Bytes(), nil
	}

	keys := make([]string, 0, len(r.Payload))
	for k := range r.Payload {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		if err := writeField(&b, k, r.Payload[k]); err != nil {
			return nil, err
		}
	}

	b.WriteByte('}')

	return b.Bytes(), nil
}

func writeField(b *bytes.Buffer, key string, value any) error {
	if b.Len() > 1 {
		b.WriteByte(',')
	}

	k, err := marshalValue(key)
	if err != nil {
		return fmt.Errorf("encode key %q: %w", key, err)
	}

	v, err := marshalValue(value)
	if err != nil {
		return fmt.Errorf("encode field %q: %w", key, err)
	}

	b.Write(k)
	b.WriteByte(':')
	b.Write(v)

	return nil
}

func marshalValue(v any) ([]byte, error) {
	var b bytes.Buffer

	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes a response object. The success field is mandatory.
func (r *Response) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return err
	}

	success, ok := m[SuccessField].(bool)
	if !ok {
		return ErrMissingSuccess
	}

	*r = Response{Success: success}

	if !success {
		r.Error, _ = m[ErrorField].(string)
		r.Details, _ = m[DetailsField].(string)

		return nil
	}

	delete(m, SuccessField)
	r.Payload = m

	return nil
}
