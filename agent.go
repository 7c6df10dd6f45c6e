// Package stdagent implements the contract for single-shot agent processes:
// read one JSON object from stdin, process it, write one JSON response to
// stdout and keep diagnostics on stderr.
package stdagent

import "context"

// Agent processes one decoded request into a result payload.
type Agent interface {
	// Name tags the agent's diagnostics.
	Name() string
	// Process returns the agent-specific result. The harness adds the success flag.
	Process(ctx context.Context, req Request) (map[string]any, error)
}

// SchemaAgent is an Agent that declares JSON schemas for its request and its
// success response. Empty schemas are not checked.
type SchemaAgent interface {
	Agent
	InputSchema() string
	OutputSchema() string
}

// ProcessFunc is the processing step of an agent built with Func.
type ProcessFunc func(ctx context.Context, req Request) (map[string]any, error)

type funcAgent struct {
	name string
	fn   ProcessFunc
}

// Func builds an Agent from a name and a processing function.
// A nil fn reports ErrNotImplemented on every call.
func Func(name string, fn ProcessFunc) Agent {
	return &funcAgent{name: name, fn: fn}
}

func (a *funcAgent) Name() string {
	return a.name
}

func (a *funcAgent) Process(ctx context.Context, req Request) (map[string]any, error) {
	if a.fn == nil {
		return nil, ErrNotImplemented
	}

	return a.fn(ctx, req)
}

// UnimplementedAgent can be embedded by agents assembled at runtime.
// Its Process always fails with ErrNotImplemented.
type UnimplementedAgent struct {
	AgentName string
}

func (u UnimplementedAgent) Name() string {
	if u.AgentName == "" {
		return "agent"
	}

	return u.AgentName
}

func (UnimplementedAgent) Process(context.Context, Request) (map[string]any, error) {
	return nil, ErrNotImplemented
}
