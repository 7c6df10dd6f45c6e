// Package main provides a minimal contract agent for tests: it echoes the request.
package main

import (
	"context"

	"github.com/metalagman/stdagent"
)

func main() {
	stdagent.Main(stdagent.Func("echo", func(_ context.Context, req stdagent.Request) (map[string]any, error) {
		return map[string]any{"echo": map[string]any(req)}, nil
	}))
}
