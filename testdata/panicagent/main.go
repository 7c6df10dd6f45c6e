// Package main provides a contract agent that panics while processing.
package main

import (
	"context"

	"github.com/metalagman/stdagent"
)

func main() {
	stdagent.Main(stdagent.Func("panic", func(context.Context, stdagent.Request) (map[string]any, error) {
		panic("boom")
	}))
}
