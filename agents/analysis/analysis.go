// Package analysis provides a text analysis agent: word and character counts
// plus a SHA-256 fingerprint of the request's data field.
package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode/utf8"

	"github.com/metalagman/stdagent"
)

const (
	// Name is the agent name used in diagnostics.
	Name = "analysis"
	// Version is reported in every success response.
	Version = "1.0.0"
	// DefaultMode is used when the request has no mode.
	DefaultMode = "default"
)

const inputSchema = `{
  "type": "object"
}`

const outputSchema = `{
  "type": "object",
  "properties": {
    "success": {"type": "boolean"},
    "mode": {"type": "string"},
    "version": {"type": "string"},
    "analysis": {
      "type": "object",
      "properties": {
        "word_count": {"type": "integer", "minimum": 0},
        "char_count": {"type": "integer", "minimum": 0},
        "hash": {"type": "string", "pattern": "^[0-9a-f]{64}$"}
      },
      "required": ["word_count", "char_count", "hash"]
    }
  },
  "required": ["success", "mode", "version", "analysis"]
}`

// Result holds the computed text metrics.
type Result struct {
	WordCount int    `json:"word_count"`
	CharCount int    `json:"char_count"`
	Hash      string `json:"hash"`
}

// Analyze computes the metrics of text.
func Analyze(text string) Result {
	sum := sha256.Sum256([]byte(text))

	return Result{
		WordCount: len(strings.Fields(text)),
		CharCount: utf8.RuneCountInString(text),
		Hash:      hex.EncodeToString(sum[:]),
	}
}

// Agent is the text analysis agent.
type Agent struct{}

// New creates a text analysis agent.
func New() *Agent {
	return &Agent{}
}

func (*Agent) Name() string {
	return Name
}

func (*Agent) InputSchema() string {
	return inputSchema
}

func (*Agent) OutputSchema() string {
	return outputSchema
}

// Process analyzes the data field. Both data and mode are coerced to text.
func (*Agent) Process(_ context.Context, req stdagent.Request) (map[string]any, error) {
	text := req.Text("data", "")
	mode := req.Text("mode", DefaultMode)

	return map[string]any{
		"analysis": Analyze(text),
		"mode":     mode,
		"version":  Version,
	}, nil
}

var _ stdagent.SchemaAgent = (*Agent)(nil)
