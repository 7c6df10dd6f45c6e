package adk

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/metalagman/stdagent"
)

func TestNewExecAgentValidation(t *testing.T) {
	cmd := []string{"sh", "-c", "true"}

	tests := []struct {
		name        string
		agentName   string
		description string
		cmd         []string
		options     []ExecAgentOption
		wantErr     bool
	}{
		{name: "minimal", agentName: "A", description: "d", cmd: cmd},
		{
			name:        "with all options",
			agentName:   "A",
			description: "d",
			cmd:         cmd,
			options: []ExecAgentOption{
				WithExecAgentTimeout(30 * time.Second),
				WithExecAgentInputSchema(`{"type":"object"}`),
				WithExecAgentRunDir("./test-work"),
				WithExecAgentExtraArgs("arg1", "arg2"),
			},
		},
		{name: "empty name", description: "d", cmd: cmd, wantErr: true},
		{name: "empty description", agentName: "A", cmd: cmd, wantErr: true},
		{name: "empty cmd", agentName: "A", description: "d", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewExecAgent(tt.agentName, tt.description, tt.cmd, tt.options...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewExecAgent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && a == nil {
				t.Fatal("expected non-nil agent")
			}
		})
	}
}

func TestExecAgent(t *testing.T) {
	tmpDir := t.TempDir()
	origDir, _ := os.Getwd()

	binPath := filepath.Join(tmpDir, "echoagent")
	srcPath := filepath.Join(origDir, "..", "testdata", "echoagent")

	cmd := exec.Command("go", "build", "-o", binPath, srcPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build echoagent: %v\nOutput: %s", err, string(out))
	}

	tests := []struct {
		name        string
		input       string
		options     []ExecAgentOption
		wantSuccess bool
		wantErr     string
	}{
		{name: "success", input: `{"name":"Ada"}`, wantSuccess: true},
		{name: "failure response", input: "not json", wantSuccess: false},
		{
			name:    "schema rejects",
			input:   `{"other":1}`,
			options: []ExecAgentOption{WithExecAgentInputSchema(`{"type":"object","required":["name"]}`)},
			wantErr: "does not match schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]ExecAgentOption{WithExecAgentTimeout(30 * time.Second), WithExecAgentRunDir(tmpDir)}, tt.options...)

			a, err := NewExecAgent("Echo", "Echoes its request", []string{binPath}, opts...)
			if err != nil {
				t.Fatalf("create agent: %v", err)
			}

			texts, err := collect(a.Run(newMockContext(tt.input)))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}

				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(texts) != 1 {
				t.Fatalf("expected one event, got %d", len(texts))
			}

			var resp stdagent.Response
			if err := json.Unmarshal([]byte(texts[0]), &resp); err != nil {
				t.Fatalf("event text is not a response: %v", err)
			}
			if resp.Success != tt.wantSuccess {
				t.Fatalf("success = %t, want %t: %s", resp.Success, tt.wantSuccess, texts[0])
			}
		})
	}
}
