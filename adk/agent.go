// Package adk exposes stdagent agents as ADK agents.
package adk

import (
	"bytes"
	"fmt"
	"iter"

	"github.com/metalagman/stdagent"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

// Agent runs a stdagent.Agent in-process for each ADK invocation. The user
// content text is the request and the model reply is the encoded response.
type Agent struct {
	agent.Agent
	inner stdagent.Agent
	name  string
}

// NewAgent wraps inner as an ADK agent.
func NewAgent(inner stdagent.Agent, description string) (*Agent, error) {
	if inner == nil {
		return nil, fmt.Errorf("inner agent is required")
	}

	a := &Agent{inner: inner, name: stdagent.AgentName(inner)}

	ag, err := agent.New(agent.Config{
		Name:        a.name,
		Description: description,
		Run:         a.Run,
	})
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	a.Agent = ag

	return a, nil
}

// Run implements the agent.Agent interface. Failures are reported as
// failure responses, never as errors.
func (a *Agent) Run(ctx agent.InvocationContext) iter.Seq2[*session.Event, error] {
	return func(yield func(*session.Event, error) bool) {
		_, data, _ := stdagent.Handle(ctx, a.inner, []byte(getUserInput(ctx)))

		yield(responseEvent(ctx.InvocationID(), a.name, data), nil)
	}
}

func responseEvent(invocationID, author string, data []byte) *session.Event {
	event := session.NewEvent(invocationID)
	event.LLMResponse.Content = genai.NewContentFromText(string(bytes.TrimRight(data, "\n")), genai.RoleModel)
	event.Author = author

	return event
}

func getUserInput(ctx agent.InvocationContext) string {
	userContent := ctx.UserContent()
	if userContent != nil && len(userContent.Parts) > 0 {
		return userContent.Parts[0].Text
	}

	return ""
}
