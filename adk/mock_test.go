package adk

import (
	"context"
	"iter"

	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
	"google.golang.org/genai"
)

type mockInvocationContext struct {
	context.Context
	userContent *genai.Content
}

func newMockContext(input string) *mockInvocationContext {
	content := &genai.Content{Role: genai.RoleUser}
	if input != "" {
		content = genai.NewContentFromText(input, genai.RoleUser)
	}

	return &mockInvocationContext{Context: context.Background(), userContent: content}
}

func (m *mockInvocationContext) UserContent() *genai.Content {
	return m.userContent
}

func (m *mockInvocationContext) InvocationID() string {
	return "test-id"
}

func (m *mockInvocationContext) Artifacts() agent.Artifacts {
	return nil
}

func (m *mockInvocationContext) Memory() agent.Memory {
	return nil
}

func (m *mockInvocationContext) Session() session.Session {
	return nil
}

func (m *mockInvocationContext) Agent() agent.Agent {
	return nil
}

func (m *mockInvocationContext) Branch() string {
	return ""
}

func (m *mockInvocationContext) RunConfig() *agent.RunConfig {
	return nil
}

func (m *mockInvocationContext) EndInvocation() {}
func (m *mockInvocationContext) Ended() bool    { return false }

// collect returns the text of every event and the first error yielded.
func collect(events iter.Seq2[*session.Event, error]) ([]string, error) {
	var (
		texts    []string
		firstErr error
	)

	for event, err := range events {
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}

			continue
		}

		if event.LLMResponse.Content != nil && len(event.LLMResponse.Content.Parts) > 0 {
			texts = append(texts, event.LLMResponse.Content.Parts[0].Text)
		}
	}

	return texts, firstErr
}
