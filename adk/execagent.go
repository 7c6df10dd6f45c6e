package adk

import (
	"context"
	"errors"
	"fmt"
	"iter"

	"github.com/metalagman/stdagent/invoke"
	"google.golang.org/adk/agent"
	"google.golang.org/adk/session"
)

func errRequired(field string) error {
	return fmt.Errorf("%s is required", field)
}

// ExecAgent is an agent implementation that executes an external agent
// process speaking the stdin/stdout contract.
type ExecAgent struct {
	agent.Agent
	opts ExecAgentOptions
}

// NewExecAgent creates a new ExecAgent instance using functional options.
func NewExecAgent(
	name string,
	description string,
	cmd []string,
	setters ...ExecAgentOption,
) (*ExecAgent, error) {
	opts := NewExecAgentOptions(name, description, cmd, setters...)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	a := &ExecAgent{opts: opts}

	ag, err := agent.New(agent.Config{
		Name:        a.opts.name,
		Description: a.opts.description,
		Run:         a.Run,
	})
	if err != nil {
		return nil, fmt.Errorf("create agent: %w", err)
	}

	a.Agent = ag

	return a, nil
}

// Run implements the agent.Agent interface.
// The user content is sent as the request and the agent's response is
// returned as the model reply. A response with success=false is still a
// reply; only a broken contract is yielded as an error.
func (a *ExecAgent) Run(ctx agent.InvocationContext) iter.Seq2[*session.Event, error] {
	return func(yield func(*session.Event, error) bool) {
		agentCmd := append([]string(nil), a.opts.cmd...)
		if len(a.opts.extraArgs) > 0 {
			agentCmd = append(agentCmd, a.opts.extraArgs...)
		}

		runner, err := invoke.NewRunner(invoke.Config{
			Cmd:         agentCmd,
			Dir:         a.opts.runDir,
			InputSchema: a.opts.inputSchema,
		})
		if err != nil {
			yield(nil, fmt.Errorf("create runner: %w", err))

			return
		}

		runCtx := context.Context(ctx)

		if a.opts.timeout > 0 {
			var cancel context.CancelFunc

			runCtx, cancel = context.WithTimeout(runCtx, a.opts.timeout)
			defer cancel()
		}

		res, err := runner.RunRaw(runCtx, []byte(getUserInput(ctx)))
		if err != nil {
			yield(nil, a.runError(res, err))

			return
		}

		yield(responseEvent(ctx.InvocationID(), a.opts.name, res.Stdout), nil)
	}
}

func (a *ExecAgent) runError(res invoke.Result, err error) error {
	if errors.Is(err, invoke.ErrMalformedOutput) && len(res.Stderr) > 0 {
		return fmt.Errorf("run failed: %w (stderr: %s)", err, string(res.Stderr))
	}

	return fmt.Errorf("run failed: %w", err)
}
