package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/panelmesh/core"
	"github.com/hupe1980/panelmesh/logging"
	"github.com/hupe1980/panelmesh/model"
	"github.com/hupe1980/panelmesh/textnorm"
)

// Sentinel prefixes for degraded replies. They flow into history and later
// rounds exactly like real content.
const (
	ErrorSentinelPrefix    = "[error]"
	DisabledSentinelPrefix = "[disabled]"
)

// Options configure an Agent instance.
type Options struct {
	// Disabled marks the backend as administratively unavailable (feature
	// flag off, missing credential). A disabled agent never calls its model
	// and replies with a fixed sentinel carrying this reason.
	Disabled string
	Logger   logging.Logger
}

// Agent is a named capability wrapper around one backend. Immutable after
// construction; one instance per backend role (peer, critic, decision).
type Agent struct {
	name     string
	role     string
	llm      model.Model
	disabled string
	logger   logging.Logger
}

// New creates an agent with the given name, role description and model.
func New(name, roleDescription string, llm model.Model, optFns ...func(o *Options)) *Agent {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Agent{
		name:     name,
		role:     roleDescription,
		llm:      llm,
		disabled: opts.Disabled,
		logger:   logging.OrNoOp(opts.Logger),
	}
}

// Name returns the agent's external identifier.
func (a *Agent) Name() string { return a.name }

// RoleDescription returns the system instruction the agent speaks under.
func (a *Agent) RoleDescription() string { return a.role }

// Disabled reports whether the agent is administratively disabled.
func (a *Agent) Disabled() bool { return a.disabled != "" }

// Respond builds the ordered message list (role instruction, shared history,
// user message), forwards it to the capability and returns the reply with
// duplicate paragraphs removed.
//
// The capability never errors past this boundary: any failure is converted to
// a human-readable inline sentinel and returned as if it were a normal reply.
func (a *Agent) Respond(ctx context.Context, history []core.Turn, userMessage string) core.Reply {
	if a.disabled != "" {
		return core.FailedReply(fmt.Sprintf("%s %s", DisabledSentinelPrefix, a.disabled))
	}

	turns := make([]core.Turn, 0, len(history)+1)
	turns = append(turns, history...)
	turns = append(turns, core.UserTurn(userMessage))

	req := model.Request{System: a.role, Turns: turns}

	a.logger.Debug("agent request", "agent", a.name, "model", a.llm.Info().Name, "turns", len(turns))
	start := time.Now()

	text, err := a.llm.Complete(ctx, req)
	if err != nil {
		a.logger.Warn("agent call failed", "agent", a.name, "duration", time.Since(start), "error", err)
		return core.FailedReply(fmt.Sprintf("%s %s", ErrorSentinelPrefix, err))
	}

	a.logger.Debug("agent reply", "agent", a.name, "duration", time.Since(start))
	return core.OkReply(textnorm.Normalize(text))
}
