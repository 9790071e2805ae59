package orchestrator

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hupe1980/panelmesh/agent"
	"github.com/hupe1980/panelmesh/core"
	"github.com/hupe1980/panelmesh/logging"
	"github.com/hupe1980/panelmesh/memory"
)

// defaultRecallLimit bounds how many past question/answer pairs are folded
// into a round's input.
const defaultRecallLimit = 3

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// Critic enables the optional critique round between the peer and
	// decision rounds. Nil leaves the round out entirely.
	Critic *agent.Agent
	// History is the per-session conversation record. Defaults to a fresh
	// empty history.
	History *core.History
	// Memory is the process-wide QA store. Defaults to a volatile in-memory
	// store; supply a JSONLStore for durability across sessions.
	Memory core.MemoryStore
	// RecallLimit caps recalled memories per round. Defaults to 3.
	RecallLimit int
	// SessionID identifies this session in logs. Defaults to a random UUID.
	SessionID string
	// Logger receives structured round diagnostics. Defaults to NoOp.
	Logger logging.Logger
}

// Panel coordinates the peer, critique and decision rounds for one session.
// A Panel owns its History exclusively; the MemoryStore may be shared between
// sessions since appends are atomic line writes. Rounds are strictly
// sequential and order-dependent: each peer sees every earlier reply.
type Panel struct {
	peers       []*agent.Agent
	critic      *agent.Agent
	decision    *agent.Agent
	history     *core.History
	memory      core.MemoryStore
	recallLimit int
	sessionID   string
	logger      logging.Logger
}

// New constructs a Panel from the declared peer order and a decision agent.
// Peer names must be unique and must not collide with the reserved result
// keys.
func New(peers []*agent.Agent, decision *agent.Agent, optFns ...func(o *Options)) (*Panel, error) {
	if decision == nil {
		return nil, fmt.Errorf("decision agent is required")
	}

	opts := Options{
		History:     core.NewHistory(),
		Memory:      memory.NewInMemoryStore(),
		RecallLimit: defaultRecallLimit,
		SessionID:   uuid.NewString(),
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	seen := map[string]bool{FinalKey: true, CritiqueKey: true}
	for _, p := range peers {
		if seen[p.Name()] {
			return nil, fmt.Errorf("peer name %q is duplicated or reserved", p.Name())
		}
		seen[p.Name()] = true
	}

	return &Panel{
		peers:       peers,
		critic:      opts.Critic,
		decision:    decision,
		history:     opts.History,
		memory:      opts.Memory,
		recallLimit: opts.RecallLimit,
		sessionID:   opts.SessionID,
		logger:      logging.OrNoOp(opts.Logger),
	}, nil
}

// History returns the session's conversation history.
func (p *Panel) History() *core.History { return p.history }

// AskPanel runs one full round for the user message and returns every reply.
// It never fails: backend errors surface as sentinel text in the result and
// memory I/O problems are logged without aborting the round. Calling it twice
// with the same text produces two independent rounds and two memory records.
func (p *Panel) AskPanel(ctx context.Context, userMessage string) *Result {
	p.logger.Info("panel round started", "session", p.sessionID, "peers", len(p.peers), "critic", p.critic != nil)

	// Idle -> PeerRound: record the question, recall related memories and
	// build the memory-augmented round input.
	p.history.Append(core.UserTurn(userMessage))

	memories := p.recall(userMessage)
	roundInput := buildRoundInput(userMessage, memories)

	// PeerRound: strictly sequential in declared order. Each reply is
	// appended to history before the next peer runs, so later peers can
	// reference earlier ones.
	order := make([]string, 0, len(p.peers))
	responses := make(map[string]string, len(p.peers))
	for _, peer := range p.peers {
		reply := peer.Respond(ctx, p.history.Snapshot(), roundInput)
		if reply.Failed {
			p.logger.Warn("peer degraded to sentinel", "session", p.sessionID, "peer", peer.Name())
		}
		order = append(order, peer.Name())
		responses[peer.Name()] = reply.Text
		p.history.Append(core.AssistantTurn(tagged(peer.Name(), reply.Text)))
	}

	// CritiqueRound (optional): the critic reads the combined transcript.
	var critique string
	hasCritic := p.critic != nil
	if hasCritic {
		reply := p.critic.Respond(ctx, p.history.Snapshot(), buildCritiqueInput(order, responses))
		critique = reply.Text
		p.history.Append(core.AssistantTurn(tagged(p.critic.Name(), critique)))
	}

	// DecisionRound: synthesize one consolidated, deduplicated answer.
	decisionPrompt := buildDecisionPrompt(order, responses, critique, memories)
	finalReply := p.decision.Respond(ctx, p.history.Snapshot(), decisionPrompt)
	final := finalReply.Text
	p.history.Append(core.AssistantTurn(tagged(p.decision.Name(), final)))

	// Persisted: write-after-respond. The user already has their answer, so
	// a failed append is reported but never aborts the round.
	if err := p.memory.Append(userMessage, final); err != nil {
		p.logger.Error("memory append failed", "session", p.sessionID, "error", err)
	}

	p.logger.Info("panel round completed", "session", p.sessionID, "history_len", p.history.Len())

	return &Result{
		Responses: responses,
		Critique:  critique,
		Final:     final,
		hasCritic: hasCritic,
	}
}

// recall looks up related past rounds; failures degrade to no recall.
func (p *Panel) recall(query string) []core.QA {
	memories, err := p.memory.Recall(query, p.recallLimit)
	if err != nil {
		p.logger.Warn("memory recall failed", "session", p.sessionID, "error", err)
		return nil
	}
	return memories
}

// tagged prefixes a reply with its author's name for the shared history.
func tagged(name, text string) string {
	return fmt.Sprintf("[%s] %s", name, text)
}
