package orchestrator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/panelmesh/agent"
	"github.com/hupe1980/panelmesh/core"
	"github.com/hupe1980/panelmesh/memory"
	"github.com/hupe1980/panelmesh/model"
)

// staticModel always completes with the same text (or error), regardless of
// input. Handy when the reply must be known without knowing the exact prompt.
type staticModel struct {
	text string
	err  error
	reqs []model.Request
}

func (m *staticModel) Complete(_ context.Context, req model.Request) (string, error) {
	m.reqs = append(m.reqs, req)
	if m.err != nil {
		return "", m.err
	}
	return m.text, nil
}

func (m *staticModel) Info() model.Info { return model.Info{Name: "static", Provider: "test"} }

// failingMemory simulates a broken memory backend.
type failingMemory struct{}

func (failingMemory) Append(string, string) error { return errors.New("disk full") }

func (failingMemory) Recall(string, int) ([]core.QA, error) { return nil, errors.New("disk gone") }

func newPeer(name, text string) (*agent.Agent, *staticModel) {
	m := &staticModel{text: text}
	return agent.New(name, "You are "+name+".", m), m
}

func TestNewRequiresDecisionAgent(t *testing.T) {
	_, err := New(nil, nil)
	require.Error(t, err)
}

func TestNewRejectsReservedPeerNames(t *testing.T) {
	peer, _ := newPeer(FinalKey, "x")
	decision, _ := newPeer("Decision", "final")
	_, err := New([]*agent.Agent{peer}, decision)
	require.Error(t, err)
}

func TestNewRejectsDuplicatePeerNames(t *testing.T) {
	p1, _ := newPeer("Twin", "a")
	p2, _ := newPeer("Twin", "b")
	decision, _ := newPeer("Decision", "final")
	_, err := New([]*agent.Agent{p1, p2}, decision)
	require.Error(t, err)
}

func TestAskPanelSequentialPeerVisibility(t *testing.T) {
	p1, _ := newPeer("First", "the first opinion")
	p2, m2 := newPeer("Second", "the second opinion")
	decision, _ := newPeer("Decision", "the conclusion")

	panel, err := New([]*agent.Agent{p1, p2}, decision)
	require.NoError(t, err)

	panel.AskPanel(context.Background(), "what should we do?")

	// The second peer's history must already contain the first peer's
	// name-tagged reply.
	require.Len(t, m2.reqs, 1)
	var sawFirst bool
	for _, turn := range m2.reqs[0].Turns {
		if strings.Contains(turn.Content, "[First] the first opinion") {
			sawFirst = true
		}
	}
	assert.True(t, sawFirst)
}

func TestAskPanelResultKeysWithFailingPeer(t *testing.T) {
	p1, _ := newPeer("Alpha", "fine")
	p2, m2 := newPeer("Beta", "")
	m2.err = errors.New("connection reset")
	p3, _ := newPeer("Gamma", "also fine")
	decision, _ := newPeer("Decision", "the conclusion")

	store := memory.NewInMemoryStore()
	panel, err := New([]*agent.Agent{p1, p2, p3}, decision, func(o *Options) {
		o.Memory = store
	})
	require.NoError(t, err)

	result := panel.AskPanel(context.Background(), "question")
	flat := result.Map()

	require.Len(t, flat, 4) // three peers + final
	assert.Equal(t, "fine", flat["Alpha"])
	assert.True(t, strings.HasPrefix(flat["Beta"], agent.ErrorSentinelPrefix))
	assert.Contains(t, flat["Beta"], "connection reset")
	assert.Equal(t, "the conclusion", flat[FinalKey])

	// A degraded peer must not block persistence.
	assert.Equal(t, 1, store.Len())
}

func TestAskPanelDecisionPromptStructure(t *testing.T) {
	p1, _ := newPeer("Alpha", "Answer: X")
	p2, _ := newPeer("Beta", "Answer: X")
	p3, _ := newPeer("Gamma", "Answer: X")
	decisionModel := &staticModel{text: "merged\n\nanswer\n\nmerged"}
	decision := agent.New("Decision", "Synthesize.", decisionModel)

	store := memory.NewInMemoryStore()
	panel, err := New([]*agent.Agent{p1, p2, p3}, decision, func(o *Options) {
		o.Memory = store
	})
	require.NoError(t, err)

	result := panel.AskPanel(context.Background(), "pick one")

	// The decision prompt carries exactly one labeled block per peer.
	require.Len(t, decisionModel.reqs, 1)
	req := decisionModel.reqs[0]
	prompt := req.Turns[len(req.Turns)-1].Content
	assert.Equal(t, 3, strings.Count(prompt, "Answer: X"))
	assert.Contains(t, prompt, "1) Alpha answer (for reference only):")
	assert.Contains(t, prompt, "2) Beta answer (for reference only):")
	assert.Contains(t, prompt, "3) Gamma answer (for reference only):")
	assert.Contains(t, prompt, "Do not restate")

	// The persisted answer equals the deduplicated decision output.
	assert.Equal(t, "merged\n\nanswer", result.Final)
	recalled, rerr := store.Recall("pick one", 1)
	require.NoError(t, rerr)
	require.Len(t, recalled, 1)
	assert.Equal(t, "merged\n\nanswer", recalled[0].Answer)
}

func TestAskPanelCritiqueRound(t *testing.T) {
	p1, _ := newPeer("Alpha", "alpha says yes")
	p2, _ := newPeer("Beta", "beta says no")
	criticModel := &staticModel{text: "alpha is stronger"}
	critic := agent.New("Critic", "Critique the others.", criticModel)
	decisionModel := &staticModel{text: "final verdict"}
	decision := agent.New("Decision", "Synthesize.", decisionModel)

	panel, err := New([]*agent.Agent{p1, p2}, decision, func(o *Options) {
		o.Critic = critic
	})
	require.NoError(t, err)

	result := panel.AskPanel(context.Background(), "yes or no?")

	// Critic sees the combined transcript of all peer replies.
	require.Len(t, criticModel.reqs, 1)
	criticInput := criticModel.reqs[0].Turns[len(criticModel.reqs[0].Turns)-1].Content
	assert.Contains(t, criticInput, "Alpha says: alpha says yes")
	assert.Contains(t, criticInput, "Beta says: beta says no")

	// Decision prompt includes the critique.
	decisionPrompt := decisionModel.reqs[0].Turns[len(decisionModel.reqs[0].Turns)-1].Content
	assert.Contains(t, decisionPrompt, "alpha is stronger")

	assert.Equal(t, "alpha is stronger", result.Critique)
	flat := result.Map()
	require.Len(t, flat, 4) // two peers + critique + final
	assert.Equal(t, "alpha is stronger", flat[CritiqueKey])
}

func TestAskPanelHistoryMonotonicity(t *testing.T) {
	decision, _ := newPeer("Decision", "answer")
	panel, err := New(nil, decision)
	require.NoError(t, err)

	const rounds = 4
	for i := 0; i < rounds; i++ {
		panel.AskPanel(context.Background(), "again")
	}

	// With no peers and no critic each round adds exactly one user turn and
	// one decision turn, and history never shrinks.
	assert.Equal(t, rounds*2, panel.History().Len())
}

func TestAskPanelHistoryOrderWithinRound(t *testing.T) {
	p1, _ := newPeer("Alpha", "a-reply")
	p2, _ := newPeer("Beta", "b-reply")
	decision, _ := newPeer("Decision", "d-reply")

	panel, err := New([]*agent.Agent{p1, p2}, decision)
	require.NoError(t, err)

	panel.AskPanel(context.Background(), "the question")

	turns := panel.History().Snapshot()
	require.Len(t, turns, 4)
	assert.Equal(t, core.RoleUser, turns[0].Role)
	assert.Equal(t, "the question", turns[0].Content)
	assert.Equal(t, "[Alpha] a-reply", turns[1].Content)
	assert.Equal(t, "[Beta] b-reply", turns[2].Content)
	assert.Equal(t, "[Decision] d-reply", turns[3].Content)
}

func TestAskPanelMemoryRecallAugmentsInput(t *testing.T) {
	store := memory.NewInMemoryStore()
	require.NoError(t, store.Append("how do goroutines work", "they are green threads"))

	peer, peerModel := newPeer("Alpha", "reply")
	decision, decisionModel := newPeer("Decision", "final")

	panel, err := New([]*agent.Agent{peer}, decision, func(o *Options) {
		o.Memory = store
	})
	require.NoError(t, err)

	panel.AskPanel(context.Background(), "how do goroutines get scheduled")

	// Peers receive the memory-augmented input, not the raw message.
	require.Len(t, peerModel.reqs, 1)
	input := peerModel.reqs[0].Turns[len(peerModel.reqs[0].Turns)-1].Content
	assert.Contains(t, input, "Past question: how do goroutines work")
	assert.Contains(t, input, "Current question: how do goroutines get scheduled")

	// The decision prompt carries the recalled block too.
	prompt := decisionModel.reqs[0].Turns[len(decisionModel.reqs[0].Turns)-1].Content
	assert.Contains(t, prompt, "they are green threads")
}

func TestAskPanelNoRecallUsesRawMessage(t *testing.T) {
	peer, peerModel := newPeer("Alpha", "reply")
	decision, _ := newPeer("Decision", "final")

	panel, err := New([]*agent.Agent{peer}, decision)
	require.NoError(t, err)

	panel.AskPanel(context.Background(), "fresh question")

	input := peerModel.reqs[0].Turns[len(peerModel.reqs[0].Turns)-1].Content
	assert.Equal(t, "fresh question", input)
}

func TestAskPanelSurvivesBrokenMemory(t *testing.T) {
	peer, _ := newPeer("Alpha", "reply")
	decision, _ := newPeer("Decision", "final")

	panel, err := New([]*agent.Agent{peer}, decision, func(o *Options) {
		o.Memory = failingMemory{}
	})
	require.NoError(t, err)

	result := panel.AskPanel(context.Background(), "question")

	assert.Equal(t, "final", result.Final)
	assert.Equal(t, "reply", result.Responses["Alpha"])
}

func TestAskPanelAllPeersFailing(t *testing.T) {
	p1, m1 := newPeer("Alpha", "")
	m1.err = errors.New("down")
	p2, m2 := newPeer("Beta", "")
	m2.err = errors.New("also down")
	decision, _ := newPeer("Decision", "every source failed")

	store := memory.NewInMemoryStore()
	panel, err := New([]*agent.Agent{p1, p2}, decision, func(o *Options) {
		o.Memory = store
	})
	require.NoError(t, err)

	// Not a distinct error path: the decision round runs over sentinel
	// inputs and the record is still persisted.
	result := panel.AskPanel(context.Background(), "question")
	assert.Equal(t, "every source failed", result.Final)
	assert.Equal(t, 1, store.Len())
}

func TestAskPanelTwoRoundsAreIndependent(t *testing.T) {
	peer, _ := newPeer("Alpha", "reply")
	decision, _ := newPeer("Decision", "final")
	store := memory.NewInMemoryStore()

	panel, err := New([]*agent.Agent{peer}, decision, func(o *Options) {
		o.Memory = store
	})
	require.NoError(t, err)

	panel.AskPanel(context.Background(), "same text")
	panel.AskPanel(context.Background(), "same text")

	// No dedup at the entry point: two rounds, two records.
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, 6, panel.History().Len())
}
