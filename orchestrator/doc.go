// Package orchestrator sequences peer, critic and decision rounds over a
// shared conversation history. A Panel walks a fixed round state machine per
// user question: Idle → PeerRound → [CritiqueRound] → DecisionRound →
// Persisted → Idle. Peers run strictly sequentially in declared order so each
// may see the prior peers' replies in history; the decision agent synthesizes
// one consolidated answer which is persisted to QA memory.
//
// There is no fatal error path inside a round: every failure mode degrades to
// inline sentinel text so the caller always receives some answer.
package orchestrator
