package orchestrator

// Reserved result keys. Peer agents must not use these as names.
const (
	// FinalKey keys the decision agent's consolidated answer.
	FinalKey = "final"
	// CritiqueKey keys the critic's review when a critic is configured.
	CritiqueKey = "critique"
)

// Result carries everything one panel round produced: each peer's reply by
// agent name, the critic's review (empty unless a critic is configured) and
// the decision agent's final answer. It is transient; history and memory have
// already been updated by the time a Result is returned.
type Result struct {
	Responses map[string]string
	Critique  string
	Final     string

	hasCritic bool
}

// Map flattens the result into a single per-key mapping: one entry per peer
// name, the reserved "final" key and, when a critic is active, "critique".
func (r *Result) Map() map[string]string {
	out := make(map[string]string, len(r.Responses)+2)
	for name, text := range r.Responses {
		out[name] = text
	}
	out[FinalKey] = r.Final
	if r.hasCritic {
		out[CritiqueKey] = r.Critique
	}
	return out
}
