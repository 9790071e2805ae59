package orchestrator

import (
	"fmt"
	"strings"

	"github.com/hupe1980/panelmesh/core"
)

// formatMemoryBlock renders recalled question/answer pairs into the prefix
// prepended to the round input. Returns "" when nothing was recalled.
func formatMemoryBlock(memories []core.QA) string {
	if len(memories) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("These question/answer pairs were exchanged with this user in the past, take them into account:\n\n")
	for i, mem := range memories {
		fmt.Fprintf(&b, "%d) Past question: %s\n   Given answer: %s\n\n", i+1, mem.Question, mem.Answer)
	}
	return b.String()
}

// buildRoundInput prepends the recalled memory block to the user message.
func buildRoundInput(userMessage string, memories []core.QA) string {
	block := formatMemoryBlock(memories)
	if block == "" {
		return userMessage
	}
	return block + "Current question: " + userMessage
}

// buildCritiqueInput assembles the combined transcript of all peer replies
// handed to the critic agent.
func buildCritiqueInput(order []string, responses map[string]string) string {
	var b strings.Builder
	b.WriteString("Below are the answers the other agents gave. Critique them in detail, noting their weak and strong points:\n\n")
	for _, name := range order {
		fmt.Fprintf(&b, "%s says: %s\n\n", name, responses[name])
	}
	return b.String()
}

// buildDecisionPrompt assembles the synthesis prompt for the decision agent:
// every peer reply labeled for reference only, the critic's review and the
// recalled memory when present, plus the merge/no-repeat instructions.
func buildDecisionPrompt(order []string, responses map[string]string, critique string, memories []core.QA) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Below are the answers of %d different experts.\n\n", len(order))
	for i, name := range order {
		fmt.Fprintf(&b, "%d) %s answer (for reference only):\n%s\n\n", i+1, name, responses[name])
	}

	if critique != "" {
		fmt.Fprintf(&b, "A critic reviewed the expert answers as follows (for reference only):\n%s\n\n", critique)
	}

	if len(memories) > 0 {
		b.WriteString("Also, these question/answer pairs were exchanged with this user in the past (use them as reference too):\n")
		for _, mem := range memories {
			fmt.Fprintf(&b, "- Question: %s\n  Answer: %s\n", mem.Question, mem.Answer)
		}
		b.WriteString("\n")
	}

	b.WriteString("Your task is to weigh these answers and any past question/answer pairs, " +
		"resolve contradictions, merge the strongest points and produce a single clear conclusion for the user.\n\n" +
		"SPECIAL INSTRUCTIONS:\n" +
		"- Do not restate the other experts' answers verbatim.\n" +
		"- If the experts say the same thing in different words, merge it into one short sentence.\n" +
		"- Use each heading at most once; never open the same heading twice.\n" +
		"- Avoid needless repetition; the reader's time is limited.\n" +
		"Now write one clean, well-structured, repetition-free answer in your own words.")
	return b.String()
}
