package memory

import (
	"sort"
	"strings"

	"github.com/hupe1980/panelmesh/core"
)

// tokenize lowercases and splits on whitespace, returning the distinct token set.
func tokenize(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// overlap returns the size of the intersection of two token sets.
func overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			n++
		}
	}
	return n
}

// rank scores each record by word overlap between its question and the query
// and returns the top limit records, most relevant first. Records with zero
// score are excluded; ties keep insertion order (stable sort). An empty query
// yields nil.
func rank(records []core.QA, query string, limit int) []core.QA {
	queryTokens := tokenize(query)
	if len(queryTokens) == 0 || limit <= 0 {
		return nil
	}

	type scored struct {
		qa    core.QA
		score int
	}
	candidates := make([]scored, 0, len(records))
	for _, rec := range records {
		if s := overlap(queryTokens, tokenize(rec.Question)); s > 0 {
			candidates = append(candidates, scored{qa: rec, score: s})
		}
	}
	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	result := make([]core.QA, len(candidates))
	for i, c := range candidates {
		result[i] = c.qa
	}
	return result
}
