// Package textnorm removes duplicate paragraphs from generated responses.
// Panel rounds feed every model reply (and the decision output) through
// Normalize so repeated blocks never accumulate in history or memory.
package textnorm

import "strings"

// separator is the paragraph boundary: a blank line.
const separator = "\n\n"

// Normalize splits text into paragraph blocks, trims each block, drops empty
// blocks and keeps only the first occurrence of each distinct trimmed block.
// Survivors are rejoined with the paragraph separator in their original
// relative order.
//
// Normalize is idempotent, never increases paragraph count and never reorders
// surviving paragraphs. It has no failure modes.
func Normalize(text string) string {
	blocks := strings.Split(text, separator)
	seen := make(map[string]struct{}, len(blocks))
	result := make([]string, 0, len(blocks))

	for _, block := range blocks {
		norm := strings.TrimSpace(block)
		if norm == "" {
			continue
		}
		if _, dup := seen[norm]; dup {
			continue
		}
		seen[norm] = struct{}{}
		result = append(result, norm)
	}

	return strings.Join(result, separator)
}
