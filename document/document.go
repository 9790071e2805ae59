// Package document prepares local files for panel analysis. It loads a
// supported document, renders a model-friendly preview plus derived
// statistics and wraps user questions in the document context. Supported
// formats: plain text (.txt) and CSV tables (.csv).
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// maxTextChars bounds how much raw text is handed to the models.
const maxTextChars = 8000

// Preview is the model-facing rendition of a loaded document: the main
// content preview and an extra block with derived analysis/statistics.
type Preview struct {
	Main  string
	Extra string
}

// Load reads the file at path and produces its preview. Unsupported
// extensions are an error.
func Load(path string) (*Preview, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("document not found: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".txt":
		return loadText(path)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported document extension %q (supported: .txt, .csv)", ext)
	}
}

func loadText(path string) (*Preview, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text file: %w", err)
	}
	content := string(data)
	if len(content) > maxTextChars {
		content = content[:maxTextChars] + "\n\n...[text truncated]..."
	}
	return &Preview{
		Main:  content,
		Extra: "This document was loaded as plain text (.txt). No table statistics were produced.",
	}, nil
}

// Context renders the document preamble handed to the panel before the
// user's questions.
func (p *Preview) Context() string {
	return fmt.Sprintf(
		"Below is the content of a document supplied by the user, together with summaries prepared for you.\n\n"+
			"---------------- DOCUMENT PREVIEW START ----------------\n%s\n"+
			"---------------- DOCUMENT PREVIEW END ----------------\n\n"+
			"---------------- EXTRA ANALYSIS / STATISTICS START ----------------\n%s\n"+
			"---------------- EXTRA ANALYSIS / STATISTICS END ----------------\n\n"+
			"The user will ask questions about this document. First show briefly that you understood the data, "+
			"then produce deeper analysis, interpretation or ideas as requested. State any assumptions explicitly.\n\n",
		p.Main, p.Extra,
	)
}

// FirstQuestion wraps the opening question in the full document context.
func (p *Preview) FirstQuestion(question string) string {
	return p.Context() +
		"The user's first request about this document:\n" + question + "\n\n" +
		"Start with a short summary showing you understood the document, then answer in detail. " +
		"Highlight important metrics and explain trends, risks and opportunities."
}

// FollowUp wraps a follow-up question; the document context is already in
// the conversation history so it is not repeated.
func FollowUp(question string) string {
	return "We are still discussing the same document. You do not need to summarize it again; " +
		"take the earlier exchanges into account.\n\n" +
		"The user's new question or request:\n" + question + "\n\n" +
		"Answer this new question directly, without contradicting your earlier replies and without repetition."
}
