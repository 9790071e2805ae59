// Package gemini provides a model wrapper for the Google Gemini
// generateContent REST API. Gemini has no official Go SDK in this stack, so
// the adapter talks to the HTTP endpoint directly. The conversation is
// flattened into a single role-labeled prompt because generateContent takes
// plain content parts rather than chat messages.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/hupe1980/panelmesh/core"
	"github.com/hupe1980/panelmesh/model"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Options configures the Gemini model adapter.
type Options struct {
	Model   string
	APIKey  string
	BaseURL string
}

// Model wraps the Gemini generateContent API behind the generic model.Model interface.
type Model struct {
	client *resty.Client
	opts   Options
}

var _ model.Model = (*Model)(nil)

// NewModel creates a new Gemini model.
func NewModel(optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:   "gemini-2.0-flash",
		BaseURL: defaultBaseURL,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-goog-api-key", opts.APIKey)

	return &Model{client: client, opts: opts}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Complete implements model.Model.
func (m *Model) Complete(ctx context.Context, req model.Request) (string, error) {
	body := generateRequest{
		Contents: []content{{Parts: []part{{Text: flattenPrompt(req)}}}},
	}

	var out generateResponse
	resp, err := m.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post(fmt.Sprintf("/models/%s:generateContent", m.opts.Model))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini returned %s: %s", resp.Status(), resp.String())
	}
	if len(out.Candidates) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var texts []string
	for _, p := range out.Candidates[0].Content.Parts {
		if p.Text != "" {
			texts = append(texts, p.Text)
		}
	}
	contentText := strings.TrimSpace(strings.Join(texts, "\n"))
	if contentText == "" {
		return "", fmt.Errorf("gemini returned an empty completion")
	}
	return contentText, nil
}

// flattenPrompt renders system instruction and turns into one labeled prompt.
func flattenPrompt(req model.Request) string {
	blocks := make([]string, 0, len(req.Turns)+1)
	if req.System != "" {
		blocks = append(blocks, "[SYSTEM ROLE]: "+req.System)
	}
	for _, t := range req.Turns {
		switch t.Role {
		case core.RoleSystem:
			blocks = append(blocks, "[SYSTEM ROLE]: "+t.Content)
		case core.RoleUser:
			blocks = append(blocks, "[USER]: "+t.Content)
		default:
			blocks = append(blocks, "[ASSISTANT]: "+t.Content)
		}
	}
	return strings.Join(blocks, "\n\n")
}

// Info returns metadata describing this Gemini model implementation.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.opts.Model, Provider: "gemini"}
}
