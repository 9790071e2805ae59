// Package xai provides a model wrapper for the xAI Grok API. The endpoint is
// OpenAI Chat Completions compatible, so the adapter reuses the OpenAI client
// pointed at the x.ai base URL.
package xai

import (
	"context"

	"github.com/hupe1980/panelmesh/model"
	openaimodel "github.com/hupe1980/panelmesh/model/openai"
)

const defaultBaseURL = "https://api.x.ai/v1"

// Options configures the xAI model adapter.
type Options struct {
	Model   string
	APIKey  string
	BaseURL string
}

// Model wraps an OpenAI-compatible client speaking to the xAI endpoint.
type Model struct {
	inner *openaimodel.Model
	opts  Options
}

var _ model.Model = (*Model)(nil)

// NewModel creates a new Grok model.
func NewModel(optFns ...func(o *Options)) *Model {
	opts := Options{
		Model:   "grok-2-latest",
		BaseURL: defaultBaseURL,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	inner := openaimodel.NewModel(func(o *openaimodel.Options) {
		o.Model = opts.Model
		o.APIKey = opts.APIKey
		o.BaseURL = opts.BaseURL
	})

	return &Model{inner: inner, opts: opts}
}

// Complete implements model.Model.
func (m *Model) Complete(ctx context.Context, req model.Request) (string, error) {
	return m.inner.Complete(ctx, req)
}

// Info returns metadata describing this Grok model implementation.
func (m *Model) Info() model.Info {
	return model.Info{Name: m.opts.Model, Provider: "xai"}
}
