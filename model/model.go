package model

import (
	"context"
	"fmt"

	"github.com/hupe1980/panelmesh/core"
)

// Request captures the normalized model input produced by agents: an optional
// system instruction plus the ordered conversation turns ending with the
// current user message.
type Request struct {
	System string      `json:"system,omitempty"`
	Turns  []core.Turn `json:"turns"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "gemini", "xai", ...
}

// Model is the minimal interface required to drive generation. Complete
// blocks until the backend returns a full reply or fails; adapters may
// return any error, the agent layer converts it to sentinel text.
type Model interface {
	Complete(ctx context.Context, req Request) (string, error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// It replies to the content of the last turn with a canned response, or a
// generic echo when none is registered. A forced error simulates transport
// failure.
type MockModel struct {
	info      Info
	responses map[string]string
	err       error
	requests  []Request
}

// NewMockModel constructs a MockModel identified by name and provider.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: provider},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) { m.responses[prompt] = response }

// FailWith makes every subsequent Complete call return err.
func (m *MockModel) FailWith(err error) { m.err = err }

// Requests returns every request received so far, in call order.
func (m *MockModel) Requests() []Request { return m.requests }

// Complete implements Model.
func (m *MockModel) Complete(_ context.Context, req Request) (string, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return "", m.err
	}
	if len(req.Turns) == 0 {
		return "", fmt.Errorf("no turns provided")
	}
	input := req.Turns[len(req.Turns)-1].Content
	if resp, ok := m.responses[input]; ok {
		return resp, nil
	}
	return fmt.Sprintf("Mock response to: %s", input), nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
