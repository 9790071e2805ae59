// Package model defines the capability boundary between the orchestration
// pipeline and concrete text-generation backends. Adapters for individual
// providers live in subpackages (openai, anthropic, gemini, xai); the panel
// only depends on the Model interface. Generation is blocking and
// non-streaming: one request, one completed text.
package model
