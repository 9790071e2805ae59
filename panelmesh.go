// Package panelmesh provides a high-level façade over the orchestration
// pipeline, wiring the default expert panel (OpenAI, Gemini, optional Grok,
// Claude plus a decision agent) from environment configuration. Most
// applications interact with this package by:
//  1. Loading a config via config.Load()
//  2. Creating a panel via New() (optionally enabling the critique round or
//     overriding the memory store / logger)
//  3. Calling AskPanel per user question
//
// The façade delegates orchestration to orchestrator.Panel while keeping
// setup ergonomics concise. Defaults are safe for local use: durable JSONL
// memory in the working directory and no logging.
package panelmesh

import (
	"fmt"

	"github.com/hupe1980/panelmesh/agent"
	"github.com/hupe1980/panelmesh/config"
	"github.com/hupe1980/panelmesh/core"
	"github.com/hupe1980/panelmesh/logging"
	"github.com/hupe1980/panelmesh/memory"
	anthropicmodel "github.com/hupe1980/panelmesh/model/anthropic"
	geminimodel "github.com/hupe1980/panelmesh/model/gemini"
	openaimodel "github.com/hupe1980/panelmesh/model/openai"
	xaimodel "github.com/hupe1980/panelmesh/model/xai"
	"github.com/hupe1980/panelmesh/orchestrator"

	"github.com/anthropics/anthropic-sdk-go"
)

// Options configures the default panel.
type Options struct {
	// EnableCritic inserts the critique round between peers and decision.
	EnableCritic bool
	// Memory overrides the JSONL store derived from cfg.MemoryPath.
	Memory core.MemoryStore
	// Logger defaults to NoOp, or an slog text logger when cfg.Debug is set.
	Logger logging.Logger
}

// New wires the default four-expert panel from the given configuration.
func New(cfg *config.Config, optFns ...func(o *Options)) (*orchestrator.Panel, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	logger := opts.Logger
	if logger == nil && cfg.Debug {
		logger = logging.NewSlogLogger(&logging.Config{Level: logging.LogLevelDebug, Format: "text"})
	}
	logger = logging.OrNoOp(logger)

	mem := opts.Memory
	if mem == nil {
		mem = memory.NewJSONLStore(cfg.MemoryPath, func(o *memory.JSONLStoreOptions) {
			o.Logger = logger
		})
	}

	openaiLLM := openaimodel.NewModel(func(o *openaimodel.Options) {
		o.Model = cfg.OpenAI.Model
		o.APIKey = cfg.OpenAI.APIKey
	})
	geminiLLM := geminimodel.NewModel(func(o *geminimodel.Options) {
		o.Model = cfg.Gemini.Model
		o.APIKey = cfg.Gemini.APIKey
	})
	claudeLLM := anthropicmodel.NewModel(func(o *anthropicmodel.Options) {
		o.Model = anthropic.Model(cfg.Anthropic.Model)
		o.APIKey = cfg.Anthropic.APIKey
	})

	peers := []*agent.Agent{
		agent.New("OpenAIExpert",
			"You are an analytical and explanatory expert. Answer the user's question in a logical, "+
				"detailed and instructive way. Avoid unnecessary repetition in your answer.",
			openaiLLM, withLogger(logger)),
		agent.New("GeminiExpert",
			"You are a different model with an alternative perspective. Answer the user's question from "+
				"another angle and complete the points the others may have missed. Instead of copying what "+
				"OpenAIExpert is likely to say, focus on points that complement and differentiate.",
			geminiLLM, withLogger(logger)),
		newGrokPeer(cfg, logger),
		agent.New("ClaudeExpert",
			"You are a strategic expert. Focus on producing structured, consistent and balanced answers. "+
				"Offer a perspective that completes what the other models said and fills their gaps.",
			claudeLLM, withLogger(logger)),
	}

	decision := agent.New("DecisionAgent",
		"Your job is to read the answers of OpenAIExpert, GeminiExpert, GrokExpert and ClaudeExpert and "+
			"produce one clear and balanced final conclusion. Fix contradictions, find common ground, weigh "+
			"pros and cons when needed and end with a clear recommendation.\n\n"+
			"VERY IMPORTANT RULES:\n"+
			"- Never repeat the same idea or paragraph in different words.\n"+
			"- Use each heading (for example 'Summary', 'Deep Analysis') only once.\n"+
			"- If the models say the same thing, summarize it a single time.\n"+
			"- Keep the answer tidy, not needlessly long and free of repetition.\n"+
			"- Do not copy or quote the other experts' answers at length; write a short common summary in your own words.",
		openaiLLM, withLogger(logger))

	panelOpts := []func(o *orchestrator.Options){func(o *orchestrator.Options) {
		o.Memory = mem
		o.Logger = logger
	}}
	if opts.EnableCritic {
		critic := agent.New("Critic",
			"Critique the other agents' answers: find the weak points, name the strong ones and say what is missing.",
			openaiLLM, withLogger(logger))
		panelOpts = append(panelOpts, func(o *orchestrator.Options) { o.Critic = critic })
	}

	return orchestrator.New(peers, decision, panelOpts...)
}

// newGrokPeer returns the Grok peer, administratively disabled when the
// feature flag is off or the credential is missing.
func newGrokPeer(cfg *config.Config, logger logging.Logger) *agent.Agent {
	role := "You are a Grok (xAI) based model. Stand out with immediacy, pragmatism and crisp explanations. " +
		"If you are unavailable due to network issues, say so politely."

	if !cfg.UseGrok {
		return agent.New("GrokExpert", role, nil, func(o *agent.Options) {
			o.Disabled = "USE_GROK is off in this environment"
			o.Logger = logger
		})
	}
	if cfg.XAI.APIKey == "" {
		return agent.New("GrokExpert", role, nil, func(o *agent.Options) {
			o.Disabled = "XAI_API_KEY is not set"
			o.Logger = logger
		})
	}

	grokLLM := xaimodel.NewModel(func(o *xaimodel.Options) {
		o.Model = cfg.XAI.Model
		o.APIKey = cfg.XAI.APIKey
	})
	return agent.New("GrokExpert", role, grokLLM, withLogger(logger))
}

func withLogger(logger logging.Logger) func(o *agent.Options) {
	return func(o *agent.Options) { o.Logger = logger }
}
