package ai

import "context"

// Runtime is the minimal interface implemented by completion backends: the
// hosted Groq and OpenAI providers and a local Ollama runtime.
type Runtime interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// Provider identifiers used for runtime selection.
const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderOllama = "ollama"
)
