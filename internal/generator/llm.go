package generator

import "context"

// LLMClient abstracts the language model so it can be swapped or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings carries the provider configuration.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
