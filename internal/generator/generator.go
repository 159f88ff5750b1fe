package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/proyek-akademik/internal/domain/project"
)

const defaultTimeout = 2 * time.Minute

// Generator drafts new projects with an LLM. It implements project.Generator.
type Generator struct {
	llm     LLMClient
	logger  *slog.Logger
	timeout time.Duration
}

// New creates a Generator. A zero timeout uses two minutes.
func New(llm LLMClient, logger *slog.Logger, timeout time.Duration) (*Generator, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Generator{llm: llm, logger: logger, timeout: timeout}, nil
}

// NewFromSettings picks the LLM client named by settings.Provider.
func NewFromSettings(settings LLMSettings, logger *slog.Logger, timeout time.Duration) (*Generator, error) {
	var llm LLMClient
	switch settings.Provider {
	case "", "mock":
		llm = MockLLM{}
	case "openai":
		client, err := NewOpenAIChat(settings)
		if err != nil {
			return nil, err
		}
		llm = client
	default:
		return nil, fmt.Errorf("unknown llm provider %q", settings.Provider)
	}
	return New(llm, logger, timeout)
}

// InitializeNewProject asks the model for an outline and first draft.
func (g *Generator) InitializeNewProject(ctx context.Context, author project.Record, title string, level project.AcademicLevel) (*project.Document, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	raw, err := g.llm.Complete(ctx, BuildProjectPrompt(author, title, level))
	if err != nil {
		return nil, fmt.Errorf("calling model: %w", err)
	}
	g.logger.Debug("model replied", "bytes", len(raw), "elapsed", time.Since(start))

	return PostProcess(raw, author, title)
}
