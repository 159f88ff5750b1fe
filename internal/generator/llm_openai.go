package generator

import (
	"context"
	"errors"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const openAIMaxRetries = 2

// OpenAIChat drafts projects through an OpenAI-compatible chat completions
// endpoint.
type OpenAIChat struct {
	client openai.Client
	model  string
}

// NewOpenAIChat builds a client from settings. APIKey and Model are required;
// BaseURL points the client at a compatible gateway.
func NewOpenAIChat(settings LLMSettings) (*OpenAIChat, error) {
	if settings.APIKey == "" {
		return nil, errors.New("openai api key missing; set llm.api_key")
	}
	if settings.Model == "" {
		return nil, errors.New("llm model is required")
	}
	opts := []option.RequestOption{
		option.WithAPIKey(settings.APIKey),
		option.WithMaxRetries(openAIMaxRetries),
	}
	if settings.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(settings.BaseURL))
	}
	return &OpenAIChat{client: openai.NewClient(opts...), model: settings.Model}, nil
}

// Complete sends the system and user prompt as one chat turn and returns the
// first choice.
func (c *OpenAIChat) Complete(ctx context.Context, prompt Prompt) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", errors.New("model returned an empty reply")
	}
	return resp.Choices[0].Message.Content, nil
}
