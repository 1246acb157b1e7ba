// Package llm wraps the external language-model service behind a narrow
// chat interface. The service is a black box: callers see a completion
// string or an opaque error, nothing else.
package llm

import (
	"context"
	"errors"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

// ChatClient sends a single-shot prompt to a language model and returns its
// text completion.
type ChatClient interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

// OllamaClient talks to a local Ollama server.
type OllamaClient struct {
	llm *ollama.LLM
}

// NewOllamaClient connects to an Ollama server for the given model. The URL
// may be empty, in which case the client library default applies.
func NewOllamaClient(model, serverURL string) (*OllamaClient, error) {
	opts := []ollama.Option{ollama.WithModel(model)}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}
	client, err := ollama.New(opts...)
	if err != nil {
		return nil, err
	}
	return &OllamaClient{llm: client}, nil
}

// Chat sends the prompt as a single user message and returns the first
// completion choice.
func (c *OllamaClient) Chat(ctx context.Context, prompt string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeHuman, prompt),
	}
	resp, err := c.llm.GenerateContent(ctx, messages)
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no completion")
	}
	return resp.Choices[0].Content, nil
}
