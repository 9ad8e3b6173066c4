package normalize

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = openai.GPT4oMini

// OpenAIBackend implements LLMBackend on the hosted OpenAI API through
// the go-openai client.
type OpenAIBackend struct {
	cfg    openai.ClientConfig
	model  string
	client *openai.Client
}

// OpenAIOption configures the OpenAIBackend.
type OpenAIOption func(*OpenAIBackend)

// WithOpenAIBaseURL points the client at another API root (e.g. a proxy).
func WithOpenAIBaseURL(u string) OpenAIOption {
	return func(b *OpenAIBackend) {
		if u != "" {
			b.cfg.BaseURL = u
		}
	}
}

// WithOpenAIHTTPClient overrides the HTTP client used by go-openai.
func WithOpenAIHTTPClient(c *http.Client) OpenAIOption {
	return func(b *OpenAIBackend) {
		b.cfg.HTTPClient = c
	}
}

// WithOpenAIModel overrides the default model.
func WithOpenAIModel(model string) OpenAIOption {
	return func(b *OpenAIBackend) {
		if model != "" {
			b.model = model
		}
	}
}

// NewOpenAIBackend creates a backend authenticated with apiKey.
func NewOpenAIBackend(apiKey string, opts ...OpenAIOption) *OpenAIBackend {
	b := &OpenAIBackend{
		cfg:   openai.DefaultConfig(apiKey),
		model: defaultOpenAIModel,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.client = openai.NewClientWithConfig(b.cfg)
	return b
}

// Name returns the backend name.
func (*OpenAIBackend) Name() string {
	return "openai"
}

// Model returns the configured model.
func (b *OpenAIBackend) Model() string {
	return b.model
}

// Generate calls the chat completions endpoint.
func (b *OpenAIBackend) Generate(
	ctx context.Context,
	req GenerateRequest,
) (GenerateResponse, error) {
	msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	// go-openai drops a zero temperature from the payload, which would
	// fall back to the server default of 1.
	temp := float32(req.Temperature)
	if temp == 0 {
		temp = math.SmallestNonzeroFloat32
	}

	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       b.model,
		Messages:    msgs,
		Temperature: temp,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return GenerateResponse{}, describeOpenAIError(err)
	}

	if len(resp.Choices) == 0 {
		return GenerateResponse{}, errors.New("empty choices from openai")
	}

	return GenerateResponse{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Usage: TokenUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func describeOpenAIError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("openai API error (status %d): %s: %w",
			apiErr.HTTPStatusCode, apiErr.Message, err)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("openai request failed (status %d): %w", reqErr.HTTPStatusCode, err)
	}
	return fmt.Errorf("calling openai: %w", err)
}
