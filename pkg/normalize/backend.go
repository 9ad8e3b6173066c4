// Package normalize turns free-text shopping queries into canonical catalog
// search terms with a language model, abstracted behind interfaces for
// testability.
package normalize

import (
	"context"

	domain "github.com/donaldgifford/opty-search/pkg/types"
)

// Chat message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of a chat exchange.
type Message struct {
	Role    string
	Content string
}

// GenerateRequest defines the input for an LLM generation call.
type GenerateRequest struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// System returns the content of the first system message, if any.
func (r GenerateRequest) System() string {
	for _, m := range r.Messages {
		if m.Role == RoleSystem {
			return m.Content
		}
	}
	return ""
}

// Conversation returns the messages without system turns.
func (r GenerateRequest) Conversation() []Message {
	out := make([]Message, 0, len(r.Messages))
	for _, m := range r.Messages {
		if m.Role != RoleSystem {
			out = append(out, m)
		}
	}
	return out
}

// TokenUsage tracks LLM token consumption.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Content string
	Model   string
	Usage   TokenUsage
}

// LLMBackend defines the interface for LLM chat generation.
type LLMBackend interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	Name() string
}

// Normalizer converts a raw query into a normalized search term.
type Normalizer interface {
	Normalize(ctx context.Context, q domain.SearchQuery) (domain.NormalizedQuery, error)
}
