package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured content from a prompt.
type Provider interface {
	// Generate sends req and returns the model's output. When req.Schema is
	// set, Content is JSON that conforms to it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one single-turn generation.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages holds the conversation. Quiz and river questions send a
	// single user message.
	Messages []Message

	// Schema, when set, selects the vendor's structured-output mode and is
	// enforced on the reply.
	Schema *Schema

	MaxTokens int

	// Temperature in [0, 1]. Zero leaves the vendor default.
	Temperature float64
}

// Message is a single turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a JSON Schema the reply must satisfy.
type Schema struct {
	// Name identifies the schema to vendors and keys the compile cache.
	// Kebab-case, e.g. "climate-quiz".
	Name string

	Description string

	Definition map[string]any
}

// Normalized stop reasons.
const (
	StopEnd       = "end"
	StopMaxTokens = "max_tokens"
)

// Response holds the model's output.
type Response struct {
	// Content is the validated JSON value when the request had a Schema,
	// otherwise the text output encoded as a JSON string.
	Content json.RawMessage

	Usage Usage

	// Model is the model that served the request, as reported by the vendor.
	Model string

	// StopReason is StopEnd or StopMaxTokens.
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// complete turns a vendor reply into a Response. Output that fails to
// decode after hitting the token limit is reported as KindTruncated.
func complete(req Request, text, stop, model string, usage Usage) (*Response, error) {
	content, err := decodeOutput(req.Schema, text)
	if err != nil {
		if stop == StopMaxTokens {
			return nil, &Error{Kind: KindTruncated, Content: json.RawMessage(text), Err: err}
		}
		return nil, err
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}
