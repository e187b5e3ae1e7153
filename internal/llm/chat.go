package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

const (
	// DefaultChatModel is the Claude model used by the chat deployment.
	DefaultChatModel = "anthropic.claude-3-haiku-20240307-v1:0"

	// bedrockAnthropicVersion is the protocol version Bedrock requires in Claude bodies.
	bedrockAnthropicVersion = "bedrock-2023-05-31"
)

// ChatAdapter speaks the role-tagged Claude messages contract.
//
// The chat body carries no stop sequences. Request.StopSequences is dropped,
// so question truncation relies on post-processing alone for this contract.
type ChatAdapter struct {
	model string
}

// NewChatAdapter returns an adapter for model, or the default Claude model when empty.
func NewChatAdapter(model string) *ChatAdapter {
	if model == "" {
		model = DefaultChatModel
	}
	return &ChatAdapter{model: model}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages         []chatMessage `json:"messages"`
	MaxTokens        int           `json:"max_tokens"`
	Temperature      float64       `json:"temperature"`
	AnthropicVersion string        `json:"anthropic_version"`
}

func (a *ChatAdapter) Name() string    { return "chat" }
func (a *ChatAdapter) ModelID() string { return a.model }

func (a *ChatAdapter) BuildRequest(req Request) (WireRequest, error) {
	if err := validateRequest(req); err != nil {
		return WireRequest{}, fmt.Errorf("chat request: %w", err)
	}
	body, err := json.Marshal(chatRequest{
		Messages: []chatMessage{
			{Role: string(anthropic.MessageParamRoleUser), Content: req.Instruction},
		},
		MaxTokens:        req.MaxTokens,
		Temperature:      req.Temperature,
		AnthropicVersion: bedrockAnthropicVersion,
	})
	if err != nil {
		return WireRequest{}, fmt.Errorf("marshal chat request: %w", err)
	}
	return WireRequest{ModelID: a.model, Body: body}, nil
}

func (a *ChatAdapter) ExtractText(body []byte) (string, error) {
	var msg anthropic.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		return "", &MalformedResponseError{Contract: a.Name(), Reason: "decode body", Err: err}
	}
	if len(msg.Content) == 0 {
		return "", &MalformedResponseError{Contract: a.Name(), Reason: "no content blocks"}
	}
	block := msg.Content[0]
	if block.Type != "text" {
		return "", &MalformedResponseError{Contract: a.Name(), Reason: fmt.Sprintf("first content block is %q, not text", block.Type)}
	}
	text := strings.TrimSpace(block.Text)
	if text == "" {
		return "", &MalformedResponseError{Contract: a.Name(), Reason: "empty text block"}
	}
	return text, nil
}
