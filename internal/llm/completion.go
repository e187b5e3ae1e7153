package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultCompletionModel is the Titan text model used by the completion deployment.
const DefaultCompletionModel = "amazon.titan-text-express-v1"

// CompletionAdapter speaks the single-prompt Titan text contract.
type CompletionAdapter struct {
	model string
}

// NewCompletionAdapter returns an adapter for model, or the default Titan model when empty.
func NewCompletionAdapter(model string) *CompletionAdapter {
	if model == "" {
		model = DefaultCompletionModel
	}
	return &CompletionAdapter{model: model}
}

type completionRequest struct {
	InputText            string               `json:"inputText"`
	TextGenerationConfig textGenerationConfig `json:"textGenerationConfig"`
}

type textGenerationConfig struct {
	MaxTokenCount int      `json:"maxTokenCount"`
	Temperature   float64  `json:"temperature"`
	StopSequences []string `json:"stopSequences,omitempty"`
}

type completionResponse struct {
	Results []struct {
		OutputText       string `json:"outputText"`
		CompletionReason string `json:"completionReason"`
	} `json:"results"`
}

func (a *CompletionAdapter) Name() string    { return "completion" }
func (a *CompletionAdapter) ModelID() string { return a.model }

func (a *CompletionAdapter) BuildRequest(req Request) (WireRequest, error) {
	if err := validateRequest(req); err != nil {
		return WireRequest{}, fmt.Errorf("completion request: %w", err)
	}
	body, err := json.Marshal(completionRequest{
		InputText: req.Instruction,
		TextGenerationConfig: textGenerationConfig{
			MaxTokenCount: req.MaxTokens,
			Temperature:   req.Temperature,
			StopSequences: req.StopSequences,
		},
	})
	if err != nil {
		return WireRequest{}, fmt.Errorf("marshal completion request: %w", err)
	}
	return WireRequest{ModelID: a.model, Body: body}, nil
}

func (a *CompletionAdapter) ExtractText(body []byte) (string, error) {
	var resp completionResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", &MalformedResponseError{Contract: a.Name(), Reason: "decode body", Err: err}
	}
	if len(resp.Results) == 0 {
		return "", &MalformedResponseError{Contract: a.Name(), Reason: "no results"}
	}
	text := strings.TrimSpace(resp.Results[0].OutputText)
	if text == "" {
		return "", &MalformedResponseError{Contract: a.Name(), Reason: "empty output text"}
	}
	return text, nil
}
