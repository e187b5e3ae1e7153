package llm

import "errors"

// Request is the provider-agnostic description of one generation call.
type Request struct {
	Instruction   string
	MaxTokens     int
	Temperature   float64
	StopSequences []string
}

// WireRequest is a request already encoded for a specific backend contract.
type WireRequest struct {
	ModelID string
	Body    []byte
}

// Adapter translates between Request and one backend wire contract.
type Adapter interface {
	// Name identifies the contract ("completion" or "chat").
	Name() string
	// ModelID is the backend model the adapter encodes requests for.
	ModelID() string
	BuildRequest(req Request) (WireRequest, error)
	// ExtractText decodes a response body and returns the trimmed generated text.
	ExtractText(body []byte) (string, error)
}

func validateRequest(req Request) error {
	if req.Instruction == "" {
		return errors.New("instruction required")
	}
	if req.MaxTokens <= 0 {
		return errors.New("max tokens must be positive")
	}
	return nil
}
