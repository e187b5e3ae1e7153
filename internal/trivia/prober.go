package trivia

import (
	"context"

	"tf-trivia/internal/llm"
)

// Prober sends a trivial prompt to check the backend end to end.
type Prober struct {
	backend Backend
	adapter llm.Adapter
}

func NewProber(backend Backend, adapter llm.Adapter) *Prober {
	return &Prober{backend: backend, adapter: adapter}
}

// Probe returns the model's reply to "Say hello". Unlike Generate and Grade
// it reports failures to the caller.
func (p *Prober) Probe(ctx context.Context) (string, error) {
	if !p.backend.Available() {
		return "", llm.ErrBackendUnavailable
	}
	return complete(ctx, p.backend, p.adapter, llm.Request{
		Instruction: "Say hello",
		MaxTokens:   10,
		Temperature: 0.7,
	})
}
