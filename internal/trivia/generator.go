package trivia

import (
	"context"
	"log/slog"

	"tf-trivia/internal/llm"
)

const (
	questionPrompt      = "You are a Terraform teacher responsible for Terraform class. Provide a Terraform configuration trivia question and only the question."
	questionMaxTokens   = 50
	questionTemperature = 0.7
)

// questionStops only reach the completion contract; the chat adapter drops them.
var questionStops = []string{"\n", "?"}

// QuestionGenerator produces one trivia question per call.
type QuestionGenerator struct {
	backend Backend
	adapter llm.Adapter
	log     *slog.Logger
}

func NewQuestionGenerator(backend Backend, adapter llm.Adapter, log *slog.Logger) *QuestionGenerator {
	return &QuestionGenerator{backend: backend, adapter: adapter, log: log}
}

// Generate returns a question, or a fixed fallback string when the backend
// is unavailable or the call fails. It never returns an error.
func (g *QuestionGenerator) Generate(ctx context.Context) string {
	if !g.backend.Available() {
		fallbacks.WithLabelValues("question", "unavailable").Inc()
		return QuestionUnavailable
	}

	text, err := complete(ctx, g.backend, g.adapter, llm.Request{
		Instruction:   questionPrompt,
		MaxTokens:     questionMaxTokens,
		Temperature:   questionTemperature,
		StopSequences: questionStops,
	})
	if err != nil {
		logFailure(g.log, "question generation failed", g.adapter, err)
		fallbacks.WithLabelValues("question", llm.Kind(err)).Inc()
		return QuestionFailed
	}
	return TrimToQuestion(text)
}
