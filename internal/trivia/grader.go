package trivia

import (
	"context"
	"fmt"
	"log/slog"

	"tf-trivia/internal/llm"
)

const (
	// gradingPolicy rejects only completely incorrect answers; anything
	// borderline is judged correct.
	gradingPolicy = "Provide correct/incorrect feedback for completely incorrect answers only, otherwise, just say 'Correct'. Correctness is extremely important. Always err on the side of correctness."

	feedbackMaxTokens   = 30
	feedbackTemperature = 0.3
)

var feedbackStops = []string{"\n"}

// AnswerGrader judges a candidate answer against a question.
type AnswerGrader struct {
	backend Backend
	adapter llm.Adapter
	log     *slog.Logger
}

func NewAnswerGrader(backend Backend, adapter llm.Adapter, log *slog.Logger) *AnswerGrader {
	return &AnswerGrader{backend: backend, adapter: adapter, log: log}
}

// Grade returns the model's verdict ("Correct" or a short correction), or a
// fixed fallback string. It never returns an error.
func (g *AnswerGrader) Grade(ctx context.Context, question, answer string) string {
	if !g.backend.Available() {
		fallbacks.WithLabelValues("feedback", "unavailable").Inc()
		return FeedbackUnavailable
	}

	text, err := complete(ctx, g.backend, g.adapter, llm.Request{
		Instruction:   gradingPrompt(question, answer),
		MaxTokens:     feedbackMaxTokens,
		Temperature:   feedbackTemperature,
		StopSequences: feedbackStops,
	})
	if err != nil {
		logFailure(g.log, "answer grading failed", g.adapter, err)
		fallbacks.WithLabelValues("feedback", llm.Kind(err)).Inc()
		return FeedbackFailed
	}
	return text
}

func gradingPrompt(question, answer string) string {
	return fmt.Sprintf("You are a Terraform teacher responsible for Terraform class. Question: %s\nStudent Answer: %s\n%s", question, answer, gradingPolicy)
}
