// Package trivia generates Terraform trivia questions and grades answers
// against a generative model, independent of the model's wire contract.
package trivia

import (
	"context"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"tf-trivia/internal/llm"
)

// Fixed responses. Every backend failure resolves to one of these.
const (
	QuestionUnavailable = "I can't get the question"
	QuestionFailed      = "Failed to generate question. Please try again later."
	FeedbackUnavailable = "I can't get feedback"
	FeedbackFailed      = "Failed to get feedback. Please try again later."
)

// Backend is the invocation capability the generator and grader depend on.
// *bedrock.Client satisfies it.
type Backend interface {
	Available() bool
	Invoke(ctx context.Context, req llm.WireRequest) ([]byte, error)
}

var fallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "trivia",
	Name:      "fallback_responses_total",
	Help:      "Fixed fallback responses served instead of model output",
}, []string{"operation", "reason"})

// complete runs one request through adapter and backend and returns the extracted text.
func complete(ctx context.Context, backend Backend, adapter llm.Adapter, req llm.Request) (string, error) {
	wire, err := adapter.BuildRequest(req)
	if err != nil {
		return "", err
	}
	body, err := backend.Invoke(ctx, wire)
	if err != nil {
		return "", err
	}
	return adapter.ExtractText(body)
}

func logFailure(log *slog.Logger, msg string, adapter llm.Adapter, err error) {
	log.Error(msg,
		"err", err,
		"kind", llm.Kind(err),
		"contract", adapter.Name(),
		"model", adapter.ModelID(),
	)
}

// TrimToQuestion cuts text after its first question mark. Text without a
// question mark is returned unchanged.
func TrimToQuestion(text string) string {
	if i := strings.IndexByte(text, '?'); i >= 0 {
		return text[:i] + "?"
	}
	return text
}
