package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tf-trivia/internal/httputil"
	"tf-trivia/internal/llm"
)

const errMissingFields = "Question and answer are required."

type QuestionGenerator interface {
	Generate(ctx context.Context) string
}

type AnswerGrader interface {
	Grade(ctx context.Context, question, answer string) string
}

type Prober interface {
	Probe(ctx context.Context) (string, error)
}

// Handlers serves the /api routes shared by both deployments.
type Handlers struct {
	Questions QuestionGenerator
	Grader    AnswerGrader
	Prober    Prober
	Log       *slog.Logger
}

type submitRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// Mount registers the API routes under /api.
func (h Handlers) Mount(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/healthcheck", h.healthcheck)
		r.Get("/test-bedrock", h.testBedrock)
		r.Get("/question", h.question)
		r.Post("/submit", h.submit)
	})
}

func (h Handlers) healthcheck(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h Handlers) question(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"question": h.Questions.Generate(r.Context()),
	})
}

func (h Handlers) submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Fail(h.Log, w, errMissingFields, err, http.StatusBadRequest)
		return
	}
	if err := httputil.Validator.Struct(&req); err != nil {
		httputil.ValidationError(h.Log, w, errMissingFields, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"feedback": h.Grader.Grade(r.Context(), req.Question, req.Answer),
	})
}

func (h Handlers) testBedrock(w http.ResponseWriter, r *http.Request) {
	text, err := h.Prober.Probe(r.Context())
	switch {
	case errors.Is(err, llm.ErrBackendUnavailable):
		httputil.WriteJSON(w, http.StatusOK, map[string]any{"error": "No Bedrock client"})
	case err != nil:
		h.Log.Warn("bedrock probe failed", "err", err, "kind", llm.Kind(err))
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"success":    false,
			"error":      err.Error(),
			"error_type": fmt.Sprintf("%T", rootCause(err)),
		})
	default:
		httputil.WriteJSON(w, http.StatusOK, map[string]any{
			"success":  true,
			"response": text,
		})
	}
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
