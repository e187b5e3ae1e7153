package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"

	"tf-trivia/internal/bedrock"
	"tf-trivia/internal/config"
	"tf-trivia/internal/llm"
	"tf-trivia/internal/logger"
	"tf-trivia/internal/trivia"
)

// Deployment selects the model family and wire contract a binary serves.
type Deployment string

const (
	DeploymentCompletion Deployment = "completion"
	DeploymentChat       Deployment = "chat"
)

// Deps bundles common runtime dependencies for a deployment.
type Deps struct {
	Config    config.Config
	Log       *slog.Logger
	Backend   *bedrock.Client
	Adapter   llm.Adapter
	Questions *trivia.QuestionGenerator
	Grader    *trivia.AnswerGrader
	Prober    *trivia.Prober
}

// Build loads env, config, and shared components. Backend availability is
// settled here, before any request is served.
func Build(ctx context.Context, d Deployment) (Deps, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Deps{}, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat).With("deployment", string(d))

	adapter, err := buildAdapter(d, cfg.ModelID)
	if err != nil {
		return Deps{}, err
	}
	backend := bedrock.New(ctx, bedrock.Options{
		Region:            cfg.Region,
		Timeout:           cfg.BedrockTimeout,
		VerifyCredentials: cfg.VerifyCredentials,
	}, log)
	log.Info("using bedrock model", "contract", adapter.Name(), "model", adapter.ModelID(), "available", backend.Available())

	return Wire(cfg, log, backend, adapter), nil
}

// Wire assembles the generator, grader and prober around a backend.
func Wire(cfg config.Config, log *slog.Logger, backend *bedrock.Client, adapter llm.Adapter) Deps {
	return Deps{
		Config:    cfg,
		Log:       log,
		Backend:   backend,
		Adapter:   adapter,
		Questions: trivia.NewQuestionGenerator(backend, adapter, log),
		Grader:    trivia.NewAnswerGrader(backend, adapter, log),
		Prober:    trivia.NewProber(backend, adapter),
	}
}

func buildAdapter(d Deployment, modelID string) (llm.Adapter, error) {
	switch d {
	case DeploymentCompletion:
		return llm.NewCompletionAdapter(modelID), nil
	case DeploymentChat:
		return llm.NewChatAdapter(modelID), nil
	default:
		return nil, fmt.Errorf("invalid deployment: %s (valid options: completion, chat)", d)
	}
}
