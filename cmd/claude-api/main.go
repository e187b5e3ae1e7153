// Command claude-api serves trivia questions and grading backed by an
// Anthropic Claude model through the Bedrock messages contract.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tf-trivia/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.Build(ctx, app.DeploymentChat)
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	if err := deps.Serve(ctx); err != nil {
		deps.Log.Error("claude api stopped", "err", err)
		os.Exit(1)
	}
}
