// Command titan-api serves trivia questions and grading backed by an Amazon
// Titan text model through the Bedrock completion contract.
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

	deps, err := app.Build(ctx, app.DeploymentCompletion)
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	if err := deps.Serve(ctx); err != nil {
		deps.Log.Error("server error", "err", err)
		os.Exit(1)
	}
}
