package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"tf-trivia/internal/api"
	"tf-trivia/internal/httputil"
)

const shutdownTimeout = 10 * time.Second

// Handler builds the HTTP surface for deps.
func (d Deps) Handler() http.Handler {
	r := httputil.NewRouter(d.Log, httputil.RouterOptions{
		Timeout:        d.Config.RequestTimeout,
		AllowedOrigins: d.Config.AllowedOrigins,
	})
	api.Handlers{
		Questions: d.Questions,
		Grader:    d.Grader,
		Prober:    d.Prober,
		Log:       d.Log,
	}.Mount(r)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Serve listens on the configured port until ctx is cancelled, then shuts down.
func (d Deps) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", d.Config.Port),
		Handler:           d.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d.Log.Info("listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
