package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/roster/internal/lib/logger/sl"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// NewMonitoringMux serves /metrics from reg and /healthz from health.
func NewMonitoringMux(reg *prometheus.Registry, health http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	mux.Handle("/healthz", health)

	return mux
}

// StartMonitoringServer serves metrics and health checks on port until ctx is cancelled.
func StartMonitoringServer(
	ctx context.Context,
	log *slog.Logger,
	reg *prometheus.Registry,
	roster RosterCounter,
	port int,
	uiHost string,
) {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           NewMonitoringMux(reg, NewHealthChecker(roster, uiHost, log)),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	Serve(ctx, log.With(slog.String("server", "monitoring")), srv)
}

// Serve runs srv until ctx is cancelled and then shuts it down gracefully.
func Serve(ctx context.Context, log *slog.Logger, srv *http.Server) {
	done := make(chan struct{})

	go func() {
		defer close(done)
		log.InfoContext(ctx, "Server started", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, "Server failed", sl.Err(err))
		}
	}()

	select {
	case <-ctx.Done():
	case <-done:
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.ErrorContext(ctx, "Server shutdown failed", sl.Err(err))
	}
	<-done
	log.InfoContext(ctx, "Server stopped")
}
