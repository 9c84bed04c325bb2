package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// NewRouter wires /metrics, /healthz and the /reports endpoints.
func NewRouter(log *slog.Logger, reg *prometheus.Registry, db DBPinger, reports *ReportsHandler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)

	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{EnableOpenMetrics: true}))
	router.Handle("/healthz", NewHealthChecker(db, log))
	router.Route("/reports", reports.RegisterRoutes)

	return router
}

// StartMonitoringServer serves handler on port until ctx is cancelled, then shuts down gracefully.
func StartMonitoringServer(ctx context.Context, log *slog.Logger, handler http.Handler, port int) {
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.InfoContext(ctx, "Starting monitoring server", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.ErrorContext(ctx, "Monitoring server failed", sl.Err(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil { //nolint:contextcheck // parent is already cancelled
		log.ErrorContext(shutdownCtx, "Monitoring server shutdown failed", sl.Err(err))
		return
	}
	log.InfoContext(shutdownCtx, "Monitoring server stopped")
}
