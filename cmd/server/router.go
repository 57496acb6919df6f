package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rollbook/internal/platform/metrics"
	"rollbook/internal/platform/middleware"
	"rollbook/internal/platform/redis"
	"rollbook/internal/roster/handler"
	"rollbook/internal/roster/service"
	"rollbook/internal/token"
	"rollbook/pkg/platform/httputil"
)

const requestTimeout = 15 * time.Second

// newRouter assembles the middleware chain and mounts the roster routes,
// health checks, and the metrics endpoint.
func newRouter(roster *service.Roster, tokens *token.Manager, staffSecretHash string, log *slog.Logger, m *metrics.Metrics, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.ClientMetadata)
	r.Use(middleware.Recovery(log))
	r.Use(middleware.Logger(log))
	r.Use(middleware.Latency(m))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.ContentTypeJSON)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		status := map[string]string{"status": "ok"}
		if redisClient != nil {
			if err := redisClient.Health(req.Context()); err != nil {
				status["cache"] = "degraded"
			} else {
				status["cache"] = "ok"
			}
		}
		httputil.WriteJSON(w, http.StatusOK, status)
	})
	r.Handle("/metrics", promhttp.Handler())

	if staffSecretHash != "" {
		r.Post("/token", token.IssueHandler(tokens, staffSecretHash, log))
	}

	h := handler.New(roster, log)
	h.Register(r, middleware.RequireAuth(tokens, log))
	return r
}
