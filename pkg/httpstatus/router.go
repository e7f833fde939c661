package httpstatus

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/throttle/pkg/broadcast"
	"github.com/dmitrymomot/throttle/pkg/logger"
	"github.com/dmitrymomot/throttle/pkg/throttle"
)

// Source is the part of *throttle.Scheduler the router reads from.
type Source interface {
	Stats() throttle.Stats
	Subscribe(ctx context.Context) broadcast.Subscriber[throttle.Event]
}

// RouterOptions configures Router. Source is required.
type RouterOptions struct {
	Source Source
	Logger *slog.Logger
	// Checks turn /healthz into a readiness probe.
	Checks []func(context.Context) error
}

// Router returns the status endpoints for opts.Source.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/throttle", httpstatus.Router(httpstatus.RouterOptions{Source: scheduler}))
func Router(opts RouterOptions) chi.Router {
	if opts.Source == nil {
		panic("httpstatus.Router: nil source")
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("httpstatus"))

	r := chi.NewRouter()
	r.Get("/status", statusHandler(opts.Source, log))
	r.Get("/events", eventsHandler(opts.Source, log))
	r.Get("/healthz", HealthCheckHandler(log, opts.Checks...))

	return r
}

type response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body response) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func statusHandler(src Source, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := writeJSON(w, http.StatusOK, response{Data: src.Stats()}); err != nil {
			log.DebugContext(r.Context(), "write status response", logger.Error(err))
		}
	}
}
