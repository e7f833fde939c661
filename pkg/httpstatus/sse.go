package httpstatus

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/throttle/pkg/logger"
	"github.com/dmitrymomot/throttle/pkg/throttle"
)

func eventsHandler(src Source, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		flusher, ok := w.(http.Flusher)
		if !ok {
			_ = writeJSON(w, http.StatusInternalServerError, response{Error: ErrStreamingUnsupported.Error()})
			return
		}

		sub := src.Subscribe(ctx)
		defer sub.Close()

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		log.DebugContext(ctx, "event stream opened")
		defer log.DebugContext(ctx, "event stream closed")

		events := sub.Receive(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-events:
				if !ok {
					return
				}
				if err := writeEvent(w, msg.Data); err != nil {
					log.DebugContext(ctx, "write event", logger.Error(err))
					return
				}
				flusher.Flush()
			}
		}
	}
}

// writeEvent writes one SSE frame named after the signal.
func writeEvent(w http.ResponseWriter, ev throttle.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Signal, data)
	return err
}
