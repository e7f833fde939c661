// Package httpstatus exposes a running throttle.Scheduler over HTTP.
//
// Router mounts three read-only endpoints:
//
//	GET /status   JSON snapshot of throttle.Stats
//	GET /events   server-sent events, one "event: <signal>" frame per emitted signal
//	GET /healthz  liveness, or readiness when dependency checks are supplied
//
// Server wraps http.Server with graceful shutdown bound to a context:
//
//	srv := httpstatus.NewFromConfig(cfg, httpstatus.WithLogger(log))
//	err := srv.Run(ctx, httpstatus.Router(httpstatus.RouterOptions{
//		Source: scheduler,
//		Logger: log,
//		Checks: []func(context.Context) error{redis.Healthcheck(client)},
//	}))
//
// The event stream is fed by Scheduler.Subscribe, so a client that reads too
// slowly misses signals rather than delaying the scheduler.
package httpstatus
