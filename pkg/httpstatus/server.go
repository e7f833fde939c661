package httpstatus

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/dmitrymomot/throttle/pkg/logger"
)

// Server wraps http.Server with context-bound graceful shutdown.
type Server struct {
	opts *serverOptions

	mu       sync.Mutex
	srv      *http.Server
	shutdown bool
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	o := defaultServerOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	o.logger = o.logger.With(logger.Component("httpstatus"))
	return &Server{opts: o}
}

// Run serves handler until ctx is done, then shuts down gracefully.
// Failures to listen are wrapped with ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}
	srv := &http.Server{
		Addr:        s.opts.addr,
		Handler:     handler,
		ReadTimeout: s.opts.readTimeout,
		IdleTimeout: s.opts.idleTimeout,
		// Streams end with the server context, not with the client.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	s.srv = srv
	s.mu.Unlock()

	s.opts.logger.InfoContext(ctx, "status server listening", slog.String("addr", s.opts.addr))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	var runErr error
	select {
	case <-ctx.Done():
		if err := s.Shutdown(context.WithoutCancel(ctx)); err != nil {
			s.opts.logger.ErrorContext(ctx, "status server shutdown", logger.Error(err))
		}
		runErr = <-errCh
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	s.opts.logger.InfoContext(ctx, "status server stopped")
	return nil
}

// Shutdown stops the server gracefully. It is a no-op before Run and on
// repeated calls. Errors from http.Server.Shutdown are wrapped with ErrShutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	if srv == nil || s.shutdown {
		s.mu.Unlock()
		return nil
	}
	s.shutdown = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
