// Package server owns the HTTP lifecycle: router assembly, timeouts
// and signal-aware graceful shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	defaultReadTimeout       = 15 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 30 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
)

// Server wraps http.Server with graceful shutdown.
type Server struct {
	httpServer      *http.Server
	log             *slog.Logger
	shutdownTimeout time.Duration
	hooks           []func(ctx context.Context) error
}

// Option configures the Server.
type Option func(*Server)

// WithShutdownTimeout sets how long graceful shutdown may take.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithShutdownHook registers a function to run during shutdown, after
// the HTTP server has stopped accepting requests.
func WithShutdownHook(hook func(ctx context.Context) error) Option {
	return func(s *Server) {
		s.hooks = append(s.hooks, hook)
	}
}

// New creates a Server for the given handler.
func New(addr string, handler http.Handler, log *slog.Logger, opts ...Option) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		log:             log,
		shutdownTimeout: defaultShutdownTimeout,
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			IdleTimeout:       defaultIdleTimeout,
			MaxHeaderBytes:    defaultMaxHeaderBytes,
			// No WriteTimeout: the progress stream holds its response
			// open for the lifetime of a job.
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run starts the server and blocks until SIGINT/SIGTERM or a serve
// error. An in-flight send job is abandoned on shutdown; that loss is
// accepted, the job store is process-local anyway.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer shutdownCancel()

	var errs []error
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	for _, hook := range s.hooks {
		if err := hook(shutdownCtx); err != nil {
			errs = append(errs, err)
			s.log.Error("shutdown hook failed", slog.Any("error", err))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	s.log.Info("shutdown completed")
	return nil
}
