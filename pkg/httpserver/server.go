package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/hirehub/jobboard/pkg/logger"
)

type config struct {
	addr          string
	readTimeout   time.Duration
	writeTimeout  time.Duration
	idleTimeout   time.Duration
	shutdownGrace time.Duration
	log           *slog.Logger
	onStart       []func(*slog.Logger)
	onStop        []func(*slog.Logger)
}

// Server runs an http.Server until its context is cancelled or a termination
// signal arrives, then drains in-flight requests within the grace period.
type Server struct {
	cfg  *config
	srv  *http.Server
	once sync.Once
}

// New returns a Server configured by the given options.
func New(opts ...Option) *Server {
	cfg := &config{
		addr:          ":8080",
		shutdownGrace: 5 * time.Second,
		log:           logger.Noop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Server{cfg: cfg}
}

// Run serves handler and blocks until ctx is cancelled, SIGINT/SIGTERM is
// received, or the listener fails. Listen failures are reported as ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.srv = &http.Server{
		Addr:         s.cfg.addr,
		Handler:      handler,
		ReadTimeout:  s.cfg.readTimeout,
		WriteTimeout: s.cfg.writeTimeout,
		IdleTimeout:  s.cfg.idleTimeout,
	}

	for _, hook := range s.cfg.onStart {
		hook(s.cfg.log)
	}

	serveErr := make(chan error, 1)
	go func() { serveErr <- s.srv.ListenAndServe() }()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Join(ErrStart, err)
		}
		return nil
	case <-ctx.Done():
	}

	if err := s.Shutdown(context.Background()); err != nil {
		return err
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrStart, err)
	}
	return nil
}

// Shutdown drains the server within the configured grace period. Repeated
// calls are no-ops; a failed drain is reported as ErrShutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	s.once.Do(func() {
		if s.srv == nil {
			return
		}
		ctx, cancel := context.WithTimeout(ctx, s.cfg.shutdownGrace)
		defer cancel()
		err = s.srv.Shutdown(ctx)
		for _, hook := range s.cfg.onStop {
			hook(s.cfg.log)
		}
	})
	if err != nil {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
