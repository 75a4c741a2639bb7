package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/shard-launcher-service/internal/platform/config"
)

// drainTimeout bounds Shutdown when the caller's context has no deadline.
const drainTimeout = 10 * time.Second

// Server serves the launcher API until Shutdown.
type Server struct {
	srv    *http.Server
	logger *slog.Logger
}

// NewServer applies the configured timeouts to handler. logger may be nil.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger: logger,
	}
}

// Start listens on the configured address and blocks in Serve.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln. It returns nil once Shutdown has
// drained the server.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("launcher API listening", slog.String("addr", ln.Addr().String()))

	err := s.srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("serving launcher API: %w", err)
}

// Shutdown stops accepting connections and waits for in-flight requests,
// for at most drainTimeout unless ctx carries its own deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, drainTimeout)
		defer cancel()
	}

	s.logger.Info("draining launcher API")
	return s.srv.Shutdown(ctx)
}

// Addr is the configured listen address, e.g. "127.0.0.1:8080".
func (s *Server) Addr() string {
	return s.srv.Addr
}
