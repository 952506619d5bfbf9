// Package snippets hosts the live snippet page service.
package snippets

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/louisbranch/snippetpad/internal/platform/errors"
	"github.com/louisbranch/snippetpad/internal/platform/httpx"
	"github.com/louisbranch/snippetpad/internal/platform/observability"
	"github.com/louisbranch/snippetpad/internal/platform/timeouts"
	snippetstatic "github.com/louisbranch/snippetpad/internal/services/snippets/static"
)

// Config defines startup inputs for the snippets service.
type Config struct {
	HTTPAddr string
	// AssetBaseURL overrides where the page loads editor assets from. Empty
	// means the embedded assets under /static.
	AssetBaseURL string
	PageTitle    string
	// Logger receives request and render failure log lines. Nil uses the
	// standard logger.
	Logger *log.Logger
}

// Server hosts the snippets HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler: GET / renders the page and
// /static/* serves the embedded editor assets. HEAD follows GET routes.
func NewHandler(cfg Config) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.GetHead)
	router.Get("/", newPageHandler(cfg).ServeHTTP)
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(snippetstatic.FS))))
	return withMiddleware(router, cfg.Logger)
}

// withMiddleware wraps next so every request, including one that panics, gets
// a request id and a request log line.
func withMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return httpx.Chain(next,
		httpx.RequestID(),
		observability.RequestLogger(logger),
		httpx.RecoverPanic(),
	)
}

// NewServer validates config and constructs a snippets server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, apperrors.New(apperrors.CodeInvalidConfig, "http address is required")
	}
	if _, _, err := net.SplitHostPort(httpAddr); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInvalidConfig, "invalid http address", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(cfg),
			ReadHeaderTimeout: timeouts.ReadHeader,
			ReadTimeout:       timeouts.Read,
			WriteTimeout:      timeouts.Write,
			IdleTimeout:       timeouts.Idle,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("snippets server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve serves HTTP traffic on listener until context cancellation or server
// stop. The listener is closed on return.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("snippets server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}
	log.Printf("snippets listening addr=%s", listener.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown snippets http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve snippets http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
