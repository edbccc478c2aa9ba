package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/cands-to-harn/internal/platform/timeouts"
	"github.com/louisbranch/cands-to-harn/internal/services/shared/converter"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr  string
	Converter *converter.Service
}

// Server hosts the web HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// NewHandler creates the HTTP handler for every route.
func NewHandler(config Config) (http.Handler, error) {
	if config.Converter == nil {
		return nil, errors.New("converter is required")
	}
	h := &handler{converter: config.Converter}

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.handleIndex)
	mux.Handle("/convert", http.TimeoutHandler(http.HandlerFunc(h.handleConvert), timeouts.Conversion, "conversion timed out"))
	mux.HandleFunc("/api/options", h.handleAPIOptions)
	mux.Handle("/api/convert", http.TimeoutHandler(http.HandlerFunc(h.handleAPIConvert), timeouts.Conversion, `{"error":{"code":"UNKNOWN","message":"conversion timed out"}}`))
	mux.HandleFunc("/healthz", h.handleHealth)
	return mux, nil
}

// ListenAndServe runs the HTTP server until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the server immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close http server: %v", err)
	}
}
