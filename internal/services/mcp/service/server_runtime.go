package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/cands-to-harn/internal/platform/timeouts"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// defaultHTTPAddr binds the HTTP transport to loopback only.
const defaultHTTPAddr = "localhost:8081"

// Run is the service entrypoint for MCP and blocks until context cancellation.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Transport)) {
	case TransportStdio:
		return runWithTransport(ctx, cfg, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// runWithTransport serves a single session over transport until ctx ends
// or the peer disconnects.
func runWithTransport(ctx context.Context, cfg Config, transport mcp.Transport) error {
	server, err := NewServer(cfg.Converter)
	if err != nil {
		return err
	}
	err = server.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// runWithHTTPTransport serves streamable HTTP sessions on cfg.HTTPAddr.
func runWithHTTPTransport(ctx context.Context, cfg Config) error {
	server, err := NewServer(cfg.Converter)
	if err != nil {
		return err
	}
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		httpAddr = defaultHTTPAddr
	}

	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           newHTTPHandler(server, cfg.AllowedHosts),
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	serveErr := make(chan error, 1)
	log.Printf("mcp listening on %s", httpAddr)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := httpServer.Shutdown(shutdownCtx)
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

// newHTTPHandler mounts the streamable MCP endpoint and a health probe
// behind the local host guard.
func newHTTPHandler(server *mcp.Server, allowedHosts []string) http.Handler {
	guard := hostGuard{allowed: parseAllowedHosts(allowedHosts)}
	streamable := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	mux := http.NewServeMux()
	mux.Handle("/mcp", guard.wrap(streamable))
	mux.Handle("/mcp/health", guard.wrap(http.HandlerFunc(handleHealth)))
	return mux
}

// handleHealth handles GET /mcp/health for health checks.
func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("Failed to write health response: %v", err)
	}
}
