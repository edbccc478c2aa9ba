// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"fmt"
	"strings"

	platformcmd "github.com/louisbranch/cands-to-harn/internal/platform/cmd"
	mcpservice "github.com/louisbranch/cands-to-harn/internal/services/mcp/service"
	"github.com/louisbranch/cands-to-harn/internal/services/shared/converter"
)

// Config holds MCP command configuration.
type Config struct {
	HTTPAddr     string `env:"HARN_MCP_HTTP_ADDR"     envDefault:"localhost:8081"`
	Transport    string `env:"HARN_MCP_TRANSPORT"     envDefault:"stdio"`
	AllowedHosts string `env:"HARN_MCP_ALLOWED_HOSTS"`
	AverageBasis string `env:"HARN_AVERAGE_BASIS"     envDefault:"adjusted"`
	OptionsFile  string `env:"HARN_OPTIONS_FILE"`
}

// ParseConfig parses environment and flags into a Config. A nil environ
// reads the process environment.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg, environ); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.AllowedHosts, "allowed-hosts", cfg.AllowedHosts, "Comma-separated extra hosts accepted by the HTTP transport")
	fs.StringVar(&cfg.AverageBasis, "average-basis", cfg.AverageBasis, "Average basis: adjusted or raw")
	fs.StringVar(&cfg.OptionsFile, "options", cfg.OptionsFile, "JSON file replacing the eyesight/hearing option lists")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	svc, err := converter.Build(converter.Setup{
		AverageBasis: cfg.AverageBasis,
		OptionsFile:  cfg.OptionsFile,
	})
	if err != nil {
		return fmt.Errorf("init converter: %w", err)
	}
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMCP, func(ctx context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{
			Transport:    cfg.Transport,
			HTTPAddr:     cfg.HTTPAddr,
			AllowedHosts: splitHosts(cfg.AllowedHosts),
			Converter:    svc,
		})
	})
}

func splitHosts(value string) []string {
	var hosts []string
	for _, part := range strings.Split(value, ",") {
		if host := strings.TrimSpace(part); host != "" {
			hosts = append(hosts, host)
		}
	}
	return hosts
}
