// Package web parses web command flags and runs the HTTP form service.
package web

import (
	"context"
	"flag"
	"fmt"

	platformcmd "github.com/louisbranch/cands-to-harn/internal/platform/cmd"
	"github.com/louisbranch/cands-to-harn/internal/services/shared/converter"
	"github.com/louisbranch/cands-to-harn/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string `env:"HARN_WEB_HTTP_ADDR"  envDefault:"localhost:8080"`
	AverageBasis string `env:"HARN_AVERAGE_BASIS"  envDefault:"adjusted"`
	OptionsFile  string `env:"HARN_OPTIONS_FILE"`
}

// ParseConfig parses environment and flags into a Config. A nil environ
// reads the process environment.
func ParseConfig(fs *flag.FlagSet, args []string, environ map[string]string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg, environ); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AverageBasis, "average-basis", cfg.AverageBasis, "Average basis: adjusted or raw")
	fs.StringVar(&cfg.OptionsFile, "options", cfg.OptionsFile, "JSON file replacing the eyesight/hearing option lists")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web service.
func Run(ctx context.Context, cfg Config) error {
	svc, err := converter.Build(converter.Setup{
		AverageBasis: cfg.AverageBasis,
		OptionsFile:  cfg.OptionsFile,
	})
	if err != nil {
		return fmt.Errorf("init converter: %w", err)
	}
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{HTTPAddr: cfg.HTTPAddr, Converter: svc})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
