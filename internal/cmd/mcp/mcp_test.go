package mcp

import (
	"context"
	"flag"
	"reflect"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, map[string]string{})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8081" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("expected default transport stdio, got %q", cfg.Transport)
	}
	if cfg.AverageBasis != "adjusted" {
		t.Fatalf("expected adjusted basis, got %q", cfg.AverageBasis)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	environ := map[string]string{
		"HARN_MCP_HTTP_ADDR":     "env-http",
		"HARN_MCP_ALLOWED_HOSTS": "harn.local",
	}
	args := []string{"-http-addr", "flag-http", "-transport", "http", "-average-basis", "raw"}
	cfg, err := ParseConfig(fs, args, environ)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-http" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "http" {
		t.Fatalf("expected transport http, got %q", cfg.Transport)
	}
	if cfg.AllowedHosts != "harn.local" {
		t.Fatalf("expected env allowed hosts, got %q", cfg.AllowedHosts)
	}
	if cfg.AverageBasis != "raw" {
		t.Fatalf("expected flag basis, got %q", cfg.AverageBasis)
	}
}

func TestSplitHosts(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: nil},
		{in: "a.local", want: []string{"a.local"}},
		{in: " a.local , ,b.local:9000 ", want: []string{"a.local", "b.local:9000"}},
	}
	for _, tt := range tests {
		if got := splitHosts(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("splitHosts(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRunRejectsUnsupportedTransport(t *testing.T) {
	t.Setenv("HARN_OTEL_ENDPOINT", "")
	if err := Run(context.Background(), Config{Transport: "carrier-pigeon"}); err == nil {
		t.Fatal("expected transport error")
	}
}
