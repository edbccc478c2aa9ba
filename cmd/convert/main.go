// Package main converts one character from the command line.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	convertcmd "github.com/louisbranch/cands-to-harn/internal/cmd/convert"
	platformcmd "github.com/louisbranch/cands-to-harn/internal/platform/cmd"
	"github.com/louisbranch/cands-to-harn/internal/platform/config"
)

func main() {
	cfg, err := convertcmd.ParseConfig(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		config.ExitCodef(config.ExitCodeUsage, "parse flags: %v", err)
	}
	log.SetPrefix(platformcmd.LogPrefix(platformcmd.ServiceConvert))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := convertcmd.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("convert: %v", err)
	}
}
