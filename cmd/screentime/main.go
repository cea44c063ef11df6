// Package main is the entry point for the screentime command.
// It loads configuration, builds the report pipeline and runs the CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/j-veylop/screentime/internal/cli"
	"github.com/j-veylop/screentime/internal/config"
	"github.com/j-veylop/screentime/internal/logger"
	"github.com/j-veylop/screentime/internal/services"
)

func main() {
	os.Exit(run())
}

// run contains the main application logic, separated for cleaner exit handling.
func run() int {
	// 1. Load configuration from .env files and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}
	logger.SetLevel(cfg.LogLevel)
	logger.Debug("configuration loaded", "db", cfg.DatabasePath, "spotlight", cfg.UseSpotlight())

	// 2. Cancel queries and lookups on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Build the pipeline and dispatch the command line
	mgr := services.NewManager(cfg)
	return cli.Execute(ctx, mgr, os.Args[1:], os.Stdout, os.Stderr)
}
