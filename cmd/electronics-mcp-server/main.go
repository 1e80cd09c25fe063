// Command electronics-mcp-server serves the resistor, capacitor, and
// GPIO knowledge tools over MCP stdio transport.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/samuelf/electronics-mcp-server/internal/config"
	"github.com/samuelf/electronics-mcp-server/internal/toolset"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "print the server version and exit")
		debug       = flag.Bool("debug", false, "enable debug-level logging")
		name        = flag.String("name", "", "override the server name reported at initialize")
	)
	flag.Parse()

	cfg := config.Default()
	if *debug {
		config.WithLogLevel(slog.LevelDebug)(cfg)
	}
	if *name != "" {
		config.WithServerName(*name)(cfg)
	}

	if *showVersion {
		fmt.Printf("%s %s\n", cfg.ServerName, cfg.ServerVersion)
		return
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := toolset.New(cfg, logger)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("serving over stdio", slog.String("server", cfg.ServerName), slog.String("version", cfg.ServerVersion))
		return server.Serve(ctx)
	})

	return g.Wait()
}
