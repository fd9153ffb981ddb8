package main

import (
	"context"
	"errors"
	stdlog "log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	debughttp "github.com/malekian/snipemcp/internal/adapters/http"
	mcpadapter "github.com/malekian/snipemcp/internal/adapters/mcp"
	"github.com/malekian/snipemcp/internal/app"
	"github.com/malekian/snipemcp/internal/config"
	"github.com/malekian/snipemcp/pkg/logger"
)

const (
	serverName    = "Snipe-IT MCP Server"
	serverVersion = "0.1.0"
)

func main() {
	// Disable default Go metrics collection to avoid duplicate metrics
	// on the debug listener; we register our own set.
	prometheus.Unregister(collectors.NewGoCollector())
	prometheus.Unregister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// Optional .env for local development; absence is not an error.
	_ = godotenv.Load()

	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() {
		if err := logger.Sync(); err != nil {
			os.Stderr.WriteString("failed to sync logger: " + err.Error() + "\n")
		}
	}()

	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Create the service holding the upstream client.
	svc := app.New(
		app.WithLogger(log),
		app.WithCredentials(cfg.SnipeITURL, cfg.SnipeITToken),
		app.WithHTTPTimeout(time.Duration(cfg.HTTPTimeoutSeconds)*time.Second),
	)
	if err := svc.Start(ctx); err != nil {
		os.Stderr.WriteString("failed to start service: " + err.Error() + "\n")
		return
	}

	// Register the tool surface.
	mcpServer := server.NewMCPServer(serverName, serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	adapter := mcpadapter.NewServer(svc, cfg.LabelSavePath, cfg.ListLimit)
	adapter.Register(mcpServer)

	// Optional /metrics and /healthz listener.
	if cfg.MetricsAddr != "" {
		debughttp.New(cfg.MetricsAddr, log).Start(ctx)
	}

	// Serve MCP over stdio until the context is cancelled.
	log.Info(ctx, "starting MCP server on stdio", logger.String("version", serverVersion))
	stdio := server.NewStdioServer(mcpServer)
	stdio.SetErrorLogger(stdlog.New(os.Stderr, "", stdlog.LstdFlags))
	if err := stdio.Listen(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "stdio server failed", logger.Error(err))
		return
	}

	log.Info(ctx, "server stopped")
}
