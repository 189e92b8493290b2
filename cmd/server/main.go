// Package main is the entry point for the HTTP API. It builds the dependency
// graph through bootstrap, serves until SIGINT/SIGTERM, then drains requests
// and flushes telemetry.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/bootstrap"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := bootstrap.New(ctx, profile, os.Stderr)
	if err != nil {
		return err
	}
	logger := container.Logger

	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()

		if err := container.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
		logger.Info("shutdown complete")
	}()

	server, err := container.Server()
	if err != nil {
		return err
	}

	logger.Info("starting clinical documentation api",
		slog.String("profile", profile),
		slog.String("llm_api_style", container.Config.LLM.APIStyle),
		slog.String("llm_model", container.Config.LLM.Model),
	)

	if err := server.Run(ctx, serverShutdownTimeout); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
