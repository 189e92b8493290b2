// Package main is the clinicaldoc command-line tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsamuelsen11/clinical-doc-assist/internal/adapters/cli"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/bootstrap"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/domain/clinical"
	"github.com/jsamuelsen11/clinical-doc-assist/internal/platform/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx, loadSession)
	stop()
	os.Exit(code)
}

// loadSession wires the documentation service for profile. Logs go to
// stderr so stdout carries only agent output.
func loadSession(ctx context.Context, profile, configDir string) (*cli.Session, error) {
	container, err := bootstrap.New(ctx, profile, os.Stderr, config.WithConfigDir(configDir))
	if err != nil {
		return nil, err
	}

	svc, err := container.DocumentationService()
	if err != nil {
		_ = container.Shutdown(ctx)
		return nil, err
	}

	catalog, err := container.ModelCatalog()
	if err != nil {
		_ = container.Shutdown(ctx)
		return nil, err
	}

	return &cli.Session{
		Service:          svc,
		Models:           catalog,
		Model:            container.Config.LLM.Model,
		DefaultSpecialty: clinical.ParseSpecialty(container.Config.Agents.DefaultSpecialty),
		Close:            container.Shutdown,
	}, nil
}
