package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/justfortestingnothibghere/Api/internal/models"
	"github.com/justfortestingnothibghere/Api/internal/server"
	"github.com/justfortestingnothibghere/Api/internal/services"
	"github.com/justfortestingnothibghere/Api/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve runs the HTTP API until SIGINT or SIGTERM.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	srv, err := r.newServer(cmd)
	if err != nil {
		return err
	}

	ln, err := srv.Listen()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cmd.Bool("open") {
		url := fmt.Sprintf("http://%s/", ln.Addr().String())
		if err := shared.OpenBrowser(url); err != nil {
			r.logger.Warn("failed to open browser", "url", url, "error", err)
		}
	}

	return srv.Serve(ctx, ln)
}

// newServer applies flag overrides to the config and builds the server over the configured catalog.
func (r *Runner) newServer(cmd *cli.Command) (*server.Server, error) {
	loaded, err := r.loadConfig(cmd.String("config"))
	if err != nil {
		return nil, err
	}
	config := *loaded

	if cmd.IsSet("host") {
		config.Server.Host = cmd.String("host")
	}
	if cmd.IsSet("port") {
		config.Server.Port = cmd.Int("port")
	}
	if cmd.IsSet("allow-bypass") {
		config.Server.AllowBypass = cmd.Bool("allow-bypass")
	}
	if cmd.IsSet("debug") {
		config.Server.Debug = cmd.Bool("debug")
	}

	catalog, err := models.CatalogFromConfig(config.Songs)
	if err != nil {
		return nil, err
	}

	r.logger.Info("loaded catalog", "songs", catalog.Len(), "keys", len(config.Auth.Keys))
	return server.New(&config, services.NewCatalogService(catalog), r.logger)
}
