package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/df07/go-smallpt/pkg/config"
	"github.com/df07/go-smallpt/web/server"
	"github.com/urfave/cli"
)

// Serve runs the HTTP render server until interrupted
func Serve(ctx *cli.Context) error {
	cfg, err := config.Load(ctx.GlobalString("env-dir"))
	if err != nil {
		return err
	}
	setupLogging(ctx, cfg.LogLevel)

	serveCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Noticef("visit http://localhost:%d/api/scenes to get started", ctx.Int("port"))
	return server.NewServer(ctx.Int("port")).Start(serveCtx)
}
