package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/avoskres/parlor/internal/cli"
	"github.com/avoskres/parlor/internal/config"
	"github.com/avoskres/parlor/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
