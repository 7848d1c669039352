package main

import (
	"context"
	"log"
	"os"

	"github.com/pablomagana/recomenzar/internal/buildinfo"
	"github.com/pablomagana/recomenzar/internal/client/cli"
	"github.com/pablomagana/recomenzar/internal/client/config"
	"github.com/pablomagana/recomenzar/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, err := logging.NewDevelopmentZap()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logger.Sync()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
