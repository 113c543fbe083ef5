package main

import (
	"context"
	"log/slog"
	"mecabot/app/config"
	"mecabot/app/mcptools"
	"mecabot/app/server"
	"mecabot/app/service/advisor"
	"mecabot/app/service/catalog"
	"mecabot/app/service/diag"
	"mecabot/app/service/rewrite"
	"mecabot/app/util/mylog"
	"os"
	"os/signal"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, catalog.New)
	do.Provide(di, rewrite.New)
	do.Provide(di, diag.New)
	do.Provide(di, advisor.New)
	do.Provide(di, server.New)

	if len(os.Args) > 1 && os.Args[1] == "mcp" {
		if err := mcptools.Run(do.MustInvoke[*catalog.Service](di)); err != nil {
			log.Fatalf("mcp server failed: %v", err)
		}
		return
	}

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	go do.MustInvoke[*server.Server](di).Run(appCtx)

	<-appCtx.Done()
}
