// Package main wires the HTTP server for the coding receipt service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	handlers_fiber "github.com/Koushal55/GitReceipt/internal/transport/http/server/handlers-fiber"
	"github.com/Koushal55/GitReceipt/internal/usecase"

	"github.com/Koushal55/GitReceipt/config"
	"github.com/Koushal55/GitReceipt/internal/api"
	"github.com/Koushal55/GitReceipt/internal/enrichment"
	"github.com/Koushal55/GitReceipt/internal/enrichment/gemini"
	"github.com/Koushal55/GitReceipt/internal/source"
	"github.com/Koushal55/GitReceipt/internal/transport/http/middleware"
	"github.com/Koushal55/GitReceipt/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}

	src, err := source.New(ctx, "github", log, cfg)
	if err != nil {
		log.Errorw("source initialization error", "error", err)
		return
	}
	if err := src.OnStart(ctx); err != nil {
		log.Errorw("source start error", "error", err)
		return
	}
	defer func() {
		_ = src.OnStop(context.Background())
	}()

	var enrich enrichment.Provider
	if cfg.Gemini.Enabled() {
		enrich = gemini.New(log, cfg.Gemini)
	} else {
		log.Infow("gemini api key not set, surcharge enrichment disabled")
	}

	uc := usecase.New(log, ctx, src, enrich, cfg)

	serv := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.RequestTimeout,
		WriteTimeout: cfg.HTTP.RequestTimeout,
	})
	serv.Use(recover.New())
	serv.Use(requestid.New())
	serv.Use(middleware.RequestLogger(log))

	serv.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	h := handlers_fiber.NewHandler(log, uc)
	api.RegisterHandlers(serv, h)

	go func() {
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	done := make(chan struct{})
	go func() {
		_ = serv.Shutdown()
		close(done)
	}()

	select {
	case <-done:
	case <-shutdownCtx.Done():
		log.Warnw("server shutdown timeout", "timeout", cfg.Server.ShutdownTimeout)
	}
}
