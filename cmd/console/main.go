package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nordblog/console/internal/core/service"
	"github.com/nordblog/console/internal/infrastructure/api"
	"github.com/nordblog/console/internal/infrastructure/config"
	"github.com/nordblog/console/internal/notify"
	"github.com/nordblog/console/internal/web"
	"github.com/nordblog/console/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Development(),
	})

	client, err := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build API client")
	}

	bulletin := notify.NewBulletin(cfg.NotifyTTL)
	sessions := service.NewSessionService(client, log)
	posts := service.NewPostService(client, bulletin, log)

	e := web.NewRouter(web.Dependencies{
		Sessions: sessions,
		Posts:    posts,
		AuthAPI:  client,
		PostAPI:  client,
		Bulletin: bulletin,
		Logger:   log,
	})

	// Resolve the session in the background; gated routes render the
	// checking placeholder until this settles.
	go sessions.Probe(context.Background())

	go func() {
		log.Info().Str("port", cfg.Port).Str("api", cfg.API.BaseURL).Msg("console listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
