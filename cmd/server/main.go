// @title           Villa API
// @version         1.0
// @description     Villa and villa number management with JWT authentication.
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/magicvilla/villa-api/internal/api"
	"github.com/magicvilla/villa-api/internal/core/ports"
	"github.com/magicvilla/villa-api/internal/core/service"
	"github.com/magicvilla/villa-api/internal/infrastructure/db/redis"
	"github.com/magicvilla/villa-api/internal/infrastructure/storage"
	"github.com/magicvilla/villa-api/internal/pkg/config"
	"github.com/magicvilla/villa-api/internal/pkg/validation"
	"github.com/magicvilla/villa-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		boot := logger.Init(logger.Options{})
		boot.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "villa-api",
	})

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	store, err := storage.Open(ctx, storage.Config{
		Driver:      cfg.Store.Driver,
		DatabaseURL: cfg.Store.DatabaseURL,
		MongoURI:    cfg.Mongo.URI,
		MongoDB:     cfg.Mongo.Database,
	}, log)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	readiness := map[string]ports.Pinger{store.Name: store.Pinger}

	// A nil interface, not a nil *redis.Cache, disables caching.
	var cache ports.Cache
	if cfg.Redis.Addr != "" {
		c, err := redis.Open(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB, TTL: cfg.Redis.CacheTTL})
		if err != nil {
			return err
		}
		defer c.Close()

		cache = c
		readiness["redis"] = c
		log.Info().Str("addr", cfg.Redis.Addr).Msg("response cache enabled")
	}

	v := validation.New()
	e := api.NewRouter(api.Deps{
		Logger:             log,
		JWTSecret:          cfg.JWTSecret,
		Validator:          v,
		VillaService:       service.NewVillaService(store.Villas, cache, v.Struct, log),
		VillaNumberService: service.NewVillaNumberService(store.VillaNumbers, store.Villas, v.Struct, log),
		AuthService:        service.NewAuthService(store.Users, cfg.JWTSecret, cfg.TokenTTL, log),
		Readiness:          readiness,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", store.Name).Msg("villa API listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
