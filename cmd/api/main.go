// @title                       UMD API
// @version                     1.0
// @description                 Users, courses and images for the UMD ESIEA catalog.
// @BasePath                    /
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/umd-esiea/umd-api/internal/api"
	"github.com/umd-esiea/umd-api/internal/api/handler"
	"github.com/umd-esiea/umd-api/internal/core/ports"
	"github.com/umd-esiea/umd-api/internal/core/service"
	"github.com/umd-esiea/umd-api/internal/infrastructure/config"
	"github.com/umd-esiea/umd-api/internal/infrastructure/db/mongo"
	"github.com/umd-esiea/umd-api/internal/infrastructure/db/redis"
	"github.com/umd-esiea/umd-api/internal/pkg/token"
	"github.com/umd-esiea/umd-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "umd-api: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "umd-api",
	})

	// --- MongoDB ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect")
		}
	}()
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	health := map[string]handler.Pinger{"mongodb": mongo.NewPinger(mongoClient)}

	// --- Redis (optional) ---
	var reserver ports.KeyReserver
	if cfg.Redis.Addr != "" {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer closeRedis(rdb, log)

		reserver = redis.NewKeyReserver(rdb, cfg.Redis.ReservationTTL, log)
		health["redis"] = redis.NewPinger(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	} else {
		health["redis"] = nil
		log.Warn().Msg("REDIS_ADDR not set, key reservation disabled")
	}

	// --- Services ---
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	users := service.NewUserService(mongo.NewUserRepository(db), reserver, tokens, cfg.Auth.BcryptCost, log)
	courses := service.NewCourseService(mongo.NewCourseRepository(db), reserver, log)
	images := service.NewImageService(mongo.NewImageRepository(db), reserver, log)

	e := api.NewRouter(api.Deps{
		Users:         users,
		Courses:       courses,
		Images:        images,
		Tokens:        tokens,
		Health:        health,
		Logger:        log,
		Development:   cfg.IsDevelopment(),
		AuthRateLimit: cfg.Auth.RateLimit,
		AuthRateBurst: cfg.Auth.RateBurst,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("http server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
}
