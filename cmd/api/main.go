// @title        Personal Trainer API
// @version      1.0
// @description  Client profiles with derived nutrition targets, memberships and the remote procedures used by the dashboard.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/ptcoach/personal-trainer/docs"
	"github.com/ptcoach/personal-trainer/internal/api"
	"github.com/ptcoach/personal-trainer/internal/api/handler"
	"github.com/ptcoach/personal-trainer/internal/core/service"
	"github.com/ptcoach/personal-trainer/internal/infrastructure/config"
	mongodb "github.com/ptcoach/personal-trainer/internal/infrastructure/db/mongo"
	redisdb "github.com/ptcoach/personal-trainer/internal/infrastructure/db/redis"
	"github.com/ptcoach/personal-trainer/internal/infrastructure/queue"
	"github.com/ptcoach/personal-trainer/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger depends on config; fall back to a plain JSON logger.
		l := logger.Init(logger.Options{})
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "personal-trainer",
		Env:     cfg.Env,
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		URL:      cfg.Redis.URL,
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer rdb.Close()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to ensure MongoDB indexes")
	}

	// --- Repositories ---
	clientRepo := mongodb.NewClientRepository(db)
	membershipRepo := mongodb.NewMembershipRepository(db)
	packageRepo := mongodb.NewPackageRepository(db)
	foodRepo := mongodb.NewFoodRepository(db)
	authRepo := mongodb.NewAuthRepository(db)
	dedup := redisdb.NewDedupChecker(rdb, cfg.Redis.WeightDedupTTL)

	// --- Services ---
	clientService := service.NewClientService(clientRepo, dedup, log)
	membershipService := service.NewMembershipService(membershipRepo, packageRepo, clientRepo, log)
	packageService := service.NewPackageService(packageRepo, log)
	foodService := service.NewFoodService(foodRepo, log)
	authService := service.NewAuthService(authRepo, cfg.JWTSecret, cfg.TokenTTL)

	if err := authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatal().Err(err).Msg("failed to bootstrap admin account")
	}

	dispatcher := queue.NewDispatcher(cfg.DispatchWorkers, clientService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Dependencies{
		Auth:        authService,
		Clients:     clientService,
		Memberships: membershipService,
		Packages:    packageService,
		Foods:       foodService,
		Dispatcher:  dispatcher,
		Health: map[string]handler.Pinger{
			"mongodb": handler.PingFunc(func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }),
			"redis":   handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
		},
		JWTSecret:    cfg.JWTSecret,
		DashboardDir: cfg.DashboardDir,
		Logger:       log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting HTTP server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("HTTP server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
	log.Info().Msg("server exited")
}
