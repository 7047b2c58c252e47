// @title        Handicraft Inventory API
// @version      1.0
// @description  Inventory, restock, notification and chat backend behind a JWT gate.
// @BasePath     /
//
// @securityDefinitions.apikey  TokenAuth
// @in                          header
// @name                        x-auth-token
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

	"github.com/rs/zerolog"

	"github.com/handicraft/inventory-api/internal/api"
	"github.com/handicraft/inventory-api/internal/core/service"
	"github.com/handicraft/inventory-api/internal/infrastructure/config"
	"github.com/handicraft/inventory-api/internal/infrastructure/db/mongo"
	"github.com/handicraft/inventory-api/internal/infrastructure/db/redis"
	"github.com/handicraft/inventory-api/internal/infrastructure/http/handlers"
	"github.com/handicraft/inventory-api/internal/infrastructure/mail"
	"github.com/handicraft/inventory-api/internal/infrastructure/queue"
	"github.com/handicraft/inventory-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "inventory-api: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx, nil)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "inventory-api",
	})

	// --- Storage ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		IOTimeout:    cfg.Redis.Timeout,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	repos := mongo.NewRepositories(db)
	if err := repos.EnsureIndexes(ctx); err != nil {
		return err
	}

	// --- Notifications ---
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	if !mailer.Configured() {
		log.Warn().Msg("SMTP not configured, email endpoints will answer 503")
	}

	notifications := service.NewNotificationService(
		mailer,
		redis.NewNotificationDedup(rdb, cfg.Notify.DedupTTL),
		log.With().Str("component", "notifications").Logger(),
	)
	dispatcher := queue.NewDispatcher(cfg.Notify.Workers, notifications, log)
	dispatcher.Start(ctx)

	// --- Use cases ---
	tokens, err := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return err
	}

	svc := api.Services{
		Auth:      service.NewAuthService(repos.Users, tokens, cfg.AdminEmail),
		Tokens:    tokens,
		Inventory: service.NewInventoryService(repos.Inventory, dispatcher, cfg.Notify.Recipients, log),
		Restocks:  service.NewRestockService(repos.Restocks, repos.Inventory, dispatcher, cfg.Notify.Recipients, log),
		Messages:  service.NewMessageService(repos.Messages),
		Mailer:    mailer,
	}

	readiness := handlers.NewReadinessHandler(map[string]handlers.CheckFunc{
		"mongodb": handlers.MongoCheck(db),
		"redis":   handlers.RedisCheck(rdb),
	})
	probes := api.Probes{
		Liveness:  handlers.NewHealthHandler().Liveness,
		Readiness: readiness.Readiness,
	}

	e := api.NewRouter(svc, probes, log)

	return serve(ctx, e, ":"+cfg.Port, log)
}

func serve(ctx context.Context, h http.Handler, addr string, log zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	return srv.Shutdown(shutdownCtx)
}
