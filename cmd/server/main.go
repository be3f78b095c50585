package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/taxpro/office-api/internal/api"
	"github.com/taxpro/office-api/internal/core/service"
	"github.com/taxpro/office-api/internal/infrastructure/authgw"
	"github.com/taxpro/office-api/internal/infrastructure/config"
	redisdb "github.com/taxpro/office-api/internal/infrastructure/db/redis"
	"github.com/taxpro/office-api/internal/infrastructure/memstore"
	"github.com/taxpro/office-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.Init(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("ENV") == "development",
	})

	cfg := config.Load(log)
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer func() { _ = rdb.Close() }()

	// Domain collections live in process; seed the demo dataset.
	store := memstore.New()
	store.Seed()

	gateway := authgw.New(cfg.AuthAPI.URL, cfg.AuthAPI.Timeout)
	sessions := redisdb.NewSessionStore(rdb, cfg.SessionTTL)
	otp := redisdb.NewOTPStore(rdb, cfg.OTPTTL)

	svc := api.Services{
		Auth: service.NewAuthService(gateway, otp, sessions,
			service.DefaultDemoAccounts(), cfg.JWTSecret, cfg.SessionTTL, log),
		Returns:  service.NewReturnService(store.Returns(), store.Activity(), log),
		Users:    service.NewUserService(store.Users(), store.Activity(), log),
		Billing:  service.NewBillingService(store.Invoices(), store.Users(), store.Activity(), log),
		Activity: service.NewActivityService(store.Activity(), log),
		Overview: service.NewOverviewService(store.Users(), store.Returns(), store.Invoices(), log),
		Customer: service.NewCustomerService(store.Customers(), store.Payments(), store.Activity(), log),
	}

	e := api.NewRouter(svc, rdb, cfg.JWTSecret, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
