package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/haemolab/lab-api/internal/config"
	"github.com/haemolab/lab-api/internal/email"
	"github.com/haemolab/lab-api/internal/handler"
	accountHandler "github.com/haemolab/lab-api/internal/handler/account"
	authHandler "github.com/haemolab/lab-api/internal/handler/auth"
	instrumentHandler "github.com/haemolab/lab-api/internal/handler/instrument"
	patientHandler "github.com/haemolab/lab-api/internal/handler/patient"
	reagentHandler "github.com/haemolab/lab-api/internal/handler/reagent"
	orderHandler "github.com/haemolab/lab-api/internal/handler/testorder"
	"github.com/haemolab/lab-api/internal/middleware"
	"github.com/haemolab/lab-api/internal/repository/postgres"
	redisrepo "github.com/haemolab/lab-api/internal/repository/redis"
	"github.com/haemolab/lab-api/internal/router"
	accountService "github.com/haemolab/lab-api/internal/service/account"
	authService "github.com/haemolab/lab-api/internal/service/auth"
	instrumentService "github.com/haemolab/lab-api/internal/service/instrument"
	patientService "github.com/haemolab/lab-api/internal/service/patient"
	reagentService "github.com/haemolab/lab-api/internal/service/reagent"
	orderService "github.com/haemolab/lab-api/internal/service/testorder"
	"github.com/haemolab/lab-api/pkg/auth"
	"github.com/haemolab/lab-api/pkg/logger"
	"github.com/haemolab/lab-api/pkg/metrics"
	"github.com/haemolab/lab-api/pkg/security"
)

func main() {
	appLog := logger.New(&logger.Config{Level: logger.InfoLevel})

	cfg, err := config.Load()
	if err != nil {
		appLog.Fatal(err, "failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		appLog.Fatal(err, "failed to connect to database")
	}
	defer db.Close()

	redisClient, err := redisrepo.NewClient(cfg.Redis)
	if err != nil {
		appLog.Fatal(err, "failed to connect to redis")
	}
	defer redisClient.Close()

	codec, err := security.NewCodec(cfg.Crypto.Secret)
	if err != nil {
		appLog.Fatal(err, "failed to initialize crypto codec")
	}

	m := metrics.New("lab")
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)
	tokens := auth.NewJWTService(auth.Config{
		Secret:        cfg.JWT.Secret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.AccessTTL(),
		RefreshTTL:    cfg.JWT.RefreshTTL(),
	})

	// Repositories
	accountRepo := postgres.NewAccountRepository(db)
	patientRepo := postgres.NewPatientRepository(db)
	reagentRepo := postgres.NewReagentRepository(db)
	instrumentRepo := postgres.NewInstrumentRepository(db)
	orderRepo := postgres.NewTestOrderRepository(db)
	resultRepo := postgres.NewTestResultRepository(db)
	tokenRepo := redisrepo.NewTokenRepository(redisClient)

	// Services
	emailSvc := email.NewSMTPService(cfg.SMTP, m)
	accountSvc := accountService.NewService(accountRepo, hasher, emailSvc, m)
	patientSvc := patientService.NewService(patientRepo, m)
	reagentSvc := reagentService.NewService(reagentRepo, m)
	instrumentSvc := instrumentService.NewService(instrumentRepo, m)
	orderSvc := orderService.NewService(orderRepo, resultRepo, patientRepo, emailSvc, m)
	authSvc := authService.NewService(
		accountRepo, tokens, tokenRepo, hasher, codec, emailSvc, m,
		cfg.JWT.RefreshTTL(), cfg.Server.BaseURL,
	)

	// Handlers and router
	authMw := middleware.NewAuthMiddleware(tokens)
	r := router.New(
		authMw,
		authHandler.NewHandler(authSvc),
		handler.NewHealthHandler(db),
		m,
		router.Config{
			RateLimitPerSecond: cfg.RateLimit.PerSecond,
			RateLimitBurst:     cfg.RateLimit.Burst,
			CORS:               middleware.DefaultCORSConfig(),
		},
		accountHandler.NewHandler(accountSvc),
		patientHandler.NewHandler(patientSvc),
		reagentHandler.NewHandler(reagentSvc),
		instrumentHandler.NewHandler(instrumentSvc),
		orderHandler.NewHandler(orderSvc),
	)
	r.Setup()

	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}

	go func() {
		appLog.WithFields(map[string]interface{}{"port": cfg.Server.Port}).Info("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(err, "server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error(err, "forced shutdown")
	}
}
