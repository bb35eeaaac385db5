package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/audit"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/auth"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/catalog"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/config"
	infraRepo "github.com/BruksfildServices01/luxe-beauties-api/internal/infra/repository"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/logger"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/metrics"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/payment"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/routes"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/validators"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "luxe-beauties-api",
		Level:       logger.ParseLevel(cfg.LogLevel),
		Format:      cfg.LogFormat,
	})
	ctx := context.Background()

	if err := validators.Register(); err != nil {
		logg.Error(ctx, "register validators", err)
		os.Exit(1)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.JWTSecret == "changeme" {
		logg.Warn(ctx, "JWT_SECRET is the default value; set it before exposing the API")
	}

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	var seed []models.Product
	if cfg.SeedCatalog {
		seed = catalog.Seed()
	}
	users := infraRepo.NewUserMemoryRepository()
	products := infraRepo.NewProductMemoryRepository(seed)
	orders := infraRepo.NewOrderMemoryRepository()
	appointments := infraRepo.NewAppointmentMemoryRepository()

	auditLogger := audit.New(logg)
	auditDispatcher := audit.NewDispatcher(auditLogger, logg, cfg.AuditQueueSize)

	var intents payment.IntentCreator
	if cfg.PaymentsEnabled() {
		intents, err = payment.NewStripeIntents(cfg.StripeSecretKey)
		if err != nil {
			logg.Error(ctx, "stripe client", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(ctx, "STRIPE_SECRET_KEY not set; payment endpoints are disabled")
	}
	gateway := payment.NewGateway(payment.GatewayParams{
		Intents:       intents,
		SigningSecret: cfg.StripeWebhookSecret,
		Timeout:       cfg.PaymentTimeout,
		Observer:      m,
		Logger:        logg,
	})

	// ======================================================
	// HTTP
	// ======================================================
	r := gin.New()
	routes.RegisterRoutes(r, routes.Dependencies{
		Config:       cfg,
		Logger:       logg,
		Users:        users,
		Products:     products,
		Orders:       orders,
		Appointments: appointments,
		AuditLogger:  auditLogger,
		Audit:        auditDispatcher,
		Tokens:       auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL),
		Payments:     gateway,
		Metrics:      m,
		Gatherer:     reg,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logg.Info(logg.WithFields(ctx, map[string]any{
			"addr":     cfg.Addr(),
			"env":      cfg.AppEnv,
			"products": products.Count(),
			"payments": cfg.PaymentsEnabled(),
		}), "server running")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "server failed", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Error(ctx, "graceful shutdown", err)
	}
	auditDispatcher.Close()

	logg.Info(logg.WithFields(ctx, map[string]any{
		"users":        users.Count(),
		"appointments": appointments.Count(),
	}), "server stopped; in-memory state discarded")
}
