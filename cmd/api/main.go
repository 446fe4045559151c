package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wholesale_portal_backend/internal/commerce"
	"wholesale_portal_backend/internal/email"
	"wholesale_portal_backend/internal/events"
	apphttp "wholesale_portal_backend/internal/http"
	"wholesale_portal_backend/internal/http/router"
	"wholesale_portal_backend/internal/notification"
	"wholesale_portal_backend/internal/registration"
	"wholesale_portal_backend/internal/relay"
	"wholesale_portal_backend/internal/taxexempt"
	"wholesale_portal_backend/platform/config"
	"wholesale_portal_backend/platform/httpkit"
	"wholesale_portal_backend/platform/logger"
	"wholesale_portal_backend/platform/validator"

	"golang.org/x/time/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	sender, err := email.NewSender(cfg)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	commerceClient := commerce.NewClient(cfg)
	binaryRelay := relay.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module subscribes to domain events (not HTTP-facing)
	notificationModule := notification.New(sender, cfg, log)
	notificationModule.RegisterHandlers(eventBus)

	registrationModule := registration.NewModule(commerceClient, eventBus, cfg, val, log)
	taxExemptModule := taxexempt.NewModule(commerceClient, binaryRelay, eventBus, cfg, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	perSecond := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	rateLimiter := httpkit.NewIPRateLimiter(perSecond, cfg.RateLimitBurst, log)

	app := &apphttp.App{
		Config:      cfg,
		Logger:      log,
		RateLimiter: rateLimiter,
		Modules: []apphttp.Module{
			registrationModule,
			taxExemptModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
