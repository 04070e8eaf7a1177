package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sefazor/checkout-backend/internal/config"
	"github.com/sefazor/checkout-backend/internal/controller"
	"github.com/sefazor/checkout-backend/internal/handler"
	"github.com/sefazor/checkout-backend/internal/router"
	"github.com/sefazor/checkout-backend/internal/service"
	"github.com/sefazor/checkout-backend/pkg/logger"
	"github.com/sefazor/checkout-backend/pkg/metrics"
	"github.com/sefazor/checkout-backend/pkg/payment"
	"github.com/sefazor/checkout-backend/pkg/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	zl, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer zl.Sync()

	m := metrics.New("checkout")

	// The Stripe client is built on first use; a missing key is reported
	// per request rather than at startup.
	clients := payment.NewClientFactory(nil, func(secretKey string) payment.Provider {
		return payment.Instrument(payment.NewStripeProvider(secretKey, payment.WithLogger(zl)), m)
	})

	checkoutService := service.NewCheckoutService(clients, cfg.Stripe, cfg.Pricing, zl)
	paymentController := controller.NewPaymentController(checkoutService)
	paymentHandler := handler.NewPaymentHandler(paymentController, utils.NewValidator(), zl)

	app := router.New(paymentHandler, router.Options{
		Logger:       zl,
		Metrics:      m,
		RateLimitMax: cfg.RateLimitMax,
		AccessLog:    true,
	})

	if cfg.Stripe.SuccessURL == "" {
		zl.Warn("SUCCESS_URL is not set; checkout sessions cannot be created")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			zl.Error("shutdown failed", zap.Error(err))
		}
	}()

	zl.Info("listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
