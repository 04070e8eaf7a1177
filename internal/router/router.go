package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/sefazor/checkout-backend/internal/handler"
	"github.com/sefazor/checkout-backend/internal/middleware"
	"github.com/sefazor/checkout-backend/pkg/metrics"
)

type Options struct {
	Logger  *zap.Logger
	Metrics *metrics.Metrics
	// RateLimitMax is the number of requests per minute allowed per client
	// IP. Zero disables the limiter.
	RateLimitMax int
	// AccessLog enables fiber's request logger.
	AccessLog bool
}

// New builds the HTTP application. CORS headers are applied before
// anything else so that every response, including errors, carries them.
func New(paymentHandler *handler.PaymentHandler, opts Options) *fiber.App {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler(log),
		DisableStartupMessage: true,
	})

	app.Use(middleware.CORSMiddleware())
	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New())
	}
	if opts.Metrics != nil {
		app.Use(opts.Metrics.Middleware())
		app.Get("/metrics", adaptor.HTTPHandler(opts.Metrics.Handler()))
	}

	api := app.Group("/api")
	if opts.RateLimitMax > 0 {
		api.Use(limiter.New(limiter.Config{
			Max:        opts.RateLimitMax,
			Expiration: 1 * time.Minute,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP()
			},
		}))
	}

	api.Get("/test", paymentHandler.Test)
	api.Post("/get-stripe-session", paymentHandler.GetStripeSession)

	return app
}
