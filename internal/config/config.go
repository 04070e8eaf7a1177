package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	DefaultPort         = "3004"
	DefaultRateLimitMax = 20
)

// PricingConfig is the recurring price model applied to every checkout.
type PricingConfig struct {
	Currency      string `validate:"required,len=3,lowercase"`
	Interval      string `validate:"required,oneof=day week month year"`
	IntervalCount int64  `validate:"required,min=1,max=365"`
}

// DefaultPricing is a monthly plan billed in US dollars.
func DefaultPricing() PricingConfig {
	return PricingConfig{
		Currency:      "usd",
		Interval:      "month",
		IntervalCount: 1,
	}
}

type StripeConfig struct {
	// ProductID and SuccessURL are checked when a checkout is started,
	// not at startup.
	ProductID  string
	SuccessURL string
	CancelURL  string
}

type Config struct {
	Env          string
	LogLevel     string
	Port         string
	RateLimitMax int
	Stripe       StripeConfig
	Pricing      PricingConfig
}

// LoadConfig reads the process environment, after loading the nearest .env
// file if there is one. Only the pricing model is validated here.
func LoadConfig() (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:          getEnv("APP_ENV", "development"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", DefaultPort),
		RateLimitMax: DefaultRateLimitMax,
		Pricing:      DefaultPricing(),
	}

	cfg.Stripe.ProductID = os.Getenv("PRODUCT_ID")
	cfg.Stripe.SuccessURL = os.Getenv("SUCCESS_URL")
	cfg.Stripe.CancelURL = os.Getenv("CANCEL_URL")

	if v := os.Getenv("RATE_LIMIT_MAX"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid RATE_LIMIT_MAX %q", v)
		}
		cfg.RateLimitMax = n
	}

	if v := os.Getenv("PRICE_CURRENCY"); v != "" {
		cfg.Pricing.Currency = strings.ToLower(v)
	}
	if v := os.Getenv("PRICE_INTERVAL"); v != "" {
		cfg.Pricing.Interval = strings.ToLower(v)
	}
	if v := os.Getenv("PRICE_INTERVAL_COUNT"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PRICE_INTERVAL_COUNT %q: %w", v, err)
		}
		cfg.Pricing.IntervalCount = n
	}

	if err := validator.New().Struct(cfg.Pricing); err != nil {
		return nil, fmt.Errorf("invalid pricing configuration: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads the first .env found walking up from the working
// directory. Variables already set in the environment win.
func loadDotEnv() error {
	dir, err := os.Getwd()
	if err != nil {
		return nil
	}
	for {
		path := filepath.Join(dir, ".env")
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err != nil {
				return fmt.Errorf("failed to load .env file: %w", err)
			}
			return nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return nil
		}
		dir = parent
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
