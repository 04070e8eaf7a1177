package service

import (
	"context"

	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"

	"github.com/sefazor/checkout-backend/internal/config"
	"github.com/sefazor/checkout-backend/pkg/payment"
)

// ClientSource yields the billing provider handle.
type ClientSource interface {
	Client() (payment.Provider, error)
}

type CheckoutService struct {
	clients ClientSource
	stripe  config.StripeConfig
	pricing config.PricingConfig
	logger  *zap.Logger
}

func NewCheckoutService(clients ClientSource, stripeCfg config.StripeConfig, pricing config.PricingConfig, logger *zap.Logger) *CheckoutService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutService{
		clients: clients,
		stripe:  stripeCfg,
		pricing: pricing,
		logger:  logger,
	}
}

// CreatePrice creates a new recurring price for amountMinorUnits on the
// configured product. A new price is created on every call.
func (s *CheckoutService) CreatePrice(ctx context.Context, amountMinorUnits int64) (*stripe.Price, error) {
	if s.stripe.ProductID == "" {
		return nil, payment.MissingSetting("PRODUCT_ID", "PRODUCT_ID missing")
	}

	client, err := s.clients.Client()
	if err != nil {
		return nil, err
	}

	p, err := client.CreatePrice(ctx, payment.PriceParams{
		Currency:      s.pricing.Currency,
		UnitAmount:    amountMinorUnits,
		Interval:      s.pricing.Interval,
		IntervalCount: s.pricing.IntervalCount,
		ProductID:     s.stripe.ProductID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("price created",
		zap.String("price_id", p.ID),
		zap.Int64("unit_amount", amountMinorUnits))
	return p, nil
}

// CreateCheckoutSession opens a hosted subscription checkout for a single
// unit of priceID.
func (s *CheckoutService) CreateCheckoutSession(ctx context.Context, customerEmail, priceID string) (*stripe.CheckoutSession, error) {
	if s.stripe.SuccessURL == "" {
		return nil, payment.MissingSetting("SUCCESS_URL", "success URL required")
	}

	client, err := s.clients.Client()
	if err != nil {
		return nil, err
	}

	session, err := client.CreateCheckoutSession(ctx, payment.CheckoutSessionParams{
		PriceID:            priceID,
		Quantity:           1,
		Mode:               payment.ModeSubscription,
		PaymentMethodTypes: []string{payment.PaymentMethodCard},
		CustomerEmail:      customerEmail,
		SuccessURL:         s.stripe.SuccessURL,
		CancelURL:          s.stripe.CancelURL,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("checkout session created",
		zap.String("session_id", session.ID),
		zap.String("price_id", priceID))
	return session, nil
}

// CancelSubscription cancels the subscription immediately. Whatever the
// provider returns for unknown or already cancelled ids is passed through.
func (s *CheckoutService) CancelSubscription(ctx context.Context, subscriptionID string) error {
	client, err := s.clients.Client()
	if err != nil {
		return err
	}
	return client.DeleteSubscription(ctx, subscriptionID)
}

// StartCheckout creates a price for amountMinorUnits and a checkout session
// for it, in that order.
func (s *CheckoutService) StartCheckout(ctx context.Context, customerEmail string, amountMinorUnits int64) (*stripe.CheckoutSession, error) {
	p, err := s.CreatePrice(ctx, amountMinorUnits)
	if err != nil {
		return nil, err
	}
	return s.CreateCheckoutSession(ctx, customerEmail, p.ID)
}
