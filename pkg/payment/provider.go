package payment

import (
	"context"

	"github.com/stripe/stripe-go/v74"
)

const (
	ModeSubscription  = string(stripe.CheckoutSessionModeSubscription)
	PaymentMethodCard = "card"
)

// PriceParams describes a recurring price to create.
type PriceParams struct {
	Currency      string
	UnitAmount    int64
	Interval      string
	IntervalCount int64
	ProductID     string
}

// CheckoutSessionParams describes a hosted checkout session with a single
// line item.
type CheckoutSessionParams struct {
	PriceID            string
	Quantity           int64
	Mode               string
	PaymentMethodTypes []string
	CustomerEmail      string
	SuccessURL         string
	CancelURL          string
}

// Provider is the subset of the billing API the checkout flow uses.
type Provider interface {
	CreatePrice(ctx context.Context, params PriceParams) (*stripe.Price, error)
	CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*stripe.CheckoutSession, error)
	DeleteSubscription(ctx context.Context, subscriptionID string) error
}
