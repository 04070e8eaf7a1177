package payment

import (
	"context"

	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
	"go.uber.org/zap"
)

type stripeOptions struct {
	logger  *zap.Logger
	baseURL string
}

// StripeOption customizes the SDK client built by NewStripeProvider.
type StripeOption func(*stripeOptions)

// WithLogger routes SDK log output through the given logger.
func WithLogger(l *zap.Logger) StripeOption {
	return func(o *stripeOptions) { o.logger = l }
}

// WithBaseURL points the API and upload backends at another host.
func WithBaseURL(url string) StripeOption {
	return func(o *stripeOptions) { o.baseURL = url }
}

type StripeProvider struct {
	api *client.API
}

// NewStripeProvider builds a client bound to secretKey. Nothing is sent over
// the network until one of the Provider methods is called. Network retries
// are disabled.
func NewStripeProvider(secretKey string, opts ...StripeOption) *StripeProvider {
	o := stripeOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, o.backendConfig()),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, o.backendConfig()),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, o.backendConfig()),
	}

	return &StripeProvider{api: client.New(secretKey, backends)}
}

// backendConfig returns a fresh config per backend; the SDK fills in
// defaults on the struct it is given.
func (o stripeOptions) backendConfig() *stripe.BackendConfig {
	cfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
	}
	if o.logger != nil {
		cfg.LeveledLogger = o.logger.Sugar()
	}
	if o.baseURL != "" {
		cfg.URL = stripe.String(o.baseURL)
	}
	return cfg
}

func (p *StripeProvider) CreatePrice(ctx context.Context, in PriceParams) (*stripe.Price, error) {
	params := &stripe.PriceParams{
		Currency:   stripe.String(in.Currency),
		UnitAmount: stripe.Int64(in.UnitAmount),
		Product:    stripe.String(in.ProductID),
		Recurring: &stripe.PriceRecurringParams{
			Interval:      stripe.String(in.Interval),
			IntervalCount: stripe.Int64(in.IntervalCount),
		},
	}
	params.Context = ctx

	return p.api.Prices.New(params)
}

func (p *StripeProvider) CreateCheckoutSession(ctx context.Context, in CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:               stripe.String(in.Mode),
		PaymentMethodTypes: stripe.StringSlice(in.PaymentMethodTypes),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(in.PriceID),
				Quantity: stripe.Int64(in.Quantity),
			},
		},
		SuccessURL: stripe.String(in.SuccessURL),
	}
	if in.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(in.CustomerEmail)
	}
	if in.CancelURL != "" {
		params.CancelURL = stripe.String(in.CancelURL)
	}
	params.Context = ctx

	return p.api.CheckoutSessions.New(params)
}

func (p *StripeProvider) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	params := &stripe.SubscriptionCancelParams{}
	params.Context = ctx

	_, err := p.api.Subscriptions.Cancel(subscriptionID, params)
	return err
}
