package payment

import (
	"context"
	"time"

	"github.com/stripe/stripe-go/v74"
)

// Observer records the outcome of a provider call.
type Observer interface {
	ObserveProviderCall(operation string, started time.Time, err error)
}

type instrumentedProvider struct {
	next Provider
	obs  Observer
}

// Instrument wraps p so every call is reported to obs. Results and errors
// are returned untouched.
func Instrument(p Provider, obs Observer) Provider {
	if obs == nil {
		return p
	}
	return instrumentedProvider{next: p, obs: obs}
}

func (i instrumentedProvider) CreatePrice(ctx context.Context, params PriceParams) (*stripe.Price, error) {
	started := time.Now()
	pr, err := i.next.CreatePrice(ctx, params)
	i.obs.ObserveProviderCall("create_price", started, err)
	return pr, err
}

func (i instrumentedProvider) CreateCheckoutSession(ctx context.Context, params CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	started := time.Now()
	s, err := i.next.CreateCheckoutSession(ctx, params)
	i.obs.ObserveProviderCall("create_checkout_session", started, err)
	return s, err
}

func (i instrumentedProvider) DeleteSubscription(ctx context.Context, subscriptionID string) error {
	started := time.Now()
	err := i.next.DeleteSubscription(ctx, subscriptionID)
	i.obs.ObserveProviderCall("delete_subscription", started, err)
	return err
}
