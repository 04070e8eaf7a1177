package payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
)

type observation struct {
	op  string
	err error
}

type recordingObserver struct{ seen []observation }

func (r *recordingObserver) ObserveProviderCall(op string, _ time.Time, err error) {
	r.seen = append(r.seen, observation{op: op, err: err})
}

type stubProvider struct {
	price     *stripe.Price
	session   *stripe.CheckoutSession
	deleteErr error
}

func (s stubProvider) CreatePrice(context.Context, PriceParams) (*stripe.Price, error) {
	return s.price, nil
}
func (s stubProvider) CreateCheckoutSession(context.Context, CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return s.session, nil
}
func (s stubProvider) DeleteSubscription(context.Context, string) error { return s.deleteErr }

func TestInstrument_ReportsEachCall(t *testing.T) {
	deleteErr := errors.New("boom")
	obs := &recordingObserver{}
	p := Instrument(stubProvider{
		price:     &stripe.Price{ID: "price_1"},
		session:   &stripe.CheckoutSession{URL: "https://checkout"},
		deleteErr: deleteErr,
	}, obs)

	price, err := p.CreatePrice(context.Background(), PriceParams{})
	require.NoError(t, err)
	assert.Equal(t, "price_1", price.ID)

	session, err := p.CreateCheckoutSession(context.Background(), CheckoutSessionParams{})
	require.NoError(t, err)
	assert.Equal(t, "https://checkout", session.URL)

	assert.Same(t, deleteErr, p.DeleteSubscription(context.Background(), "sub_1"))

	assert.Equal(t, []observation{
		{op: "create_price"},
		{op: "create_checkout_session"},
		{op: "delete_subscription", err: deleteErr},
	}, obs.seen)
}

func TestInstrument_NilObserver(t *testing.T) {
	base := stubProvider{}
	assert.Equal(t, Provider(base), Instrument(base, nil))
}
