package payment

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v74"
)

type nopProvider struct{ key string }

func (nopProvider) CreatePrice(context.Context, PriceParams) (*stripe.Price, error) { return nil, nil }
func (nopProvider) CreateCheckoutSession(context.Context, CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return nil, nil
}
func (nopProvider) DeleteSubscription(context.Context, string) error { return nil }

func TestClientFactory_MissingKey(t *testing.T) {
	builds := 0
	f := NewClientFactory(func() string { return "" }, func(key string) Provider {
		builds++
		return nopProvider{key: key}
	})

	for i := 0; i < 2; i++ {
		p, err := f.Client()
		assert.Nil(t, p)

		var cfgErr *ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
		assert.Equal(t, EnvSecretKey, cfgErr.Key)
		assert.Contains(t, err.Error(), "STRIPE_SECRET_KEY")
	}
	assert.Equal(t, 0, builds)
}

func TestClientFactory_BuildsOnceAndReuses(t *testing.T) {
	builds := 0
	f := NewClientFactory(func() string { return "sk_test_1" }, func(key string) Provider {
		builds++
		return &nopProvider{key: key}
	})

	first, err := f.Client()
	require.NoError(t, err)
	second, err := f.Client()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, builds)
	assert.Equal(t, "sk_test_1", first.(*nopProvider).key)
}

func TestClientFactory_RecoversOnceKeyIsSet(t *testing.T) {
	key := ""
	f := NewClientFactory(func() string { return key }, func(k string) Provider {
		return &nopProvider{key: k}
	})

	_, err := f.Client()
	require.Error(t, err)

	key = "sk_test_later"
	p, err := f.Client()
	require.NoError(t, err)
	assert.Equal(t, "sk_test_later", p.(*nopProvider).key)
}

func TestClientFactory_ReadsEnvByDefault(t *testing.T) {
	t.Setenv(EnvSecretKey, "")
	f := NewClientFactory(nil, func(k string) Provider { return &nopProvider{key: k} })

	_, err := f.Client()
	require.Error(t, err)

	t.Setenv(EnvSecretKey, "sk_test_env")
	p, err := f.Client()
	require.NoError(t, err)
	assert.Equal(t, "sk_test_env", p.(*nopProvider).key)
}

func TestClientFactory_ConcurrentFirstUse(t *testing.T) {
	var mu sync.Mutex
	builds := 0
	f := NewClientFactory(func() string { return "sk_test_1" }, func(k string) Provider {
		mu.Lock()
		builds++
		mu.Unlock()
		return &nopProvider{key: k}
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.Client()
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, builds)
}
