package payment

import (
	"os"
	"sync"
)

// BuildFunc constructs a Provider for a secret key.
type BuildFunc func(secretKey string) Provider

// ClientFactory hands out a single lazily built Provider. The secret key is
// looked up on every call so a missing key keeps failing until it is set,
// while a successfully built Provider is reused for the life of the factory.
type ClientFactory struct {
	lookup func() string
	build  BuildFunc

	mu     sync.Mutex
	client Provider
}

func NewClientFactory(lookup func() string, build BuildFunc) *ClientFactory {
	if lookup == nil {
		lookup = func() string { return os.Getenv(EnvSecretKey) }
	}
	return &ClientFactory{
		lookup: lookup,
		build:  build,
	}
}

// Client returns the shared Provider, building it on first use.
func (f *ClientFactory) Client() (Provider, error) {
	key := f.lookup()
	if key == "" {
		return nil, MissingSetting(EnvSecretKey, EnvSecretKey+" missing")
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client == nil {
		f.client = f.build(key)
	}
	return f.client, nil
}
