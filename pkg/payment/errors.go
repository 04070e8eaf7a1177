package payment

import "fmt"

const (
	// EnvSecretKey holds the Stripe secret API key.
	EnvSecretKey = "STRIPE_SECRET_KEY"
)

// ConfigurationError is returned when a required setting is absent. It is
// detected locally, before any request goes out to Stripe.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s", e.Reason)
}

// MissingSetting builds a ConfigurationError for an unset key.
func MissingSetting(key, reason string) *ConfigurationError {
	return &ConfigurationError{Key: key, Reason: reason}
}
