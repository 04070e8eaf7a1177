package models

import "math"

// StripeSessionRequest is the body of POST /api/get-stripe-session. Amount
// is in major currency units.
type StripeSessionRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0,minor_units"`
	Email  string  `json:"email" validate:"omitempty,email"`
}

type StripeSessionResponse struct {
	URL string `json:"url"`
}

// ToMinorUnits converts a major-unit amount to minor units, rounding to the
// nearest unit so that 19.99 becomes 1999.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
