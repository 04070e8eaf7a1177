package controller

import (
	"context"

	"github.com/sefazor/checkout-backend/internal/models"
	"github.com/sefazor/checkout-backend/internal/service"
)

type PaymentController struct {
	checkoutService *service.CheckoutService
}

func NewPaymentController(checkoutService *service.CheckoutService) *PaymentController {
	return &PaymentController{
		checkoutService: checkoutService,
	}
}

// CreateStripeSession converts a major-unit request into a checkout session.
func (c *PaymentController) CreateStripeSession(ctx context.Context, req models.StripeSessionRequest) (*models.StripeSessionResponse, error) {
	session, err := c.checkoutService.StartCheckout(ctx, req.Email, models.ToMinorUnits(req.Amount))
	if err != nil {
		return nil, err
	}
	return &models.StripeSessionResponse{URL: session.URL}, nil
}
