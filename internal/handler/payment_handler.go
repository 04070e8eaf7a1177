package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v74"
	"go.uber.org/zap"

	"github.com/sefazor/checkout-backend/internal/controller"
	"github.com/sefazor/checkout-backend/internal/models"
	"github.com/sefazor/checkout-backend/pkg/payment"
	"github.com/sefazor/checkout-backend/pkg/utils"
)

type PaymentHandler struct {
	paymentController *controller.PaymentController
	validator         *utils.Validator
	logger            *zap.Logger
}

func NewPaymentHandler(paymentController *controller.PaymentController, validator *utils.Validator, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{
		paymentController: paymentController,
		validator:         validator,
		logger:            logger,
	}
}

func (h *PaymentHandler) Test(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{It: "works!"})
}

func (h *PaymentHandler) GetStripeSession(c *fiber.Ctx) error {
	var req models.StripeSessionRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
		}
	}

	if err := h.validator.Struct(req); err != nil {
		msg := utils.FieldMessage(err)
		if msg == "" {
			msg = "Invalid request body"
		}
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse(msg))
	}

	session, err := h.paymentController.CreateStripeSession(c.UserContext(), req)
	if err != nil {
		return h.checkoutError(c, err)
	}

	return c.JSON(session)
}

// checkoutError maps configuration and provider failures to responses.
// Anything else goes to the app error handler.
func (h *PaymentHandler) checkoutError(c *fiber.Ctx, err error) error {
	var cfgErr *payment.ConfigurationError
	if errors.As(err, &cfgErr) {
		h.logger.Error("checkout misconfigured", zap.String("key", cfgErr.Key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(cfgErr.Error()))
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		h.logger.Error("stripe request failed",
			zap.String("type", string(stripeErr.Type)),
			zap.String("code", string(stripeErr.Code)),
			zap.String("request_id", stripeErr.RequestID),
			zap.Int("status", stripeErr.HTTPStatusCode),
			zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(models.ErrorResponse(stripeErr.Msg))
	}

	return err
}
