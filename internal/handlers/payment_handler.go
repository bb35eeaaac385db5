package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/payment"
)

// Stripe caps webhook payloads well below this.
const maxWebhookBodyBytes = 64 << 10

type PaymentHandler struct {
	gateway *payment.Gateway
}

func NewPaymentHandler(gateway *payment.Gateway) *PaymentHandler {
	return &PaymentHandler{gateway: gateway}
}

type CreatePaymentIntentRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency" binding:"omitempty,currency"`
}

func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreatePaymentIntentRequest
	if !bindJSON(c, &req, false) {
		return
	}

	secret, err := h.gateway.CreatePaymentIntent(c.Request.Context(), payment.IntentRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		UserID:   userID,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// StripeWebhook verifies the signature over the raw body; it must not be
// parsed before verification.
func (h *PaymentHandler) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		httperr.Respond(c, httperr.WithDetails(httperr.CodeWebhookVerification, "unable to read payload"))
		return
	}

	event, err := h.gateway.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	if err := h.gateway.HandleEvent(c.Request.Context(), event); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
