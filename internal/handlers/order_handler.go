package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/audit"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

type OrderStore interface {
	Append(ctx context.Context, o *models.Order) error
	List(ctx context.Context) ([]models.Order, error)
}

type OrderHandler struct {
	orders OrderStore
	audit  *audit.Dispatcher
}

func NewOrderHandler(orders OrderStore, audit *audit.Dispatcher) *OrderHandler {
	return &OrderHandler{orders: orders, audit: audit}
}

// The total is stored as sent; it is not checked against the items or the
// payment intent amount.
type CreateOrderRequest struct {
	Items           []json.RawMessage `json:"items" binding:"required"`
	Total           *float64          `json:"total" binding:"required"`
	Customer        map[string]any    `json:"customer" binding:"required"`
	PaymentIntentID string            `json:"paymentIntentId" binding:"required"`
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if !bindJSON(c, &req, false) {
		return
	}
	if strings.TrimSpace(req.PaymentIntentID) == "" {
		httperr.BadRequest(c, "paymentIntentId is required")
		return
	}

	order := models.Order{
		Items:           req.Items,
		Total:           *req.Total,
		Customer:        req.Customer,
		PaymentIntentID: req.PaymentIntentID,
		UserID:          userID,
	}
	if err := h.orders.Append(c.Request.Context(), &order); err != nil {
		httperr.Respond(c, err)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "order_placed",
		Entity:   "order",
		EntityID: &order.ID,
		Metadata: map[string]any{
			"payment_intent_id": order.PaymentIntentID,
			"total":             order.Total,
		},
	})

	c.JSON(http.StatusCreated, gin.H{"success": true})
}
