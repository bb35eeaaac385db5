package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
	ucAppointment "github.com/BruksfildServices01/luxe-beauties-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC  *ucAppointment.CreateAppointment
	listUC    *ucAppointment.ListAppointments
	updateUC  *ucAppointment.UpdateAppointmentStatus
	confirmUC *ucAppointment.ConfirmAppointmentPayment
	deleteUC  *ucAppointment.DeleteAppointment
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	listUC *ucAppointment.ListAppointments,
	updateUC *ucAppointment.UpdateAppointmentStatus,
	confirmUC *ucAppointment.ConfirmAppointmentPayment,
	deleteUC *ucAppointment.DeleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:  createUC,
		listUC:    listUC,
		updateUC:  updateUC,
		confirmUC: confirmUC,
		deleteUC:  deleteUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Service       string `json:"service" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	Notes         string `json:"notes"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`

	// StylistID arrives as a string or a number depending on the client.
	StylistID any `json:"stylistId"`
}

type UpdateAppointmentRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string   `json:"paymentIntentId"`
	DepositAmount   *float64 `json:"depositAmount"`
}

func stylistID(v any) (*string, bool) {
	switch s := v.(type) {
	case nil:
		return nil, true
	case string:
		return &s, true
	case float64:
		out := strconv.FormatFloat(s, 'f', -1, 64)
		return &out, true
	default:
		return nil, false
	}
}

func emptyIfNil(list []models.Appointment) []models.Appointment {
	if list == nil {
		return []models.Appointment{}
	}
	return list
}

// ======================================================
// LIST
// ======================================================

// ListAll is public and returns every booking.
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	list, err := h.listUC.All(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(list))
}

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	list, err := h.listUC.Mine(c.Request.Context(), userID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(list))
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if !bindJSON(c, &req, false) {
		return
	}

	stylist, ok := stylistID(req.StylistID)
	if !ok {
		httperr.BadRequest(c, "stylistId must be a string or a number")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		UserID:        userID,
		Service:       req.Service,
		Date:          req.Date,
		Time:          req.Time,
		Notes:         req.Notes,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		StylistID:     stylist,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// UPDATE / CONFIRM PAYMENT / DELETE
// ======================================================

// Update lets any authenticated user change status and notes. An empty body
// is a no-op that returns the current record.
func (h *AppointmentHandler) Update(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, httperr.CodeAppointmentNotFound)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if !bindJSON(c, &req, true) {
		return
	}

	in := ucAppointment.UpdateStatusInput{
		ActorID:       actorID,
		AppointmentID: id,
		Notes:         req.Notes,
	}
	if req.Status != nil {
		in.Status = *req.Status
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, ap)
}

// ConfirmPayment records the deposit. The intent id and amount are stored as
// sent, without asking the payment processor.
func (h *AppointmentHandler) ConfirmPayment(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, httperr.CodeAppointmentNotFound)
	if !ok {
		return
	}

	var req ConfirmPaymentRequest
	if !bindJSON(c, &req, true) {
		return
	}

	ap, err := h.confirmUC.Execute(c.Request.Context(), ucAppointment.ConfirmPaymentInput{
		ActorID:         actorID,
		AppointmentID:   id,
		PaymentIntentID: strings.TrimSpace(req.PaymentIntentID),
		DepositAmount:   req.DepositAmount,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	actorID, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, httperr.CodeAppointmentNotFound)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), actorID, id); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
