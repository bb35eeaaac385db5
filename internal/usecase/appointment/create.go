package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/audit"
	domain "github.com/BruksfildServices01/luxe-beauties-api/internal/domain/appointment"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint

	Service string
	Date    string
	Time    string
	Notes   string

	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	StylistID     *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books without checking the date format or overlapping bookings;
// the salon resolves double bookings when confirming.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.Service == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.WithDetails(
			httperr.CodeValidation,
			"service, date, and time are required",
		)
	}

	var stylistID *string
	if in.StylistID != nil && strings.TrimSpace(*in.StylistID) != "" {
		v := *in.StylistID
		stylistID = &v
	}

	ap := &models.Appointment{
		UserID:        in.UserID,
		Service:       in.Service,
		Date:          in.Date,
		Time:          in.Time,
		Notes:         in.Notes,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CustomerEmail: in.CustomerEmail,
		StylistID:     stylistID,
		Status:        string(domain.InitialStatus()),
		PaymentStatus: string(domain.InitialPaymentStatus()),
		DepositPaid:   false,
		CreatedAt:     uc.now().UTC(),
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"service": ap.Service,
			"date":    ap.Date,
			"time":    ap.Time,
		},
	})

	return ap, nil
}
