package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/audit"
	domain "github.com/BruksfildServices01/luxe-beauties-api/internal/domain/appointment"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

type ConfirmPaymentInput struct {
	ActorID         uint
	AppointmentID   uint
	PaymentIntentID string
	DepositAmount   *float64
}

// ConfirmAppointmentPayment trusts the caller: the payment intent and amount
// are stored as given, without asking the processor.
type ConfirmAppointmentPayment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewConfirmAppointmentPayment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmAppointmentPayment {
	return &ConfirmAppointmentPayment{
		repo:  repo,
		audit: audit,
		now:   time.Now,
	}
}

func (uc *ConfirmAppointmentPayment) Execute(
	ctx context.Context,
	in ConfirmPaymentInput,
) (*models.Appointment, error) {

	now := uc.now().UTC()
	ap, err := uc.repo.Update(ctx, in.AppointmentID, func(ap *models.Appointment) error {
		domain.ConfirmPayment(ap, domain.PaymentConfirmation{
			PaymentIntentID: in.PaymentIntentID,
			DepositAmount:   in.DepositAmount,
		}, now)
		return nil
	})
	if err != nil {
		return nil, translate(err)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_payment_confirmed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"payment_intent_id": in.PaymentIntentID,
		},
	})

	return ap, nil
}
