package appointment

import (
	"time"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

type StatusUpdate struct {
	Status string
	Notes  *string
}

// ApplyUpdate sets status when non-empty and replaces notes when present.
// With strict set, the status must follow the transition table.
func ApplyUpdate(ap *models.Appointment, upd StatusUpdate, strict bool) error {
	if upd.Status != "" {
		if strict {
			if err := CanTransition(Status(ap.Status), Status(upd.Status)); err != nil {
				return err
			}
		}
		ap.Status = upd.Status
	}
	if upd.Notes != nil {
		ap.Notes = *upd.Notes
	}
	return nil
}

type PaymentConfirmation struct {
	PaymentIntentID string
	DepositAmount   *float64
}

// ConfirmPayment records the deposit and moves the booking to pending, waiting
// for the salon to confirm it. Confirming twice overwrites the payment fields.
func ConfirmPayment(ap *models.Appointment, in PaymentConfirmation, now time.Time) {
	ap.DepositPaid = true
	ap.PaymentStatus = string(PaymentDepositPaid)
	ap.PaymentIntentID = in.PaymentIntentID
	ap.DepositAmount = in.DepositAmount
	ap.Status = string(StatusPending)
	ap.PaidAt = &now
}
