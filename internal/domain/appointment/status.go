package appointment

import "github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusCancelled      Status = "cancelled"
	StatusCompleted      Status = "completed"
)

type PaymentStatus string

const (
	PaymentUnpaid      PaymentStatus = "unpaid"
	PaymentDepositPaid PaymentStatus = "deposit_paid"
)

var transitions = map[Status][]Status{
	StatusPendingPayment: {StatusPending, StatusCancelled},
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusCompleted, StatusCancelled},
	StatusCancelled:      nil,
	StatusCompleted:      nil,
}

// IsKnown reports whether s is one of the statuses the salon workflow defines.
// Admins may still store other values unless strict transitions are on.
func (s Status) IsKnown() bool {
	_, ok := transitions[s]
	return ok
}

// ===============================
// Validations
// ===============================

// CanTransition checks the salon workflow. Re-applying the current status is allowed.
func CanTransition(from, to Status) error {
	if !to.IsKnown() {
		return httperr.WithDetails(httperr.CodeValidation, "unknown status "+string(to))
	}
	if from == to {
		return nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return httperr.WithDetails(
		httperr.CodeInvalidTransition,
		map[string]string{"from": string(from), "to": string(to)},
	)
}

func InitialStatus() Status {
	return StatusPendingPayment
}

func InitialPaymentStatus() PaymentStatus {
	return PaymentUnpaid
}
