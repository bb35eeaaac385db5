package models

import "time"

type Appointment struct {
	ID     uint `json:"id"`
	UserID uint `json:"userId"`

	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Notes   string `json:"notes"`

	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	CustomerEmail string  `json:"customerEmail"`
	StylistID     *string `json:"stylistId"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	DepositPaid   bool   `json:"depositPaid"`

	PaymentIntentID string   `json:"paymentIntentId,omitempty"`
	DepositAmount   *float64 `json:"depositAmount,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	PaidAt    *time.Time `json:"paidAt,omitempty"`
}

// Clone returns a copy that shares no pointers with ap.
func (ap Appointment) Clone() Appointment {
	out := ap
	if ap.StylistID != nil {
		v := *ap.StylistID
		out.StylistID = &v
	}
	if ap.DepositAmount != nil {
		v := *ap.DepositAmount
		out.DepositAmount = &v
	}
	if ap.PaidAt != nil {
		v := *ap.PaidAt
		out.PaidAt = &v
	}
	return out
}
