package httperr

import (
	"errors"
	"fmt"
)

const (
	CodeValidation          = "validation_error"
	CodeDuplicateEmail      = "duplicate_email"
	CodeInvalidCredentials  = "invalid_credentials"
	CodeUnauthenticated     = "unauthenticated"
	CodeInvalidToken        = "invalid_token"
	CodeProductNotFound     = "product_not_found"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeInvalidTransition   = "invalid_status_transition"
	CodePaymentGateway      = "payment_gateway_error"
	CodeWebhookVerification = "webhook_verification_error"
	CodeInternal            = "internal_error"
)

type BusinessError struct {
	Code    string
	Details any
	cause   error
}

func (e BusinessError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.cause)
	}
	return e.Code
}

func (e BusinessError) Unwrap() error {
	return e.cause
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// WithDetails builds a business error whose details are exposed to the client.
func WithDetails(code string, details any) error {
	return BusinessError{Code: code, Details: details}
}

// Wrap keeps err as the cause; its message reaches the client only through Details.
func Wrap(code string, err error) error {
	return BusinessError{Code: code, cause: err}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func As(err error) (BusinessError, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return BusinessError{}, false
}
