package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error"`
	Details any    `json:"details,omitempty"`
}

var statusByCode = map[string]int{
	CodeValidation:          http.StatusBadRequest,
	CodeDuplicateEmail:      http.StatusBadRequest,
	CodeInvalidCredentials:  http.StatusBadRequest,
	CodeUnauthenticated:     http.StatusUnauthorized,
	CodeInvalidToken:        http.StatusUnauthorized,
	CodeProductNotFound:     http.StatusNotFound,
	CodeAppointmentNotFound: http.StatusNotFound,
	CodeInvalidTransition:   http.StatusUnprocessableEntity,
	CodePaymentGateway:      http.StatusInternalServerError,
	CodeWebhookVerification: http.StatusBadRequest,
	CodeInternal:            http.StatusInternalServerError,
}

// StatusFor maps a business code to its HTTP status; unknown codes are 500.
func StatusFor(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func Write(c *gin.Context, status int, code string, details any) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Details: details,
	})
}

// Respond translates err into the JSON error body. The error is recorded on the
// gin context so the logging middleware reports it once.
func Respond(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)

	be, ok := As(err)
	if !ok {
		Write(c, http.StatusInternalServerError, CodeInternal, nil)
		return
	}
	Write(c, StatusFor(be.Code), be.Code, be.Details)
}

func BadRequest(c *gin.Context, details any) {
	Respond(c, WithDetails(CodeValidation, details))
}

func Unauthorized(c *gin.Context, code string) {
	Respond(c, ErrBusiness(code))
}
