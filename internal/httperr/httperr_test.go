package httperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func respondWith(t *testing.T, err error) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Respond(c, err)
	return rec, c
}

func TestRespond_BusinessErrors(t *testing.T) {
	cases := []struct {
		code   string
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeDuplicateEmail, http.StatusBadRequest},
		{CodeInvalidCredentials, http.StatusBadRequest},
		{CodeUnauthenticated, http.StatusUnauthorized},
		{CodeInvalidToken, http.StatusUnauthorized},
		{CodeAppointmentNotFound, http.StatusNotFound},
		{CodeProductNotFound, http.StatusNotFound},
		{CodeInvalidTransition, http.StatusUnprocessableEntity},
		{CodePaymentGateway, http.StatusInternalServerError},
		{CodeWebhookVerification, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.code, func(t *testing.T) {
			rec, c := respondWith(t, ErrBusiness(tc.code))

			assert.Equal(t, tc.status, rec.Code)
			assert.True(t, c.IsAborted())
			assert.Len(t, c.Errors, 1)

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body["error"])
			assert.NotContains(t, body, "details")
		})
	}
}

func TestRespond_DetailsAreExposed(t *testing.T) {
	rec, _ := respondWith(t, WithDetails(CodePaymentGateway, "card_declined"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"payment_gateway_error","details":"card_declined"}`, rec.Body.String())
}

func TestRespond_UntypedErrorsAreHidden(t *testing.T) {
	rec, _ := respondWith(t, errors.New("sql: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal_error"}`, rec.Body.String())
}

func TestRespond_WrappedCauseStaysPrivate(t *testing.T) {
	cause := errors.New("signature mismatch")
	err := Wrap(CodeWebhookVerification, cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsBusiness(err, CodeWebhookVerification))

	rec, _ := respondWith(t, err)
	assert.JSONEq(t, `{"error":"webhook_verification_error"}`, rec.Body.String())
}

func TestStatusFor_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("mystery"))
}
