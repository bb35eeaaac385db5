package payment

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/webhook"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
)

const testSecret = "whsec_test"

type fakeIntents struct {
	params *stripe.PaymentIntentParams
	ctx    context.Context
	err    error
}

func (f *fakeIntents) New(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	f.ctx = ctx
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	return &stripe.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret_abc"}, nil
}

type recordingObserver struct {
	intents []string
	events  []string
}

func (r *recordingObserver) ObservePaymentIntent(outcome string) { r.intents = append(r.intents, outcome) }
func (r *recordingObserver) ObserveWebhookEvent(t string)        { r.events = append(r.events, t) }

func TestCreatePaymentIntent(t *testing.T) {
	intents := &fakeIntents{}
	obs := &recordingObserver{}
	g := NewGateway(GatewayParams{Intents: intents, Timeout: time.Second, Observer: obs})

	secret, err := g.CreatePaymentIntent(context.Background(), IntentRequest{Amount: 19.99, UserID: 7})
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret_abc", secret)

	require.NotNil(t, intents.params)
	assert.Equal(t, int64(1999), *intents.params.Amount)
	assert.Equal(t, DefaultCurrency, *intents.params.Currency)
	assert.True(t, *intents.params.AutomaticPaymentMethods.Enabled)
	assert.Equal(t, "7", intents.params.Metadata["userId"])

	_, hasDeadline := intents.ctx.Deadline()
	assert.True(t, hasDeadline)
	assert.Equal(t, []string{"created"}, obs.intents)
}

func TestCreatePaymentIntent_CurrencyIsLowercased(t *testing.T) {
	intents := &fakeIntents{}
	g := NewGateway(GatewayParams{Intents: intents})

	_, err := g.CreatePaymentIntent(context.Background(), IntentRequest{Amount: 5, Currency: "EUR"})
	require.NoError(t, err)
	assert.Equal(t, "eur", *intents.params.Currency)
}

func TestCreatePaymentIntent_ProcessorError(t *testing.T) {
	intents := &fakeIntents{err: &stripe.Error{Msg: "Your card was declined."}}
	obs := &recordingObserver{}
	g := NewGateway(GatewayParams{Intents: intents, Observer: obs})

	_, err := g.CreatePaymentIntent(context.Background(), IntentRequest{Amount: 10})
	require.Error(t, err)

	be, ok := httperr.As(err)
	require.True(t, ok)
	assert.Equal(t, httperr.CodePaymentGateway, be.Code)
	assert.Equal(t, "Your card was declined.", be.Details)
	assert.Equal(t, []string{"failed"}, obs.intents)
}

func TestCreatePaymentIntent_NotConfigured(t *testing.T) {
	g := NewGateway(GatewayParams{})

	_, err := g.CreatePaymentIntent(context.Background(), IntentRequest{Amount: 10})
	assert.True(t, httperr.IsBusiness(err, httperr.CodePaymentGateway))
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(3000), ToMinorUnits(30))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(29), ToMinorUnits(0.285))
	assert.Equal(t, int64(1), ToMinorUnits(0.005))
}

func TestNewStripeIntents_RejectsBadKeys(t *testing.T) {
	_, err := NewStripeIntents("")
	assert.ErrorIs(t, err, errAPIKeyRequired)

	_, err = NewStripeIntents("pk_test_123")
	assert.ErrorIs(t, err, errAPIKeyFormat)
}

func TestVerifyWebhook(t *testing.T) {
	g := NewGateway(GatewayParams{SigningSecret: testSecret})
	payload := signedEventPayload(t)
	header := signatureHeader(payload, testSecret, time.Now().Unix())

	event, err := g.VerifyWebhook(payload, header)
	require.NoError(t, err)
	assert.Equal(t, stripe.EventTypePaymentIntentSucceeded, event.Type)
	assert.Equal(t, "evt_test_1", event.ID)
}

func TestVerifyWebhook_AcceptsOtherAPIVersions(t *testing.T) {
	g := NewGateway(GatewayParams{SigningSecret: testSecret})
	payload := eventPayload(t, "2020-08-27")

	event, err := g.VerifyWebhook(payload, signatureHeader(payload, testSecret, time.Now().Unix()))
	require.NoError(t, err)
	assert.Equal(t, stripe.EventTypePaymentIntentSucceeded, event.Type)
}

func TestVerifyWebhook_Rejects(t *testing.T) {
	payload := signedEventPayload(t)
	now := time.Now().Unix()

	cases := map[string]struct {
		secret string
		header string
	}{
		"bad signature":   {testSecret, "t=1,v1=invalid"},
		"missing header":  {testSecret, ""},
		"wrong secret":    {testSecret, signatureHeader(payload, "whsec_other", now)},
		"secret not set":  {"", signatureHeader(payload, testSecret, now)},
		"stale timestamp": {testSecret, signatureHeader(payload, testSecret, now-3600)},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g := NewGateway(GatewayParams{SigningSecret: tc.secret})
			_, err := g.VerifyWebhook(payload, tc.header)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeWebhookVerification))
		})
	}
}

func TestHandleEvent_ObservesType(t *testing.T) {
	obs := &recordingObserver{}
	g := NewGateway(GatewayParams{Observer: obs})

	require.NoError(t, g.HandleEvent(context.Background(), stripe.Event{ID: "evt_1", Type: stripe.EventTypePaymentIntentSucceeded}))
	require.NoError(t, g.HandleEvent(context.Background(), stripe.Event{ID: "evt_2", Type: "charge.refunded"}))

	assert.Equal(t, []string{"payment_intent.succeeded", "charge.refunded"}, obs.events)
}

func signedEventPayload(t *testing.T) []byte {
	t.Helper()
	return eventPayload(t, stripe.APIVersion)
}

func eventPayload(t *testing.T, apiVersion string) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]any{
		"id":          "evt_test_1",
		"object":      "event",
		"type":        string(stripe.EventTypePaymentIntentSucceeded),
		"api_version": apiVersion,
		"data": map[string]any{
			"object": map[string]any{
				"id":     "pi_123",
				"object": "payment_intent",
				"amount": 3000,
			},
		},
	})
	require.NoError(t, err)
	return payload
}

func signatureHeader(payload []byte, secret string, ts int64) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Unix(ts, 0),
	}).Header
}
