package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/webhook"

	"github.com/BruksfildServices01/luxe-beauties-api/internal/httperr"
	"github.com/BruksfildServices01/luxe-beauties-api/internal/logger"
)

const DefaultCurrency = "usd"

// Observer receives payment outcomes; *metrics.Metrics satisfies it.
type Observer interface {
	ObservePaymentIntent(outcome string)
	ObserveWebhookEvent(eventType string)
}

type noopObserver struct{}

func (noopObserver) ObservePaymentIntent(string) {}
func (noopObserver) ObserveWebhookEvent(string)  {}

type GatewayParams struct {
	// Intents may be nil when no API key is configured; intent creation then fails.
	Intents       IntentCreator
	SigningSecret string
	Timeout       time.Duration
	Observer      Observer
	Logger        *logger.Logger
}

type Gateway struct {
	intents       IntentCreator
	signingSecret string
	timeout       time.Duration
	observer      Observer
	logg          *logger.Logger
}

func NewGateway(p GatewayParams) *Gateway {
	g := &Gateway{
		intents:       p.Intents,
		signingSecret: strings.TrimSpace(p.SigningSecret),
		timeout:       p.Timeout,
		observer:      p.Observer,
		logg:          p.Logger,
	}
	if g.observer == nil {
		g.observer = noopObserver{}
	}
	if g.logg == nil {
		g.logg = logger.Nop()
	}
	return g
}

type IntentRequest struct {
	Amount   float64
	Currency string
	UserID   uint
}

// ToMinorUnits converts an amount to cents, rounding half away from zero. The
// float is read at its shortest decimal form, so 0.285 becomes 29 cents.
func ToMinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Shift(2).Round(0).IntPart()
}

// CreatePaymentIntent asks the processor for an intent with automatic payment
// methods and returns its client secret.
func (g *Gateway) CreatePaymentIntent(ctx context.Context, in IntentRequest) (string, error) {
	if g.intents == nil {
		g.observer.ObservePaymentIntent("unavailable")
		return "", httperr.WithDetails(httperr.CodePaymentGateway, "payments not configured")
	}

	currency := strings.ToLower(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(ToMinorUnits(in.Amount)),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("userId", fmt.Sprintf("%d", in.UserID))

	intent, err := g.intents.New(ctx, params)
	if err != nil {
		g.observer.ObservePaymentIntent("failed")
		return "", httperr.BusinessError{
			Code:    httperr.CodePaymentGateway,
			Details: processorMessage(ctx, err),
		}
	}

	g.observer.ObservePaymentIntent("created")
	g.logg.Info(
		g.logg.WithFields(ctx, map[string]any{
			"payment_intent_id": intent.ID,
			"amount_minor":      ToMinorUnits(in.Amount),
			"currency":          currency,
		}),
		"payment intent created",
	)
	return intent.ClientSecret, nil
}

func processorMessage(ctx context.Context, err error) string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "payment processor timed out"
	}
	var se *stripe.Error
	if errors.As(err, &se) && se.Msg != "" {
		return se.Msg
	}
	return err.Error()
}

// VerifyWebhook checks the Stripe-Signature header against the signing secret.
func (g *Gateway) VerifyWebhook(payload []byte, signatureHeader string) (stripe.Event, error) {
	if g.signingSecret == "" {
		return stripe.Event{}, httperr.WithDetails(httperr.CodeWebhookVerification, "webhook secret not configured")
	}
	if strings.TrimSpace(signatureHeader) == "" {
		return stripe.Event{}, httperr.WithDetails(httperr.CodeWebhookVerification, "stripe signature missing")
	}

	// The endpoint may be pinned to the account's default API version; only the
	// event id and type are read, so a version mismatch is accepted.
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, g.signingSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return stripe.Event{}, httperr.BusinessError{
			Code:    httperr.CodeWebhookVerification,
			Details: err.Error(),
		}
	}
	return event, nil
}

// HandleEvent records verified events. Successful payments are not yet linked
// back to orders or appointments; deposits are confirmed through the
// confirm-payment endpoint instead.
func (g *Gateway) HandleEvent(ctx context.Context, event stripe.Event) error {
	g.observer.ObserveWebhookEvent(string(event.Type))

	ctx = g.logg.WithFields(ctx, map[string]any{
		"event_id":   event.ID,
		"event_type": string(event.Type),
	})

	switch event.Type {
	case stripe.EventTypePaymentIntentSucceeded:
		g.logg.Info(ctx, "payment intent succeeded")
	default:
		g.logg.Info(ctx, "webhook event ignored")
	}
	return nil
}
