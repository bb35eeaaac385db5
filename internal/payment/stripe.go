package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/stripe/stripe-go/v84"
	"github.com/stripe/stripe-go/v84/paymentintent"
)

var (
	errAPIKeyRequired = errors.New("stripe api key is required")
	errAPIKeyFormat   = errors.New("stripe api key must be a secret (sk_) or restricted (rk_) key")
)

// IntentCreator is the subset of the Stripe API the gateway uses.
type IntentCreator interface {
	New(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type stripeIntents struct{}

// NewStripeIntents configures the Stripe SDK with apiKey.
func NewStripeIntents(apiKey string) (IntentCreator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errAPIKeyRequired
	}
	if !strings.HasPrefix(apiKey, "sk_") && !strings.HasPrefix(apiKey, "rk_") {
		return nil, errAPIKeyFormat
	}
	stripe.Key = apiKey
	return &stripeIntents{}, nil
}

func (s *stripeIntents) New(ctx context.Context, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	if params != nil {
		params.Context = ctx
	}
	return paymentintent.New(params)
}
