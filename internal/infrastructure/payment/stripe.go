package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"

	"github.com/carparts/carparts-api/internal/core/domain"
)

// StripeProvider implements ports.PaymentIntentProvider with Stripe
// PaymentIntents restricted to card payments.
type StripeProvider struct {
	api *client.API
}

// NewStripeProvider builds a provider authenticated with secretKey. backends
// may be nil to use the default Stripe endpoints.
func NewStripeProvider(secretKey string, backends *stripe.Backends) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, backends)
	return &StripeProvider{api: api}
}

// CreateIntent creates a PaymentIntent and returns its client secret.
// Requests Stripe rejects as invalid (such as a non-positive amount) fail
// with domain.ErrInvalidPayload; every other failure is
// domain.ErrPaymentProvider.
func (p *StripeProvider) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		var serr *stripe.Error
		if errors.As(err, &serr) && serr.Type == stripe.ErrorTypeInvalidRequest {
			return "", fmt.Errorf("%w: create payment intent: %v", domain.ErrInvalidPayload, err)
		}
		return "", fmt.Errorf("%w: create payment intent: %v", domain.ErrPaymentProvider, err)
	}
	return intent.ClientSecret, nil
}
