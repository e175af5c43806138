package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/carparts/carparts-api/internal/metrics"
	"github.com/carparts/carparts-api/internal/core/domain"
	"github.com/carparts/carparts-api/internal/core/ports"
)

const defaultCurrency = "usd"

type paymentService struct {
	provider ports.PaymentIntentProvider
	currency string
	log      zerolog.Logger
}

// NewPaymentService returns a PaymentService charging in currency
// ("usd" when empty).
func NewPaymentService(provider ports.PaymentIntentProvider, currency string, log zerolog.Logger) ports.PaymentService {
	currency = strings.ToLower(strings.TrimSpace(currency))
	if currency == "" {
		currency = defaultCurrency
	}
	return &paymentService{provider: provider, currency: currency, log: log}
}

// CreatePaymentIntent converts price to minor units and asks the provider for
// a new intent. Every call creates a distinct intent.
func (s *paymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	amount := toMinorUnits(price)

	secret, err := s.provider.CreateIntent(ctx, amount, s.currency)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPayload) {
			metrics.PaymentIntentsTotal.WithLabelValues("rejected").Inc()
			s.log.Warn().Err(err).Int64("amount", amount).Str("currency", s.currency).Msg("payment intent rejected")
			return "", err
		}
		metrics.PaymentIntentsTotal.WithLabelValues("error").Inc()
		s.log.Error().Err(err).Int64("amount", amount).Str("currency", s.currency).Msg("payment intent failed")
		if errors.Is(err, domain.ErrPaymentProvider) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", domain.ErrPaymentProvider, err)
	}

	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	s.log.Debug().Int64("amount", amount).Str("currency", s.currency).Msg("payment intent created")
	return secret, nil
}

// toMinorUnits returns price × 100 rounded to the nearest integer, so that
// 19.99 becomes 1999 rather than 1998.
func toMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}
