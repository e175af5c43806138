package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/carparts/carparts-api/internal/metrics"
	"github.com/carparts/carparts-api/internal/core/domain"
	"github.com/carparts/carparts-api/internal/core/ports"
)

type orderService struct {
	orders   ports.OrderRepository
	payments ports.PaymentRepository
	log      zerolog.Logger
}

// NewOrderService returns an OrderService implementation.
func NewOrderService(orders ports.OrderRepository, payments ports.PaymentRepository, log zerolog.Logger) ports.OrderService {
	return &orderService{orders: orders, payments: payments, log: log}
}

func (s *orderService) ListOrders(ctx context.Context, client string) ([]domain.Document, error) {
	orders, err := s.orders.ListByClient(ctx, client)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (domain.Document, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *orderService) CreateOrder(ctx context.Context, order domain.Document) (*domain.InsertResult, error) {
	res, err := s.orders.Insert(ctx, order.Without(domain.FieldID))
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	metrics.OrdersCreatedTotal.Inc()
	s.log.Info().
		Str("order_id", res.InsertedID).
		Str("client", order.String(domain.FieldClient)).
		Msg("order created")
	return res, nil
}

// MarkPaid records payment in the ledger, then flags the order as paid.
// A malformed id is rejected before anything is written. The two writes are
// otherwise independent: when the order update fails the payment record
// stays behind and the error is returned.
func (s *orderService) MarkPaid(ctx context.Context, id string, payment domain.Document) (*domain.MarkPaidResult, error) {
	if err := domain.CheckID(id); err != nil {
		return nil, fmt.Errorf("mark paid: %w", err)
	}
	transactionID := payment[domain.FieldTransactionID]

	paymentRes, err := s.payments.Insert(ctx, payment.Without(domain.FieldID))
	if err != nil {
		return nil, fmt.Errorf("mark paid: record payment: %w", err)
	}
	metrics.PaymentsRecordedTotal.Inc()

	orderRes, err := s.orders.MarkPaid(ctx, id, transactionID)
	if err != nil {
		s.log.Error().Err(err).
			Str("order_id", id).
			Str("payment_id", paymentRes.InsertedID).
			Msg("payment recorded but order not marked paid")
		return nil, fmt.Errorf("mark paid: update order: %w", err)
	}
	if orderRes.MatchedCount > 0 {
		metrics.OrdersPaidTotal.Inc()
	} else {
		s.log.Warn().
			Str("order_id", id).
			Str("payment_id", paymentRes.InsertedID).
			Msg("payment recorded for unknown order")
	}

	return &domain.MarkPaidResult{Payment: paymentRes, Order: orderRes}, nil
}
