package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/velstore/orderflow/internal/core/domain"
	"go.uber.org/zap"
)

// Pay is the single gate from an approved, unpaid order into a paid one.
// Any other state is terminal for the attempt: re-fetching cannot turn an
// already-paid or rejected order payable again, so the caller gets
// ErrOrderNotPayable rather than something retryable.
func (s *Service) Pay(ctx context.Context, orderID uuid.UUID, actor domain.Actor, method string, paymentIntentID string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeCustomer(order, actor); err != nil {
		return nil, err
	}
	if !order.Payable() {
		return nil, domain.ErrOrderNotPayable
	}

	payErr := s.payments.ProcessPayment(ctx, orderID, method, paymentIntentID)
	if payErr != nil && !errors.Is(payErr, domain.ErrPaymentDeclined) {
		// Transport failure: the gateway never answered, leave the state alone
		// so the customer can retry.
		s.logger.Error("Payment request", zap.Error(payErr), zap.String("order", order.Number))
		return nil, payErr
	}

	updated, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if payErr != nil {
			return o.MarkPaymentFailed()
		}
		return o.MarkPaid()
	})
	if err != nil {
		return nil, err
	}

	if payErr != nil {
		return updated, domain.ErrPaymentDeclined
	}
	return updated, nil
}
