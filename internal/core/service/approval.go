package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/velstore/orderflow/internal/core/domain"
	"go.uber.org/zap"
)

const (
	stageOwner = "owner"
	stageAdmin = "admin"
)

// OwnerDecide applies the owner-stage decision under the store's row lock, so
// a second decision against the same stage fails with ErrAlreadyDecided
// instead of silently winning.
func (s *Service) OwnerDecide(ctx context.Context, orderID uuid.UUID, token string, approve bool, notes string) (*domain.Order, error) {
	if err := s.verifyOwnerToken(token, orderID); err != nil {
		return nil, err
	}

	order, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if approve {
			return o.OwnerApprove(notes)
		}
		return o.OwnerReject(notes)
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, order, stageOwner, approve)

	// Approval hands the order to the admin stage.
	if approve {
		s.notifyApprovalRequested(ctx, order, "")
	}

	return order, nil
}

// AdminDecide settles the admin stage. Requires an admin session; the order
// must be PENDING_APPROVAL with the owner stage (when present) approved.
func (s *Service) AdminDecide(ctx context.Context, orderID uuid.UUID, actor domain.Actor, approve bool, notes string) (*domain.Order, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	order, err := s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if approve {
			return o.AdminApprove(notes)
		}
		return o.AdminReject(notes)
	})
	if err != nil {
		return nil, err
	}

	s.notifyDecision(ctx, order, stageAdmin, approve)

	return order, nil
}

func (s *Service) notifyDecision(ctx context.Context, order *domain.Order, stage string, approved bool) {
	if err := s.notifier.DecisionMade(ctx, order, stage, approved); err != nil {
		s.logger.Error("Notify decision", zap.Error(err),
			zap.String("order", order.Number), zap.String("stage", stage))
	}
}
