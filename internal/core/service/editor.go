package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/velstore/orderflow/internal/core/domain"
)

// authorizeEditor admits the two editing modes: an admin session, or the
// order's own opaque token passed explicitly per call.
func (s *Service) authorizeEditor(orderID uuid.UUID, actor domain.Actor) error {
	switch {
	case actor.IsAdmin():
		return nil
	case actor.IsOwner():
		return s.verifyOwnerToken(actor.OrderToken, orderID)
	default:
		return domain.ErrUnauthorized
	}
}

// AddItem appends a catalog product to a pending order and returns the full
// recomputed order. Partial responses are not a supported contract.
func (s *Service) AddItem(ctx context.Context, orderID uuid.UUID, actor domain.Actor, productID string, quantity int) (*domain.Order, error) {
	if err := s.authorizeEditor(orderID, actor); err != nil {
		return nil, err
	}

	product, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	return s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if !o.Editable() {
			return domain.ErrOrderNotEditable
		}
		return o.AddItem(*product, quantity)
	})
}

func (s *Service) UpdateItemQuantity(ctx context.Context, orderID uuid.UUID, actor domain.Actor, itemID uuid.UUID, quantity int) (*domain.Order, error) {
	if err := s.authorizeEditor(orderID, actor); err != nil {
		return nil, err
	}

	return s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if !o.Editable() {
			return domain.ErrOrderNotEditable
		}
		return o.SetItemQuantity(itemID, quantity)
	})
}

func (s *Service) RemoveItem(ctx context.Context, orderID uuid.UUID, actor domain.Actor, itemID uuid.UUID) (*domain.Order, error) {
	if err := s.authorizeEditor(orderID, actor); err != nil {
		return nil, err
	}

	return s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if !o.Editable() {
			return domain.ErrOrderNotEditable
		}
		return o.RemoveItem(itemID)
	})
}
