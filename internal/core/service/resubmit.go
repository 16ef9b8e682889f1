package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/velstore/orderflow/internal/core/domain"
	"github.com/velstore/orderflow/internal/core/port"
	"go.uber.org/zap"
)

// authorizeCustomer admits the rejected-order edit window: the customer who
// owns the order, or an admin session.
func (s *Service) authorizeCustomer(order *domain.Order, actor domain.Actor) error {
	switch {
	case actor.IsAdmin():
		return nil
	case actor.IsCustomer():
		if order.UserID != actor.UserID {
			return domain.ErrForbidden
		}
		return nil
	default:
		return domain.ErrUnauthorized
	}
}

// EditOrderItems replaces the whole item list of a rejected order in one
// atomic call. Each product is resolved against the catalog first.
func (s *Service) EditOrderItems(ctx context.Context, orderID uuid.UUID, actor domain.Actor, items []port.ItemRequest) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeCustomer(order, actor); err != nil {
		return nil, err
	}

	replacement := make([]domain.OrderItem, 0, len(items))
	for _, ir := range items {
		if ir.Quantity < 1 {
			return nil, domain.ErrInvalidQuantity
		}
		product, err := s.catalog.GetProduct(ctx, ir.ProductID)
		if err != nil {
			return nil, err
		}
		replacement = append(replacement, domain.OrderItem{
			ID:        uuid.New(),
			ProductID: product.ID,
			Title:     product.Title,
			ImageURL:  product.ImageURL,
			Quantity:  ir.Quantity,
			Price:     product.Price,
		})
	}

	return s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if !o.Resubmittable() {
			return domain.ErrOrderNotResubmittable
		}
		return o.ReplaceItems(replacement)
	})
}

// EditOrderAddresses updates shipping and billing addresses of a rejected
// order. Independent from EditOrderItems: its own atomic call.
func (s *Service) EditOrderAddresses(ctx context.Context, orderID uuid.UUID, actor domain.Actor, shipping, billing domain.Address) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeCustomer(order, actor); err != nil {
		return nil, err
	}

	return s.repo.UpdateOrder(ctx, orderID, func(o *domain.Order) error {
		if !o.Resubmittable() {
			return domain.ErrOrderNotResubmittable
		}
		o.ShippingAddress = shipping
		o.BillingAddress = billing
		return nil
	})
}

// RequestReapproval turns a rejected order into a fresh approval request.
// A new order record is created with a new number and clean approval flags;
// the rejected original stays behind as a terminal historical record, with no
// link between the two. Supplying ownerEmail picks the owner-first path,
// leaving it empty goes straight to the admin stage.
func (s *Service) RequestReapproval(ctx context.Context, orderID uuid.UUID, actor domain.Actor, notes string, ownerEmail string) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if err := s.authorizeCustomer(order, actor); err != nil {
		return nil, err
	}
	if !order.Resubmittable() {
		return nil, domain.ErrOrderNotResubmittable
	}

	resubmitted := &domain.Order{
		ID:                    uuid.New(),
		Number:                newOrderNumber(),
		UserID:                order.UserID,
		Status:                domain.OrderStatusPendingApproval,
		RequiresOwnerApproval: ownerEmail != "",
		OwnerEmail:            ownerEmail,
		ShippingAddress:       order.ShippingAddress,
		BillingAddress:        order.BillingAddress,
		CreatedAt:             time.Now(),
		UpdatedAt:             time.Now(),
	}

	items := make([]domain.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		item.ID = uuid.New()
		items = append(items, item)
	}
	if err := resubmitted.ReplaceItems(items); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateOrder(ctx, resubmitted)
	if err != nil {
		s.logger.Error("Create resubmitted order", zap.Error(err),
			zap.String("rejected_order", order.Number))
		return nil, err
	}

	s.notifyApprovalRequested(ctx, created, notes)

	return created, nil
}
