package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/velstore/orderflow/internal/core/domain"
)

type ItemRequest struct {
	ProductID string
	Quantity  int
}

type ApprovalRequest struct {
	UserID                string
	OwnerEmail            string
	RequiresOwnerApproval bool
	Items                 []ItemRequest
	ShippingAddress       domain.Address
	BillingAddress        domain.Address
}

type Service interface {
	RequestApproval(ctx context.Context, req ApprovalRequest) (*domain.Order, error)
	GetOrder(ctx context.Context, orderID uuid.UUID, actor domain.Actor) (*domain.Order, error)

	OwnerDecide(ctx context.Context, orderID uuid.UUID, token string, approve bool, notes string) (*domain.Order, error)
	AdminDecide(ctx context.Context, orderID uuid.UUID, actor domain.Actor, approve bool, notes string) (*domain.Order, error)

	AddItem(ctx context.Context, orderID uuid.UUID, actor domain.Actor, productID string, quantity int) (*domain.Order, error)
	UpdateItemQuantity(ctx context.Context, orderID uuid.UUID, actor domain.Actor, itemID uuid.UUID, quantity int) (*domain.Order, error)
	RemoveItem(ctx context.Context, orderID uuid.UUID, actor domain.Actor, itemID uuid.UUID) (*domain.Order, error)

	EditOrderItems(ctx context.Context, orderID uuid.UUID, actor domain.Actor, items []ItemRequest) (*domain.Order, error)
	EditOrderAddresses(ctx context.Context, orderID uuid.UUID, actor domain.Actor, shipping, billing domain.Address) (*domain.Order, error)
	RequestReapproval(ctx context.Context, orderID uuid.UUID, actor domain.Actor, notes string, ownerEmail string) (*domain.Order, error)

	Pay(ctx context.Context, orderID uuid.UUID, actor domain.Actor, method string, paymentIntentID string) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID, actor domain.Actor) error

	RemindPendingApprovals(ctx context.Context) error
}
