package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/velstore/orderflow/internal/core/domain"
)

// UpdateOrderFn is applied to the current row state inside the store's
// transaction, so stage guards cannot be raced by a concurrent writer.
type UpdateOrderFn func(*domain.Order) error

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type Repository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ReadOrder(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
	UpdateOrder(ctx context.Context, orderID uuid.UUID, updateFn UpdateOrderFn) (*domain.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
	ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error)
}
