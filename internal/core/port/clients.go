package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/velstore/orderflow/internal/core/domain"
)

//go:generate mockgen -source=clients.go -destination=mock/clients.go -package=mock

// CatalogClient resolves product references against the catalog collaborator.
type CatalogClient interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}

// PaymentClient is the payment-gateway collaborator. A declined payment is
// reported as domain.ErrPaymentDeclined; any other error is a transport
// failure and leaves the order state untouched.
type PaymentClient interface {
	ProcessPayment(ctx context.Context, orderID uuid.UUID, method string, paymentIntentID string) error
}

// Notifier hands approval events to the delivery collaborator. Rendering and
// sending the actual emails happens downstream.
type Notifier interface {
	ApprovalRequested(ctx context.Context, order *domain.Order, recipient string, approvalLink string, message string) error
	DecisionMade(ctx context.Context, order *domain.Order, stage string, approved bool) error
}
