package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/velstore/orderflow/internal/core/domain"
	"github.com/velstore/orderflow/internal/core/port"
	"go.uber.org/zap"
)

// Settings carries the approval-flow knobs resolved from config.
type Settings struct {
	// AdminEmail receives direct-to-admin approval requests. Never supplied
	// by the client.
	AdminEmail string
	// LinkBase is the public base URL approval links are built on.
	LinkBase string
}

type Service struct {
	repo        port.Repository
	orderTokens port.OrderTokenService
	catalog     port.CatalogClient
	payments    port.PaymentClient
	notifier    port.Notifier
	settings    Settings
	logger      *zap.Logger
}

func NewService(repo port.Repository, orderTokens port.OrderTokenService,
	catalog port.CatalogClient, payments port.PaymentClient,
	notifier port.Notifier, settings Settings, logger *zap.Logger) (*Service, error) {
	return &Service{
		repo:        repo,
		orderTokens: orderTokens,
		catalog:     catalog,
		payments:    payments,
		notifier:    notifier,
		settings:    settings,
		logger:      logger,
	}, nil
}

func (s *Service) RequestApproval(ctx context.Context, req port.ApprovalRequest) (*domain.Order, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if req.RequiresOwnerApproval && req.OwnerEmail == "" {
		return nil, domain.ErrBadRequest
	}

	userID := req.UserID
	if userID == "" {
		userID = domain.UserGuest
	}

	order := &domain.Order{
		ID:                    uuid.New(),
		Number:                newOrderNumber(),
		UserID:                userID,
		Status:                domain.OrderStatusPendingApproval,
		RequiresOwnerApproval: req.RequiresOwnerApproval,
		OwnerEmail:            req.OwnerEmail,
		ShippingAddress:       req.ShippingAddress,
		BillingAddress:        req.BillingAddress,
		CreatedAt:             time.Now(),
		UpdatedAt:             time.Now(),
	}

	for _, ir := range req.Items {
		product, err := s.catalog.GetProduct(ctx, ir.ProductID)
		if err != nil {
			return nil, err
		}
		if err := order.AddItem(*product, ir.Quantity); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.CreateOrder(ctx, order)
	if err != nil {
		s.logger.Error("Create order", zap.Error(err))
		return nil, err
	}

	s.notifyApprovalRequested(ctx, created, "")

	return created, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID uuid.UUID, actor domain.Actor) (*domain.Order, error) {
	order, err := s.repo.ReadOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch {
	case actor.IsAdmin():
		return order, nil
	case actor.IsOwner():
		if err := s.verifyOwnerToken(actor.OrderToken, orderID); err != nil {
			return nil, err
		}
		return order, nil
	case actor.IsCustomer():
		if order.UserID != actor.UserID {
			return nil, domain.ErrForbidden
		}
		return order, nil
	default:
		return nil, domain.ErrUnauthorized
	}
}

func (s *Service) DeleteOrder(ctx context.Context, orderID uuid.UUID, actor domain.Actor) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	err := s.repo.DeleteOrder(ctx, orderID)
	if err != nil && !errors.Is(err, domain.ErrDataNotFound) {
		s.logger.Error("Delete order", zap.Error(err))
	}
	return err
}

// RemindPendingApprovals re-publishes approval notifications for orders still
// waiting on a decision. Driven by the reminder job.
func (s *Service) RemindPendingApprovals(ctx context.Context) error {
	orders, err := s.repo.ListOrdersByStatus(ctx, domain.OrderStatusPendingApproval)
	if err != nil {
		return err
	}

	for _, order := range orders {
		s.notifyApprovalRequested(ctx, order, "")
	}
	return nil
}

// notifyApprovalRequested routes the approval request to the pending stage:
// the owner while their stage is open, the store admin afterwards. Delivery
// failures are logged, not returned - email is a best-effort collaborator.
func (s *Service) notifyApprovalRequested(ctx context.Context, order *domain.Order, message string) {
	recipient := s.settings.AdminEmail
	link := fmt.Sprintf("%s/admin/orders/%s", s.settings.LinkBase, order.ID)

	if order.OwnerStagePending() {
		token, err := s.orderTokens.IssueOrderToken(order.ID)
		if err != nil {
			s.logger.Error("Issue owner token", zap.Error(err), zap.String("order", order.Number))
			return
		}
		recipient = order.OwnerEmail
		link = fmt.Sprintf("%s/orders/%s?token=%s", s.settings.LinkBase, order.ID, token)
	}

	if err := s.notifier.ApprovalRequested(ctx, order, recipient, link, message); err != nil {
		s.logger.Error("Notify approval requested", zap.Error(err), zap.String("order", order.Number))
	}
}

func (s *Service) verifyOwnerToken(token string, orderID uuid.UUID) error {
	if token == "" {
		return domain.ErrMissingToken
	}
	tokenOrderID, err := s.orderTokens.VerifyOrderToken(token)
	if err != nil {
		return err
	}
	if tokenOrderID != orderID {
		return domain.ErrInvalidToken
	}
	return nil
}

func newOrderNumber() string {
	suffix := make([]byte, 3)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("VS-%s-%s", time.Now().Format("20060102"), strings.ToUpper(hex.EncodeToString(suffix)))
}
