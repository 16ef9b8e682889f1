package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velstore/orderflow/internal/core/domain"
	"github.com/velstore/orderflow/internal/core/port"
	"github.com/velstore/orderflow/internal/core/port/mock"
	"github.com/velstore/orderflow/internal/core/service"
	"go.uber.org/zap"
)

const (
	testAdminEmail = "approvals@velstore.dev"
	testLinkBase   = "https://shop.velstore.dev"
)

var _ port.Service = (*service.Service)(nil)

type serviceMocks struct {
	repo        *mock.MockRepository
	orderTokens *mock.MockOrderTokenService
	catalog     *mock.MockCatalogClient
	payments    *mock.MockPaymentClient
	notifier    *mock.MockNotifier
}

type prepareMocks func(m *serviceMocks)

func newTestService(t *testing.T) (*service.Service, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &serviceMocks{
		repo:        mock.NewMockRepository(ctrl),
		orderTokens: mock.NewMockOrderTokenService(ctrl),
		catalog:     mock.NewMockCatalogClient(ctrl),
		payments:    mock.NewMockPaymentClient(ctrl),
		notifier:    mock.NewMockNotifier(ctrl),
	}

	svc, err := service.NewService(m.repo, m.orderTokens, m.catalog, m.payments, m.notifier,
		service.Settings{AdminEmail: testAdminEmail, LinkBase: testLinkBase}, zap.NewNop())
	require.NoError(t, err)

	return svc, m
}

func testProduct(id, price string) *domain.Product {
	return &domain.Product{
		ID:    id,
		Title: "product " + id,
		Price: decimal.MustParse(price),
	}
}

// testOrder builds a PENDING_APPROVAL order with one item (2 x 10.00).
func testOrder(t *testing.T, userID string, requiresOwner bool) *domain.Order {
	t.Helper()

	order := &domain.Order{
		ID:                    uuid.New(),
		Number:                "VS-20260901-0AB1C2",
		UserID:                userID,
		Status:                domain.OrderStatusPendingApproval,
		RequiresOwnerApproval: requiresOwner,
	}
	if requiresOwner {
		order.OwnerEmail = "owner@corp.example"
	}
	require.NoError(t, order.AddItem(*testProduct("p1", "10.00"), 2))
	return order
}

// expectUpdate wires UpdateOrder to run the supplied closure against order,
// mirroring what the row-locked transaction does in the postgres repository.
func expectUpdate(m *serviceMocks, order *domain.Order) {
	m.repo.EXPECT().UpdateOrder(gomock.Any(), order.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, updateFn port.UpdateOrderFn) (*domain.Order, error) {
			if err := updateFn(order); err != nil {
				return nil, err
			}
			return order, nil
		})
}

func TestService_RequestApproval(t *testing.T) {
	req := func(requiresOwner bool) port.ApprovalRequest {
		r := port.ApprovalRequest{
			UserID: "user-1",
			Items: []port.ItemRequest{
				{ProductID: "p1", Quantity: 2},
				{ProductID: "p2", Quantity: 1},
			},
			ShippingAddress: domain.Address{Name: "A. Customer", Line1: "1 Main St", City: "Springfield", Country: "US"},
		}
		if requiresOwner {
			r.RequiresOwnerApproval = true
			r.OwnerEmail = "owner@corp.example"
		}
		return r
	}

	t.Run("owner-first order notifies the owner with a tokenized link", func(t *testing.T) {
		svc, m := newTestService(t)

		m.catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(testProduct("p1", "10.00"), nil)
		m.catalog.EXPECT().GetProduct(gomock.Any(), "p2").Return(testProduct("p2", "5.50"), nil)
		m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				return order, nil
			})

		var link string
		m.orderTokens.EXPECT().IssueOrderToken(gomock.Any()).Return("owner-token", nil)
		m.notifier.EXPECT().ApprovalRequested(gomock.Any(), gomock.Any(), "owner@corp.example", gomock.Any(), "").
			DoAndReturn(func(_ context.Context, _ *domain.Order, _, approvalLink, _ string) error {
				link = approvalLink
				return nil
			})

		order, err := svc.RequestApproval(context.Background(), req(true))

		require.NoError(t, err)
		assert.Equal(t, domain.OrderStatusPendingApproval, order.Status)
		assert.True(t, order.RequiresOwnerApproval)
		assert.True(t, order.OwnerStagePending())
		assert.True(t, strings.HasPrefix(order.Number, "VS-"))
		assert.Len(t, order.Items, 2)
		assert.Zero(t, decimal.MustParse("25.50").Cmp(order.Subtotal))
		assert.Contains(t, link, order.ID.String())
		assert.Contains(t, link, "token=owner-token")
	})

	t.Run("direct-to-admin order notifies the store admin", func(t *testing.T) {
		svc, m := newTestService(t)

		m.catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(testProduct("p1", "10.00"), nil)
		m.catalog.EXPECT().GetProduct(gomock.Any(), "p2").Return(testProduct("p2", "5.50"), nil)
		m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				return order, nil
			})
		m.notifier.EXPECT().ApprovalRequested(gomock.Any(), gomock.Any(), testAdminEmail, gomock.Any(), "").Return(nil)

		order, err := svc.RequestApproval(context.Background(), req(false))

		require.NoError(t, err)
		assert.False(t, order.RequiresOwnerApproval)
		assert.False(t, order.OwnerStagePending())
	})

	t.Run("anonymous checkout defaults to the guest user", func(t *testing.T) {
		svc, m := newTestService(t)

		r := req(false)
		r.UserID = ""
		m.catalog.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(testProduct("p1", "10.00"), nil).Times(2)
		m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				return order, nil
			})
		m.notifier.EXPECT().ApprovalRequested(gomock.Any(), gomock.Any(), testAdminEmail, gomock.Any(), "").Return(nil)

		order, err := svc.RequestApproval(context.Background(), r)

		require.NoError(t, err)
		assert.Equal(t, domain.UserGuest, order.UserID)
	})

	t.Run("empty item list rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.RequestApproval(context.Background(), port.ApprovalRequest{})

		assert.ErrorIs(t, err, domain.ErrEmptyOrder)
	})

	t.Run("owner approval without owner email rejected", func(t *testing.T) {
		svc, _ := newTestService(t)

		r := req(true)
		r.OwnerEmail = ""

		_, err := svc.RequestApproval(context.Background(), r)

		assert.ErrorIs(t, err, domain.ErrBadRequest)
	})

	t.Run("unknown product aborts the request", func(t *testing.T) {
		svc, m := newTestService(t)

		m.catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(nil, domain.ErrProductNotFound)

		_, err := svc.RequestApproval(context.Background(), req(false))

		assert.ErrorIs(t, err, domain.ErrProductNotFound)
	})

	t.Run("notification failure does not fail the request", func(t *testing.T) {
		svc, m := newTestService(t)

		m.catalog.EXPECT().GetProduct(gomock.Any(), gomock.Any()).Return(testProduct("p1", "10.00"), nil).Times(2)
		m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, order *domain.Order) (*domain.Order, error) {
				return order, nil
			})
		m.notifier.EXPECT().ApprovalRequested(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(assert.AnError)

		_, err := svc.RequestApproval(context.Background(), req(false))

		assert.NoError(t, err)
	})
}

func TestService_GetOrder(t *testing.T) {
	order := testOrder(t, "user-1", true)

	tests := []struct {
		name     string
		actor    domain.Actor
		mock     prepareMocks
		expError error
	}{
		{
			name:  "admin reads any order",
			actor: domain.SessionActor("admin-1", domain.RoleAdmin),
			mock: func(m *serviceMocks) {
				m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
			},
		},
		{
			name:  "owner token for this order",
			actor: domain.OwnerActor("good-token"),
			mock: func(m *serviceMocks) {
				m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
				m.orderTokens.EXPECT().VerifyOrderToken("good-token").Return(order.ID, nil)
			},
		},
		{
			name:  "owner token for another order",
			actor: domain.OwnerActor("foreign-token"),
			mock: func(m *serviceMocks) {
				m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
				m.orderTokens.EXPECT().VerifyOrderToken("foreign-token").Return(uuid.New(), nil)
			},
			expError: domain.ErrInvalidToken,
		},
		{
			name:  "customer reads own order",
			actor: domain.SessionActor("user-1", domain.RoleCustomer),
			mock: func(m *serviceMocks) {
				m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
			},
		},
		{
			name:  "customer blocked from another customer's order",
			actor: domain.SessionActor("user-2", domain.RoleCustomer),
			mock: func(m *serviceMocks) {
				m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
			},
			expError: domain.ErrForbidden,
		},
		{
			name:  "anonymous blocked",
			actor: domain.AnonymousActor(),
			mock: func(m *serviceMocks) {
				m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
			},
			expError: domain.ErrUnauthorized,
		},
		{
			name:  "missing order",
			actor: domain.SessionActor("admin-1", domain.RoleAdmin),
			mock: func(m *serviceMocks) {
				m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, m := newTestService(t)
			test.mock(m)

			got, err := svc.GetOrder(context.Background(), order.ID, test.actor)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, order, got)
		})
	}
}

func TestService_DeleteOrder(t *testing.T) {
	orderID := uuid.New()

	t.Run("admin deletes", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().DeleteOrder(gomock.Any(), orderID).Return(nil)

		assert.NoError(t, svc.DeleteOrder(context.Background(), orderID, domain.SessionActor("admin-1", domain.RoleAdmin)))
	})

	t.Run("customer cannot delete", func(t *testing.T) {
		svc, _ := newTestService(t)

		err := svc.DeleteOrder(context.Background(), orderID, domain.SessionActor("user-1", domain.RoleCustomer))

		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing order reported", func(t *testing.T) {
		svc, m := newTestService(t)
		m.repo.EXPECT().DeleteOrder(gomock.Any(), orderID).Return(domain.ErrDataNotFound)

		err := svc.DeleteOrder(context.Background(), orderID, domain.SessionActor("admin-1", domain.RoleAdmin))

		assert.ErrorIs(t, err, domain.ErrDataNotFound)
	})
}

func TestService_RemindPendingApprovals(t *testing.T) {
	svc, m := newTestService(t)

	ownerPending := testOrder(t, "user-1", true)
	adminPending := testOrder(t, "user-2", false)

	m.repo.EXPECT().ListOrdersByStatus(gomock.Any(), domain.OrderStatusPendingApproval).
		Return([]*domain.Order{ownerPending, adminPending}, nil)
	m.orderTokens.EXPECT().IssueOrderToken(ownerPending.ID).Return("reissued-token", nil)
	m.notifier.EXPECT().ApprovalRequested(gomock.Any(), ownerPending, ownerPending.OwnerEmail, gomock.Any(), "").Return(nil)
	m.notifier.EXPECT().ApprovalRequested(gomock.Any(), adminPending, testAdminEmail, gomock.Any(), "").Return(nil)

	assert.NoError(t, svc.RemindPendingApprovals(context.Background()))
}
