package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/velstore/orderflow/internal/core/domain"
)

func TestService_OwnerDecide(t *testing.T) {
	tests := []struct {
		name     string
		order    func(t *testing.T) *domain.Order
		token    string
		approve  bool
		notes    string
		mock     prepareMocks
		check    func(t *testing.T, order *domain.Order)
		expError error
	}{
		{
			name:    "approve hands the order to the admin stage",
			order:   func(t *testing.T) *domain.Order { return testOrder(t, "user-1", true) },
			token:   "good-token",
			approve: true,
			notes:   "fine by me",
			mock: func(m *serviceMocks) {
				m.notifier.EXPECT().DecisionMade(gomock.Any(), gomock.Any(), "owner", true).Return(nil)
				// Once the owner stage closes the admin gets the request.
				m.notifier.EXPECT().ApprovalRequested(gomock.Any(), gomock.Any(), testAdminEmail, gomock.Any(), "").Return(nil)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.True(t, order.OwnerApproved)
				assert.Equal(t, "fine by me", order.OwnerApprovalNotes)
				assert.Equal(t, domain.OrderStatusPendingApproval, order.Status)
			},
		},
		{
			name:    "reject closes the order",
			order:   func(t *testing.T) *domain.Order { return testOrder(t, "user-1", true) },
			token:   "good-token",
			approve: false,
			notes:   "wrong configuration",
			mock: func(m *serviceMocks) {
				m.notifier.EXPECT().DecisionMade(gomock.Any(), gomock.Any(), "owner", false).Return(nil)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.True(t, order.OwnerRejected)
				assert.Equal(t, "wrong configuration", order.OwnerRejectionNotes)
				assert.Equal(t, domain.OrderStatusRejected, order.Status)
			},
		},
		{
			name:     "reject without a reason",
			order:    func(t *testing.T) *domain.Order { return testOrder(t, "user-1", true) },
			token:    "good-token",
			approve:  false,
			expError: domain.ErrMissingRejectionReason,
		},
		{
			name: "second decision loses",
			order: func(t *testing.T) *domain.Order {
				order := testOrder(t, "user-1", true)
				require.NoError(t, order.OwnerApprove("first"))
				return order
			},
			token:    "good-token",
			approve:  false,
			notes:    "too late",
			expError: domain.ErrAlreadyDecided,
		},
		{
			name:     "order without an owner stage",
			order:    func(t *testing.T) *domain.Order { return testOrder(t, "user-1", false) },
			token:    "good-token",
			approve:  true,
			expError: domain.ErrForbidden,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, m := newTestService(t)
			order := test.order(t)

			m.orderTokens.EXPECT().VerifyOrderToken(test.token).Return(order.ID, nil)
			expectUpdate(m, order)
			if test.mock != nil {
				test.mock(m)
			}

			got, err := svc.OwnerDecide(context.Background(), order.ID, test.token, test.approve, test.notes)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			require.NoError(t, err)
			test.check(t, got)
		})
	}
}

func TestService_OwnerDecide_TokenGuards(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.OwnerDecide(context.Background(), uuid.New(), "", true, "")

		assert.ErrorIs(t, err, domain.ErrMissingToken)
	})

	t.Run("invalid token", func(t *testing.T) {
		svc, m := newTestService(t)
		m.orderTokens.EXPECT().VerifyOrderToken("garbage").Return(uuid.Nil, domain.ErrInvalidToken)

		_, err := svc.OwnerDecide(context.Background(), uuid.New(), "garbage", true, "")

		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})

	t.Run("token issued for another order", func(t *testing.T) {
		svc, m := newTestService(t)
		m.orderTokens.EXPECT().VerifyOrderToken("other-token").Return(uuid.New(), nil)

		_, err := svc.OwnerDecide(context.Background(), uuid.New(), "other-token", true, "")

		assert.ErrorIs(t, err, domain.ErrInvalidToken)
	})
}

func TestService_AdminDecide(t *testing.T) {
	admin := domain.SessionActor("admin-1", domain.RoleAdmin)

	tests := []struct {
		name     string
		order    func(t *testing.T) *domain.Order
		actor    domain.Actor
		approve  bool
		notes    string
		mock     prepareMocks
		check    func(t *testing.T, order *domain.Order)
		expError error
	}{
		{
			name:    "approve opens the payment window",
			order:   func(t *testing.T) *domain.Order { return testOrder(t, "user-1", false) },
			actor:   admin,
			approve: true,
			mock: func(m *serviceMocks) {
				m.notifier.EXPECT().DecisionMade(gomock.Any(), gomock.Any(), "admin", true).Return(nil)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, domain.OrderStatusApproved, order.Status)
				assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
			},
		},
		{
			name:    "approve after owner approval",
			order: func(t *testing.T) *domain.Order {
				order := testOrder(t, "user-1", true)
				require.NoError(t, order.OwnerApprove(""))
				return order
			},
			actor:   admin,
			approve: true,
			mock: func(m *serviceMocks) {
				m.notifier.EXPECT().DecisionMade(gomock.Any(), gomock.Any(), "admin", true).Return(nil)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, domain.OrderStatusApproved, order.Status)
			},
		},
		{
			name:    "reject records the reason",
			order:   func(t *testing.T) *domain.Order { return testOrder(t, "user-1", false) },
			actor:   admin,
			approve: false,
			notes:   "price mismatch",
			mock: func(m *serviceMocks) {
				m.notifier.EXPECT().DecisionMade(gomock.Any(), gomock.Any(), "admin", false).Return(nil)
			},
			check: func(t *testing.T, order *domain.Order) {
				assert.Equal(t, domain.OrderStatusRejected, order.Status)
				assert.Equal(t, "price mismatch", order.ApprovalNotes)
			},
		},
		{
			name:     "blocked while the owner stage is open",
			order:    func(t *testing.T) *domain.Order { return testOrder(t, "user-1", true) },
			actor:    admin,
			approve:  true,
			expError: domain.ErrForbidden,
		},
		{
			name: "blocked after an owner rejection",
			order: func(t *testing.T) *domain.Order {
				order := testOrder(t, "user-1", true)
				require.NoError(t, order.OwnerReject("no"))
				return order
			},
			actor:    admin,
			approve:  true,
			expError: domain.ErrAlreadyDecided,
		},
		{
			name: "second decision loses",
			order: func(t *testing.T) *domain.Order {
				order := testOrder(t, "user-1", false)
				require.NoError(t, order.AdminApprove(""))
				return order
			},
			actor:    admin,
			approve:  true,
			expError: domain.ErrAlreadyDecided,
		},
		{
			name:     "reject without a reason",
			order:    func(t *testing.T) *domain.Order { return testOrder(t, "user-1", false) },
			actor:    admin,
			approve:  false,
			expError: domain.ErrMissingRejectionReason,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			svc, m := newTestService(t)
			order := test.order(t)

			expectUpdate(m, order)
			if test.mock != nil {
				test.mock(m)
			}

			got, err := svc.AdminDecide(context.Background(), order.ID, test.actor, test.approve, test.notes)

			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				return
			}
			require.NoError(t, err)
			test.check(t, got)
		})
	}
}

func TestService_AdminDecide_RequiresAdmin(t *testing.T) {
	for _, actor := range []domain.Actor{
		domain.SessionActor("user-1", domain.RoleCustomer),
		domain.OwnerActor("some-token"),
		domain.AnonymousActor(),
	} {
		svc, _ := newTestService(t)

		_, err := svc.AdminDecide(context.Background(), uuid.New(), actor, true, "")

		assert.ErrorIs(t, err, domain.ErrForbidden)
	}
}

// Owner-first path end to end: owner approves, admin approves, payment goes
// through.
func TestService_OwnerFirstFlow(t *testing.T) {
	svc, m := newTestService(t)
	order := testOrder(t, "user-1", true)
	customer := domain.SessionActor("user-1", domain.RoleCustomer)

	m.orderTokens.EXPECT().VerifyOrderToken("owner-token").Return(order.ID, nil)
	m.notifier.EXPECT().DecisionMade(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.notifier.EXPECT().ApprovalRequested(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	expectUpdate(m, order)
	_, err := svc.OwnerDecide(context.Background(), order.ID, "owner-token", true, "")
	require.NoError(t, err)

	expectUpdate(m, order)
	approved, err := svc.AdminDecide(context.Background(), order.ID, domain.SessionActor("admin-1", domain.RoleAdmin), true, "")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusApproved, approved.Status)

	m.repo.EXPECT().ReadOrder(gomock.Any(), order.ID).Return(order, nil)
	m.payments.EXPECT().ProcessPayment(gomock.Any(), order.ID, "card", "pi_123").Return(nil)
	expectUpdate(m, order)

	paid, err := svc.Pay(context.Background(), order.ID, customer, "card", "pi_123")
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, paid.PaymentStatus)
}

// Owner rejection is terminal: the admin decision afterwards must lose.
func TestService_OwnerRejectionFlow(t *testing.T) {
	svc, m := newTestService(t)
	order := testOrder(t, "user-1", true)

	m.orderTokens.EXPECT().VerifyOrderToken("owner-token").Return(order.ID, nil)
	m.notifier.EXPECT().DecisionMade(gomock.Any(), gomock.Any(), "owner", false).Return(nil)

	expectUpdate(m, order)
	rejected, err := svc.OwnerDecide(context.Background(), order.ID, "owner-token", false, "not needed")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusRejected, rejected.Status)

	expectUpdate(m, order)
	_, err = svc.AdminDecide(context.Background(), order.ID, domain.SessionActor("admin-1", domain.RoleAdmin), true, "")
	assert.ErrorIs(t, err, domain.ErrAlreadyDecided)
}
