package watch

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/velstore/orderflow/internal/core/domain"
	"go.uber.org/zap"
)

func TestPoller_DeliversUpdates(t *testing.T) {
	orderID := uuid.New()
	fetch := func(_ context.Context, id uuid.UUID) (*domain.Order, error) {
		return &domain.Order{ID: id, Status: domain.OrderStatusPendingApproval}, nil
	}

	p := NewPoller(fetch, 5*time.Millisecond, zap.NewNop())

	updates := make(chan *domain.Order, 16)
	cancel := p.Start(orderID, func(order *domain.Order) {
		updates <- order
	})
	defer cancel()

	for i := 0; i < 2; i++ {
		select {
		case order := <-updates:
			assert.Equal(t, orderID, order.ID)
		case <-time.After(time.Second):
			t.Fatal("no update within a second")
		}
	}
}

func TestPoller_CancelStopsUpdates(t *testing.T) {
	var calls atomic.Int64
	fetch := func(_ context.Context, id uuid.UUID) (*domain.Order, error) {
		return &domain.Order{ID: id}, nil
	}

	p := NewPoller(fetch, 2*time.Millisecond, zap.NewNop())
	cancel := p.Start(uuid.New(), func(*domain.Order) {
		calls.Add(1)
	})

	assert.Eventually(t, func() bool { return calls.Load() > 0 }, time.Second, time.Millisecond)

	cancel()
	settled := calls.Load()

	// Cancel joins the polling goroutine, so not a single delivery may land
	// after it returns.
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, calls.Load())
}

func TestPoller_CancelWaitsForInFlightDelivery(t *testing.T) {
	applying := make(chan struct{})
	release := make(chan struct{})
	var delivered atomic.Bool

	fetch := func(_ context.Context, id uuid.UUID) (*domain.Order, error) {
		return &domain.Order{ID: id}, nil
	}

	p := NewPoller(fetch, time.Millisecond, zap.NewNop())
	cancel := p.Start(uuid.New(), func(*domain.Order) {
		select {
		case applying <- struct{}{}:
			<-release
			delivered.Store(true)
		default:
		}
	})

	// Hold a delivery open, then cancel while it is still applying.
	<-applying
	go func() {
		time.Sleep(10 * time.Millisecond)
		close(release)
	}()
	cancel()

	assert.True(t, delivered.Load(), "cancel returned while a delivery was still applying")
}

func TestPoller_FetchErrorsRetry(t *testing.T) {
	var attempts atomic.Int64
	fetch := func(_ context.Context, id uuid.UUID) (*domain.Order, error) {
		if attempts.Add(1) < 3 {
			return nil, assert.AnError
		}
		return &domain.Order{ID: id}, nil
	}

	p := NewPoller(fetch, 2*time.Millisecond, zap.NewNop())

	updates := make(chan *domain.Order, 1)
	cancel := p.Start(uuid.New(), func(order *domain.Order) {
		select {
		case updates <- order:
		default:
		}
	})
	defer cancel()

	select {
	case <-updates:
		assert.GreaterOrEqual(t, attempts.Load(), int64(3))
	case <-time.After(time.Second):
		t.Fatal("poller never recovered from fetch errors")
	}
}

func TestNewPoller_DefaultInterval(t *testing.T) {
	p := NewPoller(nil, 0, zap.NewNop())

	assert.Equal(t, DefaultInterval, p.interval)
}
