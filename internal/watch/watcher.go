package watch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/velstore/orderflow/internal/core/domain"
	"go.uber.org/zap"
)

// DefaultInterval is how often an observed order is refreshed while an
// approver keeps it open. Frequent enough that a concurrent decision by the
// other stage shows up without a manual reload.
const DefaultInterval = 5 * time.Second

// FetchFunc reads the current order snapshot.
type FetchFunc func(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)

// Poller refreshes order snapshots on a fixed interval. Fetch errors are
// dropped: the next tick retries naturally.
type Poller struct {
	fetch    FetchFunc
	interval time.Duration
	logger   *zap.Logger
}

func NewPoller(fetch FetchFunc, interval time.Duration, logger *zap.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		fetch:    fetch,
		interval: interval,
		logger:   logger,
	}
}

// Start begins polling the order and returns a cancel function. The caller
// must invoke cancel unconditionally on teardown; cancel blocks until the
// polling goroutine has exited, so after it returns no further onUpdate call
// is made or in flight.
func (p *Poller) Start(orderID uuid.UUID, onUpdate func(*domain.Order)) (cancel func()) {
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		defer close(done)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				order, err := p.fetch(ctx, orderID)
				if err != nil {
					p.logger.Debug("poll fetch failed, retrying on next tick",
						zap.String("order", orderID.String()), zap.Error(err))
					continue
				}

				// A fetch may have been in flight when cancel was called;
				// a stale snapshot must not reach a torn-down observer.
				if ctx.Err() != nil {
					return
				}
				onUpdate(order)
			}
		}
	}()

	return func() {
		stop()
		<-done
	}
}
