package jobs

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/velstore/orderflow/internal/core/port"
	"go.uber.org/zap"
)

// ReminderJob periodically re-publishes approval notifications for orders
// still sitting in PENDING_APPROVAL, so a lost or ignored email does not
// strand an order forever.
type ReminderJob struct {
	cron    *cron.Cron
	service port.Service
	spec    string
	logger  *zap.Logger
}

func NewReminderJob(service port.Service, spec string, logger *zap.Logger) *ReminderJob {
	return &ReminderJob{
		cron:    cron.New(),
		service: service,
		spec:    spec,
		logger:  logger,
	}
}

func (j *ReminderJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		if err := j.service.RemindPendingApprovals(context.Background()); err != nil {
			j.logger.Error("pending approval reminder run", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminder job: %w", err)
	}

	j.cron.Start()
	return nil
}

// Stop waits for a running reminder pass to finish.
func (j *ReminderJob) Stop() {
	<-j.cron.Stop().Done()
}
