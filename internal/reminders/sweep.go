package reminders

import (
	"context"
	"time"

	"texportal_backend/platform/logger"
)

const defaultOverdueSweepInterval = 6 * time.Hour

// OverdueSweep periodically enqueues an overdue payment sweep so the
// worker re-checks payment ages without any operator action. One sweep is
// enqueued immediately on start, then one per interval.
type OverdueSweep struct {
	queue    SweepEnqueuer
	log      *logger.Logger
	interval time.Duration
}

func NewOverdueSweep(queue SweepEnqueuer, log *logger.Logger, interval time.Duration) *OverdueSweep {
	if interval <= 0 {
		interval = defaultOverdueSweepInterval
	}
	return &OverdueSweep{
		queue:    queue,
		log:      log,
		interval: interval,
	}
}

func (s *OverdueSweep) Run(ctx context.Context) {
	if s == nil || s.queue == nil {
		return
	}

	s.enqueue(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.enqueue(ctx)
		}
	}
}

// enqueue failures are logged and retried on the next tick.
func (s *OverdueSweep) enqueue(ctx context.Context) {
	if err := s.queue.EnqueueOverdueSweep(ctx); err != nil {
		s.log.Warn("overdue payment sweep enqueue failed", "error", err)
	}
}
