package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type reminderSender interface {
	SendPaymentReminders(ctx context.Context) (int, error)
}

// Scheduler periodically reminds guests with approved but unpaid stays.
type Scheduler struct {
	reminders reminderSender
	interval  time.Duration
	logger    logger.Logger
}

func New(
	reminders reminderSender,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		reminders: reminders,
		interval:  interval,
		logger:    logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	sent, err := s.reminders.SendPaymentReminders(ctx)
	if err != nil {
		s.logger.Error("failed to send payment reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		s.logger.Info("payment reminders sent",
			logger.Int("count", sent),
		)
	}
}
