package service

import (
	"context"
	"time"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/service/ports"
	"github.com/arnavb2004/Guest-House-Portal/internal/workflow"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

const defaultNotifyTimeout = 10 * time.Second

// Dispatcher applies workflow effects after the state change has committed.
// Failures are logged and never reach the caller.
type Dispatcher struct {
	users    ports.UserRepo
	notifier ports.Notifier
	timeout  time.Duration
	logger   logger.Logger
}

func NewDispatcher(users ports.UserRepo, notifier ports.Notifier, timeout time.Duration, logger logger.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	return &Dispatcher{
		users:    users,
		notifier: notifier,
		timeout:  timeout,
		logger:   logger,
	}
}

func (d *Dispatcher) Apply(ctx context.Context, effects []workflow.Effect) {
	for _, e := range effects {
		switch e := e.(type) {
		case workflow.AdjustPending:
			if err := d.users.AdjustPendingRequests(ctx, e.Email, e.Delta); err != nil {
				d.logger.Error("failed to adjust pending requests",
					logger.String("email", e.Email),
					logger.Int("delta", e.Delta),
					logger.String("error", err.Error()),
				)
			}
		case workflow.RecordNotification:
			n := e.Notification
			n.ID = uuid.New().String()
			n.CreatedAt = time.Now().UTC()
			if err := d.users.AddNotification(ctx, &n); err != nil {
				d.logger.Error("failed to record notification",
					logger.String("email", n.UserEmail),
					logger.String("reservation_id", n.ReservationID),
					logger.String("error", err.Error()),
				)
			}
		case workflow.Notify:
			d.Notify(ctx, e.Message)
		}
	}
}

// Notify sends msg in the background with a bounded timeout.
func (d *Dispatcher) Notify(ctx context.Context, msg domain.Message) {
	if len(msg.To) == 0 {
		return
	}

	go func() {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
		defer cancel()
		d.notifier.Notify(sendCtx, msg)
	}()
}
