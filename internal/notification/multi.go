package notification

import (
	"context"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
)

type Notifier interface {
	Notify(ctx context.Context, msg domain.Message)
}

// Multi delivers every message through each channel in turn.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, msg domain.Message) {
	for _, n := range m {
		n.Notify(ctx, msg)
	}
}
