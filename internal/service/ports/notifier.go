package ports

import (
	"context"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
)

// Notifier delivers best effort; failures are logged by the implementation.
type Notifier interface {
	Notify(ctx context.Context, msg domain.Message)
}
