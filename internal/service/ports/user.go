package ports

import (
	"context"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	EmailsByRoles(ctx context.Context, roles []string) ([]string, error)
	AdjustPendingRequests(ctx context.Context, email string, delta int) error
	AddNotification(ctx context.Context, n *domain.Notification) error
	ListNotifications(ctx context.Context, email string) ([]*domain.Notification, error)
}
