package ports

import (
	"context"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
)

// MutateFunc edits a locked reservation in place. Returning an error
// rolls the change back.
type MutateFunc func(res *domain.Reservation) error

type ReservationRepo interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	// Update runs fn under a row lock and persists the result.
	Update(ctx context.Context, id string, fn MutateFunc) (*domain.Reservation, error)
	// Delete removes the reservation if check passes under the row lock.
	Delete(ctx context.Context, id string, check func(res *domain.Reservation) error) (*domain.Reservation, error)
	DeleteMany(ctx context.Context, ids []string) (int, error)
}
