package ports

import (
	"context"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
)

type RoomRepo interface {
	Create(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, number int) error
	List(ctx context.Context) ([]*domain.Room, error)
	// Assign replaces the reservation's room set with reqs and returns the
	// bookings the reservation holds afterwards.
	Assign(ctx context.Context, reservationID string, reqs []domain.BookingRequest) ([]domain.Booking, error)
	Unassign(ctx context.Context, reservationID string, roomNumber int) error
	EditBooking(ctx context.Context, reservationID string, roomNumber int, upd domain.BookingUpdate) error
}
