package service

import (
	"context"
	"fmt"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/service/ports"
	"github.com/arnavb2004/Guest-House-Portal/internal/workflow"
	"github.com/wb-go/wbf/logger"
)

// AllocationService places reservations in rooms. Bookings live in one
// place; a room's and a reservation's view of them are both read from it.
type AllocationService struct {
	rooms        ports.RoomRepo
	reservations ports.ReservationRepo
	dispatch     *Dispatcher
	logger       logger.Logger
}

func NewAllocationService(
	rooms ports.RoomRepo,
	reservations ports.ReservationRepo,
	dispatch *Dispatcher,
	logger logger.Logger,
) *AllocationService {
	return &AllocationService{
		rooms:        rooms,
		reservations: reservations,
		dispatch:     dispatch,
		logger:       logger,
	}
}

// AssignRooms sets the reservation's rooms to exactly reqs. The assignment
// commits even when fewer rooms than requested were given; in that case the
// updated reservation is returned together with ErrInsufficientRooms.
func (s *AllocationService) AssignRooms(ctx context.Context, p domain.Principal, id string, reqs []domain.BookingRequest) (*domain.Reservation, error) {
	if !p.Is(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	seen := make(map[int]struct{}, len(reqs))
	for _, req := range reqs {
		if err := validateStruct(req); err != nil {
			return nil, err
		}
		if _, dup := seen[req.RoomNumber]; dup {
			return nil, fmt.Errorf("%w: room %d listed twice", domain.ErrValidation, req.RoomNumber)
		}
		seen[req.RoomNumber] = struct{}{}
	}

	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := s.rooms.Assign(ctx, id, reqs)
	if err != nil {
		return nil, fmt.Errorf("assign rooms: %w", err)
	}
	res.Bookings = bookings
	res.StepsCompleted = domain.StepRoomsAssigned

	s.logger.Info("rooms assigned",
		logger.String("reservation_id", id),
		logger.Int("rooms", len(bookings)),
		logger.Int("requested", res.NumberOfRooms),
	)

	s.dispatch.Apply(ctx, []workflow.Effect{
		workflow.RecordNotification{Notification: domain.Notification{
			UserEmail:     res.GuestEmail,
			Message:       fmt.Sprintf("Room Assignment Updated - %d room(s) allotted", len(bookings)),
			Sender:        p.Role,
			ReservationID: id,
		}},
		workflow.Notify{Message: roomsAssigned(res)},
	})

	if len(bookings) < res.NumberOfRooms {
		return res, fmt.Errorf("%w: %d of %d rooms allotted",
			domain.ErrInsufficientRooms, len(bookings), res.NumberOfRooms)
	}

	return res, nil
}

func (s *AllocationService) UnassignRoom(ctx context.Context, p domain.Principal, id string, roomNumber int) (*domain.Reservation, error) {
	if !p.Is(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	if err := s.rooms.Unassign(ctx, id, roomNumber); err != nil {
		return nil, fmt.Errorf("unassign room: %w", err)
	}

	s.logger.Info("room unassigned",
		logger.String("reservation_id", id),
		logger.Int("room_number", roomNumber),
	)

	return s.reservations.GetByID(ctx, id)
}

// EditBooking changes the guest name or dates of one booking. The booking is
// found by reservation and room together, so there is only one row to move.
func (s *AllocationService) EditBooking(ctx context.Context, p domain.Principal, id string, roomNumber int, upd domain.BookingUpdate) (*domain.Reservation, error) {
	if !p.Is(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	if err := validateStruct(upd); err != nil {
		return nil, err
	}

	if err := s.rooms.EditBooking(ctx, id, roomNumber, upd); err != nil {
		return nil, fmt.Errorf("edit booking: %w", err)
	}

	return s.reservations.GetByID(ctx, id)
}

func (s *AllocationService) AddRoom(ctx context.Context, p domain.Principal, number int, kind domain.RoomKind) (*domain.Room, error) {
	if !p.Is(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	if number <= 0 {
		return nil, fmt.Errorf("%w: room number must be positive", domain.ErrValidation)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown room type %q", domain.ErrValidation, kind)
	}

	room := &domain.Room{Number: number, Type: kind, Bookings: []domain.Booking{}}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.logger.Info("room added", logger.Int("room_number", number))
	return room, nil
}

// DeleteRoom removes a room that holds no bookings.
func (s *AllocationService) DeleteRoom(ctx context.Context, p domain.Principal, number int) error {
	if !p.Is(domain.RoleAdmin) {
		return domain.ErrForbidden
	}

	if err := s.rooms.Delete(ctx, number); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	s.logger.Info("room deleted", logger.Int("room_number", number))
	return nil
}

func (s *AllocationService) ListRooms(ctx context.Context, p domain.Principal) ([]*domain.Room, error) {
	role := p.ParsedRole()
	if role.Kind != domain.RoleAdmin && !role.IsAuthority() {
		return nil, domain.ErrForbidden
	}
	return s.rooms.List(ctx)
}
