package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type allocationFixture struct {
	rooms    *mocks.MockRoomRepo
	repo     *mocks.MockReservationRepo
	users    *mocks.MockUserRepo
	notifier *mocks.MockNotifier
	svc      *AllocationService
}

func newAllocationFixture(t *testing.T) *allocationFixture {
	f := &allocationFixture{
		rooms:    mocks.NewMockRoomRepo(t),
		repo:     mocks.NewMockReservationRepo(t),
		users:    mocks.NewMockUserRepo(t),
		notifier: mocks.NewMockNotifier(t),
	}
	log := newTestLogger(t)
	f.svc = NewAllocationService(f.rooms, f.repo, NewDispatcher(f.users, f.notifier, time.Second, log), log)
	return f
}

func bookingFor(req domain.BookingRequest) domain.Booking {
	return domain.Booking{
		ID:            fmt.Sprintf("b%d", req.RoomNumber),
		ReservationID: "r1",
		RoomNumber:    req.RoomNumber,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		User:          req.User,
	}
}

func TestAllocationService_AssignRooms_Success(t *testing.T) {
	f := newAllocationFixture(t)
	stored := storedReservation("REGISTRAR")
	stored.NumberOfRooms = 2

	reqs := []domain.BookingRequest{
		{RoomNumber: 101, StartDate: day(1, 13), EndDate: day(3, 11), User: "Speaker"},
		{RoomNumber: 102, StartDate: day(1, 13), EndDate: day(3, 11), User: "Companion"},
	}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(stored, nil)
	f.rooms.EXPECT().Assign(mock.Anything, "r1", reqs).
		Return([]domain.Booking{bookingFor(reqs[0]), bookingFor(reqs[1])}, nil)
	f.users.EXPECT().AddNotification(mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.UserEmail == guest.Email && n.Sender == "ADMIN"
	})).Return(nil)
	f.notifier.EXPECT().Notify(mock.Anything, mock.MatchedBy(func(msg domain.Message) bool {
		return msg.Subject == "Room Assignment Updated" && msg.To[0] == guest.Email
	})).Return()

	res, err := f.svc.AssignRooms(context.Background(), admin, "r1", reqs)

	require.NoError(t, err)
	require.Len(t, res.Bookings, 2)
	assert.Equal(t, 101, res.Bookings[0].RoomNumber)
	assert.Equal(t, domain.StepRoomsAssigned, res.StepsCompleted)

	time.Sleep(50 * time.Millisecond)
}

func TestAllocationService_AssignRooms_Insufficient(t *testing.T) {
	f := newAllocationFixture(t)
	stored := storedReservation()
	stored.NumberOfRooms = 3

	reqs := []domain.BookingRequest{{RoomNumber: 101, StartDate: day(1, 13), EndDate: day(3, 11)}}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(stored, nil)
	f.rooms.EXPECT().Assign(mock.Anything, "r1", reqs).Return([]domain.Booking{bookingFor(reqs[0])}, nil)
	f.users.EXPECT().AddNotification(mock.Anything, mock.Anything).Return(nil)
	f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return()

	res, err := f.svc.AssignRooms(context.Background(), admin, "r1", reqs)

	assert.ErrorIs(t, err, domain.ErrInsufficientRooms)
	require.NotNil(t, res)
	assert.Len(t, res.Bookings, 1)

	time.Sleep(50 * time.Millisecond)
}

func TestAllocationService_AssignRooms_Unavailable(t *testing.T) {
	f := newAllocationFixture(t)

	reqs := []domain.BookingRequest{{RoomNumber: 101, StartDate: day(1, 13), EndDate: day(3, 11)}}

	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(storedReservation(), nil)
	f.rooms.EXPECT().Assign(mock.Anything, "r1", reqs).Return(nil, domain.ErrRoomUnavailable)

	res, err := f.svc.AssignRooms(context.Background(), admin, "r1", reqs)

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)
}

func TestAllocationService_AssignRooms_Validation(t *testing.T) {
	f := newAllocationFixture(t)

	tests := []struct {
		name string
		reqs []domain.BookingRequest
	}{
		{"end before start", []domain.BookingRequest{{RoomNumber: 101, StartDate: day(3, 11), EndDate: day(1, 13)}}},
		{"no room number", []domain.BookingRequest{{StartDate: day(1, 13), EndDate: day(3, 11)}}},
		{"room listed twice", []domain.BookingRequest{
			{RoomNumber: 101, StartDate: day(1, 13), EndDate: day(2, 11)},
			{RoomNumber: 101, StartDate: day(2, 13), EndDate: day(3, 11)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.AssignRooms(context.Background(), admin, "r1", tt.reqs)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}

	_, err := f.svc.AssignRooms(context.Background(), guest, "r1", nil)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAllocationService_UnassignRoom(t *testing.T) {
	f := newAllocationFixture(t)

	f.rooms.EXPECT().Unassign(mock.Anything, "r1", 101).Return(nil)
	f.repo.EXPECT().GetByID(mock.Anything, "r1").Return(storedReservation(), nil)

	res, err := f.svc.UnassignRoom(context.Background(), admin, "r1", 101)

	require.NoError(t, err)
	assert.Empty(t, res.Bookings)

	f.rooms.EXPECT().Unassign(mock.Anything, "r1", 999).Return(domain.ErrBookingNotFound)
	_, err = f.svc.UnassignRoom(context.Background(), admin, "r1", 999)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestAllocationService_EditBooking(t *testing.T) {
	f := newAllocationFixture(t)

	upd := domain.BookingUpdate{User: "Speaker", StartDate: day(2, 13), EndDate: day(4, 11)}
	f.rooms.EXPECT().EditBooking(mock.Anything, "r1", 101, upd).Return(domain.ErrRoomUnavailable)

	_, err := f.svc.EditBooking(context.Background(), admin, "r1", 101, upd)
	assert.ErrorIs(t, err, domain.ErrRoomUnavailable)

	_, err = f.svc.EditBooking(context.Background(), admin, "r1", 101,
		domain.BookingUpdate{StartDate: day(4, 13), EndDate: day(2, 11)})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAllocationService_AddRoom(t *testing.T) {
	f := newAllocationFixture(t)

	f.rooms.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.Room) bool {
		return r.Number == 101 && r.Type == domain.RoomKindSuite
	})).Return(nil)

	room, err := f.svc.AddRoom(context.Background(), admin, 101, domain.RoomKindSuite)
	require.NoError(t, err)
	assert.Empty(t, room.Bookings)

	f.rooms.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *domain.Room) bool {
		return r.Number == 102
	})).Return(domain.ErrRoomExists)
	_, err = f.svc.AddRoom(context.Background(), admin, 102, domain.RoomKindExecutive)
	assert.ErrorIs(t, err, domain.ErrRoomExists)

	_, err = f.svc.AddRoom(context.Background(), admin, 0, domain.RoomKindSuite)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.svc.AddRoom(context.Background(), admin, 103, "Penthouse")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAllocationService_DeleteRoom_Occupied(t *testing.T) {
	f := newAllocationFixture(t)

	f.rooms.EXPECT().Delete(mock.Anything, 101).Return(domain.ErrRoomOccupied)

	err := f.svc.DeleteRoom(context.Background(), admin, 101)

	assert.ErrorIs(t, err, domain.ErrRoomOccupied)
}

func TestAllocationService_ListRooms(t *testing.T) {
	f := newAllocationFixture(t)

	f.rooms.EXPECT().List(mock.Anything).Return([]*domain.Room{{Number: 101}}, nil)

	rooms, err := f.svc.ListRooms(context.Background(), domain.Principal{Role: "DEAN STUDENT AFFAIRS"})
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	_, err = f.svc.ListRooms(context.Background(), cashier)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAllocationService_ListRooms_Error(t *testing.T) {
	f := newAllocationFixture(t)

	f.rooms.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	_, err := f.svc.ListRooms(context.Background(), admin)

	require.Error(t, err)
}
