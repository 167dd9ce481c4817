package domain

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roomStore mirrors the bookings table: one row per (reservation, room).
type roomStore struct {
	rooms  map[int]*Room
	nextID int
}

func newRoomStore(numbers ...int) *roomStore {
	s := &roomStore{rooms: make(map[int]*Room, len(numbers))}
	for _, n := range numbers {
		s.rooms[n] = &Room{Number: n, Type: RoomKindSuite}
	}
	return s
}

func (s *roomStore) held(resID string) []Booking {
	var out []Booking
	for _, room := range s.rooms {
		for _, b := range room.Bookings {
			if b.ReservationID == resID {
				out = append(out, b)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomNumber < out[j].RoomNumber })
	return out
}

func (s *roomStore) unassign(resID string, number int) {
	room := s.rooms[number]
	kept := room.Bookings[:0]
	for _, b := range room.Bookings {
		if b.ReservationID != resID {
			kept = append(kept, b)
		}
	}
	room.Bookings = kept
}

// apply performs the plan the way the repository's DELETE and upsert do.
func (s *roomStore) apply(resID string, plan AssignmentPlan) {
	for _, n := range plan.Release {
		s.unassign(resID, n)
	}
	for _, b := range plan.Upsert {
		room := s.rooms[b.RoomNumber]
		replaced := false
		for i := range room.Bookings {
			if room.Bookings[i].ReservationID == resID {
				b.ID = room.Bookings[i].ID
				room.Bookings[i] = b
				replaced = true
			}
		}
		if !replaced {
			s.nextID++
			b.ID = fmt.Sprintf("b%d", s.nextID)
			room.Bookings = append(room.Bookings, b)
		}
	}
}

func (s *roomStore) assertNoOverlap(t *testing.T) {
	t.Helper()
	for number, room := range s.rooms {
		for i, a := range room.Bookings {
			for _, b := range room.Bookings[i+1:] {
				require.False(t, Overlaps(a.StartDate, a.EndDate, b.StartDate, b.EndDate),
					"room %d double booked by %s and %s", number, a.ReservationID, b.ReservationID)
			}
		}
	}
}

func req(room, from, to int) BookingRequest {
	return BookingRequest{RoomNumber: room, StartDate: day(from), EndDate: day(to)}
}

func TestPlanAssignment_NewRooms(t *testing.T) {
	s := newRoomStore(101, 102)

	plan, err := PlanAssignment("r1", nil, s.rooms, []BookingRequest{req(102, 1, 3), req(101, 1, 3)})

	require.NoError(t, err)
	assert.Empty(t, plan.Release)
	require.Len(t, plan.Upsert, 2)
	assert.Equal(t, 101, plan.Upsert[0].RoomNumber)
	assert.Equal(t, 102, plan.Upsert[1].RoomNumber)
	assert.Empty(t, plan.Upsert[0].ID)
	assert.Equal(t, "r1", plan.Upsert[0].ReservationID)
}

func TestPlanAssignment_ReleasesDroppedAndKeepsHeldIDs(t *testing.T) {
	s := newRoomStore(101, 102, 103)
	s.apply("r1", AssignmentPlan{Upsert: []Booking{
		{ReservationID: "r1", RoomNumber: 101, StartDate: day(1), EndDate: day(3)},
		{ReservationID: "r1", RoomNumber: 102, StartDate: day(1), EndDate: day(3)},
	}})
	held := s.held("r1")

	plan, err := PlanAssignment("r1", held, s.rooms, []BookingRequest{req(102, 2, 5), req(103, 1, 3)})

	require.NoError(t, err)
	assert.Equal(t, []int{101}, plan.Release)
	require.Len(t, plan.Upsert, 2)
	assert.Equal(t, held[1].ID, plan.Upsert[0].ID)
	assert.Equal(t, day(5), plan.Upsert[0].EndDate)
	assert.Empty(t, plan.Upsert[1].ID)
}

func TestPlanAssignment_OwnBookingDoesNotBlock(t *testing.T) {
	s := newRoomStore(101)
	s.apply("r1", AssignmentPlan{Upsert: []Booking{
		{ReservationID: "r1", RoomNumber: 101, StartDate: day(1), EndDate: day(5)},
	}})

	_, err := PlanAssignment("r1", s.held("r1"), s.rooms, []BookingRequest{req(101, 2, 6)})
	require.NoError(t, err)

	_, err = PlanAssignment("r2", nil, s.rooms, []BookingRequest{req(101, 4, 6)})
	assert.ErrorIs(t, err, ErrRoomUnavailable)

	_, err = PlanAssignment("r2", nil, s.rooms, []BookingRequest{req(101, 5, 7)})
	assert.NoError(t, err, "abutting ranges do not overlap")
}

func TestPlanAssignment_Rejects(t *testing.T) {
	s := newRoomStore(101)

	tests := []struct {
		name string
		reqs []BookingRequest
		want error
	}{
		{"unknown room", []BookingRequest{req(999, 1, 2)}, ErrRoomNotFound},
		{"duplicate room", []BookingRequest{req(101, 1, 2), req(101, 3, 4)}, ErrValidation},
		{"empty range", []BookingRequest{req(101, 2, 2)}, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := PlanAssignment("r1", nil, s.rooms, tt.reqs)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestPlanAssignment_EmptyRequestReleasesAll(t *testing.T) {
	s := newRoomStore(101, 102)
	s.apply("r1", AssignmentPlan{Upsert: []Booking{
		{ReservationID: "r1", RoomNumber: 101, StartDate: day(1), EndDate: day(3)},
		{ReservationID: "r1", RoomNumber: 102, StartDate: day(1), EndDate: day(3)},
	}})

	plan, err := PlanAssignment("r1", s.held("r1"), s.rooms, nil)

	require.NoError(t, err)
	assert.Equal(t, []int{101, 102}, plan.Release)
	assert.Empty(t, plan.Upsert)
}

// Random assign and unassign sequences never double book a room, and a
// successful assignment reads back as exactly the requested rooms.
func TestPlanAssignment_RandomSequences(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	numbers := []int{101, 102, 103, 104}
	s := newRoomStore(numbers...)
	reservations := []string{"r1", "r2", "r3", "r4", "r5", "r6"}

	for step := 0; step < 500; step++ {
		resID := reservations[rnd.Intn(len(reservations))]

		if rnd.Intn(4) == 0 {
			s.unassign(resID, numbers[rnd.Intn(len(numbers))])
			s.assertNoOverlap(t)
			continue
		}

		perm := rnd.Perm(len(numbers))[:rnd.Intn(len(numbers))+1]
		reqs := make([]BookingRequest, 0, len(perm))
		for _, i := range perm {
			from := rnd.Intn(20) + 1
			reqs = append(reqs, req(numbers[i], from, from+rnd.Intn(5)+1))
		}

		blocked := false
		for _, r := range reqs {
			for _, b := range s.rooms[r.RoomNumber].Bookings {
				if b.ReservationID != resID && Overlaps(b.StartDate, b.EndDate, r.StartDate, r.EndDate) {
					blocked = true
				}
			}
		}

		before := s.held(resID)
		plan, err := PlanAssignment(resID, before, s.rooms, reqs)
		if blocked {
			require.ErrorIs(t, err, ErrRoomUnavailable, "step %d", step)
			assert.Equal(t, before, s.held(resID))
			continue
		}
		require.NoError(t, err, "step %d", step)

		s.apply(resID, plan)
		s.assertNoOverlap(t)

		after := s.held(resID)
		sort.Slice(reqs, func(i, j int) bool { return reqs[i].RoomNumber < reqs[j].RoomNumber })
		require.Len(t, after, len(reqs), "step %d", step)
		for i, b := range after {
			assert.Equal(t, reqs[i].RoomNumber, b.RoomNumber)
			assert.True(t, reqs[i].StartDate.Equal(b.StartDate))
			assert.True(t, reqs[i].EndDate.Equal(b.EndDate))
			for _, old := range before {
				if old.RoomNumber == b.RoomNumber {
					assert.Equal(t, old.ID, b.ID, "held booking keeps its id")
				}
			}
		}
	}
}
