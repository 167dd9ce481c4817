package domain

import (
	"fmt"
	"sort"
)

// AssignmentPlan is the set of booking writes that leaves a reservation
// holding exactly the requested rooms.
type AssignmentPlan struct {
	// Release lists rooms the reservation holds but no longer wants.
	Release []int
	// Upsert has one booking per requested room, ordered by room number.
	// A room the reservation already holds keeps its booking id; new
	// bookings have an empty ID for the store to fill.
	Upsert []Booking
}

// PlanAssignment decides how to move a reservation from the bookings it
// holds to reqs. rooms must carry every requested room with its current
// bookings; the reservation's own bookings never block it.
func PlanAssignment(reservationID string, held []Booking, rooms map[int]*Room, reqs []BookingRequest) (AssignmentPlan, error) {
	heldByRoom := make(map[int]Booking, len(held))
	for _, b := range held {
		heldByRoom[b.RoomNumber] = b
	}

	sorted := make([]BookingRequest, len(reqs))
	copy(sorted, reqs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].RoomNumber < sorted[j].RoomNumber })

	var plan AssignmentPlan
	wanted := make(map[int]struct{}, len(sorted))
	for _, req := range sorted {
		if _, dup := wanted[req.RoomNumber]; dup {
			return AssignmentPlan{}, fmt.Errorf("%w: room %d listed twice", ErrValidation, req.RoomNumber)
		}
		wanted[req.RoomNumber] = struct{}{}

		if !req.EndDate.After(req.StartDate) {
			return AssignmentPlan{}, fmt.Errorf("%w: room %d ends before it starts", ErrValidation, req.RoomNumber)
		}
		room, ok := rooms[req.RoomNumber]
		if !ok {
			return AssignmentPlan{}, fmt.Errorf("%w: room %d", ErrRoomNotFound, req.RoomNumber)
		}
		if !room.IsRangeAvailable(req.StartDate, req.EndDate, reservationID) {
			return AssignmentPlan{}, fmt.Errorf("%w: room %d", ErrRoomUnavailable, req.RoomNumber)
		}

		plan.Upsert = append(plan.Upsert, Booking{
			ID:            heldByRoom[req.RoomNumber].ID,
			ReservationID: reservationID,
			RoomNumber:    req.RoomNumber,
			StartDate:     req.StartDate,
			EndDate:       req.EndDate,
			User:          req.User,
		})
	}

	for number := range heldByRoom {
		if _, keep := wanted[number]; !keep {
			plan.Release = append(plan.Release, number)
		}
	}
	sort.Ints(plan.Release)

	return plan, nil
}
