package domain

import "time"

type RoomKind string

const (
	RoomKindSuite     RoomKind = "Suite Room"
	RoomKindExecutive RoomKind = "executive Room"
)

func (k RoomKind) Valid() bool {
	return k == RoomKindSuite || k == RoomKindExecutive
}

// Booking assigns one room to one reservation for [StartDate, EndDate).
type Booking struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservation_id"`
	RoomNumber    int       `json:"room_number"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	User          string    `json:"user"`
	Purpose       string    `json:"purpose,omitempty"`
}

type BookingRequest struct {
	RoomNumber int       `validate:"gt=0"`
	StartDate  time.Time `validate:"required"`
	EndDate    time.Time `validate:"required,gtfield=StartDate"`
	User       string
}

type BookingUpdate struct {
	User      string
	StartDate time.Time `validate:"required"`
	EndDate   time.Time `validate:"required,gtfield=StartDate"`
}

type Room struct {
	Number   int       `json:"room_number"`
	Type     RoomKind  `json:"room_type"`
	Bookings []Booking `json:"bookings"`
}

// Overlaps is the half-open interval test; abutting ranges do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// IsRangeAvailable reports whether [start, end) is free on the room.
// Bookings held by exceptReservation are ignored so a reservation can move
// its own booking.
func (r *Room) IsRangeAvailable(start, end time.Time, exceptReservation string) bool {
	for _, b := range r.Bookings {
		if exceptReservation != "" && b.ReservationID == exceptReservation {
			continue
		}
		if Overlaps(b.StartDate, b.EndDate, start, end) {
			return false
		}
	}
	return true
}
