package domain

import "time"

// DiningCharge is an ancillary charge billed against a reservation.
type DiningCharge struct {
	ID            string        `json:"id"`
	ReservationID string        `json:"reservation_id"`
	Amount        int           `json:"amount"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

// LedgerEntry is the row appended to the checkout ledger.
type LedgerEntry struct {
	ReservationID string
	GuestName     string
	GuestEmail    string
	Category      Category
	RoomType      RoomType
	Rooms         []int
	ArrivalDate   time.Time
	DepartureDate time.Time
	Amount        int
	DiningAmount  int
	Source        PaymentSource
	SourceName    string
	CheckedOutAt  time.Time
}
