package domain

import (
	"math"
	"time"
)

type Category string

const (
	CategoryESA  Category = "ES-A"
	CategoryESB  Category = "ES-B"
	CategoryBRA  Category = "BR-A"
	CategoryBRB1 Category = "BR-B1"
	CategoryBRB2 Category = "BR-B2"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "Single Occupancy"
	RoomTypeDouble RoomType = "Double Occupancy"
)

func (t RoomType) Valid() bool {
	return t == RoomTypeSingle || t == RoomTypeDouble
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	StatusHold     Status = "HOLD"
)

// Settled reports whether the status counts as a final decision.
func (s Status) Settled() bool {
	return s == StatusApproved || s == StatusRejected
}

type PaymentSource string

const (
	PaymentSourceGuest      PaymentSource = "GUEST"
	PaymentSourceDepartment PaymentSource = "DEPARTMENT"
	PaymentSourceOthers     PaymentSource = "OTHERS"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentPaid    PaymentStatus = "PAID"
)

// Progress counter shown to the guest.
const (
	StepSubmitted     = 1
	StepAdminApproved = 2
	StepRoomsAssigned = 3
	StepPaid          = 4
)

const (
	DefaultArrivalClock   = "13:00"
	DefaultDepartureClock = "11:00"
)

type Reviewer struct {
	Role     string `json:"role"`
	Status   Status `json:"status"`
	Comments string `json:"comments"`
}

type Applicant struct {
	Name        string `json:"name" validate:"required"`
	Designation string `json:"designation"`
	Department  string `json:"department"`
	Code        string `json:"code"`
	Mobile      string `json:"mobile" validate:"required,len=10,numeric"`
	Email       string `json:"email" validate:"required,email"`
}

type SignatureKind string

const (
	SignatureText  SignatureKind = "text"
	SignatureImage SignatureKind = "image"
)

// Signature holds Text for typed signatures and FileID for uploaded images.
type Signature struct {
	Kind   SignatureKind `json:"kind"`
	Text   string        `json:"text,omitempty"`
	FileID string        `json:"fileId,omitempty"`
}

type Payment struct {
	Source        PaymentSource `json:"source"`
	SourceName    string        `json:"sourceName"`
	Amount        int           `json:"amount"`
	Status        PaymentStatus `json:"status"`
	Method        string        `json:"paymentMethod,omitempty"`
	TransactionID string        `json:"transactionId,omitempty"`
}

type FileRef struct {
	RefID     string `json:"refid"`
	Extension string `json:"extension"`
}

type AdminAnnotation struct {
	ApprovalAttached string     `json:"approvalAttached"`
	ConfirmedRoomNo  string     `json:"confirmedRoomNo"`
	EntrySerialNo    string     `json:"entrySerialNo"`
	EntryPageNo      string     `json:"entryPageNo"`
	EntryDate        *time.Time `json:"entryDate,omitempty"`
	BookingDate      *time.Time `json:"bookingDate,omitempty"`
	CheckInTime      string     `json:"checkInTime"`
	CheckOutTime     string     `json:"checkOutTime"`
	Remarks          string     `json:"remarks"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	UpdatedBy        string     `json:"updatedBy"`
}

type Reservation struct {
	ID              string           `json:"id"`
	GuestEmail      string           `json:"guest_email"`
	ByAdmin         bool             `json:"by_admin"`
	GuestName       string           `json:"guest_name"`
	GuestGender     string           `json:"guest_gender"`
	Address         string           `json:"address"`
	Purpose         string           `json:"purpose"`
	NumberOfGuests  int              `json:"number_of_guests"`
	NumberOfRooms   int              `json:"number_of_rooms"`
	RoomType        RoomType         `json:"room_type"`
	Category        Category         `json:"category"`
	ArrivalDate     time.Time        `json:"arrival_date"`
	DepartureDate   time.Time        `json:"departure_date"`
	Applicant       Applicant        `json:"applicant"`
	Signature       Signature        `json:"signature"`
	Payment         Payment          `json:"payment"`
	Reviewers       []Reviewer       `json:"reviewers"`
	Status          Status           `json:"status"`
	StepsCompleted  int              `json:"steps_completed"`
	Bookings        []Booking        `json:"bookings"`
	Files           []FileRef        `json:"files"`
	ReceiptID       string           `json:"receipt_id"`
	CheckedIn       bool             `json:"checked_in"`
	CheckedOut      bool             `json:"checked_out"`
	AdminAnnotation *AdminAnnotation `json:"admin_annotation,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// Reviewer returns the first reviewer entry whose role parses to kind.
func (r *Reservation) Reviewer(kind RoleKind) *Reviewer {
	for i := range r.Reviewers {
		if ParseRole(r.Reviewers[i].Role).Kind == kind {
			return &r.Reviewers[i]
		}
	}
	return nil
}

// ReviewerFor returns the first reviewer entry the principal role may act on.
func (r *Reservation) ReviewerFor(p Role) *Reviewer {
	for i := range r.Reviewers {
		if ParseRole(r.Reviewers[i].Role).Matches(p) {
			return &r.Reviewers[i]
		}
	}
	return nil
}

func (r *Reservation) OwnedBy(email string) bool {
	return email != "" && r.GuestEmail == email
}

// StayDays is the billable length of a stay in whole days, at least one.
func StayDays(arrival, departure time.Time) int {
	days := int(math.Ceil(departure.Sub(arrival).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// ReservationFilter selects reservations by exact-match fields and date ranges.
// Zero values are ignored.
type ReservationFilter struct {
	GuestEmail      string
	Status          Status
	PaymentStatus   PaymentStatus
	CheckedOut      *bool
	DepartureFrom   *time.Time
	DepartureBefore *time.Time
	IDs             []string
	// ReviewerKind and ReviewerStatus narrow to reservations holding a
	// reviewer entry of that kind in that state.
	ReviewerKind   RoleKind
	ReviewerStatus Status
}

// CashierView names one of the front desk reservation lists.
type CashierView string

const (
	ViewCurrent        CashierView = "current"
	ViewPaymentPending CashierView = "payment-pending"
	ViewCheckedOut     CashierView = "checked-out"
	ViewLateCheckout   CashierView = "late"
	ViewCheckoutToday  CashierView = "checkout-today"
)

// SubmitInput carries a new reservation request. Reviewers and Subroles are
// comma-joined lists as posted by the form.
type SubmitInput struct {
	GuestName      string
	GuestGender    string
	Address        string
	Purpose        string
	NumberOfGuests int       `validate:"gte=1"`
	NumberOfRooms  int       `validate:"gte=1"`
	RoomType       RoomType  `validate:"required"`
	Category       Category  `validate:"required"`
	ArrivalDate    time.Time `validate:"required"`
	DepartureDate  time.Time `validate:"required"`
	Applicant      Applicant
	Signature      Signature
	Source         PaymentSource `validate:"required,oneof=GUEST DEPARTMENT OTHERS"`
	SourceName     string
	Reviewers      string
	Subroles       string
	Files          []FileRef
	ReceiptID      string
}

// EditInput is a guest re-submission. Empty fields keep the stored value.
type EditInput struct {
	GuestName      string
	GuestGender    string
	Address        string
	Purpose        string
	NumberOfGuests int
	NumberOfRooms  int
	RoomType       RoomType
	Category       Category
	ArrivalDate    *time.Time
	DepartureDate  *time.Time
	Applicant      *Applicant
	Signature      *Signature
	Source         PaymentSource
	SourceName     string
	Reviewers      string
	Subroles       string
	Files          []FileRef
	ReceiptID      string
}

type PaymentUpdate struct {
	Status        PaymentStatus `validate:"required,oneof=PENDING PAID"`
	Amount        int           `validate:"gte=0"`
	Method        string
	TransactionID string
}
