package dto

import (
	"fmt"
	"time"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"
)

// ParseInstant accepts RFC3339, or a calendar date that is combined with
// clock (or def when clock is empty). Times are UTC.
func ParseInstant(value, clock, def string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD or RFC3339", domain.ErrValidation, value)
	}
	if clock == "" {
		clock = def
	}
	c, err := time.Parse(clockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid time %q, expected HH:MM", domain.ErrValidation, clock)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, time.UTC), nil
}

func parseOptional(value, clock, def string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseInstant(value, clock, def)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type SubmitRequest struct {
	GuestName      string           `json:"guest_name"`
	GuestGender    string           `json:"guest_gender"`
	Address        string           `json:"address"`
	Purpose        string           `json:"purpose"`
	NumberOfGuests int              `json:"number_of_guests" binding:"required,gt=0"`
	NumberOfRooms  int              `json:"number_of_rooms" binding:"required,gt=0"`
	RoomType       string           `json:"room_type" binding:"required"`
	Category       string           `json:"category" binding:"required"`
	ArrivalDate    string           `json:"arrival_date" binding:"required"`
	ArrivalTime    string           `json:"arrival_time"`
	DepartureDate  string           `json:"departure_date" binding:"required"`
	DepartureTime  string           `json:"departure_time"`
	Applicant      domain.Applicant `json:"applicant"`
	Signature      domain.Signature `json:"signature"`
	Source         string           `json:"source" binding:"required"`
	SourceName     string           `json:"source_name"`
	Reviewers      string           `json:"reviewers"`
	Subroles       string           `json:"subroles"`
	Files          []domain.FileRef `json:"files"`
	ReceiptID      string           `json:"receipt_id"`
}

func (r SubmitRequest) ToInput() (domain.SubmitInput, error) {
	arrival, err := ParseInstant(r.ArrivalDate, r.ArrivalTime, domain.DefaultArrivalClock)
	if err != nil {
		return domain.SubmitInput{}, err
	}
	departure, err := ParseInstant(r.DepartureDate, r.DepartureTime, domain.DefaultDepartureClock)
	if err != nil {
		return domain.SubmitInput{}, err
	}

	return domain.SubmitInput{
		GuestName:      r.GuestName,
		GuestGender:    r.GuestGender,
		Address:        r.Address,
		Purpose:        r.Purpose,
		NumberOfGuests: r.NumberOfGuests,
		NumberOfRooms:  r.NumberOfRooms,
		RoomType:       domain.RoomType(r.RoomType),
		Category:       domain.Category(r.Category),
		ArrivalDate:    arrival,
		DepartureDate:  departure,
		Applicant:      r.Applicant,
		Signature:      r.Signature,
		Source:         domain.PaymentSource(r.Source),
		SourceName:     r.SourceName,
		Reviewers:      r.Reviewers,
		Subroles:       r.Subroles,
		Files:          r.Files,
		ReceiptID:      r.ReceiptID,
	}, nil
}

// EditRequest leaves a field unchanged when it is empty.
type EditRequest struct {
	GuestName      string            `json:"guest_name"`
	GuestGender    string            `json:"guest_gender"`
	Address        string            `json:"address"`
	Purpose        string            `json:"purpose"`
	NumberOfGuests int               `json:"number_of_guests" binding:"gte=0"`
	NumberOfRooms  int               `json:"number_of_rooms" binding:"gte=0"`
	RoomType       string            `json:"room_type"`
	Category       string            `json:"category"`
	ArrivalDate    string            `json:"arrival_date"`
	ArrivalTime    string            `json:"arrival_time"`
	DepartureDate  string            `json:"departure_date"`
	DepartureTime  string            `json:"departure_time"`
	Applicant      *domain.Applicant `json:"applicant"`
	Signature      *domain.Signature `json:"signature"`
	Source         string            `json:"source"`
	SourceName     string            `json:"source_name"`
	Reviewers      string            `json:"reviewers"`
	Subroles       string            `json:"subroles"`
	Files          []domain.FileRef  `json:"files"`
	ReceiptID      string            `json:"receipt_id"`
}

func (r EditRequest) ToInput() (domain.EditInput, error) {
	arrival, err := parseOptional(r.ArrivalDate, r.ArrivalTime, domain.DefaultArrivalClock)
	if err != nil {
		return domain.EditInput{}, err
	}
	departure, err := parseOptional(r.DepartureDate, r.DepartureTime, domain.DefaultDepartureClock)
	if err != nil {
		return domain.EditInput{}, err
	}

	return domain.EditInput{
		GuestName:      r.GuestName,
		GuestGender:    r.GuestGender,
		Address:        r.Address,
		Purpose:        r.Purpose,
		NumberOfGuests: r.NumberOfGuests,
		NumberOfRooms:  r.NumberOfRooms,
		RoomType:       domain.RoomType(r.RoomType),
		Category:       domain.Category(r.Category),
		ArrivalDate:    arrival,
		DepartureDate:  departure,
		Applicant:      r.Applicant,
		Signature:      r.Signature,
		Source:         domain.PaymentSource(r.Source),
		SourceName:     r.SourceName,
		Reviewers:      r.Reviewers,
		Subroles:       r.Subroles,
		Files:          r.Files,
		ReceiptID:      r.ReceiptID,
	}, nil
}

// ReviewRequest carries comments for approve and hold, and the reason for
// reject.
type ReviewRequest struct {
	Comments string `json:"comments"`
	Reason   string `json:"reason"`
}

type BookingRequest struct {
	RoomNumber int    `json:"room_number" binding:"required,gt=0"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	User       string `json:"user"`
}

func (r BookingRequest) ToDomain() (domain.BookingRequest, error) {
	start, err := ParseInstant(r.StartDate, "", domain.DefaultArrivalClock)
	if err != nil {
		return domain.BookingRequest{}, err
	}
	end, err := ParseInstant(r.EndDate, "", domain.DefaultDepartureClock)
	if err != nil {
		return domain.BookingRequest{}, err
	}
	return domain.BookingRequest{RoomNumber: r.RoomNumber, StartDate: start, EndDate: end, User: r.User}, nil
}

type AssignRoomsRequest struct {
	Rooms []BookingRequest `json:"allocated_rooms" binding:"dive"`
}

type UnassignRoomRequest struct {
	RoomNumber int `json:"room_number" binding:"required,gt=0"`
}

type EditBookingRequest struct {
	BookingRequest
}

func (r EditBookingRequest) ToDomain() (domain.BookingUpdate, error) {
	b, err := r.BookingRequest.ToDomain()
	if err != nil {
		return domain.BookingUpdate{}, err
	}
	return domain.BookingUpdate{User: b.User, StartDate: b.StartDate, EndDate: b.EndDate}, nil
}

// StayDateRequest optionally moves the arrival or departure on check-in and
// check-out.
type StayDateRequest struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

type PaymentRequest struct {
	Status        string `json:"status" binding:"required,oneof=PENDING PAID"`
	Amount        int    `json:"amount" binding:"gte=0"`
	Method        string `json:"payment_method"`
	TransactionID string `json:"transaction_id"`
}

func (r PaymentRequest) ToDomain() domain.PaymentUpdate {
	return domain.PaymentUpdate{
		Status:        domain.PaymentStatus(r.Status),
		Amount:        r.Amount,
		Method:        r.Method,
		TransactionID: r.TransactionID,
	}
}

type AnnotationRequest struct {
	ApprovalAttached string `json:"approval_attached"`
	ConfirmedRoomNo  string `json:"confirmed_room_no"`
	EntrySerialNo    string `json:"entry_serial_no"`
	EntryPageNo      string `json:"entry_page_no"`
	EntryDate        string `json:"entry_date"`
	BookingDate      string `json:"booking_date"`
	CheckInTime      string `json:"check_in_time"`
	CheckOutTime     string `json:"check_out_time"`
	Remarks          string `json:"remarks"`
}

func (r AnnotationRequest) ToDomain() (domain.AdminAnnotation, error) {
	entry, err := parseOptional(r.EntryDate, "", "00:00")
	if err != nil {
		return domain.AdminAnnotation{}, err
	}
	booking, err := parseOptional(r.BookingDate, "", "00:00")
	if err != nil {
		return domain.AdminAnnotation{}, err
	}
	return domain.AdminAnnotation{
		ApprovalAttached: r.ApprovalAttached,
		ConfirmedRoomNo:  r.ConfirmedRoomNo,
		EntrySerialNo:    r.EntrySerialNo,
		EntryPageNo:      r.EntryPageNo,
		EntryDate:        entry,
		BookingDate:      booking,
		CheckInTime:      r.CheckInTime,
		CheckOutTime:     r.CheckOutTime,
		Remarks:          r.Remarks,
	}, nil
}

type ReceiptRequest struct {
	ReceiptID string `json:"receipt_id" binding:"required"`
}

type DeleteRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

type ReminderRequest struct {
	ID string `json:"id" binding:"required"`
}

type AddRoomRequest struct {
	RoomNumber int    `json:"room_number" binding:"required,gt=0"`
	RoomType   string `json:"room_type" binding:"required"`
}

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Name           string `json:"name" binding:"required"`
	Role           string `json:"role" binding:"required"`
	Contact        string `json:"contact"`
	Department     string `json:"department"`
	Designation    string `json:"designation"`
	Ecode          string `json:"ecode"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type SendNotificationRequest struct {
	Message       string `json:"message" binding:"required"`
	ReservationID string `json:"res_id"`
}
