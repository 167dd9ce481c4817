package dto

import (
	"time"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
)

type ReviewerResponse struct {
	Role     string `json:"role"`
	Status   string `json:"status"`
	Comments string `json:"comments"`
}

type BookingResponse struct {
	ID         string `json:"id"`
	RoomNumber int    `json:"room_number"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	User       string `json:"user"`
	Purpose    string `json:"purpose,omitempty"`
}

type PaymentResponse struct {
	Source        string `json:"source"`
	SourceName    string `json:"source_name"`
	Amount        int    `json:"amount"`
	Status        string `json:"status"`
	Method        string `json:"payment_method,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

type ReservationResponse struct {
	ID              string                  `json:"id"`
	GuestEmail      string                  `json:"guest_email"`
	ByAdmin         bool                    `json:"by_admin"`
	GuestName       string                  `json:"guest_name"`
	GuestGender     string                  `json:"guest_gender"`
	Address         string                  `json:"address"`
	Purpose         string                  `json:"purpose"`
	NumberOfGuests  int                     `json:"number_of_guests"`
	NumberOfRooms   int                     `json:"number_of_rooms"`
	RoomType        string                  `json:"room_type"`
	Category        string                  `json:"category"`
	ArrivalDate     string                  `json:"arrival_date"`
	DepartureDate   string                  `json:"departure_date"`
	Applicant       domain.Applicant        `json:"applicant"`
	Signature       domain.Signature        `json:"signature"`
	Payment         PaymentResponse         `json:"payment"`
	Reviewers       []ReviewerResponse      `json:"reviewers"`
	Status          string                  `json:"status"`
	StepsCompleted  int                     `json:"steps_completed"`
	Bookings        []BookingResponse       `json:"bookings"`
	Files           []domain.FileRef        `json:"files"`
	ReceiptID       string                  `json:"receipt_id"`
	CheckedIn       bool                    `json:"checked_in"`
	CheckedOut      bool                    `json:"checked_out"`
	AdminAnnotation *domain.AdminAnnotation `json:"admin_annotation,omitempty"`
	CreatedAt       string                  `json:"created_at"`
	UpdatedAt       string                  `json:"updated_at"`
}

// InsufficientRoomsResponse reports a committed but short room assignment.
type InsufficientRoomsResponse struct {
	Error       string              `json:"error"`
	Reservation ReservationResponse `json:"reservation"`
}

type RoomResponse struct {
	RoomNumber int               `json:"room_number"`
	RoomType   string            `json:"room_type"`
	Bookings   []BookingResponse `json:"bookings"`
}

type UserResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	Contact        string `json:"contact,omitempty"`
	Department     string `json:"department,omitempty"`
	Designation    string `json:"designation,omitempty"`
	Ecode          string `json:"ecode,omitempty"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	PendingRequest int    `json:"pending_request"`
	CreatedAt      string `json:"created_at"`
}

type NotificationResponse struct {
	ID            string `json:"id"`
	Message       string `json:"message"`
	Sender        string `json:"sender"`
	ReservationID string `json:"res_id"`
	CreatedAt     string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToBookingResponse(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		RoomNumber: b.RoomNumber,
		StartDate:  b.StartDate.Format(time.RFC3339),
		EndDate:    b.EndDate.Format(time.RFC3339),
		User:       b.User,
		Purpose:    b.Purpose,
	}
}

func toBookings(bs []domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bs))
	for _, b := range bs {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	reviewers := make([]ReviewerResponse, 0, len(r.Reviewers))
	for _, rv := range r.Reviewers {
		reviewers = append(reviewers, ReviewerResponse{Role: rv.Role, Status: string(rv.Status), Comments: rv.Comments})
	}
	files := r.Files
	if files == nil {
		files = []domain.FileRef{}
	}

	return ReservationResponse{
		ID:             r.ID,
		GuestEmail:     r.GuestEmail,
		ByAdmin:        r.ByAdmin,
		GuestName:      r.GuestName,
		GuestGender:    r.GuestGender,
		Address:        r.Address,
		Purpose:        r.Purpose,
		NumberOfGuests: r.NumberOfGuests,
		NumberOfRooms:  r.NumberOfRooms,
		RoomType:       string(r.RoomType),
		Category:       string(r.Category),
		ArrivalDate:    r.ArrivalDate.Format(time.RFC3339),
		DepartureDate:  r.DepartureDate.Format(time.RFC3339),
		Applicant:      r.Applicant,
		Signature:      r.Signature,
		Payment: PaymentResponse{
			Source:        string(r.Payment.Source),
			SourceName:    r.Payment.SourceName,
			Amount:        r.Payment.Amount,
			Status:        string(r.Payment.Status),
			Method:        r.Payment.Method,
			TransactionID: r.Payment.TransactionID,
		},
		Reviewers:       reviewers,
		Status:          string(r.Status),
		StepsCompleted:  r.StepsCompleted,
		Bookings:        toBookings(r.Bookings),
		Files:           files,
		ReceiptID:       r.ReceiptID,
		CheckedIn:       r.CheckedIn,
		CheckedOut:      r.CheckedOut,
		AdminAnnotation: r.AdminAnnotation,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToReservationList(rs []*domain.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		resp = append(resp, ToReservationResponse(r))
	}
	return resp
}

func ToRoomResponse(r *domain.Room) RoomResponse {
	return RoomResponse{
		RoomNumber: r.Number,
		RoomType:   string(r.Type),
		Bookings:   toBookings(r.Bookings),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		Name:           u.Name,
		Role:           u.Role,
		Contact:        u.Contact,
		Department:     u.Department,
		Designation:    u.Designation,
		Ecode:          u.Ecode,
		TelegramChatID: u.TelegramChatID,
		PendingRequest: u.PendingRequest,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		Message:       n.Message,
		Sender:        n.Sender,
		ReservationID: n.ReservationID,
		CreatedAt:     n.CreatedAt.Format(time.RFC3339),
	}
}
