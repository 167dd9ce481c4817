package domain

import "time"

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	Contact        string    `json:"contact"`
	Department     string    `json:"department"`
	Designation    string    `json:"designation"`
	Ecode          string    `json:"ecode"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	PendingRequest int       `json:"pending_request"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Email          string `validate:"required,email"`
	Name           string `validate:"required"`
	Role           string `validate:"required"`
	Contact        string
	Department     string
	Designation    string
	Ecode          string
	TelegramChatID *int64
}

// Notification is an inbox record on a user account.
type Notification struct {
	ID            string    `json:"id"`
	UserEmail     string    `json:"user_email"`
	Message       string    `json:"message"`
	Sender        string    `json:"sender"`
	ReservationID string    `json:"res_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// Principal is the authenticated caller.
type Principal struct {
	Email string
	Name  string
	Role  string
}

func (p Principal) ParsedRole() Role {
	return ParseRole(p.Role)
}

func (p Principal) Is(kind RoleKind) bool {
	return p.ParsedRole().Kind == kind
}

// Message is an outbound notification.
type Message struct {
	To      []string
	Subject string
	HTML    string
}
