package domain

import "errors"

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrBookingNotFound     = errors.New("booking not found")
)

var (
	ErrRoomUnavailable   = errors.New("room is not available for the specified date range")
	ErrInsufficientRooms = errors.New("insufficient rooms allotted")
	ErrRoomOccupied      = errors.New("room is occupied")
	ErrRoomExists        = errors.New("room already exists")
	ErrAlreadyBooked     = errors.New("cannot withdraw, room already booked")
	ErrPaymentPending    = errors.New("payment not completed")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
	ErrForbidden  = errors.New("you are not authorized to perform this action")
)
