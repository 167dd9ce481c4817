package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/handler/dto"
	"github.com/arnavb2004/Guest-House-Portal/internal/middleware"
	"github.com/arnavb2004/Guest-House-Portal/internal/workflow"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	Submit(ctx context.Context, p domain.Principal, in domain.SubmitInput) (*domain.Reservation, error)
	SubmitAsAdmin(ctx context.Context, p domain.Principal, in domain.SubmitInput) (*domain.Reservation, error)
	Review(ctx context.Context, p domain.Principal, id string, action workflow.Action) (*domain.Reservation, error)
	Get(ctx context.Context, p domain.Principal, id string) (*domain.Reservation, error)
	ListByStatus(ctx context.Context, p domain.Principal, status domain.Status) ([]*domain.Reservation, error)
	ListAll(ctx context.Context, p domain.Principal) ([]*domain.Reservation, error)
	ListForCashier(ctx context.Context, p domain.Principal, view domain.CashierView) ([]*domain.Reservation, error)
	UpdateAdminAnnotation(ctx context.Context, p domain.Principal, id string, note domain.AdminAnnotation) (*domain.Reservation, error)
	UpdateReceipt(ctx context.Context, p domain.Principal, id, receiptID string) (*domain.Reservation, error)
	DeleteMany(ctx context.Context, p domain.Principal, ids []string) (int, error)
	SendReminder(ctx context.Context, p domain.Principal, id string) error
	RemindAll(ctx context.Context, p domain.Principal) (int, error)
	DiningAmount(ctx context.Context, p domain.Principal, id string) (int, error)
}

type AllocationSvc interface {
	AssignRooms(ctx context.Context, p domain.Principal, id string, reqs []domain.BookingRequest) (*domain.Reservation, error)
	UnassignRoom(ctx context.Context, p domain.Principal, id string, roomNumber int) (*domain.Reservation, error)
	EditBooking(ctx context.Context, p domain.Principal, id string, roomNumber int, upd domain.BookingUpdate) (*domain.Reservation, error)
	AddRoom(ctx context.Context, p domain.Principal, number int, kind domain.RoomKind) (*domain.Room, error)
	DeleteRoom(ctx context.Context, p domain.Principal, number int) error
	ListRooms(ctx context.Context, p domain.Principal) ([]*domain.Room, error)
}

type LifecycleSvc interface {
	Withdraw(ctx context.Context, p domain.Principal, id string) error
	CheckIn(ctx context.Context, p domain.Principal, id string, arrival *time.Time) (*domain.Reservation, error)
	CheckOut(ctx context.Context, p domain.Principal, id string, departure *time.Time) (*domain.Reservation, error)
	Edit(ctx context.Context, p domain.Principal, id string, in domain.EditInput) (*domain.Reservation, error)
	UpdatePayment(ctx context.Context, p domain.Principal, id string, upd domain.PaymentUpdate) (*domain.Reservation, error)
}

type UserSvc interface {
	Create(ctx context.Context, p domain.Principal, input domain.CreateUserInput) (*domain.User, error)
	Me(ctx context.Context, p domain.Principal) (*domain.User, error)
	List(ctx context.Context, p domain.Principal) ([]*domain.User, error)
	Notifications(ctx context.Context, p domain.Principal) ([]*domain.Notification, error)
	SendNotification(ctx context.Context, p domain.Principal, email, message, reservationID string) (*domain.Notification, error)
}

type Handler struct {
	reservations ReservationSvc
	allocation   AllocationSvc
	lifecycle    LifecycleSvc
	users        UserSvc
}

func NewHandler(reservations ReservationSvc, allocation AllocationSvc, lifecycle LifecycleSvc, users UserSvc) *Handler {
	return &Handler{
		reservations: reservations,
		allocation:   allocation,
		lifecycle:    lifecycle,
		users:        users,
	}
}

// principal aborts with 401 when the auth middleware did not run.
func principal(c *ginext.Context) (domain.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "authorization required"})
	}
	return p, ok
}

func bindJSON(c *ginext.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func intParam(c *ginext.Context, name string) (int, bool) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return n, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrReservationNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrRoomUnavailable),
		errors.Is(err, domain.ErrInsufficientRooms),
		errors.Is(err, domain.ErrRoomOccupied),
		errors.Is(err, domain.ErrRoomExists),
		errors.Is(err, domain.ErrAlreadyBooked),
		errors.Is(err, domain.ErrPaymentPending):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
