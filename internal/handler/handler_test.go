package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/handler/dto"
	hmocks "github.com/arnavb2004/Guest-House-Portal/internal/handler/mocks"
	"github.com/arnavb2004/Guest-House-Portal/internal/middleware"
	"github.com/arnavb2004/Guest-House-Portal/internal/workflow"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type mocks struct {
	reservations *hmocks.MockReservationSvc
	allocation   *hmocks.MockAllocationSvc
	lifecycle    *hmocks.MockLifecycleSvc
	users        *hmocks.MockUserSvc
}

var (
	guest   = domain.Principal{Email: "guest@iitrpr.ac.in", Name: "Guest", Role: "USER"}
	admin   = domain.Principal{Email: "admin@iitrpr.ac.in", Name: "Admin", Role: "ADMIN"}
	cashier = domain.Principal{Email: "cash@iitrpr.ac.in", Name: "Cashier", Role: "CASHIER"}
)

// setupRouter mounts the handlers behind a stub that authenticates as p.
// A zero principal leaves the request anonymous.
func setupRouter(t *testing.T, p domain.Principal) (mocks, http.Handler) {
	t.Helper()
	m := mocks{
		reservations: hmocks.NewMockReservationSvc(t),
		allocation:   hmocks.NewMockAllocationSvc(t),
		lifecycle:    hmocks.NewMockLifecycleSvc(t),
		users:        hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.reservations, m.allocation, m.lifecycle, m.users)

	r := ginext.New("test")
	r.Use(func(c *ginext.Context) {
		if p.Email != "" {
			c.Set(middleware.PrincipalKey, p)
		}
		c.Next()
	})
	api := r.Group("/api")
	{
		res := api.Group("/reservations")
		res.POST("", h.Submit)
		res.GET("/pending", h.ListByStatus(domain.StatusPending))
		res.GET("/late", h.CashierList(domain.ViewLateCheckout))
		res.GET("/details/:id", h.GetReservation)
		res.PUT("/approve/:id", h.Review(workflow.ActionApprove))
		res.PUT("/reject/:id", h.Review(workflow.ActionReject))
		res.PUT("/rooms/:id", h.AssignRooms)
		res.PUT("/checkout/:id", h.CheckOut)
		res.PUT("/payment/:id", h.UpdatePayment)
		res.DELETE("/withdraw/:id", h.Withdraw)
		res.DELETE("", h.DeleteReservations)
		res.POST("/send-reminder-all", h.SendReminderAll)
		res.GET("/dining/:id", h.DiningAmount)
		res.POST("/notification/:email", h.SendNotification)
		res.GET("/rooms", h.ListRooms)
		res.POST("/rooms", h.AddRoom)
		res.DELETE("/rooms/:number", h.DeleteRoom)

		users := api.Group("/users")
		users.POST("", h.CreateUser)
		users.GET("/me", h.Me)
		users.GET("/me/notifications", h.Notifications)
	}

	return m, r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case []byte:
		reader = bytes.NewReader(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func reservation(status domain.Status) *domain.Reservation {
	arrival := time.Date(2026, 11, 10, 13, 0, 0, 0, time.UTC)
	return &domain.Reservation{
		ID:             uuid.New().String(),
		GuestEmail:     guest.Email,
		GuestName:      "Guest",
		NumberOfGuests: 2,
		NumberOfRooms:  1,
		RoomType:       domain.RoomTypeSingle,
		Category:       domain.CategoryBRB1,
		ArrivalDate:    arrival,
		DepartureDate:  arrival.Add(46 * time.Hour),
		Status:         status,
		CreatedAt:      arrival.Add(-72 * time.Hour),
		UpdatedAt:      arrival.Add(-72 * time.Hour),
	}
}

func submitBody() dto.SubmitRequest {
	return dto.SubmitRequest{
		GuestName:      "Guest",
		NumberOfGuests: 2,
		NumberOfRooms:  1,
		RoomType:       "Single Occupancy",
		Category:       "BR-B1",
		ArrivalDate:    "2026-11-10",
		DepartureDate:  "2026-11-12",
		Source:         "GUEST",
		Reviewers:      "REGISTRAR",
	}
}

// --- Reservations ---

func TestHandler_Submit_Success(t *testing.T) {
	m, r := setupRouter(t, guest)

	res := reservation(domain.StatusPending)
	m.reservations.EXPECT().Submit(mock.Anything, guest, mock.MatchedBy(func(in domain.SubmitInput) bool {
		return in.ArrivalDate.Equal(time.Date(2026, 11, 10, 13, 0, 0, 0, time.UTC)) &&
			in.DepartureDate.Equal(time.Date(2026, 11, 12, 11, 0, 0, 0, time.UTC))
	})).Return(res, nil)

	w := do(r, http.MethodPost, "/api/reservations", submitBody())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, res.ID, resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestHandler_Submit_AdminUsesProxyPath(t *testing.T) {
	m, r := setupRouter(t, admin)

	res := reservation(domain.StatusPending)
	res.ByAdmin = true
	m.reservations.EXPECT().SubmitAsAdmin(mock.Anything, admin, mock.Anything).Return(res, nil)

	w := do(r, http.MethodPost, "/api/reservations", submitBody())

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.ByAdmin)
}

func TestHandler_Submit_BadRequest(t *testing.T) {
	_, r := setupRouter(t, guest)

	w := do(r, http.MethodPost, "/api/reservations", []byte(`{"guest_name":"x"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Submit_InvalidDate(t *testing.T) {
	_, r := setupRouter(t, guest)

	body := submitBody()
	body.ArrivalDate = "10/11/2026"

	w := do(r, http.MethodPost, "/api/reservations", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Submit_ValidationFromService(t *testing.T) {
	m, r := setupRouter(t, guest)

	m.reservations.EXPECT().Submit(mock.Anything, guest, mock.Anything).
		Return(nil, fmt.Errorf("%w: category A needs a faculty applicant", domain.ErrValidation))

	w := do(r, http.MethodPost, "/api/reservations", submitBody())

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "category A")
}

func TestHandler_Unauthenticated(t *testing.T) {
	_, r := setupRouter(t, domain.Principal{})

	w := do(r, http.MethodGet, "/api/reservations/pending", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_ListByStatus(t *testing.T) {
	m, r := setupRouter(t, guest)

	m.reservations.EXPECT().ListByStatus(mock.Anything, guest, domain.StatusPending).
		Return([]*domain.Reservation{reservation(domain.StatusPending), reservation(domain.StatusPending)}, nil)

	w := do(r, http.MethodGet, "/api/reservations/pending", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_CashierList_Forbidden(t *testing.T) {
	m, r := setupRouter(t, guest)

	m.reservations.EXPECT().ListForCashier(mock.Anything, guest, domain.ViewLateCheckout).
		Return(nil, domain.ErrForbidden)

	w := do(r, http.MethodGet, "/api/reservations/late", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_GetReservation_NotFound(t *testing.T) {
	m, r := setupRouter(t, guest)

	m.reservations.EXPECT().Get(mock.Anything, guest, "missing").Return(nil, domain.ErrReservationNotFound)

	w := do(r, http.MethodGet, "/api/reservations/details/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_Review_ApproveWithoutBody(t *testing.T) {
	m, r := setupRouter(t, admin)

	res := reservation(domain.StatusApproved)
	m.reservations.EXPECT().
		Review(mock.Anything, admin, res.ID, workflow.Action{Kind: workflow.ActionApprove}).
		Return(res, nil)

	w := do(r, http.MethodPut, "/api/reservations/approve/"+res.ID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "APPROVED", resp.Status)
}

func TestHandler_Review_RejectUsesReason(t *testing.T) {
	m, r := setupRouter(t, admin)

	res := reservation(domain.StatusRejected)
	m.reservations.EXPECT().
		Review(mock.Anything, admin, res.ID, workflow.Action{Kind: workflow.ActionReject, Comments: "no rooms"}).
		Return(res, nil)

	w := do(r, http.MethodPut, "/api/reservations/reject/"+res.ID, dto.ReviewRequest{Reason: "no rooms"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteReservations(t *testing.T) {
	m, r := setupRouter(t, admin)

	m.reservations.EXPECT().DeleteMany(mock.Anything, admin, []string{"r1", "r2"}).Return(2, nil)

	w := do(r, http.MethodDelete, "/api/reservations", dto.DeleteRequest{IDs: []string{"r1", "r2"}})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted":2}`, w.Body.String())
}

func TestHandler_SendReminderAll(t *testing.T) {
	m, r := setupRouter(t, cashier)

	m.reservations.EXPECT().RemindAll(mock.Anything, cashier).Return(3, nil)

	w := do(r, http.MethodPost, "/api/reservations/send-reminder-all", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"reminded":3}`, w.Body.String())
}

func TestHandler_DiningAmount(t *testing.T) {
	m, r := setupRouter(t, guest)

	m.reservations.EXPECT().DiningAmount(mock.Anything, guest, "r1").Return(650, nil)

	w := do(r, http.MethodGet, "/api/reservations/dining/r1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"amount":650}`, w.Body.String())
}

// --- Rooms ---

func TestHandler_AssignRooms_Success(t *testing.T) {
	m, r := setupRouter(t, admin)

	res := reservation(domain.StatusApproved)
	m.allocation.EXPECT().AssignRooms(mock.Anything, admin, res.ID, mock.MatchedBy(func(reqs []domain.BookingRequest) bool {
		return len(reqs) == 1 && reqs[0].RoomNumber == 101 &&
			reqs[0].StartDate.Equal(time.Date(2026, 11, 10, 0, 0, 0, 0, time.UTC))
	})).Return(res, nil)

	body := dto.AssignRoomsRequest{Rooms: []dto.BookingRequest{
		{RoomNumber: 101, StartDate: "2026-11-10T00:00:00Z", EndDate: "2026-11-12T00:00:00Z"},
	}}
	w := do(r, http.MethodPut, "/api/reservations/rooms/"+res.ID, body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AssignRooms_Insufficient(t *testing.T) {
	m, r := setupRouter(t, admin)

	res := reservation(domain.StatusApproved)
	res.NumberOfRooms = 2
	res.Bookings = []domain.Booking{{ID: "b1", RoomNumber: 101}}
	m.allocation.EXPECT().AssignRooms(mock.Anything, admin, res.ID, mock.Anything).
		Return(res, fmt.Errorf("%w: 1 of 2", domain.ErrInsufficientRooms))

	body := dto.AssignRoomsRequest{Rooms: []dto.BookingRequest{
		{RoomNumber: 101, StartDate: "2026-11-10T00:00:00Z", EndDate: "2026-11-12T00:00:00Z"},
	}}
	w := do(r, http.MethodPut, "/api/reservations/rooms/"+res.ID, body)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.InsufficientRoomsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "1 of 2")
	require.Len(t, resp.Reservation.Bookings, 1)
	assert.Equal(t, 101, resp.Reservation.Bookings[0].RoomNumber)
}

func TestHandler_AssignRooms_Unavailable(t *testing.T) {
	m, r := setupRouter(t, admin)

	m.allocation.EXPECT().AssignRooms(mock.Anything, admin, "r1", mock.Anything).
		Return(nil, domain.ErrRoomUnavailable)

	body := dto.AssignRoomsRequest{Rooms: []dto.BookingRequest{
		{RoomNumber: 101, StartDate: "2026-11-10T00:00:00Z", EndDate: "2026-11-12T00:00:00Z"},
	}}
	w := do(r, http.MethodPut, "/api/reservations/rooms/r1", body)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ListRooms(t *testing.T) {
	m, r := setupRouter(t, admin)

	m.allocation.EXPECT().ListRooms(mock.Anything, admin).Return([]*domain.Room{
		{Number: 101, Type: domain.RoomKind("Single")},
		{Number: 102, Type: domain.RoomKind("Double")},
	}, nil)

	w := do(r, http.MethodGet, "/api/reservations/rooms", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RoomResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, 102, resp[1].RoomNumber)
}

func TestHandler_AddRoom_Exists(t *testing.T) {
	m, r := setupRouter(t, admin)

	m.allocation.EXPECT().AddRoom(mock.Anything, admin, 101, domain.RoomKind("Single")).
		Return(nil, domain.ErrRoomExists)

	w := do(r, http.MethodPost, "/api/reservations/rooms", dto.AddRoomRequest{RoomNumber: 101, RoomType: "Single"})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_DeleteRoom(t *testing.T) {
	m, r := setupRouter(t, admin)

	m.allocation.EXPECT().DeleteRoom(mock.Anything, admin, 101).Return(nil)

	w := do(r, http.MethodDelete, "/api/reservations/rooms/101", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_DeleteRoom_InvalidNumber(t *testing.T) {
	_, r := setupRouter(t, admin)

	w := do(r, http.MethodDelete, "/api/reservations/rooms/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Lifecycle ---

func TestHandler_CheckOut_WithDate(t *testing.T) {
	m, r := setupRouter(t, admin)

	res := reservation(domain.StatusApproved)
	res.CheckedOut = true
	m.lifecycle.EXPECT().CheckOut(mock.Anything, admin, res.ID, mock.MatchedBy(func(d *time.Time) bool {
		return d != nil && d.Equal(time.Date(2026, 11, 12, 11, 0, 0, 0, time.UTC))
	})).Return(res, nil)

	w := do(r, http.MethodPut, "/api/reservations/checkout/"+res.ID, dto.StayDateRequest{Date: "2026-11-12"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.CheckedOut)
}

func TestHandler_CheckOut_PaymentPending(t *testing.T) {
	m, r := setupRouter(t, admin)

	m.lifecycle.EXPECT().CheckOut(mock.Anything, admin, "r1", (*time.Time)(nil)).
		Return(nil, domain.ErrPaymentPending)

	w := do(r, http.MethodPut, "/api/reservations/checkout/r1", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_UpdatePayment_BadStatus(t *testing.T) {
	_, r := setupRouter(t, cashier)

	w := do(r, http.MethodPut, "/api/reservations/payment/r1", []byte(`{"status":"REFUNDED"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdatePayment_Success(t *testing.T) {
	m, r := setupRouter(t, cashier)

	res := reservation(domain.StatusApproved)
	m.lifecycle.EXPECT().UpdatePayment(mock.Anything, cashier, res.ID, domain.PaymentUpdate{
		Status: domain.PaymentPaid, Amount: 4000, Method: "UPI",
	}).Return(res, nil)

	w := do(r, http.MethodPut, "/api/reservations/payment/"+res.ID, dto.PaymentRequest{
		Status: "PAID", Amount: 4000, Method: "UPI",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Withdraw_AlreadyBooked(t *testing.T) {
	m, r := setupRouter(t, guest)

	m.lifecycle.EXPECT().Withdraw(mock.Anything, guest, "r1").Return(domain.ErrAlreadyBooked)

	w := do(r, http.MethodDelete, "/api/reservations/withdraw/r1", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t, admin)

	user := &domain.User{ID: uuid.New().String(), Email: "hod@iitrpr.ac.in", Name: "Hod", Role: "HOD COMPUTER SCIENCE"}
	m.users.EXPECT().Create(mock.Anything, admin, mock.MatchedBy(func(in domain.CreateUserInput) bool {
		return in.Email == "hod@iitrpr.ac.in" && in.Role == "HOD COMPUTER SCIENCE"
	})).Return(user, nil)

	w := do(r, http.MethodPost, "/api/users", dto.CreateUserRequest{
		Email: "hod@iitrpr.ac.in", Name: "Hod", Role: "HOD COMPUTER SCIENCE",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "HOD COMPUTER SCIENCE", resp.Role)
}

func TestHandler_CreateUser_EmailTaken(t *testing.T) {
	m, r := setupRouter(t, admin)

	m.users.EXPECT().Create(mock.Anything, admin, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := do(r, http.MethodPost, "/api/users", dto.CreateUserRequest{Email: "x@iitrpr.ac.in", Name: "X", Role: "USER"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Notifications(t *testing.T) {
	m, r := setupRouter(t, guest)

	m.users.EXPECT().Notifications(mock.Anything, guest).Return([]*domain.Notification{
		{ID: "n1", Message: "Approved", Sender: "ADMIN", ReservationID: "r1"},
	}, nil)

	w := do(r, http.MethodGet, "/api/users/me/notifications", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.NotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "r1", resp[0].ReservationID)
}

func TestHandler_SendNotification(t *testing.T) {
	m, r := setupRouter(t, cashier)

	m.users.EXPECT().
		SendNotification(mock.Anything, cashier, "guest@iitrpr.ac.in", "Please clear your dues", "r1").
		Return(&domain.Notification{ID: "n1", Message: "Please clear your dues", Sender: "CASHIER", ReservationID: "r1"}, nil)

	w := do(r, http.MethodPost, "/api/reservations/notification/guest@iitrpr.ac.in", dto.SendNotificationRequest{
		Message:       "Please clear your dues",
		ReservationID: "r1",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.NotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "CASHIER", resp.Sender)
	assert.Equal(t, "r1", resp.ReservationID)
}

func TestHandler_SendNotification_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   any
		err    error
		status int
	}{
		{"missing message", []byte(`{"res_id":"r1"}`), nil, http.StatusBadRequest},
		{"guest caller", dto.SendNotificationRequest{Message: "hi"}, domain.ErrForbidden, http.StatusForbidden},
		{"unknown user", dto.SendNotificationRequest{Message: "hi"}, domain.ErrUserNotFound, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, r := setupRouter(t, guest)
			if tt.err != nil {
				m.users.EXPECT().SendNotification(mock.Anything, guest, "nobody@iitrpr.ac.in", "hi", "").Return(nil, tt.err)
			}

			w := do(r, http.MethodPost, "/api/reservations/notification/nobody@iitrpr.ac.in", tt.body)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	m, r := setupRouter(t, guest)

	m.users.EXPECT().Me(mock.Anything, guest).Return(nil, assert.AnError)

	w := do(r, http.MethodGet, "/api/users/me", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), assert.AnError.Error())
}
