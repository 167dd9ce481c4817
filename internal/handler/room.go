package handler

import (
	"errors"
	"net/http"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

// AssignRooms replaces the reservation's room set. A short assignment is
// committed and reported as 409 with the updated reservation.
func (h *Handler) AssignRooms(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.AssignRoomsRequest
	if !bindJSON(c, &req) {
		return
	}
	reqs := make([]domain.BookingRequest, 0, len(req.Rooms))
	for _, r := range req.Rooms {
		b, err := r.ToDomain()
		if err != nil {
			h.handleError(c, err)
			return
		}
		reqs = append(reqs, b)
	}

	res, err := h.allocation.AssignRooms(c.Request.Context(), p, c.Param("id"), reqs)
	if errors.Is(err, domain.ErrInsufficientRooms) && res != nil {
		c.JSON(http.StatusConflict, dto.InsufficientRoomsResponse{
			Error:       err.Error(),
			Reservation: dto.ToReservationResponse(res),
		})
		return
	}
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) UnassignRoom(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.UnassignRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.allocation.UnassignRoom(c.Request.Context(), p, c.Param("id"), req.RoomNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) EditBooking(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.EditBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	upd, err := req.ToDomain()
	if err != nil {
		h.handleError(c, err)
		return
	}

	res, err := h.allocation.EditBooking(c.Request.Context(), p, c.Param("id"), req.RoomNumber, upd)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) ListRooms(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	rooms, err := h.allocation.ListRooms(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		resp = append(resp, dto.ToRoomResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddRoom(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.AddRoomRequest
	if !bindJSON(c, &req) {
		return
	}

	room, err := h.allocation.AddRoom(c.Request.Context(), p, req.RoomNumber, domain.RoomKind(req.RoomType))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoomResponse(room))
}

func (h *Handler) DeleteRoom(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	number, ok := intParam(c, "number")
	if !ok {
		return
	}

	if err := h.allocation.DeleteRoom(c.Request.Context(), p, number); err != nil {
		h.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
