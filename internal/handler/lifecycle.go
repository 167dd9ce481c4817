package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Withdraw(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	if err := h.lifecycle.Withdraw(c.Request.Context(), p, c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "withdrawn"})
}

// stayDate reads the optional date body of check-in and check-out.
func stayDate(c *ginext.Context, def string) (*time.Time, error) {
	var req dto.StayDateRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return nil, errors.Join(domain.ErrValidation, err)
		}
	}
	if req.Date == "" {
		return nil, nil
	}
	t, err := dto.ParseInstant(req.Date, req.Time, def)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (h *Handler) CheckIn(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	arrival, err := stayDate(c, domain.DefaultArrivalClock)
	if err != nil {
		h.handleError(c, err)
		return
	}

	res, err := h.lifecycle.CheckIn(c.Request.Context(), p, c.Param("id"), arrival)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) CheckOut(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	departure, err := stayDate(c, domain.DefaultDepartureClock)
	if err != nil {
		h.handleError(c, err)
		return
	}

	res, err := h.lifecycle.CheckOut(c.Request.Context(), p, c.Param("id"), departure)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) Edit(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.EditRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		h.handleError(c, err)
		return
	}

	res, err := h.lifecycle.Edit(c.Request.Context(), p, c.Param("id"), in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) UpdatePayment(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.PaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.lifecycle.UpdatePayment(c.Request.Context(), p, c.Param("id"), req.ToDomain())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}
