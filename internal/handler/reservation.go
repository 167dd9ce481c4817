package handler

import (
	"net/http"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/handler/dto"
	"github.com/arnavb2004/Guest-House-Portal/internal/workflow"
	"github.com/wb-go/wbf/ginext"
)

// Submit files a reservation. Admins are routed to the proxy path, which
// skips the category rule.
func (h *Handler) Submit(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.SubmitRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		h.handleError(c, err)
		return
	}

	submit := h.reservations.Submit
	if p.Is(domain.RoleAdmin) {
		submit = h.reservations.SubmitAsAdmin
	}
	res, err := submit(c.Request.Context(), p, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(res))
}

func (h *Handler) GetReservation(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	res, err := h.reservations.Get(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) ListAll(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	list, err := h.reservations.ListAll(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationList(list))
}

func (h *Handler) ListByStatus(status domain.Status) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}

		list, err := h.reservations.ListByStatus(c.Request.Context(), p, status)
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.ToReservationList(list))
	}
}

func (h *Handler) CashierList(view domain.CashierView) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}

		list, err := h.reservations.ListForCashier(c.Request.Context(), p, view)
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.ToReservationList(list))
	}
}

// Review handles approve, reject and hold.
func (h *Handler) Review(kind workflow.ActionKind) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		p, ok := principal(c)
		if !ok {
			return
		}

		var req dto.ReviewRequest
		if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
			return
		}
		comments := req.Comments
		if kind == workflow.ActionReject && req.Reason != "" {
			comments = req.Reason
		}

		res, err := h.reservations.Review(c.Request.Context(), p, c.Param("id"),
			workflow.Action{Kind: kind, Comments: comments})
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, dto.ToReservationResponse(res))
	}
}

func (h *Handler) UpdateAdminAnnotation(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.AnnotationRequest
	if !bindJSON(c, &req) {
		return
	}
	note, err := req.ToDomain()
	if err != nil {
		h.handleError(c, err)
		return
	}

	res, err := h.reservations.UpdateAdminAnnotation(c.Request.Context(), p, c.Param("id"), note)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) UpdateReceipt(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.ReceiptRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.reservations.UpdateReceipt(c.Request.Context(), p, c.Param("id"), req.ReceiptID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(res))
}

func (h *Handler) DeleteReservations(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.DeleteRequest
	if !bindJSON(c, &req) {
		return
	}

	n, err := h.reservations.DeleteMany(c.Request.Context(), p, req.IDs)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"deleted": n})
}

func (h *Handler) SendReminder(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.ReminderRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.reservations.SendReminder(c.Request.Context(), p, req.ID); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "sent"})
}

func (h *Handler) SendReminderAll(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	n, err := h.reservations.RemindAll(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"reminded": n})
}

func (h *Handler) DiningAmount(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	total, err := h.reservations.DiningAmount(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"amount": total})
}
