package handler

import (
	"net/http"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateUser(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	input := domain.CreateUserInput{
		Email:          req.Email,
		Name:           req.Name,
		Role:           req.Role,
		Contact:        req.Contact,
		Department:     req.Department,
		Designation:    req.Designation,
		Ecode:          req.Ecode,
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.users.Create(c.Request.Context(), p, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	users, err := h.users.List(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Me(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	user, err := h.users.Me(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) Notifications(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	list, err := h.users.Notifications(c.Request.Context(), p)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(list))
	for _, n := range list {
		resp = append(resp, dto.ToNotificationResponse(n))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) SendNotification(c *ginext.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req dto.SendNotificationRequest
	if !bindJSON(c, &req) {
		return
	}

	n, err := h.users.SendNotification(c.Request.Context(), p, c.Param("email"), req.Message, req.ReservationID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToNotificationResponse(n))
}
