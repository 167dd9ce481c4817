package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/rulebook"
	"github.com/arnavb2004/Guest-House-Portal/internal/service/ports"
	"github.com/google/uuid"
)

type UserService struct {
	repo  ports.UserRepo
	rules *rulebook.Rulebook
}

func NewUserService(repo ports.UserRepo, rules *rulebook.Rulebook) *UserService {
	return &UserService{repo: repo, rules: rules}
}

// Create registers an account. Only admins create accounts, and the role
// must be a staff role or an authority from the catalog.
func (s *UserService) Create(ctx context.Context, p domain.Principal, input domain.CreateUserInput) (*domain.User, error) {
	if !p.Is(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	role := domain.ParseRole(input.Role)
	switch role.Kind {
	case domain.RoleUser, domain.RoleAdmin, domain.RoleCashier:
		if role.Qualifier != "" {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
		}
	default:
		if !s.rules.KnownAuthority(role) {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
		}
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Email:          strings.ToLower(input.Email),
		Name:           input.Name,
		Role:           role.String(),
		Contact:        input.Contact,
		Department:     input.Department,
		Designation:    input.Designation,
		Ecode:          input.Ecode,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) Me(ctx context.Context, p domain.Principal) (*domain.User, error) {
	return s.repo.GetByEmail(ctx, p.Email)
}

func (s *UserService) List(ctx context.Context, p domain.Principal) ([]*domain.User, error) {
	if !p.Is(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *UserService) Notifications(ctx context.Context, p domain.Principal) ([]*domain.Notification, error) {
	return s.repo.ListNotifications(ctx, p.Email)
}

// SendNotification pushes a message from a reviewer or staff member into
// the inbox of the user with the given e-mail.
func (s *UserService) SendNotification(ctx context.Context, p domain.Principal, email, message, reservationID string) (*domain.Notification, error) {
	if p.Is(domain.RoleUser) {
		return nil, domain.ErrForbidden
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrValidation)
	}

	user, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return nil, err
	}

	n := &domain.Notification{
		ID:            uuid.New().String(),
		UserEmail:     user.Email,
		Message:       message,
		Sender:        p.ParsedRole().String(),
		ReservationID: reservationID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.AddNotification(ctx, n); err != nil {
		return nil, fmt.Errorf("add notification: %w", err)
	}

	return n, nil
}
