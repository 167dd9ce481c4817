package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/rulebook"
	"github.com/arnavb2004/Guest-House-Portal/internal/service/ports"
	"github.com/arnavb2004/Guest-House-Portal/internal/workflow"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	repo        ports.ReservationRepo
	users       ports.UserRepo
	charges     ports.ChargeRepo
	rules       *rulebook.Rulebook
	chain       *workflow.ChainBuilder
	dispatch    *Dispatcher
	emailDomain string
	logger      logger.Logger
	now         func() time.Time
}

func NewReservationService(
	repo ports.ReservationRepo,
	users ports.UserRepo,
	charges ports.ChargeRepo,
	rules *rulebook.Rulebook,
	dispatch *Dispatcher,
	emailDomain string,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		repo:        repo,
		users:       users,
		charges:     charges,
		rules:       rules,
		chain:       workflow.NewChainBuilder(rules),
		dispatch:    dispatch,
		emailDomain: emailDomain,
		logger:      logger,
		now:         time.Now,
	}
}

// Submit files a guest request. The reviewer selection must satisfy the
// category rule.
func (s *ReservationService) Submit(ctx context.Context, p domain.Principal, in domain.SubmitInput) (*domain.Reservation, error) {
	if p.Is(domain.RoleAdmin) {
		return nil, fmt.Errorf("%w: admins submit through the admin path", domain.ErrValidation)
	}
	if err := s.validateSubmit(in); err != nil {
		return nil, err
	}

	reviewers, err := s.chain.Build(in.Category, in.Reviewers, in.Subroles)
	if err != nil {
		return nil, err
	}

	return s.create(ctx, p, in, reviewers, false)
}

// SubmitAsAdmin files a request on behalf of a guest. The category rule is
// not applied to the reviewer selection.
func (s *ReservationService) SubmitAsAdmin(ctx context.Context, p domain.Principal, in domain.SubmitInput) (*domain.Reservation, error) {
	if !p.Is(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	if in.GuestName == "" {
		in.GuestName = string(domain.RoleAdmin)
	}
	if err := s.validateSubmit(in); err != nil {
		return nil, err
	}

	reviewers, err := s.chain.BuildForAdmin(in.Reviewers, in.Subroles)
	if err != nil {
		return nil, err
	}

	return s.create(ctx, p, in, reviewers, true)
}

func (s *ReservationService) validateSubmit(in domain.SubmitInput) error {
	if err := validateStruct(in); err != nil {
		return err
	}
	if strings.TrimSpace(in.GuestName) == "" {
		return fmt.Errorf("%w: guest name is required", domain.ErrValidation)
	}
	if in.ReceiptID == "" {
		return fmt.Errorf("%w: receipt file is required", domain.ErrValidation)
	}
	if !in.RoomType.Valid() {
		return fmt.Errorf("%w: unknown room type %q", domain.ErrValidation, in.RoomType)
	}
	if _, ok := s.rules.Category(in.Category); !ok {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, in.Category)
	}
	if err := validateStay(in.ArrivalDate, in.DepartureDate); err != nil {
		return err
	}
	if err := validatePayment(in.Source, in.SourceName); err != nil {
		return err
	}
	if err := validateStruct(in.Applicant); err != nil {
		return err
	}
	return validateEmailDomain(in.Applicant.Email, s.emailDomain)
}

func (s *ReservationService) create(
	ctx context.Context,
	p domain.Principal,
	in domain.SubmitInput,
	reviewers []domain.Reviewer,
	byAdmin bool,
) (*domain.Reservation, error) {
	now := s.now().UTC()
	res := &domain.Reservation{
		ID:             uuid.New().String(),
		GuestEmail:     p.Email,
		ByAdmin:        byAdmin,
		GuestName:      in.GuestName,
		GuestGender:    in.GuestGender,
		Address:        in.Address,
		Purpose:        in.Purpose,
		NumberOfGuests: in.NumberOfGuests,
		NumberOfRooms:  in.NumberOfRooms,
		RoomType:       in.RoomType,
		Category:       in.Category,
		ArrivalDate:    in.ArrivalDate,
		DepartureDate:  in.DepartureDate,
		Applicant:      in.Applicant,
		Signature:      in.Signature,
		Payment: domain.Payment{
			Source:     in.Source,
			SourceName: in.SourceName,
			Status:     domain.PaymentPending,
		},
		Reviewers:      reviewers,
		Status:         domain.StatusPending,
		StepsCompleted: domain.StepSubmitted,
		Files:          in.Files,
		ReceiptID:      in.ReceiptID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	res.Payment.Amount = stayCost(s.rules, res)

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation submitted",
		logger.String("reservation_id", res.ID),
		logger.String("guest_email", res.GuestEmail),
		logger.String("category", string(res.Category)),
		logger.Any("by_admin", byAdmin),
	)

	s.dispatch.Apply(ctx, []workflow.Effect{
		workflow.AdjustPending{Email: res.GuestEmail, Delta: 1},
	})
	s.dispatch.Notify(ctx, domain.Message{
		To:      s.withReviewerEmails(ctx, res),
		Subject: "New Reservation Request",
		HTML:    "<div>A new reservation request has been made.</div><br><br>" + summaryHTML(res),
	})

	return res, nil
}

// Review applies one reviewer decision. The reviewer list is re-read under
// the row lock so concurrent reviewers never overwrite each other.
func (s *ReservationService) Review(ctx context.Context, p domain.Principal, id string, action workflow.Action) (*domain.Reservation, error) {
	var effects []workflow.Effect
	res, err := s.repo.Update(ctx, id, func(res *domain.Reservation) error {
		var err error
		effects, err = workflow.Review(res, p, action)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s reservation: %w", action.Kind, err)
	}

	s.logger.Info("reservation reviewed",
		logger.String("reservation_id", id),
		logger.String("role", p.Role),
		logger.String("action", string(action.Kind)),
		logger.String("status", string(res.Status)),
	)

	s.dispatch.Apply(ctx, effects)

	return res, nil
}

func (s *ReservationService) Get(ctx context.Context, p domain.Principal, id string) (*domain.Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canView(res, p) {
		return nil, domain.ErrForbidden
	}
	return res, nil
}

// ListByStatus returns the reservations the principal is concerned with in
// the given state: the guest's own by overall status, a reviewer's by the
// state of their own entry.
func (s *ReservationService) ListByStatus(ctx context.Context, p domain.Principal, status domain.Status) ([]*domain.Reservation, error) {
	switch status {
	case domain.StatusPending, domain.StatusApproved, domain.StatusRejected, domain.StatusHold:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	role := p.ParsedRole()
	switch {
	case role.Kind == domain.RoleUser:
		return s.repo.List(ctx, domain.ReservationFilter{GuestEmail: p.Email, Status: status})

	case role.Kind == domain.RoleAdmin:
		return s.repo.List(ctx, domain.ReservationFilter{ReviewerKind: domain.RoleAdmin, ReviewerStatus: status})

	case role.IsAuthority():
		candidates, err := s.repo.List(ctx, domain.ReservationFilter{ReviewerKind: role.Kind, ReviewerStatus: status})
		if err != nil {
			return nil, err
		}
		res := make([]*domain.Reservation, 0, len(candidates))
		for _, r := range candidates {
			if rv := r.ReviewerFor(role); rv != nil && rv.Status == status {
				res = append(res, r)
			}
		}
		return res, nil
	}

	return nil, domain.ErrForbidden
}

func (s *ReservationService) ListAll(ctx context.Context, p domain.Principal) ([]*domain.Reservation, error) {
	if !p.Is(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx, domain.ReservationFilter{})
}

func (s *ReservationService) ListForCashier(ctx context.Context, p domain.Principal, view domain.CashierView) ([]*domain.Reservation, error) {
	if !p.Is(domain.RoleCashier) {
		return nil, domain.ErrForbidden
	}

	now := s.now().UTC()
	yes, no := true, false
	var f domain.ReservationFilter
	switch view {
	case domain.ViewCurrent:
		f = domain.ReservationFilter{Status: domain.StatusApproved, DepartureFrom: &now}
	case domain.ViewPaymentPending:
		f = domain.ReservationFilter{Status: domain.StatusApproved, PaymentStatus: domain.PaymentPending}
	case domain.ViewCheckedOut:
		f = domain.ReservationFilter{CheckedOut: &yes}
	case domain.ViewLateCheckout:
		f = domain.ReservationFilter{Status: domain.StatusApproved, DepartureBefore: &now, CheckedOut: &no}
	case domain.ViewCheckoutToday:
		y, m, d := now.Date()
		tomorrow := time.Date(y, m, d+1, 0, 0, 0, 0, time.UTC)
		f = domain.ReservationFilter{
			Status:          domain.StatusApproved,
			DepartureFrom:   &now,
			DepartureBefore: &tomorrow,
			CheckedOut:      &no,
		}
	default:
		return nil, fmt.Errorf("%w: unknown view %q", domain.ErrValidation, view)
	}

	return s.repo.List(ctx, f)
}

// UpdateAdminAnnotation merges the non-empty fields of note into the
// stored annotation.
func (s *ReservationService) UpdateAdminAnnotation(ctx context.Context, p domain.Principal, id string, note domain.AdminAnnotation) (*domain.Reservation, error) {
	if !p.Is(domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	return s.repo.Update(ctx, id, func(res *domain.Reservation) error {
		cur := res.AdminAnnotation
		if cur == nil {
			cur = &domain.AdminAnnotation{}
		}
		mergeString(&cur.ApprovalAttached, note.ApprovalAttached)
		mergeString(&cur.ConfirmedRoomNo, note.ConfirmedRoomNo)
		mergeString(&cur.EntrySerialNo, note.EntrySerialNo)
		mergeString(&cur.EntryPageNo, note.EntryPageNo)
		mergeString(&cur.CheckInTime, note.CheckInTime)
		mergeString(&cur.CheckOutTime, note.CheckOutTime)
		mergeString(&cur.Remarks, note.Remarks)
		if note.EntryDate != nil {
			cur.EntryDate = note.EntryDate
		}
		if note.BookingDate != nil {
			cur.BookingDate = note.BookingDate
		}
		cur.UpdatedAt = s.now().UTC()
		cur.UpdatedBy = p.Email
		res.AdminAnnotation = cur
		return nil
	})
}

func (s *ReservationService) UpdateReceipt(ctx context.Context, p domain.Principal, id, receiptID string) (*domain.Reservation, error) {
	if receiptID == "" {
		return nil, fmt.Errorf("%w: receipt file is required", domain.ErrValidation)
	}

	return s.repo.Update(ctx, id, func(res *domain.Reservation) error {
		if !res.OwnedBy(p.Email) && !p.Is(domain.RoleAdmin) {
			return domain.ErrForbidden
		}
		res.ReceiptID = receiptID
		return nil
	})
}

// DeleteMany removes reservations in bulk. Non-admins may only delete
// their own.
func (s *ReservationService) DeleteMany(ctx context.Context, p domain.Principal, ids []string) (int, error) {
	clean := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != "" && id != "#" {
			clean = append(clean, id)
		}
	}
	if len(clean) == 0 {
		return 0, fmt.Errorf("%w: no reservation ids given", domain.ErrValidation)
	}

	if !p.Is(domain.RoleAdmin) {
		found, err := s.repo.List(ctx, domain.ReservationFilter{IDs: clean})
		if err != nil {
			return 0, err
		}
		for _, res := range found {
			if !res.OwnedBy(p.Email) {
				return 0, domain.ErrForbidden
			}
		}
	}

	n, err := s.repo.DeleteMany(ctx, clean)
	if err != nil {
		return 0, err
	}

	s.logger.Info("reservations deleted",
		logger.Int("count", n),
		logger.String("by", p.Email),
	)

	return n, nil
}

func (s *ReservationService) SendReminder(ctx context.Context, p domain.Principal, id string) error {
	if !p.Is(domain.RoleAdmin) && !p.Is(domain.RoleCashier) {
		return domain.ErrForbidden
	}

	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	s.dispatch.Notify(ctx, paymentReminder(res))
	return nil
}

// RemindAll is the on-demand form of the periodic payment reminder sweep.
func (s *ReservationService) RemindAll(ctx context.Context, p domain.Principal) (int, error) {
	if !p.Is(domain.RoleAdmin) && !p.Is(domain.RoleCashier) {
		return 0, domain.ErrForbidden
	}
	return s.SendPaymentReminders(ctx)
}

// SendPaymentReminders reminds every approved guest whose payment is still
// pending and reports how many were reminded.
func (s *ReservationService) SendPaymentReminders(ctx context.Context) (int, error) {
	due, err := s.repo.List(ctx, domain.ReservationFilter{
		Status:        domain.StatusApproved,
		PaymentStatus: domain.PaymentPending,
	})
	if err != nil {
		return 0, fmt.Errorf("list unpaid reservations: %w", err)
	}

	for _, res := range due {
		s.dispatch.Notify(ctx, paymentReminder(res))
	}

	return len(due), nil
}

func (s *ReservationService) DiningAmount(ctx context.Context, p domain.Principal, id string) (int, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	if !res.OwnedBy(p.Email) && !p.Is(domain.RoleAdmin) && !p.Is(domain.RoleCashier) {
		return 0, domain.ErrForbidden
	}

	charges, err := s.charges.ListByReservation(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("list dining charges: %w", err)
	}

	total := 0
	for _, c := range charges {
		total += c.Amount
	}
	return total, nil
}

// withReviewerEmails is the guest address plus every account holding one
// of the reservation's reviewer roles. Lookup failures only shrink the list.
func (s *ReservationService) withReviewerEmails(ctx context.Context, res *domain.Reservation) []string {
	return recipients(ctx, s.users, s.logger, res)
}

func recipients(ctx context.Context, users ports.UserRepo, log logger.Logger, res *domain.Reservation) []string {
	roles := make([]string, 0, len(res.Reviewers))
	for _, r := range res.Reviewers {
		roles = append(roles, r.Role)
	}

	to := []string{res.GuestEmail}
	emails, err := users.EmailsByRoles(ctx, roles)
	if err != nil {
		log.Error("failed to resolve reviewer emails",
			logger.String("reservation_id", res.ID),
			logger.String("error", err.Error()),
		)
		return to
	}
	return append(to, emails...)
}

func canView(res *domain.Reservation, p domain.Principal) bool {
	if res.OwnedBy(p.Email) || p.Is(domain.RoleAdmin) || p.Is(domain.RoleCashier) {
		return true
	}
	return res.ReviewerFor(p.ParsedRole()) != nil
}

// stayCost bills the reservation's stay window at its category tariff.
func stayCost(rules *rulebook.Rulebook, res *domain.Reservation) int {
	days := domain.StayDays(res.ArrivalDate, res.DepartureDate)
	return rules.Cost(res.Category, res.RoomType, res.NumberOfRooms, days)
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
