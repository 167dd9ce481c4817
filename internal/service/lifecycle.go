package service

import (
	"context"
	"fmt"
	"time"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/rulebook"
	"github.com/arnavb2004/Guest-House-Portal/internal/service/ports"
	"github.com/arnavb2004/Guest-House-Portal/internal/workflow"
	"github.com/wb-go/wbf/logger"
)

// LifecycleService drives a reservation after submission: guest edits,
// withdrawal, payment, check-in and check-out.
type LifecycleService struct {
	repo        ports.ReservationRepo
	users       ports.UserRepo
	charges     ports.ChargeRepo
	ledger      ports.Ledger
	rules       *rulebook.Rulebook
	chain       *workflow.ChainBuilder
	dispatch    *Dispatcher
	emailDomain string
	logger      logger.Logger
	now         func() time.Time
}

func NewLifecycleService(
	repo ports.ReservationRepo,
	users ports.UserRepo,
	charges ports.ChargeRepo,
	ledger ports.Ledger,
	rules *rulebook.Rulebook,
	dispatch *Dispatcher,
	emailDomain string,
	logger logger.Logger,
) *LifecycleService {
	return &LifecycleService{
		repo:        repo,
		users:       users,
		charges:     charges,
		ledger:      ledger,
		rules:       rules,
		chain:       workflow.NewChainBuilder(rules),
		dispatch:    dispatch,
		emailDomain: emailDomain,
		logger:      logger,
		now:         time.Now,
	}
}

// Withdraw deletes a reservation that has no rooms booked yet.
func (s *LifecycleService) Withdraw(ctx context.Context, p domain.Principal, id string) error {
	res, err := s.repo.Delete(ctx, id, func(res *domain.Reservation) error {
		if !res.OwnedBy(p.Email) && !p.Is(domain.RoleAdmin) {
			return domain.ErrForbidden
		}
		if len(res.Bookings) > 0 {
			return domain.ErrAlreadyBooked
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("withdraw reservation: %w", err)
	}

	s.logger.Info("reservation withdrawn",
		logger.String("reservation_id", id),
		logger.String("by", p.Email),
	)

	var effects []workflow.Effect
	if !res.Status.Settled() {
		effects = append(effects, workflow.AdjustPending{Email: res.GuestEmail, Delta: -1})
	}
	effects = append(effects, workflow.Notify{Message: domain.Message{
		To:      []string{res.GuestEmail},
		Subject: "Reservation withdrawn Request",
		HTML:    "<div>Your reservation has been withdrawn.</div><br><br>" + summaryHTML(res),
	}})
	s.dispatch.Apply(ctx, effects)

	return nil
}

// CheckIn marks the guest as arrived, optionally moving the arrival date,
// and re-bills the stay.
func (s *LifecycleService) CheckIn(ctx context.Context, p domain.Principal, id string, arrival *time.Time) (*domain.Reservation, error) {
	if !p.Is(domain.RoleCashier) {
		return nil, domain.ErrForbidden
	}

	res, err := s.repo.Update(ctx, id, func(res *domain.Reservation) error {
		if arrival != nil {
			res.ArrivalDate = *arrival
		}
		res.CheckedIn = true
		res.Payment.Amount = stayCost(s.rules, res)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("check in: %w", err)
	}

	s.logger.Info("guest checked in",
		logger.String("reservation_id", id),
		logger.Int("amount", res.Payment.Amount),
	)

	return res, nil
}

// CheckOut closes the stay. The room payment and every dining charge must
// be settled; otherwise nothing changes.
func (s *LifecycleService) CheckOut(ctx context.Context, p domain.Principal, id string, departure *time.Time) (*domain.Reservation, error) {
	if !p.Is(domain.RoleCashier) {
		return nil, domain.ErrForbidden
	}

	charges, err := s.charges.ListByReservation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list dining charges: %w", err)
	}
	dining := 0
	for _, c := range charges {
		if c.PaymentStatus != domain.PaymentPaid {
			return nil, fmt.Errorf("%w: dining charges outstanding", domain.ErrPaymentPending)
		}
		dining += c.Amount
	}

	res, err := s.repo.Update(ctx, id, func(res *domain.Reservation) error {
		if res.Payment.Status != domain.PaymentPaid {
			return domain.ErrPaymentPending
		}
		if departure != nil {
			res.DepartureDate = *departure
		}
		res.CheckedOut = true
		res.Payment.Amount = stayCost(s.rules, res)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("check out: %w", err)
	}

	s.logger.Info("guest checked out",
		logger.String("reservation_id", id),
		logger.Int("amount", res.Payment.Amount),
		logger.Int("dining_amount", dining),
	)

	go s.appendLedger(context.WithoutCancel(ctx), ledgerEntry(res, dining, s.now().UTC()))

	return res, nil
}

func (s *LifecycleService) appendLedger(ctx context.Context, entry *domain.LedgerEntry) {
	if err := s.ledger.AppendCheckout(ctx, entry); err != nil {
		s.logger.Error("failed to append checkout ledger",
			logger.String("reservation_id", entry.ReservationID),
			logger.String("error", err.Error()),
		)
	}
}

// Edit is a guest re-submission under the same id: every reviewer starts
// over, uploaded files are added to the existing ones and the stay is
// re-billed.
func (s *LifecycleService) Edit(ctx context.Context, p domain.Principal, id string, in domain.EditInput) (*domain.Reservation, error) {
	var effects []workflow.Effect
	res, err := s.repo.Update(ctx, id, func(res *domain.Reservation) error {
		if !res.OwnedBy(p.Email) {
			return domain.ErrForbidden
		}
		if in.Category != "" && in.Category != res.Category && in.Reviewers == "" {
			return fmt.Errorf("%w: reviewers are required when the category changes", domain.ErrValidation)
		}
		if err := s.applyEdit(res, in); err != nil {
			return err
		}

		reviewers, err := s.chain.Rebuild(res.Category, res.Reviewers, in.Reviewers, in.Subroles)
		if err != nil {
			return err
		}

		before := res.Status
		res.Reviewers = reviewers
		res.Status = domain.StatusPending
		res.StepsCompleted = domain.StepSubmitted
		res.Payment.Status = domain.PaymentPending
		res.Payment.Amount = stayCost(s.rules, res)

		effects = workflow.StatusChanged(res, before, p.Role, workflow.EditedComment)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("edit reservation: %w", err)
	}

	s.logger.Info("reservation edited",
		logger.String("reservation_id", id),
		logger.String("guest_email", res.GuestEmail),
	)

	s.dispatch.Apply(ctx, effects)
	s.dispatch.Notify(ctx, domain.Message{
		To:      recipients(ctx, s.users, s.logger, res),
		Subject: "Reservation Request Edited",
		HTML:    "<div>A reservation request has been edited by the guest.</div><br><br>" + summaryHTML(res),
	})

	return res, nil
}

func (s *LifecycleService) applyEdit(res *domain.Reservation, in domain.EditInput) error {
	mergeString(&res.GuestName, in.GuestName)
	mergeString(&res.GuestGender, in.GuestGender)
	mergeString(&res.Address, in.Address)
	mergeString(&res.Purpose, in.Purpose)
	if in.NumberOfGuests > 0 {
		res.NumberOfGuests = in.NumberOfGuests
	}
	if in.NumberOfRooms > 0 {
		res.NumberOfRooms = in.NumberOfRooms
	}
	if in.RoomType != "" {
		if !in.RoomType.Valid() {
			return fmt.Errorf("%w: unknown room type %q", domain.ErrValidation, in.RoomType)
		}
		res.RoomType = in.RoomType
	}
	if in.Category != "" {
		res.Category = in.Category
	}
	category, ok := s.rules.Category(res.Category)
	if !ok {
		return fmt.Errorf("%w: unknown category %q", domain.ErrValidation, res.Category)
	}

	if in.ArrivalDate != nil {
		res.ArrivalDate = *in.ArrivalDate
	}
	if in.DepartureDate != nil {
		res.DepartureDate = *in.DepartureDate
	}
	if err := validateStay(res.ArrivalDate, res.DepartureDate); err != nil {
		return err
	}

	if in.Applicant != nil {
		if err := validateStruct(*in.Applicant); err != nil {
			return err
		}
		if err := validateEmailDomain(in.Applicant.Email, s.emailDomain); err != nil {
			return err
		}
		res.Applicant = *in.Applicant
	}
	if in.Signature != nil {
		res.Signature = *in.Signature
	}

	if in.Source != "" {
		res.Payment.Source = in.Source
		res.Payment.SourceName = in.SourceName
	}
	if err := validatePayment(res.Payment.Source, res.Payment.SourceName); err != nil {
		return err
	}

	res.Files = append(res.Files, in.Files...)
	if category.RequiresDocuments && len(res.Files) == 0 {
		return fmt.Errorf("%w: %s requires at least one supporting document", domain.ErrValidation, res.Category)
	}
	mergeString(&res.ReceiptID, in.ReceiptID)

	return nil
}

// UpdatePayment records the payment outcome. A paid, approved reservation
// reaches the last progress step.
func (s *LifecycleService) UpdatePayment(ctx context.Context, p domain.Principal, id string, upd domain.PaymentUpdate) (*domain.Reservation, error) {
	if !p.Is(domain.RoleAdmin) && !p.Is(domain.RoleCashier) {
		return nil, domain.ErrForbidden
	}
	if err := validateStruct(upd); err != nil {
		return nil, err
	}

	res, err := s.repo.Update(ctx, id, func(res *domain.Reservation) error {
		res.Payment.Status = upd.Status
		res.Payment.Amount = upd.Amount
		res.Payment.Method = upd.Method
		res.Payment.TransactionID = upd.TransactionID
		if res.Payment.Status == domain.PaymentPaid && res.Status == domain.StatusApproved {
			res.StepsCompleted = domain.StepPaid
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	s.logger.Info("payment updated",
		logger.String("reservation_id", id),
		logger.String("status", string(upd.Status)),
	)

	return res, nil
}

func ledgerEntry(res *domain.Reservation, dining int, at time.Time) *domain.LedgerEntry {
	rooms := make([]int, 0, len(res.Bookings))
	for _, b := range res.Bookings {
		rooms = append(rooms, b.RoomNumber)
	}
	return &domain.LedgerEntry{
		ReservationID: res.ID,
		GuestName:     res.GuestName,
		GuestEmail:    res.GuestEmail,
		Category:      res.Category,
		RoomType:      res.RoomType,
		Rooms:         rooms,
		ArrivalDate:   res.ArrivalDate,
		DepartureDate: res.DepartureDate,
		Amount:        res.Payment.Amount,
		DiningAmount:  dining,
		Source:        res.Payment.Source,
		SourceName:    res.Payment.SourceName,
		CheckedOutAt:  at,
	}
}
