package ports

import (
	"context"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
)

type ChargeRepo interface {
	ListByReservation(ctx context.Context, reservationID string) ([]*domain.DiningCharge, error)
}

type Ledger interface {
	AppendCheckout(ctx context.Context, entry *domain.LedgerEntry) error
}
