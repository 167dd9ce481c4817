package repository

import (
	"context"
	"fmt"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type LedgerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewLedgerRepo(db *dbpg.DB) *LedgerRepository {
	return &LedgerRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *LedgerRepository) AppendCheckout(ctx context.Context, e *domain.LedgerEntry) error {
	rooms := make([]int64, 0, len(e.Rooms))
	for _, n := range e.Rooms {
		rooms = append(rooms, int64(n))
	}

	query := `INSERT INTO checkout_ledger (
				reservation_id, guest_name, guest_email, category, room_type, rooms,
				arrival_date, departure_date, amount, dining_amount,
				payment_source, payment_source_name, checked_out_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		e.ReservationID, e.GuestName, e.GuestEmail, e.Category, e.RoomType, pq.Array(rooms),
		e.ArrivalDate, e.DepartureDate, e.Amount, e.DiningAmount,
		e.Source, e.SourceName, e.CheckedOutAt,
	)
	if err != nil {
		return fmt.Errorf("append checkout ledger: %w", err)
	}

	return nil
}
