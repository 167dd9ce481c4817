package repository

import (
	"context"
	"fmt"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ChargeRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewChargeRepo(db *dbpg.DB) *ChargeRepository {
	return &ChargeRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ChargeRepository) ListByReservation(ctx context.Context, reservationID string) ([]*domain.DiningCharge, error) {
	query := `SELECT id, reservation_id, amount, payment_status
			  FROM dining_charges
			  WHERE reservation_id = $1
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, reservationID)
	if err != nil {
		return nil, fmt.Errorf("list dining charges: %w", err)
	}
	defer rows.Close()

	var res []*domain.DiningCharge
	for rows.Next() {
		var c domain.DiningCharge
		if err = rows.Scan(&c.ID, &c.ReservationID, &c.Amount, &c.PaymentStatus); err != nil {
			return nil, fmt.Errorf("scan dining charge: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
