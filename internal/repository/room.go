package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RoomRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRoomRepo(db *dbpg.DB) *RoomRepository {
	return &RoomRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (room_number, room_type) VALUES ($1, $2)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, room.Number, room.Type)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return domain.ErrRoomExists
		}
		return fmt.Errorf("insert room: %w", err)
	}

	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, number int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = lockRoom(ctx, tx, number); err != nil {
		return err
	}

	var bookings int
	if err = tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bookings WHERE room_number = $1`, number,
	).Scan(&bookings); err != nil {
		return fmt.Errorf("count room bookings: %w", err)
	}
	if bookings > 0 {
		return domain.ErrRoomOccupied
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM rooms WHERE room_number = $1`, number); err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrRoomOccupied
		}
		return fmt.Errorf("delete room: %w", err)
	}

	return tx.Commit()
}

func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT room_number, room_type FROM rooms ORDER BY room_number`)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var res []*domain.Room
	byNumber := make(map[int]*domain.Room)
	for rows.Next() {
		var room domain.Room
		if err = rows.Scan(&room.Number, &room.Type); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		res = append(res, &room)
		byNumber[room.Number] = &room
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rooms: %w", err)
	}

	query := `SELECT b.id, b.reservation_id, b.room_number, b.start_date, b.end_date, b.guest, r.purpose
			  FROM bookings b
			  JOIN reservations r ON r.id = b.reservation_id
			  ORDER BY b.start_date`
	brows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer brows.Close()

	for brows.Next() {
		var b domain.Booking
		if err = brows.Scan(&b.ID, &b.ReservationID, &b.RoomNumber, &b.StartDate, &b.EndDate, &b.User, &b.Purpose); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		if room, ok := byNumber[b.RoomNumber]; ok {
			room.Bookings = append(room.Bookings, b)
		}
	}

	return res, brows.Err()
}

func (r *RoomRepository) Assign(ctx context.Context, reservationID string, reqs []domain.BookingRequest) ([]domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockReservation(ctx, tx, reservationID); err != nil {
		return nil, err
	}

	held, err := loadBookings(ctx, tx, []string{reservationID})
	if err != nil {
		return nil, err
	}

	// Rooms are locked in ascending order so concurrent assignments cannot deadlock.
	numbers := make([]int, 0, len(reqs))
	for _, req := range reqs {
		numbers = append(numbers, req.RoomNumber)
	}
	sort.Ints(numbers)

	rooms := make(map[int]*domain.Room, len(numbers))
	for _, n := range numbers {
		if _, ok := rooms[n]; ok {
			continue
		}
		room, err := lockRoom(ctx, tx, n)
		if err != nil {
			return nil, err
		}
		rooms[n] = room
	}

	plan, err := domain.PlanAssignment(reservationID, held[reservationID], rooms, reqs)
	if err != nil {
		return nil, err
	}

	if len(plan.Release) > 0 {
		release := make([]int64, 0, len(plan.Release))
		for _, n := range plan.Release {
			release = append(release, int64(n))
		}
		if _, err = tx.ExecContext(ctx,
			`DELETE FROM bookings WHERE reservation_id = $1 AND room_number = ANY($2)`,
			reservationID, pq.Array(release),
		); err != nil {
			return nil, fmt.Errorf("release rooms: %w", err)
		}
	}

	upsert := `INSERT INTO bookings (id, reservation_id, room_number, start_date, end_date, guest)
			   VALUES ($1, $2, $3, $4, $5, $6)
			   ON CONFLICT (reservation_id, room_number)
			   DO UPDATE SET start_date = EXCLUDED.start_date, end_date = EXCLUDED.end_date, guest = EXCLUDED.guest`
	for _, b := range plan.Upsert {
		id := b.ID
		if id == "" {
			id = uuid.New().String()
		}
		if _, err = tx.ExecContext(ctx, upsert,
			id, reservationID, b.RoomNumber, b.StartDate, b.EndDate, b.User,
		); err != nil {
			if pgCode(err) == pgExclusionViolation {
				return nil, fmt.Errorf("%w: room %d", domain.ErrRoomUnavailable, b.RoomNumber)
			}
			return nil, fmt.Errorf("insert booking: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE reservations SET steps_completed = $2, updated_at = now() WHERE id = $1`,
		reservationID, domain.StepRoomsAssigned,
	); err != nil {
		return nil, fmt.Errorf("update reservation steps: %w", err)
	}

	bookings, err := loadBookings(ctx, tx, []string{reservationID})
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return bookings[reservationID], nil
}

func (r *RoomRepository) Unassign(ctx context.Context, reservationID string, roomNumber int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockReservation(ctx, tx, reservationID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM bookings WHERE reservation_id = $1 AND room_number = $2`,
		reservationID, roomNumber,
	)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrBookingNotFound
	}

	return tx.Commit()
}

func (r *RoomRepository) EditBooking(ctx context.Context, reservationID string, roomNumber int, upd domain.BookingUpdate) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if err = lockReservation(ctx, tx, reservationID); err != nil {
		return err
	}

	room, err := lockRoom(ctx, tx, roomNumber)
	if err != nil {
		return err
	}

	own := false
	for _, b := range room.Bookings {
		if b.ReservationID == reservationID {
			own = true
			break
		}
	}
	if !own {
		return domain.ErrBookingNotFound
	}

	if !room.IsRangeAvailable(upd.StartDate, upd.EndDate, reservationID) {
		return fmt.Errorf("%w: room %d", domain.ErrRoomUnavailable, roomNumber)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE bookings SET guest = $3, start_date = $4, end_date = $5
		 WHERE reservation_id = $1 AND room_number = $2`,
		reservationID, roomNumber, upd.User, upd.StartDate, upd.EndDate,
	); err != nil {
		if pgCode(err) == pgExclusionViolation {
			return fmt.Errorf("%w: room %d", domain.ErrRoomUnavailable, roomNumber)
		}
		return fmt.Errorf("update booking: %w", err)
	}

	return tx.Commit()
}

func lockReservation(ctx context.Context, tx *sql.Tx, id string) error {
	var locked string
	err := tx.QueryRowContext(ctx, `SELECT id FROM reservations WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("lock reservation: %w", err)
	}
	return nil
}

// lockRoom takes the room row lock and reads its current bookings.
func lockRoom(ctx context.Context, tx *sql.Tx, number int) (*domain.Room, error) {
	var room domain.Room
	err := tx.QueryRowContext(ctx,
		`SELECT room_number, room_type FROM rooms WHERE room_number = $1 FOR UPDATE`, number,
	).Scan(&room.Number, &room.Type)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: room %d", domain.ErrRoomNotFound, number)
		}
		return nil, fmt.Errorf("lock room: %w", err)
	}

	rows, err := tx.QueryContext(ctx,
		`SELECT id, reservation_id, room_number, start_date, end_date, guest
		 FROM bookings WHERE room_number = $1`, number)
	if err != nil {
		return nil, fmt.Errorf("list room bookings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.ReservationID, &b.RoomNumber, &b.StartDate, &b.EndDate, &b.User); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		room.Bookings = append(room.Bookings, b)
	}

	return &room, rows.Err()
}
