package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/arnavb2004/Guest-House-Portal/internal/service/ports"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const reservationColumns = `id, guest_email, by_admin, guest_name, guest_gender, address, purpose,
	number_of_guests, number_of_rooms, room_type, category, arrival_date, departure_date,
	applicant, signature, payment_source, payment_source_name, payment_amount, payment_status,
	payment_method, payment_transaction_id, reviewers, status, steps_completed, files,
	receipt_id, checked_in, checked_out, admin_annotation, created_at, updated_at`

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	doc, err := encodeDocuments(res)
	if err != nil {
		return err
	}

	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			          $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		res.ID, res.GuestEmail, res.ByAdmin, res.GuestName, res.GuestGender, res.Address, res.Purpose,
		res.NumberOfGuests, res.NumberOfRooms, res.RoomType, res.Category, res.ArrivalDate, res.DepartureDate,
		doc.applicant, doc.signature, res.Payment.Source, res.Payment.SourceName, res.Payment.Amount, res.Payment.Status,
		res.Payment.Method, res.Payment.TransactionID, doc.reviewers, res.Status, res.StepsCompleted, doc.files,
		res.ReceiptID, res.CheckedIn, res.CheckedOut, doc.annotation, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}

	bookings, err := loadBookings(ctx, r.db.Master, []string{res.ID})
	if err != nil {
		return nil, err
	}
	res.Bookings = bookings[res.ID]

	return res, nil
}

func (r *ReservationRepository) List(ctx context.Context, f domain.ReservationFilter) ([]*domain.Reservation, error) {
	where, args := buildFilter(f)
	query := `SELECT ` + reservationColumns + ` FROM reservations` + where + ` ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	var ids []string
	for rows.Next() {
		item, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, item)
		ids = append(ids, item.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reservations: %w", err)
	}
	if len(ids) == 0 {
		return res, nil
	}

	bookings, err := loadBookings(ctx, r.db.Master, ids)
	if err != nil {
		return nil, err
	}
	for _, item := range res {
		item.Bookings = bookings[item.ID]
	}

	return res, nil
}

func (r *ReservationRepository) Update(ctx context.Context, id string, fn ports.MutateFunc) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := r.lock(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err = fn(res); err != nil {
		return nil, err
	}
	res.UpdatedAt = time.Now().UTC()

	doc, err := encodeDocuments(res)
	if err != nil {
		return nil, err
	}

	query := `UPDATE reservations SET
				guest_name = $2, guest_gender = $3, address = $4, purpose = $5,
				number_of_guests = $6, number_of_rooms = $7, room_type = $8, category = $9,
				arrival_date = $10, departure_date = $11, applicant = $12, signature = $13,
				payment_source = $14, payment_source_name = $15, payment_amount = $16,
				payment_status = $17, payment_method = $18, payment_transaction_id = $19,
				reviewers = $20, status = $21, steps_completed = $22, files = $23,
				receipt_id = $24, checked_in = $25, checked_out = $26, admin_annotation = $27,
				updated_at = $28
			  WHERE id = $1`
	if _, err = tx.ExecContext(
		ctx, query, res.ID,
		res.GuestName, res.GuestGender, res.Address, res.Purpose,
		res.NumberOfGuests, res.NumberOfRooms, res.RoomType, res.Category,
		res.ArrivalDate, res.DepartureDate, doc.applicant, doc.signature,
		res.Payment.Source, res.Payment.SourceName, res.Payment.Amount,
		res.Payment.Status, res.Payment.Method, res.Payment.TransactionID,
		doc.reviewers, res.Status, res.StepsCompleted, doc.files,
		res.ReceiptID, res.CheckedIn, res.CheckedOut, doc.annotation,
		res.UpdatedAt,
	); err != nil {
		return nil, fmt.Errorf("update reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string, check func(*domain.Reservation) error) (*domain.Reservation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := r.lock(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	if err = check(res); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id); err != nil {
		return nil, fmt.Errorf("delete reservation: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}

	return res, nil
}

func (r *ReservationRepository) DeleteMany(ctx context.Context, ids []string) (int, error) {
	result, err := r.db.ExecWithRetry(ctx, r.strategy,
		`DELETE FROM reservations WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("delete reservations: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reservations rows affected: %w", err)
	}

	return int(n), nil
}

// lock reads the reservation row FOR UPDATE together with its bookings.
func (r *ReservationRepository) lock(ctx context.Context, tx *sql.Tx, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 FOR UPDATE`

	res, err := scanReservation(tx.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}

	bookings, err := loadBookings(ctx, tx, []string{id})
	if err != nil {
		return nil, err
	}
	res.Bookings = bookings[id]

	return res, nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func loadBookings(ctx context.Context, q querier, ids []string) (map[string][]domain.Booking, error) {
	query := `SELECT id, reservation_id, room_number, start_date, end_date, guest
			  FROM bookings
			  WHERE reservation_id = ANY($1)
			  ORDER BY room_number`

	rows, err := q.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	res := make(map[string][]domain.Booking, len(ids))
	for rows.Next() {
		var b domain.Booking
		if err = rows.Scan(&b.ID, &b.ReservationID, &b.RoomNumber, &b.StartDate, &b.EndDate, &b.User); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res[b.ReservationID] = append(res[b.ReservationID], b)
	}

	return res, rows.Err()
}

func buildFilter(f domain.ReservationFilter) (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, arg any) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.GuestEmail != "" {
		add("guest_email = $%d", f.GuestEmail)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.PaymentStatus != "" {
		add("payment_status = $%d", f.PaymentStatus)
	}
	if f.CheckedOut != nil {
		add("checked_out = $%d", *f.CheckedOut)
	}
	if f.DepartureFrom != nil {
		add("departure_date >= $%d", *f.DepartureFrom)
	}
	if f.DepartureBefore != nil {
		add("departure_date < $%d", *f.DepartureBefore)
	}
	if len(f.IDs) > 0 {
		add("id = ANY($%d)", pq.Array(f.IDs))
	}
	if f.ReviewerKind != "" {
		prefix := domain.Role{Kind: f.ReviewerKind}.String()
		args = append(args, prefix, prefix+" %")
		cond := fmt.Sprintf("(rv->>'role' = $%d OR rv->>'role' LIKE $%d)", len(args)-1, len(args))
		if f.ReviewerStatus != "" {
			args = append(args, f.ReviewerStatus)
			cond += fmt.Sprintf(" AND rv->>'status' = $%d", len(args))
		}
		conds = append(conds, "EXISTS (SELECT 1 FROM jsonb_array_elements(reviewers) rv WHERE "+cond+")")
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// documents holds the JSONB columns as text; pq sends []byte as bytea.
type documents struct {
	applicant  string
	signature  string
	reviewers  string
	files      string
	annotation sql.NullString
}

func encodeDocuments(res *domain.Reservation) (documents, error) {
	var doc documents

	applicant, err := json.Marshal(res.Applicant)
	if err != nil {
		return doc, fmt.Errorf("encode applicant: %w", err)
	}
	signature, err := json.Marshal(res.Signature)
	if err != nil {
		return doc, fmt.Errorf("encode signature: %w", err)
	}
	reviewers := res.Reviewers
	if reviewers == nil {
		reviewers = []domain.Reviewer{}
	}
	reviewersJSON, err := json.Marshal(reviewers)
	if err != nil {
		return doc, fmt.Errorf("encode reviewers: %w", err)
	}
	files := res.Files
	if files == nil {
		files = []domain.FileRef{}
	}
	filesJSON, err := json.Marshal(files)
	if err != nil {
		return doc, fmt.Errorf("encode files: %w", err)
	}
	if res.AdminAnnotation != nil {
		note, err := json.Marshal(res.AdminAnnotation)
		if err != nil {
			return doc, fmt.Errorf("encode annotation: %w", err)
		}
		doc.annotation = sql.NullString{String: string(note), Valid: true}
	}

	doc.applicant = string(applicant)
	doc.signature = string(signature)
	doc.reviewers = string(reviewersJSON)
	doc.files = string(filesJSON)
	return doc, nil
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		res                                          domain.Reservation
		applicant, signature, reviewers, files, note []byte
	)
	if err := row.Scan(
		&res.ID, &res.GuestEmail, &res.ByAdmin, &res.GuestName, &res.GuestGender, &res.Address, &res.Purpose,
		&res.NumberOfGuests, &res.NumberOfRooms, &res.RoomType, &res.Category, &res.ArrivalDate, &res.DepartureDate,
		&applicant, &signature, &res.Payment.Source, &res.Payment.SourceName, &res.Payment.Amount, &res.Payment.Status,
		&res.Payment.Method, &res.Payment.TransactionID, &reviewers, &res.Status, &res.StepsCompleted, &files,
		&res.ReceiptID, &res.CheckedIn, &res.CheckedOut, &note, &res.CreatedAt, &res.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	if err := json.Unmarshal(applicant, &res.Applicant); err != nil {
		return nil, fmt.Errorf("decode applicant: %w", err)
	}
	if err := json.Unmarshal(signature, &res.Signature); err != nil {
		return nil, fmt.Errorf("decode signature: %w", err)
	}
	if err := json.Unmarshal(reviewers, &res.Reviewers); err != nil {
		return nil, fmt.Errorf("decode reviewers: %w", err)
	}
	if err := json.Unmarshal(files, &res.Files); err != nil {
		return nil, fmt.Errorf("decode files: %w", err)
	}
	if len(note) > 0 {
		res.AdminAnnotation = &domain.AdminAnnotation{}
		if err := json.Unmarshal(note, res.AdminAnnotation); err != nil {
			return nil, fmt.Errorf("decode annotation: %w", err)
		}
	}

	return &res, nil
}
