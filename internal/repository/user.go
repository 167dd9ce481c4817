package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const userColumns = `id, email, name, role, contact, department, designation, ecode,
	telegram_chat_id, pending_request, created_at`

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (` + userColumns + `)
 			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.Email, user.Name, user.Role, user.Contact, user.Department,
		user.Designation, user.Ecode, user.TelegramChatID, user.PendingRequest, user.CreatedAt,
	)
	if err != nil {
		if pgCode(err) == pgUniqueViolation {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY email`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

func (r *UserRepository) EmailsByRoles(ctx context.Context, roles []string) ([]string, error) {
	if len(roles) == 0 {
		return nil, nil
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy,
		`SELECT email FROM users WHERE role = ANY($1) ORDER BY email`, pq.Array(roles))
	if err != nil {
		return nil, fmt.Errorf("list emails by roles: %w", err)
	}
	defer rows.Close()

	var res []string
	for rows.Next() {
		var email string
		if err = rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan email: %w", err)
		}
		res = append(res, email)
	}

	return res, rows.Err()
}

// AdjustPendingRequests never lets the counter go below zero.
func (r *UserRepository) AdjustPendingRequests(ctx context.Context, email string, delta int) error {
	result, err := r.db.ExecWithRetry(ctx, r.strategy,
		`UPDATE users SET pending_request = GREATEST(pending_request + $2, 0) WHERE email = $1`,
		email, delta,
	)
	if err != nil {
		return fmt.Errorf("adjust pending requests: %w", err)
	}

	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("user rows affected: %w", err)
	}
	if n == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

func (r *UserRepository) AddNotification(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (id, user_email, message, sender, reservation_id, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	var resID sql.NullString
	if n.ReservationID != "" {
		resID = sql.NullString{String: n.ReservationID, Valid: true}
	}

	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		n.ID, n.UserEmail, n.Message, n.Sender, resID, n.CreatedAt)
	if err != nil {
		if pgCode(err) == pgForeignKeyViolation {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("insert notification: %w", err)
	}

	return nil
}

func (r *UserRepository) ListNotifications(ctx context.Context, email string) ([]*domain.Notification, error) {
	query := `SELECT id, user_email, message, sender, COALESCE(reservation_id::text, ''), created_at
			  FROM notifications
			  WHERE user_email = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, email)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var res []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err = rows.Scan(&n.ID, &n.UserEmail, &n.Message, &n.Sender, &n.ReservationID, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		res = append(res, &n)
	}

	return res, rows.Err()
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.Contact, &u.Department, &u.Designation, &u.Ecode,
		&u.TelegramChatID, &u.PendingRequest, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}
