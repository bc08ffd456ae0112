/**
 * @description
 * PostgreSQL implementation of the event store repositories, one repository
 * per aggregate family sharing a single pgx pool. Three append-only event
 * tables (user_events, account_events, transaction_events) plus the
 * authorized_users credential table back the whole service.
 *
 * Every read orders by occurred_at ascending; this is the store side of the
 * ordering contract the reducers rely on. Multi-event appends run inside a
 * single transaction so a command's event set is persisted atomically.
 *
 * @dependencies
 * - context, encoding/json, errors, fmt: Standard Go libraries.
 * - github.com/jackc/pgx/v5: The PostgreSQL driver for database operations.
 * - internal/domain: Event and entity models.
 */

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/corebank/ledger-service/internal/domain"
)

// appendAll runs fn inside a transaction so event sets append atomically.
func appendAll(ctx context.Context, db *pgxpool.Pool, fn func(tx pgx.Tx) error) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin append: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// --- User events ---

// PostgresUserRepository implements UserRepository.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const selectUserEvents = `
	SELECT event_type, occurred_at, user_id, user_name, data
	FROM user_events
`

func (r *PostgresUserRepository) GetEventsByUserID(ctx context.Context, userID string) ([]domain.UserEvent, error) {
	rows, err := r.db.Query(ctx, selectUserEvents+`WHERE user_id = $1 ORDER BY occurred_at ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("query user events: %w", err)
	}
	defer rows.Close()
	return scanUserEvents(rows)
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	events, err := r.GetEventsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user := domain.ReduceUser(events)
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (r *PostgresUserRepository) SaveUserEvents(ctx context.Context, events []domain.UserEvent) error {
	return appendAll(ctx, r.db, func(tx pgx.Tx) error {
		for _, ev := range events {
			data, err := json.Marshal(ev.Data)
			if err != nil {
				return fmt.Errorf("marshal user event data: %w", err)
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO user_events (event_type, occurred_at, user_id, user_name, data)
				 VALUES ($1, $2, $3, $4, $5)`,
				ev.Kind, ev.Timestamp, ev.UserID, ev.UserName, data)
			if err != nil {
				return fmt.Errorf("insert user event: %w", err)
			}
		}
		return nil
	})
}

func scanUserEvents(rows pgx.Rows) ([]domain.UserEvent, error) {
	var events []domain.UserEvent
	for rows.Next() {
		var ev domain.UserEvent
		var data []byte
		if err := rows.Scan(&ev.Kind, &ev.Timestamp, &ev.UserID, &ev.UserName, &data); err != nil {
			return nil, fmt.Errorf("scan user event: %w", err)
		}
		if err := json.Unmarshal(data, &ev.Data); err != nil {
			return nil, fmt.Errorf("unmarshal user event data: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// --- Account events ---

// PostgresAccountRepository implements AccountRepository.
type PostgresAccountRepository struct {
	db *pgxpool.Pool
}

func NewPostgresAccountRepository(db *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

const selectAccountEvents = `
	SELECT event_type, occurred_at, account_id, owner_id, branch_id, account_type, is_active, data
	FROM account_events
`

func (r *PostgresAccountRepository) GetEventsByAccountID(ctx context.Context, accountID string) ([]domain.AccountEvent, error) {
	rows, err := r.db.Query(ctx, selectAccountEvents+`WHERE account_id = $1 ORDER BY occurred_at ASC`, accountID)
	if err != nil {
		return nil, fmt.Errorf("query account events: %w", err)
	}
	defer rows.Close()
	return scanAccountEvents(rows)
}

func (r *PostgresAccountRepository) GetEventsByOwnerID(ctx context.Context, ownerID string) ([]domain.AccountEvent, error) {
	rows, err := r.db.Query(ctx, selectAccountEvents+`WHERE owner_id = $1 ORDER BY occurred_at ASC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query account events by owner: %w", err)
	}
	defer rows.Close()
	return scanAccountEvents(rows)
}

func (r *PostgresAccountRepository) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	events, err := r.GetEventsByAccountID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	account := domain.ReduceAccount(events)
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (r *PostgresAccountRepository) GetAccountsByOwnerID(ctx context.Context, ownerID string) ([]domain.Account, error) {
	events, err := r.GetEventsByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return domain.ReduceAccounts(events), nil
}

func (r *PostgresAccountRepository) SaveAccountEvents(ctx context.Context, events []domain.AccountEvent) error {
	return appendAll(ctx, r.db, func(tx pgx.Tx) error {
		for _, ev := range events {
			data, err := json.Marshal(ev.Data)
			if err != nil {
				return fmt.Errorf("marshal account event data: %w", err)
			}
			_, err = tx.Exec(ctx,
				`INSERT INTO account_events (event_type, occurred_at, account_id, owner_id, branch_id, account_type, is_active, data)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				ev.Kind, ev.Timestamp, ev.AccountID, ev.OwnerID, ev.BranchID, ev.AccountType, ev.IsActive, data)
			if err != nil {
				return fmt.Errorf("insert account event: %w", err)
			}
		}
		return nil
	})
}

func scanAccountEvents(rows pgx.Rows) ([]domain.AccountEvent, error) {
	var events []domain.AccountEvent
	for rows.Next() {
		var ev domain.AccountEvent
		var data []byte
		if err := rows.Scan(&ev.Kind, &ev.Timestamp, &ev.AccountID, &ev.OwnerID, &ev.BranchID, &ev.AccountType, &ev.IsActive, &data); err != nil {
			return nil, fmt.Errorf("scan account event: %w", err)
		}
		if err := json.Unmarshal(data, &ev.Data); err != nil {
			return nil, fmt.Errorf("unmarshal account event data: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// --- Transaction events ---

// PostgresTransactionRepository implements TransactionRepository.
type PostgresTransactionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresTransactionRepository(db *pgxpool.Pool) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

const selectTransactionEvents = `
	SELECT event_type, occurred_at, transaction_id,
	       COALESCE(sender_id, ''), COALESCE(sender_account_id, ''),
	       receiver_id, receiver_account_id, terminal_id, branch_id, amount
	FROM transaction_events
`

func (r *PostgresTransactionRepository) GetEventsByAccountID(ctx context.Context, accountID string) ([]domain.TransactionEvent, error) {
	rows, err := r.db.Query(ctx,
		selectTransactionEvents+`WHERE sender_account_id = $1 OR receiver_account_id = $1 ORDER BY occurred_at ASC`,
		accountID)
	if err != nil {
		return nil, fmt.Errorf("query transaction events by account: %w", err)
	}
	defer rows.Close()
	return scanTransactionEvents(rows)
}

func (r *PostgresTransactionRepository) GetEventsByUserID(ctx context.Context, userID string) ([]domain.TransactionEvent, error) {
	rows, err := r.db.Query(ctx,
		selectTransactionEvents+`WHERE sender_id = $1 OR receiver_id = $1 ORDER BY occurred_at ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("query transaction events by user: %w", err)
	}
	defer rows.Close()
	return scanTransactionEvents(rows)
}

func (r *PostgresTransactionRepository) GetTransactionByID(ctx context.Context, transactionID string) (*domain.TransactionEvent, error) {
	rows, err := r.db.Query(ctx, selectTransactionEvents+`WHERE transaction_id = $1 ORDER BY occurred_at ASC`, transactionID)
	if err != nil {
		return nil, fmt.Errorf("query transaction by id: %w", err)
	}
	defer rows.Close()
	events, err := scanTransactionEvents(rows)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, ErrTransactionNotFound
	}
	return &events[0], nil
}

func (r *PostgresTransactionRepository) SaveTransactionEvents(ctx context.Context, events []domain.TransactionEvent) error {
	return appendAll(ctx, r.db, func(tx pgx.Tx) error {
		for _, ev := range events {
			_, err := tx.Exec(ctx,
				`INSERT INTO transaction_events (event_type, occurred_at, transaction_id, sender_id, sender_account_id,
				                                 receiver_id, receiver_account_id, terminal_id, branch_id, amount, data)
				 VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9, $10, '{}'::jsonb)`,
				ev.Kind, ev.Timestamp, ev.TransactionID, ev.SenderID, ev.SenderAccountID,
				ev.ReceiverID, ev.ReceiverAccountID, ev.TerminalID, ev.BranchID, ev.Amount)
			if err != nil {
				return fmt.Errorf("insert transaction event: %w", err)
			}
		}
		return nil
	})
}

func scanTransactionEvents(rows pgx.Rows) ([]domain.TransactionEvent, error) {
	var events []domain.TransactionEvent
	for rows.Next() {
		var ev domain.TransactionEvent
		if err := rows.Scan(&ev.Kind, &ev.Timestamp, &ev.TransactionID, &ev.SenderID, &ev.SenderAccountID,
			&ev.ReceiverID, &ev.ReceiverAccountID, &ev.TerminalID, &ev.BranchID, &ev.Amount); err != nil {
			return nil, fmt.Errorf("scan transaction event: %w", err)
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// --- Credentials ---

// PostgresCredentialRepository implements CredentialRepository.
type PostgresCredentialRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCredentialRepository(db *pgxpool.Pool) *PostgresCredentialRepository {
	return &PostgresCredentialRepository{db: db}
}

func (r *PostgresCredentialRepository) FindAuthorizedUser(ctx context.Context, username string) (*domain.AuthorizedUser, error) {
	var user domain.AuthorizedUser
	err := r.db.QueryRow(ctx,
		`SELECT username, password_hash FROM authorized_users WHERE username = $1`,
		username).Scan(&user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("query authorized user: %w", err)
	}
	return &user, nil
}
