/**
 * @description
 * Schema bootstrap and optional demo seeding for the event store. EnsureSchema
 * is idempotent and runs on every startup; SeedDemoData wipes the event tables
 * and writes a small deterministic history so a fresh environment has
 * something to query against.
 *
 * @dependencies
 * - context, fmt, time: Standard Go libraries.
 * - github.com/jackc/pgx/v5/pgxpool: Connection pool for database operations.
 * - golang.org/x/crypto/bcrypt: Hashing for the seeded API credential.
 * - internal/domain: Event models used by the seeder.
 */

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/corebank/ledger-service/internal/domain"
)

const schemaDDL = `
CREATE TABLE IF NOT EXISTS user_events (
	id          BIGSERIAL PRIMARY KEY,
	event_type  TEXT NOT NULL,
	occurred_at TIMESTAMPTZ NOT NULL,
	user_id     TEXT NOT NULL,
	user_name   TEXT NOT NULL,
	data        JSONB NOT NULL DEFAULT '{}'::jsonb,
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_user_events_user_id ON user_events (user_id, occurred_at);

CREATE TABLE IF NOT EXISTS account_events (
	id           BIGSERIAL PRIMARY KEY,
	event_type   TEXT NOT NULL,
	occurred_at  TIMESTAMPTZ NOT NULL,
	account_id   TEXT NOT NULL,
	owner_id     TEXT NOT NULL,
	branch_id    TEXT NOT NULL,
	account_type TEXT NOT NULL,
	is_active    BOOLEAN NOT NULL,
	data         JSONB NOT NULL DEFAULT '{}'::jsonb,
	recorded_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_account_events_account_id ON account_events (account_id, occurred_at);
CREATE INDEX IF NOT EXISTS idx_account_events_owner_id ON account_events (owner_id, occurred_at);

CREATE TABLE IF NOT EXISTS transaction_events (
	id                  BIGSERIAL PRIMARY KEY,
	event_type          TEXT NOT NULL,
	occurred_at         TIMESTAMPTZ NOT NULL,
	transaction_id      TEXT NOT NULL,
	sender_id           TEXT,
	sender_account_id   TEXT,
	receiver_id         TEXT NOT NULL,
	receiver_account_id TEXT NOT NULL,
	terminal_id         TEXT NOT NULL,
	branch_id           TEXT NOT NULL,
	amount              DOUBLE PRECISION NOT NULL,
	data                JSONB NOT NULL DEFAULT '{}'::jsonb,
	recorded_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_transaction_events_transaction_id ON transaction_events (transaction_id);
CREATE INDEX IF NOT EXISTS idx_transaction_events_sender_account ON transaction_events (sender_account_id, occurred_at);
CREATE INDEX IF NOT EXISTS idx_transaction_events_receiver_account ON transaction_events (receiver_account_id, occurred_at);

CREATE TABLE IF NOT EXISTS authorized_users (
	username      TEXT PRIMARY KEY,
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// EnsureSchema creates the event tables, indexes, and the credential table if
// they do not exist. Safe to run on every startup.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SeedDemoData truncates the event tables and writes a deterministic demo
// history: two users, a private account each, two deposits and two transfers.
// The resulting balances are 104.5 for account "1" and 45.5 for account "12".
// It also upserts an API login so the demo environment can authenticate.
func SeedDemoData(ctx context.Context, db *pgxpool.Pool, adminUsername, adminPassword string) error {
	if _, err := db.Exec(ctx, `TRUNCATE user_events, account_events, transaction_events`); err != nil {
		return fmt.Errorf("truncate event tables: %w", err)
	}

	base := time.Date(2021, time.April, 1, 12, 0, 0, 0, time.UTC)
	at := func(minutes int) time.Time { return base.Add(time.Duration(minutes) * time.Minute) }

	users := NewPostgresUserRepository(db)
	userEvents := []domain.UserEvent{
		{Kind: domain.UserCreated, Timestamp: at(0), UserID: "1", UserName: "Hans",
			Data: domain.UserEventData{Address: "Hansstrasse 1"}},
		{Kind: domain.UserCreated, Timestamp: at(1), UserID: "2", UserName: "Peter",
			Data: domain.UserEventData{Address: "Petersplatz 2"}},
		{Kind: domain.UserAddressChanged, Timestamp: at(2), UserID: "1", UserName: "Hans",
			Data: domain.UserEventData{Address: "Hansweg 3", PreviousAddress: "Hansstrasse 1"}},
	}
	if err := users.SaveUserEvents(ctx, userEvents); err != nil {
		return fmt.Errorf("seed user events: %w", err)
	}

	accounts := NewPostgresAccountRepository(db)
	initial := 0.0
	accountEvents := []domain.AccountEvent{
		{Kind: domain.AccountCreated, Timestamp: at(3), AccountID: "1", OwnerID: "1",
			BranchID: "branch-1", AccountType: string(domain.AccountTypePrivate), IsActive: true,
			Data: domain.AccountEventData{InitialBalance: initial}},
		{Kind: domain.AccountCreated, Timestamp: at(4), AccountID: "12", OwnerID: "2",
			BranchID: "branch-1", AccountType: string(domain.AccountTypePrivate), IsActive: true,
			Data: domain.AccountEventData{InitialBalance: initial}},
	}
	if err := accounts.SaveAccountEvents(ctx, accountEvents); err != nil {
		return fmt.Errorf("seed account events: %w", err)
	}

	transactions := NewPostgresTransactionRepository(db)
	transactionEvents := []domain.TransactionEvent{
		{Kind: domain.AmountDeposited, Timestamp: at(5), TransactionID: "seed-deposit-1",
			ReceiverID: "1", ReceiverAccountID: "1",
			TerminalID: "terminal-1", BranchID: "branch-1", Amount: 100},
		{Kind: domain.AmountDeposited, Timestamp: at(5), TransactionID: "seed-deposit-2",
			ReceiverID: "2", ReceiverAccountID: "12",
			TerminalID: "terminal-1", BranchID: "branch-1", Amount: 50},
		{Kind: domain.AmountTransferred, Timestamp: at(6), TransactionID: "seed-transfer-1",
			SenderID: "1", SenderAccountID: "1", ReceiverID: "2", ReceiverAccountID: "12",
			TerminalID: "terminal-1", BranchID: "branch-1", Amount: 0.5},
		{Kind: domain.AmountTransferred, Timestamp: at(7), TransactionID: "seed-transfer-2",
			SenderID: "2", SenderAccountID: "12", ReceiverID: "1", ReceiverAccountID: "1",
			TerminalID: "terminal-2", BranchID: "branch-1", Amount: 5},
	}
	if err := transactions.SaveTransactionEvents(ctx, transactionEvents); err != nil {
		return fmt.Errorf("seed transaction events: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash seed credential: %w", err)
	}
	_, err = db.Exec(ctx,
		`INSERT INTO authorized_users (username, password_hash) VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash`,
		adminUsername, string(hash))
	if err != nil {
		return fmt.Errorf("seed authorized user: %w", err)
	}
	return nil
}
