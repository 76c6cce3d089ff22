package sqlite

import (
	"context"
	"database/sql"

	"github.com/patriotauto/scheduler/internal/scheduler/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the caller commits or rolls back and the outer DB stays open.
func (t *txStore) Close() error { return nil }

// Ping is a no-op inside a transaction; the connection already exists.
func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

// ApplyMigrations is a no-op; migrations run before any transaction starts.
func (t *txStore) ApplyMigrations() error { return nil }

func (t *txStore) Tenants() store.Tenants           { return &tenantsRepo{q: t.tx} }
func (t *txStore) Users() store.Users               { return &usersRepo{q: t.tx} }
func (t *txStore) Technicians() store.Technicians   { return &techniciansRepo{q: t.tx} }
func (t *txStore) Services() store.Services         { return &servicesRepo{q: t.tx} }
func (t *txStore) Appointments() store.Appointments { return &appointmentsRepo{q: t.tx} }
