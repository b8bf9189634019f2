package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aussiebroadwan/vaultshare/internal/vault/store"
)

// MigrateFunc applies the driver's schema migrations to db.
type MigrateFunc func(ctx context.Context, db *sql.DB) error

// Store implements store.Store on top of database/sql.
type Store struct {
	db      *sql.DB
	dialect Dialect
	migrate MigrateFunc
}

var _ store.Store = (*Store)(nil)

// New wraps an open database. migrate may be nil when the schema is managed
// elsewhere.
func New(db *sql.DB, d Dialect, migrate MigrateFunc) *Store {
	return &Store{db: db, dialect: d, migrate: migrate}
}

// DB exposes the underlying pool.
func (s *Store) DB() *sql.DB { return s.db }

func (s *Store) Dialect() Dialect { return s.dialect }

func (s *Store) ApplyMigrations(ctx context.Context) error {
	if s.migrate == nil {
		return nil
	}
	return s.migrate(ctx, s.db)
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &txStore{tx: tx, c: conn{db: tx, d: s.dialect}}, nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) (err error) {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) conn() conn { return conn{db: s.db, d: s.dialect} }

func (s *Store) Users() store.Users             { return &usersRepo{c: s.conn()} }
func (s *Store) Accounts() store.Accounts       { return &accountsRepo{c: s.conn()} }
func (s *Store) Workspaces() store.Workspaces   { return &workspacesRepo{c: s.conn()} }
func (s *Store) Invitations() store.Invitations { return &invitationsRepo{c: s.conn()} }

type txStore struct {
	tx *sql.Tx
	c  conn
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close is a no-op; the transaction ends with Commit or Rollback.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(context.Context) error { return nil }

// ApplyMigrations is a no-op; migrations run before any transaction starts.
func (t *txStore) ApplyMigrations(context.Context) error { return nil }

func (t *txStore) Tx(context.Context) (store.Tx, error) {
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(context.Context, func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users             { return &usersRepo{c: t.c} }
func (t *txStore) Accounts() store.Accounts       { return &accountsRepo{c: t.c} }
func (t *txStore) Workspaces() store.Workspaces   { return &workspacesRepo{c: t.c} }
func (t *txStore) Invitations() store.Invitations { return &invitationsRepo{c: t.c} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mustAffect turns an UPDATE that matched nothing into ErrNotFound.
func mustAffect(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullTimePtr(nt sql.NullTime) *time.Time {
	if nt.Valid {
		t := nt.Time.UTC()
		return &t
	}
	return nil
}

func utc(t time.Time) time.Time { return t.UTC() }
