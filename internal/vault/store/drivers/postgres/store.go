// Package postgres is the PostgreSQL driver for the vault store, using pgx
// through database/sql and goose for schema migrations.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/aussiebroadwan/vaultshare/internal/vault/store/drivers/sqldb"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

var Dialect = sqldb.Dialect{
	Name:              "postgres",
	Placeholder:       sqldb.Dollar,
	IsUniqueViolation: isUniqueViolation,
}

// NewStore opens a pool against dsn and verifies connectivity.
func NewStore(ctx context.Context, dsn string) (*sqldb.Store, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return sqldb.New(db, Dialect, RunMigrations), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
