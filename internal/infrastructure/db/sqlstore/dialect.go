// Package sqlstore implements the storage driver for relational databases.
// Postgres is reached through pgx's database/sql adapter and SQLite through
// the pure Go modernc driver; both share the same generic Driver.
package sqlstore

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/magicvilla/villa-api/internal/core/domain"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
)

// Dialect captures the differences between supported SQL engines.
type Dialect struct {
	Name       string
	DriverName string
	migrations []string
	bind       func(n int) string
	conflict   func(err error) bool
}

// Placeholder returns the bind parameter for the n-th argument, starting at 1.
func (d Dialect) Placeholder(n int) string { return d.bind(n) }

// classify maps constraint violations to domain.ErrConflict.
func (d Dialect) classify(err error) error {
	if err == nil {
		return nil
	}
	if d.conflict(err) {
		return fmt.Errorf("%w: %s", domain.ErrConflict, err.Error())
	}
	return err
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

var Postgres = Dialect{
	Name:       "postgres",
	DriverName: "pgx",
	migrations: postgresMigrations,
	bind:       func(n int) string { return "$" + strconv.Itoa(n) },
	conflict: func(err error) bool {
		var pgErr *pgconn.PgError
		if !errors.As(err, &pgErr) {
			return false
		}
		return pgErr.Code == pgUniqueViolation || pgErr.Code == pgForeignKeyViolation
	},
}

var SQLite = Dialect{
	Name:       "sqlite",
	DriverName: "sqlite",
	migrations: sqliteMigrations,
	bind:       func(int) string { return "?" },
	conflict: func(err error) bool {
		var sqErr *sqlite.Error
		if !errors.As(err, &sqErr) {
			return false
		}
		switch sqErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return true
		}
		return false
	},
}

// DialectFor resolves a dialect by name.
func DialectFor(name string) (Dialect, error) {
	switch name {
	case Postgres.Name:
		return Postgres, nil
	case SQLite.Name:
		return SQLite, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported sql dialect %q", name)
	}
}
