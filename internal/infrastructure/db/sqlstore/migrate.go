package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
)

var postgresMigrations = []string{
	`CREATE TABLE IF NOT EXISTS villas (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT '',
		rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		sqft INTEGER NOT NULL DEFAULT 0,
		occupancy INTEGER NOT NULL DEFAULT 0,
		image_url TEXT NOT NULL DEFAULT '',
		amenity TEXT NOT NULL DEFAULT '',
		created_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS villas_name_unique_idx ON villas (lower(name));`,
	`CREATE TABLE IF NOT EXISTS villa_numbers (
		villa_no INTEGER PRIMARY KEY,
		villa_id BIGINT NOT NULL REFERENCES villas(id) ON DELETE CASCADE,
		special_details TEXT NOT NULL DEFAULT '',
		created_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_date TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE TABLE IF NOT EXISTS local_users (
		id BIGSERIAL PRIMARY KEY,
		user_name TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'customer'
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS local_users_user_name_unique_idx ON local_users (lower(user_name));`,
}

var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS villas (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT '',
		rate REAL NOT NULL DEFAULT 0,
		sqft INTEGER NOT NULL DEFAULT 0,
		occupancy INTEGER NOT NULL DEFAULT 0,
		image_url TEXT NOT NULL DEFAULT '',
		amenity TEXT NOT NULL DEFAULT '',
		created_date DATETIME NOT NULL,
		updated_date DATETIME NOT NULL
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS villas_name_unique_idx ON villas (lower(name));`,
	`CREATE TABLE IF NOT EXISTS villa_numbers (
		villa_no INTEGER PRIMARY KEY,
		villa_id INTEGER NOT NULL REFERENCES villas(id) ON DELETE CASCADE,
		special_details TEXT NOT NULL DEFAULT '',
		created_date DATETIME NOT NULL,
		updated_date DATETIME NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS local_users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_name TEXT NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'customer'
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS local_users_user_name_unique_idx ON local_users (lower(user_name));`,
}

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB, d Dialect) error {
	for _, stmt := range d.migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply %s migrations: %w", d.Name, err)
		}
	}
	return nil
}
