// Package storage selects and opens the backing store for the repositories.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/magicvilla/villa-api/internal/core/domain"
	"github.com/magicvilla/villa-api/internal/core/ports"
	"github.com/magicvilla/villa-api/internal/core/repository"
	"github.com/magicvilla/villa-api/internal/infrastructure/db/memory"
	mongostore "github.com/magicvilla/villa-api/internal/infrastructure/db/mongo"
	"github.com/magicvilla/villa-api/internal/infrastructure/db/sqlstore"
)

// Supported driver names.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

var ErrUnknownDriver = errors.New("unknown store driver")

// Config selects the store and how to reach it.
type Config struct {
	Driver string
	// DatabaseURL is the Postgres DSN or the SQLite path.
	DatabaseURL string
	MongoURI    string
	MongoDB     string
}

// Store holds the repositories over one opened backend.
type Store struct {
	Villas       *repository.VillaRepository
	VillaNumbers *repository.VillaNumberRepository
	Users        *repository.Repository[domain.User]
	// Pinger reports the backend's reachability. Named after the driver.
	Name   string
	Pinger ports.Pinger

	close func(ctx context.Context) error
}

// Open connects to the configured backend and builds the repositories.
func Open(ctx context.Context, cfg Config, log zerolog.Logger) (*Store, error) {
	switch cfg.Driver {
	case DriverMongo, "":
		return openMongo(ctx, cfg, log)
	case DriverPostgres, DriverSQLite:
		return openSQL(ctx, cfg, log)
	case DriverMemory:
		return OpenMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// OpenMemory returns a process-local store.
func OpenMemory() *Store {
	villas := memory.NewDriver(repository.VillaSchema)
	return &Store{
		Villas:       repository.NewVillaRepository(villas),
		VillaNumbers: repository.NewVillaNumberRepository(memory.NewDriver(repository.VillaNumberSchema)),
		Users:        repository.NewUserRepository(memory.NewDriver(repository.UserSchema)),
		Name:         DriverMemory,
		Pinger:       villas,
		close:        func(context.Context) error { return nil },
	}
}

func openMongo(ctx context.Context, cfg Config, log zerolog.Logger) (*Store, error) {
	ms, err := mongostore.Open(ctx, mongostore.Config{URI: cfg.MongoURI, Database: cfg.MongoDB, AppName: "villa-api"})
	if err != nil {
		return nil, err
	}

	villas := mongostore.NewDriver(ms.DB, repository.VillaSchema)
	numbers := mongostore.NewDriver(ms.DB, repository.VillaNumberSchema)
	users := mongostore.NewDriver(ms.DB, repository.UserSchema)

	for _, ensure := range []func(context.Context) error{villas.EnsureIndexes, numbers.EnsureIndexes, users.EnsureIndexes} {
		if err := ensure(ctx); err != nil {
			_ = ms.Close(ctx)
			return nil, err
		}
	}
	log.Info().Str("database", cfg.MongoDB).Msg("connected to MongoDB")

	return &Store{
		Villas:       repository.NewVillaRepository(villas),
		VillaNumbers: repository.NewVillaNumberRepository(numbers),
		Users:        repository.NewUserRepository(users),
		Name:         "mongodb",
		Pinger:       ms,
		close:        ms.Close,
	}, nil
}

func openSQL(ctx context.Context, cfg Config, log zerolog.Logger) (*Store, error) {
	d, err := sqlstore.DialectFor(cfg.Driver)
	if err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("%s store requires DATABASE_URL", cfg.Driver)
	}
	db, err := sqlstore.Open(ctx, d, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	log.Info().Str("driver", d.Name).Msg("connected to SQL store")

	return &Store{
		Villas:       repository.NewVillaRepository(sqlstore.NewDriver(db, d, repository.VillaSchema)),
		VillaNumbers: repository.NewVillaNumberRepository(sqlstore.NewDriver(db, d, repository.VillaNumberSchema)),
		Users:        repository.NewUserRepository(sqlstore.NewDriver(db, d, repository.UserSchema)),
		Name:         d.Name,
		Pinger:       sqlstore.Pinger{DB: db},
		close:        func(context.Context) error { return db.Close() },
	}, nil
}

// Close releases the backend connection.
func (s *Store) Close(ctx context.Context) error {
	return s.close(ctx)
}
